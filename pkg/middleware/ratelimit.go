package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// RateLimit limita a taxa global de requisições. Cada painel dispara uma busca completa na API de dados.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Warn("Limite de requisições excedido")

				w.Header().Set("Retry-After", "1")
				apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "Muitas requisições, tente novamente em instantes", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
