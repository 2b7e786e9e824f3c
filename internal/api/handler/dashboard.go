package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params, err := parseDashboardParams(r.URL.Query())
		if err != nil {
			writeError(w, r, err, "dashboard: parâmetros inválidos")
			return
		}

		logger.WithFields(log.Fields{
			"region":      params.Region,
			"year":        params.Year,
			"sellers":     len(params.Sellers),
			"top_sellers": params.TopSellers,
		}).Debug("dashboard: montando relatório")

		report, err := service.GetDashboard(r.Context(), params)
		if err != nil {
			writeError(w, r, err, "dashboard: falha ao montar relatório")
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}

func ListRegions(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"regions": service.Regions(),
		})
	})
}
