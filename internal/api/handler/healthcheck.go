package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(time.Now().Format(time.RFC3339))); err != nil {
			logrus.WithError(err).Warn("erro ao responder healthcheck")
		}
	})
}
