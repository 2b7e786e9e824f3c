package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("falha ao codificar resposta")
	}
}

// writeError responde no formato padrão e registra o erro classificado
func writeError(w http.ResponseWriter, r *http.Request, err error, action string) {
	apiErr := apiErrors.WriteFromError(w, err)

	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"code":  apiErr.Code,
		"error": err.Error(),
	})

	if apiErrors.StatusFor(apiErr.Code) >= http.StatusInternalServerError {
		logger.Error(action)
	} else {
		logger.Warn(action)
	}
}
