package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

const CronJobTypeExportCachePurge = "export-cache-purge"

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	ExportCachePurgeService *scheduler.ExportCachePurgeService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeExportCachePurge:
			if services.ExportCachePurgeService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza do cache de exportação não disponível", nil)
				return
			}
			services.ExportCachePurgeService.TriggerManualPurge()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: export-cache-purge", nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("cron: execução manual solicitada")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.ExportCachePurgeService != nil {
			status[CronJobTypeExportCachePurge] = services.ExportCachePurgeService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
