package handler

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func GetRawData(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params, err := parseRawDataParams(r.URL.Query())
		if err != nil {
			writeError(w, r, err, "raw-data: parâmetros inválidos")
			return
		}

		view, err := service.GetRawData(r.Context(), params)
		if err != nil {
			writeError(w, r, err, "raw-data: falha ao filtrar dados")
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	})
}

func GetRawDataOptions(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		options, err := service.GetFilterOptions(r.Context())
		if err != nil {
			writeError(w, r, err, "raw-data: falha ao listar opções de filtro")
			return
		}

		writeJSON(w, r, http.StatusOK, options)
	})
}

// ExportRawData devolve o CSV dos dados filtrados como anexo
func ExportRawData(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		params, err := parseRawDataParams(query)
		if err != nil {
			writeError(w, r, err, "export: parâmetros inválidos")
			return
		}

		result, err := service.ExportRawData(r.Context(), params, query.Get(filenameParam))
		if err != nil {
			writeError(w, r, err, "export: falha ao gerar arquivo")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"filename": result.Filename,
			"rows":     result.Rows,
		}).Info("export: enviando arquivo")

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": result.Filename}))
		w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(result.Data); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("export: falha ao enviar arquivo")
		}
	})
}
