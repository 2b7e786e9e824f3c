package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service reporting.Reporter, middlewares ...func(http.Handler) http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/regions",
			Method:  http.MethodGet,
			Handler: ListRegions(service),
		},
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: middlewares,
		},
	}
}

func RawData(service reporting.Reporter, middlewares ...func(http.Handler) http.Handler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/raw-data",
			Method:      http.MethodGet,
			Handler:     GetRawData(service),
			Middlewares: middlewares,
		},
		{
			Path:        "/v1/raw-data/options",
			Method:      http.MethodGet,
			Handler:     GetRawDataOptions(service),
			Middlewares: middlewares,
		},
		{
			Path:        "/v1/raw-data/export",
			Method:      http.MethodGet,
			Handler:     ExportRawData(service),
			Middlewares: middlewares,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/jobs/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
