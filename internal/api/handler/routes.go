package handler

import (
	"net/http"

	"github.com/vfg2006/adpulse-api/internal/api/handler/router"
	"github.com/vfg2006/adpulse-api/internal/usecases/auditing"
	"github.com/vfg2006/adpulse-api/internal/usecases/exporting"
	"github.com/vfg2006/adpulse-api/internal/usecases/reporting"
	"github.com/vfg2006/adpulse-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func GoogleAds(service reporting.Reporter, maxBodyBytes int64) []router.Route {
	limit := []func(http.Handler) http.Handler{middleware.LimitBody(maxBodyBytes)}

	return []router.Route{
		{
			Path:        "/api/auth/token",
			Method:      http.MethodPost,
			Handler:     ExchangeToken(service),
			Middlewares: limit,
		},
		{
			Path:        "/api/google-ads/campaigns",
			Method:      http.MethodPost,
			Handler:     Campaigns(service),
			Middlewares: limit,
		},
		{
			// kind "all" is resolved inside the handler; httprouter rejects a
			// static segment next to a parameter.
			Path:        "/api/reports/:kind",
			Method:      http.MethodPost,
			Handler:     Report(service),
			Middlewares: limit,
		},
	}
}

func Audit(service auditing.Auditor, maxBodyBytes int64) []router.Route {
	limit := []func(http.Handler) http.Handler{middleware.LimitBody(maxBodyBytes)}

	return []router.Route{
		{
			Path:        "/api/audit/generate",
			Method:      http.MethodPost,
			Handler:     QuickAudit(service),
			Middlewares: limit,
		},
		{
			Path:        "/api/audit/comprehensive",
			Method:      http.MethodPost,
			Handler:     ComprehensiveAudit(service),
			Middlewares: limit,
		},
	}
}

func Export(service exporting.Exporter, maxBodyBytes int64) []router.Route {
	limit := []func(http.Handler) http.Handler{middleware.LimitBody(maxBodyBytes)}

	return []router.Route{
		{
			Path:        "/api/export/campaigns",
			Method:      http.MethodPost,
			Handler:     ExportCampaigns(service),
			Middlewares: limit,
		},
		{
			Path:        "/api/export/report",
			Method:      http.MethodPost,
			Handler:     ExportAuditReport(service),
			Middlewares: limit,
		},
	}
}
