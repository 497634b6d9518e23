package handler

import (
	"net/http"

	"github.com/vfg2006/adpulse-api/internal/domain"
	"github.com/vfg2006/adpulse-api/internal/usecases/auditing"
)

func QuickAudit(service auditing.Auditor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.QuickAuditRequest
		if !decodeBody(w, r, &req) {
			return
		}

		result, err := service.GenerateQuick(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeSuccess(w, result)
	})
}

func ComprehensiveAudit(service auditing.Auditor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.ComprehensiveAuditRequest
		if !decodeBody(w, r, &req) {
			return
		}

		result, err := service.GenerateComprehensive(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeSuccess(w, result)
	})
}
