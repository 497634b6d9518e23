package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/vfg2006/adpulse-api/internal/domain"
	"github.com/vfg2006/adpulse-api/internal/usecases/exporting"
	"github.com/vfg2006/adpulse-api/pkg/log"
)

type exportCampaignsRequest struct {
	Campaigns []domain.CampaignRecord `json:"campaigns"`
}

type exportReportRequest struct {
	CleanReport string `json:"cleanReport"`
}

func ExportCampaigns(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req exportCampaignsRequest
		if !decodeBody(w, r, &req) {
			return
		}

		file, err := service.CampaignsCSV(req.Campaigns)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeAttachment(w, r, file)
	})
}

func ExportAuditReport(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req exportReportRequest
		if !decodeBody(w, r, &req) {
			return
		}

		file, err := service.AuditMarkdown(req.CleanReport)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeAttachment(w, r, file)
	})
}

func writeAttachment(w http.ResponseWriter, r *http.Request, file *domain.ExportFile) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(file.Content); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("export: failed to write attachment")
	}
}
