package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/adpulse-api/internal/domain"
	"github.com/vfg2006/adpulse-api/internal/usecases/reporting"
	"github.com/vfg2006/adpulse-api/pkg/log"
)

func ExchangeToken(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var creds domain.Credentials
		if !decodeBody(w, r, &creds) {
			return
		}

		token, err := service.ExchangeToken(r.Context(), creds)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeSuccess(w, token)
	})
}

func Campaigns(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var creds domain.Credentials
		if !decodeBody(w, r, &creds) {
			return
		}

		result, err := service.GetCampaigns(r.Context(), creds)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("ads_rows", result.Count).Info("campaigns: fetched")
		writeSuccess(w, result)
	})
}

type aggregateResponse struct {
	Reports   *domain.AggregateReportSet `json:"reports"`
	Counts    map[string]int             `json:"counts"`
	FetchedAt string                     `json:"fetchedAt"`
}

// Report serves one secondary report, or the whole aggregate for kind "all".
func Report(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind := domain.ReportKind(httprouter.ParamsFromContext(r.Context()).ByName("kind"))

		var creds domain.Credentials
		if !decodeBody(w, r, &creds) {
			return
		}

		if kind == domain.ReportAll {
			set, err := service.FetchAll(r.Context(), creds, domain.LastThirtyDays)
			if err != nil {
				writeServiceError(w, r, err)
				return
			}

			writeSuccess(w, aggregateResponse{
				Reports:   set,
				Counts:    set.Counts(),
				FetchedAt: nowTimestamp(),
			})
			return
		}

		result, err := service.GetReport(r.Context(), creds, kind)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeSuccess(w, result)
	})
}
