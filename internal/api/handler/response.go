package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/adpulse-api/internal/domain"
	"github.com/vfg2006/adpulse-api/internal/usecases/auditing"
	"github.com/vfg2006/adpulse-api/internal/usecases/exporting"
	"github.com/vfg2006/adpulse-api/internal/usecases/reporting"
	"github.com/vfg2006/adpulse-api/pkg/apiErrors"
	"github.com/vfg2006/adpulse-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func writeSuccess(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(successResponse{Success: true, Data: data}); err != nil {
		log.L.WithError(err).Error("failed to encode response")
	}
}

// decodeBody writes the error response itself and returns false when the body
// cannot be decoded into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			apiErrors.WriteError(w, apiErrors.ErrRequestEntityTooLarge, "Request body is too large", nil)
			return false
		}

		apiErrors.WriteError(w, apiErrors.ErrValidation, "Could not read request body", nil)
		return false
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		apiErrors.WriteError(w, apiErrors.ErrValidation, "Request body is required", nil)
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrValidation, "Invalid request body", err.Error())
		return false
	}

	return true
}

// writeServiceError maps a usecase error to its API error response
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var (
		reportErr     *reporting.ReportError
		auditErr      *auditing.AuditError
		exportErr     *exporting.ExportError
		validationErr *domain.ValidationError
	)

	switch {
	case errors.As(err, &reportErr):
		logUsecaseError(logger, reportErr.Code)
		apiErrors.WriteError(w, reportErr.Code, reportErr.Message(), validationDetails(err))
	case errors.As(err, &auditErr):
		logUsecaseError(logger, auditErr.Code)
		apiErrors.WriteError(w, auditErr.Code, auditErr.Message(), validationDetails(err))
	case errors.As(err, &exportErr):
		logUsecaseError(logger, exportErr.Code)
		apiErrors.WriteError(w, exportErr.Code, exportErr.Error(), nil)
	case errors.As(err, &validationErr):
		logger.Warn("request rejected")
		apiErrors.WriteError(w, apiErrors.ErrValidation, validationErr.Error(), validationErr.Fields)
	default:
		logger.Error("unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "An unexpected error occurred", nil)
	}
}

func logUsecaseError(logger log.Logger, code string) {
	if apiErrors.Status(code) >= http.StatusInternalServerError {
		logger.Error("request failed")
		return
	}
	logger.Warn("request rejected")
}

func validationDetails(err error) any {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Fields
	}
	return nil
}

func nowTimestamp() string {
	return time.Now().UTC().Format(domain.TimestampLayout)
}
