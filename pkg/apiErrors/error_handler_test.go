package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	tests := map[string]int{
		ErrValidation:          http.StatusBadRequest,
		ErrNoCampaigns:         http.StatusBadRequest,
		ErrMissingData:         http.StatusBadRequest,
		ErrUnknownReport:       http.StatusNotFound,
		ErrTokenExchange:       http.StatusBadRequest,
		ErrAdsUnauthenticated:  http.StatusUnauthorized,
		ErrAdsPermissionDenied: http.StatusForbidden,
		ErrAdsQuotaExceeded:    http.StatusTooManyRequests,
		ErrAdsAPI:              http.StatusBadGateway,
		ErrAuditService:        http.StatusBadGateway,
		ErrAuditParse:          http.StatusBadGateway,
		"SOMETHING_ELSE":       http.StatusInternalServerError,
	}

	for code, want := range tests {
		t.Run(code, func(t *testing.T) {
			assert.Equal(t, want, Status(code))
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, ErrUnknownReport, "unknown report: budgets", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"error":"UNKNOWN_REPORT","message":"unknown report: budgets"}`, rec.Body.String())
}

func TestWriteError_Details(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, ErrValidation, "invalid", []string{"customerId"})

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []any{"customerId"}, body.Details)
}

func TestFromError(t *testing.T) {
	assert.Equal(t, APIError{Code: ErrInternalServer, Message: "Unknown error"}, FromError(nil, ErrAdsAPI))
	assert.Equal(t, APIError{Code: ErrAdsAPI, Message: "boom"}, FromError(errors.New("boom"), ErrAdsAPI))
}
