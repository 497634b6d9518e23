package reporting

import (
	"context"
	"errors"

	"github.com/vfg2006/adpulse-api/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/adpulse-api/internal/domain"
	"github.com/vfg2006/adpulse-api/pkg/apiErrors"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownReport      = errors.New("unknown report")
	ErrTokenExchange      = errors.New("token exchange failed")
	ErrFetchCampaigns     = errors.New("error fetching campaigns")
	ErrFetchReport        = errors.New("error fetching report")
)

// ReportError carries the API error code for a failed report operation.
// Cause holds the upstream error, if any.
type ReportError struct {
	Err     error
	Code    string
	Report  domain.ReportKind
	Details string
	Cause   error
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return e.Err.Error() + ": " + e.Details
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// Message is the text shown to API clients
func (e *ReportError) Message() string {
	if e.Details != "" {
		return e.Details
	}
	return e.Err.Error()
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func newUpstreamError(err error, kind domain.ReportKind, cause error) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    upstreamCode(cause),
		Report:  kind,
		Details: cause.Error(),
		Cause:   cause,
	}
}

func upstreamCode(err error) string {
	var tokenErr *adsclient.TokenError
	if errors.As(err, &tokenErr) {
		return apiErrors.ErrTokenExchange
	}

	var apiErr *adsclient.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.IsUnauthenticated():
			return apiErrors.ErrAdsUnauthenticated
		case apiErr.IsPermissionDenied():
			return apiErrors.ErrAdsPermissionDenied
		case apiErr.IsQuotaExceeded():
			return apiErrors.ErrAdsQuotaExceeded
		}
		return apiErrors.ErrAdsAPI
	}

	if errors.Is(err, context.Canceled) {
		return apiErrors.ErrInternalServer
	}

	return apiErrors.ErrAdsAPI
}
