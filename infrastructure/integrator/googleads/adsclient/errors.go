package adsclient

import (
	"fmt"

	adsdomain "github.com/vfg2006/adpulse-api/infrastructure/integrator/googleads/domain"
)

const (
	tokenErrorBodyLimit  = 200
	searchErrorBodyLimit = 300
)

// TokenError is returned when the OAuth endpoint refuses a refresh token.
type TokenError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *TokenError) Error() string {
	return "Token exchange failed: " + e.Message
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// APIError is returned for a non-2xx googleAds:search response. Body is
// truncated so it can be surfaced to callers as-is.
type APIError struct {
	StatusCode int
	Body       string
	Details    *adsdomain.ErrorResponse
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Google Ads API error: %s", e.Body)
}

func (e *APIError) IsUnauthenticated() bool {
	if e.Details != nil && e.Details.IsUnauthenticated() {
		return true
	}
	return e.StatusCode == 401
}

func (e *APIError) IsPermissionDenied() bool {
	if e.Details != nil && e.Details.IsPermissionDenied() {
		return true
	}
	return e.StatusCode == 403
}

func (e *APIError) IsQuotaExceeded() bool {
	if e.Details != nil && e.Details.IsQuotaExceeded() {
		return true
	}
	return e.StatusCode == 429
}
