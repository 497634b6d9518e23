package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Error codes returned to API clients
const (
	// Request errors
	ErrValidation    = "VALIDATION_ERROR"
	ErrNoCampaigns   = "NO_CAMPAIGNS"
	ErrMissingData   = "MISSING_DATA"
	ErrUnknownReport = "UNKNOWN_REPORT"
	ErrNotFound      = "NOT_FOUND"
	ErrMethod        = "METHOD_NOT_ALLOWED"

	// Upstream errors
	ErrTokenExchange         = "OAUTH_TOKEN_EXCHANGE_FAILED"
	ErrAdsUnauthenticated    = "GOOGLE_ADS_UNAUTHENTICATED"
	ErrAdsPermissionDenied   = "GOOGLE_ADS_PERMISSION_DENIED"
	ErrAdsQuotaExceeded      = "GOOGLE_ADS_QUOTA_EXCEEDED"
	ErrAdsAPI                = "GOOGLE_ADS_API_ERROR"
	ErrAuditService          = "AUDIT_SERVICE_ERROR"
	ErrAuditParse            = "AUDIT_PARSE_ERROR"
	ErrInternalServer        = "INTERNAL_SERVER_ERROR"
	ErrRequestEntityTooLarge = "PAYLOAD_TOO_LARGE"
)

var httpStatusMap = map[string]int{
	ErrValidation:            http.StatusBadRequest,
	ErrNoCampaigns:           http.StatusBadRequest,
	ErrMissingData:           http.StatusBadRequest,
	ErrUnknownReport:         http.StatusNotFound,
	ErrNotFound:              http.StatusNotFound,
	ErrMethod:                http.StatusMethodNotAllowed,
	ErrTokenExchange:         http.StatusBadRequest,
	ErrAdsUnauthenticated:    http.StatusUnauthorized,
	ErrAdsPermissionDenied:   http.StatusForbidden,
	ErrAdsQuotaExceeded:      http.StatusTooManyRequests,
	ErrAdsAPI:                http.StatusBadGateway,
	ErrAuditService:          http.StatusBadGateway,
	ErrAuditParse:            http.StatusBadGateway,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrRequestEntityTooLarge: http.StatusRequestEntityTooLarge,
}

// APIError is the error envelope written to clients
type APIError struct {
	Success bool   `json:"success"`
	Code    string `json:"error"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Status maps an error code to its HTTP status, defaulting to 500
func Status(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}

	return status
}

// WriteError writes the error envelope for code
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Success: false,
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(Status(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps a Go error in an APIError with the given code
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
