package adsdomain

// ErrorResponse is the error body returned by the Google Ads REST API
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (e *ErrorResponse) IsUnauthenticated() bool {
	return e.Error.Code == 401 || e.Error.Status == "UNAUTHENTICATED"
}

func (e *ErrorResponse) IsPermissionDenied() bool {
	return e.Error.Code == 403 || e.Error.Status == "PERMISSION_DENIED"
}

func (e *ErrorResponse) IsQuotaExceeded() bool {
	return e.Error.Code == 429 || e.Error.Status == "RESOURCE_EXHAUSTED"
}

// TokenErrorResponse is the error body returned by the OAuth token endpoint
type TokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
