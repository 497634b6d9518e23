package auditing

import (
	"errors"
)

var (
	ErrInvalidRequest = errors.New("invalid audit request")
	ErrNoCampaigns    = errors.New("no campaigns provided for audit")
	ErrMissingData    = errors.New("missing audit data")
	ErrAuditService   = errors.New("audit service error")
	ErrAuditParse     = errors.New("failed to parse audit response")
)

// AuditError carries the API error code for a failed audit
type AuditError struct {
	Err     error
	Code    string
	Details string
	Cause   error
}

func (e *AuditError) Error() string {
	if e.Details != "" {
		return e.Err.Error() + ": " + e.Details
	}
	return e.Err.Error()
}

func (e *AuditError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// Message is the text shown to API clients
func (e *AuditError) Message() string {
	if e.Details != "" {
		return e.Details
	}
	return e.Err.Error()
}

func NewAuditError(err error, code string, details string) *AuditError {
	return &AuditError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
