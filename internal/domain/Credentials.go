package domain

import (
	"fmt"
	"strings"

	"github.com/vfg2006/adpulse-api/pkg/utils"
)

type Credentials struct {
	RefreshToken    string `json:"refreshToken"`
	ClientID        string `json:"clientId"`
	ClientSecret    string `json:"clientSecret"`
	DeveloperToken  string `json:"developerToken"`
	CustomerID      string `json:"customerId"`
	LoginCustomerID string `json:"loginCustomerId,omitempty"`
	StartDate       string `json:"startDate,omitempty"`
	EndDate         string `json:"endDate,omitempty"`
}

type AccessToken struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
	TokenType   string `json:"tokenType"`
}

type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Window is the trailing period used when a request carries no explicit date range.
type Window string

const (
	LastFourteenDays Window = "LAST_14_DAYS"
	LastThirtyDays   Window = "LAST_30_DAYS"
	LastNinetyDays   Window = "LAST_90_DAYS"
)

// Days is the length of the window, counting today.
func (w Window) Days() int {
	switch w {
	case LastFourteenDays:
		return 14
	case LastNinetyDays:
		return 90
	default:
		return 30
	}
}

// Label renders the window the way it is shown to a reader, e.g. "Last 90 days".
func (w Window) Label() string {
	return fmt.Sprintf("Last %d days", w.Days())
}

// DateRange is only returned when both bounds are present.
func (c Credentials) DateRange() *DateRange {
	if c.StartDate == "" || c.EndDate == "" {
		return nil
	}

	return &DateRange{StartDate: c.StartDate, EndDate: c.EndDate}
}

func (c Credentials) ValidateOAuth() error {
	verr := &ValidationError{}
	verr.required("refreshToken", c.RefreshToken)
	verr.required("clientId", c.ClientID)
	verr.required("clientSecret", c.ClientSecret)

	return verr.orNil()
}

func (c Credentials) Validate() error {
	verr := &ValidationError{}
	verr.required("refreshToken", c.RefreshToken)
	verr.required("clientId", c.ClientID)
	verr.required("clientSecret", c.ClientSecret)
	verr.required("developerToken", c.DeveloperToken)
	verr.required("customerId", c.CustomerID)
	verr.date("startDate", c.StartDate)
	verr.date("endDate", c.EndDate)

	return verr.orNil()
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, "is required")
	}
}

func (e *ValidationError) date(field, value string) {
	if value == "" {
		return
	}

	if _, err := utils.ParseDate(value); err != nil {
		e.Add(field, "must be a date in YYYY-MM-DD format")
	}
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}

	return e
}
