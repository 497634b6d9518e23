package adsdomain

import (
	"encoding/json"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

// Unknown fills enum and label fields the API left out.
const Unknown = "UNKNOWN"

// JSON decodes numbers as json.Number so int64 metrics keep their precision.
var JSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// Row is one entry of a googleAds:search "results" array. Field paths follow
// the camelCase names the REST API uses, e.g. "metrics", "costMicros".
//
// Every accessor is total: a missing or malformed field yields a zero value.
type Row map[string]any

// Lookup walks path through nested objects.
func (r Row) Lookup(path ...string) (any, bool) {
	var current any = map[string]any(r)

	for _, key := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		current, ok = obj[key]
		if !ok || current == nil {
			return nil, false
		}
	}

	return current, true
}

// String returns the field as text, or "" when absent.
func (r Row) String(path ...string) string {
	v, ok := r.Lookup(path...)
	if !ok {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	}

	return ""
}

// Enum returns the field, or Unknown when it is absent or empty.
func (r Row) Enum(path ...string) string {
	return r.StringOr(Unknown, path...)
}

// StringOr returns the field, or fallback when it is absent or empty.
func (r Row) StringOr(fallback string, path ...string) string {
	if s := r.String(path...); s != "" {
		return s
	}

	return fallback
}

// Decimal returns the field as an exact decimal, or zero when it is absent or
// not numeric.
func (r Row) Decimal(path ...string) decimal.Decimal {
	d, _ := r.decimal(path...)
	return d
}

func (r Row) decimal(path ...string) (decimal.Decimal, bool) {
	v, ok := r.Lookup(path...)
	if !ok {
		return decimal.Zero, false
	}

	var text string
	switch val := v.(type) {
	case json.Number:
		text = val.String()
	case string:
		text = strings.TrimSpace(val)
	case float64:
		return decimal.NewFromFloat(val), true
	default:
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, false
	}

	return d, true
}

func (r Row) Float(path ...string) float64 {
	return r.Decimal(path...).InexactFloat64()
}

// Int truncates the field towards zero.
func (r Row) Int(path ...string) int64 {
	return r.Decimal(path...).IntPart()
}

// Micros converts a micro-unit amount (1/1,000,000 of the account currency)
// to currency units.
func (r Row) Micros(path ...string) float64 {
	return r.Decimal(path...).Shift(-6).InexactFloat64()
}

// FirstMicros returns the first present, non-zero micro-unit amount among
// paths converted to currency units, or nil when none is set.
func (r Row) FirstMicros(paths ...[]string) *float64 {
	for _, path := range paths {
		if d, ok := r.decimal(path...); ok && !d.IsZero() {
			v := d.Shift(-6).InexactFloat64()
			return &v
		}
	}

	return nil
}

// FirstFloat is FirstMicros for fields that are not micro-units.
func (r Row) FirstFloat(paths ...[]string) *float64 {
	for _, path := range paths {
		if d, ok := r.decimal(path...); ok && !d.IsZero() {
			v := d.InexactFloat64()
			return &v
		}
	}

	return nil
}

// Ratio divides two fields, returning 0 when the denominator is 0.
func (r Row) Ratio(numerator, denominator []string) float64 {
	den := r.Decimal(denominator...)
	if den.IsZero() {
		return 0
	}

	return r.Decimal(numerator...).Div(den).InexactFloat64()
}

type SearchResponse struct {
	Results       []Row  `json:"results"`
	NextPageToken string `json:"nextPageToken,omitempty"`
	FieldMask     string `json:"fieldMask,omitempty"`
}
