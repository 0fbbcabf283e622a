package datevalue

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/netdays/internal/core/domain"
	"github.com/custodia-labs/netdays/internal/core/ports/driven"
)

// Ensure Resolver implements the interface.
var _ driven.DateValueResolver = (*Resolver)(nil)

// layouts are the textual date forms accepted by Resolve, tried in order.
var layouts = []string{
	time.DateOnly,
	"2006/01/02",
	time.DateTime,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"1/2/2006",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"2-Jan-2006",
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// Resolver converts raw inputs into serials of the 1900 date system.
//
//   - nil resolves to serial 0 (a blank cell)
//   - numbers are taken as serials; negative numbers fail with #NUM!
//   - time.Time values are converted from their wall clock
//   - strings are numeric serials or one of the accepted date layouts
//   - anything else fails with #VALUE!
type Resolver struct{}

// NewResolver creates a new resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve converts input to a CanonicalDate.
func (r *Resolver) Resolve(input any) (domain.CanonicalDate, error) {
	switch v := input.(type) {
	case nil:
		return 0, nil
	case domain.CanonicalDate:
		return fromNumber(input, float64(v))
	case float64:
		return fromNumber(input, v)
	case float32:
		return fromNumber(input, float64(v))
	case int:
		return fromNumber(input, float64(v))
	case int64:
		return fromNumber(input, float64(v))
	case time.Time:
		return SerialFromTime(v)
	case *time.Time:
		if v == nil {
			return 0, nil
		}
		return SerialFromTime(*v)
	case string:
		return fromString(v)
	case bool:
		return 0, domain.NewValueError(input, "boolean is not a date")
	}

	// Named and sized numeric types.
	rv := reflect.ValueOf(input)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromNumber(input, float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fromNumber(input, float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return fromNumber(input, rv.Float())
	case reflect.String:
		return fromString(rv.String())
	default:
		return 0, domain.NewValueError(input, "unsupported type "+rv.Type().String())
	}
}

func fromNumber(input any, v float64) (domain.CanonicalDate, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, domain.NewNumError(input, "not a finite number")
	}
	if v < 0 {
		return 0, domain.NewNumError(input, "negative serial")
	}
	return domain.CanonicalDate(v), nil
}

func fromString(s string) (domain.CanonicalDate, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, domain.NewValueError(s, "empty string")
	}

	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return fromNumber(s, v)
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, trimmed)
		if err == nil {
			return SerialFromTime(t)
		}
	}

	return 0, domain.NewValueError(s, "unrecognised date "+strconv.Quote(trimmed))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
