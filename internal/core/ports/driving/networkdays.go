package driving

import (
	"context"

	"github.com/custodia-labs/netdays/internal/core/domain"
)

// NetworkDaysService counts working days between dates.
type NetworkDaysService interface {
	// Evaluate returns the signed number of whole working days between start
	// and end, inclusive, excluding weekends and the given holidays.
	// Holidays may be nested slices. Resolution failures are returned verbatim.
	Evaluate(start, end any, holidays ...any) (int, error)

	// Formula is Evaluate returned as a cell value.
	Formula(start, end any, holidays ...any) domain.FormulaResult

	// Weekday returns the day of week of date under the given convention.
	Weekday(date any, convention int) (int, error)

	// Count evaluates using the holidays of a stored calendar plus extra.
	// An empty calendar name selects the configured default calendar.
	Count(ctx context.Context, start, end any, calendar string, extra ...any) (int, error)
}
