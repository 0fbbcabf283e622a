package driven

import (
	"context"

	"github.com/custodia-labs/netdays/internal/core/domain"
)

// HolidaySource supplies holidays from outside the application,
// such as a workbook, a rule set or a remote calendar.
type HolidaySource interface {
	// Fetch returns the holidays the source currently provides.
	Fetch(ctx context.Context) ([]domain.Holiday, error)

	// Describe returns a short human-readable description of the source.
	Describe() string
}
