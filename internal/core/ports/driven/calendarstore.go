package driven

import (
	"context"

	"github.com/custodia-labs/netdays/internal/core/domain"
)

// CalendarStore persists holiday calendars.
type CalendarStore interface {
	// Save stores or updates a calendar together with its holidays.
	Save(ctx context.Context, cal domain.HolidayCalendar) error

	// Get retrieves a calendar by ID.
	Get(ctx context.Context, id string) (*domain.HolidayCalendar, error)

	// GetByName retrieves a calendar by its unique name.
	GetByName(ctx context.Context, name string) (*domain.HolidayCalendar, error)

	// Delete removes a calendar and its holidays.
	Delete(ctx context.Context, id string) error

	// List returns all calendars ordered by name.
	List(ctx context.Context) ([]domain.HolidayCalendar, error)
}
