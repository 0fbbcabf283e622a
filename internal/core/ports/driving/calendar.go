package driving

import (
	"context"

	"github.com/custodia-labs/netdays/internal/core/domain"
	"github.com/custodia-labs/netdays/internal/core/ports/driven"
)

// CalendarService manages named holiday calendars.
type CalendarService interface {
	// Create adds an empty calendar.
	Create(ctx context.Context, name, description string) (*domain.HolidayCalendar, error)

	// Get retrieves a calendar by name.
	Get(ctx context.Context, name string) (*domain.HolidayCalendar, error)

	// List returns all calendars.
	List(ctx context.Context) ([]domain.HolidayCalendar, error)

	// Delete removes a calendar by name.
	Delete(ctx context.Context, name string) error

	// AddHolidays merges holidays into a calendar and returns how many dates were new.
	AddHolidays(ctx context.Context, name string, holidays []domain.Holiday) (int, error)

	// RemoveHoliday removes the holiday on date, which is resolved like any date input.
	RemoveHoliday(ctx context.Context, name string, date any) error

	// Import fetches holidays from source and merges them into the calendar,
	// creating the calendar if needed. Returns how many dates were new.
	Import(ctx context.Context, name string, source driven.HolidaySource) (int, error)
}
