package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/custodia-labs/netdays/internal/core/domain"
	"github.com/custodia-labs/netdays/internal/core/ports/driven"
	"github.com/custodia-labs/netdays/internal/core/ports/driving"
	"github.com/custodia-labs/netdays/internal/logger"
)

// Ensure NetworkDaysService implements the interface.
var _ driving.NetworkDaysService = (*NetworkDaysService)(nil)

// NetworkDaysService implements the NETWORKDAYS spreadsheet function.
// It holds no mutable state and is safe for concurrent use.
type NetworkDaysService struct {
	resolver      driven.DateValueResolver
	flattener     driven.ArgumentFlattener
	calendarStore driven.CalendarStore
	settings      driving.SettingsService
}

// NewNetworkDaysService creates a new network days service.
func NewNetworkDaysService(
	resolver driven.DateValueResolver,
	flattener driven.ArgumentFlattener,
) *NetworkDaysService {
	return &NetworkDaysService{
		resolver:  resolver,
		flattener: flattener,
	}
}

// SetCalendarStore enables Count with stored calendars.
func (s *NetworkDaysService) SetCalendarStore(store driven.CalendarStore) {
	s.calendarStore = store
}

// SetSettingsService enables the default calendar fallback in Count.
func (s *NetworkDaysService) SetSettingsService(settings driving.SettingsService) {
	s.settings = settings
}

// Evaluate returns the signed number of working days between start and end.
func (s *NetworkDaysService) Evaluate(start, end any, holidays ...any) (int, error) {
	if s.resolver == nil || s.flattener == nil {
		return 0, domain.ErrNotImplemented
	}

	sDate, err := s.resolve(start)
	if err != nil {
		return 0, err
	}
	eDate, err := s.resolve(end)
	if err != nil {
		return 0, err
	}

	raw := s.flattener.Flatten(holidays...)
	holidayDates := make([]domain.CanonicalDate, 0, len(raw))
	for _, h := range raw {
		d, err := s.resolve(h)
		if err != nil {
			return 0, err
		}
		holidayDates = append(holidayDates, d)
	}

	return countWorkingDays(domain.NewDateRange(sDate, eDate), holidayDates), nil
}

// Formula wraps Evaluate as a cell value.
func (s *NetworkDaysService) Formula(start, end any, holidays ...any) domain.FormulaResult {
	days, err := s.Evaluate(start, end, holidays...)
	return domain.FormulaResult{Days: days, Err: err}
}

// Weekday returns the day of week of date under convention.
func (s *NetworkDaysService) Weekday(date any, convention int) (int, error) {
	if s.resolver == nil {
		return 0, domain.ErrNotImplemented
	}
	d, err := s.resolve(date)
	if err != nil {
		return 0, err
	}
	return domain.DayOfWeek(d, domain.WeekdayConvention(convention))
}

// Count evaluates with the holidays of a stored calendar plus extra holidays.
func (s *NetworkDaysService) Count(
	ctx context.Context,
	start, end any,
	calendar string,
	extra ...any,
) (int, error) {
	if calendar == "" && s.settings != nil {
		settings, err := s.settings.Get()
		if err != nil {
			return 0, fmt.Errorf("load settings: %w", err)
		}
		calendar = settings.Calendar.Default
	}

	if calendar == "" {
		logger.Debug("No calendar selected, using %d explicit holiday argument(s)", len(extra))
		return s.Evaluate(start, end, extra...)
	}

	if s.calendarStore == nil {
		return 0, domain.ErrNotImplemented
	}
	cal, err := s.calendarStore.GetByName(ctx, calendar)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, fmt.Errorf("calendar %q: %w", calendar, domain.ErrNotFound)
		}
		return 0, fmt.Errorf("load calendar %q: %w", calendar, err)
	}
	logger.Debug("Calendar %q: %d holiday(s)", cal.Name, len(cal.Holidays))

	dates := cal.Dates()
	args := make([]any, 0, len(dates)+len(extra))
	for _, d := range dates {
		args = append(args, float64(d))
	}
	args = append(args, extra...)

	return s.Evaluate(start, end, args...)
}

func (s *NetworkDaysService) resolve(input any) (domain.CanonicalDate, error) {
	d, err := s.resolver.Resolve(input)
	if err != nil {
		var resErr *domain.DateResolutionError
		if errors.As(err, &resErr) && resErr.Reason != "" {
			logger.Debug("Cannot resolve %v: %s", input, resErr.Reason)
		}
		return 0, err
	}
	return d, nil
}

// countWorkingDays is the NETWORKDAYS arithmetic over a resolved range.
func countWorkingDays(r domain.DateRange, holidays []domain.CanonicalDate) int {
	startDow := 6 - domain.MondayOrdinal(r.Start)
	if startDow < 0 {
		startDow = 5
	}

	endDow := domain.MondayOrdinal(r.End)
	if domain.IsWeekend(r.End) {
		endDow = 0
	}

	wholeWeekDays := int(math.Floor(float64(r.End-r.Start)/7)) * 5

	partWeekDays := startDow + endDow
	if partWeekDays > 5 {
		partWeekDays -= 5
	}

	counted := make(map[domain.CanonicalDate]struct{}, len(holidays))
	for _, h := range holidays {
		if !r.Contains(h) || domain.IsWeekend(h) {
			continue
		}
		if _, seen := counted[h]; seen {
			continue
		}
		counted[h] = struct{}{}
		partWeekDays--
	}

	result := wholeWeekDays + partWeekDays
	if r.Reversed() {
		return -result
	}
	return result
}
