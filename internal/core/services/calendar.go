package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/netdays/internal/core/domain"
	"github.com/custodia-labs/netdays/internal/core/ports/driven"
	"github.com/custodia-labs/netdays/internal/core/ports/driving"
	"github.com/custodia-labs/netdays/internal/logger"
)

// Ensure CalendarService implements the interface.
var _ driving.CalendarService = (*CalendarService)(nil)

// CalendarService manages named holiday calendars.
type CalendarService struct {
	store    driven.CalendarStore
	resolver driven.DateValueResolver
	now      func() time.Time
}

// NewCalendarService creates a new calendar service.
// The resolver is used by RemoveHoliday to interpret raw date inputs.
func NewCalendarService(store driven.CalendarStore, resolver driven.DateValueResolver) *CalendarService {
	return &CalendarService{
		store:    store,
		resolver: resolver,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create adds an empty calendar.
func (s *CalendarService) Create(ctx context.Context, name, description string) (*domain.HolidayCalendar, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	existing, err := s.store.GetByName(ctx, name)
	if err == nil && existing != nil {
		return nil, domain.ErrAlreadyExists
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := s.now()
	cal := domain.HolidayCalendar{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Save(ctx, cal); err != nil {
		return nil, fmt.Errorf("save calendar: %w", err)
	}
	logger.Info("Created calendar %q (%s)", cal.Name, cal.ID)
	return &cal, nil
}

// Get retrieves a calendar by name.
func (s *CalendarService) Get(ctx context.Context, name string) (*domain.HolidayCalendar, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.GetByName(ctx, name)
}

// List returns all calendars.
func (s *CalendarService) List(ctx context.Context) ([]domain.HolidayCalendar, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.List(ctx)
}

// Delete removes a calendar by name.
func (s *CalendarService) Delete(ctx context.Context, name string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	cal, err := s.store.GetByName(ctx, name)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, cal.ID)
}

// AddHolidays merges holidays into the named calendar.
func (s *CalendarService) AddHolidays(ctx context.Context, name string, holidays []domain.Holiday) (int, error) {
	if s.store == nil {
		return 0, domain.ErrNotImplemented
	}
	cal, err := s.store.GetByName(ctx, name)
	if err != nil {
		return 0, err
	}

	added := cal.AddHolidays(holidays...)
	cal.UpdatedAt = s.now()
	if err := s.store.Save(ctx, *cal); err != nil {
		return 0, fmt.Errorf("save calendar: %w", err)
	}
	logger.Debug("Calendar %q: %d new of %d supplied holiday(s)", name, added, len(holidays))
	return added, nil
}

// RemoveHoliday removes the holiday on date from the named calendar.
func (s *CalendarService) RemoveHoliday(ctx context.Context, name string, date any) error {
	if s.store == nil || s.resolver == nil {
		return domain.ErrNotImplemented
	}
	d, err := s.resolver.Resolve(date)
	if err != nil {
		return err
	}

	cal, err := s.store.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if !cal.RemoveHoliday(d) {
		return domain.ErrNotFound
	}
	cal.UpdatedAt = s.now()
	return s.store.Save(ctx, *cal)
}

// Import fetches holidays from source into the named calendar,
// creating the calendar when it does not exist yet.
func (s *CalendarService) Import(ctx context.Context, name string, source driven.HolidaySource) (int, error) {
	if s.store == nil {
		return 0, domain.ErrNotImplemented
	}
	if source == nil {
		return 0, domain.ErrInvalidInput
	}

	logger.Section("Import " + source.Describe())
	holidays, err := source.Fetch(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch holidays from %s: %w", source.Describe(), err)
	}
	logger.Debug("Fetched %d holiday(s)", len(holidays))

	if _, err := s.store.GetByName(ctx, name); errors.Is(err, domain.ErrNotFound) {
		if _, err := s.Create(ctx, name, "Imported from "+source.Describe()); err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, err
	}

	return s.AddHolidays(ctx, name, holidays)
}
