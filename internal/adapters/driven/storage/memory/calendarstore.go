package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/netdays/internal/core/domain"
	"github.com/custodia-labs/netdays/internal/core/ports/driven"
)

// Ensure CalendarStore implements the interface.
var _ driven.CalendarStore = (*CalendarStore)(nil)

// CalendarStore is an in-memory implementation of driven.CalendarStore.
type CalendarStore struct {
	mu        sync.RWMutex
	calendars map[string]domain.HolidayCalendar
}

// NewCalendarStore creates a new in-memory calendar store.
func NewCalendarStore() *CalendarStore {
	return &CalendarStore{
		calendars: make(map[string]domain.HolidayCalendar),
	}
}

// Save stores or updates a calendar.
func (s *CalendarStore) Save(_ context.Context, cal domain.HolidayCalendar) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, existing := range s.calendars {
		if existing.Name == cal.Name && id != cal.ID {
			return domain.ErrAlreadyExists
		}
	}
	s.calendars[cal.ID] = copyCalendar(cal)
	return nil
}

// Get retrieves a calendar by ID.
func (s *CalendarStore) Get(_ context.Context, id string) (*domain.HolidayCalendar, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cal, ok := s.calendars[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cal = copyCalendar(cal)
	return &cal, nil
}

// GetByName retrieves a calendar by name.
func (s *CalendarStore) GetByName(_ context.Context, name string) (*domain.HolidayCalendar, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, cal := range s.calendars {
		if cal.Name == name {
			cal = copyCalendar(cal)
			return &cal, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Delete removes a calendar.
func (s *CalendarStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.calendars, id)
	return nil
}

// List returns all calendars ordered by name.
func (s *CalendarStore) List(_ context.Context) ([]domain.HolidayCalendar, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.HolidayCalendar, 0, len(s.calendars))
	for _, cal := range s.calendars {
		result = append(result, copyCalendar(cal))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// copyCalendar detaches the holiday slice so callers cannot mutate stored state.
func copyCalendar(cal domain.HolidayCalendar) domain.HolidayCalendar {
	if cal.Holidays != nil {
		cal.Holidays = append([]domain.Holiday(nil), cal.Holidays...)
	}
	return cal
}
