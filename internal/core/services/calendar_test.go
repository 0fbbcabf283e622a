package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/netdays/internal/adapters/driven/datevalue"
	"github.com/custodia-labs/netdays/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/netdays/internal/core/domain"
)

// stubSource implements driven.HolidaySource for testing.
type stubSource struct {
	holidays []domain.Holiday
	err      error
}

func (s *stubSource) Fetch(_ context.Context) ([]domain.Holiday, error) {
	return s.holidays, s.err
}

func (s *stubSource) Describe() string {
	return "stub"
}

func newTestCalendarService() (*CalendarService, *memory.CalendarStore) {
	store := memory.NewCalendarStore()
	service := NewCalendarService(store, datevalue.NewResolver())
	fixed := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }
	return service, store
}

func TestCalendarService_Create(t *testing.T) {
	service, _ := newTestCalendarService()
	ctx := context.Background()

	cal, err := service.Create(ctx, "  us  ", "US federal")

	require.NoError(t, err)
	assert.NotEmpty(t, cal.ID)
	assert.Equal(t, "us", cal.Name)
	assert.Equal(t, "US federal", cal.Description)
	assert.Empty(t, cal.Holidays)

	stored, err := service.Get(ctx, "us")
	require.NoError(t, err)
	assert.Equal(t, cal.ID, stored.ID)
}

func TestCalendarService_Create_Errors(t *testing.T) {
	service, _ := newTestCalendarService()
	ctx := context.Background()

	_, err := service.Create(ctx, "   ", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = service.Create(ctx, "us", "")
	require.NoError(t, err)
	_, err = service.Create(ctx, "us", "again")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestCalendarService_ListAndDelete(t *testing.T) {
	service, _ := newTestCalendarService()
	ctx := context.Background()

	_, err := service.Create(ctx, "uk", "")
	require.NoError(t, err)
	_, err = service.Create(ctx, "de", "")
	require.NoError(t, err)

	cals, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, cals, 2)
	assert.Equal(t, "de", cals[0].Name)
	assert.Equal(t, "uk", cals[1].Name)

	require.NoError(t, service.Delete(ctx, "de"))
	_, err = service.Get(ctx, "de")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, service.Delete(ctx, "de"), domain.ErrNotFound)
}

func TestCalendarService_AddHolidays(t *testing.T) {
	service, _ := newTestCalendarService()
	ctx := context.Background()
	_, err := service.Create(ctx, "us", "")
	require.NoError(t, err)

	added, err := service.AddHolidays(ctx, "us", []domain.Holiday{
		{Date: 44942, Name: "MLK"},
		{Date: 44928, Name: "New Year"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	added, err = service.AddHolidays(ctx, "us", []domain.Holiday{
		{Date: 44942, Name: "Martin Luther King Jr. Day"},
		{Date: 44977},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	cal, err := service.Get(ctx, "us")
	require.NoError(t, err)
	assert.Equal(t, []domain.CanonicalDate{44928, 44942, 44977}, cal.Dates())
	assert.Equal(t, "Martin Luther King Jr. Day", cal.Holidays[1].Name)
}

func TestCalendarService_AddHolidays_UnknownCalendar(t *testing.T) {
	service, _ := newTestCalendarService()

	_, err := service.AddHolidays(context.Background(), "nope", nil)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCalendarService_RemoveHoliday(t *testing.T) {
	service, _ := newTestCalendarService()
	ctx := context.Background()
	_, err := service.Create(ctx, "us", "")
	require.NoError(t, err)
	_, err = service.AddHolidays(ctx, "us", []domain.Holiday{{Date: 44942}, {Date: 44928}})
	require.NoError(t, err)

	require.NoError(t, service.RemoveHoliday(ctx, "us", "2023-01-16"))

	cal, err := service.Get(ctx, "us")
	require.NoError(t, err)
	assert.Equal(t, []domain.CanonicalDate{44928}, cal.Dates())

	assert.ErrorIs(t, service.RemoveHoliday(ctx, "us", "2023-01-16"), domain.ErrNotFound)
	assert.ErrorIs(t, service.RemoveHoliday(ctx, "us", "tomorrow"), domain.ErrDateResolution)
}

func TestCalendarService_Import_CreatesCalendar(t *testing.T) {
	service, _ := newTestCalendarService()
	ctx := context.Background()
	source := &stubSource{holidays: []domain.Holiday{{Date: 44928}, {Date: 44942}, {Date: 44928}}}

	added, err := service.Import(ctx, "imported", source)

	require.NoError(t, err)
	assert.Equal(t, 2, added)
	cal, err := service.Get(ctx, "imported")
	require.NoError(t, err)
	assert.Equal(t, "Imported from stub", cal.Description)
	assert.Len(t, cal.Holidays, 2)
}

func TestCalendarService_Import_ExistingCalendar(t *testing.T) {
	service, _ := newTestCalendarService()
	ctx := context.Background()
	_, err := service.Create(ctx, "us", "mine")
	require.NoError(t, err)
	_, err = service.AddHolidays(ctx, "us", []domain.Holiday{{Date: 44928}})
	require.NoError(t, err)

	added, err := service.Import(ctx, "us", &stubSource{holidays: []domain.Holiday{{Date: 44928}, {Date: 44942}}})

	require.NoError(t, err)
	assert.Equal(t, 1, added)
	cal, err := service.Get(ctx, "us")
	require.NoError(t, err)
	assert.Equal(t, "mine", cal.Description)
}

func TestCalendarService_Import_SourceError(t *testing.T) {
	service, _ := newTestCalendarService()
	ctx := context.Background()

	_, err := service.Import(ctx, "us", &stubSource{err: errors.New("boom")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	_, err = service.Get(ctx, "us")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = service.Import(ctx, "us", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCalendarService_NilStore(t *testing.T) {
	service := NewCalendarService(nil, nil)
	ctx := context.Background()

	_, err := service.Create(ctx, "x", "")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	_, err = service.List(ctx)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	assert.ErrorIs(t, service.Delete(ctx, "x"), domain.ErrNotImplemented)
}
