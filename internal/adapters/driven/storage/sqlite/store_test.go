package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/netdays/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func testCalendar(id, name string) domain.HolidayCalendar {
	created := time.Date(2023, 1, 1, 9, 0, 0, 0, time.UTC)
	return domain.HolidayCalendar{
		ID:          id,
		Name:        name,
		Description: "test calendar " + name,
		Holidays: []domain.Holiday{
			{Date: 44928, Name: "New Year's Day (observed)"},
			{Date: 44942, Name: "Martin Luther King Jr. Day"},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "calendars.db"), store.Path())
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_RecordsMigrations(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	v, err := store.version()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	require.NoError(t, store.Close())

	// Reopening must not re-run migrations.
	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()
	v, err = store.version()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestCalendarStore_SaveAndGet(t *testing.T) {
	store := setupTestStore(t)
	calendars := store.CalendarStore()
	ctx := context.Background()

	cal := testCalendar("cal-1", "us")
	require.NoError(t, calendars.Save(ctx, cal))

	got, err := calendars.Get(ctx, "cal-1")
	require.NoError(t, err)
	assert.Equal(t, "us", got.Name)
	assert.Equal(t, cal.Description, got.Description)
	assert.Equal(t, cal.Holidays, got.Holidays)
	assert.True(t, cal.CreatedAt.Equal(got.CreatedAt))

	byName, err := calendars.GetByName(ctx, "us")
	require.NoError(t, err)
	assert.Equal(t, "cal-1", byName.ID)
	assert.Equal(t, []domain.CanonicalDate{44928, 44942}, byName.Dates())
}

func TestCalendarStore_NotFound(t *testing.T) {
	store := setupTestStore(t)
	calendars := store.CalendarStore()
	ctx := context.Background()

	_, err := calendars.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = calendars.GetByName(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCalendarStore_SaveReplacesHolidays(t *testing.T) {
	store := setupTestStore(t)
	calendars := store.CalendarStore()
	ctx := context.Background()

	cal := testCalendar("cal-1", "us")
	require.NoError(t, calendars.Save(ctx, cal))

	cal.Description = "updated"
	cal.Holidays = []domain.Holiday{{Date: 45108, Name: "Independence Day"}}
	require.NoError(t, calendars.Save(ctx, cal))

	got, err := calendars.Get(ctx, "cal-1")
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Description)
	assert.Equal(t, cal.Holidays, got.Holidays)
}

func TestCalendarStore_FractionalSerialsRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	calendars := store.CalendarStore()
	ctx := context.Background()

	cal := testCalendar("cal-1", "us")
	cal.Holidays = []domain.Holiday{{Date: 44942.5}}
	require.NoError(t, calendars.Save(ctx, cal))

	got, err := calendars.Get(ctx, "cal-1")
	require.NoError(t, err)
	assert.Equal(t, []domain.CanonicalDate{44942.5}, got.Dates())
}

func TestCalendarStore_DuplicateName(t *testing.T) {
	store := setupTestStore(t)
	calendars := store.CalendarStore()
	ctx := context.Background()

	require.NoError(t, calendars.Save(ctx, testCalendar("cal-1", "us")))

	err := calendars.Save(ctx, testCalendar("cal-2", "us"))
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestCalendarStore_ListOrderedByName(t *testing.T) {
	store := setupTestStore(t)
	calendars := store.CalendarStore()
	ctx := context.Background()

	require.NoError(t, calendars.Save(ctx, testCalendar("cal-1", "uk")))
	require.NoError(t, calendars.Save(ctx, testCalendar("cal-2", "de")))

	cals, err := calendars.List(ctx)
	require.NoError(t, err)
	require.Len(t, cals, 2)
	assert.Equal(t, "de", cals[0].Name)
	assert.Equal(t, "uk", cals[1].Name)
	assert.Len(t, cals[0].Holidays, 2)
}

func TestCalendarStore_ListEmpty(t *testing.T) {
	store := setupTestStore(t)

	cals, err := store.CalendarStore().List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, cals)
}

func TestCalendarStore_DeleteCascades(t *testing.T) {
	store := setupTestStore(t)
	calendars := store.CalendarStore()
	ctx := context.Background()

	require.NoError(t, calendars.Save(ctx, testCalendar("cal-1", "us")))
	require.NoError(t, calendars.Delete(ctx, "cal-1"))

	_, err := calendars.Get(ctx, "cal-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var count int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM holidays").Scan(&count))
	assert.Equal(t, 0, count)

	// The name is free again.
	require.NoError(t, calendars.Save(ctx, testCalendar("cal-2", "us")))
}
