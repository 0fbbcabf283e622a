package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/netdays/internal/core/domain"
)

func TestServer_handleNetworkDays(t *testing.T) {
	ctx := context.Background()
	server, err := NewServer(newTestPorts(t))
	require.NoError(t, err)

	tests := []struct {
		name      string
		input     NetworkDaysInput
		wantDays  int
		wantError string
	}{
		{
			name:     "plain range",
			input:    NetworkDaysInput{Start: "2023-01-01", End: "2023-01-31"},
			wantDays: 22,
		},
		{
			name:     "extra holidays",
			input:    NetworkDaysInput{Start: "2023-01-01", End: "2023-01-31", Holidays: []string{"2023-01-16", "2023-01-14"}},
			wantDays: 21,
		},
		{
			name:     "stored calendar",
			input:    NetworkDaysInput{Start: "2023-01-01", End: "2023-01-31", Calendar: "us"},
			wantDays: 20,
		},
		{
			name:     "serials and reversed order",
			input:    NetworkDaysInput{Start: "44957", End: "44927"},
			wantDays: -22,
		},
		{
			name:      "unparseable date",
			input:     NetworkDaysInput{Start: "soon", End: "2023-01-31"},
			wantError: "#VALUE!",
		},
		{
			name:      "negative serial",
			input:     NetworkDaysInput{Start: "-1", End: "2023-01-31"},
			wantError: "#NUM!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleNetworkDays(ctx, nil, tt.input)
			require.NoError(t, err)
			if tt.wantError != "" {
				assert.Nil(t, output.Days)
				assert.Equal(t, tt.wantError, output.Error)
				return
			}
			require.NotNil(t, output.Days)
			assert.Equal(t, tt.wantDays, *output.Days)
			assert.Empty(t, output.Error)
		})
	}
}

func TestServer_handleNetworkDays_UnknownCalendar(t *testing.T) {
	server, err := NewServer(newTestPorts(t))
	require.NoError(t, err)

	_, _, err = server.handleNetworkDays(context.Background(), nil,
		NetworkDaysInput{Start: "2023-01-01", End: "2023-01-31", Calendar: "mars"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestServer_handleWeekday(t *testing.T) {
	ctx := context.Background()
	server, err := NewServer(newTestPorts(t))
	require.NoError(t, err)

	_, output, err := server.handleWeekday(ctx, nil, WeekdayInput{Date: "2023-01-01"})
	require.NoError(t, err)
	require.NotNil(t, output.Weekday)
	assert.Equal(t, 1, *output.Weekday)

	_, output, err = server.handleWeekday(ctx, nil, WeekdayInput{Date: "2023-01-01", Type: 2})
	require.NoError(t, err)
	assert.Equal(t, 7, *output.Weekday)

	_, output, err = server.handleWeekday(ctx, nil, WeekdayInput{Date: "2023-01-01", Type: 4})
	require.NoError(t, err)
	assert.Equal(t, "#NUM!", output.Error)

	_, output, err = server.handleWeekday(ctx, nil, WeekdayInput{Date: "never"})
	require.NoError(t, err)
	assert.Equal(t, "#VALUE!", output.Error)
}

// failingCalendars is a driving.CalendarService whose List fails.
type failingCalendars struct {
	domainCalendarService
}

func (failingCalendars) List(context.Context) ([]domain.HolidayCalendar, error) {
	return nil, errors.New("disk on fire")
}

func TestServer_handleListCalendars(t *testing.T) {
	ctx := context.Background()

	t.Run("lists calendars", func(t *testing.T) {
		server, err := NewServer(newTestPorts(t))
		require.NoError(t, err)

		_, output, err := server.handleListCalendars(ctx, nil, ListCalendarsInput{})

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		assert.Equal(t, CalendarSummary{Name: "us", Description: "US federal", Holidays: 2}, output.Calendars[0])
	})

	t.Run("no calendar service", func(t *testing.T) {
		ports := newTestPorts(t)
		ports.Calendar = nil
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleListCalendars(ctx, nil, ListCalendarsInput{})

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.NotNil(t, output.Calendars)
	})

	t.Run("list error", func(t *testing.T) {
		ports := newTestPorts(t)
		ports.Calendar = failingCalendars{}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleListCalendars(ctx, nil, ListCalendarsInput{})

		assert.ErrorContains(t, err, "disk on fire")
	})
}
