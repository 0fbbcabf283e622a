package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/netdays/internal/adapters/driven/datevalue"
	"github.com/custodia-labs/netdays/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/netdays/internal/core/domain"
	"github.com/custodia-labs/netdays/internal/core/services"
)

// testServices holds the concrete services behind the CLI during a test.
type testServices struct {
	networkDays *services.NetworkDaysService
	calendars   *services.CalendarService
	settings    *services.SettingsService
}

// setupTestServices wires real services over in-memory stores with one
// "us" calendar holding 2023-01-02 and 2023-01-16.
func setupTestServices(t *testing.T) *testServices {
	t.Helper()

	resolver := datevalue.NewResolver()
	calendarStore := memory.NewCalendarStore()
	settings := services.NewSettingsService(memory.NewConfigStore())

	calendars := services.NewCalendarService(calendarStore, resolver)
	_, err := calendars.Create(context.Background(), "us", "US federal")
	require.NoError(t, err)
	_, err = calendars.AddHolidays(context.Background(), "us", []domain.Holiday{
		{Date: 44928, Name: "New Year's Day (observed)"},
		{Date: 44942, Name: "Martin Luther King Jr. Day"},
	})
	require.NoError(t, err)

	networkDays := services.NewNetworkDaysService(resolver, datevalue.NewFlattener())
	networkDays.SetCalendarStore(calendarStore)
	networkDays.SetSettingsService(settings)

	SetServices(Services{
		NetworkDays: networkDays,
		Calendar:    calendars,
		Settings:    settings,
		Resolver:    resolver,
	})
	t.Cleanup(func() { SetServices(Services{}) })

	return &testServices{
		networkDays: networkDays,
		calendars:   calendars,
		settings:    settings,
	}
}

// executeCommand runs the root command with args and returns its output.
// Flag variables are reset afterwards so tests do not leak into each other.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags()
	}()

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func resetFlags() {
	verbose = false
	countCalendar = ""
	weekdayType = int(domain.SundayFirst)
	calendarDescription = ""
	calendarLabel = ""
	calendarSheet = "Holidays"
	xlsxSheet, xlsxColumn, xlsxNameColumn = "", "A", ""
	xlsxHeaderRows = 0
	xlsxWatch = false
	rulesRegion, rulesFrom, rulesTo, rulesActual = "us", time.Now().Year(), 0, false
	googleFrom, googleTo, googleAPIKey = "", "", ""
	settingsClearDefault = false
	serveAddr, serveNoMCP = "", false
	mcpAddr = ""
}

func TestRootCmd_Metadata(t *testing.T) {
	require.Equal(t, "netdays", rootCmd.Use)
	require.True(t, rootCmd.SilenceUsage)

	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"count", "weekday", "calendar", "settings", "serve", "mcp", "version"} {
		require.True(t, names[want], "missing command %s", want)
	}
}

func TestRootCmd_VerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	require.Equal(t, "v", flag.Shorthand)
}
