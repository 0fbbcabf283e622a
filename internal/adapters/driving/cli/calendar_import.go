package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/netdays/internal/adapters/driven/datevalue"
	"github.com/custodia-labs/netdays/internal/adapters/driven/holidays/excel"
	"github.com/custodia-labs/netdays/internal/adapters/driven/holidays/gcal"
	"github.com/custodia-labs/netdays/internal/adapters/driven/holidays/rules"
	"github.com/custodia-labs/netdays/internal/core/ports/driven"
	"github.com/custodia-labs/netdays/internal/logger"
)

var log = logger.Component("cli")

// xlsx import flags.
var (
	xlsxSheet      string
	xlsxColumn     string
	xlsxNameColumn string
	xlsxHeaderRows int
	xlsxWatch      bool
)

// rules import flags.
var (
	rulesRegion string
	rulesFrom   int
	rulesTo     int
	rulesActual bool
)

// google import flags.
var (
	googleFrom   string
	googleTo     string
	googleAPIKey string
)

var calendarImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import holidays into a calendar",
	Long: `Import merges holidays from an external source into a calendar,
creating the calendar if it does not exist. Dates already present are kept.`,
}

var importXLSXCmd = &cobra.Command{
	Use:   "xlsx NAME FILE",
	Short: "Import holidays from an xlsx workbook",
	Long: `Reads one date per row from a worksheet column. Cells may hold date
serials, formatted dates or date text.

With --watch the workbook is imported again each time it is saved,
until interrupted.`,
	Args: cobra.ExactArgs(2),
	RunE: runImportXLSX,
}

var importRulesCmd = &cobra.Command{
	Use:   "rules NAME",
	Short: "Generate public holidays from built-in rules",
	Args:  cobra.ExactArgs(1),
	RunE:  runImportRules,
}

var importGoogleCmd = &cobra.Command{
	Use:   "google NAME CALENDAR_ID",
	Short: "Import all-day events from a public Google calendar",
	Long: `Imports all-day events from a public Google calendar, for example
"en.usa#holiday@group.v.calendar.google.com".

Requires an API key, set with 'netdays settings set google.api_key KEY'
or --api-key.`,
	Args: cobra.ExactArgs(2),
	RunE: runImportGoogle,
}

func init() {
	importXLSXCmd.Flags().StringVar(&xlsxSheet, "sheet", "", "worksheet name (default first sheet)")
	importXLSXCmd.Flags().StringVar(&xlsxColumn, "column", "A", "column holding dates")
	importXLSXCmd.Flags().StringVar(&xlsxNameColumn, "name-column", "", "column holding holiday names")
	importXLSXCmd.Flags().IntVar(&xlsxHeaderRows, "header-rows", 0, "rows to skip before the data")
	importXLSXCmd.Flags().BoolVarP(&xlsxWatch, "watch", "w", false, "import again whenever the workbook changes")

	year := time.Now().Year()
	importRulesCmd.Flags().StringVar(&rulesRegion, "region", "us", "rule set region")
	importRulesCmd.Flags().IntVar(&rulesFrom, "from", year, "first year")
	importRulesCmd.Flags().IntVar(&rulesTo, "to", 0, "last year (default same as --from)")
	importRulesCmd.Flags().BoolVar(&rulesActual, "actual", false, "use actual dates instead of observed weekdays")

	importGoogleCmd.Flags().StringVar(&googleFrom, "from", "", "first date (default 1 January this year)")
	importGoogleCmd.Flags().StringVar(&googleTo, "to", "", "last date (default 31 December this year)")
	importGoogleCmd.Flags().StringVar(&googleAPIKey, "api-key", "", "Google API key (overrides settings)")

	calendarImportCmd.AddCommand(importXLSXCmd)
	calendarImportCmd.AddCommand(importRulesCmd)
	calendarImportCmd.AddCommand(importGoogleCmd)
	calendarCmd.AddCommand(calendarImportCmd)
}

func runImportXLSX(cmd *cobra.Command, args []string) error {
	if err := requireCalendarService(); err != nil {
		return err
	}
	if dateResolver == nil {
		return errors.New("date resolver not configured")
	}

	name, path := args[0], args[1]
	src := excel.NewSource(excel.Options{
		Path:       path,
		Sheet:      xlsxSheet,
		Column:     xlsxColumn,
		NameColumn: xlsxNameColumn,
		HeaderRows: xlsxHeaderRows,
	}, dateResolver)

	if err := importFrom(cmd, name, src); err != nil {
		return err
	}
	if !xlsxWatch {
		return nil
	}

	return watchWorkbook(cmd, name, path, src)
}

// watchWorkbook imports src again on each change until the command context ends.
func watchWorkbook(cmd *cobra.Command, name, path string, src driven.HolidaySource) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	w := excel.NewWatcher(path)
	changes, err := w.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	defer w.Close()

	cmd.Printf("Watching %s for changes. Press Ctrl+C to stop.\n", path)
	for change := range changes {
		log.Debug("workbook changed: %s (%s)", change.Path, change.Op)
		if err := importFrom(cmd, name, src); err != nil {
			// A half-saved workbook fails to parse; the next save retries.
			log.Warn("re-import failed: %v", err)
			cmd.PrintErrf("Import failed: %v\n", err)
		}
	}
	return nil
}

func runImportRules(cmd *cobra.Command, args []string) error {
	if err := requireCalendarService(); err != nil {
		return err
	}
	if rulesTo != 0 && rulesTo < rulesFrom {
		return fmt.Errorf("--to %d is before --from %d", rulesTo, rulesFrom)
	}

	src := rules.NewSource(rules.Options{
		Region:   rulesRegion,
		FromYear: rulesFrom,
		ToYear:   rulesTo,
		Actual:   rulesActual,
	})
	return importFrom(cmd, args[0], src)
}

func runImportGoogle(cmd *cobra.Command, args []string) error {
	if err := requireCalendarService(); err != nil {
		return err
	}
	if dateResolver == nil {
		return errors.New("date resolver not configured")
	}

	apiKey := googleAPIKey
	rps := 0.0
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		if apiKey == "" {
			apiKey = settings.Google.APIKey
		}
		rps = settings.Google.RequestsPerSecond
	}
	if apiKey == "" {
		return errors.New("no Google API key: set one with 'netdays settings set google.api_key KEY' or --api-key")
	}

	year := time.Now().Year()
	from, err := resolveTime(googleFrom, time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	to, err := resolveTime(googleTo, time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}
	if to.Before(from) {
		return errors.New("--to is before --from")
	}

	src := gcal.NewSource(gcal.Options{
		CalendarID:        args[1],
		APIKey:            apiKey,
		From:              from,
		To:                to.AddDate(0, 0, 1),
		RequestsPerSecond: rps,
	})
	return importFrom(cmd, args[0], src)
}

// resolveTime resolves a date flag, or returns def when it is empty.
func resolveTime(value string, def time.Time) (time.Time, error) {
	if value == "" {
		return def, nil
	}
	d, err := dateResolver.Resolve(value)
	if err != nil {
		return time.Time{}, err
	}
	t, err := datevalue.TimeFromSerial(d)
	if err != nil {
		return time.Time{}, err
	}
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC), nil
}

func importFrom(cmd *cobra.Command, name string, src driven.HolidaySource) error {
	done := logger.Timer("import " + src.Describe())
	added, err := calendarService.Import(cmd.Context(), name, src)
	done()
	if err != nil {
		return fmt.Errorf("failed to import from %s: %w", src.Describe(), err)
	}

	cmd.Printf("Imported %d new holiday(s) into %s from %s\n", added, name, src.Describe())
	return nil
}
