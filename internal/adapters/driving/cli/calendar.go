package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/netdays/internal/adapters/driven/datevalue"
	"github.com/custodia-labs/netdays/internal/adapters/driven/holidays/excel"
	"github.com/custodia-labs/netdays/internal/core/domain"
)

var (
	calendarDescription string
	calendarLabel       string
	calendarSheet       string
)

var calendarCmd = &cobra.Command{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "Manage holiday calendars",
	Long: `Holiday calendars are named sets of holidays stored locally.
Use them with 'netdays count --calendar NAME'.`,
}

var calendarCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create an empty calendar",
	Args:  cobra.ExactArgs(1),
	RunE:  runCalendarCreate,
}

var calendarListCmd = &cobra.Command{
	Use:   "list",
	Short: "List calendars",
	Args:  cobra.NoArgs,
	RunE:  runCalendarList,
}

var calendarShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show the holidays of a calendar",
	Args:  cobra.ExactArgs(1),
	RunE:  runCalendarShow,
}

var calendarDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a calendar",
	Args:  cobra.ExactArgs(1),
	RunE:  runCalendarDelete,
}

var calendarAddCmd = &cobra.Command{
	Use:   "add NAME DATE [DATE...]",
	Short: "Add holidays to a calendar",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runCalendarAdd,
}

var calendarRemoveCmd = &cobra.Command{
	Use:   "remove NAME DATE",
	Short: "Remove a holiday from a calendar",
	Args:  cobra.ExactArgs(2),
	RunE:  runCalendarRemove,
}

var calendarExportCmd = &cobra.Command{
	Use:   "export NAME FILE",
	Short: "Export a calendar to an xlsx workbook",
	Long: `Writes the calendar to FILE with dates in column A and names in column B.
The workbook can be edited and imported again with
'netdays calendar import xlsx NAME FILE --name-column B --header-rows 1'.`,
	Args: cobra.ExactArgs(2),
	RunE: runCalendarExport,
}

func init() {
	calendarCreateCmd.Flags().StringVarP(&calendarDescription, "description", "d", "", "calendar description")
	calendarAddCmd.Flags().StringVarP(&calendarLabel, "label", "l", "", "name for the added holidays")
	calendarExportCmd.Flags().StringVar(&calendarSheet, "sheet", "Holidays", "worksheet name")

	calendarCmd.AddCommand(calendarCreateCmd)
	calendarCmd.AddCommand(calendarListCmd)
	calendarCmd.AddCommand(calendarShowCmd)
	calendarCmd.AddCommand(calendarDeleteCmd)
	calendarCmd.AddCommand(calendarAddCmd)
	calendarCmd.AddCommand(calendarRemoveCmd)
	calendarCmd.AddCommand(calendarExportCmd)
	rootCmd.AddCommand(calendarCmd)
}

func requireCalendarService() error {
	if calendarService == nil {
		return errors.New("calendar service not configured")
	}
	return nil
}

func runCalendarCreate(cmd *cobra.Command, args []string) error {
	if err := requireCalendarService(); err != nil {
		return err
	}

	cal, err := calendarService.Create(cmd.Context(), args[0], calendarDescription)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return fmt.Errorf("calendar %q already exists", args[0])
		}
		return fmt.Errorf("failed to create calendar: %w", err)
	}

	cmd.Printf("Created calendar %s (%s)\n", cal.Name, cal.ID)
	return nil
}

func runCalendarList(cmd *cobra.Command, _ []string) error {
	if err := requireCalendarService(); err != nil {
		return err
	}

	cals, err := calendarService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list calendars: %w", err)
	}
	if len(cals) == 0 {
		cmd.Println("No calendars. Create one with 'netdays calendar create NAME'.")
		return nil
	}

	st := newStyles(cmd.OutOrStdout())
	rows := make([][]string, 0, len(cals))
	for i := range cals {
		first, last := "-", "-"
		if n := len(cals[i].Holidays); n > 0 {
			first = datevalue.FormatSerial(cals[i].Holidays[0].Date)
			last = datevalue.FormatSerial(cals[i].Holidays[n-1].Date)
		}
		rows = append(rows, []string{
			cals[i].Name,
			strconv.Itoa(len(cals[i].Holidays)),
			first,
			last,
			cals[i].Description,
		})
	}
	cmd.Println(st.table([]string{"NAME", "HOLIDAYS", "FIRST", "LAST", "DESCRIPTION"}, rows))
	return nil
}

func runCalendarShow(cmd *cobra.Command, args []string) error {
	if err := requireCalendarService(); err != nil {
		return err
	}

	cal, err := calendarService.Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("calendar %q not found", args[0])
		}
		return fmt.Errorf("failed to get calendar: %w", err)
	}

	st := newStyles(cmd.OutOrStdout())
	cmd.Println(st.Title.Render("Calendar: " + cal.Name))
	if cal.Description != "" {
		cmd.Println(st.Muted.Render(cal.Description))
	}
	cmd.Println()

	if len(cal.Holidays) == 0 {
		cmd.Println("No holidays.")
		return nil
	}

	rows := make([][]string, len(cal.Holidays))
	for i, h := range cal.Holidays {
		rows[i] = []string{
			datevalue.FormatSerial(h.Date),
			strconv.FormatFloat(float64(h.Date), 'f', -1, 64),
			weekdayName(h.Date),
			h.Name,
		}
	}
	cmd.Println(st.table([]string{"DATE", "SERIAL", "DAY", "NAME"}, rows))
	return nil
}

func runCalendarDelete(cmd *cobra.Command, args []string) error {
	if err := requireCalendarService(); err != nil {
		return err
	}

	if err := calendarService.Delete(cmd.Context(), args[0]); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("calendar %q not found", args[0])
		}
		return fmt.Errorf("failed to delete calendar: %w", err)
	}

	cmd.Printf("Deleted calendar %s\n", args[0])
	return nil
}

func runCalendarAdd(cmd *cobra.Command, args []string) error {
	if err := requireCalendarService(); err != nil {
		return err
	}
	if dateResolver == nil {
		return errors.New("date resolver not configured")
	}

	holidays := make([]domain.Holiday, 0, len(args)-1)
	for _, arg := range args[1:] {
		d, err := dateResolver.Resolve(arg)
		if err != nil {
			return fmt.Errorf("%q: %w", arg, err)
		}
		holidays = append(holidays, domain.Holiday{Date: d, Name: calendarLabel})
	}

	added, err := calendarService.AddHolidays(cmd.Context(), args[0], holidays)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("calendar %q not found", args[0])
		}
		return fmt.Errorf("failed to add holidays: %w", err)
	}

	cmd.Printf("Added %d holiday(s) to %s\n", added, args[0])
	return nil
}

func runCalendarRemove(cmd *cobra.Command, args []string) error {
	if err := requireCalendarService(); err != nil {
		return err
	}

	if err := calendarService.RemoveHoliday(cmd.Context(), args[0], args[1]); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no holiday on %s in calendar %q", args[1], args[0])
		}
		return fmt.Errorf("failed to remove holiday: %w", err)
	}

	cmd.Printf("Removed %s from %s\n", args[1], args[0])
	return nil
}

func runCalendarExport(cmd *cobra.Command, args []string) error {
	if err := requireCalendarService(); err != nil {
		return err
	}

	cal, err := calendarService.Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("calendar %q not found", args[0])
		}
		return fmt.Errorf("failed to get calendar: %w", err)
	}

	if err := excel.Export(args[1], calendarSheet, cal); err != nil {
		return fmt.Errorf("failed to export calendar: %w", err)
	}

	cmd.Printf("Exported %d holiday(s) to %s\n", len(cal.Holidays), args[1])
	return nil
}

// weekdayName returns the English short name of the day.
func weekdayName(d domain.CanonicalDate) string {
	names := [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	return names[domain.MondayOrdinal(d)-1]
}
