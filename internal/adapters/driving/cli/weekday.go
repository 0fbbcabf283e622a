package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/netdays/internal/core/domain"
)

var weekdayType int

var weekdayCmd = &cobra.Command{
	Use:   "weekday DATE",
	Short: "Print the day-of-week number of a date",
	Long: `Prints the day of week of DATE using a WEEKDAY numbering convention:

  1      Sunday 1 through Saturday 7 (default)
  2      Monday 1 through Sunday 7
  3      Monday 0 through Sunday 6
  11-17  Monday (11) through Sunday (17) numbered 1

Put -- before a negative serial: netdays weekday -- -1`,
	Args: cobra.ExactArgs(1),
	RunE: runWeekday,
}

func init() {
	weekdayCmd.Flags().IntVarP(&weekdayType, "type", "t", int(domain.SundayFirst), "numbering convention")
	rootCmd.AddCommand(weekdayCmd)
}

func runWeekday(cmd *cobra.Command, args []string) error {
	if networkDaysService == nil {
		return errors.New("network days service not configured")
	}

	n, err := networkDaysService.Weekday(args[0], weekdayType)
	switch {
	case errors.Is(err, domain.ErrDateResolution):
		cmd.Println(err.Error())
		return nil
	case errors.Is(err, domain.ErrInvalidConvention):
		cmd.Println(domain.ErrorCodeNum)
		return nil
	case err != nil:
		return fmt.Errorf("weekday failed: %w", err)
	}

	cmd.Println(n)
	return nil
}
