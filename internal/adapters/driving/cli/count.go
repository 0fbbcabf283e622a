package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/netdays/internal/core/domain"
)

var countCalendar string

var countCmd = &cobra.Command{
	Use:   "count START END [HOLIDAY...]",
	Short: "Count working days between two dates",
	Long: `Counts Monday to Friday days from START to END, both inclusive, minus
holidays. If END is before START the count is negative.

Holidays come from the --calendar calendar (or the default calendar set with
'netdays settings default-calendar') plus any HOLIDAY arguments.

A date that cannot be read prints #VALUE!, a negative serial prints #NUM!.
Put -- before arguments that start with a minus sign, otherwise they are
read as flags.

Examples:
  netdays count 2023-01-01 2023-01-31
  netdays count 2023-01-01 2023-01-31 2023-01-16
  netdays count 44927 44957 --calendar us
  netdays count -- -1 44957`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCount,
}

func init() {
	countCmd.Flags().StringVarP(&countCalendar, "calendar", "c", "", "holiday calendar to use")
	rootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	if networkDaysService == nil {
		return errors.New("network days service not configured")
	}

	extra := make([]any, 0, len(args)-2)
	for _, h := range args[2:] {
		extra = append(extra, h)
	}

	days, err := networkDaysService.Count(cmd.Context(), args[0], args[1], countCalendar, extra...)
	if err != nil {
		if errors.Is(err, domain.ErrDateResolution) {
			cmd.Println(err.Error())
			return nil
		}
		return fmt.Errorf("count failed: %w", err)
	}

	cmd.Println(days)
	return nil
}
