// Package cli provides the netdays command-line interface.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/netdays/internal/adapters/driving/mcp"
	"github.com/custodia-labs/netdays/internal/core/ports/driven"
	"github.com/custodia-labs/netdays/internal/core/ports/driving"
	"github.com/custodia-labs/netdays/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

var verbose bool

// Services used by the commands. Set by SetServices from main.
var (
	networkDaysService driving.NetworkDaysService
	calendarService    driving.CalendarService
	settingsService    driving.SettingsService
	dateResolver       driven.DateValueResolver
)

// Services bundles the dependencies the CLI needs.
type Services struct {
	NetworkDays driving.NetworkDaysService
	Calendar    driving.CalendarService
	Settings    driving.SettingsService

	// Resolver parses holiday dates given on the command line.
	Resolver driven.DateValueResolver
}

// SetServices injects the services used by the commands.
func SetServices(s Services) {
	networkDaysService = s.NetworkDays
	calendarService = s.Calendar
	settingsService = s.Settings
	dateResolver = s.Resolver
}

// SetVersion sets the version printed by the version command and reported
// by the MCP server.
func SetVersion(v string) {
	version = v
	mcp.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "netdays",
	Short: "Count working days between dates",
	Long: `netdays counts whole working days between two dates the way the
NETWORKDAYS spreadsheet function does: Monday to Friday, both ends inclusive,
minus any holidays. Dates may be ISO dates, common written forms or
spreadsheet day serials.

Holiday calendars can be stored, imported from workbooks, rule sets or
Google Calendar, and served over HTTP or MCP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
}

// Execute runs the root command. Results are printed to stdout.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}
