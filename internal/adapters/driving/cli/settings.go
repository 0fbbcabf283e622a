package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/netdays/internal/core/domain"
)

var settingsClearDefault bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and change settings",
	Long: `Settings are stored in ~/.netdays/config.toml.

Keys:
  calendar.default             calendar used when a count names none
  server.addr                  listen address for 'netdays serve'
  google.api_key               API key for 'netdays calendar import google'
  google.requests_per_second   Google Calendar request rate`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsDefaultCalendarCmd = &cobra.Command{
	Use:   "default-calendar [NAME]",
	Short: "Set the default holiday calendar",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSettingsDefaultCalendar,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsDefaultCalendarCmd.Flags().BoolVar(&settingsClearDefault, "clear", false, "clear the default calendar")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsDefaultCalendarCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func requireSettingsService() error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	return nil
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if err := requireSettingsService(); err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	st := newStyles(cmd.OutOrStdout())
	cmd.Println(st.Title.Render("Settings"))
	cmd.Println()

	cmd.Println("Calendar:")
	if settings.Calendar.Default != "" {
		cmd.Printf("  Default: %s\n", settings.Calendar.Default)
	} else {
		cmd.Printf("  Default: (none)\n")
	}
	cmd.Println()

	cmd.Println("Server:")
	cmd.Printf("  Address: %s\n", settings.Server.Addr)
	cmd.Println()

	cmd.Println("Google Calendar:")
	if settings.Google.APIKey != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(settings.Google.APIKey))
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	cmd.Printf("  Requests per second: %s\n", strconv.FormatFloat(settings.Google.RequestsPerSecond, 'f', -1, 64))
	return nil
}

func runSettingsDefaultCalendar(cmd *cobra.Command, args []string) error {
	if err := requireSettingsService(); err != nil {
		return err
	}

	if settingsClearDefault {
		if err := settingsService.SetDefaultCalendar(""); err != nil {
			return fmt.Errorf("failed to clear default calendar: %w", err)
		}
		cmd.Println("Default calendar cleared")
		return nil
	}

	if len(args) == 0 {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		if settings.Calendar.Default == "" {
			cmd.Println("(none)")
		} else {
			cmd.Println(settings.Calendar.Default)
		}
		return nil
	}

	name := args[0]
	if calendarService != nil {
		if _, err := calendarService.Get(cmd.Context(), name); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("calendar %q not found", name)
			}
			return fmt.Errorf("failed to get calendar: %w", err)
		}
	}

	if err := settingsService.SetDefaultCalendar(name); err != nil {
		return fmt.Errorf("failed to set default calendar: %w", err)
	}
	cmd.Printf("Default calendar set to %s\n", name)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if err := requireSettingsService(); err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	key, value := strings.ToLower(args[0]), strings.TrimSpace(args[1])
	switch key {
	case "calendar.default":
		settings.Calendar.Default = value
	case "server.addr":
		settings.Server.Addr = value
	case "google.api_key":
		settings.Google.APIKey = value
	case "google.requests_per_second":
		rate, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid rate %q: %w", value, domain.ErrInvalidInput)
		}
		settings.Google.RequestsPerSecond = rate
	default:
		return fmt.Errorf("unknown setting %q", args[0])
	}

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	cmd.Printf("%s updated\n", key)
	return nil
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
