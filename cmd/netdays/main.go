// Command netdays counts working days between dates.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/netdays/internal/adapters/driven/config/file"
	"github.com/custodia-labs/netdays/internal/adapters/driven/datevalue"
	"github.com/custodia-labs/netdays/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/netdays/internal/adapters/driving/cli"
	"github.com/custodia-labs/netdays/internal/core/services"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configStore, err := file.NewConfigStore(os.Getenv("NETDAYS_HOME"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	dataDir := ""
	if home := os.Getenv("NETDAYS_HOME"); home != "" {
		dataDir = filepath.Join(home, "data")
	}
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening calendar store: %w", err)
	}
	defer store.Close()

	resolver := datevalue.NewResolver()
	settings := services.NewSettingsService(configStore)
	calendars := services.NewCalendarService(store.CalendarStore(), resolver)

	networkDays := services.NewNetworkDaysService(resolver, datevalue.NewFlattener())
	networkDays.SetCalendarStore(store.CalendarStore())
	networkDays.SetSettingsService(settings)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		NetworkDays: networkDays,
		Calendar:    calendars,
		Settings:    settings,
		Resolver:    resolver,
	})

	return cli.Execute(ctx)
}
