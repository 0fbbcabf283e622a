package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/netdays/internal/adapters/driving/httpapi"
	"github.com/custodia-labs/netdays/internal/adapters/driving/mcp"
	"github.com/custodia-labs/netdays/internal/core/domain"
)

var (
	serveAddr  string
	serveNoMCP bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serves the JSON API:

  GET /api/networkdays?start=&end=&holiday=&calendar=
  GET /api/weekday?date=&type=
  GET /api/calendars
  GET /api/calendars/{name}
  GET /healthz

The MCP server is mounted at /mcp unless --no-mcp is given.
The address defaults to the server.addr setting.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from settings)")
	serveCmd.Flags().BoolVar(&serveNoMCP, "no-mcp", false, "do not mount the MCP server")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	addr, err := serveAddress()
	if err != nil {
		return err
	}

	ports := &httpapi.Ports{
		NetworkDays: networkDaysService,
		Calendar:    calendarService,
	}
	if !serveNoMCP {
		mcpServer, err := mcp.NewServer(&mcp.Ports{
			NetworkDays: networkDaysService,
			Calendar:    calendarService,
		})
		if err != nil {
			return err
		}
		ports.MCP = mcpServer.Handler()
	}

	server, err := httpapi.NewServer(ports)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Listening on http://%s\n", addr)
	return server.Run(cmd.Context(), addr)
}

// serveAddress returns --addr, then the server.addr setting, then the default.
func serveAddress() (string, error) {
	if serveAddr != "" {
		return serveAddr, nil
	}
	if settingsService == nil {
		return domain.DefaultServerAddr, nil
	}
	settings, err := settingsService.Get()
	if err != nil {
		return "", fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.Server.Addr == "" {
		return domain.DefaultServerAddr, nil
	}
	return settings.Server.Addr, nil
}
