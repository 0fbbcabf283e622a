package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/netdays/internal/adapters/driving/mcp"
)

var mcpAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server offers the networkdays, weekday and list_calendars tools and
exposes stored calendars as resources.

By default it communicates over stdio. Use --http to serve over HTTP instead.

Examples:
  netdays mcp
  netdays mcp --http 127.0.0.1:8422

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "netdays": {
        "command": "/path/to/netdays",
        "args": ["mcp"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpAddr, "http", "", "serve over HTTP on this address instead of stdio")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	server, err := mcp.NewServer(&mcp.Ports{
		NetworkDays: networkDaysService,
		Calendar:    calendarService,
	})
	if err != nil {
		return err
	}

	if mcpAddr != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s\n", mcpAddr)
		return server.RunHTTP(cmd.Context(), mcpAddr)
	}

	return server.Run(cmd.Context())
}
