// Package mcp provides an MCP (Model Context Protocol) server adapter for netdays.
// It lets AI assistants count working days and read holiday calendars.
package mcp

import "errors"

// ErrMissingNetworkDaysService is returned when the network days service is not provided.
var ErrMissingNetworkDaysService = errors.New("mcp: network days service is required")
