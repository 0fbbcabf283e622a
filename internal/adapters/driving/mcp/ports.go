package mcp

import (
	"github.com/custodia-labs/netdays/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// NetworkDays counts working days.
	NetworkDays driving.NetworkDaysService

	// Calendar exposes stored holiday calendars. Optional.
	Calendar driving.CalendarService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.NetworkDays == nil {
		return ErrMissingNetworkDaysService
	}
	return nil
}
