package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/netdays/internal/core/domain"
)

// NetworkDaysInput is the input schema for the networkdays tool.
type NetworkDaysInput struct {
	Start    string   `json:"start" jsonschema:"start date, e.g. 2023-01-01 or a day serial such as 44927"`
	End      string   `json:"end" jsonschema:"end date, inclusive"`
	Holidays []string `json:"holidays,omitempty" jsonschema:"extra holiday dates"`
	Calendar string   `json:"calendar,omitempty" jsonschema:"stored holiday calendar; empty uses the configured default"`
}

// NetworkDaysOutput is the output schema for the networkdays tool.
// Exactly one of Days and Error is set.
type NetworkDaysOutput struct {
	Days  *int   `json:"days,omitempty"`
	Error string `json:"error,omitempty"`
}

// WeekdayInput is the input schema for the weekday tool.
type WeekdayInput struct {
	Date string `json:"date" jsonschema:"the date to inspect"`
	Type int    `json:"type,omitempty" jsonschema:"numbering convention 1, 2, 3 or 11 to 17 (default 1, Sunday = 1)"`
}

// WeekdayOutput is the output schema for the weekday tool.
type WeekdayOutput struct {
	Weekday *int   `json:"weekday,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ListCalendarsInput is the input schema for the list_calendars tool.
type ListCalendarsInput struct{}

// ListCalendarsOutput is the output schema for the list_calendars tool.
type ListCalendarsOutput struct {
	Calendars []CalendarSummary `json:"calendars"`
	Count     int               `json:"count"`
}

// CalendarSummary describes one stored calendar.
type CalendarSummary struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Holidays    int    `json:"holidays"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "networkdays",
		Description: "Count working days (Monday to Friday, excluding holidays) between two dates, inclusive. Reversed dates give a negative count.",
	}, s.handleNetworkDays)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "weekday",
		Description: "Return the day-of-week number of a date under a spreadsheet WEEKDAY numbering convention",
	}, s.handleWeekday)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_calendars",
		Description: "List stored holiday calendars",
	}, s.handleListCalendars)
}

// handleNetworkDays handles the networkdays tool invocation.
// A date that cannot be resolved is reported in Error, as a spreadsheet would show it.
func (s *Server) handleNetworkDays(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input NetworkDaysInput,
) (*mcp.CallToolResult, NetworkDaysOutput, error) {
	holidays := make([]any, len(input.Holidays))
	for i, h := range input.Holidays {
		holidays[i] = h
	}

	days, err := s.ports.NetworkDays.Count(ctx, input.Start, input.End, input.Calendar, holidays...)
	if err != nil {
		if errors.Is(err, domain.ErrDateResolution) {
			return nil, NetworkDaysOutput{Error: err.Error()}, nil
		}
		return nil, NetworkDaysOutput{}, err
	}
	return nil, NetworkDaysOutput{Days: &days}, nil
}

// handleWeekday handles the weekday tool invocation.
func (s *Server) handleWeekday(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input WeekdayInput,
) (*mcp.CallToolResult, WeekdayOutput, error) {
	convention := input.Type
	if convention == 0 {
		convention = int(domain.SundayFirst)
	}

	n, err := s.ports.NetworkDays.Weekday(input.Date, convention)
	switch {
	case errors.Is(err, domain.ErrDateResolution):
		return nil, WeekdayOutput{Error: err.Error()}, nil
	case errors.Is(err, domain.ErrInvalidConvention):
		return nil, WeekdayOutput{Error: domain.ErrorCodeNum}, nil
	case err != nil:
		return nil, WeekdayOutput{}, err
	}
	return nil, WeekdayOutput{Weekday: &n}, nil
}

// handleListCalendars handles the list_calendars tool invocation.
func (s *Server) handleListCalendars(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListCalendarsInput,
) (*mcp.CallToolResult, ListCalendarsOutput, error) {
	output := ListCalendarsOutput{Calendars: []CalendarSummary{}}
	if s.ports.Calendar == nil {
		return nil, output, nil
	}

	cals, err := s.ports.Calendar.List(ctx)
	if err != nil {
		return nil, ListCalendarsOutput{}, fmt.Errorf("listing calendars: %w", err)
	}
	for i := range cals {
		output.Calendars = append(output.Calendars, CalendarSummary{
			Name:        cals[i].Name,
			Description: cals[i].Description,
			Holidays:    len(cals[i].Holidays),
		})
	}
	output.Count = len(output.Calendars)
	return nil, output, nil
}
