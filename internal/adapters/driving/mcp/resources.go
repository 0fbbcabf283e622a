package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/netdays/internal/adapters/driven/datevalue"
	"github.com/custodia-labs/netdays/internal/core/domain"
)

// uriScheme is the URI scheme for netdays resources.
const uriScheme = "netdays://"

// holidayInfo is the JSON form of a holiday in a calendar resource.
type holidayInfo struct {
	Date   string  `json:"date"`
	Serial float64 `json:"serial"`
	Name   string  `json:"name,omitempty"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "calendars",
		Name:        "calendars",
		Description: "Names of all stored holiday calendars",
		MIMEType:    "application/json",
	}, s.handleCalendarsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "calendars/{name}",
		Name:        "calendar-holidays",
		Description: "Holidays of a stored calendar",
		MIMEType:    "application/json",
	}, s.handleCalendarResource)
}

// handleCalendarsResource returns the names of all calendars.
func (s *Server) handleCalendarsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	names := []string{}
	if s.ports.Calendar != nil {
		cals, err := s.ports.Calendar.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing calendars: %w", err)
		}
		for i := range cals {
			names = append(names, cals[i].Name)
		}
	}
	return jsonResource(req.Params.URI, names)
}

// handleCalendarResource returns the holidays of one calendar.
func (s *Server) handleCalendarResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractCalendarName(req.Params.URI)
	if s.ports.Calendar == nil || name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	cal, err := s.ports.Calendar.Get(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting calendar: %w", err)
	}

	infos := make([]holidayInfo, len(cal.Holidays))
	for i, h := range cal.Holidays {
		infos[i] = holidayInfo{
			Date:   datevalue.FormatSerial(h.Date),
			Serial: float64(h.Date),
			Name:   h.Name,
		}
	}
	return jsonResource(req.Params.URI, infos)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractCalendarName extracts the name from a URI like netdays://calendars/{name}.
func extractCalendarName(uri string) string {
	const prefix = uriScheme + "calendars/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	name := strings.TrimPrefix(uri, prefix)
	if strings.Contains(name, "/") {
		return ""
	}
	return name
}
