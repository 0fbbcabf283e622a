package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/custodia-labs/netdays/internal/adapters/driven/datevalue"
	"github.com/custodia-labs/netdays/internal/core/domain"
)

type networkDaysData struct {
	Days  *int   `json:"days,omitempty"`
	Error string `json:"error,omitempty"`
}

type weekdayData struct {
	Weekday *int   `json:"weekday,omitempty"`
	Error   string `json:"error,omitempty"`
}

type calendarSummary struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Holidays    int       `json:"holidays"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type holidayData struct {
	Date   string  `json:"date"`
	Serial float64 `json:"serial"`
	Name   string  `json:"name,omitempty"`
}

type calendarData struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Holidays    []holidayData `json:"holidays"`
}

// handleNetworkDays counts working days.
// GET /api/networkdays?start=&end=&holiday=&holiday=&calendar=
func (s *Server) handleNetworkDays(c *gin.Context) {
	start, okStart := c.GetQuery("start")
	end, okEnd := c.GetQuery("end")
	if !okStart || !okEnd {
		errorResponse(c, http.StatusBadRequest, CodeInvalidInput, "start and end are required")
		return
	}

	raw := c.QueryArray("holiday")
	holidays := make([]any, len(raw))
	for i, h := range raw {
		holidays[i] = h
	}

	days, err := s.ports.NetworkDays.Count(c.Request.Context(), start, end, c.Query("calendar"), holidays...)
	if err != nil {
		if errors.Is(err, domain.ErrDateResolution) {
			success(c, networkDaysData{Error: err.Error()})
			return
		}
		fail(c, err)
		return
	}
	success(c, networkDaysData{Days: &days})
}

// handleWeekday returns the day of week of a date.
// GET /api/weekday?date=&type=
func (s *Server) handleWeekday(c *gin.Context) {
	date, ok := c.GetQuery("date")
	if !ok {
		errorResponse(c, http.StatusBadRequest, CodeInvalidInput, "date is required")
		return
	}
	convention := int(domain.SundayFirst)
	if t := c.Query("type"); t != "" {
		n, err := strconv.Atoi(t)
		if err != nil {
			errorResponse(c, http.StatusBadRequest, CodeInvalidInput, "type must be an integer")
			return
		}
		convention = n
	}

	n, err := s.ports.NetworkDays.Weekday(date, convention)
	switch {
	case errors.Is(err, domain.ErrDateResolution):
		success(c, weekdayData{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidConvention):
		success(c, weekdayData{Error: domain.ErrorCodeNum})
	case err != nil:
		fail(c, err)
	default:
		success(c, weekdayData{Weekday: &n})
	}
}

// handleListCalendars lists stored calendars.
// GET /api/calendars
func (s *Server) handleListCalendars(c *gin.Context) {
	items := []calendarSummary{}
	if s.ports.Calendar == nil {
		success(c, items)
		return
	}

	cals, err := s.ports.Calendar.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	for i := range cals {
		items = append(items, calendarSummary{
			Name:        cals[i].Name,
			Description: cals[i].Description,
			Holidays:    len(cals[i].Holidays),
			UpdatedAt:   cals[i].UpdatedAt,
		})
	}
	success(c, items)
}

// handleGetCalendar returns one calendar with its holidays.
// GET /api/calendars/:name
func (s *Server) handleGetCalendar(c *gin.Context) {
	if s.ports.Calendar == nil {
		fail(c, domain.ErrNotFound)
		return
	}

	cal, err := s.ports.Calendar.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		fail(c, err)
		return
	}

	data := calendarData{
		Name:        cal.Name,
		Description: cal.Description,
		Holidays:    make([]holidayData, len(cal.Holidays)),
	}
	for i, h := range cal.Holidays {
		data.Holidays[i] = holidayData{
			Date:   datevalue.FormatSerial(h.Date),
			Serial: float64(h.Date),
			Name:   h.Name,
		}
	}
	success(c, data)
}
