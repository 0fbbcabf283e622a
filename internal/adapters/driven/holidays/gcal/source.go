package gcal

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/custodia-labs/netdays/internal/adapters/driven/datevalue"
	"github.com/custodia-labs/netdays/internal/core/domain"
	"github.com/custodia-labs/netdays/internal/core/ports/driven"
	"github.com/custodia-labs/netdays/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.HolidaySource = (*Source)(nil)

var log = logger.Component("gcal")

const (
	pageSize       = 250
	maxRateRetries = 3
)

// Options selects a calendar and window.
type Options struct {
	// CalendarID is the public calendar, e.g. "en.usa#holiday@group.v.calendar.google.com".
	CalendarID string

	// APIKey authenticates requests.
	APIKey string

	// From and To bound the window; To is exclusive.
	From time.Time
	To   time.Time

	// RequestsPerSecond paces page requests.
	RequestsPerSecond float64
}

// Source is a driven.HolidaySource backed by the Google Calendar API.
type Source struct {
	opts       Options
	limiter    *RateLimiter
	clientOpts []option.ClientOption
}

// NewSource creates a Google Calendar source. Extra client options are
// passed to the API client after the API key.
func NewSource(opts Options, clientOpts ...option.ClientOption) *Source {
	return &Source{
		opts:       opts,
		limiter:    NewRateLimiter(opts.RequestsPerSecond),
		clientOpts: clientOpts,
	}
}

// Describe returns "google:<calendar id>".
func (s *Source) Describe() string {
	return "google:" + s.opts.CalendarID
}

// Fetch lists the calendar's all-day events in the window.
func (s *Source) Fetch(ctx context.Context) ([]domain.Holiday, error) {
	if s.opts.CalendarID == "" {
		return nil, fmt.Errorf("calendar id is required: %w", domain.ErrInvalidInput)
	}
	if !s.opts.To.After(s.opts.From) {
		return nil, fmt.Errorf("window %s..%s is empty: %w",
			s.opts.From.Format(time.DateOnly), s.opts.To.Format(time.DateOnly), domain.ErrInvalidInput)
	}

	clientOpts := s.clientOpts
	if s.opts.APIKey != "" {
		clientOpts = append([]option.ClientOption{option.WithAPIKey(s.opts.APIKey)}, clientOpts...)
	}
	svc, err := calendar.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create calendar client: %w", err)
	}

	var holidays []domain.Holiday
	pageToken := ""
	for {
		page, err := s.listPage(ctx, svc, pageToken)
		if err != nil {
			return nil, err
		}
		for _, event := range page.Items {
			holidays = append(holidays, EventHolidays(event)...)
		}
		log.Debug("page: %d event(s), %d holiday(s) so far", len(page.Items), len(holidays))

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}
	return holidays, nil
}

func (s *Source) listPage(ctx context.Context, svc *calendar.Service, pageToken string) (*calendar.Events, error) {
	for attempt := 0; ; attempt++ {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		call := svc.Events.List(s.opts.CalendarID).
			TimeMin(s.opts.From.UTC().Format(time.RFC3339)).
			TimeMax(s.opts.To.UTC().Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			MaxResults(pageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		page, err := call.Do()
		if err == nil {
			return page, nil
		}
		if isRateLimited(err) && attempt < maxRateRetries {
			log.Warn("rate limited, backing off (attempt %d)", attempt+1)
			s.limiter.RecordRateLimitError(retryAfter(err))
			continue
		}
		return nil, fmt.Errorf("list events of %s: %w", s.opts.CalendarID, wrapError(err))
	}
}

// EventHolidays converts an all-day event into one holiday per day it covers.
// Timed and cancelled events yield nothing.
func EventHolidays(event *calendar.Event) []domain.Holiday {
	if event == nil || event.Status == "cancelled" || event.Start == nil || event.Start.Date == "" {
		return nil
	}
	start, err := time.Parse(time.DateOnly, event.Start.Date)
	if err != nil {
		log.Warn("event %s: bad start date %q", event.Id, event.Start.Date)
		return nil
	}
	// The end date of an all-day event is exclusive.
	end := start.AddDate(0, 0, 1)
	if event.End != nil && event.End.Date != "" {
		if e, err := time.Parse(time.DateOnly, event.End.Date); err == nil && e.After(start) {
			end = e
		}
	}

	var holidays []domain.Holiday
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		d, err := datevalue.SerialFromTime(day)
		if err != nil {
			log.Warn("event %s: %v", event.Id, err)
			continue
		}
		holidays = append(holidays, domain.Holiday{Date: d, Name: event.Summary})
	}
	return holidays
}
