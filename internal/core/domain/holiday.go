package domain

import (
	"sort"
	"time"
)

// Holiday is a single non-working date.
type Holiday struct {
	// Date is the day serial of the holiday.
	Date CanonicalDate

	// Name is an optional label (e.g., "Independence Day").
	Name string
}

// HolidayCalendar is a named set of holidays that can be reused across counts.
type HolidayCalendar struct {
	// ID is the unique identifier for the calendar.
	ID string

	// Name is the human-readable, unique name used to select the calendar.
	Name string

	// Description is free text shown in listings.
	Description string

	// Holidays is sorted by date and holds at most one entry per date.
	Holidays []Holiday

	// CreatedAt is when the calendar was created.
	CreatedAt time.Time

	// UpdatedAt is when the calendar was last updated.
	UpdatedAt time.Time
}

// Dates returns the holiday dates in calendar order.
func (c *HolidayCalendar) Dates() []CanonicalDate {
	dates := make([]CanonicalDate, len(c.Holidays))
	for i, h := range c.Holidays {
		dates[i] = h.Date
	}
	return dates
}

// AddHolidays merges holidays into the calendar.
// An incoming holiday replaces an existing one on the same date.
// Returns the number of dates that were not present before.
func (c *HolidayCalendar) AddHolidays(holidays ...Holiday) int {
	byDate := make(map[CanonicalDate]int, len(c.Holidays))
	for i, h := range c.Holidays {
		byDate[h.Date] = i
	}

	added := 0
	for _, h := range holidays {
		if i, ok := byDate[h.Date]; ok {
			if h.Name != "" {
				c.Holidays[i].Name = h.Name
			}
			continue
		}
		byDate[h.Date] = len(c.Holidays)
		c.Holidays = append(c.Holidays, h)
		added++
	}

	sort.Slice(c.Holidays, func(i, j int) bool {
		return c.Holidays[i].Date < c.Holidays[j].Date
	})
	return added
}

// RemoveHoliday deletes the holiday on date. Returns false if none matched.
func (c *HolidayCalendar) RemoveHoliday(date CanonicalDate) bool {
	for i, h := range c.Holidays {
		if h.Date == date {
			c.Holidays = append(c.Holidays[:i], c.Holidays[i+1:]...)
			return true
		}
	}
	return false
}
