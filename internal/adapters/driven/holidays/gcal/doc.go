// Package gcal imports holidays from a public Google Calendar.
//
// Google publishes regional holiday calendars such as
// "en.usa#holiday@group.v.calendar.google.com". They can be read with an API
// key, no OAuth consent is needed. Only all-day events become holidays; an
// all-day event spanning several days yields one holiday per day.
package gcal
