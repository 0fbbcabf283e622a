package gcal

import (
	"errors"
	"net/http"
	"strconv"

	"google.golang.org/api/googleapi"
)

// Calendar API errors.
var (
	// ErrForbidden indicates a bad API key or a private calendar.
	ErrForbidden = errors.New("gcal: forbidden (check the API key and that the calendar is public)")

	// ErrCalendarNotFound indicates an unknown calendar ID.
	ErrCalendarNotFound = errors.New("gcal: calendar not found")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("gcal: rate limit exceeded")
)

// isRateLimited returns true for 429 responses.
func isRateLimited(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusTooManyRequests
	}
	return false
}

// retryAfter returns the Retry-After header of a 429 response in seconds, or 0.
func retryAfter(err error) int {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) || gerr.Header == nil {
		return 0
	}
	secs, _ := strconv.Atoi(gerr.Header.Get("Retry-After"))
	return secs
}

// wrapError converts a Calendar API error to one of the package errors.
func wrapError(err error) error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}

	switch gerr.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrCalendarNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return err
	}
}
