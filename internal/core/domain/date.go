package domain

import "math"

// CanonicalDate is a day serial in the 1900 spreadsheet date system.
// The integer part counts days (serial 1 is 1900-01-01), the fractional part
// is the time of day. Equality and ordering are plain numeric comparisons.
type CanonicalDate float64

// Day returns the whole-day part of the serial.
func (d CanonicalDate) Day() int64 {
	return int64(math.Floor(float64(d)))
}

// DateRange is an ordered pair of dates.
// Start <= End always holds; SignStart and SignEnd keep the caller's
// original order so the sign of a result can be restored.
type DateRange struct {
	Start     CanonicalDate
	End       CanonicalDate
	SignStart CanonicalDate
	SignEnd   CanonicalDate
}

// NewDateRange orders a and b.
func NewDateRange(a, b CanonicalDate) DateRange {
	r := DateRange{Start: a, End: b, SignStart: a, SignEnd: b}
	if a > b {
		r.Start, r.End = b, a
	}
	return r
}

// Reversed reports whether the caller passed the end before the start.
func (r DateRange) Reversed() bool {
	return r.SignStart > r.SignEnd
}

// Contains reports whether d lies within [Start, End].
func (r DateRange) Contains(d CanonicalDate) bool {
	return d >= r.Start && d <= r.End
}

// FormulaResult is the value a spreadsheet host renders in a cell:
// the day count, or the error code when resolution failed.
type FormulaResult struct {
	Days int
	Err  error
}

// Value returns Days as an int, or the error string.
func (r FormulaResult) Value() any {
	if r.Err != nil {
		return r.Err.Error()
	}
	return r.Days
}
