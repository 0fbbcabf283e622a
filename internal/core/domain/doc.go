// Package domain defines the core business entities for netdays.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CanonicalDate: A spreadsheet day serial (1900 date system)
//   - DateRange: An ordered start/end pair that remembers the caller's order
//   - WeekdayConvention: How a day of week is numbered
//   - HolidayCalendar: A named, persisted set of holidays
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
