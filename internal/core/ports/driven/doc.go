// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DateValueResolver: Converts raw inputs into a CanonicalDate
//   - ArgumentFlattener: Flattens nested holiday arguments
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - CalendarStore: Holiday calendar persistence. Without it, counts use explicit holidays only.
//   - ConfigStore: Application configuration. Without it, defaults apply.
//   - HolidaySource: Supplies holidays for import into a calendar.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or holiday source package
package driven
