// Package sqlite provides a SQLite-based implementation of driven port interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. Holiday calendars and their holidays
// live in two tables joined by calendar ID; deleting a calendar cascades to its
// holidays.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Applied versions are recorded in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.netdays/data/calendars.db
//
// # Thread Safety
//
// All operations are thread-safe. Save runs in a transaction so a calendar and
// its holidays are always replaced together.
package sqlite
