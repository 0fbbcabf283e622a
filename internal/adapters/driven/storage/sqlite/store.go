package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/netdays/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/netdays/internal/core/domain"
	"github.com/custodia-labs/netdays/internal/core/ports/driven"
)

// Store is a SQLite-based storage that exposes its stores through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store in the specified data directory.
// If dataDir is empty, defaults to ~/.netdays/data/calendars.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".netdays", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "calendars.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// CalendarStore returns a CalendarStore interface backed by this store.
func (s *Store) CalendarStore() driven.CalendarStore {
	return &calendarStore{store: s}
}

// migrate runs all pending migrations and records each applied version.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_calendars.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// version returns the highest applied migration.
func (s *Store) version() (int, error) {
	var v int
	err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&v)
	return v, err
}

// ==================== Calendar Store ====================

// calendarStore implements driven.CalendarStore.
type calendarStore struct {
	store *Store
}

var _ driven.CalendarStore = (*calendarStore)(nil)

// Save stores or updates a calendar and replaces its holidays.
func (s *calendarStore) Save(ctx context.Context, cal domain.HolidayCalendar) error {
	now := time.Now().UTC()
	if cal.CreatedAt.IsZero() {
		cal.CreatedAt = now
	}
	if cal.UpdatedAt.IsZero() {
		cal.UpdatedAt = now
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var clash string
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM calendars WHERE name = ? AND id != ?", cal.Name, cal.ID).Scan(&clash)
	switch {
	case err == nil:
		return domain.ErrAlreadyExists
	case !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("checking calendar name: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO calendars (id, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			updated_at = excluded.updated_at
	`, cal.ID, cal.Name, cal.Description, cal.CreatedAt, cal.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving calendar: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM holidays WHERE calendar_id = ?", cal.ID); err != nil {
		return fmt.Errorf("clearing holidays: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR REPLACE INTO holidays (calendar_id, serial, name) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing holiday insert: %w", err)
	}
	defer stmt.Close()

	for _, h := range cal.Holidays {
		if _, err := stmt.ExecContext(ctx, cal.ID, float64(h.Date), h.Name); err != nil {
			return fmt.Errorf("saving holiday %v: %w", float64(h.Date), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing calendar: %w", err)
	}
	return nil
}

// Get retrieves a calendar by ID.
func (s *calendarStore) Get(ctx context.Context, id string) (*domain.HolidayCalendar, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM calendars WHERE id = ?
	`, id)
	return s.load(ctx, row)
}

// GetByName retrieves a calendar by name.
func (s *calendarStore) GetByName(ctx context.Context, name string) (*domain.HolidayCalendar, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM calendars WHERE name = ?
	`, name)
	return s.load(ctx, row)
}

// Delete removes a calendar. Its holidays go with it.
func (s *calendarStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM calendars WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting calendar: %w", err)
	}
	return nil
}

// List returns all calendars ordered by name.
func (s *calendarStore) List(ctx context.Context) ([]domain.HolidayCalendar, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM calendars ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("querying calendars: %w", err)
	}

	var cals []domain.HolidayCalendar //nolint:prealloc // size unknown from query
	for rows.Next() {
		cal, err := scanCalendar(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		cals = append(cals, *cal)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating calendars: %w", err)
	}
	rows.Close()

	for i := range cals {
		holidays, err := s.holidays(ctx, cals[i].ID)
		if err != nil {
			return nil, err
		}
		cals[i].Holidays = holidays
	}
	return cals, nil
}

func (s *calendarStore) load(ctx context.Context, row *sql.Row) (*domain.HolidayCalendar, error) {
	cal, err := scanCalendar(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	holidays, err := s.holidays(ctx, cal.ID)
	if err != nil {
		return nil, err
	}
	cal.Holidays = holidays
	return cal, nil
}

func (s *calendarStore) holidays(ctx context.Context, calendarID string) ([]domain.Holiday, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT serial, name FROM holidays WHERE calendar_id = ? ORDER BY serial", calendarID)
	if err != nil {
		return nil, fmt.Errorf("querying holidays: %w", err)
	}
	defer rows.Close()

	var holidays []domain.Holiday //nolint:prealloc // size unknown from query
	for rows.Next() {
		var serial float64
		var h domain.Holiday
		if err := rows.Scan(&serial, &h.Name); err != nil {
			return nil, fmt.Errorf("scanning holiday: %w", err)
		}
		h.Date = domain.CanonicalDate(serial)
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating holidays: %w", err)
	}
	return holidays, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCalendar(row scanner) (*domain.HolidayCalendar, error) {
	var cal domain.HolidayCalendar
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&cal.ID, &cal.Name, &cal.Description, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning calendar: %w", err)
	}
	if createdAt.Valid {
		cal.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		cal.UpdatedAt = updatedAt.Time
	}
	return &cal, nil
}
