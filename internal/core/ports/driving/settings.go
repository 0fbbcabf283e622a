package driving

import "github.com/custodia-labs/netdays/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetDefaultCalendar sets the calendar used when a count names none.
	// An empty name clears it.
	SetDefaultCalendar(name string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
