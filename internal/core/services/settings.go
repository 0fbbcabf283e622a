package services

import (
	"fmt"

	"github.com/custodia-labs/netdays/internal/core/domain"
	"github.com/custodia-labs/netdays/internal/core/ports/driven"
	"github.com/custodia-labs/netdays/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyDefaultCalendar = "calendar.default"
	keyServerAddr      = "server.addr"
	keyGoogleAPIKey    = "google.api_key"
	keyGoogleRate      = "google.requests_per_second"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	settings := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &settings, nil
	}

	settings.Calendar.Default = s.configStore.GetString(keyDefaultCalendar)
	if addr := s.configStore.GetString(keyServerAddr); addr != "" {
		settings.Server.Addr = addr
	}
	settings.Google.APIKey = s.configStore.GetString(keyGoogleAPIKey)
	if rate := s.configStore.GetFloat(keyGoogleRate); rate > 0 {
		settings.Google.RequestsPerSecond = rate
	}

	return &settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if settings.Google.RequestsPerSecond < 0 {
		return fmt.Errorf("requests per second must not be negative: %w", domain.ErrInvalidInput)
	}

	if err := s.configStore.Set(keyDefaultCalendar, settings.Calendar.Default); err != nil {
		return fmt.Errorf("save default calendar: %w", err)
	}
	if err := s.configStore.Set(keyServerAddr, settings.Server.Addr); err != nil {
		return fmt.Errorf("save server addr: %w", err)
	}
	if settings.Google.APIKey != "" {
		if err := s.configStore.Set(keyGoogleAPIKey, settings.Google.APIKey); err != nil {
			return fmt.Errorf("save google api_key: %w", err)
		}
	}
	if err := s.configStore.Set(keyGoogleRate, settings.Google.RequestsPerSecond); err != nil {
		return fmt.Errorf("save google requests_per_second: %w", err)
	}

	return nil
}

// SetDefaultCalendar updates the default calendar name.
func (s *SettingsService) SetDefaultCalendar(name string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Calendar.Default = name
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}
