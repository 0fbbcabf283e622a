package domain

// Default settings values.
const (
	DefaultServerAddr           = "127.0.0.1:8421"
	DefaultGoogleRequestsPerSec = 5.0
)

// AppSettings holds user-configurable application settings.
type AppSettings struct {
	Calendar CalendarSettings
	Server   ServerSettings
	Google   GoogleSettings
}

// CalendarSettings controls which holiday calendar counts use by default.
type CalendarSettings struct {
	// Default is the calendar name used when a count names none.
	// Empty means counts use only explicitly supplied holidays.
	Default string
}

// ServerSettings configures the HTTP API.
type ServerSettings struct {
	Addr string
}

// GoogleSettings configures the Google Calendar holiday source.
type GoogleSettings struct {
	APIKey            string
	RequestsPerSecond float64
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Server: ServerSettings{
			Addr: DefaultServerAddr,
		},
		Google: GoogleSettings{
			RequestsPerSecond: DefaultGoogleRequestsPerSec,
		},
	}
}
