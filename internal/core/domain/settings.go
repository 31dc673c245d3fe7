package domain

import "time"

// Default connection settings.
const (
	DefaultBaseURL = "https://api.zeroentropy.dev/v1"
	DefaultTimeout = 60 * time.Second
)

// Settings holds the resolved runtime configuration.
type Settings struct {
	// APIKey authenticates against the backend. Empty means development mode.
	APIKey string

	// BaseURL is the API root including the version segment.
	BaseURL string

	// Timeout bounds each remote round trip.
	Timeout time.Duration

	// RequestsPerSecond throttles outgoing calls; zero disables throttling.
	RequestsPerSecond float64

	// Verbose enables debug logging on stderr.
	Verbose bool
}

// DefaultSettings returns settings with every default applied.
func DefaultSettings() Settings {
	return Settings{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}
