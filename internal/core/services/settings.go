package services

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
	"github.com/custodia-labs/zeroentropy-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/zeroentropy-mcp/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyBaseURL           = "api.base_url"
	keyTimeoutSeconds    = "api.timeout_seconds"
	keyRequestsPerSecond = "api.requests_per_second"
	keyVerbose           = "log.verbose"
)

// Environment variables read on top of the config file.
//
//nolint:gosec // G101: These are variable names, not actual credentials.
const (
	EnvAPIKey  = "ZEROENTROPY_API_KEY"
	EnvBaseURL = "ZEROENTROPY_BASE_URL"
)

// SettingsService resolves settings from a config store and the environment.
type SettingsService struct {
	configStore driven.ConfigStore
	lookupEnv   func(string) (string, bool)
}

// NewSettingsService creates a new settings service.
// A nil lookupEnv reads the process environment.
func NewSettingsService(configStore driven.ConfigStore, lookupEnv func(string) (string, bool)) *SettingsService {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	return &SettingsService{
		configStore: configStore,
		lookupEnv:   lookupEnv,
	}
}

// Get resolves current settings. Environment wins over the config file.
func (s *SettingsService) Get() (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	if v := s.configStore.GetString(keyBaseURL); v != "" {
		settings.BaseURL = v
	}
	if _, ok := s.configStore.Get(keyTimeoutSeconds); ok {
		seconds := s.configStore.GetFloat(keyTimeoutSeconds)
		if seconds <= 0 {
			return nil, fmt.Errorf("%w: %s must be positive", domain.ErrInvalidInput, keyTimeoutSeconds)
		}
		settings.Timeout = time.Duration(seconds * float64(time.Second))
	}
	if _, ok := s.configStore.Get(keyRequestsPerSecond); ok {
		rps := s.configStore.GetFloat(keyRequestsPerSecond)
		if rps < 0 {
			return nil, fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidInput, keyRequestsPerSecond)
		}
		settings.RequestsPerSecond = rps
	}
	settings.Verbose = s.configStore.GetBool(keyVerbose)

	if v, ok := s.lookupEnv(EnvAPIKey); ok {
		settings.APIKey = v
	}
	if v, ok := s.lookupEnv(EnvBaseURL); ok && v != "" {
		settings.BaseURL = v
	}

	if err := validateBaseURL(settings.BaseURL); err != nil {
		return nil, err
	}
	return &settings, nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base URL %q must be an absolute URL", domain.ErrInvalidInput, raw)
	}
	return nil
}
