package driving

import "github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"

// SettingsService resolves runtime settings.
type SettingsService interface {
	// Get returns settings from defaults, the config file and the environment,
	// in increasing order of precedence.
	Get() (*domain.Settings, error)
}
