package driving

import "github.com/custodia-labs/wxr-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, with defaults applied.
	Get() (*domain.Settings, error)

	// Set validates and persists one setting given as a dotted key.
	Set(key, value string) error

	// Keys returns the supported setting keys in display order.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}
