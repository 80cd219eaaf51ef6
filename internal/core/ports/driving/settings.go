package driving

import "github.com/custodia-labs/zalgo-cli/internal/core/domain"

// SettingsService manages persisted decoration defaults.
type SettingsService interface {
	// Get retrieves current settings, falling back to defaults for unset keys.
	Get() (domain.Settings, error)

	// Save persists settings.
	Save(settings domain.Settings) error

	// Set parses value for a single dotted key and persists it.
	Set(key, value string) error

	// Reset removes a single key so its default applies again.
	Reset(key string) error

	// Keys returns the settable keys.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings

	// Path returns where settings are stored.
	Path() string
}
