package mcp

import (
	"github.com/custodia-labs/zalgo-cli/internal/adapters/driven/random"
	"github.com/custodia-labs/zalgo-cli/internal/core/domain"
	"github.com/custodia-labs/zalgo-cli/internal/core/services"
)

// newDecorationService returns the real service with the named random sources.
func newDecorationService() *services.DecorationService {
	return services.NewDecorationService(random.NewFactory(), nil, nil, nil)
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.Settings
	err      error
}

func (m *mockSettingsService) Get() (domain.Settings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(settings domain.Settings) error {
	m.settings = settings
	return m.err
}

func (m *mockSettingsService) Set(_, _ string) error {
	return m.err
}

func (m *mockSettingsService) Reset(_ string) error {
	return m.err
}

func (m *mockSettingsService) Keys() []string {
	return nil
}

func (m *mockSettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

func (m *mockSettingsService) Path() string {
	return ""
}
