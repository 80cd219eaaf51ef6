package services

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/custodia-labs/zalgo-cli/internal/core/domain"
	"github.com/custodia-labs/zalgo-cli/internal/core/ports/driven"
	"github.com/custodia-labs/zalgo-cli/internal/core/ports/driving"
	"github.com/custodia-labs/zalgo-cli/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyKinds     = "decoration.kinds"
	keyIntensity = "decoration.intensity"
	keySource    = "random.source"
	keySeed      = "random.seed"
	keyRate      = "output.rate"
)

// settingKeys lists the settable keys in display order.
var settingKeys = []string{keyKinds, keyIntensity, keySource, keySeed, keyRate}

// SettingsService manages persisted decoration defaults.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Unset or unparsable keys keep their defaults.
func (s *SettingsService) Get() (domain.Settings, error) {
	settings := domain.DefaultSettings()
	if s.configStore == nil {
		return settings, nil
	}

	if _, ok := s.configStore.Get(keyKinds); ok {
		kind, err := domain.KindFromNames(s.configStore.GetStringSlice(keyKinds))
		if err != nil {
			logger.Warn("Ignoring %s: %v", keyKinds, err)
		} else {
			settings.Decoration.Kind = kind
		}
	}

	if raw := s.configStore.GetString(keyIntensity); raw != "" {
		intensity, err := domain.ParseIntensity(raw)
		if err != nil {
			logger.Warn("Ignoring %s: %v", keyIntensity, err)
		} else {
			settings.Decoration.Intensity = intensity
		}
	}

	if raw := s.configStore.GetString(keySource); raw != "" {
		source, err := domain.ParseRandomSourceName(raw)
		if err != nil {
			logger.Warn("Ignoring %s: %v", keySource, err)
		} else {
			settings.Random.Source = source
		}
	}

	if _, ok := s.configStore.Get(keySeed); ok {
		settings.Random.Seed = uint64(s.configStore.GetInt(keySeed))
		settings.Random.HasSeed = true
	}

	if rate := s.configStore.GetInt(keyRate); rate > 0 {
		settings.Output.Rate = rate
	}

	return settings, nil
}

// Save persists settings. A settings value without a seed removes any
// stored seed.
func (s *SettingsService) Save(settings domain.Settings) error {
	if s.configStore == nil {
		return domain.ErrNotConfigured
	}

	if err := s.configStore.Set(keyKinds, settings.Decoration.Kind.Names()); err != nil {
		return fmt.Errorf("save kinds: %w", err)
	}
	if err := s.configStore.Set(keyIntensity, settings.Decoration.Intensity.String()); err != nil {
		return fmt.Errorf("save intensity: %w", err)
	}
	if err := s.configStore.Set(keySource, settings.Random.Source.String()); err != nil {
		return fmt.Errorf("save random source: %w", err)
	}
	if settings.Random.HasSeed {
		if err := s.configStore.Set(keySeed, int64(settings.Random.Seed)); err != nil {
			return fmt.Errorf("save seed: %w", err)
		}
	} else if err := s.configStore.Delete(keySeed); err != nil {
		return fmt.Errorf("clear seed: %w", err)
	}
	if err := s.configStore.Set(keyRate, int64(settings.Output.Rate)); err != nil {
		return fmt.Errorf("save rate: %w", err)
	}

	return s.configStore.Save()
}

// Set parses value for key and persists it.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case keyKinds:
		kind, err := domain.ParseKind(value)
		if err != nil {
			return err
		}
		settings.Decoration.Kind = kind
	case keyIntensity:
		intensity, err := domain.ParseIntensity(value)
		if err != nil {
			return err
		}
		settings.Decoration.Intensity = intensity
	case keySource:
		source, err := domain.ParseRandomSourceName(value)
		if err != nil {
			return err
		}
		settings.Random.Source = source
	case keySeed:
		seed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: seed %q: %w", domain.ErrInvalidInput, value, err)
		}
		settings.Random.Seed = seed
		settings.Random.HasSeed = true
	case keyRate:
		rate, err := strconv.Atoi(value)
		if err != nil || rate < 0 {
			return fmt.Errorf("%w: rate must be a non-negative integer, got %q", domain.ErrInvalidInput, value)
		}
		settings.Output.Rate = rate
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.Save(settings)
}

// Reset removes key so its default applies again.
func (s *SettingsService) Reset(key string) error {
	if s.configStore == nil {
		return domain.ErrNotConfigured
	}
	if !slices.Contains(settingKeys, key) {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if err := s.configStore.Delete(key); err != nil {
		return fmt.Errorf("reset %s: %w", key, err)
	}
	return s.configStore.Save()
}

// Keys returns the settable keys.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Path returns where settings are stored.
func (s *SettingsService) Path() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}
