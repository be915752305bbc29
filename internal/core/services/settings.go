package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/notekeeper/internal/core/domain"
	"github.com/custodia-labs/notekeeper/internal/core/ports/driven"
	"github.com/custodia-labs/notekeeper/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyStorageBackend = "storage.backend"
	keyStorageDataDir = "storage.data_dir"
	keyStorageKey     = "storage.key"
	keyIDStrategy     = "ids.strategy"
	keyUIWatch        = "ui.watch"
)

// settingKeys lists the keys accepted by Set, in display order.
var settingKeys = []string{
	keyStorageBackend,
	keyStorageDataDir,
	keyStorageKey,
	keyIDStrategy,
	keyUIWatch,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Unrecognised stored values fall back to their defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	if s.configStore == nil {
		return nil, domain.ErrNotImplemented
	}

	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Storage: domain.StorageSettings{
			Backend: s.getBackend(defaults.Storage.Backend),
			DataDir: s.configStore.GetString(keyStorageDataDir), // Empty selects the home directory default
			Key:     s.getString(keyStorageKey, defaults.Storage.Key),
		},
		IDs: domain.IDSettings{
			Strategy: s.getStrategy(defaults.IDs.Strategy),
		},
		UI: domain.UISettings{
			Watch: s.getBool(keyUIWatch, defaults.UI.Watch),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("validate settings: %w", err)
	}

	if err := s.configStore.Set(keyStorageBackend, settings.Storage.Backend.String()); err != nil {
		return fmt.Errorf("save storage backend: %w", err)
	}
	if err := s.configStore.Set(keyStorageDataDir, settings.Storage.DataDir); err != nil {
		return fmt.Errorf("save storage data_dir: %w", err)
	}
	if err := s.configStore.Set(keyStorageKey, settings.Storage.Key); err != nil {
		return fmt.Errorf("save storage key: %w", err)
	}
	if err := s.configStore.Set(keyIDStrategy, settings.IDs.Strategy.String()); err != nil {
		return fmt.Errorf("save id strategy: %w", err)
	}
	if err := s.configStore.Set(keyUIWatch, settings.UI.Watch); err != nil {
		return fmt.Errorf("save ui watch: %w", err)
	}

	if err := s.configStore.Save(); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// Set updates a single setting from its string form.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)

	switch key {
	case keyStorageBackend:
		backend := domain.StorageBackend(value)
		if !backend.IsValid() {
			return fmt.Errorf("invalid storage backend %q: %w", value, domain.ErrInvalidInput)
		}
		settings.Storage.Backend = backend
	case keyStorageDataDir:
		settings.Storage.DataDir = value
	case keyStorageKey:
		if value == "" {
			return fmt.Errorf("storage key is empty: %w", domain.ErrInvalidInput)
		}
		settings.Storage.Key = value
	case keyIDStrategy:
		strategy := domain.IDStrategy(value)
		if !strategy.IsValid() {
			return fmt.Errorf("invalid id strategy %q: %w", value, domain.ErrInvalidInput)
		}
		settings.IDs.Strategy = strategy
	case keyUIWatch:
		watch, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q for %s: %w", value, key, domain.ErrInvalidInput)
		}
		settings.UI.Watch = watch
	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}

	return s.Save(settings)
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for getting values with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return defaultVal
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetBool(key)
	}
	return defaultVal
}

func (s *SettingsService) getBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	backend := domain.StorageBackend(s.configStore.GetString(keyStorageBackend))
	if backend.IsValid() {
		return backend
	}
	return defaultVal
}

func (s *SettingsService) getStrategy(defaultVal domain.IDStrategy) domain.IDStrategy {
	strategy := domain.IDStrategy(s.configStore.GetString(keyIDStrategy))
	if strategy.IsValid() {
		return strategy
	}
	return defaultVal
}
