package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/notekeeper/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/notekeeper/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)

	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Storage.Backend, settings.Storage.Backend)
	assert.Equal(t, defaults.Storage.Key, settings.Storage.Key)
	assert.Equal(t, "", settings.Storage.DataDir)
	assert.Equal(t, defaults.IDs.Strategy, settings.IDs.Strategy)
	assert.False(t, settings.UI.Watch)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("storage.backend", "file")
	_ = store.Set("storage.data_dir", "/tmp/notes")
	_ = store.Set("storage.key", "otherDB")
	_ = store.Set("ids.strategy", "uuid")
	_ = store.Set("ui.watch", true)

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.StorageFile, settings.Storage.Backend)
	assert.Equal(t, "/tmp/notes", settings.Storage.DataDir)
	assert.Equal(t, "otherDB", settings.Storage.Key)
	assert.Equal(t, domain.IDStrategyUUID, settings.IDs.Strategy)
	assert.True(t, settings.UI.Watch)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("storage.backend", "postgres")
	_ = store.Set("ids.strategy", "sequence")

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.StorageSQLite, settings.Storage.Backend)
	assert.Equal(t, domain.IDStrategyTimestamp, settings.IDs.Strategy)
}

func TestSettingsService_Get_NilStore(t *testing.T) {
	service := NewSettingsService(nil)

	_, err := service.Get()
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := &domain.AppSettings{
		Storage: domain.StorageSettings{Backend: domain.StorageFile, DataDir: "/data", Key: "k"},
		IDs:     domain.IDSettings{Strategy: domain.IDStrategyUUID},
		UI:      domain.UISettings{Watch: true},
	}

	require.NoError(t, service.Save(settings))

	assert.Equal(t, "file", store.GetString("storage.backend"))
	assert.Equal(t, "/data", store.GetString("storage.data_dir"))
	assert.Equal(t, "k", store.GetString("storage.key"))
	assert.Equal(t, "uuid", store.GetString("ids.strategy"))
	assert.True(t, store.GetBool("ui.watch"))

	// Reloading keeps what Save persisted.
	require.NoError(t, store.Load())
	assert.Equal(t, "uuid", store.GetString("ids.strategy"))
}

func TestSettingsService_Save_Invalid(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.Storage.Backend = "tape"

	err := service.Save(&settings)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, exists := store.Get("storage.backend")
	assert.False(t, exists)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(t *testing.T, s *domain.AppSettings)
	}{
		{"storage.backend", "memory", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, domain.StorageMemory, s.Storage.Backend)
		}},
		{"storage.data_dir", " /srv/notes ", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "/srv/notes", s.Storage.DataDir)
		}},
		{"storage.key", "work", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "work", s.Storage.Key)
		}},
		{"ids.strategy", "uuid", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, domain.IDStrategyUUID, s.IDs.Strategy)
		}},
		{"ui.watch", "true", func(t *testing.T, s *domain.AppSettings) {
			assert.True(t, s.UI.Watch)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())

			require.NoError(t, service.Set(tt.key, tt.value))

			settings, err := service.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestSettingsService_Set_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "search.mode", "hybrid"},
		{"bad backend", "storage.backend", "tape"},
		{"empty key", "storage.key", "  "},
		{"bad strategy", "ids.strategy", "sequence"},
		{"bad bool", "ui.watch", "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			err := service.Set(tt.key, tt.value)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)

			_, exists := store.Get(tt.key)
			assert.False(t, exists)
		})
	}
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	keys := service.Keys()
	assert.Equal(t, []string{"storage.backend", "storage.data_dir", "storage.key", "ids.strategy", "ui.watch"}, keys)

	// Returned slice is a copy
	keys[0] = "changed"
	assert.Equal(t, "storage.backend", service.Keys()[0])
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(nil)
	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}
