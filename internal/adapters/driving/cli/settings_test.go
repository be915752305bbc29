package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/notekeeper/internal/core/domain"
)

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range settingsCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.ElementsMatch(t, []string{"show", "set", "reset"}, names)
}

func TestSettingsShow_Defaults(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "[Storage]")
	assert.Contains(t, out, "Data dir: (default)")
	assert.Contains(t, out, "Key: "+domain.DefaultDocumentKey)
	assert.Contains(t, out, "Watch: no")
	assert.NotContains(t, out, "Warning")
}

func TestSettingsSet(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings", "set", "ids.strategy", "uuid")
	require.NoError(t, err)
	assert.Contains(t, out, "Set ids.strategy = uuid")

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.IDStrategyUUID, settings.IDs.Strategy)
}

func TestSettingsSet_UnknownKey(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "settings", "set", "search.mode", "hybrid")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "storage.backend")
}

func TestSettingsSet_InvalidValue(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "settings", "set", "ui.watch", "sometimes")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsReset(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "settings", "set", "storage.backend", "file")
	require.NoError(t, err)

	out, err := execute(t, "settings", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "restored to defaults")

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.StorageSQLite, settings.Storage.Backend)
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "yes", yesNo(true))
	assert.Equal(t, "no", yesNo(false))
}
