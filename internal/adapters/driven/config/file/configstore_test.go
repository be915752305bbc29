package file

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".notekeeper", "config.toml"), store.Path())
	assert.DirExists(t, filepath.Join(home, ".notekeeper"))
}

func TestNewConfigStore_CreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	require.NoError(t, store.Set("ui.watch", true))
	require.NoError(t, store.Save())
	assert.FileExists(t, filepath.Join(dir, "config.toml"))
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("storage.backend", "sqlite"))
	require.NoError(t, store.Set("ui.watch", true))

	val, ok := store.Get("storage.backend")
	assert.True(t, ok)
	assert.Equal(t, "sqlite", val)
	assert.Equal(t, "sqlite", store.GetString("storage.backend"))
	assert.True(t, store.GetBool("ui.watch"))

	assert.Empty(t, store.GetString("ui.watch"))
	assert.False(t, store.GetBool("storage.backend"))
	assert.Empty(t, store.GetString("missing"))
}

func TestConfigStore_Set_EmptyKey(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Set("  ", "x"))
}

func TestConfigStore_SetDoesNotWrite(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("storage.key", "notekeeperDB"))

	_, err = os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestConfigStore_SaveWritesNestedTables(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("storage.backend", "file"))
	require.NoError(t, store.Set("storage.key", "notekeeperDB"))
	require.NoError(t, store.Set("ids.strategy", "uuid"))
	require.NoError(t, store.Save())

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "[storage]")
	assert.Contains(t, content, "[ids]")
	assert.Contains(t, content, "backend = 'file'")
	assert.NotContains(t, content, "storage.backend")
}

func TestConfigStore_Persistence(t *testing.T) {
	dir := t.TempDir()

	store1, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("storage.backend", "sqlite"))
	require.NoError(t, store1.Set("storage.data_dir", "/var/lib/notekeeper"))
	require.NoError(t, store1.Set("ui.watch", true))
	require.NoError(t, store1.Save())

	store2, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", store2.GetString("storage.backend"))
	assert.Equal(t, "/var/lib/notekeeper", store2.GetString("storage.data_dir"))
	assert.True(t, store2.GetBool("ui.watch"))
}

func TestConfigStore_LoadDiscardsUnsaved(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("storage.backend", "file"))
	require.NoError(t, store.Save())
	require.NoError(t, store.Set("storage.backend", "memory"))

	require.NoError(t, store.Load())
	assert.Equal(t, "file", store.GetString("storage.backend"))
}

func TestConfigStore_LoadHandWrittenFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[storage]
backend = "file"
data_dir = "~/notes"

[ui]
watch = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "file", store.GetString("storage.backend"))
	assert.Equal(t, "~/notes", store.GetString("storage.data_dir"))
	assert.True(t, store.GetBool("ui.watch"))
}

func TestConfigStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[storage\nbackend="), 0600))

	_, err := NewConfigStore(dir)
	assert.Error(t, err)
}

func TestConfigStore_SaveConflict(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("storage", "file"))
	require.NoError(t, store.Set("storage.backend", "file"))

	err = store.Save()
	assert.ErrorIs(t, err, ErrKeyConflict)
	_, statErr := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not enforced on windows")
	}

	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("storage.key", "k"))
	require.NoError(t, store.Save())

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Set("ids.strategy", "timestamp"))
		require.NoError(t, store.Save())
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "config.toml", entries[0].Name())
}

func TestFlattenAndNestMap(t *testing.T) {
	nested := map[string]any{
		"storage": map[string]any{"backend": "file", "key": "notekeeperDB"},
		"ui":      map[string]any{"watch": true},
		"top":     "level",
	}

	flat := flattenMap(nested, "")
	assert.Equal(t, map[string]any{
		"storage.backend": "file",
		"storage.key":     "notekeeperDB",
		"ui.watch":        true,
		"top":             "level",
	}, flat)

	back, err := nestMap(flat)
	require.NoError(t, err)
	assert.Equal(t, nested, back)
}
