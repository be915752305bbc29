package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/notekeeper/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	tempDir := t.TempDir()
	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	return store, tempDir
}

// ==================== Store Creation and Initialization Tests ====================

func TestNewStore_CreatesDatabase(t *testing.T) {
	store, dir := setupTestStore(t)

	assert.Equal(t, filepath.Join(dir, "notekeeper.db"), store.Path())
	_, err := os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_CreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewStore_MigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(context.Background(), "k", []byte("v")))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	var version int
	require.NoError(t, second.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 1, version)

	value, found, err := second.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", string(value))
}

// ==================== Key-Value Tests ====================

func TestStore_GetMissing(t *testing.T) {
	store, _ := setupTestStore(t)

	value, found, err := store.Get(context.Background(), "notekeeperDB")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)
}

func TestStore_SetThenGet(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "notekeeperDB", []byte(`{"notebooks":[]}`)))

	value, found, err := store.Get(ctx, "notekeeperDB")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"notebooks":[]}`, string(value))
}

func TestStore_SetOverwrites(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("first")))
	require.NoError(t, store.Set(ctx, "k", []byte("second")))

	value, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "second", string(value))

	var rows int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM kv").Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestStore_SetEmptyValue(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", nil))

	value, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, value)
}

func TestStore_EmptyKeyRejected(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	_, _, err := store.Get(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = store.Set(ctx, "", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_RecordsUpdateTime(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	fixed := time.UnixMilli(1_700_000_000_000)
	store.now = func() time.Time { return fixed }

	require.NoError(t, store.Set(ctx, "k", []byte("v")))

	var ms int64
	require.NoError(t, store.db.QueryRow("SELECT updated_at FROM kv WHERE key = ?", "k").Scan(&ms))
	assert.Equal(t, fixed.UnixMilli(), ms)
}

func TestMigrationVersion(t *testing.T) {
	tests := []struct {
		name    string
		version int
		ok      bool
	}{
		{"001_initial.up.sql", 1, true},
		{"012_add_index.up.sql", 12, true},
		{"initial.up.sql", 0, false},
		{"abc_initial.up.sql", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, ok := migrationVersion(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.version, version)
		})
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "notekeeperDB", []byte(`{"notebooks":[{"id":"1"}]}`)))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	value, found, err := second.Get(ctx, "notekeeperDB")
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, string(value), `"id":"1"`)
}
