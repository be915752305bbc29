package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeyValueStore(t *testing.T) {
	store := NewKeyValueStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
}

func TestKeyValueStore_Get_Missing(t *testing.T) {
	store := NewKeyValueStore()

	val, found, err := store.Get(context.Background(), "notekeeperDB")

	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, val)
}

func TestKeyValueStore_Set_Get(t *testing.T) {
	store := NewKeyValueStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte(`{"notebooks":[]}`)))

	val, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"notebooks":[]}`, string(val))
	assert.Equal(t, 1, store.Writes())
}

func TestKeyValueStore_Set_Overwrites(t *testing.T) {
	store := NewKeyValueStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("first")))
	require.NoError(t, store.Set(ctx, "k", []byte("second")))

	val, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "second", string(val))
	assert.Equal(t, 2, store.Writes())
}

func TestKeyValueStore_CopiesValues(t *testing.T) {
	store := NewKeyValueStore()
	ctx := context.Background()

	input := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", input))
	input[0] = 'x'

	out, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))

	out[1] = 'y'
	again, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestKeyValueStore_KeysAreIndependent(t *testing.T) {
	store := NewKeyValueStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", []byte("1")))

	_, found, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.False(t, found)
}
