package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NotNil(t, store)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestStore_SetAndGet(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyOutput, "json"))
	require.NoError(t, store.Set(KeyColor, false))

	assert.Equal(t, "json", store.GetString(KeyOutput))

	color, ok := store.GetBool(KeyColor)
	assert.True(t, ok)
	assert.False(t, color)
}

func TestStore_MissingKeys(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("missing"))

	_, ok = store.GetBool("missing")
	assert.False(t, ok)
}

func TestStore_GetBool_WrongType(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyColor, "yes"))

	_, ok := store.GetBool(KeyColor)
	assert.False(t, ok)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(KeyOutput, "table"))
	require.NoError(t, first.Set(KeyColor, true))

	second, err := NewStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "table", second.GetString(KeyOutput))
	color, ok := second.GetBool(KeyColor)
	assert.True(t, ok)
	assert.True(t, color)
	assert.ElementsMatch(t, []string{KeyOutput, KeyColor}, second.Keys())
}

func TestStore_LoadMissingFileStartsEmpty(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Load())
	assert.Empty(t, store.Keys())
}
