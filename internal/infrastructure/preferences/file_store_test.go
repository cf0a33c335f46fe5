package preferences

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/techconsult/internal/logger"
)

func TestFileStoreNewStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preferences.json")

	store, err := NewFileStore(path, nil)
	require.NoError(t, err)

	_, ok := store.Get("theme")
	assert.False(t, ok)
	assert.DirExists(t, filepath.Dir(path))
}

func TestFileStoreSetPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")

	store, err := NewFileStore(path, nil)
	require.NoError(t, err)
	require.NoError(t, store.Set("theme", "dark"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var file File
	require.NoError(t, json.Unmarshal(data, &file))
	assert.Equal(t, fileVersion, file.Version)
	assert.Equal(t, "dark", file.Values["theme"])

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file should be renamed away")
}

func TestFileStoreReloadsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")

	first, err := NewFileStore(path, nil)
	require.NoError(t, err)
	require.NoError(t, first.Set("theme", "dark"))

	second, err := NewFileStore(path, nil)
	require.NoError(t, err)

	value, ok := second.Get("theme")
	require.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestFileStoreCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	logs := logger.NewBuffer(0)
	store, err := NewFileStore(path, logs.Logger())
	require.NoError(t, err)

	_, ok := store.Get("theme")
	assert.False(t, ok)

	entries := logs.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, logger.LevelWarn, entries[0].Level)
	assert.Equal(t, "ignoring unreadable preferences file", entries[0].Message)

	assert.ErrorIs(t, store.Load(), ErrCorrupt)

	require.NoError(t, store.Set("theme", "dark"))
	reopened, err := NewFileStore(path, nil)
	require.NoError(t, err)
	value, ok := reopened.Get("theme")
	require.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestFileStoreSetFailureKeepsPreviousValue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "preferences.json")

	store, err := NewFileStore(path, nil)
	require.NoError(t, err)
	require.NoError(t, store.Set("theme", "light"))

	// A directory sitting on the temp path makes the write fail.
	require.NoError(t, os.Mkdir(path+".tmp", 0o755))

	err = store.Set("theme", "dark")
	require.Error(t, err)

	value, ok := store.Get("theme")
	require.True(t, ok)
	assert.Equal(t, "light", value)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(map[string]string{"theme": "dark"})

	value, ok := store.Get("theme")
	require.True(t, ok)
	assert.Equal(t, "dark", value)

	require.NoError(t, store.Set("theme", "light"))
	value, _ = store.Get("theme")
	assert.Equal(t, "light", value)

	store.SetErr = errors.New("read-only")
	require.Error(t, store.Set("theme", "dark"))
	value, _ = store.Get("theme")
	assert.Equal(t, "light", value)
}
