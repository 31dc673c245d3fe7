package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0600))
}

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
	assert.Equal(t, filepath.Join(home, ".zeroentropy-mcp", "config.toml"), store.Path())
}

func TestNewConfigStore_MissingFileIsEmpty(t *testing.T) {
	store, err := NewConfigStore(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)

	val, ok := store.Get("api.base_url")
	assert.False(t, ok)
	assert.Nil(t, val)

	// Reading never creates the directory
	_, err = os.Stat(filepath.Dir(store.Path()))
	assert.True(t, os.IsNotExist(err))
}

func TestNewConfigStore_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "[api\nbase_url = ")

	_, err := NewConfigStore(tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.toml")
}

func TestConfigStore_NestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `
[api]
base_url = "https://example.test/v1"
timeout_seconds = 30
requests_per_second = 2.5

[log]
verbose = true
`)

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "https://example.test/v1", store.GetString("api.base_url"))
	assert.Equal(t, 30, store.GetInt("api.timeout_seconds"))
	assert.Equal(t, 2.5, store.GetFloat("api.requests_per_second"))
	assert.True(t, store.GetBool("log.verbose"))
}

func TestConfigStore_TypeMismatch(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `
name = "value"
count = 3
enabled = "true"
`)

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "", store.GetString("count"))
	assert.Equal(t, 0, store.GetInt("name"))
	assert.Equal(t, 3.0, store.GetFloat("count"))
	assert.Equal(t, 0.0, store.GetFloat("name"))
	assert.False(t, store.GetBool("enabled"))
	assert.Equal(t, "", store.GetString("nonexistent"))
}

func TestConfigStore_Load_PicksUpChanges(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `key = "one"`)

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "one", store.GetString("key"))

	writeConfig(t, tmpDir, `key = "two"`)
	require.NoError(t, store.Load())
	assert.Equal(t, "two", store.GetString("key"))
}

func TestFlattenMap(t *testing.T) {
	input := map[string]any{
		"a": map[string]any{
			"b": 1,
			"c": map[string]any{"d": "x"},
		},
		"e": true,
	}

	got := flattenMap(input, "")

	assert.Equal(t, map[string]any{"a.b": 1, "a.c.d": "x", "e": true}, got)
}
