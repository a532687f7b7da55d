package file

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
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
	assert.Empty(t, store.Keys())
}

func TestNewConfigStore_WithNestedDirectory(t *testing.T) {
	nestedPath := filepath.Join(t.TempDir(), "nested", "deep")

	store, err := NewConfigStore(nestedPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(nestedPath, "config.toml"), store.Path())

	info, err := os.Stat(nestedPath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("this is not valid TOML {{{[["), 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("embedding.model", "all-minilm"))
	require.NoError(t, store.Set("search.top_k", 7))
	require.NoError(t, store.Set("search.alpha", 0.6))

	assert.Equal(t, "all-minilm", store.GetString("embedding.model"))
	assert.Equal(t, 7, store.GetInt("search.top_k"))
	assert.InDelta(t, 0.6, store.GetFloat("search.alpha"), 1e-12)

	// Integers widen to float.
	assert.Equal(t, 7.0, store.GetFloat("search.top_k"))

	// Wrong types and missing keys give zero values.
	assert.Equal(t, "", store.GetString("search.top_k"))
	assert.Equal(t, 0, store.GetInt("embedding.model"))
	assert.Equal(t, 0.0, store.GetFloat("embedding.model"))
	assert.Equal(t, 0.0, store.GetFloat("missing"))

	val, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("catalog.path", "data/catalog.jsonl"))
	require.NoError(t, store1.Set("catalog.format", "jsonl"))
	require.NoError(t, store1.Set("search.top_k", 10))
	require.NoError(t, store1.Set("search.alpha", 0.5))

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "data/catalog.jsonl", store2.GetString("catalog.path"))
	assert.Equal(t, "jsonl", store2.GetString("catalog.format"))
	assert.Equal(t, 10, store2.GetInt("search.top_k"))
	assert.InDelta(t, 0.5, store2.GetFloat("search.alpha"), 1e-12)
	assert.Equal(t, []string{"catalog.format", "catalog.path", "search.alpha", "search.top_k"}, store2.Keys())
}

func TestConfigStore_WritesTables(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("embedding.provider", "ollama"))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "[embedding]"), "got %q", data)
}

func TestConfigStore_ReadsHandWrittenTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[cache]\nmatrix_path = \"/tmp/e.npy\"\n\n[search]\ntop_k = 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/e.npy", store.GetString("cache.matrix_path"))
	assert.Equal(t, 3, store.GetInt("search.top_k"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("test", "value"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("# Just a comment\n\n"), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Empty(t, store.Keys())
}

func TestConfigStore_SetWriteError_RollsBack(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("test", "value"))

	// Replace the file with a directory to cause write error
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	err = store.Set("another", "value")
	assert.Error(t, err)
	_, ok := store.Get("another")
	assert.False(t, ok)

	err = store.Set("test", "changed")
	assert.Error(t, err)
	assert.Equal(t, "value", store.GetString("test"))
}

func TestConfigStore_SetWithUnmarshallableValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	// Channels cannot be marshaled to TOML
	err = store.Set("channel", make(chan int))
	assert.Error(t, err)
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("valid", "data"))

	require.NoError(t, os.WriteFile(store.Path(), []byte("invalid toml syntax ][}{"), 0600))

	assert.Error(t, store.Load())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := "key" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_ = store.GetFloat(key)
			_ = store.Keys()
		}(i)
	}
	wg.Wait()

	assert.Len(t, store.Keys(), 10)
}

func TestNestMap(t *testing.T) {
	nested := nestMap(map[string]any{
		"a.b":   1,
		"a.c":   2,
		"top":   "x",
		"top.y": "clash",
	})

	assert.Equal(t, map[string]any{"b": 1, "c": 2}, nested["a"])
	assert.Equal(t, "x", nested["top"])
	assert.Equal(t, "clash", nested["top.y"])
	assert.Equal(t, map[string]any{"a.b": 1, "a.c": 2, "top": "x", "top.y": "clash"}, flattenMap(nested, ""))
}
