package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.Empty(t, store.Keys())
	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Load())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("embedding.model", "all-minilm"))
	require.NoError(t, store.Set("embedding.model", "nomic-embed-text"))

	val, ok := store.Get("embedding.model")
	assert.True(t, ok)
	assert.Equal(t, "nomic-embed-text", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("s", "value")
	_ = store.Set("i", 7)
	_ = store.Set("i64", int64(9))
	_ = store.Set("f", 0.25)

	tests := []struct {
		key       string
		wantStr   string
		wantInt   int
		wantFloat float64
	}{
		{"s", "value", 0, 0},
		{"i", "", 7, 7},
		{"i64", "", 9, 9},
		{"f", "", 0, 0.25},
		{"missing", "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.wantStr, store.GetString(tt.key))
			assert.Equal(t, tt.wantInt, store.GetInt(tt.key))
			assert.InDelta(t, tt.wantFloat, store.GetFloat(tt.key), 1e-12)
		})
	}
}

func TestConfigStore_Keys_Sorted(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("search.top_k", 5)
	_ = store.Set("cache.meta_path", "m.json")
	_ = store.Set("embedding.model", "x")

	assert.Equal(t, []string{"cache.meta_path", "embedding.model", "search.top_k"}, store.Keys())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("search.top_k", n)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("search.top_k")
		}()
	}
	wg.Wait()

	_, ok := store.Get("search.top_k")
	assert.True(t, ok)
}
