package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrCatalogEmpty", ErrCatalogEmpty},
		{"ErrUnsupportedType", ErrUnsupportedType},
		{"ErrEngineUnavailable", ErrEngineUnavailable},
		{"ErrEmbeddingUnavailable", ErrEmbeddingUnavailable},
		{"ErrCacheMissing", ErrCacheMissing},
		{"ErrCacheStale", ErrCacheStale},
		{"ErrCacheModelMismatch", ErrCacheModelMismatch},
		{"ErrCacheShapeMismatch", ErrCacheShapeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Wrapping(t *testing.T) {
	err := fmt.Errorf("%w: %w", ErrEngineUnavailable, ErrCacheStale)

	assert.True(t, errors.Is(err, ErrEngineUnavailable))
	assert.True(t, errors.Is(err, ErrCacheStale))
	assert.False(t, errors.Is(err, ErrCacheMissing))
}
