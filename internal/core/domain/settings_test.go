package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAIProvider(t *testing.T) {
	tests := []struct {
		provider AIProvider
		valid    bool
		needsKey bool
		local    bool
	}{
		{AIProviderOllama, true, false, true},
		{AIProviderOpenAI, true, true, false},
		{AIProviderNone, false, false, false},
		{AIProvider("anthropic"), false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.provider.String(), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.provider.IsValid())
			assert.Equal(t, tt.needsKey, tt.provider.RequiresAPIKey())
			assert.Equal(t, tt.local, tt.provider.IsLocal())
			assert.NotEmpty(t, tt.provider.Description())
		})
	}
}

func TestEmbeddingSettings_IsConfigured(t *testing.T) {
	assert.True(t, EmbeddingSettings{Provider: AIProviderOllama}.IsConfigured())
	assert.False(t, EmbeddingSettings{Provider: AIProviderOpenAI}.IsConfigured())
	assert.True(t, EmbeddingSettings{Provider: AIProviderOpenAI, APIKey: "sk"}.IsConfigured())
	assert.False(t, EmbeddingSettings{Provider: AIProviderNone}.IsConfigured())
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, CatalogFormatJSONL, s.Catalog.Format)
	assert.Equal(t, DefaultEmbeddingModel, s.Embedding.Model)
	assert.Equal(t, "data/embeddings.npy", s.Cache.MatrixPath)
	assert.Equal(t, "data/embeddings_meta.json", s.Cache.MetaPath)
	assert.Equal(t, DefaultTopK, s.Search.TopK)
	assert.Equal(t, DefaultAlpha, s.Search.Alpha)
	assert.Equal(t, 384, EmbeddingDimensions()[DefaultEmbeddingModel])
}

func TestCatalogFormat(t *testing.T) {
	assert.True(t, CatalogFormatSQLite.IsValid())
	assert.False(t, CatalogFormat("csv").IsValid())
}
