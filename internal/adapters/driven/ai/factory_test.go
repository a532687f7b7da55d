package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scout/internal/adapters/driven/embedding/ratelimit"
	"github.com/custodia-labs/scout/internal/core/domain"
)

func TestCreateEmbeddingService(t *testing.T) {
	tests := []struct {
		name      string
		settings  *domain.EmbeddingSettings
		wantNil   bool
		wantModel string
		wantDims  int
	}{
		{"nil settings", nil, true, "", 0},
		{"provider none", &domain.EmbeddingSettings{Provider: domain.AIProviderNone}, true, "", 0},
		{"openai without key", &domain.EmbeddingSettings{Provider: domain.AIProviderOpenAI}, true, "", 0},
		{
			"ollama known model",
			&domain.EmbeddingSettings{Provider: domain.AIProviderOllama, Model: "nomic-embed-text"},
			false, "nomic-embed-text", 768,
		},
		{
			"ollama unknown model",
			&domain.EmbeddingSettings{Provider: domain.AIProviderOllama, Model: "custom"},
			false, "custom", 384,
		},
		{
			"openai",
			&domain.EmbeddingSettings{Provider: domain.AIProviderOpenAI, APIKey: "sk", Model: "text-embedding-3-large"},
			false, "text-embedding-3-large", 3072,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := CreateEmbeddingService(tt.settings)
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, svc)
				return
			}
			require.NotNil(t, svc)
			assert.IsType(t, &ratelimit.EmbeddingService{}, svc)
			assert.Equal(t, tt.wantModel, svc.ModelName())
			assert.Equal(t, tt.wantDims, svc.Dimensions())
		})
	}
}

func TestCreateAndValidateEmbeddingService(t *testing.T) {
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"models":[{"name":"all-minilm:latest"}]}`))
	}))
	defer up.Close()

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	svc, err := CreateAndValidateEmbeddingService(context.Background(), &domain.EmbeddingSettings{
		Provider: domain.AIProviderOllama, Model: "all-minilm", BaseURL: up.URL,
	})
	require.NoError(t, err)
	require.NotNil(t, svc)

	_, err = CreateAndValidateEmbeddingService(context.Background(), &domain.EmbeddingSettings{
		Provider: domain.AIProviderOllama, Model: "all-minilm", BaseURL: down.URL,
	})
	assert.ErrorIs(t, err, domain.ErrEmbeddingUnavailable)

	none, err := CreateAndValidateEmbeddingService(context.Background(), nil)
	assert.NoError(t, err)
	assert.Nil(t, none)
}
