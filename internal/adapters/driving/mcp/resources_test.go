package mcp

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scout/internal/core/domain"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}}
}

func TestServer_handleEngineResource(t *testing.T) {
	server, err := NewServer(&Ports{Search: &mockSearchService{meta: domain.EngineMetadata{
		Type:        domain.EngineLexical,
		ModelName:   strPtr("tfidf"),
		Fingerprint: "cafe",
	}}})
	require.NoError(t, err)

	result, err := server.handleEngineResource(context.Background(), readRequest(engineURI))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var info EngineInfoOutput
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &info))
	assert.Equal(t, domain.EngineLexical, info.Type)
	assert.Equal(t, "tfidf", info.Model)
	assert.Equal(t, "cafe", info.DataHash)
}

func TestServer_handleCatalogStatsResource(t *testing.T) {
	t.Run("returns stats JSON", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Search:  &mockSearchService{},
			Catalog: &mockCatalogService{stats: domain.CatalogStats{Rows: 2}},
		})
		require.NoError(t, err)

		result, err := server.handleCatalogStatsResource(context.Background(), readRequest(catalogStatsURI))
		require.NoError(t, err)
		assert.Contains(t, result.Contents[0].Text, `"rows": 2`)
	})

	t.Run("not found without catalog service", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{}})
		require.NoError(t, err)

		_, err = server.handleCatalogStatsResource(context.Background(), readRequest(catalogStatsURI))
		assert.Error(t, err)
	})
}
