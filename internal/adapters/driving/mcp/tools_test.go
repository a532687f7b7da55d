package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scout/internal/core/domain"
)

func TestServer_handleSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns search results", func(t *testing.T) {
		mockSearch := &mockSearchService{
			response: &domain.SearchResponse{
				RequestID: "req-1",
				Engine:    domain.EngineMetadata{Type: domain.EngineLexical},
				Results: []domain.ScoredResult{
					{Title: "Night Shift", FinalScore: 0.93},
				},
				LatencyMS: 4,
			},
		}
		server, err := NewServer(&Ports{Search: mockSearch})
		require.NoError(t, err)

		_, output, err := server.handleSearch(ctx, nil, SearchInput{Query: "scary night"})

		require.NoError(t, err)
		assert.Equal(t, "req-1", output.RequestID)
		assert.Equal(t, 1, output.Count)
		assert.Equal(t, "Night Shift", output.Results[0].Title)
		assert.Equal(t, domain.EngineLexical, output.Engine.Type)
		assert.Equal(t, int64(4), output.LatencyMS)
		assert.Nil(t, mockSearch.lastReq.Filters)
	})

	t.Run("passes request parameters through", func(t *testing.T) {
		mockSearch := &mockSearchService{}
		server, err := NewServer(&Ports{Search: mockSearch})
		require.NoError(t, err)

		alpha := 0.3
		input := SearchInput{
			Query:        "family",
			TopK:         7,
			Alpha:        &alpha,
			Ratings:      []string{"PG"},
			YearMin:      intPtr(2000),
			ContentTypes: []string{"movie"},
			Debug:        true,
		}
		_, _, err = server.handleSearch(ctx, nil, input)
		require.NoError(t, err)

		req := mockSearch.lastReq
		assert.Equal(t, "family", req.Query)
		assert.Equal(t, 7, req.TopK)
		assert.Equal(t, &alpha, req.Alpha)
		assert.True(t, req.IncludeDebug)
		require.NotNil(t, req.Filters)
		assert.Equal(t, []string{"PG"}, req.Filters.Ratings)
		assert.Equal(t, 2000, *req.Filters.YearMin)
		assert.Nil(t, req.Filters.YearMax)
		assert.Equal(t, []domain.ContentType{domain.ContentTypeMovie}, req.Filters.ContentTypes)
	})

	t.Run("normalizes content type case", func(t *testing.T) {
		mockSearch := &mockSearchService{}
		server, err := NewServer(&Ports{Search: mockSearch})
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Query: "q", ContentTypes: []string{" Series "}})
		require.NoError(t, err)

		require.NotNil(t, mockSearch.lastReq.Filters)
		assert.Equal(t, []domain.ContentType{domain.ContentTypeSeries}, mockSearch.lastReq.Filters.ContentTypes)
	})

	t.Run("rejects unknown content type", func(t *testing.T) {
		mockSearch := &mockSearchService{}
		server, err := NewServer(&Ports{Search: mockSearch})
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Query: "q", ContentTypes: []string{"film"}})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "film")
		assert.Empty(t, mockSearch.lastReq.Query)
	})

	t.Run("returns error on search failure", func(t *testing.T) {
		mockSearch := &mockSearchService{err: errors.New("search failed")}
		server, err := NewServer(&Ports{Search: mockSearch})
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Query: "test"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "search failed")
	})
}

func TestServer_handleEngineInfo(t *testing.T) {
	mockSearch := &mockSearchService{meta: domain.EngineMetadata{
		Type:        domain.EngineSemantic,
		ModelName:   strPtr("all-minilm"),
		Fingerprint: "deadbeef",
	}}
	server, err := NewServer(&Ports{Search: mockSearch})
	require.NoError(t, err)

	_, out, err := server.handleEngineInfo(context.Background(), nil, EngineInfoInput{})

	require.NoError(t, err)
	assert.Equal(t, domain.EngineSemantic, out.Type)
	assert.Equal(t, "all-minilm", out.Model)
	assert.Equal(t, "deadbeef", out.DataHash)
	assert.NotEmpty(t, out.Description)
}

func TestServer_handleCatalogStats(t *testing.T) {
	t.Run("returns stats", func(t *testing.T) {
		stats := domain.CatalogStats{Rows: 3, Ratings: map[string]int{"PG": 3}}
		server, err := NewServer(&Ports{Search: &mockSearchService{}, Catalog: &mockCatalogService{stats: stats}})
		require.NoError(t, err)

		_, out, err := server.handleCatalogStats(context.Background(), nil, CatalogStatsInput{})

		require.NoError(t, err)
		assert.Equal(t, stats, out)
	})

	t.Run("errors without catalog service", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{}})
		require.NoError(t, err)

		_, _, err = server.handleCatalogStats(context.Background(), nil, CatalogStatsInput{})
		assert.ErrorIs(t, err, errNoCatalogService)
	})
}
