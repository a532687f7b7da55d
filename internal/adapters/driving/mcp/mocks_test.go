package mcp

import (
	"context"

	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driving"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	meta     domain.EngineMetadata
	response *domain.SearchResponse
	err      error
	lastReq  domain.SearchRequest
}

func (m *mockSearchService) Meta() domain.EngineMetadata {
	return m.meta
}

func (m *mockSearchService) Search(_ context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	if m.response == nil {
		return &domain.SearchResponse{Engine: m.meta}, nil
	}
	return m.response, nil
}

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	stats domain.CatalogStats
}

func (m *mockCatalogService) Stats() domain.CatalogStats { return m.stats }

func (m *mockCatalogService) Fingerprint() string { return "abc123" }

// Ensure mocks implement interfaces.
var (
	_ driving.SearchService  = (*mockSearchService)(nil)
	_ driving.CatalogService = (*mockCatalogService)(nil)
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }
