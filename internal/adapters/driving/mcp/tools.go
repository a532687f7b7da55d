package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/scout/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query        string   `json:"query" jsonschema:"free-text description of the titles to find"`
	TopK         int      `json:"top_k,omitempty" jsonschema:"number of results, 1 to 20 (default 5)"`
	Alpha        *float64 `json:"alpha,omitempty" jsonschema:"relevance weight in [0,1]; 1 ranks by relevance only (default 0.8)"`
	Ratings      []string `json:"ratings,omitempty" jsonschema:"allowed rating codes, e.g. PG-13 or TV-MA"`
	YearMin      *int     `json:"year_min,omitempty" jsonschema:"inclusive lower release year"`
	YearMax      *int     `json:"year_max,omitempty" jsonschema:"inclusive upper release year"`
	ContentTypes []string `json:"content_types,omitempty" jsonschema:"allowed content types: movie, series, unknown"`
	Debug        bool     `json:"debug,omitempty" jsonschema:"include the scoring breakdown"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	RequestID string                `json:"request_id"`
	Engine    domain.EngineMetadata `json:"engine"`
	Results   []domain.ScoredResult `json:"results"`
	Count     int                   `json:"count"`
	LatencyMS int64                 `json:"latency_ms"`
}

// EngineInfoInput is the (empty) input schema for the engine_info tool.
type EngineInfoInput struct{}

// EngineInfoOutput describes the active similarity engine.
type EngineInfoOutput struct {
	Type        domain.EngineType `json:"type"`
	Model       string            `json:"model,omitempty"`
	DataHash    string            `json:"data_hash"`
	Description string            `json:"description"`
}

// CatalogStatsInput is the (empty) input schema for the catalog_stats tool.
type CatalogStatsInput struct{}

// errNoCatalogService is returned when catalog_stats is called without a
// catalog service.
var errNoCatalogService = errors.New("catalog statistics are not available")

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Rank catalog titles against a query, blending relevance with advertiser value",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "engine_info",
		Description: "Describe the similarity engine serving searches",
	}, s.handleEngineInfo)

	if s.ports.Catalog != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "catalog_stats",
			Description: "Summarise catalog ratings, content types and release years",
		}, s.handleCatalogStats)
	}
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	filters, err := toFilters(input)
	if err != nil {
		return nil, SearchOutput{}, err
	}
	req := domain.SearchRequest{
		Query:        input.Query,
		TopK:         input.TopK,
		Alpha:        input.Alpha,
		Filters:      filters,
		IncludeDebug: input.Debug,
	}

	resp, err := s.ports.Search.Search(ctx, req)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	return nil, SearchOutput{
		RequestID: resp.RequestID,
		Engine:    resp.Engine,
		Results:   resp.Results,
		Count:     len(resp.Results),
		LatencyMS: resp.LatencyMS,
	}, nil
}

// toFilters returns nil when no filter is set. Content types are
// case-insensitive and must be movie, series or unknown.
func toFilters(input SearchInput) (*domain.SearchFilters, error) {
	if len(input.Ratings) == 0 && input.YearMin == nil && input.YearMax == nil && len(input.ContentTypes) == 0 {
		return nil, nil
	}
	f := &domain.SearchFilters{
		Ratings: input.Ratings,
		YearMin: input.YearMin,
		YearMax: input.YearMax,
	}
	for _, raw := range input.ContentTypes {
		ct := domain.ContentType(strings.ToLower(strings.TrimSpace(raw)))
		if !ct.IsValid() {
			return nil, fmt.Errorf("%w: unknown content type %q", domain.ErrInvalidInput, raw)
		}
		f.ContentTypes = append(f.ContentTypes, ct)
	}
	return f, nil
}

// handleEngineInfo handles the engine_info tool invocation.
func (s *Server) handleEngineInfo(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ EngineInfoInput,
) (*mcp.CallToolResult, EngineInfoOutput, error) {
	return nil, engineInfo(s.ports.Search.Meta()), nil
}

func engineInfo(meta domain.EngineMetadata) EngineInfoOutput {
	out := EngineInfoOutput{
		Type:        meta.Type,
		DataHash:    meta.Fingerprint,
		Description: meta.Type.Description(),
	}
	if meta.ModelName != nil {
		out.Model = *meta.ModelName
	}
	return out
}

// handleCatalogStats handles the catalog_stats tool invocation.
func (s *Server) handleCatalogStats(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ CatalogStatsInput,
) (*mcp.CallToolResult, domain.CatalogStats, error) {
	if s.ports.Catalog == nil {
		return nil, domain.CatalogStats{}, errNoCatalogService
	}
	return nil, s.ports.Catalog.Stats(), nil
}
