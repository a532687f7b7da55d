package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driven"
	"github.com/custodia-labs/scout/internal/core/ports/driving"
	"github.com/custodia-labs/scout/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService ranks the catalog against free-text queries.
// It holds only immutable state and is safe for concurrent use.
type SearchService struct {
	catalog *domain.Catalog
	engine  driven.SimilarityEngine
	metrics driven.SearchMetrics
	now     func() time.Time
}

// NewSearchService creates a new search service.
// The metrics parameter is optional (can be nil).
func NewSearchService(
	catalog *domain.Catalog,
	engine driven.SimilarityEngine,
	metrics driven.SearchMetrics,
) *SearchService {
	return &SearchService{
		catalog: catalog,
		engine:  engine,
		metrics: metrics,
		now:     time.Now,
	}
}

// Meta describes the active similarity engine.
func (s *SearchService) Meta() domain.EngineMetadata {
	return s.engine.Meta()
}

// Search ranks the catalog against req.
func (s *SearchService) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	logger.Section("Search Execution")
	start := s.now()

	query, topK, alpha, err := SanitizeRequest(req)
	if err != nil {
		return nil, err
	}
	logger.Debug("Query: %q (top_k=%d, alpha=%.2f)", query, topK, alpha)

	meta := s.engine.Meta()

	mask := FilterMask(s.catalog, req.Filters)
	logger.Debug("Filter kept %d of %d rows", CountKept(mask), len(mask))

	sims, err := s.engine.QuerySimilarities(ctx, query)
	if err != nil {
		s.recordFailure(meta.Type)
		return nil, fmt.Errorf("search: %w", err)
	}
	if len(sims) != s.catalog.Len() {
		s.recordFailure(meta.Type)
		return nil, fmt.Errorf("search: engine returned %d scores for %d rows", len(sims), s.catalog.Len())
	}

	results := Rank(s.catalog, sims, mask, RankOptions{
		TopK:         topK,
		Alpha:        alpha,
		IncludeDebug: req.IncludeDebug,
	})

	latency := s.now().Sub(start)
	if s.metrics != nil {
		s.metrics.SearchCompleted(meta.Type, latency, len(results))
	}
	logger.Debug("Returning %d results in %s", len(results), latency)

	return &domain.SearchResponse{
		RequestID: uuid.NewString(),
		Query:     query,
		TopK:      topK,
		Alpha:     alpha,
		Filters:   req.Filters,
		Engine:    meta,
		Results:   results,
		Latency:   latency,
		LatencyMS: latency.Milliseconds(),
	}, nil
}

func (s *SearchService) recordFailure(engine domain.EngineType) {
	if s.metrics != nil {
		s.metrics.SearchFailed(engine)
	}
}

// SanitizeRequest validates the query and clamps the ranking parameters.
// TopK zero or below selects the default; values above the maximum are
// clamped. A nil or NaN alpha selects the default.
func SanitizeRequest(req domain.SearchRequest) (query string, topK int, alpha float64, err error) {
	query = strings.TrimSpace(req.Query)
	if query == "" {
		return "", 0, 0, fmt.Errorf("%w: query is required", domain.ErrInvalidInput)
	}
	if n := utf8.RuneCountInString(query); n > domain.MaxQueryLength {
		return "", 0, 0, fmt.Errorf("%w: query is %d characters, maximum is %d",
			domain.ErrInvalidInput, n, domain.MaxQueryLength)
	}

	topK = req.TopK
	if topK <= 0 {
		topK = domain.DefaultTopK
	}
	topK = min(topK, domain.MaxTopK)

	alpha = domain.DefaultAlpha
	if req.Alpha != nil && !math.IsNaN(*req.Alpha) {
		alpha = Clamp01(*req.Alpha)
	}
	return query, topK, alpha, nil
}
