package services

import (
	"context"
	"fmt"
	"math"

	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driven"
	"github.com/custodia-labs/scout/internal/core/ports/driving"
	"github.com/custodia-labs/scout/internal/logger"
)

// Ensure EvalService implements the interface.
var _ driving.EvalService = (*EvalService)(nil)

// EvalService scores retrieval quality of the active engine against
// rule-based relevance labels. Ranking is by raw similarity only.
type EvalService struct {
	catalog *domain.Catalog
	engine  driven.SimilarityEngine
}

// NewEvalService creates a new evaluation service.
func NewEvalService(catalog *domain.Catalog, engine driven.SimilarityEngine) *EvalService {
	return &EvalService{catalog: catalog, engine: engine}
}

// Evaluate runs every query and reports per-query and mean metrics at k.
func (s *EvalService) Evaluate(ctx context.Context, queries []domain.EvalQuery, k int) (*domain.EvalReport, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive", domain.ErrInvalidInput)
	}
	logger.Section("Evaluation")

	report := &domain.EvalReport{
		Engine:  s.engine.Meta().Type,
		K:       k,
		Queries: make([]domain.EvalQueryResult, 0, len(queries)),
	}

	for _, q := range queries {
		sims, err := s.engine.QuerySimilarities(ctx, q.Query)
		if err != nil {
			return nil, fmt.Errorf("evaluate %q: %w", q.Query, err)
		}

		ranked := SelectCandidates(sims, nil)
		rels := make([]bool, 0, k)
		for _, c := range ranked[:min(k, len(ranked))] {
			rels = append(rels, q.Expect.Matches(s.catalog.Entry(c.Index)))
		}

		r := domain.EvalQueryResult{
			Query:   q.Query,
			MRR:     MRRAtK(rels, k),
			NDCG:    NDCGAtK(rels, k),
			HitRate: HitRateAtK(rels, k),
		}
		logger.Debug("%q: mrr=%.3f ndcg=%.3f hit=%.0f", q.Query, r.MRR, r.NDCG, r.HitRate)
		report.Queries = append(report.Queries, r)

		report.MRR += r.MRR
		report.NDCG += r.NDCG
		report.HitRate += r.HitRate
	}

	if n := float64(len(report.Queries)); n > 0 {
		report.MRR /= n
		report.NDCG /= n
		report.HitRate /= n
	}
	return report, nil
}

// MRRAtK is the reciprocal rank of the first relevant item in the top k.
func MRRAtK(rels []bool, k int) float64 {
	for i, r := range rels[:min(k, len(rels))] {
		if r {
			return 1 / float64(i+1)
		}
	}
	return 0
}

// NDCGAtK is binary-relevance nDCG. The ideal ordering places the
// relevant items among the top k first.
func NDCGAtK(rels []bool, k int) float64 {
	top := rels[:min(k, len(rels))]
	var dcg float64
	relevant := 0
	for i, r := range top {
		if r {
			dcg += 1 / math.Log2(float64(i+2))
			relevant++
		}
	}
	var idcg float64
	for i := range relevant {
		idcg += 1 / math.Log2(float64(i+2))
	}
	if idcg == 0 {
		return 0
	}
	return dcg / idcg
}

// HitRateAtK is 1 when any of the top k is relevant.
func HitRateAtK(rels []bool, k int) float64 {
	for _, r := range rels[:min(k, len(rels))] {
		if r {
			return 1
		}
	}
	return 0
}
