package services

import (
	"context"

	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driven"
)

func ptr[T any](v T) *T { return &v }

// stubEngine is a SimilarityEngine returning fixed scores.
type stubEngine struct {
	meta    domain.EngineMetadata
	sims    []float64
	err     error
	queries []string
}

var _ driven.SimilarityEngine = (*stubEngine)(nil)

func (e *stubEngine) Meta() domain.EngineMetadata { return e.meta }

func (e *stubEngine) QuerySimilarities(_ context.Context, query string) ([]float64, error) {
	e.queries = append(e.queries, query)
	if e.err != nil {
		return nil, e.err
	}
	out := make([]float64, len(e.sims))
	copy(out, e.sims)
	return out, nil
}

func lexicalStub(sims ...float64) *stubEngine {
	return &stubEngine{meta: domain.EngineMetadata{Type: domain.EngineLexical, ModelName: ptr("tfidf")}, sims: sims}
}

// threeRowCatalog is the hand-computed ranking fixture:
//
//	row 0: TV-Y movie, 100 min, Kids & Family, persona P1 -> monetization 0.87
//	row 1: TV-MA movie, 90 min, Horror, persona P2        -> monetization 0.44
//	row 2: PG-13 series, Comedy, persona P1               -> monetization 0.746
func threeRowCatalog() *domain.Catalog {
	return domain.NewCatalog([]domain.CatalogEntry{
		{
			Title: "Sunny Meadow", ReleaseYear: ptr(2019), RuntimeMinutes: ptr(100),
			Rating: ptr("TV-Y"), Genres: []string{"Kids & Family"}, Persona: ptr("P1"),
			ContentType: domain.ContentTypeMovie,
		},
		{
			Title: "Night Shift", ReleaseYear: ptr(2015), RuntimeMinutes: ptr(90),
			Rating: ptr("TV-MA"), Genres: []string{"Horror"}, Persona: ptr("P2"),
			ContentType: domain.ContentTypeMovie,
		},
		{
			Title: "Office Hours", ReleaseYear: ptr(2021),
			Rating: ptr("PG-13"), Genres: []string{"Comedy"}, Persona: ptr("P1"),
			ContentType: domain.ContentTypeSeries,
		},
	})
}

var threeRowSims = []float64{0.2, 0.9, 0.5}

func titles(results []domain.ScoredResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Title
	}
	return out
}
