package services

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scout/internal/core/domain"
)

func TestMetrics(t *testing.T) {
	rels := []bool{false, true, false, true}

	assert.InDelta(t, 0.5, MRRAtK(rels, 4), 1e-12)
	assert.InDelta(t, 0.0, MRRAtK(rels, 1), 1e-12)
	assert.Equal(t, 1.0, HitRateAtK(rels, 2))
	assert.Equal(t, 0.0, HitRateAtK(rels, 1))

	dcg := 1/math.Log2(3) + 1/math.Log2(5)
	idcg := 1 + 1/math.Log2(3)
	assert.InDelta(t, dcg/idcg, NDCGAtK(rels, 4), 1e-12)
	assert.Zero(t, NDCGAtK([]bool{false, false}, 2))
	assert.Zero(t, MRRAtK(nil, 5))
}

func TestEvalService_Evaluate(t *testing.T) {
	svc := NewEvalService(threeRowCatalog(), lexicalStub(threeRowSims...))

	report, err := svc.Evaluate(context.Background(), []domain.EvalQuery{
		{Query: "scary", Expect: domain.Expectation{GenresAny: []string{"Horror"}}},
		{Query: "kids", Expect: domain.Expectation{RatingsAny: []string{"TV-Y"}}},
	}, 2)

	require.NoError(t, err)
	assert.Equal(t, domain.EngineLexical, report.Engine)
	assert.Equal(t, 2, report.K)
	require.Len(t, report.Queries, 2)

	// Ranking by similarity: Night Shift, Office Hours, Sunny Meadow.
	assert.Equal(t, 1.0, report.Queries[0].MRR)
	assert.Equal(t, 0.0, report.Queries[1].HitRate)
	assert.InDelta(t, 0.5, report.MRR, 1e-12)
	assert.InDelta(t, 0.5, report.HitRate, 1e-12)
}

func TestEvalService_Evaluate_InvalidK(t *testing.T) {
	svc := NewEvalService(threeRowCatalog(), lexicalStub(threeRowSims...))
	_, err := svc.Evaluate(context.Background(), nil, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
