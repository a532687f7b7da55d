package driving

import (
	"context"

	"github.com/custodia-labs/scout/internal/core/domain"
)

// EvalService measures retrieval quality against proxy relevance labels.
type EvalService interface {
	// Evaluate ranks each query by pure relevance and scores the top k.
	Evaluate(ctx context.Context, queries []domain.EvalQuery, k int) (*domain.EvalReport, error)
}
