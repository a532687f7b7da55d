package driven

import (
	"context"

	"github.com/custodia-labs/scout/internal/core/domain"
)

// SimilarityEngine scores every catalog row against a query.
// There are exactly two implementations: the lexical (TF-IDF) engine and
// the semantic (embedding cache) engine. Both are built once at startup
// and are safe for unlimited concurrent readers.
type SimilarityEngine interface {
	// Meta describes the engine.
	Meta() domain.EngineMetadata

	// QuerySimilarities returns one score per catalog row, index-aligned
	// to catalog order.
	QuerySimilarities(ctx context.Context, query string) ([]float64, error)
}
