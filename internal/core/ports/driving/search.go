package driving

import (
	"context"

	"github.com/custodia-labs/scout/internal/core/domain"
)

// SearchService provides ranking capabilities to external actors.
type SearchService interface {
	// Meta describes the similarity engine selected at startup.
	Meta() domain.EngineMetadata

	// Search ranks the catalog against a query under optional filters.
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error)
}
