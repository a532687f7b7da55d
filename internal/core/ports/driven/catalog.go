package driven

import (
	"context"

	"github.com/custodia-labs/scout/internal/core/domain"
)

// CatalogSource loads the already-normalized catalog in row order.
// Cleaning and CSV ingestion happen upstream; sources only decode.
type CatalogSource interface {
	// Load returns every entry in stable catalog order.
	Load(ctx context.Context) ([]domain.CatalogEntry, error)
}

// CatalogSink persists a normalized catalog, replacing any previous rows.
type CatalogSink interface {
	// Replace stores entries in the given order.
	Replace(ctx context.Context, entries []domain.CatalogEntry) error
}
