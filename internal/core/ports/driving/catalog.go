package driving

import "github.com/custodia-labs/scout/internal/core/domain"

// CatalogService exposes read-only catalog information.
type CatalogService interface {
	// Stats summarises ratings, content types and release years.
	Stats() domain.CatalogStats

	// Fingerprint returns the catalog data-version fingerprint.
	Fingerprint() string
}
