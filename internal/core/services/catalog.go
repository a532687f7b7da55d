package services

import (
	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driving"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// unknownRating labels rows without a rating in the stats.
const unknownRating = "Unknown"

// CatalogService reports on the loaded catalog.
type CatalogService struct {
	catalog *domain.Catalog
	stats   domain.CatalogStats
}

// NewCatalogService creates a catalog service. Stats are computed once;
// the catalog is immutable.
func NewCatalogService(catalog *domain.Catalog) *CatalogService {
	return &CatalogService{catalog: catalog, stats: ComputeStats(catalog)}
}

// Stats returns the catalog distribution summary.
func (s *CatalogService) Stats() domain.CatalogStats {
	out := s.stats
	out.Ratings = copyCounts(s.stats.Ratings)
	out.ContentTypes = copyCounts(s.stats.ContentTypes)
	return out
}

// Fingerprint returns the catalog data-version fingerprint.
func (s *CatalogService) Fingerprint() string {
	return s.catalog.Fingerprint()
}

// ComputeStats counts ratings and content types and finds the release
// year range. Missing ratings count as "Unknown".
func ComputeStats(c *domain.Catalog) domain.CatalogStats {
	stats := domain.CatalogStats{
		Rows:         c.Len(),
		Ratings:      make(map[string]int),
		ContentTypes: make(map[string]int),
	}
	for i := range c.Len() {
		e := c.Entry(i)

		rating := e.RatingCode()
		if rating == "" {
			rating = unknownRating
		}
		stats.Ratings[rating]++
		stats.ContentTypes[e.ContentType.OrUnknown().String()]++

		if e.ReleaseYear == nil {
			continue
		}
		y := *e.ReleaseYear
		if stats.YearMin == nil || y < *stats.YearMin {
			stats.YearMin = copyInt(&y)
		}
		if stats.YearMax == nil || y > *stats.YearMax {
			stats.YearMax = copyInt(&y)
		}
	}
	return stats
}

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
