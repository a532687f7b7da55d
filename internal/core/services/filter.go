package services

import (
	"strings"

	"github.com/custodia-labs/scout/internal/core/domain"
)

// FilterMask returns one keep flag per catalog row.
//
// A nil filter, or a nil/empty dimension, passes every row for that
// dimension. Rows with a missing rating or release year fail any rating
// or year bound; rows with a missing content type are treated as
// "unknown". The catalog is never modified.
func FilterMask(c *domain.Catalog, f *domain.SearchFilters) []bool {
	mask := make([]bool, c.Len())
	for i := range mask {
		mask[i] = true
	}
	if f == nil {
		return mask
	}

	var ratings map[string]bool
	if len(f.Ratings) > 0 {
		ratings = make(map[string]bool, len(f.Ratings))
		for _, r := range f.Ratings {
			ratings[strings.TrimSpace(r)] = true
		}
	}

	var types map[domain.ContentType]bool
	if len(f.ContentTypes) > 0 {
		types = make(map[domain.ContentType]bool, len(f.ContentTypes))
		for _, t := range f.ContentTypes {
			types[domain.ContentType(strings.TrimSpace(string(t)))] = true
		}
	}

	for i := range mask {
		mask[i] = keep(c.Entry(i), f, ratings, types)
	}
	return mask
}

func keep(
	e *domain.CatalogEntry,
	f *domain.SearchFilters,
	ratings map[string]bool,
	types map[domain.ContentType]bool,
) bool {
	if ratings != nil && (e.Rating == nil || !ratings[e.RatingCode()]) {
		return false
	}
	if f.YearMin != nil && (e.ReleaseYear == nil || *e.ReleaseYear < *f.YearMin) {
		return false
	}
	if f.YearMax != nil && (e.ReleaseYear == nil || *e.ReleaseYear > *f.YearMax) {
		return false
	}
	if types != nil && !types[e.ContentType.OrUnknown()] {
		return false
	}
	return true
}

// CountKept returns the number of rows a mask keeps.
func CountKept(mask []bool) int {
	n := 0
	for _, ok := range mask {
		if ok {
			n++
		}
	}
	return n
}
