package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/scout/internal/core/domain"
)

func filterFixture() *domain.Catalog {
	return domain.NewCatalog([]domain.CatalogEntry{
		{Title: "a", Rating: ptr("PG"), ReleaseYear: ptr(2000), ContentType: domain.ContentTypeMovie},
		{Title: "b", Rating: ptr(" TV-MA "), ReleaseYear: ptr(2010), ContentType: domain.ContentTypeSeries},
		{Title: "c", ReleaseYear: ptr(2020)},
		{Title: "d", Rating: ptr("PG")},
	})
}

func TestFilterMask(t *testing.T) {
	tests := []struct {
		name    string
		filters *domain.SearchFilters
		want    []bool
	}{
		{"nil filters", nil, []bool{true, true, true, true}},
		{"empty slices are absent", &domain.SearchFilters{Ratings: []string{}, ContentTypes: []domain.ContentType{}}, []bool{true, true, true, true}},
		{"ratings trimmed, missing fails", &domain.SearchFilters{Ratings: []string{"PG", "TV-MA"}}, []bool{true, true, false, true}},
		{"year min inclusive", &domain.SearchFilters{YearMin: ptr(2010)}, []bool{false, true, true, false}},
		{"year max inclusive", &domain.SearchFilters{YearMax: ptr(2010)}, []bool{true, true, false, false}},
		{"missing type is unknown", &domain.SearchFilters{ContentTypes: []domain.ContentType{domain.ContentTypeUnknown}}, []bool{false, false, true, true}},
		{
			"combined",
			&domain.SearchFilters{Ratings: []string{"PG"}, YearMin: ptr(1990), ContentTypes: []domain.ContentType{domain.ContentTypeMovie}},
			[]bool{true, false, false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterMask(filterFixture(), tt.filters))
		})
	}
}

func TestFilterMask_DoesNotMutateCatalog(t *testing.T) {
	c := filterFixture()
	before := c.At(1)
	_ = FilterMask(c, &domain.SearchFilters{Ratings: []string{"TV-MA"}})
	assert.Equal(t, before, c.At(1))
}

func TestCountKept(t *testing.T) {
	assert.Equal(t, 0, CountKept(nil))
	assert.Equal(t, 2, CountKept([]bool{true, false, true}))
}
