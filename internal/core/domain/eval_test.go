package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func TestExpectation_Matches(t *testing.T) {
	entry := &CatalogEntry{
		Genres:         []string{"Comedy", "Drama"},
		ReleaseYear:    intPtr(2012),
		Rating:         strPtr("PG"),
		RuntimeMinutes: intPtr(95),
	}
	bare := &CatalogEntry{Genres: []string{}}

	tests := []struct {
		name   string
		expect Expectation
		entry  *CatalogEntry
		want   bool
	}{
		{"empty matches all", Expectation{}, bare, true},
		{"genre hit", Expectation{GenresAny: []string{"Drama", "Horror"}}, entry, true},
		{"genre miss", Expectation{GenresAny: []string{"Horror"}}, entry, false},
		{"year window", Expectation{YearMin: intPtr(2010), YearMax: intPtr(2015)}, entry, true},
		{"year missing", Expectation{YearMin: intPtr(2010)}, bare, false},
		{"rating", Expectation{RatingsAny: []string{"PG", "G"}}, entry, true},
		{"rating missing", Expectation{RatingsAny: []string{"PG"}}, bare, false},
		{"runtime cap", Expectation{RuntimeMax: intPtr(90)}, entry, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.expect.Matches(tt.entry))
		})
	}
}
