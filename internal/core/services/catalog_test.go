package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scout/internal/core/domain"
)

func TestCatalogService_Stats(t *testing.T) {
	c := domain.NewCatalog([]domain.CatalogEntry{
		{Title: "a", Rating: ptr("PG"), ReleaseYear: ptr(1999), ContentType: domain.ContentTypeMovie},
		{Title: "b", Rating: ptr("PG"), ReleaseYear: ptr(2021), ContentType: domain.ContentTypeSeries},
		{Title: "c"},
	}).WithFingerprint("abc")

	svc := NewCatalogService(c)
	stats := svc.Stats()

	assert.Equal(t, 3, stats.Rows)
	assert.Equal(t, map[string]int{"PG": 2, "Unknown": 1}, stats.Ratings)
	assert.Equal(t, map[string]int{"movie": 1, "series": 1, "unknown": 1}, stats.ContentTypes)
	require.NotNil(t, stats.YearMin)
	require.NotNil(t, stats.YearMax)
	assert.Equal(t, 1999, *stats.YearMin)
	assert.Equal(t, 2021, *stats.YearMax)
	assert.Equal(t, "abc", svc.Fingerprint())

	stats.Ratings["PG"] = 100
	assert.Equal(t, 2, svc.Stats().Ratings["PG"])
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(domain.NewCatalog(nil))
	assert.Zero(t, stats.Rows)
	assert.Empty(t, stats.Ratings)
	assert.Nil(t, stats.YearMin)
}
