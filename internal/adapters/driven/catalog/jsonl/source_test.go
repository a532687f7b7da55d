package jsonl

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scout/internal/core/domain"
)

const sample = `{"title":"Night Shift","release_year":2015,"runtime_minutes":90,"rating":"TV-MA","genres":["Horror"],"persona":"Night Owls","content_type":"Movie"}

# comment line
{"title":"Office Hours","genres":["Comedy"],"content_type":"series","title_url":"https://example.com/oh"}
{"title":"Mystery Box","content_type":"documentary-ish"}
`

func TestDecode(t *testing.T) {
	entries, err := Decode(context.Background(), strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	first := entries[0]
	assert.Equal(t, "Night Shift", first.Title)
	require.NotNil(t, first.ReleaseYear)
	assert.Equal(t, 2015, *first.ReleaseYear)
	assert.Equal(t, "TV-MA", *first.Rating)
	assert.Equal(t, domain.ContentTypeMovie, first.ContentType)
	assert.Equal(t, "Night Owls", *first.Persona)

	assert.Equal(t, domain.ContentTypeSeries, entries[1].ContentType)
	assert.Equal(t, "https://example.com/oh", *entries[1].TitleURL)
	assert.Nil(t, entries[1].RuntimeMinutes)

	assert.Equal(t, domain.ContentTypeUnknown, entries[2].ContentType)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(context.Background(), strings.NewReader(`{"title": "ok"}`+"\n"+`{"title": }`))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "line 2")

	_, err = Decode(context.Background(), strings.NewReader(`{"title": "   "}`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	entries, err := NewSource(path).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	_, err = NewSource(filepath.Join(t.TempDir(), "missing.jsonl")).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFromEntry(t *testing.T) {
	rec := FromEntry(domain.CatalogEntry{Title: "x", Genres: []string{"Drama"}})
	assert.Equal(t, "unknown", rec.ContentType)
	assert.Equal(t, "x", rec.Entry().Title)
}
