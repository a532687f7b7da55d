package cli

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

func TestReadEvalQueries(t *testing.T) {
	input := `# labelled queries
{"query": "scary night", "expect": {"genres_any": ["Horror"]}}

{"query": "recent comedy", "expect": {"year_min": 2020, "ratings_any": ["PG-13"]}}
`
	queries, err := readEvalQueries(context.Background(), strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, queries, 2)
	assert.Equal(t, "scary night", queries[0].Query)
	assert.Equal(t, []string{"Horror"}, queries[0].Expect.GenresAny)
	assert.Equal(t, 2020, *queries[1].Expect.YearMin)
}

func TestReadEvalQueries_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad json", "{not json}\n"},
		{"empty query", `{"query": "  "}` + "\n"},
		{"no queries", "# only a comment\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readEvalQueries(context.Background(), strings.NewReader(tt.input))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestEvalCmd(t *testing.T) {
	setupTestServices(t)

	path := filepath.Join(t.TempDir(), "queries.jsonl")
	content := `{"query": "night shift", "expect": {"genres_any": ["Horror"]}}` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	out, err := execute(t, "eval", "--queries", path, "--k", "3")

	require.NoError(t, err)
	assert.Contains(t, out, "Engine: lexical")
	assert.Contains(t, out, "mrr 1.000")
	assert.Contains(t, out, "Mean  mrr 1.000")
}

func TestEvalCmd_RequiresQueries(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "eval")

	assert.Error(t, err)
}
