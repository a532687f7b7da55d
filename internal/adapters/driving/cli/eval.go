package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/scout/internal/core/domain"
)

const defaultEvalK = 10

var (
	evalQueriesPath string
	evalK           int
	evalJSON        bool
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Measure retrieval quality on labelled queries",
	Long: `Ranks each labelled query by relevance alone and reports MRR@k,
nDCG@k and hit-rate@k against its proxy label.

The queries file holds one JSON object per line:
  {"query": "family animated adventure", "expect": {"genres_any": ["Kids & Family"]}}

Blank lines and lines starting with # are ignored.`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVarP(&evalQueriesPath, "queries", "q", "", "labelled queries file (JSONL)")
	evalCmd.Flags().IntVar(&evalK, "k", defaultEvalK, "cutoff rank")
	evalCmd.Flags().BoolVar(&evalJSON, "json", false, "output the report as JSON")
	_ = evalCmd.MarkFlagRequired("queries")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	f, err := os.Open(evalQueriesPath)
	if err != nil {
		return fmt.Errorf("opening queries: %w", err)
	}
	defer f.Close()

	queries, err := readEvalQueries(ctx, f)
	if err != nil {
		return err
	}

	if err := ensureSearch(ctx); err != nil {
		return err
	}
	if evalService == nil {
		return errors.New("eval service not configured")
	}

	report, err := evalService.Evaluate(ctx, queries, evalK)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	if evalJSON {
		return writeJSON(cmd, report)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Engine: %s  |  k=%d  |  %d queries\n\n", report.Engine, report.K, len(report.Queries))
	for _, q := range report.Queries {
		fmt.Fprintf(w, "  mrr %.3f  ndcg %.3f  hit %.0f  %s\n", q.MRR, q.NDCG, q.HitRate, q.Query)
	}
	fmt.Fprintf(w, "\nMean  mrr %.3f  ndcg %.3f  hit-rate %.3f\n", report.MRR, report.NDCG, report.HitRate)
	return nil
}

// readEvalQueries parses one EvalQuery per line.
func readEvalQueries(ctx context.Context, r io.Reader) ([]domain.EvalQuery, error) {
	var queries []domain.EvalQuery
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		var q domain.EvalQuery
		if err := json.Unmarshal([]byte(text), &q); err != nil {
			return nil, fmt.Errorf("%w: queries line %d: %w", domain.ErrInvalidInput, line, err)
		}
		if strings.TrimSpace(q.Query) == "" {
			return nil, fmt.Errorf("%w: queries line %d: empty query", domain.ErrInvalidInput, line)
		}
		queries = append(queries, q)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading queries: %w", err)
	}
	if len(queries) == 0 {
		return nil, fmt.Errorf("%w: no queries found", domain.ErrInvalidInput)
	}
	return queries, nil
}
