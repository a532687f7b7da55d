package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/scout/internal/core/domain"
)

var (
	searchTopK    int
	searchAlpha   float64
	searchRatings []string
	searchYearMin int
	searchYearMax int
	searchTypes   []string
	searchDebug   bool
	searchJSON    bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Rank catalog titles against a query",
	Long: `Ranks the catalog against a free-text query.

The final score blends engine relevance with a monetization proxy:
  final = alpha * relevance + (1 - alpha) * monetization + persona bonus

Use --alpha 1 to rank by relevance only and --alpha 0 to rank by
monetization only. Filters narrow the candidate set before ranking.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.IntVarP(&searchTopK, "top-k", "k", domain.DefaultTopK, "number of results (1-20)")
	f.Float64Var(&searchAlpha, "alpha", domain.DefaultAlpha, "relevance weight in [0,1]")
	f.StringSliceVar(&searchRatings, "rating", nil, "allowed rating codes (repeatable)")
	f.IntVar(&searchYearMin, "year-min", 0, "inclusive lower release year")
	f.IntVar(&searchYearMax, "year-max", 0, "inclusive upper release year")
	f.StringSliceVar(&searchTypes, "type", nil, "allowed content types: movie, series, unknown")
	f.BoolVar(&searchDebug, "debug", false, "show the scoring breakdown")
	f.BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := ensureSearch(ctx); err != nil {
		return err
	}
	if searchService == nil {
		return errors.New("search service not configured")
	}

	req, err := buildSearchRequest(cmd, args[0])
	if err != nil {
		return err
	}

	resp, err := searchService.Search(ctx, req)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return writeJSON(cmd, resp)
	}
	printSearchResults(cmd.OutOrStdout(), resp)
	return nil
}

// buildSearchRequest applies configured defaults to flags the user left
// unset.
func buildSearchRequest(cmd *cobra.Command, query string) (domain.SearchRequest, error) {
	flags := cmd.Flags()

	topK := searchTopK
	alpha := searchAlpha
	if settings, err := ensureSettings(); err == nil {
		if !flags.Changed("top-k") {
			topK = settings.Search.TopK
		}
		if !flags.Changed("alpha") {
			alpha = settings.Search.Alpha
		}
	}

	req := domain.SearchRequest{
		Query:        query,
		TopK:         topK,
		Alpha:        &alpha,
		IncludeDebug: searchDebug,
	}

	filters := &domain.SearchFilters{Ratings: searchRatings}
	if flags.Changed("year-min") {
		filters.YearMin = &searchYearMin
	}
	if flags.Changed("year-max") {
		filters.YearMax = &searchYearMax
	}
	for _, t := range searchTypes {
		ct := domain.ContentType(strings.ToLower(strings.TrimSpace(t)))
		if !ct.IsValid() {
			return req, fmt.Errorf("%w: unknown content type %q", domain.ErrInvalidInput, t)
		}
		filters.ContentTypes = append(filters.ContentTypes, ct)
	}
	if len(filters.Ratings) > 0 || filters.YearMin != nil || filters.YearMax != nil || len(filters.ContentTypes) > 0 {
		req.Filters = filters
	}
	return req, nil
}

func printSearchResults(w io.Writer, resp *domain.SearchResponse) {
	st := newStyles(w)

	engine := resp.Engine.Type.String()
	if resp.Engine.ModelName != nil {
		engine += " (" + *resp.Engine.ModelName + ")"
	}
	fmt.Fprintln(w, st.muted.Render(fmt.Sprintf("Engine: %s  |  alpha %.2f  |  %d results in %dms",
		engine, resp.Alpha, len(resp.Results), resp.LatencyMS)))
	fmt.Fprintln(w)

	if len(resp.Results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	for i := range resp.Results {
		r := &resp.Results[i]
		fmt.Fprintf(w, "  [%d] %s%s\n", i+1, st.title.Render(r.Title), describe(r))
		fmt.Fprintf(w, "      %s\n", st.score.Render(fmt.Sprintf("final %.3f  relevance %.3f  monetization %.3f",
			r.FinalScore, r.RelevanceScore, r.MonetizationScore)))
		fmt.Fprintf(w, "      Brand safety: %s\n",
			st.risk(r.BrandSafety.Risk).Render(fmt.Sprintf("%s (%s risk)", r.BrandSafety.Tier, r.BrandSafety.Risk)))
		verticals := append([]string{r.AdOpportunity.PrimaryVertical}, r.AdOpportunity.SecondaryVerticals...)
		fmt.Fprintf(w, "      Verticals: %s\n", strings.Join(verticals, ", "))
		if r.Debug != nil {
			anchor := "-"
			if r.Debug.AnchorPersona != nil {
				anchor = *r.Debug.AnchorPersona
			}
			b := r.Debug.MonetizationBreakdown
			fmt.Fprintln(w, st.muted.Render(fmt.Sprintf(
				"      debug: raw %.4f  rating %.2f  length %.2f  genre %.2f  anchor %s  bonus %.2f",
				r.Debug.RawSimilarity, b.RatingScore, b.LengthScore, b.GenreScore, anchor, r.Debug.PersonaBonus)))
		}
		fmt.Fprintln(w)
	}
}

// describe renders year, rating and content type as a suffix.
func describe(r *domain.ScoredResult) string {
	var parts []string
	if r.ReleaseYear != nil {
		parts = append(parts, fmt.Sprintf("%d", *r.ReleaseYear))
	}
	if r.Rating != nil && *r.Rating != "" {
		parts = append(parts, *r.Rating)
	}
	parts = append(parts, r.ContentType.String())
	return " (" + strings.Join(parts, ", ") + ")"
}
