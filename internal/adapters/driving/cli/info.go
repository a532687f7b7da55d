package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/services"
)

var (
	infoJSON           bool
	fingerprintColumns []string
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the active engine and catalog statistics",
	RunE:  runInfo,
}

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint",
	Short: "Print the catalog data-version fingerprint",
	Long: `Prints the SHA-256 fingerprint of the catalog over the given columns.

The default column set is the one recorded in the embedding cache; a cache
whose fingerprint differs from this value is stale and will be ignored.`,
	RunE: runFingerprint,
}

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "output as JSON")

	defaults := make([]string, len(services.RetrievalColumns))
	for i, c := range services.RetrievalColumns {
		defaults[i] = string(c)
	}
	fingerprintCmd.Flags().StringSliceVar(&fingerprintColumns, "columns", defaults, "columns to hash, in order")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(fingerprintCmd)
}

// infoOutput is the JSON shape of scout info.
type infoOutput struct {
	Engine  domain.EngineMetadata `json:"engine"`
	Catalog domain.CatalogStats   `json:"catalog"`
}

func runInfo(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := ensureSearch(ctx); err != nil {
		return err
	}
	if err := ensureCatalogService(ctx); err != nil {
		return err
	}
	if searchService == nil || catalogService == nil {
		return errors.New("services not configured")
	}

	meta := searchService.Meta()
	stats := catalogService.Stats()
	if infoJSON {
		return writeJSON(cmd, infoOutput{Engine: meta, Catalog: stats})
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "[Engine]")
	fmt.Fprintf(w, "  Type: %s\n", meta.Type.Description())
	if meta.ModelName != nil {
		fmt.Fprintf(w, "  Model: %s\n", *meta.ModelName)
	}
	fmt.Fprintf(w, "  Data hash: %s\n", meta.Fingerprint)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[Catalog]")
	fmt.Fprintf(w, "  Rows: %d\n", stats.Rows)
	if stats.YearMin != nil && stats.YearMax != nil {
		fmt.Fprintf(w, "  Years: %d-%d\n", *stats.YearMin, *stats.YearMax)
	}
	fmt.Fprintf(w, "  Ratings: %s\n", formatCounts(stats.Ratings))
	fmt.Fprintf(w, "  Content types: %s\n", formatCounts(stats.ContentTypes))
	return nil
}

func runFingerprint(cmd *cobra.Command, _ []string) error {
	c, err := ensureCatalog(cmd.Context())
	if err != nil {
		return err
	}

	columns := make([]services.Column, 0, len(fingerprintColumns))
	for _, name := range fingerprintColumns {
		columns = append(columns, services.Column(strings.TrimSpace(name)))
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), services.Fingerprint(c, columns...))
	return err
}

// formatCounts renders counts as "key=n" pairs, largest first.
func formatCounts(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, counts[k])
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
