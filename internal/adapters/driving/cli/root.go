// Package cli provides the cobra command tree for the scout binary.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/scout/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	configDir string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "scout",
	Short: "Rank catalog titles by relevance and advertiser value",
	Long: `Scout ranks a catalog of movies and series against a free-text query.

Relevance comes from a semantic engine (precomputed embeddings) when its
cache matches the catalog, and from a lexical TF-IDF engine otherwise.
Relevance is blended with a rules-based monetization score and every
result carries a brand-safety label and suggested ad verticals.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.scout)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline details to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
