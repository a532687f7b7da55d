package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/scout/internal/adapters/driven/ai"
	"github.com/custodia-labs/scout/internal/adapters/driven/embeddingcache"
	"github.com/custodia-labs/scout/internal/core/services"
)

var embedBatchSize int

var embedCmd = &cobra.Command{
	Use:   "embed",
	Short: "Embedding cache commands",
}

var embedBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Embed the catalog and write the embedding cache",
	Long: `Embeds every catalog row with the configured embedding provider and
writes the matrix and its descriptor to the configured cache paths.

The descriptor records the model name and the catalog fingerprint, so the
semantic engine is used only while both still match.`,
	RunE: runEmbedBuild,
}

func init() {
	embedBuildCmd.Flags().IntVar(&embedBatchSize, "batch-size", services.DefaultEmbedBatchSize, "rows per embedding request")
	embedCmd.AddCommand(embedBuildCmd)
	rootCmd.AddCommand(embedCmd)
}

func runEmbedBuild(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	settings, err := ensureSettings()
	if err != nil {
		return err
	}
	c, err := ensureCatalog(ctx)
	if err != nil {
		return err
	}

	embedder, err := ai.CreateAndValidateEmbeddingService(ctx, &settings.Embedding)
	if err != nil {
		return err
	}
	if embedder == nil {
		return errors.New("no embedding provider configured. Run 'scout settings set embedding.provider <ollama|openai>'")
	}
	defer embedder.Close()

	w := cmd.OutOrStdout()
	store := embeddingcache.NewStore(settings.Cache.MatrixPath, settings.Cache.MetaPath)
	builder := services.NewCacheBuilder(embedder, store,
		services.WithBatchSize(embedBatchSize),
		services.WithProgress(func(done, total int) {
			fmt.Fprintf(w, "\rEmbedded %d/%d rows", done, total)
		}),
	)

	meta, err := builder.Build(ctx, c)
	fmt.Fprintln(w)
	if err != nil {
		return fmt.Errorf("building embedding cache: %w", err)
	}

	fmt.Fprintf(w, "Wrote %s (%d x %d, model %s) in %.1fs\n",
		store.MatrixPath(), meta.Rows, meta.Dimension, meta.ModelName, meta.BuildSeconds)
	fmt.Fprintf(w, "Data hash: %s\n", meta.Fingerprint)
	return nil
}
