package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/scout/internal/adapters/driven/catalog/jsonl"
	"github.com/custodia-labs/scout/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/services"
)

var catalogImportDB string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Catalog storage commands",
}

var catalogImportCmd = &cobra.Command{
	Use:   "import [catalog.jsonl]",
	Short: "Import a JSONL catalog into SQLite",
	Long: `Reads a normalized JSONL catalog and replaces the catalog table of the
SQLite database in --db (default ~/.scout/data). Row order is preserved,
so the fingerprint of the imported catalog matches the source file.

Point the runtime at the database with:
  scout settings set catalog.format sqlite
  scout settings set catalog.path <db dir>`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogImport,
}

func init() {
	catalogImportCmd.Flags().StringVar(&catalogImportDB, "db", "", "SQLite data directory (default ~/.scout/data)")
	catalogCmd.AddCommand(catalogImportCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	entries, err := jsonl.NewSource(args[0]).Load(ctx)
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	c := services.FingerprintCatalog(domain.NewCatalog(entries))

	store, err := sqlite.NewStore(catalogImportDB)
	if err != nil {
		return err
	}
	defer store.Close()

	normalized := make([]domain.CatalogEntry, c.Len())
	for i := range normalized {
		normalized[i] = c.At(i)
	}
	if err := store.Replace(ctx, normalized); err != nil {
		return fmt.Errorf("importing catalog: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d rows into %s\n", c.Len(), store.Path())
	fmt.Fprintf(cmd.OutOrStdout(), "Data hash: %s\n", c.Fingerprint())
	return nil
}
