package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/scout/internal/adapters/driven/similarity/lexical"
	"github.com/custodia-labs/scout/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/services"
)

func ptr[T any](v T) *T { return &v }

func testCatalog() *domain.Catalog {
	return services.FingerprintCatalog(domain.NewCatalog([]domain.CatalogEntry{
		{
			Title: "Sunny Meadow", ReleaseYear: ptr(2019), RuntimeMinutes: ptr(100),
			Rating: ptr("TV-Y"), Genres: []string{"Kids & Family"}, Persona: ptr("P1"),
			ContentType: domain.ContentTypeMovie,
		},
		{
			Title: "Night Shift", ReleaseYear: ptr(2015), RuntimeMinutes: ptr(90),
			Rating: ptr("TV-MA"), Genres: []string{"Horror"}, Persona: ptr("P2"),
			ContentType: domain.ContentTypeMovie,
		},
		{
			Title: "Office Hours", ReleaseYear: ptr(2021),
			Rating: ptr("PG-13"), Genres: []string{"Comedy"}, Persona: ptr("P1"),
			ContentType: domain.ContentTypeSeries,
		},
	}))
}

// setupTestServices wires real services over an in-memory catalog and
// config store, and restores the previous wiring on cleanup.
func setupTestServices(t *testing.T) *domain.Catalog {
	t.Helper()

	oldSettings, oldSearch, oldCatalog, oldEval := settingsService, searchService, catalogService, evalService
	oldActive, oldMetrics := activeCatalog, searchMetrics

	c := testCatalog()
	engine := lexical.New(c)
	settingsService = services.NewSettingsService(memory.NewConfigStore())
	activeCatalog = c
	searchService = services.NewSearchService(c, engine, nil)
	catalogService = services.NewCatalogService(c)
	evalService = services.NewEvalService(c, engine)
	searchMetrics = nil

	t.Cleanup(func() {
		settingsService, searchService, catalogService, evalService = oldSettings, oldSearch, oldCatalog, oldEval
		activeCatalog, searchMetrics = oldActive, oldMetrics
	})
	return c
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag in the tree to its default so flag
// state does not leak between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			def := strings.Trim(f.DefValue, "[]")
			if def == "" {
				_ = sv.Replace([]string{})
			} else {
				_ = sv.Replace(strings.Split(def, ","))
			}
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
