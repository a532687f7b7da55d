package cli

import (
	"context"
	"fmt"

	"github.com/custodia-labs/scout/internal/adapters/driven/ai"
	"github.com/custodia-labs/scout/internal/adapters/driven/catalog/jsonl"
	"github.com/custodia-labs/scout/internal/adapters/driven/config/file"
	"github.com/custodia-labs/scout/internal/adapters/driven/embeddingcache"
	"github.com/custodia-labs/scout/internal/adapters/driven/metrics"
	"github.com/custodia-labs/scout/internal/adapters/driven/similarity/lexical"
	"github.com/custodia-labs/scout/internal/adapters/driven/similarity/semantic"
	"github.com/custodia-labs/scout/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driven"
	"github.com/custodia-labs/scout/internal/core/ports/driving"
	"github.com/custodia-labs/scout/internal/core/services"
)

// Services are built on first use so commands that only touch settings
// never load the catalog. Tests inject their own.
var (
	settingsService driving.SettingsService
	searchService   driving.SearchService
	catalogService  driving.CatalogService
	evalService     driving.EvalService
	searchMetrics   *metrics.Metrics
	activeCatalog   *domain.Catalog
)

func ensureSettings() (*domain.AppSettings, error) {
	if settingsService == nil {
		store, err := file.NewConfigStore(configDir)
		if err != nil {
			return nil, fmt.Errorf("opening config: %w", err)
		}
		settingsService = services.NewSettingsService(store)
	}
	return settingsService.Get()
}

func ensureCatalog(ctx context.Context) (*domain.Catalog, error) {
	if activeCatalog != nil {
		return activeCatalog, nil
	}
	settings, err := ensureSettings()
	if err != nil {
		return nil, err
	}
	c, err := loadCatalog(ctx, &settings.Catalog)
	if err != nil {
		return nil, err
	}
	activeCatalog = c
	return c, nil
}

func ensureCatalogService(ctx context.Context) error {
	if catalogService != nil {
		return nil
	}
	c, err := ensureCatalog(ctx)
	if err != nil {
		return err
	}
	catalogService = services.NewCatalogService(c)
	return nil
}

// ensureSearch selects the engine once and builds the search and eval
// services on top of it.
func ensureSearch(ctx context.Context) error {
	if searchService != nil {
		return nil
	}
	settings, err := ensureSettings()
	if err != nil {
		return err
	}
	c, err := ensureCatalog(ctx)
	if err != nil {
		return err
	}

	selection := services.SelectEngine(ctx,
		func() driven.SimilarityEngine { return lexical.New(c) },
		semanticProbe(settings, c),
	)

	searchMetrics = metrics.NewMetrics()
	searchMetrics.EngineSelected(selection.Engine.Meta().Type, selection.FellBack)

	searchService = services.NewSearchService(c, selection.Engine, searchMetrics)
	evalService = services.NewEvalService(c, selection.Engine)
	return nil
}

func loadCatalog(ctx context.Context, cs *domain.CatalogSettings) (*domain.Catalog, error) {
	var source driven.CatalogSource
	switch cs.Format {
	case domain.CatalogFormatSQLite:
		store, err := sqlite.NewStore(cs.Path)
		if err != nil {
			return nil, fmt.Errorf("opening catalog database: %w", err)
		}
		defer store.Close()
		source = store
	default:
		source = jsonl.NewSource(cs.Path)
	}

	entries, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog from %s: %w", cs.Path, err)
	}
	return services.FingerprintCatalog(domain.NewCatalog(entries)), nil
}

// semanticProbe returns nil when the provider is explicitly disabled so
// selection goes straight to the lexical engine without a warning.
func semanticProbe(settings *domain.AppSettings, c *domain.Catalog) services.EngineProbe {
	if settings.Embedding.Provider == domain.AIProviderNone {
		return nil
	}
	return func(ctx context.Context) (driven.SimilarityEngine, error) {
		embedder, err := ai.CreateEmbeddingService(&settings.Embedding)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrEmbeddingUnavailable, err)
		}
		if embedder == nil {
			return nil, fmt.Errorf("%w: provider %s is not configured",
				domain.ErrEmbeddingUnavailable, settings.Embedding.Provider)
		}

		engine, err := semantic.New(ctx, semantic.Config{
			Store:     embeddingcache.NewStore(settings.Cache.MatrixPath, settings.Cache.MetaPath),
			Catalog:   c,
			ModelName: settings.Embedding.Model,
			Embedder:  embedder,
		})
		if err != nil {
			_ = embedder.Close()
			return nil, err
		}
		return engine, nil
	}
}
