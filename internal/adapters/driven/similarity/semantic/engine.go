// Package semantic provides the dense-embedding similarity engine.
//
// The engine serves a precomputed catalog embedding cache. Construction
// validates the cache against the live catalog and the configured model;
// any disagreement rejects the engine before it serves a query.
package semantic

import (
	"context"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driven"
	"github.com/custodia-labs/scout/internal/logger"
)

// Ensure Engine implements the interface.
var _ driven.SimilarityEngine = (*Engine)(nil)

const (
	// normEpsilon guards row and query normalization against zero vectors.
	normEpsilon = 1e-12

	pingTimeout = 5 * time.Second
)

// Config holds everything the engine validates at construction.
type Config struct {
	// Store provides the embedding cache.
	Store driven.EmbeddingCacheStore

	// Catalog is the live catalog; its fingerprint and length must match
	// the cache.
	Catalog *domain.Catalog

	// ModelName is the configured embedding model; it must match the
	// model recorded in the cache.
	ModelName string

	// Embedder embeds queries at search time.
	Embedder driven.EmbeddingService
}

// Engine scores queries by cosine similarity against cached embeddings.
type Engine struct {
	matrix      *mat.Dense
	rows, dim   int
	model       string
	fingerprint string
	embedder    driven.EmbeddingService
}

// New validates the cache and builds the engine. Every failure wraps
// domain.ErrEngineUnavailable together with the specific cause.
func New(ctx context.Context, cfg Config) (*Engine, error) {
	e, err := build(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEngineUnavailable, err)
	}
	return e, nil
}

func build(ctx context.Context, cfg Config) (*Engine, error) {
	if cfg.Embedder == nil {
		return nil, fmt.Errorf("%w: no embedding backend configured", domain.ErrEmbeddingUnavailable)
	}
	if cfg.Store == nil || cfg.Catalog == nil {
		return nil, fmt.Errorf("%w: no cache store configured", domain.ErrCacheMissing)
	}

	cache, err := cfg.Store.Load(ctx)
	if err != nil {
		return nil, err
	}
	meta := cache.Meta

	if meta.Fingerprint != cfg.Catalog.Fingerprint() {
		return nil, fmt.Errorf("%w: cache %s, catalog %s",
			domain.ErrCacheStale, short(meta.Fingerprint), short(cfg.Catalog.Fingerprint()))
	}
	if meta.ModelName != cfg.ModelName {
		return nil, fmt.Errorf("%w: cache built with %q, configured %q",
			domain.ErrCacheModelMismatch, meta.ModelName, cfg.ModelName)
	}
	rows := cfg.Catalog.Len()
	if rows == 0 {
		return nil, domain.ErrCatalogEmpty
	}
	if meta.Rows != rows || cache.Rows != rows {
		return nil, fmt.Errorf("%w: descriptor %d rows, matrix %d rows, catalog %d rows",
			domain.ErrCacheShapeMismatch, meta.Rows, cache.Rows, rows)
	}
	if meta.Dimension != cache.Dim || cache.Dim <= 0 {
		return nil, fmt.Errorf("%w: descriptor dimension %d, matrix dimension %d",
			domain.ErrCacheShapeMismatch, meta.Dimension, cache.Dim)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := cfg.Embedder.Ping(pingCtx); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEmbeddingUnavailable, err)
	}

	data := make([]float64, len(cache.Data))
	for i, v := range cache.Data {
		data[i] = float64(v)
	}
	m := mat.NewDense(rows, cache.Dim, data)
	for i := range rows {
		normalize(m.RawRowView(i))
	}
	logger.Debug("semantic engine: %d x %d matrix, model %s", rows, cache.Dim, meta.ModelName)

	return &Engine{
		matrix:      m,
		rows:        rows,
		dim:         cache.Dim,
		model:       meta.ModelName,
		fingerprint: meta.Fingerprint,
		embedder:    cfg.Embedder,
	}, nil
}

// normalize scales v in place to unit length.
func normalize(v []float64) {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	norm := math.Sqrt(sum) + normEpsilon
	for i := range v {
		v[i] /= norm
	}
}

func short(fp string) string {
	if len(fp) > 12 {
		return fp[:12]
	}
	return fp
}

// Meta describes the engine.
func (e *Engine) Meta() domain.EngineMetadata {
	model := e.model
	return domain.EngineMetadata{
		Type:        domain.EngineSemantic,
		ModelName:   &model,
		Fingerprint: e.fingerprint,
	}
}

// QuerySimilarities embeds query and returns its cosine similarity to
// every cached row.
func (e *Engine) QuerySimilarities(ctx context.Context, query string) ([]float64, error) {
	emb, err := e.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(emb) != e.dim {
		return nil, fmt.Errorf("%w: query embedding has %d dimensions, cache has %d",
			domain.ErrCacheShapeMismatch, len(emb), e.dim)
	}
	q := make([]float64, len(emb))
	for i, v := range emb {
		q[i] = float64(v)
	}
	normalize(q)

	var out mat.VecDense
	out.MulVec(e.matrix, mat.NewVecDense(e.dim, q))
	return out.RawVector().Data, nil
}

// Dimensions returns the embedding vector size.
func (e *Engine) Dimensions() int {
	return e.dim
}
