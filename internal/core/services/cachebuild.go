package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driven"
	"github.com/custodia-labs/scout/internal/logger"
)

// DefaultEmbedBatchSize is the number of rows sent per EmbedBatch call.
const DefaultEmbedBatchSize = 64

// CacheBuilder embeds the catalog and writes the embedding cache that the
// semantic engine loads at startup.
type CacheBuilder struct {
	embedder  driven.EmbeddingService
	store     driven.EmbeddingCacheStore
	batchSize int
	progress  func(done, total int)
	now       func() time.Time
}

// CacheBuilderOption configures a CacheBuilder.
type CacheBuilderOption func(*CacheBuilder)

// WithBatchSize overrides DefaultEmbedBatchSize. Values below 1 are ignored.
func WithBatchSize(n int) CacheBuilderOption {
	return func(b *CacheBuilder) {
		if n > 0 {
			b.batchSize = n
		}
	}
}

// WithProgress registers a callback invoked after each batch.
func WithProgress(fn func(done, total int)) CacheBuilderOption {
	return func(b *CacheBuilder) {
		b.progress = fn
	}
}

// NewCacheBuilder creates a cache builder.
func NewCacheBuilder(
	embedder driven.EmbeddingService,
	store driven.EmbeddingCacheStore,
	opts ...CacheBuilderOption,
) *CacheBuilder {
	b := &CacheBuilder{
		embedder:  embedder,
		store:     store,
		batchSize: DefaultEmbedBatchSize,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build embeds every row's combined text in catalog order, L2-normalizes
// the vectors and saves them with a descriptor carrying the model name and
// the catalog's retrieval fingerprint.
func (b *CacheBuilder) Build(ctx context.Context, c *domain.Catalog) (*driven.EmbeddingCacheMeta, error) {
	logger.Section("Embedding Cache Build")

	if b.embedder == nil {
		return nil, fmt.Errorf("%w: no embedding service configured", domain.ErrEmbeddingUnavailable)
	}
	if c.Len() == 0 {
		return nil, domain.ErrCatalogEmpty
	}

	start := b.now()
	total := c.Len()
	var (
		data []float32
		dim  int
	)

	for lo := 0; lo < total; lo += b.batchSize {
		hi := min(lo+b.batchSize, total)
		texts := make([]string, 0, hi-lo)
		for i := lo; i < hi; i++ {
			texts = append(texts, c.Entry(i).CombinedText)
		}

		vecs, err := b.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return nil, fmt.Errorf("embedding rows %d-%d: %w", lo, hi-1, err)
		}
		if len(vecs) != len(texts) {
			return nil, fmt.Errorf("embedding rows %d-%d: got %d vectors for %d texts", lo, hi-1, len(vecs), len(texts))
		}

		for j, v := range vecs {
			if dim == 0 {
				dim = len(v)
				if dim == 0 {
					return nil, fmt.Errorf("embedding row %d: empty vector", lo+j)
				}
				data = make([]float32, 0, total*dim)
			}
			if len(v) != dim {
				return nil, fmt.Errorf("%w: row %d has dimension %d, expected %d",
					domain.ErrCacheShapeMismatch, lo+j, len(v), dim)
			}
			data = append(data, normalize(v)...)
		}

		logger.Debug("embedded %d/%d rows", hi, total)
		if b.progress != nil {
			b.progress(hi, total)
		}
	}

	finished := b.now()
	cache := &driven.EmbeddingCache{
		Meta: driven.EmbeddingCacheMeta{
			ModelName:    b.embedder.ModelName(),
			Fingerprint:  Fingerprint(c, RetrievalColumns...),
			Rows:         total,
			Dimension:    dim,
			CreatedAtMS:  finished.UnixMilli(),
			BuildSeconds: math.Round(finished.Sub(start).Seconds()*1000) / 1000,
		},
		Rows: total,
		Dim:  dim,
		Data: data,
	}

	if err := b.store.Save(ctx, cache); err != nil {
		return nil, fmt.Errorf("saving embedding cache: %w", err)
	}

	meta := cache.Meta
	return &meta, nil
}

// normalize returns v scaled to unit length. Zero vectors stay zero.
func normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	norm := math.Sqrt(sum) + 1e-12
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}
