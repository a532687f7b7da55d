package driven

import "context"

// EmbeddingCacheMeta is the sidecar descriptor stored next to the matrix.
type EmbeddingCacheMeta struct {
	// ModelName is the model the matrix was built with.
	ModelName string `json:"model_name"`

	// Fingerprint is the catalog data-version fingerprint at build time.
	Fingerprint string `json:"data_hash"`

	// Rows is the number of catalog rows embedded.
	Rows int `json:"rows"`

	// Dimension is the embedding vector size.
	Dimension int `json:"dim"`

	// CreatedAtMS is the build timestamp in Unix milliseconds.
	CreatedAtMS int64 `json:"created_at_ms,omitempty"`

	// BuildSeconds is the wall time spent embedding the catalog.
	BuildSeconds float64 `json:"build_seconds,omitempty"`
}

// EmbeddingCache is a dense row-major matrix plus its descriptor.
type EmbeddingCache struct {
	Meta EmbeddingCacheMeta

	// Rows and Dim are the matrix shape as read from the matrix file.
	Rows int
	Dim  int

	// Data holds Rows*Dim values in row-major order.
	Data []float32
}

// Row returns row i of the matrix.
func (c *EmbeddingCache) Row(i int) []float32 {
	return c.Data[i*c.Dim : (i+1)*c.Dim]
}

// EmbeddingCacheStore reads and writes the precomputed embedding cache.
type EmbeddingCacheStore interface {
	// Load reads the matrix and descriptor. Returns an error wrapping
	// domain.ErrCacheMissing if either artifact is absent.
	Load(ctx context.Context) (*EmbeddingCache, error)

	// Save writes the matrix and descriptor.
	Save(ctx context.Context, cache *EmbeddingCache) error
}
