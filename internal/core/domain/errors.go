package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCatalogEmpty indicates the catalog source produced no rows.
	ErrCatalogEmpty = errors.New("catalog is empty")

	// ErrUnsupportedType indicates an unknown catalog format or provider.
	ErrUnsupportedType = errors.New("unsupported type")

	// Engine Errors.

	// ErrEngineUnavailable indicates a similarity engine could not be
	// constructed. Engine selection treats it as a signal to fall back.
	ErrEngineUnavailable = errors.New("similarity engine unavailable")

	// ErrEmbeddingUnavailable indicates the embedding backend is not
	// configured or not reachable.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// Embedding Cache Errors.

	// ErrCacheMissing indicates the embedding matrix or its descriptor is absent.
	ErrCacheMissing = errors.New("embedding cache not found")

	// ErrCacheStale indicates the cache was built for different catalog data.
	ErrCacheStale = errors.New("embedding cache is stale (fingerprint mismatch)")

	// ErrCacheModelMismatch indicates the cache was built with another model.
	ErrCacheModelMismatch = errors.New("embedding cache model mismatch")

	// ErrCacheShapeMismatch indicates row count or dimension disagree with
	// the catalog or the descriptor.
	ErrCacheShapeMismatch = errors.New("embedding cache shape mismatch")
)
