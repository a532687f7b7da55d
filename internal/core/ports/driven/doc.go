// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CatalogSource: Loads the normalized catalog (JSONL or SQLite)
//   - SimilarityEngine: Query to per-row similarity vector. The lexical
//     engine is always constructible.
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - EmbeddingService: Query embeddings. Without it, the semantic engine
//     is unavailable and the lexical engine serves queries.
//   - EmbeddingCacheStore: Precomputed catalog embeddings.
//   - CatalogSink: Persists an imported catalog.
//   - SearchMetrics: Pipeline observations.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
