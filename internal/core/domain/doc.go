// Package domain defines the core business entities for Scout.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Catalog / CatalogEntry: the immutable, normalized title table
//   - EngineMetadata: which similarity engine is serving queries
//   - SearchRequest / ScoredResult: the ranking contract
//   - AppSettings: configuration values
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
package domain
