package driven

import "context"

// EmbeddingService generates vector embeddings from text.
// This is an optional service - when nil, the semantic engine is unavailable
// and engine selection falls back to the lexical engine.
//
// Implementations may include:
//   - Ollama (all-minilm, nomic-embed-text)
//   - OpenAI (text-embedding-3-small, text-embedding-3-large)
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding vector size (e.g., 384, 1536).
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	// The semantic engine rejects caches built with a different model.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight test request.
	// This is used at startup before committing to the semantic engine.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
