package domain

const unknownDescription = "Unknown"

// CatalogFormat identifies the storage format of the normalized catalog.
type CatalogFormat string

// Available catalog formats.
const (
	// CatalogFormatJSONL is one JSON object per line.
	CatalogFormatJSONL CatalogFormat = "jsonl"

	// CatalogFormatSQLite is a catalog table in a SQLite database.
	CatalogFormatSQLite CatalogFormat = "sqlite"
)

// IsValid returns true if the catalog format is recognised.
func (f CatalogFormat) IsValid() bool {
	return f == CatalogFormatJSONL || f == CatalogFormatSQLite
}

// String returns the string representation.
func (f CatalogFormat) String() string {
	return string(f)
}

// AIProvider identifies an embedding service provider.
type AIProvider string

// Available AI providers.
const (
	// AIProviderNone disables the semantic engine.
	AIProviderNone AIProvider = "none"

	// AIProviderOllama is local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOllama, AIProviderOpenAI:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderOpenAI
}

// IsLocal returns true if this provider runs locally.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderNone:
		return "None (lexical engine only)"
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	default:
		return unknownDescription
	}
}

// CatalogSettings locates the normalized catalog.
type CatalogSettings struct {
	// Path is the JSONL file or the SQLite data directory.
	Path string

	// Format selects the catalog source adapter.
	Format CatalogFormat
}

// EmbeddingSettings holds embedding provider configuration.
type EmbeddingSettings struct {
	// Provider is the embedding service provider.
	Provider AIProvider

	// Model is the embedding model name. It must match the model the
	// cache was built with.
	Model string

	// BaseURL is the API endpoint (for Ollama or compatible gateways).
	BaseURL string

	// APIKey is the API key (for OpenAI).
	APIKey string

	// RequestsPerSecond caps the sustained call rate to the backend.
	RequestsPerSecond float64

	// Burst is the token-bucket burst size.
	Burst int
}

// IsConfigured returns true if the embedding provider is set up.
func (e EmbeddingSettings) IsConfigured() bool {
	if !e.Provider.IsValid() {
		return false
	}
	if e.Provider.RequiresAPIKey() && e.APIKey == "" {
		return false
	}
	return true
}

// CacheSettings locates the precomputed embedding cache.
type CacheSettings struct {
	// MatrixPath is the .npy embedding matrix.
	MatrixPath string

	// MetaPath is the JSON sidecar descriptor.
	MetaPath string
}

// SearchSettings holds default request parameters.
type SearchSettings struct {
	// TopK is the default result count.
	TopK int

	// Alpha is the default relevance weight.
	Alpha float64
}

// AppSettings holds all application settings.
type AppSettings struct {
	Catalog   CatalogSettings
	Embedding EmbeddingSettings
	Cache     CacheSettings
	Search    SearchSettings
}

// DefaultEmbeddingModel matches the sentence-transformer family the cache
// builder uses by default.
const DefaultEmbeddingModel = "all-minilm"

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Catalog: CatalogSettings{
			Path:   "data/catalog.jsonl",
			Format: CatalogFormatJSONL,
		},
		Embedding: EmbeddingSettings{
			Provider:          AIProviderOllama,
			Model:             DefaultEmbeddingModel,
			RequestsPerSecond: 20,
			Burst:             10,
		},
		Cache: CacheSettings{
			MatrixPath: "data/embeddings.npy",
			MetaPath:   "data/embeddings_meta.json",
		},
		Search: SearchSettings{
			TopK:  DefaultTopK,
			Alpha: DefaultAlpha,
		},
	}
}

// AllEmbeddingProviders returns providers that support embeddings.
func AllEmbeddingProviders() []AIProvider {
	return []AIProvider{
		AIProviderOllama,
		AIProviderOpenAI,
	}
}

// EmbeddingDimensions returns the vector dimensions for known models.
func EmbeddingDimensions() map[string]int {
	return map[string]int{
		// Ollama models
		"all-minilm":        384,
		"nomic-embed-text":  768,
		"mxbai-embed-large": 1024,
		// OpenAI models
		"text-embedding-3-small": 1536,
		"text-embedding-3-large": 3072,
	}
}
