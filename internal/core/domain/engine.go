package domain

// EngineType identifies a similarity backend. The set is closed.
type EngineType string

// Available engine types.
const (
	// EngineLexical is the TF-IDF engine fitted over combined text.
	EngineLexical EngineType = "lexical"

	// EngineSemantic is the dense-embedding engine backed by a validated cache.
	EngineSemantic EngineType = "semantic"
)

// IsValid returns true if the engine type is recognised.
func (t EngineType) IsValid() bool {
	return t == EngineLexical || t == EngineSemantic
}

// String returns the string representation.
func (t EngineType) String() string {
	return string(t)
}

// Description returns a human-readable description of the engine.
func (t EngineType) Description() string {
	switch t {
	case EngineLexical:
		return "Lexical (TF-IDF keyword similarity)"
	case EngineSemantic:
		return "Semantic (embedding cosine similarity)"
	default:
		return unknownDescription
	}
}

// EngineMetadata describes the active similarity engine.
type EngineMetadata struct {
	// Type is the engine variant.
	Type EngineType `json:"type"`

	// ModelName is the model or vectorizer behind the engine.
	ModelName *string `json:"model"`

	// Fingerprint is the catalog data-version fingerprint the engine was built for.
	Fingerprint string `json:"data_hash"`
}

// Candidate is a catalog row with its raw relevance score.
type Candidate struct {
	Index      int
	Similarity float64
}
