package driven

import (
	"time"

	"github.com/custodia-labs/scout/internal/core/domain"
)

// SearchMetrics records ranking-pipeline observations.
// This is an optional port - services accept nil and skip recording.
type SearchMetrics interface {
	// EngineSelected records which engine won selection and whether it
	// was reached by falling back.
	EngineSelected(engine domain.EngineType, fellBack bool)

	// SearchCompleted records a finished search.
	SearchCompleted(engine domain.EngineType, latency time.Duration, results int)

	// SearchFailed records a search that returned an error.
	SearchFailed(engine domain.EngineType)
}
