package domain

import "time"

// Request bounds and defaults.
const (
	DefaultTopK       = 5
	MaxTopK           = 20
	DefaultAlpha      = 0.8
	MaxQueryLength    = 200
	WidenFactor       = 5
	PersonaBonus      = 0.03
	MaxFinalOvershoot = 1.0 + PersonaBonus
	AdRationale       = "Rules-based advertiser fit derived from genre + rating (proxy)."
)

// SearchFilters restricts the candidate set. A nil or empty dimension
// passes every row.
type SearchFilters struct {
	// Ratings is the set of allowed rating codes.
	Ratings []string `json:"ratings,omitempty"`

	// YearMin is the inclusive lower release-year bound.
	YearMin *int `json:"year_min,omitempty"`

	// YearMax is the inclusive upper release-year bound.
	YearMax *int `json:"year_max,omitempty"`

	// ContentTypes is the set of allowed content types.
	ContentTypes []ContentType `json:"content_types,omitempty"`
}

// SearchRequest is a single ranking query.
type SearchRequest struct {
	// Query is the free-text query.
	Query string

	// TopK is the number of results to return (1..MaxTopK). Zero
	// selects DefaultTopK.
	TopK int

	// Alpha weights relevance against monetization (1 = relevance only).
	// Nil selects DefaultAlpha.
	Alpha *float64

	// Filters restricts the candidate set.
	Filters *SearchFilters

	// IncludeDebug attaches the scoring breakdown to each result.
	IncludeDebug bool
}

// RiskLevel is a brand-safety risk rating.
type RiskLevel string

// Available risk levels.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// MonetizationBreakdown holds the component scores of the monetization
// proxy. Each component is in [0,1].
type MonetizationBreakdown struct {
	RatingScore float64 `json:"rating_score"`
	LengthScore float64 `json:"length_score"`
	GenreScore  float64 `json:"genre_score"`
}

// BrandSafetyAssessment is the rule-derived brand-safety label of a title.
type BrandSafetyAssessment struct {
	Tier  string    `json:"tier"`
	Risk  RiskLevel `json:"risk"`
	Notes []string  `json:"notes"`
}

// AdOpportunity lists the advertiser verticals suggested for a title.
type AdOpportunity struct {
	PrimaryVertical    string   `json:"primary_vertical"`
	SecondaryVerticals []string `json:"secondary_verticals"`
	Rationale          string   `json:"rationale"`
}

// ScoreDebug explains how a result's final score was assembled.
type ScoreDebug struct {
	RawSimilarity         float64               `json:"raw_similarity"`
	MonetizationBreakdown MonetizationBreakdown `json:"monetization_breakdown"`
	AnchorPersona         *string               `json:"anchor_persona"`
	PersonaBonus          float64               `json:"persona_bonus"`
}

// ScoredResult is a ranked, enriched catalog entry. The JSON shape is the
// contract serialized by transport adapters.
type ScoredResult struct {
	Title          string      `json:"title"`
	TitleURL       *string     `json:"title_url"`
	ReleaseYear    *int        `json:"release_year"`
	RuntimeMinutes *int        `json:"runtime_minutes"`
	Rating         *string     `json:"rating"`
	Genres         []string    `json:"genres"`
	Persona        *string     `json:"persona"`
	ContentType    ContentType `json:"content_type"`

	// RelevanceScore is the raw engine similarity. Never clamped.
	RelevanceScore float64 `json:"relevance_score"`

	// MonetizationScore is the advertiser-value proxy in [0,1].
	MonetizationScore float64 `json:"monetization_score"`

	// FinalScore is the blended score. It is not re-clamped after the
	// persona bonus, so it may reach MaxFinalOvershoot.
	FinalScore float64 `json:"final_score"`

	BrandSafety   BrandSafetyAssessment `json:"brand_safety"`
	AdOpportunity AdOpportunity         `json:"ad_opportunity"`
	Debug         *ScoreDebug           `json:"debug,omitempty"`
}

// SearchResponse is the envelope returned for a search.
type SearchResponse struct {
	RequestID string         `json:"request_id"`
	Query     string         `json:"query"`
	TopK      int            `json:"top_k"`
	Alpha     float64        `json:"alpha"`
	Filters   *SearchFilters `json:"filters,omitempty"`
	Engine    EngineMetadata `json:"engine"`
	Results   []ScoredResult `json:"results"`
	Latency   time.Duration  `json:"-"`
	LatencyMS int64          `json:"latency_ms"`
}
