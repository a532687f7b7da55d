package domain

// Expectation is a proxy relevance label for an evaluation query.
// A row is relevant when it satisfies every set field.
type Expectation struct {
	GenresAny  []string `json:"genres_any,omitempty"`
	YearMin    *int     `json:"year_min,omitempty"`
	YearMax    *int     `json:"year_max,omitempty"`
	RatingsAny []string `json:"ratings_any,omitempty"`
	RuntimeMax *int     `json:"runtime_max,omitempty"`
}

// Matches reports whether entry satisfies the expectation.
func (x Expectation) Matches(e *CatalogEntry) bool {
	if len(x.GenresAny) > 0 && !containsAny(e.Genres, x.GenresAny) {
		return false
	}
	if x.YearMin != nil && (e.ReleaseYear == nil || *e.ReleaseYear < *x.YearMin) {
		return false
	}
	if x.YearMax != nil && (e.ReleaseYear == nil || *e.ReleaseYear > *x.YearMax) {
		return false
	}
	if len(x.RatingsAny) > 0 && (e.Rating == nil || !containsAny([]string{*e.Rating}, x.RatingsAny)) {
		return false
	}
	if x.RuntimeMax != nil && (e.RuntimeMinutes == nil || *e.RuntimeMinutes > *x.RuntimeMax) {
		return false
	}
	return true
}

func containsAny(have, want []string) bool {
	set := make(map[string]bool, len(have))
	for _, h := range have {
		set[h] = true
	}
	for _, w := range want {
		if set[w] {
			return true
		}
	}
	return false
}

// EvalQuery is one labelled evaluation query.
type EvalQuery struct {
	Query  string      `json:"query"`
	Expect Expectation `json:"expect"`
}

// EvalQueryResult holds the metrics for a single query.
type EvalQueryResult struct {
	Query   string  `json:"query"`
	MRR     float64 `json:"mrr"`
	NDCG    float64 `json:"ndcg"`
	HitRate float64 `json:"hit_rate"`
}

// EvalReport is the outcome of an evaluation run.
type EvalReport struct {
	Engine  EngineType        `json:"engine"`
	K       int               `json:"k"`
	Queries []EvalQueryResult `json:"queries"`
	MRR     float64           `json:"mrr"`
	NDCG    float64           `json:"ndcg"`
	HitRate float64           `json:"hit_rate"`
}
