package services

import (
	"sort"

	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/logger"
)

// RankOptions controls a single reranking pass.
type RankOptions struct {
	TopK         int
	Alpha        float64
	IncludeDebug bool
}

// SelectCandidates returns the rows permitted by mask ordered by
// similarity descending. Ties break by ascending row index so the order
// is stable across runs.
func SelectCandidates(sims []float64, mask []bool) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(sims))
	for i, s := range sims {
		if mask != nil && (i >= len(mask) || !mask[i]) {
			continue
		}
		out = append(out, domain.Candidate{Index: i, Similarity: s})
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Similarity != out[b].Similarity {
			return out[a].Similarity > out[b].Similarity
		}
		return out[a].Index < out[b].Index
	})
	return out
}

// widenedPoolSize is the number of candidates carried into reranking.
func widenedPoolSize(topK int) int {
	return max(topK*domain.WidenFactor, topK)
}

// Rank blends relevance and monetization over the widened candidate
// pool and returns at most opts.TopK enriched results.
//
// The anchor persona is the persona of the most relevant candidate.
// Candidates sharing it receive a fixed bonus, which is not clamped, so
// FinalScore may exceed 1 by up to domain.PersonaBonus.
func Rank(c *domain.Catalog, sims []float64, mask []bool, opts RankOptions) []domain.ScoredResult {
	defer logger.Timed("rerank")()

	candidates := SelectCandidates(sims, mask)
	if len(candidates) == 0 || opts.TopK <= 0 {
		return []domain.ScoredResult{}
	}

	pool := widenedPoolSize(opts.TopK)
	if pool < len(candidates) {
		candidates = candidates[:pool]
	}
	logger.Debug("reranking %d candidates for top %d", len(candidates), opts.TopK)

	// A blank persona is not an anchor.
	anchor := c.Entry(candidates[0].Index).Persona
	if c.Entry(candidates[0].Index).PersonaLabel() == "" {
		anchor = nil
	}

	type scored struct {
		pos    int
		result domain.ScoredResult
	}
	blended := make([]scored, len(candidates))
	for pos, cand := range candidates {
		e := c.Entry(cand.Index)
		mon, breakdown := MonetizationScore(e)

		bonus := 0.0
		if anchor != nil && e.PersonaLabel() == *anchor {
			bonus = domain.PersonaBonus
		}

		r := toResult(e)
		r.RelevanceScore = cand.Similarity
		r.MonetizationScore = mon
		r.FinalScore = opts.Alpha*cand.Similarity + (1-opts.Alpha)*mon + bonus
		if opts.IncludeDebug {
			r.Debug = &domain.ScoreDebug{
				RawSimilarity:         cand.Similarity,
				MonetizationBreakdown: breakdown,
				AnchorPersona:         copyString(anchor),
				PersonaBonus:          bonus,
			}
		}
		blended[pos] = scored{pos: pos, result: r}
	}

	sort.SliceStable(blended, func(a, b int) bool {
		if blended[a].result.FinalScore != blended[b].result.FinalScore {
			return blended[a].result.FinalScore > blended[b].result.FinalScore
		}
		return blended[a].pos < blended[b].pos
	})

	n := min(opts.TopK, len(blended))
	results := make([]domain.ScoredResult, n)
	for i := range n {
		results[i] = blended[i].result
	}
	return results
}

// toResult copies entry attributes and attaches the rule-based
// enrichments.
func toResult(e *domain.CatalogEntry) domain.ScoredResult {
	verticals := SuggestAdVerticals(e.Genres, e.RatingCode())
	genres := make([]string, len(e.Genres))
	copy(genres, e.Genres)

	return domain.ScoredResult{
		Title:          e.Title,
		TitleURL:       copyString(e.TitleURL),
		ReleaseYear:    copyInt(e.ReleaseYear),
		RuntimeMinutes: copyInt(e.RuntimeMinutes),
		Rating:         copyString(e.Rating),
		Genres:         genres,
		Persona:        copyString(e.Persona),
		ContentType:    e.ContentType.OrUnknown(),
		BrandSafety:    AssessBrandSafety(rawRating(e), e.Genres),
		AdOpportunity: domain.AdOpportunity{
			PrimaryVertical:    verticals[0],
			SecondaryVerticals: append([]string{}, verticals[1:]...),
			Rationale:          domain.AdRationale,
		},
	}
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}

func rawRating(e *domain.CatalogEntry) string {
	if e.Rating == nil {
		return ""
	}
	return *e.Rating
}
