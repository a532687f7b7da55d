package services

import (
	"strings"

	"github.com/custodia-labs/scout/internal/core/domain"
)

// Monetization weights. Brand suitability dominates demand-side signals.
const (
	ratingWeight = 0.50
	lengthWeight = 0.20
	genreWeight  = 0.30

	defaultRatingScore = 0.65
	defaultGenreScore  = 0.65
	seriesLengthScore  = 0.60
	missingLengthScore = 0.50

	// Runtime ramp: 0 at or below rampStart minutes, 1 at rampStart+rampSpan.
	rampStart = 60.0
	rampSpan  = 80.0
)

// ratingFriendliness maps rating codes to advertiser friendliness.
// Higher is friendlier.
var ratingFriendliness = map[string]float64{
	"TV-Y":     1.00,
	"TV-Y7":    0.98,
	"TV-Y7_FV": 0.98,
	"TV-G":     0.96,
	"G":        0.96,
	"TV-PG":    0.86,
	"PG":       0.86,
	"PG-13":    0.76,
	"TV-14":    0.70,
	"R":        0.55,
	"TV-MA":    0.40,
}

// genrePremium is a proxy for advertiser demand per genre (lowercase keys).
var genrePremium = map[string]float64{
	"kids & family": 0.90,
	"animation":     0.88,
	"comedy":        0.82,
	"action":        0.78,
	"sci-fi":        0.78,
	"adventure":     0.76,
	"drama":         0.72,
	"romance":       0.70,
	"documentary":   0.68,
	"reality":       0.74,
	"thriller":      0.62,
	"crime":         0.60,
	"horror":        0.55,
}

// Clamp01 bounds x to [0,1].
func Clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

// RatingScore returns the brand-friendliness of a rating code.
func RatingScore(rating string) float64 {
	if s, ok := ratingFriendliness[strings.TrimSpace(rating)]; ok {
		return s
	}
	return defaultRatingScore
}

// LengthScore is a proxy for ad inventory. Series use a neutral value
// since their runtime is usually absent; movies ramp with runtime.
func LengthScore(runtimeMinutes *int, contentType domain.ContentType) float64 {
	if contentType == domain.ContentTypeSeries {
		return seriesLengthScore
	}
	if runtimeMinutes == nil || *runtimeMinutes == 0 {
		return missingLengthScore
	}
	return Clamp01((float64(*runtimeMinutes) - rampStart) / rampSpan)
}

// GenreScore returns the highest genre premium among genres, or the
// default when none are known.
func GenreScore(genres []string) float64 {
	best, found := 0.0, false
	for _, g := range genres {
		s, ok := genrePremium[strings.ToLower(strings.TrimSpace(g))]
		if ok && (!found || s > best) {
			best, found = s, true
		}
	}
	if !found {
		return defaultGenreScore
	}
	return best
}

// MonetizationScore blends the rating, length and genre components into
// an advertiser-value proxy in [0,1].
func MonetizationScore(e *domain.CatalogEntry) (float64, domain.MonetizationBreakdown) {
	b := domain.MonetizationBreakdown{
		RatingScore: RatingScore(e.RatingCode()),
		LengthScore: LengthScore(e.RuntimeMinutes, e.ContentType.OrUnknown()),
		GenreScore:  GenreScore(e.Genres),
	}
	score := ratingWeight*b.RatingScore + lengthWeight*b.LengthScore + genreWeight*b.GenreScore
	return Clamp01(score), b
}
