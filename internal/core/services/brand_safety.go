package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/scout/internal/core/domain"
)

const unratedTier = "Unrated"

type ratingTier struct {
	tier string
	risk domain.RiskLevel
}

var ratingTiers = map[string]ratingTier{
	"TV-Y":     {"Kids", domain.RiskLow},
	"TV-Y7":    {"Kids", domain.RiskLow},
	"TV-Y7_FV": {"Kids", domain.RiskLow},
	"TV-G":     {"Family", domain.RiskLow},
	"G":        {"Family", domain.RiskLow},
	"TV-PG":    {"General", domain.RiskLow},
	"PG":       {"General", domain.RiskLow},
	"PG-13":    {"Teen", domain.RiskMedium},
	"TV-14":    {"Teen", domain.RiskMedium},
	"R":        {"Mature", domain.RiskHigh},
	"TV-MA":    {"Mature", domain.RiskHigh},
}

// Genres that raise a low base risk to medium.
var elevatedRiskGenres = []string{"horror", "crime", "thriller"}

const familyGenre = "kids & family"

// AssessBrandSafety derives an explainable brand-safety label from the
// rating and genres. It is deterministic and never fails: unknown or
// missing ratings resolve to ("Unrated", medium). The tier is looked up on
// the trimmed code; the note quotes the rating as given.
func AssessBrandSafety(rating string, genres []string) domain.BrandSafetyAssessment {
	rt, ok := ratingTiers[strings.TrimSpace(rating)]
	if !ok {
		rt = ratingTier{unratedTier, domain.RiskMedium}
	}

	a := domain.BrandSafetyAssessment{Tier: rt.tier, Risk: rt.risk}
	if ok {
		a.Notes = append(a.Notes, fmt.Sprintf("Rating-based tier: %s (%s).", rt.tier, rating))
	} else {
		a.Notes = append(a.Notes, "No rating available; treating as medium risk by default.")
	}

	gset := lowerSet(genres)
	if hasAny(gset, elevatedRiskGenres...) {
		if a.Risk == domain.RiskLow {
			a.Risk = domain.RiskMedium
		}
		a.Notes = append(a.Notes, "Genre includes Horror/Crime/Thriller: elevated brand-safety risk.")
	}
	if gset[familyGenre] {
		a.Notes = append(a.Notes, "Kids & Family content tends to be broadly brand-safe.")
	}
	return a
}

func lowerSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(strings.TrimSpace(v))] = true
	}
	return set
}

func hasAny(set map[string]bool, keys ...string) bool {
	for _, k := range keys {
		if set[k] {
			return true
		}
	}
	return false
}
