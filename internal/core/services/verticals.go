package services

import "strings"

// Advertiser verticals.
const (
	VerticalCPG           = "CPG"
	VerticalAuto          = "Auto"
	VerticalInsurance     = "Insurance"
	VerticalTravel        = "Travel"
	VerticalGaming        = "Gaming"
	VerticalQSR           = "QSR"
	VerticalTech          = "Tech"
	VerticalRetail        = "Retail"
	VerticalFinancial     = "Financial Services"
	VerticalHealth        = "Health & Wellness"
	VerticalEntertainment = "Entertainment"
)

// AdVerticals is the closed vertical taxonomy, in canonical order.
var AdVerticals = []string{
	VerticalCPG,
	VerticalAuto,
	VerticalInsurance,
	VerticalTravel,
	VerticalGaming,
	VerticalQSR,
	VerticalTech,
	VerticalRetail,
	VerticalFinancial,
	VerticalHealth,
	VerticalEntertainment,
}

const maxVerticals = 5

var defaultVerticals = []string{VerticalCPG, VerticalRetail, VerticalEntertainment}

var familyRatings = map[string]bool{
	"TV-Y": true, "TV-Y7": true, "TV-Y7_FV": true, "TV-G": true, "G": true,
}

// verticalRule appends verticals when it matches.
type verticalRule struct {
	match     func(genres map[string]bool, rating string) bool
	verticals []string
}

func anyGenre(names ...string) func(map[string]bool, string) bool {
	return func(genres map[string]bool, _ string) bool {
		return hasAny(genres, names...)
	}
}

// verticalRules are evaluated in order; every matching rule contributes.
var verticalRules = []verticalRule{
	{
		match: func(genres map[string]bool, rating string) bool {
			return genres[familyGenre] || familyRatings[rating]
		},
		verticals: []string{VerticalCPG, VerticalQSR, VerticalRetail},
	},
	{anyGenre("action", "thriller", "sci-fi", "adventure"), []string{VerticalAuto, VerticalGaming, VerticalTech}},
	{anyGenre("drama", "romance"), []string{VerticalInsurance, VerticalTravel, VerticalRetail}},
	{anyGenre("documentary"), []string{VerticalFinancial, VerticalTech, VerticalHealth}},
	{anyGenre("comedy"), []string{VerticalQSR, VerticalCPG, VerticalRetail}},
	{anyGenre("horror", "crime"), []string{VerticalEntertainment, VerticalGaming}},
}

var knownVerticals = func() map[string]bool {
	m := make(map[string]bool, len(AdVerticals))
	for _, v := range AdVerticals {
		m[v] = true
	}
	return m
}()

// SuggestAdVerticals returns up to five advertiser verticals for a title,
// in rule order with duplicates removed. The result is never empty.
func SuggestAdVerticals(genres []string, rating string) []string {
	gset := lowerSet(genres)
	rating = strings.TrimSpace(rating)

	var out []string
	seen := make(map[string]bool)
	for _, rule := range verticalRules {
		if !rule.match(gset, rating) {
			continue
		}
		for _, v := range rule.verticals {
			if knownVerticals[v] && !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}

	if len(out) == 0 {
		out = append(out, defaultVerticals...)
	}
	if len(out) > maxVerticals {
		out = out[:maxVerticals]
	}
	return out
}
