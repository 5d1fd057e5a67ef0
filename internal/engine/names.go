package engine

import (
	"fmt"

	"railhand/internal/board"
	"railhand/internal/rng"
)

// Company name synthesis for independent railroads. Three styles keyed
// to the state of the company's founding city: a grand single-word
// name, an industry or region name, or a paired-geography name.

var nameSuffixes = []rng.Choice[string]{
	{Item: "Railroad", Weight: 4},
	{Item: "Railway", Weight: 4},
	{Item: "Line", Weight: 2},
	{Item: "Central", Weight: 1},
	{Item: "Limited", Weight: 1},
}

var grandNames = []string{
	"Continental", "Grand Trunk", "Union", "National", "Atlantic",
	"Overland", "Commonwealth", "Pioneer", "Meridian", "Standard",
}

const nameAttempts = 12

// GenerateRailroadName synthesizes a thematic company name for the
// given state, retrying only to avoid names already in use. Naming
// never fails: after the retry budget it disambiguates with a numeral.
func (g *Game) GenerateRailroadName(state string, used map[string]bool) string {
	for attempt := 0; attempt < nameAttempts; attempt++ {
		name := g.synthesizeName(state)
		if !used[name] {
			return name
		}
	}
	base := g.synthesizeName(state)
	for n := 2; ; n++ {
		name := fmt.Sprintf("%s No. %d", base, n)
		if !used[name] {
			return name
		}
	}
}

func (g *Game) synthesizeName(state string) string {
	suffix, _ := rng.Weighted(g.RNG, nameSuffixes)
	features := board.StateFeatures(state)
	industries := board.StateIndustries(state)

	// With no thematic terms for the state, only the grand style works.
	if len(features) == 0 && len(industries) == 0 {
		grand, _ := rng.Pick(g.RNG, grandNames)
		return grand + " " + suffix
	}

	r := g.RNG.Float64()
	switch {
	case r < 0.2:
		grand, _ := rng.Pick(g.RNG, grandNames)
		return grand + " " + suffix
	case r < 0.6:
		// Industry or region name.
		terms := industries
		if len(terms) == 0 {
			terms = features
		}
		term, _ := rng.Pick(g.RNG, terms)
		return term + " " + suffix
	default:
		// Paired geography, two distinct terms.
		if len(features) < 2 {
			term, ok := rng.Pick(g.RNG, features)
			if !ok {
				term, _ = rng.Pick(g.RNG, industries)
			}
			return term + " " + suffix
		}
		first, _ := rng.Pick(g.RNG, features)
		second := first
		for second == first {
			second, _ = rng.Pick(g.RNG, features)
		}
		return first + " & " + second + " " + suffix
	}
}
