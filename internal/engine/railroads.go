package engine

import (
	"math"

	"railhand/internal/board"
	"railhand/internal/rng"
)

// IndependentRailroad is an autonomous non-player company occupying a
// cluster of routes. Companies never share a route and growth keeps
// their territories from touching.
type IndependentRailroad struct {
	Name   string   `json:"name"`
	Routes []string `json:"routes"`
}

// Cities returns the distinct endpoint cities of the company's routes,
// in route order.
func (rr *IndependentRailroad) Cities(ix *board.Index) []string {
	seen := make(map[string]bool)
	var out []string
	for _, rk := range rr.Routes {
		r, ok := ix.Routes[rk]
		if !ok {
			continue
		}
		for _, c := range []string{r.A, r.B} {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

// ownedRoutes returns every route key held by any independent railroad.
func (g *Game) ownedRoutes() map[string]bool {
	owned := make(map[string]bool)
	for _, name := range g.RailroadOrder {
		for _, rk := range g.Railroads[name].Routes {
			owned[rk] = true
		}
	}
	return owned
}

func (g *Game) foundRailroad(name string, route string) *IndependentRailroad {
	rr := &IndependentRailroad{Name: name, Routes: []string{route}}
	g.Railroads[name] = rr
	g.RailroadOrder = append(g.RailroadOrder, name)
	return rr
}

// InitializeIndependentRailroads seeds single-route companies onto
// roughly SeedFraction of the eligible routes: those with neither
// endpoint within two hops of the likely starting cities. City
// ownership recorded here is first-writer-wins and never overwritten,
// so no two companies ever claim the same city during seeding.
func (g *Game) InitializeIndependentRailroads() []Event {
	avoid := g.Board.CitiesConnectedTo(board.LikelyStartingCities, board.ConnectOptions{
		Distance:          2,
		IncludeFromCities: true,
	})
	eligible := g.Board.RoutesWithoutCities(avoid)
	if len(eligible) == 0 {
		return nil
	}

	target := int(math.Round(float64(len(eligible)) * g.Config.SeedFraction))
	if target < 1 {
		target = 1
	}

	queue := append([]*board.Route(nil), eligible...)
	g.RNG.Shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})

	owned := g.ownedRoutes()
	cityOwner := make(map[string]string)
	used := make(map[string]bool)
	for name := range g.Railroads {
		used[name] = true
	}

	var events []Event
	founded := 0
	for _, route := range queue {
		if founded >= target {
			break
		}
		state := ""
		if c, ok := g.Board.Cities[route.A]; ok {
			state = c.State
		}
		name := g.GenerateRailroadName(state, used)

		if owned[route.Key] {
			continue
		}
		if o, ok := cityOwner[route.A]; ok && o != name {
			continue
		}
		if o, ok := cityOwner[route.B]; ok && o != name {
			continue
		}

		g.foundRailroad(name, route.Key)
		owned[route.Key] = true
		used[name] = true
		if _, ok := cityOwner[route.A]; !ok {
			cityOwner[route.A] = name
		}
		if _, ok := cityOwner[route.B]; !ok {
			cityOwner[route.B] = name
		}
		founded++

		events = append(events, Event{Type: EventRailroadFounded, Data: map[string]interface{}{
			"name":  name,
			"route": route.Key,
		}})
	}
	return events
}

// growthTable maps an occupancy bucket (percent of available routes
// held by independents, in 5-point steps) to weighted growth amounts in
// percentage points. Hand-tuned: sparse boards grow fast, crowded
// boards stall.
var growthTable = map[int][]rng.Choice[int]{
	5:  {{Item: 0, Weight: 1}, {Item: 5, Weight: 5}, {Item: 10, Weight: 4}},
	10: {{Item: 0, Weight: 2}, {Item: 5, Weight: 5}, {Item: 10, Weight: 3}},
	15: {{Item: 0, Weight: 3}, {Item: 5, Weight: 5}, {Item: 10, Weight: 2}},
	20: {{Item: 0, Weight: 4}, {Item: 5, Weight: 5}, {Item: 10, Weight: 1}},
	25: {{Item: 0, Weight: 5}, {Item: 5, Weight: 4}},
	30: {{Item: 0, Weight: 6}, {Item: 5, Weight: 3}},
	35: {{Item: 0, Weight: 7}, {Item: 5, Weight: 2}},
	40: {{Item: 0, Weight: 8}, {Item: 5, Weight: 1}},
	45: {{Item: 0, Weight: 9}, {Item: 5, Weight: 1}},
}

// GrowIndependentRailroads runs one round of probabilistic expansion
// and returns the newly added route keys, or nil when no growth
// occurred. Available routes are those not within one hop of any
// player's active cities, a conservative proxy for player territory.
func (g *Game) GrowIndependentRailroads() []string {
	if len(g.RailroadOrder) == 0 {
		return nil
	}

	var active []string
	for _, p := range g.Players {
		active = append(active, p.ActiveCities...)
	}
	playerZone := g.Board.CitiesConnectedTo(active, board.ConnectOptions{
		Distance:          1,
		IncludeFromCities: true,
	})
	available := g.Board.RoutesWithoutCities(playerZone)
	if len(available) == 0 {
		return nil
	}
	availSet := make(map[string]bool, len(available))
	for _, r := range available {
		availSet[r.Key] = true
	}

	owned := g.ownedRoutes()
	occupancy := float64(len(owned)) / float64(len(available)) * 100

	bucket := int(math.Round(occupancy/5)) * 5
	if bucket < 5 {
		bucket = 5
	}
	if bucket > 45 {
		bucket = 45
	}

	growth, ok := rng.Weighted(g.RNG, growthTable[bucket])
	if !ok || growth == 0 {
		return nil
	}

	targetRoutes := int(math.Round(float64(bucket+growth) / 100 * float64(len(available))))
	delta := targetRoutes - len(owned)
	if delta <= 0 {
		// Nonzero draw but rounding swallowed it: fair coin between one
		// forced route and abstaining.
		if !g.RNG.Coin() {
			return nil
		}
		delta = 1
	}

	var added []string
	for attempt := 0; attempt < g.Config.GrowthAttempts && len(added) < delta; attempt++ {
		name, ok := rng.Pick(g.RNG, g.RailroadOrder)
		if !ok {
			break
		}
		rr := g.Railroads[name]

		candidates := g.expansionCandidates(rr, owned, availSet)
		if len(candidates) == 0 {
			continue
		}
		pick, _ := rng.Pick(g.RNG, candidates)
		rr.Routes = append(rr.Routes, pick)
		owned[pick] = true
		added = append(added, pick)
	}
	return added
}

// expansionCandidates lists the routes a company may legally grow into:
// incident to one of its cities, unowned, in the available set, and not
// within one hop of any other company's cities.
func (g *Game) expansionCandidates(rr *IndependentRailroad, owned, availSet map[string]bool) []string {
	var otherCities []string
	for _, name := range g.RailroadOrder {
		if name == rr.Name {
			continue
		}
		otherCities = append(otherCities, g.Railroads[name].Cities(g.Board)...)
	}
	otherZone := g.Board.CitiesConnectedTo(otherCities, board.ConnectOptions{
		Distance:          1,
		IncludeFromCities: true,
	})

	seen := make(map[string]bool)
	var candidates []string
	for _, city := range rr.Cities(g.Board) {
		for _, rk := range g.Board.Cities[city].Routes {
			if seen[rk] || owned[rk] || !availSet[rk] {
				continue
			}
			seen[rk] = true
			r := g.Board.Routes[rk]
			if otherZone[r.A] || otherZone[r.B] {
				continue
			}
			candidates = append(candidates, rk)
		}
	}
	return candidates
}
