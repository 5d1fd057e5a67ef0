// Package board holds the immutable city/route/commodity reference data
// and answers adjacency and reachability questions over it. The graph is
// fixed and cyclic; nothing here mutates after Load.
package board

// City is one node of the route graph.
type City struct {
	Key         string   `json:"key"`
	State       string   `json:"state"`
	Commodities []string `json:"commodities"`
	Routes      []string `json:"routes"` // incident route keys, derived at load
}

// Route is one undirected edge between two cities. Hop distance is
// uniformly 1 per route.
type Route struct {
	Key string `json:"key"`
	A   string `json:"a"`
	B   string `json:"b"`
}

// Index is the loaded reference data plus derived lookup tables.
type Index struct {
	Cities    map[string]*City
	Routes    map[string]*Route
	Suppliers map[string][]string // commodity key -> supplying city keys

	routeKeys     []string // data order, for stable iteration
	commodityKeys []string
}

// ConnectOptions adjusts CitiesConnectedTo.
type ConnectOptions struct {
	// Distance is the number of hops to expand. Zero means the default of 1.
	Distance int
	// IncludeFromCities keeps the seed cities in the result.
	IncludeFromCities bool
}

// Load builds the index from the static tables in data.go.
func Load() *Index {
	ix := &Index{
		Cities:    make(map[string]*City),
		Routes:    make(map[string]*Route),
		Suppliers: make(map[string][]string),
	}

	for _, cd := range cityTable {
		ix.Cities[cd.key] = &City{
			Key:         cd.key,
			State:       cd.state,
			Commodities: append([]string(nil), cd.commodities...),
		}
		for _, com := range cd.commodities {
			if _, ok := ix.Suppliers[com]; !ok {
				ix.commodityKeys = append(ix.commodityKeys, com)
			}
			ix.Suppliers[com] = append(ix.Suppliers[com], cd.key)
		}
	}

	for _, rd := range routeTable {
		key := rd[0] + " - " + rd[1]
		ix.Routes[key] = &Route{Key: key, A: rd[0], B: rd[1]}
		ix.routeKeys = append(ix.routeKeys, key)
		ix.Cities[rd[0]].Routes = append(ix.Cities[rd[0]].Routes, key)
		ix.Cities[rd[1]].Routes = append(ix.Cities[rd[1]].Routes, key)
	}

	return ix
}

// CityKeys returns all city keys in data order.
func (ix *Index) CityKeys() []string {
	keys := make([]string, 0, len(cityTable))
	for _, cd := range cityTable {
		keys = append(keys, cd.key)
	}
	return keys
}

// RouteKeys returns all route keys in data order.
func (ix *Index) RouteKeys() []string {
	return append([]string(nil), ix.routeKeys...)
}

// CommodityKeys returns all commodity keys in first-seen data order.
func (ix *Index) CommodityKeys() []string {
	return append([]string(nil), ix.commodityKeys...)
}

// Supplies reports whether the city itself supplies the commodity.
func (ix *Index) Supplies(cityKey, commodity string) bool {
	c, ok := ix.Cities[cityKey]
	if !ok {
		return false
	}
	for _, com := range c.Commodities {
		if com == commodity {
			return true
		}
	}
	return false
}

// Neighbors returns the cities one hop from the given city.
func (ix *Index) Neighbors(cityKey string) []string {
	c, ok := ix.Cities[cityKey]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(c.Routes))
	for _, rk := range c.Routes {
		r := ix.Routes[rk]
		if r.A == cityKey {
			out = append(out, r.B)
		} else {
			out = append(out, r.A)
		}
	}
	return out
}

// CitiesConnectedTo expands breadth-first from the seed cities out to
// opt.Distance hops and returns the set of reached city keys. Unknown
// seeds are ignored; duplicate seeds are idempotent.
func (ix *Index) CitiesConnectedTo(seeds []string, opt ConnectOptions) map[string]bool {
	distance := opt.Distance
	if distance <= 0 {
		distance = 1
	}

	visited := make(map[string]bool)
	frontier := make([]string, 0, len(seeds))
	for _, s := range seeds {
		if _, ok := ix.Cities[s]; !ok {
			continue
		}
		if !visited[s] {
			visited[s] = true
			frontier = append(frontier, s)
		}
	}

	for hop := 0; hop < distance && len(frontier) > 0; hop++ {
		var next []string
		for _, cur := range frontier {
			for _, n := range ix.Neighbors(cur) {
				if !visited[n] {
					visited[n] = true
					next = append(next, n)
				}
			}
		}
		frontier = next
	}

	if !opt.IncludeFromCities {
		for _, s := range seeds {
			delete(visited, s)
		}
	}
	return visited
}

// RoutesWithoutCities returns the routes where neither endpoint is in
// the avoid set, in data order.
func (ix *Index) RoutesWithoutCities(avoid map[string]bool) []*Route {
	var out []*Route
	for _, rk := range ix.routeKeys {
		r := ix.Routes[rk]
		if avoid[r.A] || avoid[r.B] {
			continue
		}
		out = append(out, r)
	}
	return out
}

// HopDistance returns the shortest path length in route hops between
// two cities, 0 for a city and itself, or -1 if unknown or unreachable.
func (ix *Index) HopDistance(from, to string) int {
	if _, ok := ix.Cities[from]; !ok {
		return -1
	}
	if _, ok := ix.Cities[to]; !ok {
		return -1
	}
	if from == to {
		return 0
	}

	visited := map[string]bool{from: true}
	frontier := []string{from}
	dist := 0
	for len(frontier) > 0 {
		dist++
		var next []string
		for _, cur := range frontier {
			for _, n := range ix.Neighbors(cur) {
				if visited[n] {
					continue
				}
				if n == to {
					return dist
				}
				visited[n] = true
				next = append(next, n)
			}
		}
		frontier = next
	}
	return -1
}

// NearestSupplierDistance returns the hop distance from the destination
// to the closest city supplying the commodity, or -1 if none exists.
func (ix *Index) NearestSupplierDistance(commodity, destination string) int {
	suppliers := ix.Suppliers[commodity]
	if len(suppliers) == 0 {
		return -1
	}
	if _, ok := ix.Cities[destination]; !ok {
		return -1
	}

	isSupplier := make(map[string]bool, len(suppliers))
	for _, s := range suppliers {
		isSupplier[s] = true
	}
	if isSupplier[destination] {
		return 0
	}

	visited := map[string]bool{destination: true}
	frontier := []string{destination}
	dist := 0
	for len(frontier) > 0 {
		dist++
		var next []string
		for _, cur := range frontier {
			for _, n := range ix.Neighbors(cur) {
				if visited[n] {
					continue
				}
				if isSupplier[n] {
					return dist
				}
				visited[n] = true
				next = append(next, n)
			}
		}
		frontier = next
	}
	return -1
}
