package engine

import (
	"github.com/google/uuid"

	"railhand/internal/rng"
)

// ContractType distinguishes player-owned contracts from open market ones.
type ContractType string

const (
	ContractPrivate ContractType = "private"
	ContractMarket  ContractType = "market"
)

// Contract rewards a player for moving a commodity to a destination
// city. A market contract's PlayerID is empty exactly while it is
// unclaimed; claiming it marks it fulfilled.
type Contract struct {
	ID          string       `json:"id"`
	Destination string       `json:"destination"`
	Commodity   string       `json:"commodity"`
	Type        ContractType `json:"type"`
	Fulfilled   bool         `json:"fulfilled"`
	PlayerID    string       `json:"player_id,omitempty"`
}

// ContractSpec is a candidate commodity/destination pair produced by
// the generators before a contract is created.
type ContractSpec struct {
	Commodity   string `json:"commodity"`
	Destination string `json:"destination"`
}

func (s ContractSpec) key() string {
	return s.Commodity + "|" + s.Destination
}

// NewContract validates and builds a contract. It fails if the city or
// commodity is unknown, or if the destination already supplies the
// commodity (no shipping goods to their own source).
func (g *Game) NewContract(destination, commodity string, typ ContractType, playerID string) (*Contract, error) {
	if _, ok := g.Board.Cities[destination]; !ok {
		return nil, ErrUnknownCity
	}
	if _, ok := g.Board.Suppliers[commodity]; !ok {
		return nil, ErrUnknownCommodity
	}
	if g.Board.Supplies(destination, commodity) {
		return nil, ErrLocalSupply
	}
	return &Contract{
		ID:          uuid.NewString(),
		Destination: destination,
		Commodity:   commodity,
		Type:        typ,
		PlayerID:    playerID,
	}, nil
}

// MoneyValue is the contract's dollar reward: hop distance from the
// nearest supplying city to the destination, at MoneyPerHop dollars a
// hop. Derived, never stored.
func (g *Game) MoneyValue(c *Contract) int {
	d := g.Board.NearestSupplierDistance(c.Commodity, c.Destination)
	if d < 0 {
		return 0
	}
	return d * g.Config.MoneyPerHop
}

// TieValue is the companion railroad-tie reward, on a coarser unit of
// one tie per two hops, rounded up.
func (g *Game) TieValue(c *Contract) int {
	d := g.Board.NearestSupplierDistance(c.Commodity, c.Destination)
	if d < 0 {
		return 0
	}
	return (d + 1) / 2
}

// hasLiveContract reports whether an unfulfilled contract already
// covers the commodity/destination pair.
func (g *Game) hasLiveContract(spec ContractSpec) bool {
	for _, c := range g.Contracts {
		if !c.Fulfilled && c.Commodity == spec.Commodity && c.Destination == spec.Destination {
			return true
		}
	}
	return false
}

// addContract inserts newest-first.
func (g *Game) addContract(c *Contract) {
	g.Contracts = append([]*Contract{c}, g.Contracts...)
}

// findSpec searches for a valid commodity/destination pair with the
// destination drawn from the given cities. Bounded: exhausting the
// attempt budget is an expected outcome, reported as !ok.
func (g *Game) findSpec(destinations []string, minHops int, taken map[string]bool) (ContractSpec, bool) {
	commodities := g.Board.CommodityKeys()
	for attempt := 0; attempt < g.Config.ContractAttempts; attempt++ {
		dest, ok := rng.Pick(g.RNG, destinations)
		if !ok {
			return ContractSpec{}, false
		}
		com, ok := rng.Pick(g.RNG, commodities)
		if !ok {
			return ContractSpec{}, false
		}
		spec := ContractSpec{Commodity: com, Destination: dest}
		if g.Board.Supplies(dest, com) {
			continue
		}
		if minHops > 0 && g.Board.NearestSupplierDistance(com, dest) < minHops {
			continue
		}
		if g.hasLiveContract(spec) || taken[spec.key()] {
			continue
		}
		return spec, true
	}
	return ContractSpec{}, false
}

// GeneratePrivateContractSpec finds a pair for the current player,
// keyed to their active-city set. Returns !ok when there is no current
// player, the player has no active cities, or the search exhausts its
// attempt budget.
func (g *Game) GeneratePrivateContractSpec() (ContractSpec, bool) {
	p := g.GetPlayer(g.CurrentPlayer)
	if p == nil {
		return ContractSpec{}, false
	}
	return g.findSpec(p.ActiveCities, 0, nil)
}

// GeneratePrivateContractOffers returns up to count unique specs for a
// draw-N-pick-one flow. No two offers share a commodity/destination pair.
func (g *Game) GeneratePrivateContractOffers(count int) []ContractSpec {
	p := g.GetPlayer(g.CurrentPlayer)
	if p == nil {
		return nil
	}
	taken := make(map[string]bool)
	var offers []ContractSpec
	for len(offers) < count {
		spec, ok := g.findSpec(p.ActiveCities, 0, taken)
		if !ok {
			break
		}
		taken[spec.key()] = true
		offers = append(offers, spec)
	}
	return offers
}

// generateMarketContract builds an unclaimed market contract. Market
// contracts must sit at least MarketMinHops from their nearest
// supplier, enforced by rejection sampling.
func (g *Game) generateMarketContract() (*Contract, error) {
	spec, ok := g.findSpec(g.Board.CityKeys(), g.Config.MarketMinHops, nil)
	if !ok {
		return nil, ErrNoCandidate
	}
	return g.NewContract(spec.Destination, spec.Commodity, ContractMarket, "")
}

// generateStartingContract builds a private contract keyed to the two
// chosen starting cities rather than a full active-city set.
func (g *Game) generateStartingContract(cities []string, playerID string) (*Contract, error) {
	if len(cities) != 2 {
		return nil, ErrInvalidArgument
	}
	for _, c := range cities {
		if _, ok := g.Board.Cities[c]; !ok {
			return nil, ErrUnknownCity
		}
	}
	spec, ok := g.findSpec(cities, 0, nil)
	if !ok {
		return nil, ErrNoCandidate
	}
	return g.NewContract(spec.Destination, spec.Commodity, ContractPrivate, playerID)
}

// FindContract returns the contract with the given id, or nil.
func (g *Game) FindContract(id string) *Contract {
	for _, c := range g.Contracts {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// ContractsForPlayer returns the player's contracts, newest first.
func (g *Game) ContractsForPlayer(playerID string) []*Contract {
	var out []*Contract
	for _, c := range g.Contracts {
		if c.PlayerID == playerID && playerID != "" {
			out = append(out, c)
		}
	}
	return out
}

// OpenMarketContracts returns unclaimed market contracts, newest first.
func (g *Game) OpenMarketContracts() []*Contract {
	var out []*Contract
	for _, c := range g.Contracts {
		if c.Type == ContractMarket && c.PlayerID == "" {
			out = append(out, c)
		}
	}
	return out
}
