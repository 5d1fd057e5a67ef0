package engine

// GameConfig holds the tunable knobs for a new game.
type GameConfig struct {
	SeedFraction     float64 // share of eligible routes seeded with independents
	MarketMinHops    int     // minimum supplier distance for market contracts
	MoneyPerHop      int     // dollars per hop of contract distance
	ContractAttempts int     // bounded-search budget for contract generation
	GrowthAttempts   int     // bounded-search budget for railroad expansion
}

func DefaultConfig() GameConfig {
	return GameConfig{
		SeedFraction:     0.10,
		MarketMinHops:    2,
		MoneyPerHop:      3000,
		ContractAttempts: 50,
		GrowthAttempts:   100,
	}
}
