package engine

// PublicViewData is the game state visible on the host screen.
type PublicViewData struct {
	Phase         string             `json:"phase"`
	Turn          int                `json:"turn"`
	CurrentPlayer string             `json:"current_player"`
	Players       []PublicPlayerData `json:"players"`
	Market        []ContractView     `json:"market,omitempty"`
	Railroads     []RailroadView     `json:"railroads,omitempty"`
}

type PublicPlayerData struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	ActiveCities []string `json:"active_cities,omitempty"`
	Contracts    int      `json:"contracts"`
}

// ContractView is a contract plus its derived rewards.
type ContractView struct {
	ID          string `json:"id"`
	Commodity   string `json:"commodity"`
	Destination string `json:"destination"`
	Type        string `json:"type"`
	Fulfilled   bool   `json:"fulfilled"`
	Money       int    `json:"money"`
	Ties        int    `json:"ties"`
}

type RailroadView struct {
	Name   string   `json:"name"`
	Routes []string `json:"routes"`
}

func (g *Game) contractView(c *Contract) ContractView {
	return ContractView{
		ID:          c.ID,
		Commodity:   c.Commodity,
		Destination: c.Destination,
		Type:        string(c.Type),
		Fulfilled:   c.Fulfilled,
		Money:       g.MoneyValue(c),
		Ties:        g.TieValue(c),
	}
}

func (g *Game) PublicView() PublicViewData {
	pv := PublicViewData{
		Phase:         string(g.Phase),
		Turn:          g.Turn,
		CurrentPlayer: g.CurrentPlayer,
	}
	for _, p := range g.Players {
		pv.Players = append(pv.Players, PublicPlayerData{
			ID:           p.ID,
			Name:         p.Name,
			ActiveCities: p.ActiveCities,
			Contracts:    len(g.ContractsForPlayer(p.ID)),
		})
	}
	for _, c := range g.OpenMarketContracts() {
		pv.Market = append(pv.Market, g.contractView(c))
	}
	for _, name := range g.RailroadOrder {
		rr := g.Railroads[name]
		pv.Railroads = append(pv.Railroads, RailroadView{Name: rr.Name, Routes: rr.Routes})
	}
	return pv
}

// PlayerViewData is the game state visible to one player.
type PlayerViewData struct {
	PublicViewData
	Contracts []ContractView `json:"contracts,omitempty"`
	IsMyTurn  bool           `json:"is_my_turn"`
}

func (g *Game) ViewFor(playerID string) PlayerViewData {
	pv := PlayerViewData{
		PublicViewData: g.PublicView(),
		IsMyTurn:       g.IsPlayersTurn(playerID),
	}
	for _, c := range g.ContractsForPlayer(playerID) {
		pv.Contracts = append(pv.Contracts, g.contractView(c))
	}
	return pv
}
