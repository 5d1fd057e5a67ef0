package engine

import (
	"errors"

	"railhand/internal/board"
	"railhand/internal/rng"
)

var (
	ErrNotYourTurn      = errors.New("not your turn")
	ErrInvalidAction    = errors.New("invalid action")
	ErrInvalidArgument  = errors.New("invalid argument shape")
	ErrWrongPhase       = errors.New("wrong phase for this action")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrUnknownCity      = errors.New("unknown city")
	ErrUnknownCommodity = errors.New("unknown commodity")
	ErrLocalSupply      = errors.New("destination already supplies that commodity")
	ErrUnknownContract  = errors.New("contract not found")
	ErrContractDone     = errors.New("contract already fulfilled")
	ErrUnknownRailroad  = errors.New("independent railroad not found")
	ErrNoCandidate      = errors.New("no valid candidate found")
)

// ActionType identifies player moves sent to Game.Apply.
type ActionType string

const (
	ActionStartingContract ActionType = "starting_contract"
	ActionPrivateContract  ActionType = "private_contract"
	ActionMarketContract   ActionType = "market_contract"
	ActionClaimMarket      ActionType = "claim_market"
	ActionAddContract      ActionType = "add_contract"
	ActionToggleFulfilled  ActionType = "toggle_fulfilled"
	ActionDeleteContract   ActionType = "delete_contract"
	ActionAcquireRailroad  ActionType = "acquire_railroad"
	ActionAddCity          ActionType = "add_city"
	ActionEndTurn          ActionType = "end_turn"
)

// Action is a player's move input. Params depend on Type:
// starting_contract: Cities (exactly two)
// claim_market, toggle_fulfilled, delete_contract: ContractID
// add_contract: Commodity, Destination, ContractType
// acquire_railroad: Railroad
// add_city: City
type Action struct {
	Type         ActionType   `json:"type"`
	Cities       []string     `json:"cities,omitempty"`
	City         string       `json:"city,omitempty"`
	ContractID   string       `json:"contract_id,omitempty"`
	Commodity    string       `json:"commodity,omitempty"`
	Destination  string       `json:"destination,omitempty"`
	ContractType ContractType `json:"contract_type,omitempty"`
	Railroad     string       `json:"railroad,omitempty"`
}

// EventType identifies events emitted by the engine.
type EventType string

const (
	EventSessionStarted   EventType = "session_started"
	EventContractCreated  EventType = "contract_created"
	EventContractClaimed  EventType = "contract_claimed"
	EventContractToggled  EventType = "contract_toggled"
	EventContractDeleted  EventType = "contract_deleted"
	EventRailroadFounded  EventType = "railroad_founded"
	EventRailroadsGrown   EventType = "railroads_grown"
	EventRailroadAcquired EventType = "railroad_acquired"
	EventCityActivated    EventType = "city_activated"
	EventTurnEnd          EventType = "turn_end"
	EventPhaseChange      EventType = "phase_change"
)

// Event is emitted by the engine after state changes.
type Event struct {
	Type   EventType   `json:"type"`
	Player string      `json:"player,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// Game holds the entire game state and turn context. One logical game
// per session; every move is applied synchronously as an atomic
// read-modify-write, so there is no interleaving to guard against.
type Game struct {
	Board  *board.Index `json:"-"`
	RNG    *rng.Source  `json:"-"`
	Config GameConfig   `json:"-"`

	Contracts      []*Contract                     `json:"contracts"` // newest first
	Players        []*Player                       `json:"players"`   // seat order
	Railroads      map[string]*IndependentRailroad `json:"independent_railroads"`
	RailroadOrder  []string                        `json:"railroad_order"` // founding order
	SessionStarted bool                            `json:"session_started"`

	Phase         PhaseName `json:"phase"`
	CurrentPlayer string    `json:"current_player"`
	NumPlayers    int       `json:"num_players"`
	PlayOrder     []string  `json:"play_order"`
	PlayOrderPos  int       `json:"play_order_pos"`
	Turn          int       `json:"turn"`
}

// New creates a game. Bring-your-own-device sessions start in
// waiting_for_players until the host marks the session started; local
// hotseat sessions skip straight to setup.
func New(players []*Player, cfg GameConfig, ix *board.Index, src *rng.Source, byod bool) *Game {
	g := &Game{
		Board:      ix,
		RNG:        src,
		Config:     cfg,
		Players:    players,
		Railroads:  make(map[string]*IndependentRailroad),
		NumPlayers: len(players),
		Turn:       1,
	}
	for _, p := range players {
		g.PlayOrder = append(g.PlayOrder, p.ID)
	}
	if len(g.PlayOrder) > 0 {
		g.CurrentPlayer = g.PlayOrder[0]
	}
	if byod {
		g.Phase = PhaseWaitingForPlayers
	} else {
		g.Phase = PhaseSetup
	}
	return g
}

// GetPlayer finds a player by ID.
func (g *Game) GetPlayer(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// IsPlayersTurn reports whether the player currently holds the turn.
func (g *Game) IsPlayersTurn(id string) bool {
	return id != "" && g.CurrentPlayer == id
}

// StartSession marks a bring-your-own-device session as started by the
// host and re-checks the phase, which moves the game into setup.
func (g *Game) StartSession() []Event {
	g.SessionStarted = true
	events := []Event{{Type: EventSessionStarted}}
	return append(events, g.checkPhaseEnd()...)
}

// Apply is the single entry point for player moves. Every move is
// validated against the legality table before any mutation; a rejected
// move leaves the state untouched.
func (g *Game) Apply(playerID string, action Action) ([]Event, error) {
	spec, ok := moveTable[action.Type]
	if !ok {
		return nil, ErrInvalidAction
	}
	if !spec.allowsPhase(g.Phase) {
		return nil, ErrWrongPhase
	}
	if g.GetPlayer(playerID) == nil {
		return nil, ErrPlayerNotFound
	}
	if spec.requiresTurn && !g.IsPlayersTurn(playerID) {
		return nil, ErrNotYourTurn
	}

	var events []Event
	var err error
	switch action.Type {
	case ActionStartingContract:
		events, err = g.applyStartingContract(playerID, action)
	case ActionPrivateContract:
		events, err = g.applyPrivateContract(playerID)
	case ActionMarketContract:
		events, err = g.applyMarketContract()
	case ActionClaimMarket:
		events, err = g.applyClaimMarket(playerID, action)
	case ActionAddContract:
		events, err = g.applyAddContract(playerID, action)
	case ActionToggleFulfilled:
		events, err = g.applyToggleFulfilled(playerID, action)
	case ActionDeleteContract:
		events, err = g.applyDeleteContract(playerID, action)
	case ActionAcquireRailroad:
		events, err = g.applyAcquireRailroad(playerID, action)
	case ActionAddCity:
		events, err = g.applyAddCity(playerID, action)
	case ActionEndTurn:
		events, err = g.applyEndTurn()
	default:
		return nil, ErrInvalidAction
	}
	if err != nil {
		return nil, err
	}

	return append(events, g.checkPhaseEnd()...), nil
}

func (g *Game) contractEvent(c *Contract) Event {
	return Event{Type: EventContractCreated, Player: c.PlayerID, Data: map[string]interface{}{
		"id":          c.ID,
		"commodity":   c.Commodity,
		"destination": c.Destination,
		"type":        string(c.Type),
		"money":       g.MoneyValue(c),
		"ties":        g.TieValue(c),
	}}
}

func (g *Game) applyStartingContract(playerID string, action Action) ([]Event, error) {
	c, err := g.generateStartingContract(action.Cities, playerID)
	if err != nil {
		return nil, err
	}
	g.addContract(c)
	return []Event{g.contractEvent(c)}, nil
}

func (g *Game) applyPrivateContract(playerID string) ([]Event, error) {
	spec, ok := g.GeneratePrivateContractSpec()
	if !ok {
		return nil, ErrNoCandidate
	}
	c, err := g.NewContract(spec.Destination, spec.Commodity, ContractPrivate, playerID)
	if err != nil {
		return nil, err
	}
	g.addContract(c)
	return []Event{g.contractEvent(c)}, nil
}

func (g *Game) applyMarketContract() ([]Event, error) {
	c, err := g.generateMarketContract()
	if err != nil {
		return nil, err
	}
	g.addContract(c)
	return []Event{g.contractEvent(c)}, nil
}

func (g *Game) applyClaimMarket(playerID string, action Action) ([]Event, error) {
	c := g.FindContract(action.ContractID)
	if c == nil {
		return nil, ErrUnknownContract
	}
	if c.Type != ContractMarket || c.PlayerID != "" {
		return nil, ErrInvalidAction
	}
	c.PlayerID = playerID
	c.Fulfilled = true
	return []Event{{Type: EventContractClaimed, Player: playerID, Data: map[string]interface{}{
		"id":    c.ID,
		"money": g.MoneyValue(c),
	}}}, nil
}

func (g *Game) applyAddContract(playerID string, action Action) ([]Event, error) {
	typ := action.ContractType
	if typ != ContractPrivate && typ != ContractMarket {
		return nil, ErrInvalidArgument
	}
	owner := ""
	if typ == ContractPrivate {
		owner = playerID
	}
	c, err := g.NewContract(action.Destination, action.Commodity, typ, owner)
	if err != nil {
		return nil, err
	}
	g.addContract(c)
	return []Event{g.contractEvent(c)}, nil
}

func (g *Game) applyToggleFulfilled(playerID string, action Action) ([]Event, error) {
	c := g.FindContract(action.ContractID)
	if c == nil {
		return nil, ErrUnknownContract
	}
	c.Fulfilled = !c.Fulfilled
	// Market contracts keep ownership in lockstep with fulfillment.
	if c.Type == ContractMarket {
		if c.Fulfilled {
			if c.PlayerID == "" {
				c.PlayerID = playerID
			}
		} else {
			c.PlayerID = ""
		}
	}
	return []Event{{Type: EventContractToggled, Player: playerID, Data: map[string]interface{}{
		"id":        c.ID,
		"fulfilled": c.Fulfilled,
	}}}, nil
}

func (g *Game) applyDeleteContract(playerID string, action Action) ([]Event, error) {
	for i, c := range g.Contracts {
		if c.ID != action.ContractID {
			continue
		}
		if c.Fulfilled {
			return nil, ErrContractDone
		}
		g.Contracts = append(g.Contracts[:i], g.Contracts[i+1:]...)
		return []Event{{Type: EventContractDeleted, Player: playerID, Data: map[string]interface{}{
			"id": c.ID,
		}}}, nil
	}
	return nil, ErrUnknownContract
}

func (g *Game) applyAcquireRailroad(playerID string, action Action) ([]Event, error) {
	rr, ok := g.Railroads[action.Railroad]
	if !ok {
		return nil, ErrUnknownRailroad
	}
	p := g.GetPlayer(playerID)

	// The company's cities join the acquiring player's network.
	for _, city := range rr.Cities(g.Board) {
		p.AddActiveCity(city)
	}
	delete(g.Railroads, action.Railroad)
	for i, name := range g.RailroadOrder {
		if name == action.Railroad {
			g.RailroadOrder = append(g.RailroadOrder[:i], g.RailroadOrder[i+1:]...)
			break
		}
	}
	return []Event{{Type: EventRailroadAcquired, Player: playerID, Data: map[string]interface{}{
		"name":   rr.Name,
		"routes": rr.Routes,
	}}}, nil
}

func (g *Game) applyAddCity(playerID string, action Action) ([]Event, error) {
	if _, ok := g.Board.Cities[action.City]; !ok {
		return nil, ErrUnknownCity
	}
	g.GetPlayer(playerID).AddActiveCity(action.City)
	return []Event{{Type: EventCityActivated, Player: playerID, Data: map[string]interface{}{
		"city": action.City,
	}}}, nil
}

// applyEndTurn runs the phase's turn hook, then advances play order,
// turn counter, and current player as one update. The turn counter
// increments exactly when play order wraps back to the first seat.
func (g *Game) applyEndTurn() ([]Event, error) {
	if len(g.PlayOrder) == 0 {
		return nil, ErrPlayerNotFound
	}

	var events []Event
	if def, ok := phases[g.Phase]; ok && def.TurnEnd != nil {
		events = append(events, def.TurnEnd(g)...)
	}

	ended := g.CurrentPlayer
	g.PlayOrderPos = (g.PlayOrderPos + 1) % len(g.PlayOrder)
	if g.PlayOrderPos == 0 {
		g.Turn++
	}
	g.CurrentPlayer = g.PlayOrder[g.PlayOrderPos]

	events = append(events, Event{Type: EventTurnEnd, Player: ended, Data: map[string]interface{}{
		"next": g.CurrentPlayer,
		"turn": g.Turn,
	}})
	return events, nil
}
