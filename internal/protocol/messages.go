package protocol

// Message types: Server → Client
const (
	MsgLobbyUpdate    = "lobby_update"
	MsgGameState      = "game_state"
	MsgPlayerState    = "player_state"
	MsgContractOffers = "contract_offers"
	MsgError          = "error"
	MsgEvent          = "event"
)

// Message types: Client → Server
const (
	MsgJoin      = "join"
	MsgReady     = "ready"
	MsgStartGame = "start_game"
	MsgGetOffers = "get_offers"
	// In-game moves use the same names as engine ActionType
	MsgStartingContract = "starting_contract"
	MsgPrivateContract  = "private_contract"
	MsgMarketContract   = "market_contract"
	MsgClaimMarket      = "claim_market"
	MsgAddContract      = "add_contract"
	MsgToggleFulfilled  = "toggle_fulfilled"
	MsgDeleteContract   = "delete_contract"
	MsgAcquireRailroad  = "acquire_railroad"
	MsgAddCity          = "add_city"
	MsgEndTurn          = "end_turn"
)

// LobbyUpdate is sent to all clients when lobby state changes.
type LobbyUpdate struct {
	GameCode string        `json:"game_code"`
	Host     string        `json:"host"`
	Players  []LobbyPlayer `json:"players"`
	Started  bool          `json:"started"`
}

type LobbyPlayer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
}

// JoinMsg is sent by a player to join the session.
type JoinMsg struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

// ReadyMsg is sent by a player to toggle ready state.
type ReadyMsg struct {
	Ready bool `json:"ready"`
}

// GetOffersMsg requests private-contract offers for a pick-one flow.
type GetOffersMsg struct {
	Count int `json:"count"`
}

// ContractOffers carries the generated offers back to the requester.
type ContractOffers struct {
	Offers []ContractOffer `json:"offers"`
}

type ContractOffer struct {
	Commodity   string `json:"commodity"`
	Destination string `json:"destination"`
}

// ErrorMsg is sent to a client on error.
type ErrorMsg struct {
	Message string `json:"message"`
}
