package server

import (
	"encoding/json"
	"log"
	"strconv"
	"sync"

	"railhand/internal/board"
	"railhand/internal/engine"
	"railhand/internal/lobby"
	"railhand/internal/persistence"
	"railhand/internal/protocol"
	"railhand/internal/rng"
)

// Hub manages WebSocket connections and game state for one session.
// Moves are applied on the hub goroutine, one at a time, so the engine
// never sees interleaved mutations. Saving is fire-and-forget: a
// failed save is logged and the in-memory state stays authoritative.
type Hub struct {
	mu       sync.Mutex
	gameCode string
	lobby    *lobby.Lobby
	store    *persistence.Store
	boardIx  *board.Index
	seed     uint64

	game  *engine.Game
	seats map[string]string // lobby player ID -> engine seat ID

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	incoming   chan IncomingMessage
	quit       chan struct{}
}

func NewHub(gameCode string, lob *lobby.Lobby, store *persistence.Store, ix *board.Index, seed uint64) *Hub {
	return &Hub{
		gameCode:   gameCode,
		lobby:      lob,
		store:      store,
		boardIx:    ix,
		seed:       seed,
		seats:      make(map[string]string),
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan IncomingMessage, 256),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.sendLobbyUpdate()
			if h.game != nil {
				h.sendStateToClient(client)
			}

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case msg := <-h.incoming:
			h.handleMessage(msg)

		case <-h.quit:
			return
		}
	}
}

func (h *Hub) handleMessage(msg IncomingMessage) {
	switch {
	case msg.Envelope.Type == protocol.MsgJoin:
		h.handleJoin(msg)
	case msg.Envelope.Type == protocol.MsgReady:
		h.handleReady(msg)
	case msg.Envelope.Type == protocol.MsgStartGame:
		h.handleStartGame(msg)
	case msg.Envelope.Type == protocol.MsgGetOffers:
		h.handleGetOffers(msg)
	case protocol.IsMove(msg.Envelope.Type):
		h.handleMove(msg)
	default:
		h.sendError(msg.Client, "unknown message type")
	}
}

func (h *Hub) handleJoin(msg IncomingMessage) {
	var join protocol.JoinMsg
	if err := msg.Envelope.Decode(&join); err != nil {
		h.sendError(msg.Client, "invalid join message")
		return
	}
	msg.Client.PlayerID = join.PlayerID
	if err := h.lobby.Join(join.PlayerID, join.Name); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	h.sendLobbyUpdate()
}

func (h *Hub) handleReady(msg IncomingMessage) {
	var ready protocol.ReadyMsg
	if err := msg.Envelope.Decode(&ready); err != nil {
		h.sendError(msg.Client, "invalid ready message")
		return
	}
	h.lobby.SetReady(msg.Client.PlayerID, ready.Ready)
	h.sendLobbyUpdate()
}

// handleStartGame creates the engine game in waiting_for_players and
// immediately marks the session started by the host, which moves it
// into setup.
func (h *Hub) handleStartGame(msg IncomingMessage) {
	if h.game != nil {
		h.sendError(msg.Client, "game already started")
		return
	}
	if !h.lobby.CanStart() {
		h.sendError(msg.Client, "not all players ready")
		return
	}
	if err := h.lobby.Start(msg.Client.PlayerID); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}

	// Seats follow lobby join order; seat IDs are the turn-order keys.
	lobbyPlayers := h.lobby.GetPlayers()
	players := make([]*engine.Player, len(lobbyPlayers))
	for i, lp := range lobbyPlayers {
		seat := strconv.Itoa(i)
		h.seats[lp.ID] = seat
		players[i] = engine.NewPlayer(seat, lp.Name)
	}

	h.game = engine.New(players, engine.DefaultConfig(), h.boardIx, rng.New(h.seed), true)
	events := h.game.StartSession()

	h.saveState()
	h.broadcastEvents(events)
	h.broadcastState()
}

func (h *Hub) handleGetOffers(msg IncomingMessage) {
	if h.game == nil {
		h.sendError(msg.Client, "game not started")
		return
	}
	var req protocol.GetOffersMsg
	if err := msg.Envelope.Decode(&req); err != nil || req.Count <= 0 {
		req.Count = 2
	}
	offers := h.game.GeneratePrivateContractOffers(req.Count)
	out := protocol.ContractOffers{}
	for _, o := range offers {
		out.Offers = append(out.Offers, protocol.ContractOffer{
			Commodity:   o.Commodity,
			Destination: o.Destination,
		})
	}
	msg.Client.Send(protocol.Encode(protocol.MsgContractOffers, out))
}

func (h *Hub) handleMove(msg IncomingMessage) {
	if h.game == nil {
		h.sendError(msg.Client, "game not started")
		return
	}
	seat, ok := h.seats[msg.Client.PlayerID]
	if !ok {
		h.sendError(msg.Client, "not seated in this game")
		return
	}

	action := engine.Action{Type: engine.ActionType(msg.Envelope.Type)}
	if len(msg.Envelope.Payload) > 0 {
		if err := msg.Envelope.Decode(&action); err != nil {
			h.sendError(msg.Client, "invalid move payload")
			return
		}
		action.Type = engine.ActionType(msg.Envelope.Type)
	}

	events, err := h.game.Apply(seat, action)
	if err != nil {
		// Rejections are expected outcomes: state unchanged, caller informed.
		log.Printf("game %s: move %s by seat %s rejected: %v", h.gameCode, action.Type, seat, err)
		h.sendError(msg.Client, err.Error())
		return
	}

	h.saveState()
	h.broadcastEvents(events)
	h.broadcastState()
}

// saveState snapshots the game and writes it asynchronously. The
// marshal happens here on the hub goroutine, before the next move can
// touch the state; only the immutable bytes cross into the goroutine.
// Failures never roll back or block the in-memory mutation.
func (h *Hub) saveState() {
	if h.store == nil || h.game == nil {
		return
	}
	state, err := json.Marshal(h.game)
	if err != nil {
		log.Printf("game %s: snapshot failed: %v", h.gameCode, err)
		return
	}
	phase := string(h.game.Phase)
	go func() {
		if err := h.store.SaveGameState(h.gameCode, phase, state); err != nil {
			log.Printf("game %s: save failed: %v", h.gameCode, err)
		}
	}()
}

func (h *Hub) broadcastEvents(events []engine.Event) {
	for _, ev := range events {
		h.broadcastAll(protocol.Encode(protocol.MsgEvent, ev))
	}
}

func (h *Hub) broadcastState() {
	if h.game == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		h.sendStateToClient(client)
	}
}

func (h *Hub) sendStateToClient(client *Client) {
	if h.game == nil {
		return
	}
	client.SendState(h.game, h.seats[client.PlayerID])
}

func (h *Hub) sendLobbyUpdate() {
	players := h.lobby.GetPlayers()
	lps := make([]protocol.LobbyPlayer, len(players))
	for i, p := range players {
		lps[i] = protocol.LobbyPlayer{ID: p.ID, Name: p.Name, Ready: p.Ready}
	}
	h.broadcastAll(protocol.Encode(protocol.MsgLobbyUpdate, protocol.LobbyUpdate{
		GameCode: h.gameCode,
		Host:     h.lobby.Host(),
		Players:  lps,
		Started:  h.lobby.Started,
	}))
}

func (h *Hub) broadcastAll(env protocol.Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.Send(env)
	}
}

func (h *Hub) sendError(client *Client, message string) {
	client.Send(protocol.Encode(protocol.MsgError, protocol.ErrorMsg{Message: message}))
}
