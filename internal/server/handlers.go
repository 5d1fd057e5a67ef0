package server

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"railhand/internal/board"
	"railhand/internal/lobby"
	"railhand/internal/persistence"
	"railhand/internal/qrcode"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handlers holds HTTP handler dependencies. The hub registry is
// shared across request goroutines and guarded by mu.
type Handlers struct {
	mu       sync.Mutex
	hubs     map[string]*Hub
	LobbyMgr *lobby.Manager
	Store    *persistence.Store
	Board    *board.Index
	Seed     uint64
	Port     int
}

func NewHandlers(port int, store *persistence.Store, seed uint64) *Handlers {
	return &Handlers{
		hubs:     make(map[string]*Hub),
		LobbyMgr: lobby.NewManager(),
		Store:    store,
		Board:    board.Load(),
		Seed:     seed,
		Port:     port,
	}
}

func (h *Handlers) addHub(code string, hub *Hub) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hubs[code] = hub
}

func (h *Handlers) getHub(code string) *Hub {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hubs[code]
}

// HandleCreateGame creates a new session and redirects to the host screen.
func (h *Handlers) HandleCreateGame(w http.ResponseWriter, r *http.Request) {
	code := h.LobbyMgr.Create()
	lob := h.LobbyMgr.Get(code)
	if h.Store != nil {
		h.Store.SetGameCode(code)
	}
	hub := NewHub(code, lob, h.Store, h.Board, h.Seed)
	h.addHub(code, hub)
	go hub.Run()

	http.Redirect(w, r, fmt.Sprintf("/host.html?game=%s", code), http.StatusSeeOther)
}

// HandleQR serves the session's join link as a QR code PNG.
func (h *Handlers) HandleQR(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("game")
	if code == "" {
		http.Error(w, "missing game parameter", http.StatusBadRequest)
		return
	}
	png, err := qrcode.JoinPNG(r.Host, code)
	if err != nil {
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// HandleWS handles WebSocket connections.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("game")
	playerID := r.URL.Query().Get("player")
	clientType := r.URL.Query().Get("type") // "host" or "player"

	if code == "" {
		http.Error(w, "missing game parameter", http.StatusBadRequest)
		return
	}
	hub := h.getHub(code)
	if hub == nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	ct := ClientPlayer
	if clientType == "host" {
		ct = ClientHostScreen
	}

	client := NewClient(hub, conn, playerID, ct)
	hub.register <- client

	go client.WritePump()
	go client.ReadPump()
}

// HandlePlayerID returns a new player ID for a joining device.
func (h *Handlers) HandlePlayerID(w http.ResponseWriter, r *http.Request) {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(hex.EncodeToString(b)))
}
