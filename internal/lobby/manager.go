package lobby

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// Manager manages the lobbies hosted by this server, keyed by game code.
type Manager struct {
	mu      sync.Mutex
	lobbies map[string]*Lobby
}

func NewManager() *Manager {
	return &Manager{lobbies: make(map[string]*Lobby)}
}

// Create creates a new lobby and returns its game code.
func (m *Manager) Create() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	code := generateCode()
	m.lobbies[code] = NewLobby(code)
	return code
}

// Get returns a lobby by game code.
func (m *Manager) Get(code string) *Lobby {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lobbies[code]
}

func generateCode() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
