package lobby

import (
	"fmt"
	"sync"
)

// PlayerInfo holds lobby-level player information.
type PlayerInfo struct {
	ID    string
	Name  string
	Ready bool
}

// Lobby is a bring-your-own-device session waiting for players. The
// first player to join becomes the host; only the host may start the
// session.
type Lobby struct {
	mu         sync.Mutex
	Code       string
	HostID     string
	Players    []*PlayerInfo
	MaxPlayers int
	MinPlayers int
	Started    bool
}

// NewLobby creates a lobby for the given game code.
func NewLobby(code string) *Lobby {
	return &Lobby{
		Code:       code,
		MaxPlayers: 4,
		MinPlayers: 2,
	}
}

// Join adds a player. The first joiner becomes host.
func (l *Lobby) Join(id, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.Started {
		return fmt.Errorf("session already started")
	}
	if len(l.Players) >= l.MaxPlayers {
		return fmt.Errorf("session is full")
	}
	for _, p := range l.Players {
		if p.ID == id {
			p.Name = name // reconnect with a new name
			return nil
		}
	}
	l.Players = append(l.Players, &PlayerInfo{ID: id, Name: name})
	if l.HostID == "" {
		l.HostID = id
	}
	return nil
}

// Leave removes a player. The host role passes to the next seat.
func (l *Lobby) Leave(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, p := range l.Players {
		if p.ID == id {
			l.Players = append(l.Players[:i], l.Players[i+1:]...)
			break
		}
	}
	if l.HostID == id {
		l.HostID = ""
		if len(l.Players) > 0 {
			l.HostID = l.Players[0].ID
		}
	}
}

// SetReady toggles a player's ready state.
func (l *Lobby) SetReady(id string, ready bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.Players {
		if p.ID == id {
			p.Ready = ready
			return
		}
	}
}

// CanStart returns true if enough players are ready.
func (l *Lobby) CanStart() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.Players) < l.MinPlayers {
		return false
	}
	for _, p := range l.Players {
		if !p.Ready {
			return false
		}
	}
	return true
}

// Start marks the session started. Only the host may start.
func (l *Lobby) Start(byID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.Started {
		return fmt.Errorf("already started")
	}
	if byID != l.HostID {
		return fmt.Errorf("only the host can start the session")
	}
	if len(l.Players) < l.MinPlayers {
		return fmt.Errorf("not enough players")
	}
	l.Started = true
	return nil
}

// GetPlayers returns a copy of the player list in join order.
func (l *Lobby) GetPlayers() []PlayerInfo {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]PlayerInfo, len(l.Players))
	for i, p := range l.Players {
		out[i] = *p
	}
	return out
}

// Host returns the current host's player ID.
func (l *Lobby) Host() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.HostID
}
