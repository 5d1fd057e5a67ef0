package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCreateGameRegistersHub(t *testing.T) {
	h := NewHandlers(8080, nil, 1)
	req := httptest.NewRequest(http.MethodGet, "/api/create", nil)
	rec := httptest.NewRecorder()
	h.HandleCreateGame(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	loc := rec.Header().Get("Location")
	const prefix = "/host.html?game="
	if !strings.HasPrefix(loc, prefix) {
		t.Fatalf("redirect location %q", loc)
	}
	code := strings.TrimPrefix(loc, prefix)
	if h.getHub(code) == nil {
		t.Error("created game has no registered hub")
	}
	if h.LobbyMgr.Get(code) == nil {
		t.Error("created game has no lobby")
	}
}

func TestWSUnknownGame(t *testing.T) {
	h := NewHandlers(8080, nil, 1)
	req := httptest.NewRequest(http.MethodGet, "/ws?game=nope", nil)
	rec := httptest.NewRecorder()
	h.HandleWS(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown game: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestPlayerIDUnique(t *testing.T) {
	h := NewHandlers(8080, nil, 1)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		rec := httptest.NewRecorder()
		h.HandlePlayerID(rec, httptest.NewRequest(http.MethodGet, "/api/player-id", nil))
		id := rec.Body.String()
		if len(id) != 16 {
			t.Fatalf("player id %q: want 16 hex chars", id)
		}
		if seen[id] {
			t.Fatalf("duplicate player id %q", id)
		}
		seen[id] = true
	}
}
