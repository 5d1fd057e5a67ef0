package lobby

import "testing"

func TestJoinAndHost(t *testing.T) {
	l := NewLobby("ab12")
	if err := l.Join("p1", "Ada"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if l.Host() != "p1" {
		t.Errorf("first joiner should be host, got %q", l.Host())
	}
	if err := l.Join("p2", "Grace"); err != nil {
		t.Fatalf("join: %v", err)
	}
	// Rejoin updates the name without duplicating the seat.
	if err := l.Join("p1", "Ada L"); err != nil {
		t.Fatalf("rejoin: %v", err)
	}
	if got := len(l.GetPlayers()); got != 2 {
		t.Errorf("players: got %d, want 2", got)
	}
}

func TestStartRules(t *testing.T) {
	l := NewLobby("ab12")
	l.Join("p1", "Ada")
	l.Join("p2", "Grace")

	if l.CanStart() {
		t.Error("unready players should block start")
	}
	l.SetReady("p1", true)
	l.SetReady("p2", true)
	if !l.CanStart() {
		t.Error("all ready should allow start")
	}

	if err := l.Start("p2"); err == nil {
		t.Error("non-host start should fail")
	}
	if err := l.Start("p1"); err != nil {
		t.Fatalf("host start: %v", err)
	}
	if err := l.Start("p1"); err == nil {
		t.Error("double start should fail")
	}
	if err := l.Join("p3", "Alan"); err == nil {
		t.Error("join after start should fail")
	}
}

func TestHostHandoff(t *testing.T) {
	l := NewLobby("ab12")
	l.Join("p1", "Ada")
	l.Join("p2", "Grace")
	l.Leave("p1")
	if l.Host() != "p2" {
		t.Errorf("host should pass to next seat, got %q", l.Host())
	}
}

func TestManager(t *testing.T) {
	m := NewManager()
	code := m.Create()
	if code == "" {
		t.Fatal("empty game code")
	}
	if m.Get(code) == nil {
		t.Error("created lobby not found")
	}
	if m.Get("missing") != nil {
		t.Error("unknown code should return nil")
	}
}
