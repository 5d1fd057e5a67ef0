// Package persistence stores game-state snapshots in SQLite, keyed by
// game code. Saving is best-effort: the in-memory state stays
// authoritative and a failed save is only logged by callers.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"railhand/internal/engine"
)

// ErrNotFound is returned when no snapshot exists for a game code.
var ErrNotFound = errors.New("no saved game for code")

// Store wraps a SQLite connection for game snapshots.
type Store struct {
	conn *sqlx.DB
	code string
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS games (
		code TEXT PRIMARY KEY,
		phase TEXT NOT NULL,
		state TEXT NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// SetGameCode records the code of the session this store serves.
func (s *Store) SetGameCode(code string) {
	s.code = code
}

// CurrentGameCode returns the code set for this session, or "".
func (s *Store) CurrentGameCode() string {
	return s.code
}

// SaveGameState writes one pre-serialized snapshot for the code
// (upsert). Callers marshal the game on its owning goroutine before
// handing the bytes off, so the snapshot is a single point in time and
// the write never observes a half-applied move.
func (s *Store) SaveGameState(code, phase string, state []byte) error {
	_, err := s.conn.Exec(`
		INSERT INTO games (code, phase, state, updated_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT(code) DO UPDATE SET
			phase = excluded.phase,
			state = excluded.state,
			updated_at = excluded.updated_at`,
		code, phase, string(state))
	if err != nil {
		return fmt.Errorf("save game %s: %w", code, err)
	}
	return nil
}

// LoadGameState reads the snapshot for a code into a Game shell. The
// caller still has to attach board, rng, and config.
func (s *Store) LoadGameState(code string) (*engine.Game, error) {
	var state string
	err := s.conn.Get(&state, "SELECT state FROM games WHERE code = ?", code)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load game %s: %w", code, err)
	}
	var g engine.Game
	if err := json.Unmarshal([]byte(state), &g); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	return &g, nil
}
