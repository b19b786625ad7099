// Package store persists game snapshots in SQLite so a driver can
// offer "continue game" across restarts. A load failure is not fatal:
// drivers fall back to starting a fresh game.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/minaorangina/gofish"
	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("no saved game")

const schema = `
CREATE TABLE IF NOT EXISTS games (
    id         TEXT PRIMARY KEY,
    snapshot   TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);`

// SnapshotStore is a SQLite-backed snapshot store
type SnapshotStore struct {
	db *sql.DB
}

// Open opens (creating if necessary) a snapshot store at path
func Open(path string) (*SnapshotStore, error) {
	if path == "" {
		return nil, errors.New("storage path is required")
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure games table: %w", err)
	}

	return &SnapshotStore{db: db}, nil
}

// Close closes the underlying database handle
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

// Save writes the snapshot for a game, replacing any previous save
func (s *SnapshotStore) Save(gameID string, snap gofish.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = s.db.Exec(`
INSERT INTO games (id, snapshot, updated_at) VALUES (?, ?, ?)
ON CONFLICT(id) DO UPDATE SET snapshot = excluded.snapshot, updated_at = excluded.updated_at`,
		gameID, string(data), time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot for a game. It returns ErrNotFound when no
// save exists.
func (s *SnapshotStore) Load(gameID string) (gofish.Snapshot, error) {
	var data string
	err := s.db.QueryRow(`SELECT snapshot FROM games WHERE id = ?`, gameID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return gofish.Snapshot{}, ErrNotFound
	}
	if err != nil {
		return gofish.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}

	var snap gofish.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return gofish.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

// Delete removes a saved game. Deleting a missing save is not an error.
func (s *SnapshotStore) Delete(gameID string) error {
	if _, err := s.db.Exec(`DELETE FROM games WHERE id = ?`, gameID); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}

// GameIDs lists the ids of all saved games, most recently saved first
func (s *SnapshotStore) GameIDs() ([]string, error) {
	rows, err := s.db.Query(`SELECT id FROM games ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list saved games: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list saved games: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
