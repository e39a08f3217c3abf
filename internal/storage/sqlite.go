// Package storage provides SQLite-based persistence for recorded game sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a replay ID does not exist.
var ErrNotFound = errors.New("storage: replay not found")

// Outcome values for a finished recording.
const (
	OutcomeLost = "lost"
	OutcomeWon  = "won"
	OutcomeQuit = "quit" // Session ended before a terminal state
)

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db *sql.DB
}

// Replay is the header of a recorded session.
type Replay struct {
	ID        string
	GameID    string
	Seed      int64
	TickRate  int
	Ticks     int    // Simulation ticks fed to the game, including empty ones
	Score     int    // Score when recording stopped
	Outcome   string // One of the Outcome constants
	FinalHash uint64 // Game.Hash() when recording stopped
	CreatedAt time.Time
}

// Frame is one non-empty input frame of a recording.
type Frame struct {
	Tick       int    // 1-based tick the input was applied on
	Mask       uint32 // core.InputFrame.Mask()
	Pointer    float64
	HasPointer bool
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS replays (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			final_hash INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_game_id ON replays(game_id);
		CREATE INDEX IF NOT EXISTS idx_replays_created ON replays(created_at DESC);

		CREATE TABLE IF NOT EXISTS replay_frames (
			replay_id TEXT NOT NULL REFERENCES replays(id) ON DELETE CASCADE,
			tick INTEGER NOT NULL,
			mask INTEGER NOT NULL,
			pointer REAL NOT NULL DEFAULT 0,
			has_pointer INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (replay_id, tick)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveReplay stores a recording in a single transaction. An empty r.ID is
// replaced by a new UUID. Returns the ID of the stored replay.
func (s *Store) SaveReplay(r Replay, frames []Frame) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.Exec(
		`INSERT INTO replays (id, game_id, seed, tick_rate, ticks, score, outcome, final_hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GameID, r.Seed, r.TickRate, r.Ticks, r.Score, r.Outcome,
		int64(r.FinalHash), //#nosec G115 -- stored bit pattern, restored on load
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save replay: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO replay_frames (replay_id, tick, mask, pointer, has_pointer) VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot prepare frame insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range frames {
		if _, err := stmt.Exec(r.ID, f.Tick, int64(f.Mask), f.Pointer, f.HasPointer); err != nil {
			return "", fmt.Errorf("storage: cannot save frame %d: %w", f.Tick, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit replay: %w", err)
	}
	return r.ID, nil
}

// ListReplays returns replay headers, newest first. An empty gameID lists
// every game. A non-positive limit defaults to 50.
func (s *Store) ListReplays(gameID string, limit int) ([]Replay, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, game_id, seed, tick_rate, ticks, score, outcome, final_hash, created_at
		 FROM replays`
	args := []any{}
	if gameID != "" {
		query += ` WHERE game_id = ?`
		args = append(args, gameID)
	}
	query += ` ORDER BY created_at DESC, rowid DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var replays []Replay
	for rows.Next() {
		r, err := scanReplay(rows)
		if err != nil {
			return nil, err
		}
		replays = append(replays, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return replays, nil
}

// LoadReplay returns a replay header and its frames in tick order.
// Returns ErrNotFound if id does not exist.
func (s *Store) LoadReplay(id string) (Replay, []Frame, error) {
	row := s.db.QueryRow(
		`SELECT id, game_id, seed, tick_rate, ticks, score, outcome, final_hash, created_at
		 FROM replays
		 WHERE id = ?`,
		id,
	)
	r, err := scanReplay(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Replay{}, nil, ErrNotFound
	}
	if err != nil {
		return Replay{}, nil, err
	}

	rows, err := s.db.Query(
		`SELECT tick, mask, pointer, has_pointer
		 FROM replay_frames
		 WHERE replay_id = ?
		 ORDER BY tick`,
		id,
	)
	if err != nil {
		return Replay{}, nil, fmt.Errorf("storage: cannot query frames: %w", err)
	}
	defer rows.Close()

	var frames []Frame
	for rows.Next() {
		var f Frame
		var mask int64
		if err := rows.Scan(&f.Tick, &mask, &f.Pointer, &f.HasPointer); err != nil {
			return Replay{}, nil, fmt.Errorf("storage: cannot scan frame: %w", err)
		}
		f.Mask = uint32(mask) //#nosec G115 -- written from a uint32
		frames = append(frames, f)
	}

	if err := rows.Err(); err != nil {
		return Replay{}, nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return r, frames, nil
}

// DeleteReplay removes a replay and its frames.
// Returns ErrNotFound if id does not exist.
func (s *Store) DeleteReplay(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec("DELETE FROM replay_frames WHERE replay_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete frames: %w", err)
	}
	res, err := tx.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanReplay(row scanner) (Replay, error) {
	var r Replay
	var hash int64
	var createdAt any
	err := row.Scan(&r.ID, &r.GameID, &r.Seed, &r.TickRate, &r.Ticks, &r.Score, &r.Outcome, &hash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	r.FinalHash = uint64(hash) //#nosec G115 -- restores the stored bit pattern
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
