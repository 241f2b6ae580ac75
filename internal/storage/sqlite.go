// Package storage keeps a history of finished Pongora sessions in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/skies-of-pongora/internal/core"
)

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// SessionSummary is one finished play session.
type SessionSummary struct {
	ID                int64
	GameID            string
	Seed              int64
	Duration          time.Duration
	Frames            uint64
	BricksDestroyed   int
	Flips             int
	RainbowToggles    int
	Bounces           int
	WallBounces       int
	PortalTransitions int
	Score             int
	CreatedAt         time.Time
}

// NewSessionSummary builds a summary from the counters a game reports.
func NewSessionSummary(gameID string, seed int64, score int, stats core.SessionStats) SessionSummary {
	return SessionSummary{
		GameID:            gameID,
		Seed:              seed,
		Duration:          time.Duration(stats.Elapsed * float64(time.Second)),
		Frames:            stats.Frames,
		BricksDestroyed:   stats.BricksDestroyed,
		Flips:             stats.Flips,
		RainbowToggles:    stats.RainbowToggles,
		Bounces:           stats.Bounces,
		WallBounces:       stats.WallBounces,
		PortalTransitions: stats.PortalTransitions,
		Score:             score,
	}
}

// Totals aggregates every session of one game.
type Totals struct {
	GameID          string
	Sessions        int
	BestScore       int
	BricksDestroyed int64
	Flips           int64
	PlayTime        time.Duration
	LastPlayed      time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			frames INTEGER NOT NULL DEFAULT 0,
			bricks_destroyed INTEGER NOT NULL DEFAULT 0,
			flips INTEGER NOT NULL DEFAULT 0,
			rainbow_toggles INTEGER NOT NULL DEFAULT 0,
			bounces INTEGER NOT NULL DEFAULT 0,
			wall_bounces INTEGER NOT NULL DEFAULT 0,
			portal_transitions INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_game_id ON sessions(game_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);
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

// SaveSession records a finished session and returns its row ID.
func (s *Store) SaveSession(sum SessionSummary) (int64, error) {
	if sum.GameID == "" {
		return 0, errors.New("storage: session has no game id")
	}

	res, err := s.db.Exec(
		`INSERT INTO sessions
		 (game_id, seed, duration_ms, frames, bricks_destroyed, flips, rainbow_toggles,
		  bounces, wall_bounces, portal_transitions, score)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sum.GameID,
		sum.Seed,
		sum.Duration.Milliseconds(),
		int64(sum.Frames), // #nosec G115 -- frame counts stay far below MaxInt64
		sum.BricksDestroyed,
		sum.Flips,
		sum.RainbowToggles,
		sum.Bounces,
		sum.WallBounces,
		sum.PortalTransitions,
		sum.Score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions returns the newest sessions first. An empty gameID
// matches every game.
func (s *Store) RecentSessions(gameID string, limit int) ([]SessionSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, duration_ms, frames, bricks_destroyed, flips,
		        rainbow_toggles, bounces, wall_bounces, portal_transitions, score, created_at
		 FROM sessions
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var (
			sum       SessionSummary
			durMS     int64
			frames    int64
			createdAt any
		)
		if err := rows.Scan(
			&sum.ID,
			&sum.GameID,
			&sum.Seed,
			&durMS,
			&frames,
			&sum.BricksDestroyed,
			&sum.Flips,
			&sum.RainbowToggles,
			&sum.Bounces,
			&sum.WallBounces,
			&sum.PortalTransitions,
			&sum.Score,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sum.Duration = time.Duration(durMS) * time.Millisecond
		sum.Frames = uint64(max(frames, 0)) // #nosec G115 -- clamped above
		sum.CreatedAt = parseTime(createdAt)
		out = append(out, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// Totals returns aggregated counters for one game. A game with no
// sessions yields zero totals.
func (s *Store) Totals(gameID string) (Totals, error) {
	t := Totals{GameID: gameID}

	var (
		durMS      int64
		lastPlayed any
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(SUM(bricks_destroyed), 0),
		        COALESCE(SUM(flips), 0), COALESCE(SUM(duration_ms), 0), MAX(created_at)
		 FROM sessions WHERE game_id = ?`,
		gameID,
	).Scan(&t.Sessions, &t.BestScore, &t.BricksDestroyed, &t.Flips, &durMS, &lastPlayed)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot get totals: %w", err)
	}

	t.PlayTime = time.Duration(durMS) * time.Millisecond
	t.LastPlayed = parseTime(lastPlayed)
	return t, nil
}

// ClearSessions deletes all sessions for the given game.
func (s *Store) ClearSessions(gameID string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
