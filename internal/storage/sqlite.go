// Package storage provides SQLite-based persistence for episode results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for episode persistence.
type Store struct {
	db *sql.DB
}

// EpisodeResult records one completed (or truncated) episode.
type EpisodeResult struct {
	ID          int64
	EpisodeID   string // UUID assigned by the environment at reset
	EnvID       string // Registry identifier, e.g. "agario-grid-v0"
	Difficulty  string
	Steps       int
	TotalReward float64
	Terminated  bool // False when the rollout hit its step limit
	CreatedAt   time.Time
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
		CREATE TABLE IF NOT EXISTS episodes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			episode_id TEXT NOT NULL UNIQUE,
			env_id TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			steps INTEGER NOT NULL,
			total_reward REAL NOT NULL,
			terminated INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_episodes_env_id ON episodes(env_id);
		CREATE INDEX IF NOT EXISTS idx_episodes_top ON episodes(env_id, total_reward DESC);
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

// SaveEpisode records a completed episode. Returns the row ID.
func (s *Store) SaveEpisode(r EpisodeResult) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO episodes (episode_id, env_id, difficulty, steps, total_reward, terminated)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.EpisodeID, r.EnvID, r.Difficulty, r.Steps, r.TotalReward, r.Terminated,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save episode: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopEpisodes retrieves the best episodes for an environment, ordered by
// total reward descending.
func (s *Store) TopEpisodes(envID string, limit int) ([]EpisodeResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, episode_id, env_id, difficulty, steps, total_reward, terminated, created_at
		 FROM episodes
		 WHERE env_id = ?
		 ORDER BY total_reward DESC
		 LIMIT ?`,
		envID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query episodes: %w", err)
	}
	defer rows.Close()

	var results []EpisodeResult
	for rows.Next() {
		r, err := scanEpisode(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// EnvStats contains aggregated statistics for one environment ID.
type EnvStats struct {
	EnvID      string
	Episodes   int
	BestReward float64
	AvgReward  float64
	AvgSteps   float64
}

// Stats retrieves aggregated episode statistics for an environment.
func (s *Store) Stats(envID string) (*EnvStats, error) {
	stats := &EnvStats{EnvID: envID}
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(total_reward), 0), COALESCE(AVG(total_reward), 0), COALESCE(AVG(steps), 0)
		 FROM episodes WHERE env_id = ?`,
		envID,
	).Scan(&stats.Episodes, &stats.BestReward, &stats.AvgReward, &stats.AvgSteps)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return stats, nil
}

// ClearEpisodes deletes all recorded episodes for an environment.
func (s *Store) ClearEpisodes(envID string) error {
	_, err := s.db.Exec("DELETE FROM episodes WHERE env_id = ?", envID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear episodes: %w", err)
	}
	return nil
}

func scanEpisode(rows *sql.Rows) (EpisodeResult, error) {
	var r EpisodeResult
	var createdAt any
	if err := rows.Scan(&r.ID, &r.EpisodeID, &r.EnvID, &r.Difficulty,
		&r.Steps, &r.TotalReward, &r.Terminated, &createdAt); err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}
	return r, nil
}
