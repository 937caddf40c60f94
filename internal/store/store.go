// Package store persists quest results, the player profile, and LLM
// request events in a local SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite connection and provides access to repositories.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies recommended
// pragmas, and creates any missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ResultRepo returns the quest result repository backed by this store.
func (s *Store) ResultRepo() ResultRepo {
	return &resultRepo{db: s.db}
}

// ProfileRepo returns the profile repository backed by this store.
func (s *Store) ProfileRepo() ProfileRepo {
	return &profileRepo{db: s.db}
}

// EventRepo returns the LLM event repository backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db}
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// migrate creates the schema if it does not exist.
func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS quest_results (
			id TEXT PRIMARY KEY,
			quest_type TEXT NOT NULL,
			score INTEGER NOT NULL,
			accuracy REAL NOT NULL,
			xp_earned INTEGER NOT NULL,
			items_completed INTEGER NOT NULL,
			errors INTEGER NOT NULL,
			max_combo INTEGER NOT NULL,
			best_latency_ms INTEGER NOT NULL,
			avg_latency_ms INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			completed_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quest_results_type ON quest_results (quest_type)`,
		`CREATE INDEX IF NOT EXISTS idx_quest_results_completed ON quest_results (completed_at)`,
		`CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			xp_points INTEGER NOT NULL DEFAULT 0,
			current_level INTEGER NOT NULL DEFAULT 1,
			focus_score INTEGER NOT NULL DEFAULT 0,
			memory_score INTEGER NOT NULL DEFAULT 0,
			speed_score INTEGER NOT NULL DEFAULT 0,
			switch_score INTEGER NOT NULL DEFAULT 0,
			calm_score INTEGER NOT NULL DEFAULT 0,
			streak_days INTEGER NOT NULL DEFAULT 0,
			last_played_at TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS llm_requests (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			provider TEXT NOT NULL,
			model TEXT NOT NULL,
			purpose TEXT NOT NULL,
			input_tokens INTEGER NOT NULL,
			output_tokens INTEGER NOT NULL,
			latency_ms INTEGER NOT NULL,
			success INTEGER NOT NULL,
			error_message TEXT NOT NULL DEFAULT '',
			request_body TEXT NOT NULL DEFAULT '',
			response_body TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. NEUROQUEST_DB environment variable
// 2. $XDG_DATA_HOME/neuroquest/neuroquest.db
// 3. ~/.local/share/neuroquest/neuroquest.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("NEUROQUEST_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "neuroquest", "neuroquest.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
