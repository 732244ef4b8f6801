// Package storage provides SQLite-based persistence for finished games.
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

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// Result is the outcome of one finished game.
type Result struct {
	Setting    int // countdown setting the game was played with
	Score      int
	Dandelions int
	Berries    int
	Player     string // SSH user name, empty for local play
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID         int64
	Setting    int
	Score      int
	Dandelions int
	Berries    int
	Player     string
	CreatedAt  time.Time
}

// Totals aggregates every recorded game.
type Totals struct {
	Games      int
	Dandelions int
	Berries    int
	BestScore  int
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			setting INTEGER NOT NULL,
			score INTEGER NOT NULL,
			dandelions INTEGER NOT NULL DEFAULT 0,
			berries INTEGER NOT NULL DEFAULT 0,
			player TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_setting ON scores(setting);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(setting, score DESC);
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

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO scores (setting, score, dandelions, berries, player)
		 VALUES (?, ?, ?, ?, ?)`,
		r.Setting, r.Score, r.Dandelions, r.Berries, r.Player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for a countdown setting.
// Results are ordered by score descending, older first on ties.
func (s *Store) TopScores(setting, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, setting, score, dandelions, berries, player, created_at
		 FROM scores
		 WHERE setting = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		setting, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Setting, &e.Score, &e.Dandelions, &e.Berries, &e.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for a countdown setting.
// Returns 0 if no scores exist.
func (s *Store) HighScore(setting int) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE setting = ?",
		setting,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Settings returns the countdown settings that have recorded scores, ascending.
func (s *Store) Settings() ([]int, error) {
	rows, err := s.db.Query("SELECT DISTINCT setting FROM scores ORDER BY setting")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query settings: %w", err)
	}
	defer rows.Close()

	var settings []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		settings = append(settings, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return settings, nil
}

// Totals sums up every recorded game.
func (s *Store) Totals() (Totals, error) {
	var t Totals
	var dandelions, berries, best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT COUNT(*), SUM(dandelions), SUM(berries), MAX(score) FROM scores",
	).Scan(&t.Games, &dandelions, &berries, &best)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot query totals: %w", err)
	}

	t.Dandelions = int(dandelions.Int64)
	t.Berries = int(berries.Int64)
	t.BestScore = int(best.Int64)
	return t, nil
}

// ClearScores deletes all scores for a countdown setting.
func (s *Store) ClearScores(setting int) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE setting = ?", setting)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
