// Package storage provides SQLite-based persistence for benchmark runs and
// play scores. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Games in progress are never stored.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record from interactive play.
type ScoreEntry struct {
	ID        int64
	Mode      string // "manual" or "autoplay"
	Score     int
	MaxTile   int
	CreatedAt time.Time
}

// RunRecord summarizes one benchmark run.
type RunRecord struct {
	ID         int64
	Strategy   string
	Depth      int
	Games      int
	Wins       int
	BestTile   int
	MeanScore  float64
	DurationMS int64
	CreatedAt  time.Time
}

// WinRate returns the fraction of games won.
func (r RunRecord) WinRate() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Games)
}

// GameRecord is the outcome of a single benchmark game.
type GameRecord struct {
	ID         int64
	RunID      int64
	Index      int
	Seed       int64
	Status     string
	Won        bool
	Score      int
	MaxTile    int
	Moves      int
	DurationMS int64
}

// StrategyStats aggregates all stored runs of one strategy.
type StrategyStats struct {
	Strategy  string
	Runs      int
	Games     int
	Wins      int
	BestScore int
	BestTile  int
	LastRun   time.Time
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
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			strategy TEXT NOT NULL,
			depth INTEGER NOT NULL,
			games INTEGER NOT NULL,
			wins INTEGER NOT NULL,
			best_tile INTEGER NOT NULL DEFAULT 0,
			mean_score REAL NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_strategy ON runs(strategy);

		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			game_index INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			status TEXT NOT NULL,
			won INTEGER NOT NULL,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_games_run_id ON games(run_id);
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

// parseTime converts a scanned DATETIME column. The driver may return either
// time.Time or a string depending on how the value was written.
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

// SaveScore records a finished interactive game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(mode string, score, maxTile int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (mode, score, max_tile) VALUES (?, ?, ?)",
		mode, score, maxTile,
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

// TopScores retrieves the top N play scores, ordered by score descending.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, score, max_tile, created_at
		 FROM scores
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Score, &e.MaxTile, &createdAt); err != nil {
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

// HighScore returns the highest play score, or 0 if none exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// SaveRun records a benchmark run and its games in one transaction.
// Returns the ID of the run.
func (s *Store) SaveRun(run RunRecord, games []GameRecord) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	res, err := tx.Exec(
		`INSERT INTO runs (strategy, depth, games, wins, best_tile, mean_score, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Strategy, run.Depth, run.Games, run.Wins, run.BestTile, run.MeanScore, run.DurationMS,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO games (run_id, game_index, seed, status, won, score, max_tile, moves, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare game insert: %w", err)
	}
	defer stmt.Close()

	for _, g := range games {
		if _, err := stmt.Exec(runID, g.Index, g.Seed, g.Status, g.Won, g.Score, g.MaxTile, g.Moves, g.DurationMS); err != nil {
			return 0, fmt.Errorf("storage: cannot save game %d: %w", g.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}

	return runID, nil
}

// RecentRuns retrieves the most recent benchmark runs.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, strategy, depth, games, wins, best_tile, mean_score, duration_ms, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves a single run. Returns nil if it does not exist.
func (s *Store) RunByID(id int64) (*RunRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, strategy, depth, games, wins, best_tile, mean_score, duration_ms, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	)

	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (RunRecord, error) {
	var r RunRecord
	var createdAt any
	err := sc.Scan(&r.ID, &r.Strategy, &r.Depth, &r.Games, &r.Wins, &r.BestTile, &r.MeanScore, &r.DurationMS, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan run: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// RunGames retrieves the games of a run, ordered by game index.
func (s *Store) RunGames(runID int64) ([]GameRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, game_index, seed, status, won, score, max_tile, moves, duration_ms
		 FROM games
		 WHERE run_id = ?
		 ORDER BY game_index`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var g GameRecord
		if err := rows.Scan(&g.ID, &g.RunID, &g.Index, &g.Seed, &g.Status, &g.Won, &g.Score, &g.MaxTile, &g.Moves, &g.DurationMS); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return games, nil
}

// GetStrategyStats retrieves aggregated statistics for every strategy that
// has stored runs.
func (s *Store) GetStrategyStats() (map[string]*StrategyStats, error) {
	rows, err := s.db.Query(
		`SELECT r.strategy, COUNT(DISTINCT r.id), COUNT(g.id), COALESCE(SUM(g.won), 0),
		        COALESCE(MAX(g.score), 0), COALESCE(MAX(g.max_tile), 0), MAX(r.created_at)
		 FROM runs r
		 LEFT JOIN games g ON g.run_id = r.id
		 GROUP BY r.strategy`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get strategy stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*StrategyStats)
	for rows.Next() {
		var st StrategyStats
		var lastRun any
		if err := rows.Scan(&st.Strategy, &st.Runs, &st.Games, &st.Wins, &st.BestScore, &st.BestTile, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastRun = parseTime(lastRun)
		stats[st.Strategy] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
