// Package history keeps a local journal of generation runs.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Run is one recorded generation run.
type Run struct {
	ID         string
	CreatedAt  time.Time
	InputPath  string
	OutputPath string
	Style      string
	Modules    int
	Topics     int
	Records    int
	Enriched   bool
	DurationMS int64
}

// Store persists runs in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open creates a Store at the given database path, creating the schema
// on first use.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS runs (
		id          TEXT PRIMARY KEY,
		created_at  DATETIME NOT NULL,
		input_path  TEXT NOT NULL,
		output_path TEXT NOT NULL,
		style       TEXT NOT NULL,
		modules     INTEGER NOT NULL,
		topics      INTEGER NOT NULL,
		records     INTEGER NOT NULL,
		enriched    INTEGER NOT NULL DEFAULT 0,
		duration_ms INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
	`)
	return err
}

// Append records a run. A zero ID and CreatedAt are filled in.
func (s *Store) Append(ctx context.Context, run Run) (Run, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
	INSERT INTO runs (id, created_at, input_path, output_path, style,
		modules, topics, records, enriched, duration_ms)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt, run.InputPath, run.OutputPath, run.Style,
		run.Modules, run.Topics, run.Records, run.Enriched, run.DurationMS)
	if err != nil {
		return Run{}, fmt.Errorf("append run: %w", err)
	}
	return run, nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, created_at, input_path, output_path, style,
		modules, topics, records, enriched, duration_ms
	FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.InputPath, &r.OutputPath,
			&r.Style, &r.Modules, &r.Topics, &r.Records, &r.Enriched,
			&r.DurationMS); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// DefaultDBPath resolves the journal path in priority order:
// 1. DSAGEN_HISTORY_DB environment variable
// 2. $XDG_DATA_HOME/dsagen/history.db
// 3. ~/.local/share/dsagen/history.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("DSAGEN_HISTORY_DB"); p != "" {
		return p, ensureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "dsagen", "history.db")
	return p, ensureDir(p)
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
