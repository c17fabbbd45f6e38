package report

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS extractions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL,
    utterance TEXT NOT NULL,
    words TEXT NOT NULL,
    output TEXT,
    start_s REAL,
    end_s REAL,
    status TEXT NOT NULL,
    error TEXT,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_extractions_run ON extractions(run_id);`

// Store persists report entries in SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens the report database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create report directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// Record inserts entries in a single transaction.
func (s *Store) Record(ctx context.Context, entries []Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, e := range entries {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO extractions (run_id, utterance, words, output, start_s, end_s, status, error, created_at)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.RunID, e.Utterance, strings.Join(e.Words, " "),
			nullable(e.Output), e.Start, e.End, e.Status, nullable(e.Error), now,
		)
		if err != nil {
			return fmt.Errorf("insert %s: %w", e.Utterance, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Run returns the entries recorded for runID in insertion order.
func (s *Store) Run(ctx context.Context, runID string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, utterance, words, output, start_s, end_s, status, error
         FROM extractions WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query run %s: %w", runID, err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e              Entry
			words          string
			output, errMsg sql.NullString
		)
		if err := rows.Scan(&e.RunID, &e.Utterance, &words, &output, &e.Start, &e.End, &e.Status, &errMsg); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.Words = strings.Fields(words)
		e.Output = output.String
		e.Error = errMsg.String
		out = append(out, e)
	}
	return out, rows.Err()
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
