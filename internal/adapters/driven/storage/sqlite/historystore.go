// Package sqlite provides SQLite-backed persistence for search
// history.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// defaultListLimit applies when List is called with a non-positive
// limit.
const defaultListLimit = 50

// schema holds the single history table. The plays column stores the
// facet filter as a JSON array to keep toggle order.
const schema = `
CREATE TABLE IF NOT EXISTS search_history (
	id         TEXT PRIMARY KEY,
	mode       TEXT NOT NULL,
	query      TEXT NOT NULL,
	plays      TEXT NOT NULL,
	total      INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_search_history_created_at
	ON search_history (created_at DESC);
`

// HistoryStore is a SQLite-based implementation of driven.HistoryStore.
type HistoryStore struct {
	db   *sql.DB
	path string
}

// NewHistoryStore creates a history store at the specified data
// directory. If dataDir is empty, defaults to ~/.folio/data/history.db.
func NewHistoryStore(dataDir string) (*HistoryStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".folio", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &HistoryStore{db: db, path: dbPath}, nil
}

// Add stores an entry.
func (s *HistoryStore) Add(ctx context.Context, entry domain.HistoryEntry) error {
	plays, err := json.Marshal(entry.SelectedPlays)
	if err != nil {
		return fmt.Errorf("marshal plays: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO search_history (id, mode, query, plays, total, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Mode.String(),
		entry.Query,
		string(plays),
		entry.Total,
		entry.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first.
func (s *HistoryStore) List(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, mode, query, plays, total, created_at
		 FROM search_history
		 ORDER BY created_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var (
			entry     domain.HistoryEntry
			mode      string
			plays     string
			createdAt string
		)
		if err := rows.Scan(&entry.ID, &mode, &entry.Query, &plays, &entry.Total, &createdAt); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}

		entry.Mode = domain.SearchMode(mode)

		if err := json.Unmarshal([]byte(plays), &entry.SelectedPlays); err != nil {
			return nil, fmt.Errorf("unmarshal plays for %s: %w", entry.ID, err)
		}

		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp for %s: %w", entry.ID, err)
		}
		entry.CreatedAt = ts

		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	return entries, nil
}

// Clear removes all entries.
func (s *HistoryStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM search_history`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *HistoryStore) Path() string {
	return s.path
}
