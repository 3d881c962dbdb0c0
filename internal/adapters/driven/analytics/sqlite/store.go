// Package sqlite records answered searches in a local SQLite database,
// for the same purpose the hosted variant of this bot indexed queries
// into a search cluster: knowing what people look for.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/tolarian-archive/scryglass/internal/core/domain"
	"github.com/tolarian-archive/scryglass/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.AnalyticsStore = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS searches (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	searched_at TEXT NOT NULL,
	user_id INTEGER NOT NULL,
	query TEXT NOT NULL,
	page INTEGER NOT NULL,
	results INTEGER NOT NULL,
	next_offset TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_searches_query ON searches(query);
`

// Store is a SQLite-backed analytics sink.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the analytics database at path.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("sqlite: empty database path")
	}

	// WAL keeps concurrent inserts from different requests cheap.
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: create schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// RecordSearch persists a single search event.
func (s *Store) RecordSearch(ctx context.Context, event domain.SearchEvent) error {
	when := event.Time
	if when.IsZero() {
		when = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO searches (searched_at, user_id, query, page, results, next_offset)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		when.UTC().Format(time.RFC3339), event.UserID, event.Query,
		event.Offset, event.Results, event.NextOffset)
	if err != nil {
		return fmt.Errorf("sqlite: record search: %w", err)
	}

	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}
