package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/runger/taixiu/internal/outcome"
)

// SQLiteStore keeps the history in a single SQLite table, one row per outcome.
// Position 0 is the newest outcome.
type SQLiteStore struct {
	path      string
	db        *sql.DB
	closeOnce sync.Once // ensures Close() is idempotent
	closeErr  error     // stores the error from Close()
}

// NewSQLiteStore opens (creating if needed) the database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	// Ensure the directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	return &SQLiteStore{path: dbPath, db: db}, nil
}

func openDB(dbPath string) (*sql.DB, error) {
	// modernc.org/sqlite uses _pragma=name(value) syntax
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(DELETE)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return db, nil
}

// Location returns the database path.
func (s *SQLiteStore) Location() string {
	return s.path
}

// DB returns the underlying database connection for advanced use cases.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// Load reads all rows ordered by position.
func (s *SQLiteStore) Load() ([]outcome.Outcome, error) {
	if s.db == nil {
		return nil, ErrNotFound
	}

	ctx := context.Background()
	rows, err := s.db.QueryContext(ctx, `SELECT label FROM outcomes ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query outcomes: %w", err)
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, fmt.Errorf("failed to scan outcome: %w", err)
		}
		labels = append(labels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate outcomes: %w", err)
	}

	if len(labels) == 0 {
		return nil, ErrNotFound
	}
	return outcome.FromLabels(labels)
}

// Save replaces every row in one transaction.
func (s *SQLiteStore) Save(seq []outcome.Outcome) error {
	if s.db == nil {
		db, err := openDB(s.path)
		if err != nil {
			return err
		}
		s.db = db
	}

	ctx := context.Background()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM outcomes`); err != nil {
		return fmt.Errorf("failed to clear outcomes: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO outcomes (position, label) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, o := range seq {
		if _, err := stmt.ExecContext(ctx, i, o.String()); err != nil {
			return fmt.Errorf("failed to insert outcome %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Remove closes the connection and deletes the database file. The next Save
// recreates it.
func (s *SQLiteStore) Remove() error {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		s.db = nil
	}

	var errs []error
	for _, p := range []string{s.path, s.path + "-journal", s.path + "-wal", s.path + "-shm"} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("failed to remove database: %w", errors.Join(errs...))
	}
	return nil
}

// Close closes the database connection.
// It is safe to call Close multiple times.
func (s *SQLiteStore) Close() error {
	s.closeOnce.Do(func() {
		if s.db != nil {
			s.closeErr = s.db.Close()
			s.db = nil
		}
	})
	return s.closeErr
}

const schema = `
CREATE TABLE IF NOT EXISTS outcomes (
  position INTEGER PRIMARY KEY,
  label TEXT NOT NULL CHECK (label IN ('TAI', 'XIU'))
);
`
