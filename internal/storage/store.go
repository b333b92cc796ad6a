// Package storage persists the outcome history.
// It provides the canonical JSON text file and an optional SQLite database.
package storage

import (
	"errors"
	"fmt"

	"github.com/runger/taixiu/internal/outcome"
)

// ErrNotFound is returned by Load when nothing has been persisted yet.
var ErrNotFound = errors.New("history not found")

// Backend defines the storage operations used by the history store.
// Every Save is a full overwrite; there are no incremental writes.
type Backend interface {
	// Load returns the persisted newest-first sequence.
	// It returns ErrNotFound when no artifact exists.
	Load() ([]outcome.Outcome, error)

	// Save overwrites the artifact with seq.
	Save(seq []outcome.Outcome) error

	// Remove deletes the artifact. A missing artifact is not an error.
	Remove() error

	// Location describes where the artifact lives, for diagnostics.
	Location() string

	// Close releases any held resources.
	Close() error
}

// Kind names a backend implementation.
type Kind string

const (
	KindJSON   Kind = "json"
	KindSQLite Kind = "sqlite"
)

// ParseKind validates a backend name.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindJSON, KindSQLite:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown backend: %s (must be json or sqlite)", s)
	}
}

// Open creates the backend of the given kind at path.
func Open(kind Kind, path string) (Backend, error) {
	switch kind {
	case KindJSON, "":
		return NewJSONFile(path), nil
	case KindSQLite:
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown backend: %s", kind)
	}
}
