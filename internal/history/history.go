// Package history owns the recorded outcome sequence.
//
// The sequence is newest-first and bounded. Every mutation is written through
// to a storage backend. Implicit storage failures (load on open, save after a
// mutation, removal on clear) never reach the caller: they are logged and
// recorded as a Degradation, and the in-memory sequence stays authoritative.
// Export is an explicit request and returns its errors.
//
// A Store is not safe for concurrent use.
package history

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/runger/taixiu/internal/markov"
	"github.com/runger/taixiu/internal/outcome"
	"github.com/runger/taixiu/internal/stats"
	"github.com/runger/taixiu/internal/storage"
)

const (
	// DefaultMaxLen bounds the sequence when no limit is configured.
	DefaultMaxLen = 1000

	// DefaultExportName is used when Export is called without a name.
	DefaultExportName = "export_taixiu.json"
)

// Store holds the outcome sequence for one session.
type Store struct {
	backend   storage.Backend
	history   []outcome.Outcome
	maxLen    int
	exportDir string
	logger    *slog.Logger
	degraded  []Degradation
}

// Option configures a Store.
type Option func(*Store)

// WithMaxLen sets the retention bound. Values below 1 keep the default.
func WithMaxLen(n int) Option {
	return func(s *Store) {
		if n >= 1 {
			s.maxLen = n
		}
	}
}

// WithLogger sets the logger used for storage diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithExportDir sets the directory relative export names resolve against.
// It defaults to the directory of the backend artifact.
func WithExportDir(dir string) Option {
	return func(s *Store) {
		s.exportDir = dir
	}
}

// Open creates a Store on backend and loads the persisted sequence.
// A missing or unreadable artifact yields an empty history.
func Open(backend storage.Backend, opts ...Option) *Store {
	s := &Store{
		backend:   backend,
		maxLen:    DefaultMaxLen,
		exportDir: filepath.Dir(backend.Location()),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Load()
	return s
}

// Load replaces the in-memory sequence with the persisted one.
func (s *Store) Load() {
	s.history = nil

	seq, err := s.backend.Load()
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Debug("no persisted history", "location", s.backend.Location())
			return
		}
		s.degrade(StorageReadDegraded, err)
		return
	}

	if len(seq) > s.maxLen {
		seq = seq[:s.maxLen]
	}
	s.history = seq
	s.logger.Debug("history loaded", "location", s.backend.Location(), "count", len(seq))
}

// Append parses text as an outcome and records it as the newest entry.
// Invalid text returns an error wrapping outcome.ErrInvalidOutcome and leaves
// the history unchanged.
func (s *Store) Append(text string) error {
	o, err := outcome.Parse(text)
	if err != nil {
		return err
	}
	return s.AppendOutcome(o)
}

// AppendOutcome records o as the newest entry, trims the history to the
// retention bound and persists it.
func (s *Store) AppendOutcome(o outcome.Outcome) error {
	if !o.Valid() {
		return fmt.Errorf("%w: value %d", outcome.ErrInvalidOutcome, uint8(o))
	}

	next := make([]outcome.Outcome, 0, min(len(s.history)+1, s.maxLen))
	next = append(next, o)
	next = append(next, s.history...)
	if len(next) > s.maxLen {
		next = next[:s.maxLen]
	}
	s.history = next

	s.save()
	return nil
}

// Clear empties the history and removes the persisted artifact.
func (s *Store) Clear() {
	s.history = nil
	if err := s.backend.Remove(); err != nil {
		s.degrade(StorageRemoveDegraded, err)
		return
	}
	s.logger.Info("history cleared", "location", s.backend.Location())
}

// Export writes the current history to name, resolved against the export
// directory unless absolute, and returns the written path. An empty name uses
// DefaultExportName. Neither the history nor its primary artifact change.
func (s *Store) Export(name string) (string, error) {
	if name == "" {
		name = DefaultExportName
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.exportDir, name)
	}

	if filepath.Clean(path) == filepath.Clean(s.backend.Location()) {
		return "", &ExportError{Path: path, Err: errors.New("destination is the history file")}
	}

	if err := storage.WriteJSON(path, s.history); err != nil {
		return "", &ExportError{Path: path, Err: err}
	}
	s.logger.Info("history exported", "path", path, "count", len(s.history))
	return path, nil
}

// Outcomes returns a copy of the history, newest first.
func (s *Store) Outcomes() []outcome.Outcome {
	out := make([]outcome.Outcome, len(s.history))
	copy(out, s.history)
	return out
}

// Len returns the number of recorded outcomes.
func (s *Store) Len() int {
	return len(s.history)
}

// MaxLen returns the retention bound.
func (s *Store) MaxLen() int {
	return s.maxLen
}

// Location returns where the history is persisted.
func (s *Store) Location() string {
	return s.backend.Location()
}

// Stats computes statistics over the current history.
func (s *Store) Stats() stats.Summary {
	return stats.Compute(s.history)
}

// Predict estimates the next outcome from the current history.
// It returns false when fewer than two outcomes are recorded.
func (s *Store) Predict() (markov.Prediction, bool) {
	return markov.Predict(s.history)
}

// Degraded returns the storage diagnostics recorded since Open.
func (s *Store) Degraded() []Degradation {
	out := make([]Degradation, len(s.degraded))
	copy(out, s.degraded)
	return out
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) save() {
	if err := s.backend.Save(s.history); err != nil {
		s.degrade(StorageWriteDegraded, err)
	}
}

func (s *Store) degrade(kind DegradationKind, err error) {
	d := Degradation{Kind: kind, Location: s.backend.Location(), Err: err}
	s.degraded = append(s.degraded, d)
	s.logger.Warn("history storage degraded",
		"kind", string(kind),
		"location", d.Location,
		"error", err,
	)
}
