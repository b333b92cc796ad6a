package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/runger/taixiu/internal/outcome"
)

// JSONFile stores the history as an indented JSON array of labels.
type JSONFile struct {
	path string
}

// NewJSONFile returns a backend for the file at path. Nothing is touched on disk
// until the first Load or Save.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Location returns the file path.
func (f *JSONFile) Location() string {
	return f.path
}

// Load reads and decodes the file.
func (f *JSONFile) Load() ([]outcome.Outcome, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}
	return DecodeJSON(data)
}

// Save writes seq, replacing the previous file atomically.
func (f *JSONFile) Save(seq []outcome.Outcome) error {
	return WriteJSON(f.path, seq)
}

// Remove deletes the file.
func (f *JSONFile) Remove() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove history file: %w", err)
	}
	return nil
}

// Close is a no-op.
func (f *JSONFile) Close() error {
	return nil
}

// DecodeJSON parses the on-disk encoding. The top level must be an array of
// strings and every string must be a canonical label.
func DecodeJSON(data []byte) ([]outcome.Outcome, error) {
	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return nil, fmt.Errorf("failed to parse history file: %w", err)
	}
	seq, err := outcome.FromLabels(labels)
	if err != nil {
		return nil, fmt.Errorf("failed to parse history file: %w", err)
	}
	return seq, nil
}

// WriteJSON encodes seq and writes it to path through a temp file in the same
// directory, so readers never observe a partial file.
func WriteJSON(path string, seq []outcome.Outcome) error {
	data, err := outcome.MarshalIndent(seq)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
