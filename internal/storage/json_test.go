package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runger/taixiu/internal/outcome"
)

func TestJSONFile_LoadMissing(t *testing.T) {
	t.Parallel()

	f := NewJSONFile(filepath.Join(t.TempDir(), "history.json"))
	_, err := f.Load()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJSONFile_SaveLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "history.json")
	f := NewJSONFile(path)
	seq := []outcome.Outcome{outcome.Xiu, outcome.Tai}

	require.NoError(t, f.Save(seq))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[\n  \"XIU\",\n  \"TAI\"\n]\n", string(data))

	got, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, seq, got)
}

func TestJSONFile_SaveLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	f := NewJSONFile(filepath.Join(dir, "history.json"))
	require.NoError(t, f.Save([]outcome.Outcome{outcome.Tai}))
	require.NoError(t, f.Save([]outcome.Outcome{outcome.Xiu, outcome.Tai}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "history.json", entries[0].Name())
}

func TestJSONFile_Remove(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.json")
	f := NewJSONFile(path)
	require.NoError(t, f.Save([]outcome.Outcome{outcome.Tai}))

	require.NoError(t, f.Remove())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Missing file is not an error.
	assert.NoError(t, f.Remove())
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []outcome.Outcome
		wantErr bool
	}{
		{name: "empty array", input: `[]`, want: []outcome.Outcome{}},
		{name: "labels", input: `["TAI","XIU"]`, want: []outcome.Outcome{outcome.Tai, outcome.Xiu}},
		{name: "object", input: `{"history":[]}`, wantErr: true},
		{name: "numbers", input: `[1,2]`, wantErr: true},
		{name: "unknown label", input: `["TAI","BIG"]`, wantErr: true},
		{name: "lowercase label", input: `["tai"]`, wantErr: true},
		{name: "truncated", input: `["TAI",`, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DecodeJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	b, err := Open(KindJSON, filepath.Join(dir, "h.json"))
	require.NoError(t, err)
	assert.IsType(t, &JSONFile{}, b)

	b, err = Open(KindSQLite, filepath.Join(dir, "h.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, b)
	assert.NoError(t, b.Close())

	_, err = Open("csv", filepath.Join(dir, "h.csv"))
	assert.Error(t, err)

	_, err = ParseKind("csv")
	assert.Error(t, err)
	k, err := ParseKind("sqlite")
	require.NoError(t, err)
	assert.Equal(t, KindSQLite, k)
}
