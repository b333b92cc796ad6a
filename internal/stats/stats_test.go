package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/runger/taixiu/internal/outcome"
)

const (
	T = outcome.Tai
	X = outcome.Xiu
)

func TestCompute_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Summary{}, Compute(nil))
	assert.Equal(t, Summary{}, Compute([]outcome.Outcome{}))
}

func TestCompute(t *testing.T) {
	t.Parallel()

	// Newest-first; chronological order is T T X T.
	got := Compute([]outcome.Outcome{T, X, T, T})
	assert.Equal(t, 4, got.Total)
	assert.Equal(t, 3, got.CountTai)
	assert.Equal(t, 1, got.CountXiu)
	assert.InDelta(t, 75.0, got.PctTai, 1e-9)
	assert.InDelta(t, 25.0, got.PctXiu, 1e-9)
	assert.Equal(t, 2, got.LongestTai)
	assert.Equal(t, 1, got.LongestXiu)
}

func TestPercent_SumsToHundred(t *testing.T) {
	t.Parallel()

	h := []outcome.Outcome{T, X, X, T, X, X, X}
	assert.InDelta(t, 100.0, Percent(h, T)+Percent(h, X), 1e-9)
}

func TestLongestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		history []outcome.Outcome
		label   outcome.Outcome
		want    int
	}{
		{"empty", nil, T, 0},
		{"never occurs", []outcome.Outcome{X, X}, T, 0},
		{"single", []outcome.Outcome{T}, T, 1},
		{"all same", []outcome.Outcome{X, X, X, X}, X, 4},
		{"run at newest end", []outcome.Outcome{T, T, T, X, T}, T, 3},
		{"run at oldest end", []outcome.Outcome{X, T, T, T, T}, T, 4},
		{"split runs", []outcome.Outcome{X, X, T, X, X, X, T, X}, X, 3},
		{"alternating", []outcome.Outcome{T, X, T, X, T}, X, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, LongestRun(tt.history, tt.label))
		})
	}
}

func TestLongestRun_IsChronological(t *testing.T) {
	t.Parallel()

	// [T, X, T, T] newest-first is T T X T oldest-first.
	h := []outcome.Outcome{T, X, T, T}
	assert.Equal(t, 2, LongestRun(h, T))
	assert.Equal(t, 1, LongestRun(h, X))

	// Reversing the storage order must not change run lengths.
	rev := []outcome.Outcome{T, T, X, T}
	assert.Equal(t, LongestRun(h, T), LongestRun(rev, T))
}

func TestLongestRun_DoesNotMutate(t *testing.T) {
	t.Parallel()

	h := []outcome.Outcome{X, T, T}
	_ = LongestRun(h, T)
	_ = Compute(h)
	assert.Equal(t, []outcome.Outcome{X, T, T}, h)
}
