// Package stats computes descriptive statistics over an outcome history.
//
// Histories are newest-first. Anything that depends on order (runs) walks the
// slice from the end so it sees outcomes chronologically.
package stats

import "github.com/runger/taixiu/internal/outcome"

// Summary is the statistics block shown to the user.
type Summary struct {
	Total      int     `json:"total"`
	CountTai   int     `json:"count_tai"`
	CountXiu   int     `json:"count_xiu"`
	PctTai     float64 `json:"pct_tai"`
	PctXiu     float64 `json:"pct_xiu"`
	LongestTai int     `json:"longest_tai"`
	LongestXiu int     `json:"longest_xiu"`
}

// Compute builds a Summary for a newest-first history.
func Compute(history []outcome.Outcome) Summary {
	return Summary{
		Total:      len(history),
		CountTai:   Count(history, outcome.Tai),
		CountXiu:   Count(history, outcome.Xiu),
		PctTai:     Percent(history, outcome.Tai),
		PctXiu:     Percent(history, outcome.Xiu),
		LongestTai: LongestRun(history, outcome.Tai),
		LongestXiu: LongestRun(history, outcome.Xiu),
	}
}

// Count returns how many entries equal label.
func Count(history []outcome.Outcome, label outcome.Outcome) int {
	n := 0
	for _, o := range history {
		if o == label {
			n++
		}
	}
	return n
}

// Percent returns the share of label in [0, 100]. An empty history yields 0.
func Percent(history []outcome.Outcome, label outcome.Outcome) float64 {
	if len(history) == 0 {
		return 0
	}
	return float64(Count(history, label)) / float64(len(history)) * 100
}

// LongestRun returns the length of the longest chronological run of label.
func LongestRun(history []outcome.Outcome, label outcome.Outcome) int {
	longest, cur := 0, 0
	for i := len(history) - 1; i >= 0; i-- {
		if history[i] != label {
			cur = 0
			continue
		}
		cur++
		if cur > longest {
			longest = cur
		}
	}
	return longest
}
