// Package markov predicts the next outcome with a first-order Markov chain
// built from a newest-first history.
package markov

import (
	"fmt"

	"github.com/runger/taixiu/internal/outcome"
)

// InsufficientDataMessage is shown when fewer than two outcomes are recorded.
const InsufficientDataMessage = "Not enough data to predict"

// TransitionTable counts chronological adjacencies: table[prev][next].
type TransitionTable map[outcome.Outcome]map[outcome.Outcome]int

// Prediction is a probability pair for the next outcome.
type Prediction struct {
	Tai float64 `json:"p_tai"`
	Xiu float64 `json:"p_xiu"`

	// Fallback is set when the pair is the global base rate rather than a
	// conditional estimate for the newest outcome.
	Fallback bool `json:"fallback"`
}

// Of returns the probability assigned to o.
func (p Prediction) Of(o outcome.Outcome) float64 {
	if o == outcome.Tai {
		return p.Tai
	}
	return p.Xiu
}

// Likely returns the outcome with the higher probability. Ties favor TAI.
func (p Prediction) Likely() outcome.Outcome {
	if p.Xiu > p.Tai {
		return outcome.Xiu
	}
	return outcome.Tai
}

// String renders the pair the way the board and CLI display it.
func (p Prediction) String() string {
	return fmt.Sprintf("TAI %.1f%%  |  XIU %.1f%%", p.Tai*100, p.Xiu*100)
}

// BuildTable scans history oldest to newest and counts every (older, newer)
// pair.
func BuildTable(history []outcome.Outcome) TransitionTable {
	table := make(TransitionTable)
	for i := len(history) - 1; i > 0; i-- {
		prev, next := history[i], history[i-1]
		row, ok := table[prev]
		if !ok {
			row = make(map[outcome.Outcome]int)
			table[prev] = row
		}
		row[next]++
	}
	return table
}

// Total returns the number of transitions recorded out of prev.
func (t TransitionTable) Total(prev outcome.Outcome) int {
	n := 0
	for _, c := range t[prev] {
		n += c
	}
	return n
}

// Predict estimates the next outcome given the newest entry history[0].
// It returns false when fewer than two outcomes are available.
//
// When the newest outcome never appears as the older half of a pair, the
// global label frequency is returned instead of a conditional estimate. This
// happens on long histories too, whenever the newest label has no earlier
// occurrence with a successor.
func Predict(history []outcome.Outcome) (Prediction, bool) {
	if len(history) < 2 {
		return Prediction{}, false
	}
	return probabilities(history), true
}

func probabilities(history []outcome.Outcome) Prediction {
	if len(history) == 0 {
		return Prediction{Tai: 0.5, Xiu: 0.5}
	}

	table := BuildTable(history)
	last := history[0]
	total := table.Total(last)
	if total == 0 {
		return baseRate(history)
	}

	row := table[last]
	pTai := float64(row[outcome.Tai]) / float64(total)
	return Prediction{Tai: pTai, Xiu: 1 - pTai}
}

func baseRate(history []outcome.Outcome) Prediction {
	tai := 0
	for _, o := range history {
		if o == outcome.Tai {
			tai++
		}
	}
	pTai := float64(tai) / float64(len(history))
	return Prediction{Tai: pTai, Xiu: 1 - pTai, Fallback: true}
}
