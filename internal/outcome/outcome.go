// Package outcome defines the two-valued result label recorded by taixiu.
package outcome

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOutcome is returned when text is not one of the two result labels.
var ErrInvalidOutcome = errors.New("invalid outcome")

// Outcome is a single recorded result. The zero value is not valid.
type Outcome uint8

const (
	Tai Outcome = iota + 1
	Xiu
)

// Canonical labels as stored on disk.
const (
	LabelTai = "TAI"
	LabelXiu = "XIU"
)

// All lists the valid outcomes in display order.
var All = []Outcome{Tai, Xiu}

// Parse converts text to an Outcome. Surrounding whitespace is ignored and
// matching is case-insensitive.
func Parse(text string) (Outcome, error) {
	switch strings.ToUpper(strings.TrimSpace(text)) {
	case LabelTai:
		return Tai, nil
	case LabelXiu:
		return Xiu, nil
	default:
		return 0, fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidOutcome, text, LabelTai, LabelXiu)
	}
}

// Valid reports whether o is one of the two labels.
func (o Outcome) Valid() bool {
	return o == Tai || o == Xiu
}

// String returns the canonical label, or "?" for an invalid value.
func (o Outcome) String() string {
	switch o {
	case Tai:
		return LabelTai
	case Xiu:
		return LabelXiu
	default:
		return "?"
	}
}

// Other returns the opposite label.
func (o Outcome) Other() Outcome {
	if o == Tai {
		return Xiu
	}
	return Tai
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: value %d", ErrInvalidOutcome, uint8(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Only the canonical
// upper-case labels are accepted; lenient parsing is for user input.
func (o *Outcome) UnmarshalText(b []byte) error {
	switch string(b) {
	case LabelTai:
		*o = Tai
	case LabelXiu:
		*o = Xiu
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutcome, string(b))
	}
	return nil
}

// FromLabels decodes canonical labels into outcomes.
func FromLabels(labels []string) ([]Outcome, error) {
	out := make([]Outcome, 0, len(labels))
	for i, l := range labels {
		var o Outcome
		if err := o.UnmarshalText([]byte(l)); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, o)
	}
	return out, nil
}

// Labels encodes outcomes as canonical labels.
func Labels(seq []Outcome) []string {
	out := make([]string, len(seq))
	for i, o := range seq {
		out[i] = o.String()
	}
	return out
}

// MarshalIndent renders a sequence in the on-disk encoding: a JSON array of
// labels with two-space indentation.
func MarshalIndent(seq []Outcome) ([]byte, error) {
	labels := Labels(seq)
	if labels == nil {
		labels = []string{}
	}
	data, err := json.MarshalIndent(labels, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
