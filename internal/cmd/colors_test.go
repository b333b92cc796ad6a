package cmd

import (
	"testing"

	"github.com/runger/taixiu/internal/outcome"
)

func TestDisableColors(t *testing.T) {
	withCommandGlobals(t)
	colorRed = "\033[0;31m"

	disableColors()
	for name, c := range map[string]string{
		"red": colorRed, "blue": colorBlue, "yellow": colorYellow,
		"cyan": colorCyan, "dim": colorDim, "bold": colorBold, "reset": colorReset,
	} {
		if c != "" {
			t.Errorf("color %s = %q after disableColors, want empty", name, c)
		}
	}
}

func TestColorize(t *testing.T) {
	withCommandGlobals(t)
	colorRed, colorBlue, colorReset = "<r>", "<b>", "</>"

	if got := colorize(outcome.Tai); got != "<r>TAI</>" {
		t.Errorf("colorize(Tai) = %q", got)
	}
	if got := colorize(outcome.Xiu); got != "<b>XIU</>" {
		t.Errorf("colorize(Xiu) = %q", got)
	}
}

func TestShouldDisableColors_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if !shouldDisableColors() {
		t.Error("shouldDisableColors should return true when NO_COLOR is set")
	}
}

func TestShouldDisableColors_TermDumb(t *testing.T) {
	t.Setenv("TERM", "dumb")
	// Unset NO_COLOR to isolate this test
	t.Setenv("NO_COLOR", "")
	if !shouldDisableColors() {
		t.Error("shouldDisableColors should return true when TERM=dumb")
	}
}

func TestTermWidth_FromEnv(t *testing.T) {
	if getTermWidthIoctl() > 0 {
		t.Skip("stdout is a terminal")
	}
	t.Setenv("COLUMNS", "120")
	if w := termWidth(); w != 120 {
		t.Errorf("termWidth() = %d, want 120 (from $COLUMNS)", w)
	}
}

func TestTermWidth_NoTerminal(t *testing.T) {
	if getTermWidthIoctl() > 0 {
		t.Skip("stdout is a terminal")
	}
	for _, v := range []string{"", "notanumber", "-5"} {
		t.Setenv("COLUMNS", v)
		if w := termWidth(); w != 0 {
			t.Errorf("termWidth() with COLUMNS=%q = %d, want 0", v, w)
		}
	}
}
