package cmd

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/runger/taixiu/internal/outcome"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:     "history",
	Short:   "Show recorded outcomes",
	GroupID: groupCore,
	Long: `Show recorded outcomes, newest first, on a single line.

The number shown defaults to history.show_limit (50). The line is cut to the
terminal width when stdout is a terminal.

Examples:
  taixiu history          # Show the newest 50 outcomes
  taixiu history -n 10    # Show the newest 10 outcomes`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Maximum number of outcomes to show (default history.show_limit)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()
	s.warnDegraded(cmd.ErrOrStderr())

	out := cmd.OutOrStdout()
	seq := s.store.Outcomes()
	if len(seq) == 0 {
		fmt.Fprintln(out, "(empty)")
		return nil
	}

	limit := historyLimit
	if limit <= 0 {
		limit = s.cfg.History.ShowLimit
	}
	shown := seq
	if len(shown) > limit {
		shown = shown[:limit]
	}

	fmt.Fprintln(out, formatHistoryLine(shown, termWidth()))
	fmt.Fprintf(out, "%sShowing %d of %d outcome(s), newest first%s\n", colorDim, len(shown), len(seq), colorReset)
	return nil
}

// formatHistoryLine joins labels with spaces. When width > 0 the plain line
// is cut to fit before colors are applied.
func formatHistoryLine(seq []outcome.Outcome, width int) string {
	plain := strings.Join(outcome.Labels(seq), " ")
	truncated := false
	if width > 0 && runewidth.StringWidth(plain) > width {
		plain = runewidth.Truncate(plain, width-1, "")
		truncated = true
	}

	fields := strings.Fields(plain)
	colored := make([]string, 0, len(fields)+1)
	for i, f := range fields {
		// A label cut in half by truncation is dropped.
		if i < len(seq) && f == seq[i].String() {
			colored = append(colored, colorize(seq[i]))
		}
	}
	if truncated {
		colored = append(colored, "…")
	}
	return strings.Join(colored, " ")
}
