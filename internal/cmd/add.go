package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runger/taixiu/internal/outcome"
)

var addCmd = &cobra.Command{
	Use:     "add <TAI|XIU>...",
	Short:   "Record one or more outcomes",
	GroupID: groupCore,
	Long: `Record outcomes as the newest entries in the history.

Labels are case-insensitive. With several labels they are recorded in the
order given, so the last one becomes the newest.

Examples:
  taixiu add tai
  taixiu add TAI XIU xiu`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()
	s.warnDegraded(cmd.ErrOrStderr())

	out := cmd.OutOrStdout()
	for _, arg := range args {
		o, err := outcome.Parse(arg)
		if err != nil {
			return err
		}
		if err := s.store.AppendOutcome(o); err != nil {
			return err
		}
		fmt.Fprintf(out, "Added: %s\n", colorize(o))
		s.warnDegraded(cmd.ErrOrStderr())
	}
	return nil
}
