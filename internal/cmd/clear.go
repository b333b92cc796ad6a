package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Delete all recorded outcomes",
	GroupID: groupCore,
	Args:    cobra.NoArgs,
	RunE:    runClear,
}

func runClear(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	s.store.Clear()
	fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
	return nil
}
