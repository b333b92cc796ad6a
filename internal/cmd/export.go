package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:     "export [name]",
	Short:   "Write the history to a separate JSON file",
	GroupID: groupCore,
	Long: `Write the current history to a JSON file without touching the
history itself. A relative name is placed in the data directory; the default
name is history.export_name (export_taixiu.json).

Examples:
  taixiu export                      # <data dir>/export_taixiu.json
  taixiu export today.json           # <data dir>/today.json
  taixiu export /tmp/backup.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()
	s.warnDegraded(cmd.ErrOrStderr())

	name := s.cfg.History.ExportName
	if len(args) > 0 {
		name = args[0]
	}

	path, err := s.store.Export(name)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
