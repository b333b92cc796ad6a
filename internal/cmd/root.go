package cmd

import (
	"github.com/spf13/cobra"
)

const (
	groupCore  = "core"
	groupSetup = "setup"
)

var (
	dataDirFlag string
	configFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "taixiu",
	Short: "Track TAI/XIU outcomes and predict the next one",
	Long: `taixiu - record a sequence of TAI/XIU outcomes
  - streak and percentage statistics
  - next-outcome probability from a first-order Markov chain

History is kept newest-first in ~/.local/share/taixiu (XDG compliant).`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: groupCore, Title: "Core Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "Directory holding the history (overrides TAIXIU_DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config.yaml")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
