package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/runger/taixiu/internal/board"
)

var boardCmd = &cobra.Command{
	Use:     "board",
	Short:   "Open the interactive board",
	GroupID: groupCore,
	Long: `Open a full-screen board to record outcomes with single keys.

Keys:
  t   add TAI
  x   add XIU
  c   clear history
  e   export
  ?   toggle help
  q   quit

Logs are written to <data dir>/logs/taixiu.log while the board is open.`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func runBoard(cmd *cobra.Command, args []string) error {
	paths := resolvePaths()
	if err := paths.EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile(paths.LogFile(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	s, err := openSession(logFile)
	if err != nil {
		return err
	}
	defer s.Close()

	model := board.New(s.store, board.Options{
		ExportName: s.cfg.History.ExportName,
		ShowLimit:  s.cfg.History.ShowLimit,
	})

	lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).ColorProfile())

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	return nil
}
