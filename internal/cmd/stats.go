package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/runger/taixiu/internal/stats"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:     "stats",
	Short:   "Show counts, percentages and longest runs",
	GroupID: groupCore,
	Args:    cobra.NoArgs,
	RunE:    runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
}

func runStats(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()
	s.warnDegraded(cmd.ErrOrStderr())

	summary := s.store.Stats()
	if statsJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	printStats(cmd.OutOrStdout(), summary)
	return nil
}

func printStats(w io.Writer, st stats.Summary) {
	if st.Total == 0 {
		fmt.Fprintln(w, "(no data)")
		return
	}
	fmt.Fprintf(w, "%sTotal:%s %d\n", colorBold, colorReset, st.Total)
	fmt.Fprintf(w, "%sTAI%s: %d (%.1f%%)\n", colorRed, colorReset, st.CountTai, st.PctTai)
	fmt.Fprintf(w, "%sXIU%s: %d (%.1f%%)\n", colorBlue, colorReset, st.CountXiu, st.PctXiu)
	fmt.Fprintf(w, "Longest TAI run: %d\n", st.LongestTai)
	fmt.Fprintf(w, "Longest XIU run: %d\n", st.LongestXiu)
}
