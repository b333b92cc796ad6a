package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runger/taixiu/internal/markov"
)

var predictJSON bool

var predictCmd = &cobra.Command{
	Use:     "predict",
	Short:   "Estimate the next outcome",
	GroupID: groupCore,
	Long: `Estimate the probability of the next outcome with a first-order
Markov chain over the recorded history.

The estimate is conditioned on the newest outcome. When the newest outcome
has never been followed by anything in the history, the overall TAI/XIU
frequency is shown instead and marked "(base rate)". At least two outcomes
are needed.`,
	Args: cobra.NoArgs,
	RunE: runPredict,
}

func init() {
	predictCmd.Flags().BoolVar(&predictJSON, "json", false, "Output as JSON")
}

// predictResult is the --json shape.
type predictResult struct {
	*markov.Prediction
	InsufficientData bool `json:"insufficient_data,omitempty"`
}

func runPredict(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()
	s.warnDegraded(cmd.ErrOrStderr())

	out := cmd.OutOrStdout()
	p, ok := s.store.Predict()

	if predictJSON {
		res := predictResult{InsufficientData: !ok}
		if ok {
			res.Prediction = &p
		}
		return json.NewEncoder(out).Encode(res)
	}

	if !ok {
		fmt.Fprintln(out, markov.InsufficientDataMessage)
		return nil
	}
	line := p.String()
	if p.Fallback {
		line += colorDim + "  (base rate)" + colorReset
	}
	fmt.Fprintln(out, line)
	return nil
}
