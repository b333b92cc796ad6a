package cmd

import (
	"bytes"
	"path/filepath"
	"testing"
)

// testEnv is an isolated data dir and config file for one CLI test.
type testEnv struct {
	dir        string
	configPath string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("TAIXIU_DATA_DIR", "")
	t.Setenv("TAIXIU_BACKEND", "")
	t.Setenv("TAIXIU_LOG_LEVEL", "")
	t.Setenv("TAIXIU_DEBUG", "")
	t.Setenv("COLUMNS", "")

	dir := t.TempDir()
	return &testEnv{
		dir:        dir,
		configPath: filepath.Join(dir, "config.yaml"),
	}
}

func (e *testEnv) historyFile() string {
	return filepath.Join(e.dir, "taixiu_history.json")
}

type cliResult struct {
	stdout string
	stderr string
	err    error
}

// run executes the root command with the env's --data-dir and --config.
func (e *testEnv) run(t *testing.T, args ...string) cliResult {
	t.Helper()
	withCommandGlobals(t)

	full := append([]string{"--data-dir", e.dir, "--config", e.configPath}, args...)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(full)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return cliResult{stdout: out.String(), stderr: errOut.String(), err: err}
}

// withCommandGlobals resets flag-bound package variables and colors for one
// execution and restores them afterwards.
func withCommandGlobals(t *testing.T) {
	t.Helper()
	oldDataDir, oldConfig := dataDirFlag, configFlag
	oldLimit := historyLimit
	oldStatsJSON, oldPredictJSON := statsJSON, predictJSON
	oldColors := []string{colorRed, colorBlue, colorYellow, colorCyan, colorDim, colorBold, colorReset}

	dataDirFlag, configFlag = "", ""
	historyLimit = 0
	statsJSON, predictJSON = false, false
	disableColors()

	t.Cleanup(func() {
		dataDirFlag, configFlag = oldDataDir, oldConfig
		historyLimit = oldLimit
		statsJSON, predictJSON = oldStatsJSON, oldPredictJSON
		colorRed, colorBlue, colorYellow, colorCyan = oldColors[0], oldColors[1], oldColors[2], oldColors[3]
		colorDim, colorBold, colorReset = oldColors[4], oldColors[5], oldColors[6]
	})
}
