package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlterm/nlterm/internal/console"
)

// makeRoot creates a fresh command tree for testing.
func makeRoot() *cobra.Command {
	configFlag, dirFlag, transcriptFlag, logLevelFlag = "", "", "", ""
	noColorFlag = false
	parseFormatFlag = "text"
	checkFormatFlag = "text"

	root := &cobra.Command{
		Use:           "nlterm",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runInteractive,
	}
	addSessionFlags(root)

	run := &cobra.Command{Use: "run <words>...", Args: cobra.MinimumNArgs(1), RunE: runRun}
	parse := &cobra.Command{Use: "parse <words>...", Args: cobra.MinimumNArgs(1), RunE: runParse}
	parse.Flags().StringVar(&parseFormatFlag, "format", "text", "")
	check := &cobra.Command{Use: "check <config.yaml>...", Args: cobra.MinimumNArgs(1), RunE: runCheck}
	check.Flags().StringVar(&checkFormatFlag, "format", "text", "")

	root.AddCommand(run, parse, check, versionCmd)
	return root
}

// isolate points every config lookup at an empty file and disables color.
func isolate(t *testing.T) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, nil, 0600))
	t.Setenv("NLTERM_CONFIG", cfgPath)
	t.Setenv(console.ColorEnv, "")
	return cfgPath
}

func execute(root *cobra.Command, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestInteractive_RunsUntilExit(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	root := makeRoot()
	root.SetIn(strings.NewReader("create folder docs\nexit\nremove docs\n"))
	stdout, _, err := execute(root, "--dir", dir, "--transcript", "")

	require.NoError(t, err)
	assert.Contains(t, stdout, console.WelcomeBanner)
	assert.Contains(t, stdout, "Folder 'docs' created.")
	assert.Contains(t, stdout, console.GoodbyeBanner)
	assert.DirExists(t, filepath.Join(dir, "docs"))
}

func TestInteractive_WritesTranscriptInStartDir(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0750))

	root := makeRoot()
	root.SetIn(strings.NewReader("go to sub\npwd\n"))
	_, _, err := execute(root, "--dir", dir, "--transcript", "session.log")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "session.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "> go to sub\nChanged directory to sub\n\n")
	assert.Contains(t, string(data), "> pwd\n")
	assert.NoFileExists(t, filepath.Join(dir, "sub", "session.log"))
}

func TestInteractive_BadConfig(t *testing.T) {
	isolate(t)
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("undo_capacity: 0\n"), 0600))

	root := makeRoot()
	root.SetIn(strings.NewReader(""))
	_, _, err := execute(root, "--config", bad)

	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))
}

func TestInteractive_BadLogLevelFlag(t *testing.T) {
	isolate(t)

	root := makeRoot()
	root.SetIn(strings.NewReader(""))
	_, _, err := execute(root, "--log-level", "chatty")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid level")
	assert.Equal(t, 2, ExitCode(err))
}

func TestInteractive_MissingDir(t *testing.T) {
	isolate(t)

	root := makeRoot()
	root.SetIn(strings.NewReader(""))
	_, _, err := execute(root, "--dir", filepath.Join(t.TempDir(), "nope"))

	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(makeRoot(), "version")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("nlterm version %s (commit: %s, built: %s)\n", Version, Commit, Date), stdout)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("plain")))
	assert.Equal(t, 2, ExitCode(&ExitError{Code: 2, Err: errors.New("config")}))
	assert.Equal(t, 1, ExitCode(fmt.Errorf("wrapped: %w", &ExitError{Code: 1, Err: errors.New("steps")})))
}
