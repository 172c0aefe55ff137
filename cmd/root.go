// Package cmd implements the nlterm Cobra command tree.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nlterm/nlterm/internal/config"
	"github.com/nlterm/nlterm/internal/console"
)

// Version, Commit, and Date are set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var (
	configFlag     string
	dirFlag        string
	transcriptFlag string
	logLevelFlag   string
	noColorFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "nlterm",
	Short: "A terminal that understands plain-English file commands",
	Long: `nlterm - a terminal that understands plain-English file commands

Type phrases such as "create folder docs and move notes.txt docs".
A line is split on commas and "and"; each part becomes one step. Steps
can be guarded ("remove tmp if exists", "if exists folder build then go
to build else create folder build") and undone or redone. Anything nlterm
does not recognize runs in the system shell.

Examples:
  # Start an interactive session
  nlterm

  # Run one line and exit
  nlterm run create folder out, go to out

  # Show how a line would be understood
  nlterm parse --format json remove cache if exists`,
	Args:          cobra.NoArgs,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInteractive,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits // Standard cobra pattern
	rootCmd.SetVersionTemplate(fmt.Sprintf("nlterm version {{.Version}} (commit: %s, built: %s)\n", Commit, Date))
	addSessionFlags(rootCmd)
}

func addSessionFlags(c *cobra.Command) {
	f := c.PersistentFlags()
	f.StringVar(&configFlag, "config", "", "Config file (default $NLTERM_CONFIG or <user config dir>/nlterm/config.yaml)")
	f.StringVar(&dirFlag, "dir", "", "Start directory (default current directory)")
	f.StringVar(&transcriptFlag, "transcript", "", "Transcript file, relative to the start directory")
	f.StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")
	f.BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
}

// runInteractive implements the root command: a read-run loop on stdin.
func runInteractive(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	s, err := openSession(cfg, out, cmd.ErrOrStderr(), colorFor(cfg, out))
	if err != nil {
		return err
	}
	defer s.close()

	reader := lineReader(cmd, cfg, s)
	defer func() { _ = reader.Close() }()

	loop, err := console.NewLoop(s.interp, reader, console.LoopOptions{
		Prompt: cfg.Prompt,
		Out:    out,
		Color:  s.renderer.Color(),
		Logger: s.logger.Logger,
	})
	if err != nil {
		return err
	}
	return loop.Run(cmd.Context())
}

// lineReader uses the readline editor on a terminal and plain line reads
// otherwise.
func lineReader(cmd *cobra.Command, cfg *config.Config, s *session) console.LineReader {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		editor, err := console.NewEditor(console.EditorOptions{
			HistoryFile: config.ExpandHome(cfg.HistoryFile),
			Completer:   console.Completer{Entries: s.interp.Entries},
			Stdin:       f,
			Stdout:      cmd.OutOrStdout(),
			Stderr:      cmd.ErrOrStderr(),
		})
		if err == nil {
			return editor
		}
		s.logger.Warn("line editor unavailable, falling back to plain input", "error", err)
	}
	return console.NewPlainReader(in, cmd.OutOrStdout())
}

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code for an error from Execute.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return 1
}
