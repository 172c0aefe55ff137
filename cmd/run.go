package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/nlterm/nlterm/internal/executor"
)

var runCmd = &cobra.Command{
	Use:   "run <words>...",
	Short: "Run one line and exit",
	Long: `Run a single line non-interactively.

The arguments are joined with spaces and handled exactly like a line typed
at the interactive prompt. Outcomes are printed and appended to the
transcript. Use "--" before words that look like flags.

Exit code 0 if every step succeeded or was skipped, 1 if any step failed.

Examples:
  nlterm run create folder build and go to build
  nlterm run -- ls -la`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() { //nolint:gochecknoinits // Standard cobra pattern
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
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

	// Ctrl-C kills a running shell fallback and fails that step.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	outcomes := s.interp.Run(ctx, strings.Join(args, " "))
	failed := lo.CountBy(outcomes, func(o executor.Outcome) bool { return o.Failed() })
	if failed > 0 {
		return &ExitError{Code: 1, Err: fmt.Errorf("%d of %d steps failed", failed, len(outcomes))}
	}
	return nil
}
