package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nlterm/nlterm/internal/config"
)

// CheckResult is the outcome of checking one config file.
type CheckResult struct {
	File   string   `json:"file"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

var checkFormatFlag string

var checkCmd = &cobra.Command{
	Use:   "check <config.yaml>...",
	Short: "Check config files without starting a session",
	Long: `Check one or more config files for unknown fields and invalid values.

Exit code 0 if all files are valid, 1 if any file has errors.

Formats:
  text   Human-readable output to stderr (default)
  json   Structured JSON to stdout

Examples:
  nlterm check ~/.config/nlterm/config.yaml
  nlterm check --format json a.yaml b.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() { //nolint:gochecknoinits // Standard cobra pattern
	checkCmd.Flags().StringVar(&checkFormatFlag, "format", "text", "Output format: text, json")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(checkFormatFlag)
	switch format {
	case "text", "json":
	default:
		return &ExitError{Code: 2, Err: fmt.Errorf("invalid format %q: valid values are text, json", checkFormatFlag)}
	}

	results := make([]CheckResult, 0, len(args))
	invalid := 0
	for _, path := range args {
		r := checkFile(path)
		if !r.Valid {
			invalid++
		}
		results = append(results, r)
	}

	switch format {
	case "text":
		formatCheckText(cmd.ErrOrStderr(), results)
	case "json":
		if err := formatCheckJSON(cmd.OutOrStdout(), results); err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
	}

	if invalid > 0 {
		return &ExitError{Code: 1, Err: fmt.Errorf("%d of %d config files invalid", invalid, len(results))}
	}
	return nil
}

func checkFile(path string) CheckResult {
	if _, err := config.LoadFile(config.ExpandHome(path)); err != nil {
		return CheckResult{File: path, Valid: false, Errors: []string{err.Error()}}
	}
	return CheckResult{File: path, Valid: true, Errors: []string{}}
}

func formatCheckText(w io.Writer, results []CheckResult) {
	validCount := 0
	for _, r := range results {
		if r.Valid {
			validCount++
			fmt.Fprintf(w, "✓ %s: valid\n", r.File)
			continue
		}
		fmt.Fprintf(w, "✗ %s:\n", r.File)
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  - %s\n", e)
		}
	}

	if len(results) > 1 {
		fmt.Fprintf(w, "\nResult: %d/%d files valid\n", validCount, len(results))
	}
}

func formatCheckJSON(w io.Writer, results []CheckResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
