package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/nlterm/nlterm/internal/interp"
	"github.com/nlterm/nlterm/internal/phrase"
)

// ParsedStep is the JSON form of one classified step.
type ParsedStep struct {
	Action string `json:"action"`
	Path   string `json:"path,omitempty"`
	Dest   string `json:"dest,omitempty"`
	Raw    string `json:"raw,omitempty"`
	Gate   string `json:"gate"`
}

var parseFormatFlag string

var parseCmd = &cobra.Command{
	Use:   "parse <words>...",
	Short: "Show how a line would be understood, without running it",
	Long: `Show the steps a line would run, without running any of them.

Block conditions ("if exists folder X then ... else ...") are evaluated against
the start directory, as they would be when the line is typed.

Formats:
  text   One step per line (default)
  json   Structured JSON array

Examples:
  nlterm parse create folder docs, remove tmp if exists
  nlterm parse --format json if not exists folder out then create folder out`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() { //nolint:gochecknoinits // Standard cobra pattern
	parseCmd.Flags().StringVar(&parseFormatFlag, "format", "text", "Output format: text, json")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(parseFormatFlag)
	switch format {
	case "text", "json":
	default:
		return &ExitError{Code: 2, Err: fmt.Errorf("invalid format %q: valid values are text, json", parseFormatFlag)}
	}

	start := dirFlag
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		start = wd
	}
	in, err := interp.New(start, interp.Options{})
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	steps := in.Parse(strings.Join(args, " "))
	if format == "json" {
		if err := formatParseJSON(cmd.OutOrStdout(), steps); err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
		return nil
	}
	formatParseText(cmd.OutOrStdout(), steps)
	return nil
}

func formatParseText(w io.Writer, steps []phrase.Step) {
	for i, s := range steps {
		fmt.Fprintf(w, "%d. %s\n", i+1, s)
	}
}

func formatParseJSON(w io.Writer, steps []phrase.Step) error {
	parsed := lo.Map(steps, func(s phrase.Step, _ int) ParsedStep {
		return ParsedStep{
			Action: s.Action.String(),
			Path:   s.Path,
			Dest:   s.Dest,
			Raw:    s.Raw,
			Gate:   s.Gate.String(),
		}
	})
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(parsed)
}
