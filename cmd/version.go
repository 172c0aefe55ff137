package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "nlterm version %s (commit: %s, built: %s)\n", Version, Commit, Date)
	},
}

func init() { //nolint:gochecknoinits // Standard cobra pattern
	rootCmd.AddCommand(versionCmd)
}
