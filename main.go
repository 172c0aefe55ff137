// Package main is the entry point for nlterm.
package main

import (
	"fmt"
	"os"

	"github.com/nlterm/nlterm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cmd.ExitCode(err))
	}
}
