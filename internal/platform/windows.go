//go:build windows

package platform

import (
	"context"
	"os/exec"
	"strings"
	"syscall"
)

var defaultShell = []string{"cmd", "/C"}

// windowsShell implements Shell for Windows.
type windowsShell struct {
	argv []string
}

// New returns the Shell for the current OS. An empty argv selects cmd /C.
func New(argv []string) Shell {
	if len(argv) == 0 {
		argv = defaultShell
	}
	return &windowsShell{argv: argv}
}

// Name returns "windows".
func (w *windowsShell) Name() string {
	return "windows"
}

// Command wraps line in the configured shell. cmd.exe does its own quote
// parsing, so the line is passed through CmdLine untouched.
func (w *windowsShell) Command(ctx context.Context, line string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, w.argv[0]) //nolint:gosec // user command is intentionally executed
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: strings.Join(append(append([]string{}, w.argv...), line), " "),
	}
	return cmd
}
