//go:build !windows

package platform

import (
	"context"
	"os/exec"
)

// defaultShell matches what a POSIX system() call uses.
var defaultShell = []string{"/bin/sh", "-c"}

// unixShell implements Shell for Unix-like systems.
type unixShell struct {
	argv []string
}

// New returns the Shell for the current OS. argv is the interpreter and its
// flags (e.g. ["bash", "-c"]); the command line is appended as the final
// argument. An empty argv selects /bin/sh -c.
func New(argv []string) Shell {
	if len(argv) == 0 {
		argv = defaultShell
	}
	return &unixShell{argv: argv}
}

// Name returns "unix".
func (u *unixShell) Name() string {
	return "unix"
}

// Command wraps line in the configured shell.
func (u *unixShell) Command(ctx context.Context, line string) *exec.Cmd {
	args := append(append([]string{}, u.argv[1:]...), line)
	return exec.CommandContext(ctx, u.argv[0], args...) //nolint:gosec // user command is intentionally executed
}
