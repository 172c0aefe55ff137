// Package platform defines how an unrecognized phrase is handed to the host
// shell. The shell invocation differs per OS; implementations are selected
// at compile time via Go build tags.
package platform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"syscall"
)

// Shell wraps an opaque command line in the host command interpreter.
type Shell interface {
	// Command returns an exec.Cmd that runs line through the shell.
	Command(ctx context.Context, line string) *exec.Cmd

	// Name returns a human-readable platform identifier ("unix" or "windows").
	Name() string
}

// Result is the captured outcome of a shell command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes line in dir with the given environment and captures both
// output streams. A non-zero exit is reported in Result.ExitCode, not as an
// error; err is only set when the shell itself could not be started.
func Run(ctx context.Context, sh Shell, line, dir string, env []string) (Result, error) {
	cmd := sh.Command(ctx, line)
	cmd.Dir = dir
	if len(env) > 0 {
		cmd.Env = env
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	result := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: ExitCodeFromError(runErr),
	}

	var exitErr *exec.ExitError
	if runErr != nil && !errors.As(runErr, &exitErr) {
		return result, fmt.Errorf("failed to start shell: %w", runErr)
	}
	return result, nil
}

// ExitCodeFromError extracts the exit code from an exec.Cmd.Run() error.
//
// Returns:
//   - 0 if err is nil
//   - The child's exit code if it exited normally with non-zero status
//   - 128+signum if the child was killed by a signal (POSIX convention)
//   - 1 for any other error
func ExitCodeFromError(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return 1
	}

	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok {
		if ws.Signaled() {
			return 128 + int(ws.Signal())
		}
		return ws.ExitStatus()
	}

	if code := exitErr.ExitCode(); code >= 0 {
		return code
	}
	return 1
}
