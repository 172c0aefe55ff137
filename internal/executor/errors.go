package executor

import (
	"errors"
	"fmt"

	"github.com/nlterm/nlterm/internal/phrase"
	"github.com/nlterm/nlterm/internal/workspace"
)

// Kind classifies a step failure.
type Kind int

const (
	// KindNotFound means a referenced path is absent.
	KindNotFound Kind = iota + 1
	// KindInvalidArgument means malformed or missing arguments.
	KindInvalidArgument
	// KindAlreadyExists means the target of a create or move is taken.
	KindAlreadyExists
	// KindExternalCommand means the shell fallback exited non-zero or wrote
	// to stderr.
	KindExternalCommand
	// KindUndoUnavailable means the undo stack is empty.
	KindUndoUnavailable
	// KindRedoUnavailable means the redo stack is empty.
	KindRedoUnavailable
	// KindIO covers any other filesystem or system query failure.
	KindIO
)

var kindNames = map[Kind]string{
	KindNotFound:        "not found",
	KindInvalidArgument: "invalid argument",
	KindAlreadyExists:   "already exists",
	KindExternalCommand: "external command failure",
	KindUndoUnavailable: "undo unavailable",
	KindRedoUnavailable: "redo unavailable",
	KindIO:              "i/o failure",
}

// String returns the kind's name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// StepError is the error attached to a failed step.
type StepError struct {
	Kind   Kind
	Action phrase.Action
	Path   string
	Err    error
}

// Error implements error.
func (e *StepError) Error() string {
	msg := e.Action.String()
	if e.Path != "" {
		msg += " " + e.Path
	}
	msg += ": " + e.Kind.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *StepError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a step error, or 0 if err is not one.
func KindOf(err error) Kind {
	var se *StepError
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}

// kindFor maps workspace errors onto the step taxonomy.
func kindFor(err error) Kind {
	switch {
	case errors.Is(err, workspace.ErrNotFound):
		return KindNotFound
	case errors.Is(err, workspace.ErrNotDirectory):
		return KindInvalidArgument
	case errors.Is(err, workspace.ErrDestExists):
		return KindAlreadyExists
	default:
		return KindIO
	}
}
