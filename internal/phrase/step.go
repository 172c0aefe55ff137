// Package phrase turns loosely worded command lines into discrete steps.
//
// A line is lowercased, split on commas and the word "and", and each phrase
// is classified against an ordered rule table. Lines of the form
// "if <condition> then <cmd> [else <cmd>]" are resolved against the
// filesystem before classification, and inline suffixes ("if exists",
// "if it doesn't exist") attach a gate that the executor evaluates later.
package phrase

import "fmt"

// Action identifies what a step does.
type Action int

// Actions, in no particular order. ShellFallback is the zero value so an
// unclassified step is never mistaken for a filesystem mutation.
const (
	ShellFallback Action = iota
	MakeDir
	Remove
	MoveTo
	ChangeDir
	ListDir
	PrintWorkingDir
	Undo
	Redo
	CPUInfo
	MemInfo
	ProcessList
)

var actionNames = map[Action]string{
	ShellFallback:   "shell",
	MakeDir:         "mkdir",
	Remove:          "rm",
	MoveTo:          "move",
	ChangeDir:       "cd",
	ListDir:         "ls",
	PrintWorkingDir: "pwd",
	Undo:            "undo",
	Redo:            "redo",
	CPUInfo:         "cpu",
	MemInfo:         "mem",
	ProcessList:     "ps",
}

// String returns the short tag for the action (e.g. "mkdir").
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Gate is an existence predicate attached to a single step.
type Gate int

const (
	// GateNone means the step always runs.
	GateNone Gate = iota
	// GateExists runs the step only if its target exists.
	GateExists
	// GateNotExists runs the step only if its target is absent.
	GateNotExists
)

// String returns the gate name as shown by the parse command.
func (g Gate) String() string {
	switch g {
	case GateExists:
		return "exists"
	case GateNotExists:
		return "not_exists"
	default:
		return "none"
	}
}

// Step is one parsed action.
type Step struct {
	Action Action
	// Path is the primary argument: the folder/file for MakeDir, Remove and
	// ChangeDir, the source for MoveTo.
	Path string
	// Dest is the destination directory for MoveTo.
	Dest string
	// Raw holds the phrase text handed to the shell for ShellFallback.
	Raw  string
	Gate Gate
}

// Target returns the path a gate is evaluated against.
func (s Step) Target() string {
	return s.Path
}

// String renders the step for diagnostics.
func (s Step) String() string {
	switch s.Action {
	case ShellFallback:
		return fmt.Sprintf("shell %q", s.Raw)
	case MoveTo:
		return fmt.Sprintf("move %s -> %s (gate=%s)", s.Path, s.Dest, s.Gate)
	case MakeDir, Remove, ChangeDir:
		return fmt.Sprintf("%s %s (gate=%s)", s.Action, s.Path, s.Gate)
	default:
		return s.Action.String()
	}
}
