// Package executor performs parsed steps against a workspace: it applies
// conditional gates, mutates the filesystem, records undo history, queries
// the system and hands anything unrecognized to the host shell.
package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nlterm/nlterm/internal/envfilter"
	"github.com/nlterm/nlterm/internal/phrase"
	"github.com/nlterm/nlterm/internal/platform"
	"github.com/nlterm/nlterm/internal/sysinfo"
	"github.com/nlterm/nlterm/internal/undo"
	"github.com/nlterm/nlterm/internal/workspace"
)

// Options configures an Executor. Zero values select the host shell, the
// live system and a discarding logger.
type Options struct {
	Shell   platform.Shell
	System  sysinfo.Snapshotter
	DenyEnv []string
	Logger  *slog.Logger
}

// Executor runs steps one at a time. It is not safe for concurrent use;
// steps must run in order because gates and relative paths depend on the
// effects of earlier steps.
type Executor struct {
	ws      *workspace.Workspace
	history *undo.History
	engine  *undo.Engine
	shell   platform.Shell
	system  sysinfo.Snapshotter
	denyEnv []string
	logger  *slog.Logger
}

// New returns an Executor mutating ws and recording into history.
func New(ws *workspace.Workspace, history *undo.History, opts Options) *Executor {
	if opts.Shell == nil {
		opts.Shell = platform.New(nil)
	}
	if opts.System == nil {
		opts.System = sysinfo.NewHost(sysinfo.DefaultInterval)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Executor{
		ws:      ws,
		history: history,
		engine:  undo.NewEngine(history, ws),
		shell:   opts.Shell,
		system:  opts.System,
		denyEnv: opts.DenyEnv,
		logger:  opts.Logger,
	}
}

// Execute runs a single step. Failures are reported in the Outcome, never
// returned, so a caller can always continue with the next step.
func (e *Executor) Execute(ctx context.Context, step phrase.Step) Outcome {
	out := Outcome{Step: step}

	if msg, skip := e.gate(step); skip {
		out.say(ToneWarn, msg)
		out.Skipped = true
		e.logger.DebugContext(ctx, "step skipped", "step", step.String())
		return out
	}

	switch step.Action {
	case phrase.PrintWorkingDir:
		out.say(ToneInfo, e.ws.Dir())
	case phrase.ChangeDir:
		e.changeDir(&out)
	case phrase.ListDir:
		e.listDir(&out)
	case phrase.MakeDir:
		e.makeDir(&out)
	case phrase.Remove:
		e.remove(&out)
	case phrase.MoveTo:
		e.move(&out)
	case phrase.CPUInfo:
		e.cpu(ctx, &out)
	case phrase.MemInfo:
		e.memory(ctx, &out)
	case phrase.ProcessList:
		e.processes(ctx, &out)
	case phrase.Undo:
		e.undo(&out)
	case phrase.Redo:
		e.redo(&out)
	default:
		e.fallback(ctx, &out)
	}

	if out.Err != nil {
		e.logger.DebugContext(ctx, "step failed",
			"step", step.String(), "kind", KindOf(out.Err).String(), "error", out.Err)
	} else {
		e.logger.DebugContext(ctx, "step done", "step", step.String())
	}
	return out
}

// gate evaluates the step's conditional against live filesystem state. Only
// mkdir/not-exists and rm,move/exists are ever gated; every other
// combination runs unconditionally.
func (e *Executor) gate(step phrase.Step) (string, bool) {
	switch step.Gate {
	case phrase.GateNotExists:
		if step.Action == phrase.MakeDir && e.ws.Exists(step.Target()) {
			return fmt.Sprintf("Skipping mkdir '%s' (already exists)", step.Target()), true
		}
	case phrase.GateExists:
		if (step.Action == phrase.Remove || step.Action == phrase.MoveTo) && !e.ws.Exists(step.Target()) {
			return fmt.Sprintf("Skipping %s (target does not exist)", step.Action), true
		}
	}
	return "", false
}

func (e *Executor) changeDir(out *Outcome) {
	path := out.Step.Path
	if path == "" {
		out.fail(ToneWarn, "cd: missing argument", &StepError{Kind: KindInvalidArgument})
		return
	}
	if err := e.ws.Chdir(path); err != nil {
		msg := fmt.Sprintf("cd: no such file or directory: %s", path)
		if errors.Is(err, workspace.ErrNotDirectory) {
			msg = fmt.Sprintf("cd: not a directory: %s", path)
		}
		out.fail(ToneError, msg, &StepError{Kind: kindFor(err), Path: path, Err: err})
		return
	}
	out.say(ToneInfo, fmt.Sprintf("Changed directory to %s", path))
}

func (e *Executor) listDir(out *Outcome) {
	entries, err := e.ws.List()
	if err != nil {
		out.fail(ToneError, "Error: "+err.Error(), &StepError{Kind: KindIO, Err: err})
		return
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir {
			out.Lines = append(out.Lines, Line{Tone: ToneDir, Text: entry.Name + "/"})
		} else {
			out.Lines = append(out.Lines, Line{Tone: ToneFile, Text: entry.Name})
		}
		names = append(names, entry.Name)
	}
	out.Output = strings.Join(names, "\n")
}

func (e *Executor) makeDir(out *Outcome) {
	path := out.Step.Path
	if path == "" {
		out.fail(ToneWarn, "mkdir: missing folder name", &StepError{Kind: KindInvalidArgument})
		return
	}
	if err := e.ws.MakeDirAll(path); err != nil {
		out.fail(ToneError, "Error: "+err.Error(), &StepError{Kind: KindIO, Path: path, Err: err})
		return
	}
	e.history.Record(undo.Mkdir(path))
	out.say(ToneSuccess, fmt.Sprintf("Folder '%s' created.", path))
}

func (e *Executor) remove(out *Outcome) {
	path := out.Step.Path
	if path == "" {
		out.fail(ToneWarn, "rm: missing target name", &StepError{Kind: KindInvalidArgument})
		return
	}

	switch {
	case e.ws.IsDir(path):
		if err := e.ws.RemoveTree(path); err != nil {
			out.fail(ToneError, "Error: "+err.Error(), &StepError{Kind: kindFor(err), Path: path, Err: err})
			return
		}
		e.history.Record(undo.Removed(path, true))
		out.say(ToneError, fmt.Sprintf("Folder '%s' removed.", path))
	case e.ws.IsFile(path):
		if err := e.ws.SoftDelete(path); err != nil {
			out.fail(ToneError, "Error: "+err.Error(), &StepError{Kind: kindFor(err), Path: path, Err: err})
			return
		}
		e.history.Record(undo.Removed(path, false))
		out.say(ToneError, fmt.Sprintf("File '%s' removed.", path))
	default:
		out.fail(ToneError, fmt.Sprintf("rm: cannot remove '%s': No such file or directory", path),
			&StepError{Kind: KindNotFound, Path: path, Err: workspace.ErrNotFound})
	}
}

func (e *Executor) move(out *Outcome) {
	src, dest := out.Step.Path, out.Step.Dest
	if src == "" || dest == "" {
		out.fail(ToneWarn, "move: syntax is move <file> <folder>", &StepError{Kind: KindInvalidArgument})
		return
	}
	if !e.ws.Exists(src) || !e.ws.IsDir(dest) {
		out.fail(ToneError, "move: source or destination invalid",
			&StepError{Kind: KindInvalidArgument, Path: src, Err: fmt.Errorf("cannot move %s into %s", src, dest)})
		return
	}
	if err := e.ws.MoveInto(src, dest); err != nil {
		msg := "Error: " + err.Error()
		if errors.Is(err, workspace.ErrDestExists) {
			msg = fmt.Sprintf("move: '%s' already exists", filepath.Join(dest, filepath.Base(src)))
		}
		out.fail(ToneError, msg, &StepError{Kind: kindFor(err), Path: src, Err: err})
		return
	}
	e.history.Record(undo.Moved(src, dest))
	out.say(ToneSuccess, fmt.Sprintf("Moved '%s' → '%s/'", src, dest))
}

func (e *Executor) cpu(ctx context.Context, out *Outcome) {
	pct, err := e.system.CPUPercent(ctx)
	if err != nil {
		out.fail(ToneError, "Error: "+err.Error(), &StepError{Kind: KindIO, Err: err})
		return
	}
	out.say(ToneInfo, sysinfo.FormatCPU(pct))
}

func (e *Executor) memory(ctx context.Context, out *Outcome) {
	m, err := e.system.Memory(ctx)
	if err != nil {
		out.fail(ToneError, "Error: "+err.Error(), &StepError{Kind: KindIO, Err: err})
		return
	}
	out.say(ToneInfo, sysinfo.FormatMemory(m))
}

func (e *Executor) processes(ctx context.Context, out *Outcome) {
	procs, err := e.system.Processes(ctx)
	if err != nil {
		out.fail(ToneError, "Error: "+err.Error(), &StepError{Kind: KindIO, Err: err})
		return
	}
	text := sysinfo.FormatProcesses(procs)
	header, rest, _ := strings.Cut(text, "\n")
	out.Lines = append(out.Lines, Line{Tone: ToneInfo, Text: header})
	if rest != "" {
		for _, line := range strings.Split(rest, "\n") {
			out.Lines = append(out.Lines, Line{Tone: TonePlain, Text: line})
		}
	}
	out.Output = text
}

func (e *Executor) undo(out *Outcome) {
	msg, err := e.engine.Undo()
	switch {
	case errors.Is(err, undo.ErrEmpty):
		out.fail(ToneWarn, "Nothing to undo", &StepError{Kind: KindUndoUnavailable, Err: err})
	case err != nil:
		out.fail(ToneError, "Error: "+err.Error(), &StepError{Kind: kindFor(err), Err: err})
	default:
		out.say(ToneWarn, msg)
	}
}

func (e *Executor) redo(out *Outcome) {
	msg, err := e.engine.Redo()
	switch {
	case errors.Is(err, undo.ErrEmpty):
		out.fail(ToneWarn, "Nothing to redo", &StepError{Kind: KindRedoUnavailable, Err: err})
	case err != nil:
		out.fail(ToneError, "Error: "+err.Error(), &StepError{Kind: kindFor(err), Err: err})
	default:
		out.say(ToneWarn, msg)
	}
}

// fallback runs the phrase in the host shell. stdout is shown first, then
// stderr in the error tone; the transcript keeps stderr when there is any.
func (e *Executor) fallback(ctx context.Context, out *Outcome) {
	env := envfilter.Filter(os.Environ(), e.denyEnv)
	e.logger.DebugContext(ctx, "shell fallback", "shell", e.shell.Name(), "line", out.Step.Raw)
	res, err := platform.Run(ctx, e.shell, out.Step.Raw, e.ws.Dir(), env)
	if err != nil {
		out.fail(ToneError, "Error: "+err.Error(), &StepError{Kind: KindExternalCommand, Err: err})
		return
	}

	stdout := strings.TrimSpace(res.Stdout)
	stderr := strings.TrimSpace(res.Stderr)
	if stdout != "" {
		out.say(TonePlain, stdout)
	}
	if stderr != "" {
		out.say(ToneError, stderr)
	}
	if res.ExitCode != 0 || stderr != "" {
		out.Err = &StepError{
			Kind:   KindExternalCommand,
			Action: phrase.ShellFallback,
			Err:    fmt.Errorf("exit status %d", res.ExitCode),
		}
	}
}
