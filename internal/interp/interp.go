// Package interp is the interpreter session: it owns the working directory
// and the undo history, parses each line, executes the resulting steps in
// order and reports every outcome to a renderer and the transcript.
package interp

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/nlterm/nlterm/internal/executor"
	"github.com/nlterm/nlterm/internal/phrase"
	"github.com/nlterm/nlterm/internal/transcript"
	"github.com/nlterm/nlterm/internal/undo"
	"github.com/nlterm/nlterm/internal/workspace"
)

// Renderer displays step outcomes as they happen.
type Renderer interface {
	Render(out executor.Outcome)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(executor.Outcome)

// Render calls f.
func (f RendererFunc) Render(out executor.Outcome) { f(out) }

// Options configures a new Interpreter.
type Options struct {
	UndoCapacity int
	Transcript   transcript.Writer
	Renderer     Renderer
	Executor     executor.Options
	Logger       *slog.Logger
}

// Interpreter is a single-user, single-threaded session.
type Interpreter struct {
	ws         *workspace.Workspace
	history    *undo.History
	parser     *phrase.Parser
	exec       *executor.Executor
	transcript transcript.Writer
	renderer   Renderer
	logger     *slog.Logger
}

// New starts a session in dir.
func New(dir string, opts Options) (*Interpreter, error) {
	ws, err := workspace.New(dir)
	if err != nil {
		return nil, err
	}
	if opts.Transcript == nil {
		opts.Transcript = transcript.Discard{}
	}
	if opts.Renderer == nil {
		opts.Renderer = RendererFunc(func(executor.Outcome) {})
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Executor.Logger == nil {
		opts.Executor.Logger = opts.Logger
	}

	history := undo.NewHistory(opts.UndoCapacity)
	return &Interpreter{
		ws:         ws,
		history:    history,
		parser:     phrase.NewParserIn(ws.Dir),
		exec:       executor.New(ws, history, opts.Executor),
		transcript: opts.Transcript,
		renderer:   opts.Renderer,
		logger:     opts.Logger,
	}, nil
}

// Dir returns the session's working directory.
func (in *Interpreter) Dir() string {
	return in.ws.Dir()
}

// Entries lists the working directory, for completion.
func (in *Interpreter) Entries() ([]workspace.Entry, error) {
	return in.ws.List()
}

// Parse returns the steps a line would run, without running them.
func (in *Interpreter) Parse(line string) []phrase.Step {
	return in.parser.Parse(line)
}

// Run executes every step of line in order. A failing step never stops the
// ones after it. Each outcome is rendered and appended to the transcript
// under the line as the user typed it.
func (in *Interpreter) Run(ctx context.Context, line string) []executor.Outcome {
	line = strings.TrimSpace(line)
	steps := in.parser.Parse(line)
	in.logger.DebugContext(ctx, "parsed line", "line", line, "steps", len(steps))

	outcomes := make([]executor.Outcome, 0, len(steps))
	for _, step := range steps {
		out := in.exec.Execute(ctx, step)
		in.renderer.Render(out)
		if err := in.transcript.Append(line, out.Output); err != nil {
			in.logger.WarnContext(ctx, "transcript write failed", "error", err)
		}
		outcomes = append(outcomes, out)
	}
	return outcomes
}

// IsExit reports whether line ends the interactive loop.
func IsExit(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), "exit")
}
