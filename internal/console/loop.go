package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	texttemplate "text/template"

	"github.com/chzyer/readline"

	"github.com/nlterm/nlterm/internal/interp"
	"github.com/nlterm/nlterm/internal/template"
)

// Banners printed around the interactive session.
const (
	WelcomeBanner = "Welcome to nlterm (type 'exit' to quit)"
	GoodbyeBanner = "Exiting nlterm... Goodbye"
)

// LoopOptions configures a Loop.
type LoopOptions struct {
	Prompt string
	Out    io.Writer
	Color  bool
	Logger *slog.Logger
}

// Loop reads lines and runs them until exit or end of input.
type Loop struct {
	interp *interp.Interpreter
	reader LineReader
	prompt *texttemplate.Template
	out    io.Writer
	color  bool
	logger *slog.Logger
}

// NewLoop prepares a loop. The prompt template is checked up front.
func NewLoop(in *interp.Interpreter, reader LineReader, opts LoopOptions) (*Loop, error) {
	prompt, err := template.Compile(opts.Prompt)
	if err != nil {
		return nil, fmt.Errorf("invalid prompt: %w", err)
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loop{
		interp: in,
		reader: reader,
		prompt: prompt,
		out:    opts.Out,
		color:  opts.Color,
		logger: opts.Logger,
	}, nil
}

// Run drives the session. Interrupting a line discards it; end of input
// behaves like "exit".
func (l *Loop) Run(ctx context.Context) error {
	fmt.Fprintln(l.out, paintCode(ansiMagenta, WelcomeBanner, l.color))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		l.reader.SetPrompt(l.renderPrompt())

		line, err := l.reader.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if interp.IsExit(line) {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		l.interp.Run(ctx, line)
	}
	fmt.Fprintln(l.out, paintCode(ansiMagenta, GoodbyeBanner, l.color))
	return nil
}

func (l *Loop) renderPrompt() string {
	home, _ := os.UserHomeDir()
	p, err := template.Execute(l.prompt, template.Prompt{Cwd: l.interp.Dir(), Home: home})
	if err != nil {
		l.logger.Warn("prompt render failed", "error", err)
		p = l.interp.Dir() + " $ "
	}
	return paintCode(ansiBlue, p, l.color)
}
