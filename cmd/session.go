package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nlterm/nlterm/internal/config"
	"github.com/nlterm/nlterm/internal/console"
	"github.com/nlterm/nlterm/internal/executor"
	"github.com/nlterm/nlterm/internal/interp"
	"github.com/nlterm/nlterm/internal/logging"
	"github.com/nlterm/nlterm/internal/platform"
	"github.com/nlterm/nlterm/internal/sysinfo"
	"github.com/nlterm/nlterm/internal/transcript"
)

// loadConfig resolves the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Resolve(configFlag)
	if err != nil {
		return nil, &ExitError{Code: 2, Err: err}
	}
	if transcriptFlag != "" {
		cfg.Transcript = transcriptFlag
	}
	if logLevelFlag != "" {
		cfg.Log.Level = logLevelFlag
	}
	if noColorFlag {
		cfg.Color = config.ColorNever
	}
	if err := cfg.Validate(); err != nil {
		return nil, &ExitError{Code: 2, Err: fmt.Errorf("invalid settings: %w", err)}
	}
	return cfg, nil
}

// session bundles the interpreter with the resources it holds open.
type session struct {
	interp   *interp.Interpreter
	renderer *console.Renderer
	logger   *logging.Logger
}

// openSession builds the interpreter described by cfg. Outcomes are
// rendered to out; diagnostics go to errOut.
func openSession(cfg *config.Config, out, errOut io.Writer, color bool) (*session, error) {
	start := dirFlag
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		start = wd
	}

	// Validate has already accepted both values.
	level, _ := cfg.Log.SlogLevel()
	interval, _ := cfg.Interval()

	logger, err := logging.New(logging.Options{
		Level:   level,
		Stderr:  errOut,
		File:    config.ExpandHome(cfg.Log.File),
		Journal: cfg.Log.Journal,
	})
	if err != nil {
		return nil, err
	}

	renderer := console.NewRenderer(out, color)
	in, err := interp.New(start, interp.Options{
		UndoCapacity: cfg.UndoCapacity,
		Transcript:   transcriptFor(cfg, start),
		Renderer:     renderer,
		Executor: executor.Options{
			Shell:   platform.New(cfg.Shell),
			System:  sysinfo.NewHost(interval),
			DenyEnv: cfg.DenyEnv,
			Logger:  logger.Logger,
		},
		Logger: logger.Logger,
	})
	if err != nil {
		_ = logger.Close()
		return nil, &ExitError{Code: 2, Err: err}
	}
	return &session{interp: in, renderer: renderer, logger: logger}, nil
}

func (s *session) close() {
	_ = s.logger.Close()
}

// transcriptFor opens the transcript named by cfg. A relative path is
// anchored at the start directory so later cd steps do not move it.
func transcriptFor(cfg *config.Config, start string) transcript.Writer {
	if cfg.Transcript == "" {
		return transcript.Discard{}
	}
	path := config.ExpandHome(cfg.Transcript)
	if !filepath.IsAbs(path) {
		path = filepath.Join(start, path)
	}
	return transcript.NewFile(path)
}

func colorFor(cfg *config.Config, out io.Writer) bool {
	f, _ := out.(*os.File)
	return console.ColorEnabled(cfg.Color, f)
}
