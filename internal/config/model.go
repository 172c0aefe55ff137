// Package config loads nlterm settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nlterm/nlterm/internal/transcript"
	"github.com/nlterm/nlterm/internal/undo"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds every setting. Fields left out of the file keep their
// defaults.
type Config struct {
	Transcript   string   `yaml:"transcript"`
	HistoryFile  string   `yaml:"history_file"`
	UndoCapacity int      `yaml:"undo_capacity"`
	Shell        []string `yaml:"shell,omitempty"`
	DenyEnv      []string `yaml:"deny_env,omitempty"`
	Prompt       string   `yaml:"prompt"`
	Color        string   `yaml:"color"`
	CPUInterval  string   `yaml:"cpu_interval"`
	Log          Log      `yaml:"log"`
}

// Log configures diagnostic logging.
type Log struct {
	Level   string `yaml:"level"`
	File    string `yaml:"file,omitempty"`
	Journal bool   `yaml:"journal,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Transcript:   transcript.DefaultFile,
		HistoryFile:  "~/.nlterm_history",
		UndoCapacity: undo.DefaultCapacity,
		Prompt:       "{{.Cwd}} $ ",
		Color:        ColorAuto,
		CPUInterval:  "1s",
		Log:          Log{Level: "warn"},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.UndoCapacity < 1 {
		return errors.New("undo_capacity must be at least 1")
	}
	if c.Shell != nil && len(c.Shell) == 0 {
		return errors.New("shell must name an interpreter")
	}
	if len(c.Shell) > 0 && strings.TrimSpace(c.Shell[0]) == "" {
		return errors.New("shell must name an interpreter")
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of auto, always, never; got %q", c.Color)
	}
	if _, err := c.Interval(); err != nil {
		return err
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// Interval returns the parsed CPU sampling interval.
func (c *Config) Interval() (time.Duration, error) {
	d, err := time.ParseDuration(c.CPUInterval)
	if err != nil {
		return 0, fmt.Errorf("invalid cpu_interval %q: %w", c.CPUInterval, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("cpu_interval must be positive, got %s", d)
	}
	return d, nil
}

// SlogLevel parses the level name.
func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("invalid level %q", l.Level)
	}
	return level, nil
}
