// Package console is the interactive front end: colors, the line editor,
// completion and the read-run loop.
package console

import (
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/nlterm/nlterm/internal/config"
	"github.com/nlterm/nlterm/internal/executor"
)

// ColorEnv forces color on or off when set to a boolean-like value.
const ColorEnv = "NLTERM_COLOR"

// ColorEnabled decides whether output to f is colored. An explicit
// "always" or "never" setting wins, then NLTERM_COLOR, then NO_COLOR, then
// whether f is a terminal.
func ColorEnabled(setting string, f *os.File) bool {
	switch setting {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if v := os.Getenv(ColorEnv); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}

const (
	ansiReset   = "\033[0m"
	ansiRed     = "\033[31m"
	ansiGreen   = "\033[32m"
	ansiYellow  = "\033[33m"
	ansiBlue    = "\033[34m"
	ansiMagenta = "\033[35m"
	ansiCyan    = "\033[36m"
)

var toneColors = map[executor.Tone]string{
	executor.ToneInfo:    ansiCyan,
	executor.ToneSuccess: ansiGreen,
	executor.ToneWarn:    ansiYellow,
	executor.ToneError:   ansiRed,
	executor.ToneDir:     ansiBlue,
	executor.ToneFile:    ansiGreen,
}

// Paint wraps s in the escape sequence for tone. Plain text and disabled
// color return s unchanged.
func Paint(tone executor.Tone, s string, color bool) string {
	code, ok := toneColors[tone]
	if !color || !ok {
		return s
	}
	return code + s + ansiReset
}

func paintCode(code, s string, color bool) string {
	if !color {
		return s
	}
	return code + s + ansiReset
}
