package phrase

import (
	"os"
	"path/filepath"
	"strings"
)

// maxDepth bounds recursion through nested if/then/else branches.
const maxDepth = 8

// Parser turns command lines into steps.
type Parser struct {
	// Exists reports whether a path is present. Relative paths are resolved
	// by the callee, which lets the parser follow a session working directory.
	Exists func(path string) bool
}

// NewParserIn returns a Parser that resolves relative paths against dir.
func NewParserIn(dir func() string) *Parser {
	return &Parser{Exists: func(path string) bool {
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir(), path)
		}
		_, err := os.Stat(path)
		return err == nil
	}}
}

// Parse normalizes line and returns its steps in order.
func (p *Parser) Parse(line string) []Step {
	return p.parse(Normalize(line), 0)
}

func (p *Parser) parse(line string, depth int) []Step {
	if line == "" {
		return nil
	}
	if strings.HasPrefix(line, "if ") {
		return p.parseBlock(line, depth)
	}

	var steps []Step
	for _, phrase := range Split(line) {
		if step, ok := Classify(phrase); ok {
			steps = append(steps, step)
		}
	}
	return steps
}

// parseBlock resolves an if/then/else line. Anything it cannot resolve,
// including a false condition with no else branch, becomes a single shell
// step carrying the whole line.
func (p *Parser) parseBlock(line string, depth int) []Step {
	fallback := []Step{{Action: ShellFallback, Raw: line}}
	if depth >= maxDepth {
		return fallback
	}
	b, ok := parseBlock(line)
	if !ok {
		return fallback
	}
	switch {
	case b.holds(p.Exists):
		return p.parse(b.thenPart, depth+1)
	case b.elsePart != "":
		return p.parse(b.elsePart, depth+1)
	default:
		return fallback
	}
}
