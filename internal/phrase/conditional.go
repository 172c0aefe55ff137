package phrase

import (
	"regexp"
	"strings"
)

const (
	suffixNotExists = " if it doesn't exist"
	suffixExists    = " if exists"
)

var (
	blockPattern  = regexp.MustCompile(`^if (.+?) then (.+?)(?: else (.+))?$`)
	targetPattern = regexp.MustCompile(`file (\S+)|folder (\S+)`)
)

// block is a parsed "if ... then ... [else ...]" line.
type block struct {
	gate     Gate
	target   string
	thenPart string
	elsePart string
}

// parseBlock extracts the pieces of an if/then/else line. ok is false when
// the line is not a well-formed block with a file or folder target.
func parseBlock(line string) (block, bool) {
	m := blockPattern.FindStringSubmatch(line)
	if m == nil {
		return block{}, false
	}
	condition := m[1]

	var b block
	// "not exists" contains "exists" and must win.
	switch {
	case strings.Contains(condition, "not exists"):
		b.gate = GateNotExists
	case strings.Contains(condition, "exists"):
		b.gate = GateExists
	default:
		return block{}, false
	}

	t := targetPattern.FindStringSubmatch(condition)
	if t == nil {
		return block{}, false
	}
	b.target = t[1]
	if b.target == "" {
		b.target = t[2]
	}
	b.thenPart = m[2]
	b.elsePart = m[3]
	return b, true
}

// holds reports whether the block's condition is currently true.
func (b block) holds(exists func(string) bool) bool {
	present := exists(b.target)
	if b.gate == GateNotExists {
		return !present
	}
	return present
}

// stripGate removes an inline conditional suffix and returns the gate it
// stood for.
func stripGate(phrase string) (string, Gate) {
	if rest, ok := strings.CutSuffix(phrase, suffixNotExists); ok {
		return rest, GateNotExists
	}
	if rest, ok := strings.CutSuffix(phrase, suffixExists); ok {
		return rest, GateExists
	}
	return phrase, GateNone
}
