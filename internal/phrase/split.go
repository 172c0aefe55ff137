package phrase

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// stepSeparator matches a comma or the word "and" between whitespace.
var stepSeparator = regexp.MustCompile(`,|\s+and\s+`)

// Normalize trims and lowercases a raw command line.
func Normalize(line string) string {
	return strings.ToLower(strings.TrimSpace(line))
}

// Split breaks a normalized line into trimmed, non-empty step phrases.
// There is no escaping: a comma can never be part of a path.
func Split(line string) []string {
	parts := stepSeparator.Split(line, -1)
	return lo.FilterMap(parts, func(p string, _ int) (string, bool) {
		p = strings.TrimSpace(p)
		return p, p != ""
	})
}
