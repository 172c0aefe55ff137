// Package envfilter strips deny-listed variables from the environment handed
// to shell fallback children. Names are matched with path.Match globs.
package envfilter

import (
	"path"
	"strings"

	"github.com/samber/lo"
)

// keep lists variables no deny_env pattern can strip, so even "*" leaves
// the shell able to find programs and the user's home.
var keep = map[string]struct{}{
	"PATH":          {},
	"HOME":          {},
	"SHELL":         {},
	"NLTERM_CONFIG": {},
}

// Filter returns the KEY=VALUE entries of environ whose key matches none of
// patterns. A malformed pattern matches nothing.
func Filter(environ []string, patterns []string) []string {
	if len(patterns) == 0 {
		return environ
	}
	return lo.Reject(environ, func(kv string, _ int) bool {
		name, _, _ := strings.Cut(kv, "=")
		if _, ok := keep[strings.ToUpper(name)]; ok {
			return false
		}
		return lo.SomeBy(patterns, func(p string) bool {
			matched, err := path.Match(p, name)
			return err == nil && matched
		})
	})
}
