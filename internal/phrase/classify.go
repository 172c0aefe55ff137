package phrase

import (
	"slices"
	"strings"
)

// rule maps a matching phrase to a step. build returns ok=false to drop the
// phrase entirely (a malformed move).
type rule struct {
	match func(phrase string) bool
	build func(phrase string, fields []string, gate Gate) (Step, bool)
}

func hasPrefix(prefixes ...string) func(string) bool {
	return func(p string) bool {
		for _, prefix := range prefixes {
			if strings.HasPrefix(p, prefix) {
				return true
			}
		}
		return false
	}
}

func oneOf(phrases ...string) func(string) bool {
	return func(p string) bool {
		return slices.Contains(phrases, p)
	}
}

// lastToken builds a step whose only argument is the phrase's last token.
func lastToken(action Action) func(string, []string, Gate) (Step, bool) {
	return func(_ string, fields []string, gate Gate) (Step, bool) {
		return Step{Action: action, Path: fields[len(fields)-1], Gate: gate}, true
	}
}

func bare(action Action, keepGate bool) func(string, []string, Gate) (Step, bool) {
	return func(_ string, _ []string, gate Gate) (Step, bool) {
		if !keepGate {
			gate = GateNone
		}
		return Step{Action: action, Gate: gate}, true
	}
}

func buildMove(_ string, fields []string, gate Gate) (Step, bool) {
	if len(fields) < 3 {
		return Step{}, false
	}
	return Step{Action: MoveTo, Path: fields[1], Dest: fields[2], Gate: gate}, true
}

// rules is evaluated top to bottom; the first match wins.
var rules = []rule{
	{hasPrefix("create folder", "make folder"), lastToken(MakeDir)},
	{hasPrefix("delete folder", "delete file", "remove"), lastToken(Remove)},
	{hasPrefix("move"), buildMove},
	{hasPrefix("go to", "enter folder", "open folder"), lastToken(ChangeDir)},
	{oneOf("ls", "list files", "show files"), bare(ListDir, true)},
	{oneOf("pwd", "current directory", "where am i"), bare(PrintWorkingDir, true)},
	{oneOf("undo"), bare(Undo, false)},
	{oneOf("redo"), bare(Redo, false)},
	{oneOf("cpu"), bare(CPUInfo, false)},
	{oneOf("mem"), bare(MemInfo, false)},
	{oneOf("ps"), bare(ProcessList, false)},
}

// Classify maps a single phrase to a step. The inline gate suffix is
// stripped first. ok is false when the phrase produces no step.
// Unmatched phrases fall back to the shell untouched, suffix included.
func Classify(phrase string) (Step, bool) {
	stripped, gate := stripGate(phrase)
	fields := strings.Fields(stripped)
	if len(fields) == 0 {
		return Step{}, false
	}
	for _, r := range rules {
		if r.match(stripped) {
			return r.build(stripped, fields, gate)
		}
	}
	return Step{Action: ShellFallback, Raw: phrase}, true
}
