package console

import (
	"os"
	"strings"

	"github.com/nlterm/nlterm/internal/workspace"
)

// Completer completes names from the working directory. On an empty line it
// offers every entry. Directories carry a trailing separator.
type Completer struct {
	Entries func() ([]workspace.Entry, error)
}

// Do implements readline.AutoCompleter. It returns the missing suffix of
// each candidate and the length of the word being completed.
func (c Completer) Do(line []rune, pos int) ([][]rune, int) {
	if pos > len(line) {
		pos = len(line)
	}
	entries, err := c.Entries()
	if err != nil {
		return nil, 0
	}

	head := string(line[:pos])
	word := ""
	if strings.TrimSpace(head) != "" {
		if i := strings.LastIndexAny(head, " \t;"); i >= 0 {
			word = head[i+1:]
		} else {
			word = head
		}
	}

	var out [][]rune
	for _, e := range entries {
		if !strings.HasPrefix(e.Name, word) {
			continue
		}
		name := e.Name
		if e.IsDir {
			name += string(os.PathSeparator)
		}
		out = append(out, []rune(name[len(word):]))
	}
	return out, len([]rune(word))
}
