package console

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nlterm/nlterm/internal/workspace"
)

func fixedEntries(entries ...workspace.Entry) func() ([]workspace.Entry, error) {
	return func() ([]workspace.Entry, error) { return entries, nil }
}

func runes(ss ...string) [][]rune {
	out := make([][]rune, len(ss))
	for i, s := range ss {
		out[i] = []rune(s)
	}
	return out
}

func TestCompleter_EmptyLineOffersEverything(t *testing.T) {
	c := Completer{Entries: fixedEntries(
		workspace.Entry{Name: "docs", IsDir: true},
		workspace.Entry{Name: "notes.txt"},
	)}

	got, n := c.Do([]rune("  "), 2)
	assert.Equal(t, 0, n)
	assert.Equal(t, runes("docs"+string(os.PathSeparator), "notes.txt"), got)
}

func TestCompleter_CompletesLastWord(t *testing.T) {
	c := Completer{Entries: fixedEntries(
		workspace.Entry{Name: "docs", IsDir: true},
		workspace.Entry{Name: "draft.md"},
		workspace.Entry{Name: "notes.txt"},
	)}

	got, n := c.Do([]rune("remove d"), 8)
	assert.Equal(t, 1, n)
	assert.Equal(t, runes("ocs"+string(os.PathSeparator), "raft.md"), got)

	got, n = c.Do([]rune("remove no"), 9)
	assert.Equal(t, 2, n)
	assert.Equal(t, runes("tes.txt"), got)
}

func TestCompleter_WordBeforeCursor(t *testing.T) {
	c := Completer{Entries: fixedEntries(workspace.Entry{Name: "notes.txt"})}

	got, n := c.Do([]rune("ls no and more"), 5)
	assert.Equal(t, 2, n)
	assert.Equal(t, runes("tes.txt"), got)
}

func TestCompleter_NoMatch(t *testing.T) {
	c := Completer{Entries: fixedEntries(workspace.Entry{Name: "notes.txt"})}

	got, n := c.Do([]rune("rm zz"), 5)
	assert.Empty(t, got)
	assert.Equal(t, 2, n)
}

func TestCompleter_ListingError(t *testing.T) {
	c := Completer{Entries: func() ([]workspace.Entry, error) { return nil, errors.New("gone") }}

	got, n := c.Do([]rune("rm a"), 4)
	assert.Nil(t, got)
	assert.Equal(t, 0, n)
}
