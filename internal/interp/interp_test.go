package interp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nlterm/nlterm/internal/executor"
	"github.com/nlterm/nlterm/internal/phrase"
	"github.com/nlterm/nlterm/internal/transcript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingTranscript struct{ calls int }

func (f *failingTranscript) Append(string, string) error {
	f.calls++
	return errors.New("disk full")
}

func TestRun_RendersAndRecordsEachStep(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "session.log")
	var rendered []executor.Outcome

	in, err := New(dir, Options{
		Transcript: transcript.NewFile(logPath),
		Renderer:   RendererFunc(func(o executor.Outcome) { rendered = append(rendered, o) }),
	})
	require.NoError(t, err)

	outs := in.Run(context.Background(), "  Create Folder Docs, remove ghost ")
	require.Len(t, outs, 2)
	assert.Len(t, rendered, 2)
	assert.NoError(t, outs[0].Err)
	assert.Equal(t, executor.KindNotFound, executor.KindOf(outs[1].Err))
	assert.DirExists(t, filepath.Join(in.Dir(), "docs"))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t,
		"> Create Folder Docs, remove ghost\nFolder 'docs' created.\n\n"+
			"> Create Folder Docs, remove ghost\nrm: cannot remove 'ghost': No such file or directory\n\n",
		string(data))
}

func TestRun_SkippedStepsAreRecorded(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "session.log")
	in, err := New(dir, Options{Transcript: transcript.NewFile(logPath)})
	require.NoError(t, err)

	in.Run(context.Background(), "create folder a if it doesn't exist")
	outs := in.Run(context.Background(), "create folder a if it doesn't exist")
	require.Len(t, outs, 1)
	assert.True(t, outs[0].Skipped)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Skipping mkdir 'a' (already exists)")
}

func TestRun_TranscriptFailureDoesNotStopSteps(t *testing.T) {
	tr := &failingTranscript{}
	in, err := New(t.TempDir(), Options{Transcript: tr})
	require.NoError(t, err)

	outs := in.Run(context.Background(), "create folder a, create folder b")
	require.Len(t, outs, 2)
	assert.Equal(t, 2, tr.calls)
	assert.DirExists(t, filepath.Join(in.Dir(), "b"))
}

func TestRun_UndoCapacity(t *testing.T) {
	in, err := New(t.TempDir(), Options{UndoCapacity: 1})
	require.NoError(t, err)

	in.Run(context.Background(), "create folder a, create folder b")
	outs := in.Run(context.Background(), "undo, undo")
	require.Len(t, outs, 2)
	assert.NoError(t, outs[0].Err)
	assert.Equal(t, executor.KindUndoUnavailable, executor.KindOf(outs[1].Err))
	assert.DirExists(t, filepath.Join(in.Dir(), "a"), "the oldest record was evicted")
}

func TestParse_FollowsSessionDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub", "inner"), 0750))
	in, err := New(dir, Options{})
	require.NoError(t, err)

	line := "if folder inner exists then pwd else ls"
	assert.Equal(t, []phrase.Step{{Action: phrase.ListDir}}, in.Parse(line))

	in.Run(context.Background(), "go to sub")
	assert.Equal(t, []phrase.Step{{Action: phrase.PrintWorkingDir}}, in.Parse(line))
}

func TestNew_BadDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), Options{})
	require.Error(t, err)
}

func TestIsExit(t *testing.T) {
	assert.True(t, IsExit("exit"))
	assert.True(t, IsExit("  EXIT "))
	assert.False(t, IsExit("exit now"))
	assert.False(t, IsExit(""))
}

func TestEntries(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "src"), 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0600))

	in, err := New(dir, Options{})
	require.NoError(t, err)

	entries, err := in.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "notes.txt", entries[0].Name)
	assert.False(t, entries[0].IsDir)
	assert.Equal(t, "src", entries[1].Name)
	assert.True(t, entries[1].IsDir)
}
