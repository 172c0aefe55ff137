package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkspace(t *testing.T) (*Workspace, string) {
	t.Helper()
	dir := t.TempDir()
	ws, err := New(dir)
	require.NoError(t, err)
	return ws, ws.Dir()
}

func TestNew_RejectsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0600))

	_, err := New(file)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotDirectory)
}

func TestResolve(t *testing.T) {
	ws, dir := newTestWorkspace(t)

	assert.Equal(t, filepath.Join(dir, "a", "b"), ws.Resolve("a/b"))
	assert.Equal(t, filepath.Clean("/x/../y"), ws.Resolve("/x/../y"))
}

func TestChdir(t *testing.T) {
	ws, dir := newTestWorkspace(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file"), nil, 0600))

	require.NoError(t, ws.Chdir("sub"))
	assert.Equal(t, filepath.Join(dir, "sub"), ws.Dir())

	assert.ErrorIs(t, ws.Chdir("missing"), ErrNotFound)
	require.NoError(t, ws.Chdir(".."))
	assert.ErrorIs(t, ws.Chdir("file"), ErrNotDirectory)
	assert.Equal(t, dir, ws.Dir(), "failed chdir leaves the directory alone")
}

func TestList(t *testing.T) {
	ws, dir := newTestWorkspace(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "docs"), 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0600))

	entries, err := ws.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []Entry{{Name: "docs", IsDir: true}, {Name: "a.txt"}}, entries)
}

func TestRemoveTree_MissingIsAnError(t *testing.T) {
	ws, _ := newTestWorkspace(t)
	assert.ErrorIs(t, ws.RemoveTree("missing"), ErrNotFound)
}

func TestSoftDeleteAndRestore(t *testing.T) {
	ws, dir := newTestWorkspace(t)
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("keep me"), 0600))

	require.NoError(t, ws.SoftDelete("notes.txt"))
	assert.NoFileExists(t, path)
	assert.FileExists(t, path+BackupSuffix)

	require.NoError(t, ws.RestoreBackup("notes.txt"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))

	assert.ErrorIs(t, ws.RestoreBackup("notes.txt"), ErrNotFound)
}

func TestMoveInto(t *testing.T) {
	ws, dir := newTestWorkspace(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "docs"), 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0600))

	assert.ErrorIs(t, ws.MoveInto("missing", "docs"), ErrNotFound)
	assert.ErrorIs(t, ws.MoveInto("a.txt", "nowhere"), ErrNotDirectory)

	require.NoError(t, ws.MoveInto("a.txt", "docs"))
	assert.FileExists(t, filepath.Join(dir, "docs", "a.txt"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0600))
	assert.ErrorIs(t, ws.MoveInto("a.txt", "docs"), ErrDestExists)
}
