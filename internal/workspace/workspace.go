// Package workspace owns the interpreter's working directory and the small
// set of filesystem primitives the executor and undo engine are built on.
//
// The working directory is session state rather than the process-wide one:
// every relative path is resolved against it, and shell children are started
// inside it.
package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// BackupSuffix is appended to a file's name when it is soft-deleted.
const BackupSuffix = ".bak"

// Errors returned by Workspace operations. They are matched with errors.Is.
var (
	ErrNotFound     = errors.New("no such file or directory")
	ErrNotDirectory = errors.New("not a directory")
	ErrDestExists   = errors.New("destination already exists")
)

// Workspace is a working directory plus path-resolving filesystem helpers.
type Workspace struct {
	dir string
}

// New returns a Workspace rooted at dir, which must be an existing directory.
func New(dir string) (*Workspace, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to open working directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", abs, ErrNotDirectory)
	}
	return &Workspace{dir: abs}, nil
}

// Dir returns the current working directory.
func (w *Workspace) Dir() string {
	return w.dir
}

// Resolve returns path made absolute against the working directory.
func (w *Workspace) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(w.dir, path)
}

// Exists reports whether path is present.
func (w *Workspace) Exists(path string) bool {
	_, err := os.Stat(w.Resolve(path))
	return err == nil
}

// IsDir reports whether path is an existing directory.
func (w *Workspace) IsDir(path string) bool {
	info, err := os.Stat(w.Resolve(path))
	return err == nil && info.IsDir()
}

// IsFile reports whether path exists and is not a directory.
func (w *Workspace) IsFile(path string) bool {
	info, err := os.Stat(w.Resolve(path))
	return err == nil && !info.IsDir()
}

// Chdir moves the working directory to path.
func (w *Workspace) Chdir(path string) error {
	target := w.Resolve(path)
	info, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return err
	}
	if !info.IsDir() {
		return ErrNotDirectory
	}
	w.dir = target
	return nil
}

// Entry is one item of a directory listing.
type Entry struct {
	Name  string
	IsDir bool
}

// List returns the entries of the working directory.
func (w *Workspace) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(w.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", w.dir, err)
	}
	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		isDir := de.IsDir()
		if de.Type()&fs.ModeSymlink != 0 {
			isDir = w.IsDir(de.Name())
		}
		entries = append(entries, Entry{Name: de.Name(), IsDir: isDir})
	}
	return entries, nil
}

// MakeDirAll creates path and any missing parents. An existing directory is
// not an error.
func (w *Workspace) MakeDirAll(path string) error {
	return os.MkdirAll(w.Resolve(path), 0750)
}

// RemoveTree deletes the directory at path and everything under it. Unlike
// os.RemoveAll, a missing path is an error.
func (w *Workspace) RemoveTree(path string) error {
	target := w.Resolve(path)
	if _, err := os.Lstat(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return err
	}
	return os.RemoveAll(target)
}

// SoftDelete renames the file at path to path+BackupSuffix.
func (w *Workspace) SoftDelete(path string) error {
	target := w.Resolve(path)
	if !w.Exists(target) {
		return ErrNotFound
	}
	return os.Rename(target, target+BackupSuffix)
}

// RestoreBackup renames path+BackupSuffix back to path.
func (w *Workspace) RestoreBackup(path string) error {
	target := w.Resolve(path)
	if !w.Exists(target + BackupSuffix) {
		return ErrNotFound
	}
	return os.Rename(target+BackupSuffix, target)
}

// MoveInto moves src into the existing directory destDir, keeping its base
// name. It refuses to overwrite an existing entry.
func (w *Workspace) MoveInto(src, destDir string) error {
	from := w.Resolve(src)
	if !w.Exists(from) {
		return ErrNotFound
	}
	dir := w.Resolve(destDir)
	if !w.IsDir(dir) {
		return ErrNotDirectory
	}
	to := filepath.Join(dir, filepath.Base(from))
	if _, err := os.Lstat(to); err == nil {
		return ErrDestExists
	}
	return os.Rename(from, to)
}
