// Package undo keeps the bounded undo/redo history of filesystem mutations
// and knows how to invert and replay each one.
package undo

import "fmt"

// Kind identifies the mutation a Record describes.
type Kind int

const (
	// KindMkdir records a created directory.
	KindMkdir Kind = iota
	// KindRemove records a removed directory or a soft-deleted file.
	KindRemove
	// KindMove records a move of Path into the directory Dest.
	KindMove
)

// Record describes a completed, reversible mutation.
type Record struct {
	Kind  Kind
	Path  string
	IsDir bool   // KindRemove only
	Dest  string // KindMove only
}

// Mkdir returns the record for a created directory.
func Mkdir(path string) Record {
	return Record{Kind: KindMkdir, Path: path}
}

// Removed returns the record for a removed path.
func Removed(path string, isDir bool) Record {
	return Record{Kind: KindRemove, Path: path, IsDir: isDir}
}

// Moved returns the record for src moved into destDir.
func Moved(src, destDir string) Record {
	return Record{Kind: KindMove, Path: src, Dest: destDir}
}

// String describes the record.
func (r Record) String() string {
	switch r.Kind {
	case KindMkdir:
		return fmt.Sprintf("mkdir %s", r.Path)
	case KindRemove:
		if r.IsDir {
			return fmt.Sprintf("rm dir %s", r.Path)
		}
		return fmt.Sprintf("rm file %s", r.Path)
	case KindMove:
		return fmt.Sprintf("move %s -> %s", r.Path, r.Dest)
	default:
		return fmt.Sprintf("record(%d)", int(r.Kind))
	}
}
