package undo

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/nlterm/nlterm/internal/workspace"
)

// ErrEmpty is returned when there is nothing to undo or redo.
var ErrEmpty = errors.New("history is empty")

// Engine applies the inverse or the replay of history records to a
// workspace. Neither operation records anything new.
type Engine struct {
	history *History
	ws      *workspace.Workspace
}

// NewEngine returns an Engine operating on ws.
func NewEngine(history *History, ws *workspace.Workspace) *Engine {
	return &Engine{history: history, ws: ws}
}

// Undo inverts the newest record. The record moves to the redo stack before
// the inverse runs, so a failed inverse can still be redone.
func (e *Engine) Undo() (string, error) {
	r, ok := e.history.TakeUndo()
	if !ok {
		return "", ErrEmpty
	}

	switch r.Kind {
	case KindMkdir:
		if err := e.ws.RemoveTree(r.Path); err != nil {
			return "", fmt.Errorf("undo mkdir %s: %w", r.Path, err)
		}
		return fmt.Sprintf("Undo mkdir: removed folder '%s'", r.Path), nil

	case KindRemove:
		if r.IsDir {
			// Contents are gone for good; only the directory comes back.
			if err := e.ws.MakeDirAll(r.Path); err != nil {
				return "", fmt.Errorf("undo rm %s: %w", r.Path, err)
			}
			return fmt.Sprintf("Undo rm: restored folder '%s'", r.Path), nil
		}
		if err := e.ws.RestoreBackup(r.Path); err != nil {
			return "", fmt.Errorf("undo rm %s: backup %s%s: %w", r.Path, r.Path, workspace.BackupSuffix, err)
		}
		return fmt.Sprintf("Undo rm: restored file '%s'", r.Path), nil

	case KindMove:
		// The item comes back to wherever the session is now, which is not
		// necessarily where it was moved from.
		moved := filepath.Join(r.Dest, filepath.Base(r.Path))
		if err := e.ws.MoveInto(moved, e.ws.Dir()); err != nil {
			return "", fmt.Errorf("undo move %s: %w", moved, err)
		}
		return fmt.Sprintf("Undo move: moved '%s' back to original location", r.Path), nil
	}
	return "", fmt.Errorf("undo: unknown record %s", r)
}

// Redo re-applies the newest undone record with its original arguments.
func (e *Engine) Redo() (string, error) {
	r, ok := e.history.TakeRedo()
	if !ok {
		return "", ErrEmpty
	}

	switch r.Kind {
	case KindMkdir:
		if err := e.ws.MakeDirAll(r.Path); err != nil {
			return "", fmt.Errorf("redo mkdir %s: %w", r.Path, err)
		}
		return fmt.Sprintf("Redo mkdir: recreated folder '%s'", r.Path), nil

	case KindRemove:
		if r.IsDir {
			if err := e.ws.RemoveTree(r.Path); err != nil {
				return "", fmt.Errorf("redo rm %s: %w", r.Path, err)
			}
			return fmt.Sprintf("Redo rm: removed folder '%s'", r.Path), nil
		}
		if err := e.ws.SoftDelete(r.Path); err != nil {
			return "", fmt.Errorf("redo rm %s: %w", r.Path, err)
		}
		return fmt.Sprintf("Redo rm: removed file '%s'", r.Path), nil

	case KindMove:
		if err := e.ws.MoveInto(r.Path, r.Dest); err != nil {
			return "", fmt.Errorf("redo move %s: %w", r.Path, err)
		}
		return fmt.Sprintf("Redo move: moved '%s' → '%s'", r.Path, r.Dest), nil
	}
	return "", fmt.Errorf("redo: unknown record %s", r)
}
