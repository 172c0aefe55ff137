package undo

// History pairs an undo stack with a redo stack.
type History struct {
	undo *Stack
	redo *Stack
}

// NewHistory returns an empty history whose stacks hold capacity records.
func NewHistory(capacity int) *History {
	return &History{undo: NewStack(capacity), redo: NewStack(capacity)}
}

// Record pushes a completed forward mutation. New forward work invalidates
// everything that could have been redone.
func (h *History) Record(r Record) {
	h.undo.Push(r)
	h.redo.Clear()
}

// TakeUndo moves the newest undo record onto the redo stack and returns it.
func (h *History) TakeUndo() (Record, bool) {
	r, ok := h.undo.Pop()
	if !ok {
		return Record{}, false
	}
	h.redo.Push(r)
	return r, true
}

// TakeRedo moves the newest redo record back onto the undo stack and
// returns it.
func (h *History) TakeRedo() (Record, bool) {
	r, ok := h.redo.Pop()
	if !ok {
		return Record{}, false
	}
	h.undo.Push(r)
	return r, true
}

// UndoLen returns the number of undoable records.
func (h *History) UndoLen() int {
	return h.undo.Len()
}

// RedoLen returns the number of redoable records.
func (h *History) RedoLen() int {
	return h.redo.Len()
}
