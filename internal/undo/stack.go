package undo

// DefaultCapacity is the number of records each stack keeps.
const DefaultCapacity = 20

// Stack is a bounded LIFO of records. Pushing onto a full stack evicts the
// oldest record.
type Stack struct {
	items    []Record
	capacity int
}

// NewStack returns an empty stack holding at most capacity records.
func NewStack(capacity int) *Stack {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Stack{capacity: capacity}
}

// Push adds r on top, dropping the oldest record if the stack is full.
func (s *Stack) Push(r Record) {
	if len(s.items) == s.capacity {
		copy(s.items, s.items[1:])
		s.items = s.items[:len(s.items)-1]
	}
	s.items = append(s.items, r)
}

// Pop removes and returns the newest record.
func (s *Stack) Pop() (Record, bool) {
	if len(s.items) == 0 {
		return Record{}, false
	}
	r := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return r, true
}

// Len returns the number of records held.
func (s *Stack) Len() int {
	return len(s.items)
}

// Clear drops every record.
func (s *Stack) Clear() {
	s.items = s.items[:0]
}

// Records returns a copy of the records, oldest first.
func (s *Stack) Records() []Record {
	out := make([]Record, len(s.items))
	copy(out, s.items)
	return out
}
