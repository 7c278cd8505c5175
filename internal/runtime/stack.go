package runtime

import "github.com/aretw0/navstack/pkg/domain"

// Stack is the ordered sequence of attached screens, root first.
// It is the authoritative navigation state and is only written by the Controller.
type Stack struct {
	entries []domain.Entry
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]domain.Entry, 0),
	}
}

// Push adds a new entry on top of the stack.
func (s *Stack) Push(e domain.Entry) {
	s.entries = append(s.entries, e)
}

// Pop removes and returns the top entry.
// Returns false if the stack is empty.
func (s *Stack) Pop() (domain.Entry, bool) {
	if len(s.entries) == 0 {
		return domain.Entry{}, false
	}
	top := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = domain.Entry{} // drop the screen reference
	s.entries = s.entries[:len(s.entries)-1]
	return top, true
}

// Peek returns the top entry without removing it.
// Returns false if the stack is empty.
func (s *Stack) Peek() (domain.Entry, bool) {
	if len(s.entries) == 0 {
		return domain.Entry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// TruncateTo removes every entry above size and returns them top first,
// which is the order they must be detached in.
func (s *Stack) TruncateTo(size int) []domain.Entry {
	if size < 0 {
		size = 0
	}
	if size >= len(s.entries) {
		return nil
	}
	removed := make([]domain.Entry, 0, len(s.entries)-size)
	for len(s.entries) > size {
		e, _ := s.Pop()
		removed = append(removed, e)
	}
	return removed
}

// ContainsTag reports whether any entry carries tag.
// The empty tag is never considered present.
func (s *Stack) ContainsTag(tag string) bool {
	if tag == "" {
		return false
	}
	for _, e := range s.entries {
		if e.Tag == tag {
			return true
		}
	}
	return false
}

// ContainsTagBelowTop is ContainsTag ignoring the top entry, which is the one a
// replace is about to pop.
func (s *Stack) ContainsTagBelowTop(tag string) bool {
	if tag == "" || len(s.entries) == 0 {
		return false
	}
	for _, e := range s.entries[:len(s.entries)-1] {
		if e.Tag == tag {
			return true
		}
	}
	return false
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Entries returns a copy of the stack, root first.
func (s *Stack) Entries() []domain.Entry {
	out := make([]domain.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
