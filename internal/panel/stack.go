// Package panel coordinates the open/closed state of floating panels on one
// page and the Escape cancellation protocol.
//
// A Stack records which panels are open, in the order they were opened. A
// Controller owns the per-panel state machine and is the only writer of its
// Stack. Both are page-scoped values created by the host and passed in; there
// is no package-level state.
package panel

import (
	"slices"

	"github.com/zhubert/floatchat/internal/style"
)

// Stack is the ordered, duplicate-free list of open panel ids. The last
// element is the most recently opened panel.
type Stack struct {
	ids []string
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push appends id unless it is already present. It reports whether the stack
// changed.
func (s *Stack) Push(id string) bool {
	if s.Contains(id) {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

// Remove deletes id wherever it is in the stack. It reports whether the stack
// changed.
func (s *Stack) Remove(id string) bool {
	i := slices.Index(s.ids, id)
	if i < 0 {
		return false
	}
	s.ids = slices.Delete(s.ids, i, i+1)
	return true
}

// Top returns the most recently opened id.
func (s *Stack) Top() (string, bool) {
	if len(s.ids) == 0 {
		return "", false
	}
	return s.ids[len(s.ids)-1], true
}

// Contains reports whether id is open.
func (s *Stack) Contains(id string) bool {
	return slices.Contains(s.ids, id)
}

// IDs returns a copy of the open ids, oldest first.
func (s *Stack) IDs() []string {
	return slices.Clone(s.ids)
}

// Len returns the number of open panels.
func (s *Stack) Len() int {
	return len(s.ids)
}

// Clear empties the stack. Hosts call it when the page goes away.
func (s *Stack) Clear() {
	s.ids = nil
}

// ZIndex returns the stacking level of an open panel: panels opened later
// sit above panels opened earlier.
func (s *Stack) ZIndex(id string) (int, bool) {
	i := slices.Index(s.ids, id)
	if i < 0 {
		return 0, false
	}
	return style.PanelBaseZ + i, true
}
