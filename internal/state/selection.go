package state

import "sort"

// SelectionSet is a set of indices into the current listing. It is
// cleared whenever the listing is replaced; stale indices into a new
// listing are never kept.
type SelectionSet struct {
	members map[int]struct{}
}

// NewSelectionSet returns an empty selection.
func NewSelectionSet() *SelectionSet {
	return &SelectionSet{members: make(map[int]struct{})}
}

// Toggle adds index if absent and removes it if present.
func (s *SelectionSet) Toggle(index int) {
	if _, ok := s.members[index]; ok {
		delete(s.members, index)
		return
	}
	s.members[index] = struct{}{}
}

// SelectAll replaces the selection with every index in [0, n).
func (s *SelectionSet) SelectAll(n int) {
	s.members = make(map[int]struct{}, n)
	for i := 0; i < n; i++ {
		s.members[i] = struct{}{}
	}
}

// Clear empties the selection.
func (s *SelectionSet) Clear() {
	s.members = make(map[int]struct{})
}

// Contains reports whether index is selected.
func (s *SelectionSet) Contains(index int) bool {
	_, ok := s.members[index]
	return ok
}

// Count returns the number of selected indices.
func (s *SelectionSet) Count() int {
	return len(s.members)
}

// Indices returns the selected indices in ascending order.
func (s *SelectionSet) Indices() []int {
	indices := make([]int, 0, len(s.members))
	for i := range s.members {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}
