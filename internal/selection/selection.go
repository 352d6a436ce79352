// Package selection tracks which registry entries the user marked for install.
package selection

// State holds one flag per registry entry, index-aligned with the registry.
// Its length is fixed at construction.
type State struct {
	selected []bool
}

// New creates a state for n entries, all unselected
func New(n int) *State {
	return &State{selected: make([]bool, n)}
}

// Len returns the number of entries
func (s *State) Len() int {
	return len(s.selected)
}

// Toggle flips the flag at index. Out-of-range indices are ignored and
// reported as false.
func (s *State) Toggle(index int) bool {
	if index < 0 || index >= len(s.selected) {
		return false
	}
	s.selected[index] = !s.selected[index]
	return true
}

// Select marks every index in indices; out-of-range entries are skipped
func (s *State) Select(indices []int) {
	for _, i := range indices {
		if i >= 0 && i < len(s.selected) {
			s.selected[i] = true
		}
	}
}

// SelectAll marks every entry
func (s *State) SelectAll() {
	for i := range s.selected {
		s.selected[i] = true
	}
}

// Clear unmarks every entry
func (s *State) Clear() {
	for i := range s.selected {
		s.selected[i] = false
	}
}

// IsSelected checks an index
func (s *State) IsSelected(index int) bool {
	return index >= 0 && index < len(s.selected) && s.selected[index]
}

// Selected returns the marked indices in ascending order
func (s *State) Selected() []int {
	var out []int
	for i, sel := range s.selected {
		if sel {
			out = append(out, i)
		}
	}
	return out
}

// Count returns the number of marked entries
func (s *State) Count() int {
	n := 0
	for _, sel := range s.selected {
		if sel {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of the flags
func (s *State) Snapshot() []bool {
	out := make([]bool, len(s.selected))
	copy(out, s.selected)
	return out
}
