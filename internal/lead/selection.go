package lead

// Direction is one shipment direction offered by the backend.
type Direction struct {
	ID   string
	Name string
}

// SelectionSet is an ordered set of direction identifiers. Insertion order is
// preserved for rendering; membership is what toggling flips.
type SelectionSet struct {
	ids []string
}

// Toggle flips membership of id: present ids are removed, absent ids are
// appended. It reports whether the id is selected after the call.
func (s *SelectionSet) Toggle(id string) bool {
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return false
		}
	}
	s.ids = append(s.ids, id)
	return true
}

// Has reports whether id is selected.
func (s *SelectionSet) Has(id string) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Len returns the number of selected directions.
func (s *SelectionSet) Len() int {
	return len(s.ids)
}

// IDs returns the selected identifiers in insertion order.
func (s *SelectionSet) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Names resolves the selected ids against the available directions, keeping
// the menu order of available. Unknown ids are skipped.
func (s *SelectionSet) Names(available []Direction) []string {
	var names []string
	for _, d := range available {
		if s.Has(d.ID) {
			names = append(names, d.Name)
		}
	}
	return names
}

// Clear empties the set.
func (s *SelectionSet) Clear() {
	s.ids = nil
}
