package enumstring

import "iter"

// All returns an iterator over (enumerator, label) pairs in construction
// order. The sequence is finite and restartable: the mapping never changes
// after construction, so repeated traversals yield identical results.
func (m *Map[E]) All() iter.Seq2[E, string] {
	return func(yield func(E, string) bool) {
		for _, p := range m.entries {
			if !yield(p.Enum, p.Label) {
				return
			}
		}
	}
}

// Enums returns an iterator over the enumerators in construction order.
func (m *Map[E]) Enums() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, p := range m.entries {
			if !yield(p.Enum) {
				return
			}
		}
	}
}

// Labels returns an iterator over the labels in construction order.
func (m *Map[E]) Labels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, p := range m.entries {
			if !yield(p.Label) {
				return
			}
		}
	}
}

// Backward returns an iterator over (enumerator, label) pairs in reverse
// construction order.
func (m *Map[E]) Backward() iter.Seq2[E, string] {
	return func(yield func(E, string) bool) {
		for i := len(m.entries) - 1; i >= 0; i-- {
			if !yield(m.entries[i].Enum, m.entries[i].Label) {
				return
			}
		}
	}
}

// EnumValues returns a copy of all enumerators in construction order.
// The returned slice is owned by the caller.
func (m *Map[E]) EnumValues() []E {
	res := make([]E, len(m.entries))
	for i, p := range m.entries {
		res[i] = p.Enum
	}
	return res
}

// LabelValues returns a copy of all labels in construction order.
// The returned slice is owned by the caller.
func (m *Map[E]) LabelValues() []string {
	res := make([]string, len(m.entries))
	for i, p := range m.entries {
		res[i] = p.Label
	}
	return res
}
