package enumstring

import "strings"

// Enum constrains mapping enumerators to named types with an integer
// underlying type. Enumerators are treated as opaque tags: the mapping
// relies on equality only and assumes no ordering semantics.
type Enum interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Pair associates one enumerator with its label.
type Pair[E Enum] struct {
	// Enum is the enumerator value.
	Enum E

	// Label is the text the enumerator maps to.
	Label string
}

// Map is an immutable bidirectional mapping between enumerators and string
// labels. The entry list and the hash index are both built once at
// construction and never modified afterward, so a fully constructed Map is
// safe for concurrent readers without additional synchronization (ordinary
// happens-before visibility rules apply to publishing the Map itself).
//
// Enumerators should be unique within one Map for the enumerator-to-label
// direction to be well defined; labels may repeat. Every lookup resolves
// duplicates to the first matching entry in construction order.
type Map[E Enum] struct {
	entries []Pair[E]
	index   hashIndex[E]
}

// New constructs a Map from the given pairs, preserving their order.
// The pairs are copied; the caller's slice is not retained. A Map built
// from zero pairs is valid: every lookup fails with a not-found error and
// every traversal is empty.
func New[E Enum](pairs ...Pair[E]) *Map[E] {
	entries := make([]Pair[E], len(pairs))
	copy(entries, pairs)
	return &Map[E]{
		entries: entries,
		index:   buildIndex(entries),
	}
}

// FromArgs constructs a Map from an alternating enumerator/label argument
// list: FromArgs[Color](Red, "red", Green, "green"). The argument count must
// be even; every even-position argument must have exactly the enumerator
// type E and every odd-position argument must be a string. Malformed input
// fails with a KindOutOfRange error wrapping ErrOddArguments or
// ErrBadArgument.
func FromArgs[E Enum](args ...any) (*Map[E], error) {
	const op = "FromArgs"

	if len(args)%2 != 0 {
		return nil, NewOutOfRangeError(op, ErrOddArguments).
			WithContext(map[string]any{"count": len(args)})
	}

	pairs := make([]Pair[E], 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		e, ok := args[i].(E)
		if !ok {
			return nil, NewOutOfRangeError(op, ErrBadArgument).
				WithContext(map[string]any{"index": i, "want": "enumerator"})
		}
		label, ok := args[i+1].(string)
		if !ok {
			return nil, NewOutOfRangeError(op, ErrBadArgument).
				WithContext(map[string]any{"index": i + 1, "want": "string"})
		}
		pairs = append(pairs, Pair[E]{Enum: e, Label: label})
	}

	return New(pairs...), nil
}

// ToString converts an enumerator to its label by scanning entries in
// construction order and returning the first match. It fails with a
// KindInvalidEnum error if the enumerator is not in the mapping.
func (m *Map[E]) ToString(e E) (string, error) {
	for _, p := range m.entries {
		if p.Enum == e {
			return p.Label, nil
		}
	}
	return "", NewInvalidEnumError("Map.ToString").
		WithContext(map[string]any{"value": Underlying(e)})
}

// StringOr converts an enumerator to its label, returning def instead of an
// error when the enumerator is not in the mapping.
func (m *Map[E]) StringOr(e E, def string) string {
	s, err := m.ToString(e)
	if err != nil {
		return def
	}
	return s
}

// ToEnum converts a label to its enumerator using the hash index; average
// time complexity is O(1). The match is exact (case-sensitive) and verified
// against the label bytes, so distinct labels with colliding hashes still
// resolve correctly. It fails with a KindInvalidString error if the label is
// not in the mapping.
func (m *Map[E]) ToEnum(label string) (E, error) {
	if e, ok := m.index.lookup(label); ok {
		return e, nil
	}
	var zero E
	return zero, NewInvalidStringError("Map.ToEnum").
		WithContext(map[string]any{"label": label})
}

// ToEnumInsensitive converts a label to its enumerator using per-byte ASCII
// case folding, returning the first match in construction order. This path
// is a deliberate O(N) linear scan: case folding breaks the hash-equality
// shortcut the exact-match path relies on. It fails with a KindInvalidString
// error if no entry matches.
func (m *Map[E]) ToEnumInsensitive(label string) (E, error) {
	for _, p := range m.entries {
		if foldEqual(p.Label, label) {
			return p.Enum, nil
		}
	}
	var zero E
	return zero, NewInvalidStringError("Map.ToEnumInsensitive").
		WithContext(map[string]any{"label": label})
}

// Contains reports whether the enumerator appears among the mapping's
// entries.
func (m *Map[E]) Contains(e E) bool {
	for v := range m.Enums() {
		if v == e {
			return true
		}
	}
	return false
}

// ContainsLabel reports whether the label appears among the mapping's
// entries. The comparison is exact (case-sensitive).
func (m *Map[E]) ContainsLabel(label string) bool {
	for l := range m.Labels() {
		if l == label {
			return true
		}
	}
	return false
}

// IsValid reports whether any entry's enumerator has the given underlying
// integer value. This is useful for validating raw values decoded from an
// external source before converting them to E.
func (m *Map[E]) IsValid(v int64) bool {
	for _, p := range m.entries {
		if Underlying(p.Enum) == v {
			return true
		}
	}
	return false
}

// Len returns the number of entries in the mapping.
func (m *Map[E]) Len() int {
	return len(m.entries)
}

// String renders the mapping's labels as "EnumString{label0, label1, ...}"
// in construction order. This form is intended for diagnostics and logging;
// the separator and brace convention is not a stable wire format.
func (m *Map[E]) String() string {
	var b strings.Builder
	b.WriteString("EnumString{")
	for i, p := range m.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Label)
	}
	b.WriteByte('}')
	return b.String()
}

// Underlying returns the underlying integer value of e widened to int64.
// Values of unsigned 64-bit enumerator types above math.MaxInt64 wrap.
func Underlying[E Enum](e E) int64 {
	return int64(e)
}
