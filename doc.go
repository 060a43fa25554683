// Package enumstring maps enumerator values to string labels and back
// without hand-written switch statements.
//
// A Map is built once from an ordered list of (enumerator, label) pairs and
// is immutable afterward. Label-to-enumerator lookups are accelerated by an
// open-addressing hash index built at construction time; enumerator-to-label
// lookups and case-insensitive label lookups are ordered linear scans.
//
// # Core Concepts
//
// The package is organized around a few small pieces:
//
//   - Map: the immutable bidirectional mapping for one enum type
//   - Pair: one (enumerator, label) entry
//   - registry: an explicit global association from enum types to their Maps
//   - codec: JSON/YAML/text serialization of enumerators via their labels
//
// # Getting Started
//
// Define an enum type and build its mapping:
//
//	type Color int
//
//	const (
//		Red Color = iota
//		Green
//		Blue
//	)
//
//	var Colors = enumstring.New(
//		enumstring.Pair[Color]{Red, "red"},
//		enumstring.Pair[Color]{Green, "green"},
//		enumstring.Pair[Color]{Blue, "blue"},
//	)
//
// Then convert in either direction:
//
//	label, err := Colors.ToString(Green) // "green"
//	c, err := Colors.ToEnum("blue")      // Blue
//	c, err = Colors.ToEnumInsensitive("BLUE")
//
// # Lookup Complexity
//
// ToEnum is average O(1) through the hash index. ToString and
// ToEnumInsensitive are O(N) linear scans in construction order; the
// case-insensitive path is deliberately not hash-accelerated because case
// folding breaks hash equality.
//
// # Thread Safety
//
// A Map is never mutated after construction, so a fully constructed Map may
// be read concurrently from multiple goroutines without locks. Construction
// itself must be published with ordinary happens-before visibility (for
// example, package-level var initialization).
//
// # Error Handling
//
// All "not found" conditions return a distinguishable *Error rather than a
// sentinel result value, so callers cannot mistake a miss for a valid
// zero-valued enumerator. Use errors.Is with ErrInvalidEnumValue and
// ErrInvalidStringValue, or the IsNotFound helper.
package enumstring
