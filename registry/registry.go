package registry

import (
	"reflect"
	"sync"

	"github.com/zero-day-ai/enumstring"
)

// mappings is the global enum mapping registry, keyed by enum type.
// Values are *enumstring.Map[E] for the keyed E.
var (
	mappings = make(map[reflect.Type]any)
	mu       sync.RWMutex
)

// Register associates m with the enum type E. It is typically called from
// package init, right after the mapping value is constructed. Registering a
// type that already has a mapping replaces the previous mapping as a whole;
// entries are never merged.
func Register[E enumstring.Enum](m *enumstring.Map[E]) {
	mu.Lock()
	defer mu.Unlock()

	mappings[reflect.TypeFor[E]()] = m
}

// For returns the mapping registered for the enum type E, or false if none
// has been registered.
func For[E enumstring.Enum]() (*enumstring.Map[E], bool) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := mappings[reflect.TypeFor[E]()]
	if !ok {
		return nil, false
	}
	return m.(*enumstring.Map[E]), true
}

// ToString converts an enumerator to its label using the mapping registered
// for E. It fails with a KindNotRegistered error if E has no mapping, and
// with the mapping's own KindInvalidEnum error on a lookup miss.
func ToString[E enumstring.Enum](e E) (string, error) {
	m, ok := For[E]()
	if !ok {
		return "", enumstring.NewNotRegisteredError("registry.ToString")
	}
	return m.ToString(e)
}

// ToEnum converts a label to its enumerator using the mapping registered
// for E: registry.ToEnum[Color]("blue"). It fails with a KindNotRegistered
// error if E has no mapping, and with the mapping's own KindInvalidString
// error on a lookup miss.
func ToEnum[E enumstring.Enum](label string) (E, error) {
	m, ok := For[E]()
	if !ok {
		var zero E
		return zero, enumstring.NewNotRegisteredError("registry.ToEnum")
	}
	return m.ToEnum(label)
}

// ToEnumInsensitive converts a label to its enumerator using per-byte ASCII
// case folding against the mapping registered for E.
func ToEnumInsensitive[E enumstring.Enum](label string) (E, error) {
	m, ok := For[E]()
	if !ok {
		var zero E
		return zero, enumstring.NewNotRegisteredError("registry.ToEnumInsensitive")
	}
	return m.ToEnumInsensitive(label)
}

// Clear resets the entire registry.
// This is primarily useful for testing.
func Clear() {
	mu.Lock()
	defer mu.Unlock()

	mappings = make(map[reflect.Type]any)
}
