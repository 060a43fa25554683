// Package registry provides a global association from enum types to their
// enumstring mappings.
//
// Each enum type's mapping is an explicit, named, immutable value registered
// once at a well-defined point, typically package init:
//
//	var Colors = enumstring.New(
//		enumstring.Pair[Color]{Red, "red"},
//		enumstring.Pair[Color]{Green, "green"},
//		enumstring.Pair[Color]{Blue, "blue"},
//	)
//
//	func init() {
//		registry.Register(Colors)
//	}
//
// Conversions can then be written against the type alone:
//
//	label, err := registry.ToString(Green)
//	c, err := registry.ToEnum[Color]("blue")
//
// Registration installs a complete mapping for a type; individual
// enumerators are never added at runtime. Registering the same type again
// replaces the previous mapping as a whole.
//
// # Thread Safety
//
// All operations are thread-safe and can be called concurrently from
// multiple goroutines. The registry uses sync.RWMutex for efficient
// concurrent access; the mappings themselves are immutable.
package registry
