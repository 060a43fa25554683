// Package codec serializes enumerators as their registered labels.
//
// Value wraps an enumerator and implements the text, JSON, and YAML
// marshaling interfaces. Encoding renders the exact label registered for the
// value; decoding accepts any ASCII casing of a registered label:
//
//	type Config struct {
//		Theme codec.Value[Color] `json:"theme" yaml:"theme"`
//	}
//
//	// {"theme": "green"} decodes to Value[Color]{Enum: Green},
//	// and so does {"theme": "GREEN"}.
//
// The enum type must have a mapping registered with the registry package
// before any Value of that type is encoded or decoded; otherwise the
// operation fails with a KindNotRegistered error. Unknown labels fail with
// the mapping's KindInvalidString error.
package codec
