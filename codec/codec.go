package codec

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/zero-day-ai/enumstring"
	"github.com/zero-day-ai/enumstring/registry"
)

// Value wraps an enumerator so it serializes as its registered label.
// The zero Value holds the zero enumerator; whether that encodes successfully
// depends on whether the zero enumerator is part of the registered mapping.
type Value[E enumstring.Enum] struct {
	// Enum is the wrapped enumerator.
	Enum E
}

// Of returns a Value wrapping e. It exists so call sites can avoid spelling
// out the struct literal's type parameter.
func Of[E enumstring.Enum](e E) Value[E] {
	return Value[E]{Enum: e}
}

// MarshalText implements encoding.TextMarshaler, rendering the enumerator
// as its exact registered label.
func (v Value[E]) MarshalText() ([]byte, error) {
	m, ok := registry.For[E]()
	if !ok {
		return nil, enumstring.NewNotRegisteredError("codec.Value.MarshalText")
	}
	label, err := m.ToString(v.Enum)
	if err != nil {
		return nil, err
	}
	return []byte(label), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, resolving the label
// case-insensitively against the registered mapping.
func (v *Value[E]) UnmarshalText(text []byte) error {
	m, ok := registry.For[E]()
	if !ok {
		return enumstring.NewNotRegisteredError("codec.Value.UnmarshalText")
	}
	e, err := m.ToEnumInsensitive(string(text))
	if err != nil {
		return err
	}
	v.Enum = e
	return nil
}

// MarshalJSON implements json.Marshaler, encoding the enumerator as a JSON
// string holding its label.
func (v Value[E]) MarshalJSON() ([]byte, error) {
	label, err := v.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(label))
}

// UnmarshalJSON implements json.Unmarshaler, decoding a JSON string and
// resolving it as a label.
func (v *Value[E]) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return v.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler, encoding the enumerator as a YAML
// scalar holding its label.
func (v Value[E]) MarshalYAML() (any, error) {
	label, err := v.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(label), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, decoding a YAML scalar and
// resolving it as a label.
func (v *Value[E]) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return v.UnmarshalText([]byte(s))
}

// String returns the registered label for the wrapped enumerator, or the
// empty string if the type is unregistered or the value unmapped. Use
// MarshalText when the failure needs to be distinguished.
func (v Value[E]) String() string {
	m, ok := registry.For[E]()
	if !ok {
		return ""
	}
	return m.StringOr(v.Enum, "")
}
