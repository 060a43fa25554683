package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zero-day-ai/enumstring"
	"github.com/zero-day-ai/enumstring/registry"
)

type color int

const (
	red color = iota + 1
	green
	blue
)

type shape int // never registered

func registerColors() {
	registry.Register(enumstring.New(
		enumstring.Pair[color]{Enum: red, Label: "red"},
		enumstring.Pair[color]{Enum: green, Label: "green"},
		enumstring.Pair[color]{Enum: blue, Label: "blue"},
	))
}

type config struct {
	Theme Value[color] `json:"theme" yaml:"theme"`
	Name  string       `json:"name" yaml:"name"`
}

func TestValue_JSON(t *testing.T) {
	registry.Clear()
	registerColors()

	t.Run("marshal", func(t *testing.T) {
		data, err := json.Marshal(config{Theme: Of(green), Name: "dark"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"theme":"green","name":"dark"}`, string(data))
	})

	t.Run("unmarshal", func(t *testing.T) {
		var cfg config
		require.NoError(t, json.Unmarshal([]byte(`{"theme":"blue","name":"x"}`), &cfg))
		assert.Equal(t, blue, cfg.Theme.Enum)
	})

	t.Run("unmarshal is case-insensitive", func(t *testing.T) {
		var cfg config
		require.NoError(t, json.Unmarshal([]byte(`{"theme":"BLUE"}`), &cfg))
		assert.Equal(t, blue, cfg.Theme.Enum)
	})

	t.Run("unknown label", func(t *testing.T) {
		var cfg config
		err := json.Unmarshal([]byte(`{"theme":"purple"}`), &cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, enumstring.ErrInvalidStringValue)
	})

	t.Run("non-string value", func(t *testing.T) {
		var cfg config
		err := json.Unmarshal([]byte(`{"theme":7}`), &cfg)
		require.Error(t, err)
	})

	t.Run("marshal unmapped enumerator", func(t *testing.T) {
		_, err := json.Marshal(config{Theme: Of(color(99))})
		require.Error(t, err)
		assert.ErrorIs(t, err, enumstring.ErrInvalidEnumValue)
	})
}

func TestValue_YAML(t *testing.T) {
	registry.Clear()
	registerColors()

	t.Run("marshal", func(t *testing.T) {
		data, err := yaml.Marshal(config{Theme: Of(red), Name: "light"})
		require.NoError(t, err)
		assert.YAMLEq(t, "theme: red\nname: light\n", string(data))
	})

	t.Run("unmarshal", func(t *testing.T) {
		var cfg config
		require.NoError(t, yaml.Unmarshal([]byte("theme: Green\nname: x\n"), &cfg))
		assert.Equal(t, green, cfg.Theme.Enum)
	})

	t.Run("unknown label", func(t *testing.T) {
		var cfg config
		err := yaml.Unmarshal([]byte("theme: purple\n"), &cfg)
		require.Error(t, err)
	})
}

func TestValue_Text(t *testing.T) {
	registry.Clear()
	registerColors()

	text, err := Of(blue).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "blue", string(text))

	var v Value[color]
	require.NoError(t, v.UnmarshalText([]byte("RED")))
	assert.Equal(t, red, v.Enum)

	err = v.UnmarshalText([]byte("purple"))
	require.Error(t, err)
	assert.ErrorIs(t, err, enumstring.ErrInvalidStringValue)
}

func TestValue_Unregistered(t *testing.T) {
	registry.Clear()
	registerColors()

	_, err := Of(shape(1)).MarshalText()
	require.Error(t, err)
	assert.ErrorIs(t, err, enumstring.ErrNotRegistered)

	var v Value[shape]
	err = v.UnmarshalText([]byte("circle"))
	require.Error(t, err)
	assert.ErrorIs(t, err, enumstring.ErrNotRegistered)
}

func TestValue_String(t *testing.T) {
	registry.Clear()
	registerColors()

	assert.Equal(t, "green", Of(green).String())
	assert.Equal(t, "", Of(color(99)).String())
	assert.Equal(t, "", Of(shape(1)).String())
}
