package tooltip

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/tipkit/pkg/errors"
)

// Offsets keep their numeric or string nature across JSON, TOML and YAML:
// a number literal decodes to [Abs], a string literal to [Delta].

// MarshalJSON encodes numeric offsets as numbers, string offsets as strings
// and absent offsets as null.
func (o Offset) MarshalJSON() ([]byte, error) {
	switch o.kind {
	case offsetAbs:
		return json.Marshal(o.abs)
	case offsetDelta:
		return json.Marshal(o.delta)
	}
	return []byte("null"), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Offset) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*o = Offset{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidOffset, err, "invalid offset")
		}
		*o = Delta(s)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidOffset, err, "offset must be a number or a string")
	}
	*o = Abs(v)
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler from github.com/BurntSushi/toml.
func (o *Offset) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case int64:
		*o = Abs(float64(v))
	case float64:
		*o = Abs(v)
	case string:
		*o = Delta(v)
	default:
		return errors.New(errors.ErrCodeInvalidOffset, "offset must be a number or a string, got %T", v)
	}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Offset) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.New(errors.ErrCodeInvalidOffset, "offset must be a scalar (line %d)", node.Line)
	}
	switch node.Tag {
	case "!!null":
		*o = Offset{}
	case "!!int", "!!float":
		var v float64
		if err := node.Decode(&v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidOffset, err, "invalid offset (line %d)", node.Line)
		}
		*o = Abs(v)
	case "!!str":
		*o = Delta(node.Value)
	default:
		return errors.New(errors.ErrCodeInvalidOffset, "offset must be a number or a string (line %d)", node.Line)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (o Offset) MarshalYAML() (any, error) {
	switch o.kind {
	case offsetAbs:
		return o.abs, nil
	case offsetDelta:
		return o.delta, nil
	}
	return nil, nil
}

// GoString makes offsets readable in test failure output.
func (o Offset) GoString() string {
	switch o.kind {
	case offsetAbs:
		return fmt.Sprintf("tooltip.Abs(%g)", o.abs)
	case offsetDelta:
		return fmt.Sprintf("tooltip.Delta(%q)", o.delta)
	}
	return "tooltip.Offset{}"
}
