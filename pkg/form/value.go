package form

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Value is the raw text of one form cell. Decoders accept strings, numbers,
// booleans and null; null decodes to the blank value.
type Value string

// Blank reports whether the value is empty after trimming whitespace.
func (v Value) Blank() bool {
	return strings.TrimSpace(string(v)) == ""
}

// Text returns the trimmed cell text.
func (v Value) Text() string {
	return strings.TrimSpace(string(v))
}

// Float parses the value as a finite number.
func (v Value) Float() (float64, bool) {
	text := v.Text()
	if text == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Int parses the value as an integer. Decimal input is truncated toward zero.
func (v Value) Int() (int, bool) {
	text := v.Text()
	if text == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(text); err == nil {
		return n, true
	}
	f, ok := v.Float()
	if !ok || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// Number formats f without trailing zeros, as a user would type it.
func Number(f float64) Value {
	return Value(strconv.FormatFloat(f, 'f', -1, 64))
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*v = ""
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value(s)
		return nil
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		*v = Value(data)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("form: cell must be a string, number or null: %w", err)
	}
	*v = Value(n.String())
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("form: line %d: cell must be a scalar", node.Line)
	}
	if node.Tag == "!!null" {
		*v = ""
		return nil
	}
	*v = Value(node.Value)
	return nil
}
