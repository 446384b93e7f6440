package cell

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	api "csvtojson/pkg/api/cell"
)

var (
	_ api.Value = intValue(0)
	_ api.Value = boolValue(false)
	_ api.Value = textValue("")
)

type intValue int64

func (i intValue) Kind() api.Kind               { return api.Int }
func (i intValue) String() string               { return strconv.FormatInt(int64(i), 10) }
func (i intValue) MarshalJSON() ([]byte, error) { return []byte(i.String()), nil }
func (i intValue) EqualTo(other api.Value) bool {
	o, ok := other.(intValue)
	return ok && o == i
}

// NewInt wraps an integer.
func NewInt(v int64) api.Value { return intValue(v) }

// ParseInt parses a base-10 integer cell.
func ParseInt(value string) (api.Value, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return nil, err
	}
	return intValue(v), nil
}

type boolValue bool

func (b boolValue) Kind() api.Kind               { return api.Bool }
func (b boolValue) String() string               { return strconv.FormatBool(bool(b)) }
func (b boolValue) MarshalJSON() ([]byte, error) { return []byte(b.String()), nil }
func (b boolValue) EqualTo(other api.Value) bool {
	o, ok := other.(boolValue)
	return ok && o == b
}

// NewBool wraps a boolean.
func NewBool(v bool) api.Value { return boolValue(v) }

// ParseBool accepts true and false in any letter case; 1, 0, t and f are not booleans.
func ParseBool(value string) (api.Value, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true":
		return boolValue(true), nil
	case "false":
		return boolValue(false), nil
	}
	return nil, ErrInvalidType
}

type textValue string

func (t textValue) Kind() api.Kind { return api.Text }
func (t textValue) String() string { return string(t) }
func (t textValue) EqualTo(other api.Value) bool {
	o, ok := other.(textValue)
	return ok && o == t
}

// MarshalJSON implements json.Marshaler. HTML characters are kept as-is.
func (t textValue) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(string(t)); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// NewText wraps cell text verbatim.
func NewText(v string) api.Value { return textValue(v) }
