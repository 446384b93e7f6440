package cell

import (
	api "csvtojson/pkg/api/cell"
)

type nullValue struct{}

// EqualTo implements cell.Value.
func (n nullValue) EqualTo(other api.Value) bool {
	return other != nil && other.Kind() == api.Null
}

// Kind implements cell.Value.
func (n nullValue) Kind() api.Kind {
	return api.Null
}

// String implements cell.Value.
func (n nullValue) String() string {
	return ""
}

// MarshalJSON implements json.Marshaler.
func (n nullValue) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

var (
	_ api.Value = nullValue{}
	// None is the missing value, emitted as JSON null
	None = nullValue{}
)
