package cell

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	api "csvtojson/pkg/api/cell"
)

var (
	_ api.Value  = (*floatValue)(nil)
	_ FloatValue = (*floatValue)(nil)
)

type floatValue struct {
	value float64
}

// FloatValue exposes the float64 behind a value.
type FloatValue interface {
	// GetFloat returns the float64 value
	GetFloat() float64
}

// GetFloat implements FloatValue.
func (f *floatValue) GetFloat() float64 {
	return f.value
}

// Kind implements cell.Value.
func (f *floatValue) Kind() api.Kind {
	return api.Float
}

// String implements cell.Value.
func (f *floatValue) String() string {
	return strconv.FormatFloat(f.value, 'g', -1, 64)
}

// MarshalJSON implements json.Marshaler.
func (f *floatValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.value)
}

// EqualTo implements cell.Value.
func (f *floatValue) EqualTo(other api.Value) bool {
	if other == nil {
		return false
	}
	o, err := CastToFloat(other)
	if err != nil {
		return false
	}
	return f.value == o.GetFloat()
}

// NewFloat creates a new float value from a float64 value.
func NewFloat(value float64) (api.Value, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return nil, ErrNotFinite
	}
	return &floatValue{value: value}, nil
}

// ParseFloat creates a new float value from cell text.
func ParseFloat(value string) (api.Value, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return nil, err
	}
	return NewFloat(v)
}

// CastToFloat attempts to cast a Value to a FloatValue.
func CastToFloat(value api.Value) (FloatValue, error) {
	if value.Kind() != api.Float {
		return nil, ErrInvalidType
	}
	fv, ok := value.(FloatValue)
	if !ok {
		return nil, ErrInvalidType
	}
	return fv, nil
}
