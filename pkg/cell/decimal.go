package cell

import (
	"strings"

	api "csvtojson/pkg/api/cell"

	apd "github.com/cockroachdb/apd/v3"
)

var (
	_ api.Value    = (*decimalValue)(nil)
	_ DecimalValue = (*decimalValue)(nil)
)

type decimalValue struct {
	value apd.Decimal
}

// DecimalValue exposes the exact decimal behind a value.
type DecimalValue interface {
	// GetDecimal returns the decimal value
	GetDecimal() *apd.Decimal
}

// GetDecimal implements DecimalValue.
func (d *decimalValue) GetDecimal() *apd.Decimal {
	return &d.value
}

// Kind implements cell.Value.
func (d *decimalValue) Kind() api.Kind {
	return api.Decimal
}

// String implements cell.Value.
func (d *decimalValue) String() string {
	return d.value.String()
}

// MarshalJSON implements json.Marshaler. apd prints finite numbers in a form
// that is also a valid JSON number (1.50, -0.001, 1.2E+7).
func (d *decimalValue) MarshalJSON() ([]byte, error) {
	return []byte(d.value.String()), nil
}

// EqualTo implements cell.Value.
func (d *decimalValue) EqualTo(other api.Value) bool {
	if other == nil {
		return false
	}
	o, err := CastToDecimal(other)
	if err != nil {
		return false
	}
	return d.value.Cmp(o.GetDecimal()) == 0
}

// NewDecimal creates a new decimal value from an apd.Decimal value.
func NewDecimal(value *apd.Decimal) api.Value {
	return &decimalValue{
		value: *value,
	}
}

// ParseDecimal parses cell text keeping every digit and the scale of the source.
func ParseDecimal(value string) (api.Value, error) {
	dec, _, err := apd.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return nil, err
	}
	if dec.Form != apd.Finite {
		return nil, ErrNotFinite
	}
	return NewDecimal(dec), nil
}

// CastToDecimal attempts to cast a Value to a DecimalValue.
func CastToDecimal(value api.Value) (DecimalValue, error) {
	if value.Kind() != api.Decimal {
		return nil, ErrInvalidType
	}
	decimalValue, ok := value.(DecimalValue)
	if !ok {
		return nil, ErrInvalidType
	}
	return decimalValue, nil
}
