package table

import (
	"fmt"
	"strings"
)

// TypeMode selects how cell text becomes JSON values.
type TypeMode int

const (
	// InferTypes lets the tabular parser pick int, float, bool or string per column
	InferTypes TypeMode = iota
	// StringTypes emits every cell as its source text
	StringTypes
)

var _ fmt.Stringer = TypeMode(0)

// String returns the flag spelling of the mode
func (m TypeMode) String() string {
	switch m {
	case InferTypes:
		return "infer"
	case StringTypes:
		return "string"
	default:
		return fmt.Sprintf("TypeMode(%d)", int(m))
	}
}

// ParseTypeMode parses a flag value.
func ParseTypeMode(s string) (TypeMode, error) {
	if strings.EqualFold(s, "infer") {
		return InferTypes, nil
	} else if strings.EqualFold(s, "string") {
		return StringTypes, nil
	}
	return 0, fmt.Errorf("%w: types %q", ErrUnknownMode, s)
}

// NumberMode selects how float columns are written.
type NumberMode int

const (
	// Decimals keeps every digit and the scale of the source text (default)
	Decimals NumberMode = iota
	// Floats round-trips through float64 and prints the shortest form
	Floats
)

var _ fmt.Stringer = NumberMode(0)

// String returns the flag spelling of the mode
func (m NumberMode) String() string {
	switch m {
	case Decimals:
		return "decimal"
	case Floats:
		return "float"
	default:
		return fmt.Sprintf("NumberMode(%d)", int(m))
	}
}

// ParseNumberMode parses a flag value.
func ParseNumberMode(s string) (NumberMode, error) {
	if strings.EqualFold(s, "decimal") {
		return Decimals, nil
	} else if strings.EqualFold(s, "float") {
		return Floats, nil
	}
	return 0, fmt.Errorf("%w: numbers %q", ErrUnknownMode, s)
}
