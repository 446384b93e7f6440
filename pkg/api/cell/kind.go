package cell

import "fmt"

// Kind is the JSON type a column is emitted as.
type Kind int

const (
	// Null marks a missing value
	Null Kind = iota
	// Bool is a true/false column
	Bool
	// Int is a 64-bit integer column
	Int
	// Float represents a float64 value
	Float
	// Decimal represents an arbitrary decimal value kept at source precision
	Decimal
	// Text is emitted as a JSON string
	Text
)

var _ fmt.Stringer = Kind(0)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case Decimal:
		return "decimal"
	case Text:
		return "text"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}
