package cell

import (
	"encoding/json"
	"fmt"
)

// Value is a single typed cell of the output document.
type Value interface {
	fmt.Stringer
	json.Marshaler

	// Kind returns the JSON type of the value
	Kind() Kind

	// EqualTo checks if two values are equal
	EqualTo(other Value) bool
}
