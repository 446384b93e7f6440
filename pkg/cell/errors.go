package cell

import "errors"

var (
	// ErrInvalidType is returned when an invalid type conversion is attempted
	ErrInvalidType = errors.New("invalid type conversion")
	// ErrNotFinite is returned for infinities and NaN, which JSON cannot carry
	ErrNotFinite = errors.New("number is not finite")
)
