package table

import "errors"

var (
	// ErrRowWidth is returned for a record whose cell count differs from the header
	ErrRowWidth = errors.New("record width does not match header")
	// ErrUnknownMode is returned when a type or number mode name is not recognised
	ErrUnknownMode = errors.New("unknown mode")

	errNotTyped = errors.New("table column types not inferred")
)
