package verify

import "errors"

var (
	// ErrShape is returned when the document is not a flat array of objects
	ErrShape = errors.New("document is not an array of records")
	// ErrKeys is returned when a record's keys differ from the header
	ErrKeys = errors.New("record keys do not match header")
	// ErrValue is returned when a cell differs from the value it was written from
	ErrValue = errors.New("record value does not match source")
)
