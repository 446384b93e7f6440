package streams

import "errors"

var (
	// ErrNoHeader is returned for input without a single CSV line
	ErrNoHeader = errors.New("no columns to parse from file")
	// ErrUnknownEncoding is returned for an encoding label x/text does not know
	ErrUnknownEncoding = errors.New("unknown character encoding")
)
