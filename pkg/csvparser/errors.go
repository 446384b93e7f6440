package csvparser

import "errors"

var (
	// Error definitions
	errNilCsvStream      = errors.New("csv stream cannot be nil")
	errNilParserOrStream = errors.New("parser or stream is nil")

	// ErrNoColumns is returned when the header row has no columns
	ErrNoColumns = errors.New("no columns to parse from file")
	// ErrNegativeMaxRows is returned by WithMaxRows for a negative limit
	ErrNegativeMaxRows = errors.New("max rows cannot be negative")
	// ErrMalformed wraps every error the CSV tokenizer reports for a data row
	ErrMalformed = errors.New("malformed CSV")
)
