package converter

import "errors"

var (
	// ErrInput is returned when the input file cannot be opened or read
	ErrInput = errors.New("cannot read input")
	// ErrParse is returned when the input is not a CSV table
	ErrParse = errors.New("cannot parse CSV")
	// ErrOutput is returned when the output file cannot be written
	ErrOutput = errors.New("cannot write output")
	// ErrOutputIsInput is returned when the derived output path would overwrite the input
	ErrOutputIsInput = errors.New("output path is the input path")
	// ErrInvalidOption is returned for an option value the converter cannot use,
	// such as an unknown encoding label or a negative row limit
	ErrInvalidOption = errors.New("invalid option")
	// ErrVerify is returned when the written document does not match the table
	ErrVerify = errors.New("output verification failed")
)
