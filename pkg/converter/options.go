package converter

import (
	"fmt"

	"csvtojson/pkg/streams"
	"csvtojson/pkg/table"
)

// Option configures a conversion
type Option func(*options)

type options struct {
	output   string
	encoding string
	types    table.TypeMode
	numbers  table.NumberMode
	maxRows  int
	verify   bool
}

func defaultOptions() options {
	return options{
		encoding: streams.DefaultEncoding,
		types:    table.InferTypes,
		numbers:  table.Decimals,
	}
}

// validate checks the values that would otherwise only fail once the input is open.
func (o options) validate() error {
	if _, err := streams.LookupEncoding(o.encoding); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}
	if o.maxRows < 0 {
		return fmt.Errorf("%w: max rows %d is negative", ErrInvalidOption, o.maxRows)
	}
	return nil
}

// WithOutput writes to path instead of the derived sibling path
func WithOutput(path string) Option {
	return func(o *options) { o.output = path }
}

// WithEncoding sets the character encoding of the input
func WithEncoding(name string) Option {
	return func(o *options) { o.encoding = name }
}

// WithTypes sets how cell text is typed
func WithTypes(m table.TypeMode) Option {
	return func(o *options) { o.types = m }
}

// WithNumbers sets how float columns are written
func WithNumbers(m table.NumberMode) Option {
	return func(o *options) { o.numbers = m }
}

// WithMaxRows stops after n data rows; zero reads everything
func WithMaxRows(n int) Option {
	return func(o *options) { o.maxRows = n }
}

// WithVerify re-reads the written document and checks it against the table
func WithVerify(on bool) Option {
	return func(o *options) { o.verify = on }
}
