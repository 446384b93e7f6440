package records

import "context"

// RecordParser turns a CSV source into records.
type RecordParser interface {
	// Header returns the normalised column names every record is keyed by.
	Header() []string

	// ParseRecords reads data from a source and sends one record per data row
	// to the provided channel. The channel is closed when parsing is complete or an error occurs.
	ParseRecords(ctx context.Context, out chan<- Record) error
}
