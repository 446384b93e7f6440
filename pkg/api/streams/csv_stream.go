package streams

import "context"

// CsvStream represents a stream of CSV records.
type CsvStream interface {
	// ReadCsvRecord reads the next CSV record from the stream.
	// Returns io.EOF once every data row has been read.
	ReadCsvRecord(ctx context.Context) ([]string, error)

	// GetHeader returns the header row of the CSV file.
	GetHeader() []string

	// Line returns the input line the last returned record started on.
	Line() int
}
