package csvparser

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"

	apiRecords "csvtojson/pkg/api/records"
	apiStreams "csvtojson/pkg/api/streams"
)

var (
	_ apiRecords.Record       = (*record)(nil)
	_ apiRecords.RecordParser = (*recordParser)(nil)
)

// record is one data row in the column order of the normalised header
type record struct {
	values []string
	line   int
}

// Values returns the raw cell text
func (r *record) Values() []string {
	return r.values
}

// Line returns the line the row started on
func (r *record) Line() int {
	return r.line
}

// recordParser reads CSV records and emits them keyed by the header
// It implements the RecordParser interface
type recordParser struct {
	stream  apiStreams.CsvStream
	header  []string
	maxRows int
}

// NewRecordParser creates a new record parser over the given CSV stream.
// The stream's header is normalised with NormalizeHeader.
func NewRecordParser(stream apiStreams.CsvStream, opts ...Option) (apiRecords.RecordParser, error) {
	if stream == nil {
		return nil, errNilCsvStream
	}
	header := stream.GetHeader()
	if len(header) == 0 {
		return nil, ErrNoColumns
	}
	p := &recordParser{
		stream: stream,
		header: NormalizeHeader(header),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Header implements RecordParser.
func (p *recordParser) Header() []string {
	if p == nil {
		return nil
	}
	return p.header
}

// ParseRecords reads the CSV stream and sends one record per data row to the provided channel
// The channel is closed when parsing is complete or an error occurs
func (p *recordParser) ParseRecords(ctx context.Context, out chan<- apiRecords.Record) error {
	if p == nil || p.stream == nil {
		close(out)
		return errNilParserOrStream
	}

	defer close(out)

	rows := 0
	for {
		if p.maxRows > 0 && rows >= p.maxRows {
			slog.DebugContext(ctx, "Row limit reached", slog.Int("max_rows", p.maxRows))
			return nil
		}

		values, err := p.stream.ReadCsvRecord(ctx)
		if err == io.EOF {
			slog.DebugContext(ctx, "End of CSV stream", slog.Int("rows", rows))
			return nil
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			slog.DebugContext(ctx, "Malformed CSV row", slog.Int("line", perr.Line), slog.Any("error", err))
			return fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- &record{
			values: values,
			line:   p.stream.Line(),
		}:
		}
		rows++
	}
}
