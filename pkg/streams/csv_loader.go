package streams

import (
	"context"
	"encoding/csv"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	iface "csvtojson/pkg/api/streams"
)

type csvReader struct {
	reader       *csv.Reader
	header       []string
	line         int
	validateUTF8 bool
}

var _ iface.CsvStream = (*csvReader)(nil)

// NewCsvStream creates a new CSV stream from an io.Reader.
// It reads the header row immediately.
func NewCsvStream(reader io.Reader, opts ...CsvOption) (iface.CsvStream, error) {
	cfg := csvConfig{decoder: decoderFor(unicode.UTF8), validateUTF8: true}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	csvR := csv.NewReader(transform.NewReader(reader, cfg.decoder))
	// Row width is checked against the header in ReadCsvRecord
	csvR.FieldsPerRecord = -1

	header, err := csvR.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}
	if cfg.validateUTF8 {
		if err := checkUTF8(csvR, header); err != nil {
			return nil, err
		}
	}
	line, _ := csvR.FieldPos(0)

	return &csvReader{
		reader:       csvR,
		header:       header,
		line:         line,
		validateUTF8: cfg.validateUTF8,
	}, nil
}

// ReadCsvRecord implements CsvStream.
// A row shorter than the header is padded with empty cells; a longer one is
// a *csv.ParseError wrapping csv.ErrFieldCount.
func (c *csvReader) ReadCsvRecord(ctx context.Context) ([]string, error) {
	if c == nil || c.reader == nil {
		return nil, io.EOF
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	record, err := c.reader.Read()
	if err != nil {
		return nil, err
	}
	c.line, _ = c.reader.FieldPos(0)

	if c.validateUTF8 {
		if err := checkUTF8(c.reader, record); err != nil {
			return nil, err
		}
	}

	if len(record) > len(c.header) {
		return nil, &csv.ParseError{StartLine: c.line, Line: c.line, Column: 1, Err: csv.ErrFieldCount}
	}
	for len(record) < len(c.header) {
		record = append(record, "")
	}
	return record, nil
}

// checkUTF8 reports the first field of the last read record that is not
// valid UTF-8.
func checkUTF8(r *csv.Reader, record []string) error {
	for i, field := range record {
		if utf8.ValidString(field) {
			continue
		}
		start, _ := r.FieldPos(0)
		line, col := r.FieldPos(i)
		return &csv.ParseError{StartLine: start, Line: line, Column: col, Err: encoding.ErrInvalidUTF8}
	}
	return nil
}

// GetHeader implements CsvStream.
func (c *csvReader) GetHeader() []string {
	if c == nil {
		return nil
	}
	return c.header
}

// Line implements CsvStream.
func (c *csvReader) Line() int {
	if c == nil {
		return 0
	}
	return c.line
}
