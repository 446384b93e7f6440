package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	apiCell "csvtojson/pkg/api/cell"
	apiStreams "csvtojson/pkg/api/streams"
	"csvtojson/pkg/cell"
)

// Values is the typed table a document was written from.
type Values interface {
	// Len returns the number of rows
	Len() int
	// Value returns the cell at row, col
	Value(row, col int) apiCell.Value
}

// Option configures Document
type Option func(*documentChecker)

// WithValues also compares every cell of the document with the value at the
// same row and column of values.
func WithValues(values Values) Option {
	return func(c *documentChecker) {
		c.values = values
	}
}

// documentChecker walks the tokens of an output document
type documentChecker struct {
	source    apiStreams.JsonStream
	header    []string
	depth     int
	keyIdx    int
	expectKey bool
	records   int
	finished  bool
	values    Values
}

// Document reads a whole JSON document from stream and checks that it is an
// array of flat objects whose keys are exactly header, in order. It returns
// the number of objects.
func Document(ctx context.Context, stream apiStreams.JsonStream, header []string, opts ...Option) (int, error) {
	c := &documentChecker{source: stream, header: header}
	for _, opt := range opts {
		opt(c)
	}
	for {
		select {
		case <-ctx.Done():
			return c.records, ctx.Err()
		default:
			done, err := c.processJson(ctx)
			if err != nil {
				return c.records, err
			}
			if done {
				slog.DebugContext(ctx, "Document verified", slog.Int("records", c.records))
				return c.records, nil
			}
		}
	}
}

func (c *documentChecker) processJson(ctx context.Context) (bool, error) {
	tok, err := c.source.ReadJsonToken(ctx)
	if err == io.EOF {
		if !c.finished {
			return false, fmt.Errorf("%w: unexpected end of document", ErrShape)
		}
		return true, nil
	}
	if err != nil {
		slog.DebugContext(ctx, "Error reading JSON token", "error", err)
		return false, err
	}
	if c.finished {
		return false, fmt.Errorf("%w: data after the closing bracket", ErrShape)
	}

	switch c.depth {
	case 0:
		if tok != json.Delim('[') {
			return false, fmt.Errorf("%w: top level value is %v", ErrShape, tok)
		}
		c.depth++

	case 1:
		switch tok {
		case json.Delim('{'):
			c.depth++
			c.keyIdx = 0
			c.expectKey = true
		case json.Delim(']'):
			c.depth--
			c.finished = true
		default:
			return false, fmt.Errorf("%w: element %d is %v", ErrShape, c.records, tok)
		}

	case 2:
		if c.expectKey {
			return false, c.processKey(tok)
		}
		// This token is a value. Nested containers are not records.
		if _, ok := tok.(json.Delim); ok {
			return false, fmt.Errorf("%w: record %d has a nested value for %q", ErrShape, c.records, c.header[c.keyIdx])
		}
		if c.values != nil {
			if err := c.checkValue(tok); err != nil {
				return false, err
			}
		}
		c.keyIdx++
		c.expectKey = true
	}
	return false, nil
}

func (c *documentChecker) checkValue(tok json.Token) error {
	if c.records >= c.values.Len() {
		return fmt.Errorf("%w: record %d has no source row", ErrValue, c.records)
	}
	want := c.values.Value(c.records, c.keyIdx)
	got, err := decodeValue(tok, want.Kind())
	if err != nil || !want.EqualTo(got) {
		return fmt.Errorf("%w: record %d %q is %v, want %s %q", ErrValue, c.records, c.header[c.keyIdx], tok, want.Kind(), want)
	}
	return nil
}

// decodeValue turns a scalar token back into a cell. Numbers are read as kind,
// the kind of the cell they were written from.
func decodeValue(tok json.Token, kind apiCell.Kind) (apiCell.Value, error) {
	switch v := tok.(type) {
	case nil:
		return cell.None, nil
	case bool:
		return cell.NewBool(v), nil
	case string:
		return cell.NewText(v), nil
	case json.Number:
		switch kind {
		case apiCell.Int, apiCell.Float, apiCell.Decimal:
			return cell.Parse(kind, v.String())
		}
		return nil, fmt.Errorf("number %s in a %s cell", v, kind)
	}
	return nil, fmt.Errorf("unexpected token %T", tok)
}

func (c *documentChecker) processKey(tok json.Token) error {
	if tok == json.Delim('}') {
		if c.keyIdx != len(c.header) {
			return fmt.Errorf("%w: record %d has %d keys, header has %d", ErrKeys, c.records, c.keyIdx, len(c.header))
		}
		c.records++
		c.depth--
		return nil
	}
	key, ok := tok.(string)
	if !ok {
		return fmt.Errorf("%w: unexpected token %v", ErrShape, tok)
	}
	if c.keyIdx >= len(c.header) || key != c.header[c.keyIdx] {
		return fmt.Errorf("%w: record %d key %d is %q", ErrKeys, c.records, c.keyIdx, key)
	}
	c.expectKey = false
	return nil
}
