// Package converter turns one CSV file into a JSON array of records.
package converter

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	apiRecords "csvtojson/pkg/api/records"
	"csvtojson/pkg/csvparser"
	"csvtojson/pkg/streams"
	"csvtojson/pkg/table"
	"csvtojson/pkg/verify"
)

const recordQueueSize = 1000

// Result describes a finished conversion.
type Result struct {
	Input   string
	Output  string
	Rows    int
	Columns int
}

// Convert reads the CSV file filename and writes its rows as a JSON array of
// objects next to it (see OutputPath), replacing any existing file.
//
// lines is accepted for compatibility with existing callers and has no
// effect; use WithMaxRows to limit the rows converted.
func Convert(ctx context.Context, filename string, lines int, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return Result{Input: filename}, err
	}

	output := o.output
	if output == "" {
		var err error
		if output, err = OutputPath(filename); err != nil {
			return Result{}, fmt.Errorf("%w %q: %w", ErrOutput, filename, err)
		}
	}
	res := Result{Input: filename, Output: output}

	slog.DebugContext(ctx, "Converting", slog.String("input", filename), slog.String("output", output),
		slog.Int("lines", lines), slog.String("types", o.types.String()), slog.String("numbers", o.numbers.String()))

	tbl, err := load(ctx, filename, o)
	if err != nil {
		return res, err
	}
	if err := tbl.Infer(o.types, o.numbers); err != nil {
		return res, fmt.Errorf("%w %q: %w", ErrParse, filename, err)
	}
	res.Rows = tbl.Len()
	res.Columns = len(tbl.Header())

	if err := writeFileAtomic(output, tbl.WriteJSON); err != nil {
		slog.DebugContext(ctx, "Error writing output", slog.String("output", output), slog.Any("error", err))
		return res, fmt.Errorf("%w %q: %w", ErrOutput, output, err)
	}

	if o.verify {
		if err := check(ctx, output, tbl); err != nil {
			return res, err
		}
	}

	slog.InfoContext(ctx, "Converted", slog.String("output", output), slog.Int("rows", res.Rows), slog.Int("columns", res.Columns))
	return res, nil
}

// load parses the whole input into a table. The parser runs in its own
// goroutine and hands records to the collector over a channel.
func load(ctx context.Context, filename string, o options) (*table.Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInput, filename, err)
	}
	defer file.Close()

	stream, err := streams.NewCsvStream(file, streams.WithEncoding(o.encoding))
	if err != nil {
		return nil, classify(filename, err)
	}

	parser, err := csvparser.NewRecordParser(stream, csvparser.WithMaxRows(o.maxRows))
	if err != nil {
		return nil, classify(filename, err)
	}

	records := make(chan apiRecords.Record, recordQueueSize)
	eg, gctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return parser.ParseRecords(gctx, records)
	})

	var tbl *table.Table
	eg.Go(func() error {
		var err error
		tbl, err = table.Collect(gctx, parser.Header(), records)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, classify(filename, err)
	}
	return tbl, nil
}

// classify wraps a load error with the sentinel of its taxonomy.
func classify(filename string, err error) error {
	var perr *csv.ParseError
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, streams.ErrUnknownEncoding), errors.Is(err, csvparser.ErrNegativeMaxRows):
		return fmt.Errorf("%w: %w", ErrInvalidOption, err)
	case errors.As(err, &perr),
		errors.Is(err, csvparser.ErrMalformed),
		errors.Is(err, csvparser.ErrNoColumns),
		errors.Is(err, streams.ErrNoHeader),
		errors.Is(err, table.ErrRowWidth):
		return fmt.Errorf("%w %q: %w", ErrParse, filename, err)
	default:
		return fmt.Errorf("%w %q: %w", ErrInput, filename, err)
	}
}

// check re-reads the written document and compares it with the table.
func check(ctx context.Context, output string, tbl *table.Table) error {
	f, err := os.Open(output)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrVerify, output, err)
	}
	defer f.Close()

	n, err := verify.Document(ctx, streams.NewJsonStream(f), tbl.Header(), verify.WithValues(tbl))
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrVerify, output, err)
	}
	if n != tbl.Len() {
		return fmt.Errorf("%w %q: %d records written, %d rows read", ErrVerify, output, n, tbl.Len())
	}
	return nil
}
