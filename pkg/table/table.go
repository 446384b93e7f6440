package table

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	apiCell "csvtojson/pkg/api/cell"
	apiRecords "csvtojson/pkg/api/records"
)

// Table holds every row of one CSV file in memory.
type Table struct {
	header []string
	rows   [][]string

	// set by Infer
	kinds  []apiCell.Kind
	values [][]apiCell.Value
}

// Collect drains records into a table. It returns when the channel is closed
// or the context is done.
func Collect(ctx context.Context, header []string, in <-chan apiRecords.Record) (*Table, error) {
	t := &Table{header: slices.Clone(header)}
	done := ctx.Done()

	for {
		select {
		case <-done:
			return nil, ctx.Err()
		case rec, ok := <-in:
			if !ok {
				slog.DebugContext(ctx, "Collected table", slog.Int("rows", len(t.rows)), slog.Int("columns", len(t.header)))
				return t, nil
			}
			values := rec.Values()
			if len(values) != len(t.header) {
				return nil, fmt.Errorf("%w: line %d has %d cells, header has %d", ErrRowWidth, rec.Line(), len(values), len(t.header))
			}
			t.rows = append(t.rows, values)
		}
	}
}

// Header returns the column names in order.
func (t *Table) Header() []string {
	return t.header
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Kinds returns the per-column kinds chosen by Infer, or nil before it ran.
func (t *Table) Kinds() []apiCell.Kind {
	return t.kinds
}

// Value returns the typed cell at row, col. Infer must have run.
func (t *Table) Value(row, col int) apiCell.Value {
	return t.values[row][col]
}
