package table

import (
	"log/slog"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	apiCell "csvtojson/pkg/api/cell"
	"csvtojson/pkg/cell"
)

// Infer fixes the JSON kind of every column and converts all cells.
// It may be called again with different modes.
func (t *Table) Infer(types TypeMode, numbers NumberMode) error {
	kinds := make([]apiCell.Kind, len(t.header))
	for i := range kinds {
		kinds[i] = apiCell.Text
	}
	if types == InferTypes && len(t.rows) > 0 {
		detected, err := t.detectKinds(numbers)
		if err != nil {
			return err
		}
		kinds = detected
	}

	values := make([][]apiCell.Value, len(t.rows))
	for r, row := range t.rows {
		values[r] = make([]apiCell.Value, len(row))
	}
	for c := range t.header {
		kinds[c] = t.convertColumn(c, kinds[c], types, values)
	}

	t.kinds = kinds
	t.values = values
	return nil
}

// detectKinds asks gota for one series type per column.
func (t *Table) detectKinds(numbers NumberMode) ([]apiCell.Kind, error) {
	// the detector only skips empty cells and only knows lower case booleans
	records := make([][]string, 0, len(t.rows)+1)
	records = append(records, t.header)
	for _, row := range t.rows {
		clean := make([]string, len(row))
		for i, text := range row {
			switch {
			case cell.IsMissing(text):
			case strings.EqualFold(text, "true"), strings.EqualFold(text, "false"):
				clean[i] = strings.ToLower(text)
			default:
				clean[i] = text
			}
		}
		records = append(records, clean)
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(cell.MissingMarkers),
	)
	if df.Err != nil {
		return nil, df.Err
	}

	kinds := make([]apiCell.Kind, len(t.header))
	for i, typ := range df.Types() {
		switch typ {
		case series.Int:
			kinds[i] = apiCell.Int
		case series.Float:
			kinds[i] = apiCell.Float
			if numbers == Decimals {
				kinds[i] = apiCell.Decimal
			}
		case series.Bool:
			kinds[i] = apiCell.Bool
		default:
			kinds[i] = apiCell.Text
		}
	}
	return kinds, nil
}

// convertColumn fills column c of values. A column with a cell that does not
// parse as kind is emitted as text instead; the kind actually used is returned.
func (t *Table) convertColumn(c int, kind apiCell.Kind, types TypeMode, values [][]apiCell.Value) apiCell.Kind {
	for r, row := range t.rows {
		text := row[c]
		if types == InferTypes && cell.IsMissing(text) {
			values[r][c] = cell.None
			continue
		}
		v, err := cell.Parse(kind, text)
		if err != nil {
			slog.Debug("Column falls back to text", slog.String("column", t.header[c]), slog.String("kind", kind.String()), slog.Any("error", err))
			return t.convertColumn(c, apiCell.Text, types, values)
		}
		values[r][c] = v
	}
	return kind
}
