package verify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	apiCell "csvtojson/pkg/api/cell"
	"csvtojson/pkg/cell"
)

type mockJsonStream struct {
	tokens []any
	index  int
}

// ReadJsonToken implements the JsonStream interface
func (m *mockJsonStream) ReadJsonToken(_ context.Context) (json.Token, error) {
	if m.index >= len(m.tokens) {
		return nil, io.EOF
	}
	token := m.tokens[m.index]
	m.index++
	return token, nil
}

func createMockFruitStream() *mockJsonStream {
	// [{"name":"apple","qty":3},{"name":"banana","qty":5}]
	return &mockJsonStream{
		tokens: []any{
			json.Delim('['),
			json.Delim('{'),
			"name", "apple",
			"qty", json.Number("3"),
			json.Delim('}'),
			json.Delim('{'),
			"name", "banana",
			"qty", json.Number("5"),
			json.Delim('}'),
			json.Delim(']'),
		},
	}
}

func TestDocument(t *testing.T) {
	header := []string{"name", "qty"}
	tests := []struct {
		name        string
		stream      *mockJsonStream
		wantRecords int
		wantErr     error
	}{
		{
			name:        "Two records",
			stream:      createMockFruitStream(),
			wantRecords: 2,
		},
		{
			name:   "Empty array",
			stream: &mockJsonStream{tokens: []any{json.Delim('['), json.Delim(']')}},
		},
		{
			name: "Null and bool values",
			stream: &mockJsonStream{tokens: []any{
				json.Delim('['),
				json.Delim('{'), "name", nil, "qty", true, json.Delim('}'),
				json.Delim(']'),
			}},
			wantRecords: 1,
		},
		{
			name:    "Top level object",
			stream:  &mockJsonStream{tokens: []any{json.Delim('{'), json.Delim('}')}},
			wantErr: ErrShape,
		},
		{
			name:    "Scalar element",
			stream:  &mockJsonStream{tokens: []any{json.Delim('['), json.Number("1"), json.Delim(']')}},
			wantErr: ErrShape,
		},
		{
			name: "Nested value",
			stream: &mockJsonStream{tokens: []any{
				json.Delim('['),
				json.Delim('{'), "name", json.Delim('['),
			}},
			wantErr: ErrShape,
		},
		{
			name: "Keys out of order",
			stream: &mockJsonStream{tokens: []any{
				json.Delim('['),
				json.Delim('{'), "qty", json.Number("3"), "name", "apple", json.Delim('}'),
				json.Delim(']'),
			}},
			wantErr: ErrKeys,
		},
		{
			name: "Missing key",
			stream: &mockJsonStream{tokens: []any{
				json.Delim('['),
				json.Delim('{'), "name", "apple", json.Delim('}'),
				json.Delim(']'),
			}},
			wantErr: ErrKeys,
		},
		{
			name: "Extra key",
			stream: &mockJsonStream{tokens: []any{
				json.Delim('['),
				json.Delim('{'), "name", "apple", "qty", json.Number("3"), "color", "red", json.Delim('}'),
				json.Delim(']'),
			}},
			wantErr: ErrKeys,
		},
		{
			name:    "Truncated document",
			stream:  &mockJsonStream{tokens: []any{json.Delim('['), json.Delim('{'), "name"}},
			wantErr: ErrShape,
		},
		{
			name:    "Trailing value",
			stream:  &mockJsonStream{tokens: []any{json.Delim('['), json.Delim(']'), json.Delim('[')}},
			wantErr: ErrShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Document(context.Background(), tt.stream, header)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Document() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && n != tt.wantRecords {
				t.Errorf("Document() = %d records, want %d", n, tt.wantRecords)
			}
		})
	}
}

// valueRows implements Values over literal rows
type valueRows [][]apiCell.Value

func (v valueRows) Len() int                         { return len(v) }
func (v valueRows) Value(row, col int) apiCell.Value { return v[row][col] }

func mustValue(v apiCell.Value, err error) apiCell.Value {
	if err != nil {
		panic(err)
	}
	return v
}

func TestDocumentValues(t *testing.T) {
	header := []string{"name", "qty"}
	fruit := valueRows{
		{cell.NewText("apple"), cell.NewInt(3)},
		{cell.NewText("banana"), cell.NewInt(5)},
	}
	one := func(name, qty any) *mockJsonStream {
		return &mockJsonStream{tokens: []any{
			json.Delim('['),
			json.Delim('{'), "name", name, "qty", qty, json.Delim('}'),
			json.Delim(']'),
		}}
	}

	tests := []struct {
		name    string
		stream  *mockJsonStream
		values  valueRows
		wantErr error
	}{
		{
			name:   "All values match",
			stream: createMockFruitStream(),
			values: fruit,
		},
		{
			name:    "Different number",
			stream:  one("apple", json.Number("4")),
			values:  fruit[:1],
			wantErr: ErrValue,
		},
		{
			name:    "Number written as string",
			stream:  one("apple", "3"),
			values:  fruit[:1],
			wantErr: ErrValue,
		},
		{
			name:    "Number in a text cell",
			stream:  one(json.Number("1"), json.Number("3")),
			values:  valueRows{{cell.NewText("1"), cell.NewInt(3)}},
			wantErr: ErrValue,
		},
		{
			name:   "Decimal keeps scale",
			stream: one("apple", json.Number("1.50")),
			values: valueRows{{cell.NewText("apple"), mustValue(cell.ParseDecimal("1.50"))}},
		},
		{
			name:   "Float shortest form",
			stream: one("apple", json.Number("0.1")),
			values: valueRows{{cell.NewText("apple"), mustValue(cell.ParseFloat("0.1"))}},
		},
		{
			name:   "Null and bool",
			stream: one(nil, true),
			values: valueRows{{cell.None, cell.NewBool(true)}},
		},
		{
			name:    "Bool differs",
			stream:  one(nil, false),
			values:  valueRows{{cell.None, cell.NewBool(true)}},
			wantErr: ErrValue,
		},
		{
			name:    "More records than rows",
			stream:  createMockFruitStream(),
			values:  fruit[:1],
			wantErr: ErrValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Document(context.Background(), tt.stream, header, WithValues(tt.values))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Document() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Document(ctx, createMockFruitStream(), []string{"name", "qty"}); err != context.Canceled {
		t.Errorf("Expected context.Canceled error, got %v", err)
	}
}
