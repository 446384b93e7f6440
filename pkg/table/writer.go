package table

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"

	"github.com/iancoleman/orderedmap"
)

// WriteJSON writes the table as one compact JSON array of objects, keys in
// header order, rows in input order. No trailing newline is written.
func (t *Table) WriteJSON(w io.Writer) error {
	if len(t.rows) > 0 && t.values == nil {
		return errNotTyped
	}

	bw := bufio.NewWriter(w)
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := bw.WriteByte('['); err != nil {
		return err
	}
	for r := range t.rows {
		if r > 0 {
			if err := bw.WriteByte(','); err != nil {
				return err
			}
		}
		buf.Reset()
		if err := enc.Encode(t.object(r)); err != nil {
			return err
		}
		if _, err := bw.Write(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})); err != nil {
			return err
		}
	}
	if err := bw.WriteByte(']'); err != nil {
		return err
	}
	return bw.Flush()
}

// object returns row r as an insertion-ordered map.
func (t *Table) object(r int) *orderedmap.OrderedMap {
	obj := orderedmap.New()
	obj.SetEscapeHTML(false)
	for c, name := range t.header {
		obj.Set(name, t.values[r][c])
	}
	return obj
}
