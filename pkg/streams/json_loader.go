package streams

import (
	"context"
	"encoding/json"
	"io"

	iface "csvtojson/pkg/api/streams"
)

type jsonReader struct {
	decoder *json.Decoder
}

var _ iface.JsonStream = (*jsonReader)(nil)

// NewJsonStream tokenizes a JSON document, keeping numbers as json.Number
// so they can be compared against the source text.
func NewJsonStream(reader io.Reader) iface.JsonStream {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	return &jsonReader{decoder: decoder}
}

// ReadJsonToken implements JsonStream.
func (j *jsonReader) ReadJsonToken(ctx context.Context) (json.Token, error) {
	if j == nil || j.decoder == nil {
		return nil, io.EOF
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
		return j.decoder.Token()
	}
}
