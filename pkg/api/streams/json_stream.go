package streams

import (
	"context"
	"encoding/json"
)

// JsonStream yields the tokens of a written JSON document one by one.
type JsonStream interface {
	// ReadJsonToken reads the next token. Numbers are returned as json.Number.
	// Returns io.EOF after the last token of the document.
	ReadJsonToken(ctx context.Context) (json.Token, error)
}
