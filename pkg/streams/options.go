package streams

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is the encoding assumed when none is configured.
const DefaultEncoding = "utf-8"

// CsvOption configures a CSV stream
type CsvOption func(*csvConfig) error

type csvConfig struct {
	decoder transform.Transformer
	// set for UTF-8 input, which is passed through undecoded
	validateUTF8 bool
}

// WithEncoding decodes the input from the named character encoding to UTF-8.
// Names are WHATWG labels: "utf-8", "windows-1252", "latin1", "shift_jis", ...
// A leading UTF-8 or UTF-16 byte order mark wins over the configured encoding
// and is not passed through.
func WithEncoding(name string) CsvOption {
	return func(c *csvConfig) error {
		enc, err := LookupEncoding(name)
		if err != nil {
			return err
		}
		c.decoder = decoderFor(enc)
		c.validateUTF8 = isUTF8(enc)
		return nil
	}
}

// LookupEncoding resolves an encoding label; an empty label means DefaultEncoding.
func LookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultEncoding
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrUnknownEncoding, name, err)
	}
	return enc, nil
}

// decoderFor returns the transformer turning input in enc into UTF-8.
// UTF-8 input is not decoded: the x/text decoder would replace invalid bytes
// with U+FFFD, so records are validated instead.
func decoderFor(enc encoding.Encoding) transform.Transformer {
	if isUTF8(enc) {
		return unicode.BOMOverride(transform.Nop)
	}
	return unicode.BOMOverride(enc.NewDecoder())
}

func isUTF8(enc encoding.Encoding) bool {
	name, err := htmlindex.Name(enc)
	return err == nil && name == DefaultEncoding
}
