package converter

import (
	"path/filepath"
	"strings"
)

// OutputPath derives the JSON path for a CSV input by replacing its extension
// with ".json": "data.csv" becomes "data.json", "data" becomes "data.json".
func OutputPath(input string) (string, error) {
	out := strings.TrimSuffix(input, filepath.Ext(input)) + ".json"
	if filepath.Clean(out) == filepath.Clean(input) {
		return "", ErrOutputIsInput
	}
	return out, nil
}
