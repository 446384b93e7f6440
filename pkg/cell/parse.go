package cell

import (
	"fmt"
	"slices"

	api "csvtojson/pkg/api/cell"
)

// MissingMarkers are the cell texts read as a missing value when types are inferred.
var MissingMarkers = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

// IsMissing reports whether text is one of MissingMarkers.
func IsMissing(text string) bool {
	return slices.Contains(MissingMarkers, text)
}

// Parse converts cell text to a value of the given kind.
// Non-finite numbers come back as None.
func Parse(kind api.Kind, text string) (api.Value, error) {
	var (
		v   api.Value
		err error
	)
	switch kind {
	case api.Null:
		return None, nil
	case api.Text:
		return NewText(text), nil
	case api.Bool:
		v, err = ParseBool(text)
	case api.Int:
		v, err = ParseInt(text)
	case api.Float:
		v, err = ParseFloat(text)
	case api.Decimal:
		v, err = ParseDecimal(text)
		if err != nil && err != ErrNotFinite {
			// hex floats and the like are numbers to strconv but not to apd
			v, err = ParseFloat(text)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidType, kind)
	}
	if err == ErrNotFinite {
		return None, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse %q as %s: %w", text, kind, err)
	}
	return v, nil
}
