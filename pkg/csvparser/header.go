package csvparser

import (
	"fmt"
)

// NormalizeHeader makes every column name non-empty and unique.
// An empty name becomes "Unnamed: <index>"; a repeated name gets a ".N"
// suffix, counting up from the last suffix used for that name and skipping
// names already present in the header.
func NormalizeHeader(header []string) []string {
	names := make([]string, len(header))
	for i, col := range header {
		if col == "" {
			col = fmt.Sprintf("Unnamed: %d", i)
		}
		names[i] = col
	}

	taken := make(map[string]struct{}, len(names))
	for _, col := range names {
		taken[col] = struct{}{}
	}

	counts := make(map[string]int, len(names))
	seen := make(map[string]struct{}, len(names))
	for i, col := range names {
		if _, dup := seen[col]; !dup {
			seen[col] = struct{}{}
			continue
		}
		n := counts[col]
		name := col
		for {
			n++
			name = fmt.Sprintf("%s.%d", col, n)
			if _, ok := taken[name]; !ok {
				break
			}
		}
		counts[col] = n
		taken[name] = struct{}{}
		seen[name] = struct{}{}
		names[i] = name
	}
	return names
}
