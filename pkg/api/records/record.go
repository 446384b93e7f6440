package records

// Record is one data row of a CSV file. Its values are in the column order
// of the parser's Header.
type Record interface {
	// Values returns the raw cell text, one entry per column.
	Values() []string

	// Line returns the input line the row started on.
	Line() int
}
