package metadata

import (
	"regexp"
)

// labelPrefix matches the longest "label: " prefix of a value. Greedy
// matching mirrors stripping up to the last ": " occurrence, so a value
// like "note: tissue: brain" cleans to "brain".
var labelPrefix = regexp.MustCompile(`^.*: `)

// CleanValue strips the label prefix from a single attribute value.
// Values without a "label: " prefix pass through unchanged, which makes
// the transform idempotent.
func CleanValue(s string) string {
	return labelPrefix.ReplaceAllString(s, "")
}

// Clean strips label prefixes from every value of every row, returning
// new rows. Input rows are not mutated.
func Clean(rows []AttributeRow) []AttributeRow {
	res := make([]AttributeRow, len(rows))
	for i, row := range rows {
		vals := make([]string, len(row.Values))
		for j, v := range row.Values {
			vals[j] = CleanValue(v)
		}
		res[i] = AttributeRow{
			SampleAccession: row.SampleAccession,
			Values:          vals,
		}
	}
	return res
}

// DropEmptyColumns removes attribute columns that are null in every
// row. If emptyAsNull is true, empty strings count as null; otherwise
// only columns absent from all rows are dropped, which with string
// values means nothing is dropped unless the column list is wider than
// the data. Returns the surviving column names and reshaped rows.
func DropEmptyColumns(
	columns []string,
	rows []AttributeRow,
	emptyAsNull bool,
) ([]string, []AttributeRow) {
	if !emptyAsNull || len(rows) == 0 {
		return columns, rows
	}

	keep := make([]bool, len(columns))
	for _, row := range rows {
		for i, v := range row.Values {
			if v != "" {
				keep[i] = true
			}
		}
	}

	var cols []string
	for i, c := range columns {
		if keep[i] {
			cols = append(cols, c)
		}
	}
	if len(cols) == len(columns) {
		return columns, rows
	}

	res := make([]AttributeRow, len(rows))
	for i, row := range rows {
		vals := make([]string, 0, len(cols))
		for j, v := range row.Values {
			if keep[j] {
				vals = append(vals, v)
			}
		}
		res[i] = AttributeRow{
			SampleAccession: row.SampleAccession,
			Values:          vals,
		}
	}
	return cols, res
}
