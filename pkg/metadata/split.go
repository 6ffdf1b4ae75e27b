package metadata

import (
	"fmt"
	"strings"
)

// ShapeMismatchError reports a sample whose attribute field did not
// split into the expected number of parts. The pipeline halts on it
// instead of truncating or padding the row.
type ShapeMismatchError struct {
	SampleAccession string
	Attribute       string
	Want            int
	Got             int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf(
		"sample %s: attribute field split into %d parts, want %d: %q",
		e.SampleAccession, e.Got, e.Want, e.Attribute,
	)
}

// Split expands each sample's attribute field into values assigned
// positionally to the given columns: part i goes to column i. The
// number of parts must equal len(columns) for every sample; a mismatch
// returns a ShapeMismatchError naming the offending sample.
func Split(
	samples []SampleRecord,
	columns []string,
) ([]AttributeRow, error) {
	res := make([]AttributeRow, 0, len(samples))
	for _, smp := range samples {
		parts := strings.Split(smp.Attribute, AttributeSeparator)
		if len(parts) != len(columns) {
			return nil, &ShapeMismatchError{
				SampleAccession: smp.SampleAccession,
				Attribute:       smp.Attribute,
				Want:            len(columns),
				Got:             len(parts),
			}
		}
		res = append(res, AttributeRow{
			SampleAccession: smp.SampleAccession,
			Values:          parts,
		})
	}
	return res, nil
}

// SplitByLabel expands each sample's attribute field by matching the
// "label:" prefix of each part against the column names instead of
// relying on position. Parts with labels outside the column list are
// ignored, columns without a matching part stay empty. This mode
// tolerates reordered or missing attributes, so it has no shape
// mismatch failure.
func SplitByLabel(
	samples []SampleRecord,
	columns []string,
) ([]AttributeRow, error) {
	colIdx := make(map[string]int, len(columns))
	for i, c := range columns {
		colIdx[c] = i
	}

	res := make([]AttributeRow, 0, len(samples))
	for _, smp := range samples {
		vals := make([]string, len(columns))
		for _, part := range strings.Split(smp.Attribute, AttributeSeparator) {
			label, _, ok := strings.Cut(part, ": ")
			if !ok {
				continue
			}
			if i, ok := colIdx[label]; ok {
				vals[i] = part
			}
		}
		res = append(res, AttributeRow{
			SampleAccession: smp.SampleAccession,
			Values:          vals,
		})
	}
	return res, nil
}
