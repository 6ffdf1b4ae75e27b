// Package metadata holds the pure transformation stages of the SRA
// metadata extraction pipeline: attribute splitting, value cleaning,
// the optional empty-column pre-filter, and the run-accession merge.
//
// Every stage is a function that takes immutable inputs and returns new
// slices. No stage touches a database handle or shares cursor state;
// all I/O lives in internal/ioextract and internal/iodb.
package metadata

// AttributeSeparator joins the labeled sub-fields inside the snapshot's
// free-text sample_attribute column.
const AttributeSeparator = " || "

// StudyRecord is one row of the sra linkage table joined to the study
// table, filtered to a single study accession. One row per (run, study)
// pair.
type StudyRecord struct {
	RunAccession    string
	SampleAccession string
	StudyAccession  string
	StudyTitle      string
	StudyType       string
	StudyAbstract   string
}

// SampleRecord is one row of the sample table. Attribute carries the
// raw free-text sample_attribute field, with labeled sub-fields joined
// by AttributeSeparator and each sub-field formatted as "label: value".
type SampleRecord struct {
	SampleAccession string
	Attribute       string
}

// AttributeRow is a sample with its attribute field expanded into
// values parallel to a caller-declared column list. Values hold raw
// "label: value" strings after Split and bare values after Clean.
type AttributeRow struct {
	SampleAccession string
	Values          []string
}

// OutputRecord is one row of the final table: a cleaned sample row
// re-attached to a run accession. A sample with N runs produces N
// output records with identical Values.
type OutputRecord struct {
	RunAccession    string
	SampleAccession string
	Values          []string
}

// DistinctSamples returns the distinct sample accessions from the
// study records, in first-seen order.
func DistinctSamples(studies []StudyRecord) []string {
	seen := make(map[string]struct{}, len(studies))
	var res []string
	for _, st := range studies {
		if _, ok := seen[st.SampleAccession]; ok {
			continue
		}
		seen[st.SampleAccession] = struct{}{}
		res = append(res, st.SampleAccession)
	}
	return res
}
