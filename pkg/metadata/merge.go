package metadata

// Merge re-attaches run accessions to cleaned sample rows with an
// inner join on sample accession. The join is one-to-many: a sample
// associated with N runs appears N times in the result, once per run,
// with identical attribute values. Output order follows the study
// records, so the result is keyed by run accession in snapshot order.
func Merge(
	studies []StudyRecord,
	rows []AttributeRow,
) []OutputRecord {
	bySample := make(map[string][]string, len(rows))
	for _, row := range rows {
		bySample[row.SampleAccession] = row.Values
	}

	res := make([]OutputRecord, 0, len(studies))
	for _, st := range studies {
		vals, ok := bySample[st.SampleAccession]
		if !ok {
			continue
		}
		res = append(res, OutputRecord{
			RunAccession:    st.RunAccession,
			SampleAccession: st.SampleAccession,
			Values:          vals,
		})
	}
	return res
}
