package ioextract

import (
	"context"
	"database/sql"
	"strings"

	"github.com/gnames/sradb/pkg/metadata"
)

// sampleBatchSize keeps the IN-clause well under SQLite's bound
// parameter limit.
const sampleBatchSize = 500

// resolveStudies filters the sra linkage table by study accession and
// inner-joins the study table. Rows without a matching study record
// are dropped. An unknown accession returns zero rows, not an error.
func resolveStudies(
	ctx context.Context,
	handle *sql.DB,
	studyID string,
) ([]metadata.StudyRecord, error) {
	query := `
		SELECT
			sra.run_accession,
			sra.sample_accession,
			sra.study_accession,
			study.study_title,
			study.study_type,
			study.study_abstract
		FROM sra
		INNER JOIN study
			ON sra.study_accession = study.study_accession
		WHERE sra.study_accession = ?
	`

	rows, err := handle.QueryContext(ctx, query, studyID)
	if err != nil {
		return nil, StudyQueryError(studyID, err)
	}
	defer rows.Close()

	var res []metadata.StudyRecord
	for rows.Next() {
		var run, smp, study, title, typ, abstract sql.NullString
		err = rows.Scan(&run, &smp, &study, &title, &typ, &abstract)
		if err != nil {
			return nil, StudyQueryError(studyID, err)
		}
		res = append(res, metadata.StudyRecord{
			RunAccession:    run.String,
			SampleAccession: smp.String,
			StudyAccession:  study.String,
			StudyTitle:      title.String,
			StudyType:       typ.String,
			StudyAbstract:   abstract.String,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, StudyQueryError(studyID, err)
	}

	return res, nil
}

// resolveSamples selects the sample rows whose accession is in the
// given set. Membership is resolved in batches; duplicate accessions
// in the snapshot collapse to one record (set semantics).
func resolveSamples(
	ctx context.Context,
	handle *sql.DB,
	sampleIDs []string,
) ([]metadata.SampleRecord, error) {
	seen := make(map[string]struct{}, len(sampleIDs))
	var res []metadata.SampleRecord

	for start := 0; start < len(sampleIDs); start += sampleBatchSize {
		end := min(start+sampleBatchSize, len(sampleIDs))
		batch := sampleIDs[start:end]

		recs, err := querySampleBatch(ctx, handle, batch)
		if err != nil {
			return nil, err
		}
		for _, rec := range recs {
			if _, ok := seen[rec.SampleAccession]; ok {
				continue
			}
			seen[rec.SampleAccession] = struct{}{}
			res = append(res, rec)
		}
	}

	return res, nil
}

func querySampleBatch(
	ctx context.Context,
	handle *sql.DB,
	batch []string,
) ([]metadata.SampleRecord, error) {
	placeholders := strings.TrimSuffix(
		strings.Repeat("?,", len(batch)), ",",
	)
	query := `
		SELECT sample_accession, sample_attribute
		FROM sample
		WHERE sample_accession IN (` + placeholders + `)`

	args := make([]any, len(batch))
	for i, id := range batch {
		args[i] = id
	}

	rows, err := handle.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, SampleQueryError(err)
	}
	defer rows.Close()

	var res []metadata.SampleRecord
	for rows.Next() {
		var acc, attr sql.NullString
		if err = rows.Scan(&acc, &attr); err != nil {
			return nil, SampleQueryError(err)
		}
		res = append(res, metadata.SampleRecord{
			SampleAccession: acc.String,
			Attribute:       attr.String,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, SampleQueryError(err)
	}

	return res, nil
}
