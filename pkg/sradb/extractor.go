package sradb

import (
	"context"
)

// Extractor defines the interface for the study metadata extraction
// pipeline. One call runs the whole pipeline for one study accession:
// resolve studies and samples from the snapshot, split and clean the
// attribute column, merge run accessions back in, and write the TSV.
// Config is provided during construction.
type Extractor interface {
	// Extract runs the pipeline and returns summary statistics.
	// A study accession that matches nothing is not an error: the
	// result has zero rows and a header-only file is still written.
	// A sample whose attribute field does not split into the declared
	// number of columns halts the pipeline with an error naming that
	// sample.
	Extract(ctx context.Context) (Stats, error)
}

// Stats summarizes one extraction run.
type Stats struct {
	// StudyID is the requested study accession.
	StudyID string

	// Runs is the number of (run, sample) linkage rows resolved.
	Runs int

	// Samples is the number of distinct samples resolved.
	Samples int

	// Rows is the number of data rows written to the output file.
	Rows int

	// Columns is the attribute column list actually written, after
	// the optional empty-column pre-filter.
	Columns []string

	// DroppedColumns lists attribute columns removed by the
	// empty-column pre-filter.
	DroppedColumns []string

	// Output is the path of the written TSV file.
	Output string
}
