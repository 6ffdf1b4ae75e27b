// Package ioextract implements the Extractor interface for the study
// metadata pipeline. This is an impure I/O package that reads the
// snapshot and writes the output file; the transformation stages
// themselves live in pkg/metadata and are pure.
package ioextract

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/sradb/pkg/config"
	"github.com/gnames/sradb/pkg/db"
	"github.com/gnames/sradb/pkg/metadata"
	"github.com/gnames/sradb/pkg/sradb"
)

// extractor implements the sradb.Extractor interface.
type extractor struct {
	cfg      *config.Config
	operator db.Operator
}

// New creates a new Extractor.
func New(cfg *config.Config, op db.Operator) sradb.Extractor {
	return &extractor{cfg: cfg, operator: op}
}

// Extract runs the pipeline: resolve (run, sample) pairs for the
// study, resolve their samples, split and clean the attribute field,
// optionally drop all-empty columns, merge run accessions back in and
// write the TSV. Stages pass immutable slices forward; nothing is
// mutated in place.
func (e *extractor) Extract(ctx context.Context) (sradb.Stats, error) {
	var stats sradb.Stats

	handle := e.operator.DB()
	if handle == nil {
		return stats, NotConnectedError()
	}

	studyID := e.cfg.Extract.StudyID
	columns := e.cfg.Extract.Columns
	output := e.cfg.Extract.Output

	stats.StudyID = studyID
	stats.Output = output

	startTime := time.Now()
	slog.Info("Starting extraction",
		"study", studyID,
		"columns", len(columns),
		"output", output,
	)

	studies, err := resolveStudies(ctx, handle, studyID)
	if err != nil {
		return stats, err
	}
	stats.Runs = len(studies)

	if len(studies) == 0 {
		gn.Warn(
			"Study <em>%s</em> matches no runs in the snapshot, "+
				"writing empty output",
			studyID,
		)
		slog.Warn("Study not found", "study", studyID)
		stats.Columns = columns
		if err = writeOutput(output, columns, nil); err != nil {
			return stats, err
		}
		return stats, nil
	}

	sampleIDs := metadata.DistinctSamples(studies)
	samples, err := resolveSamples(ctx, handle, sampleIDs)
	if err != nil {
		return stats, err
	}
	stats.Samples = len(samples)

	slog.Info("Resolved study",
		"study", studyID,
		"runs", len(studies),
		"samples", len(samples),
	)

	rows, err := e.splitAttributes(samples, columns)
	if err != nil {
		return stats, err
	}

	cleaned := metadata.Clean(rows)

	columns, cleaned, dropped := e.preFilter(columns, cleaned)
	stats.Columns = columns
	stats.DroppedColumns = dropped

	out := metadata.Merge(studies, cleaned)
	stats.Rows = len(out)

	if err = writeOutput(output, columns, out); err != nil {
		return stats, err
	}

	slog.Info("Extraction finished",
		"study", studyID,
		"rows", len(out),
		"duration", gnfmt.TimeString(time.Since(startTime).Seconds()),
	)
	gn.Message(
		"<em>Wrote %s rows for %s samples to %s</em>",
		humanize.Comma(int64(len(out))),
		humanize.Comma(int64(len(samples))),
		output,
	)

	return stats, nil
}

// splitAttributes expands the sample_attribute field, positionally by
// default or by label match when the by-label mode is set.
func (e *extractor) splitAttributes(
	samples []metadata.SampleRecord,
	columns []string,
) ([]metadata.AttributeRow, error) {
	byLabel := e.cfg.Extract.ByLabel != nil && *e.cfg.Extract.ByLabel
	if byLabel {
		return metadata.SplitByLabel(samples, columns)
	}

	rows, err := metadata.Split(samples, columns)
	if err != nil {
		var smErr *metadata.ShapeMismatchError
		if errors.As(err, &smErr) {
			return nil, ShapeMismatchError(smErr)
		}
		return nil, err
	}
	return rows, nil
}

// preFilter applies the optional all-empty column drop. Empty strings
// count as null unless the user turned that off explicitly.
func (e *extractor) preFilter(
	columns []string,
	rows []metadata.AttributeRow,
) ([]string, []metadata.AttributeRow, []string) {
	drop := e.cfg.Extract.DropEmptyColumns != nil &&
		*e.cfg.Extract.DropEmptyColumns
	if !drop {
		return columns, rows, nil
	}

	emptyAsNull := true
	if e.cfg.Extract.EmptyAsNull != nil {
		emptyAsNull = *e.cfg.Extract.EmptyAsNull
	}

	kept, newRows := metadata.DropEmptyColumns(columns, rows, emptyAsNull)
	if len(kept) == len(columns) {
		return columns, rows, nil
	}

	keptSet := make(map[string]struct{}, len(kept))
	for _, c := range kept {
		keptSet[c] = struct{}{}
	}
	var dropped []string
	for _, c := range columns {
		if _, ok := keptSet[c]; !ok {
			dropped = append(dropped, c)
		}
	}

	slog.Info("Dropped empty attribute columns", "columns", dropped)
	gn.Warn("Dropped all-empty columns: <em>%v</em>", dropped)

	return kept, newRows, dropped
}
