package ioextract

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/gnames/sradb/pkg/metadata"
)

// progressThreshold is the row count above which the writer shows a
// progress bar.
const progressThreshold = 10_000

// writeOutput serializes the final table as tab-separated values with
// a header row: run_accession, sample_accession, then the attribute
// columns in declared order. The parent directory is created if
// absent. The file lands atomically: rows go to a temp file in the
// same directory which is renamed over the target only after a clean
// flush, so a failing stage never leaves partial output behind.
func writeOutput(
	path string,
	columns []string,
	recs []metadata.OutputRecord,
) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return WriteError(path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return WriteError(path, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err = writeRows(tmp, columns, recs); err != nil {
		tmp.Close()
		return WriteError(path, err)
	}
	if err = tmp.Close(); err != nil {
		return WriteError(path, err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return WriteError(path, err)
	}
	return nil
}

func writeRows(
	f *os.File,
	columns []string,
	recs []metadata.OutputRecord,
) error {
	w := csv.NewWriter(f)
	w.Comma = '\t'

	header := append([]string{"run_accession", "sample_accession"}, columns...)
	if err := w.Write(header); err != nil {
		return err
	}

	bar := newProgressBar(len(recs), "Writing rows")
	for _, rec := range recs {
		row := append([]string{rec.RunAccession, rec.SampleAccession},
			rec.Values...)
		if err := w.Write(row); err != nil {
			return err
		}
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	w.Flush()
	return w.Error()
}
