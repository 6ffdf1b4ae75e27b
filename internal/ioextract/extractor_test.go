package ioextract_test

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/sradb/internal/iodb"
	"github.com/gnames/sradb/internal/ioextract"
	"github.com/gnames/sradb/internal/iotesting"
	"github.com/gnames/sradb/pkg/config"
	"github.com/gnames/sradb/pkg/db"
	"github.com/gnames/sradb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mouseCols = []string{"source_name", "strain", "tissue", "age", "genotype"}

func mouseAttr(tissue, age string) string {
	return "source_name: " + tissue + " || strain: C57BL/6 || " +
		"tissue: brain || age: " + age + " || genotype: wildtype"
}

func newFixture(t *testing.T) string {
	t.Helper()
	return iotesting.NewSnapshot(t,
		[]iotesting.StudyRow{
			{Accession: "SRP056840", Title: "Mouse cerebellum development"},
			{Accession: "SRP000001", Title: "Unrelated study"},
		},
		[]iotesting.LinkageRow{
			// SRS001 has three runs
			{RunAccession: "SRR001", SampleAccession: "SRS001", StudyAccession: "SRP056840"},
			{RunAccession: "SRR002", SampleAccession: "SRS001", StudyAccession: "SRP056840"},
			{RunAccession: "SRR003", SampleAccession: "SRS001", StudyAccession: "SRP056840"},
			{RunAccession: "SRR004", SampleAccession: "SRS002", StudyAccession: "SRP056840"},
			// different study, must not leak into results
			{RunAccession: "SRR900", SampleAccession: "SRS900", StudyAccession: "SRP000001"},
		},
		[]iotesting.SampleRow{
			{Accession: "SRS001", Attribute: mouseAttr("cerebellum", "P7")},
			{Accession: "SRS002", Attribute: mouseAttr("cortex", "P14")},
			{Accession: "SRS900", Attribute: "source_name: liver"},
		},
	)
}

func connect(t *testing.T, snapshot string) (db.Operator, func()) {
	t.Helper()
	op := iodb.NewSqliteOperator()
	err := op.Connect(context.Background(),
		&config.SnapshotConfig{Path: snapshot})
	require.NoError(t, err)
	return op, func() { op.Close() }
}

func extractCfg(study, output string) *config.Config {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptExtractStudyID(study),
		config.OptExtractColumns(mouseCols),
		config.OptExtractOutput(output),
	})
	return cfg
}

func readTSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExtract(t *testing.T) {
	snapshot := newFixture(t)
	op, done := connect(t, snapshot)
	defer done()

	output := filepath.Join(t.TempDir(), "out", "SRP056840.tsv")
	cfg := extractCfg("SRP056840", output)

	ext := ioextract.New(cfg, op)
	stats, err := ext.Extract(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Runs)
	assert.Equal(t, 2, stats.Samples)
	assert.Equal(t, 4, stats.Rows)
	assert.Equal(t, mouseCols, stats.Columns)
	assert.Empty(t, stats.DroppedColumns)

	rows := readTSV(t, output)
	require.Len(t, rows, 5, "header plus one row per (run, sample) pair")
	assert.Equal(t,
		[]string{"run_accession", "sample_accession",
			"source_name", "strain", "tissue", "age", "genotype"},
		rows[0],
	)

	// a sample with 3 runs appears 3 times with identical values
	var srs001 int
	for _, row := range rows[1:] {
		if row[1] == "SRS001" {
			srs001++
			assert.Equal(t,
				[]string{"cerebellum", "C57BL/6", "brain", "P7", "wildtype"},
				row[2:],
			)
		}
	}
	assert.Equal(t, 3, srs001)

	// the other study never leaks in
	for _, row := range rows[1:] {
		assert.NotEqual(t, "SRR900", row[0])
	}
}

func TestExtractStudyNotFound(t *testing.T) {
	snapshot := newFixture(t)
	op, done := connect(t, snapshot)
	defer done()

	output := filepath.Join(t.TempDir(), "empty.tsv")
	cfg := extractCfg("SRP999999", output)

	ext := ioextract.New(cfg, op)
	stats, err := ext.Extract(context.Background())

	// not found is a warning, not an error
	require.NoError(t, err)
	assert.Zero(t, stats.Rows)

	rows := readTSV(t, output)
	require.Len(t, rows, 1, "header-only file")
	assert.Equal(t, "run_accession", rows[0][0])
}

func TestExtractShapeMismatch(t *testing.T) {
	snapshot := iotesting.NewSnapshot(t,
		[]iotesting.StudyRow{{Accession: "SRP056840"}},
		[]iotesting.LinkageRow{
			{RunAccession: "SRR001", SampleAccession: "SRS042", StudyAccession: "SRP056840"},
		},
		[]iotesting.SampleRow{
			// four parts where five columns are declared
			{Accession: "SRS042", Attribute: "source_name: cerebellum || " +
				"strain: C57BL/6 || tissue: brain || age: P7"},
		},
	)
	op, done := connect(t, snapshot)
	defer done()

	output := filepath.Join(t.TempDir(), "out.tsv")
	cfg := extractCfg("SRP056840", output)

	ext := ioextract.New(cfg, op)
	_, err := ext.Extract(context.Background())
	require.Error(t, err)

	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.ExtractShapeMismatchError, gnErr.Code)
	assert.Contains(t, gnErr.Err.Error(), "SRS042")

	// no partial output was written
	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExtractByLabel(t *testing.T) {
	snapshot := iotesting.NewSnapshot(t,
		[]iotesting.StudyRow{{Accession: "SRP056840"}},
		[]iotesting.LinkageRow{
			{RunAccession: "SRR001", SampleAccession: "SRS042", StudyAccession: "SRP056840"},
		},
		[]iotesting.SampleRow{
			// missing attribute, tolerated by label matching
			{Accession: "SRS042", Attribute: "tissue: brain || " +
				"source_name: cerebellum || strain: C57BL/6 || age: P7"},
		},
	)
	op, done := connect(t, snapshot)
	defer done()

	output := filepath.Join(t.TempDir(), "out.tsv")
	cfg := extractCfg("SRP056840", output)
	byLabel := true
	cfg.Update([]config.Option{config.OptExtractByLabel(&byLabel)})

	ext := ioextract.New(cfg, op)
	stats, err := ext.Extract(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Rows)

	rows := readTSV(t, output)
	require.Len(t, rows, 2)
	assert.Equal(t,
		[]string{"SRR001", "SRS042",
			"cerebellum", "C57BL/6", "brain", "P7", ""},
		rows[1],
	)
}

func TestExtractDropEmptyColumns(t *testing.T) {
	snapshot := iotesting.NewSnapshot(t,
		[]iotesting.StudyRow{{Accession: "SRP056840"}},
		[]iotesting.LinkageRow{
			{RunAccession: "SRR001", SampleAccession: "SRS001", StudyAccession: "SRP056840"},
			{RunAccession: "SRR002", SampleAccession: "SRS002", StudyAccession: "SRP056840"},
		},
		[]iotesting.SampleRow{
			{Accession: "SRS001", Attribute: "source_name: cerebellum || strain: "},
			{Accession: "SRS002", Attribute: "source_name: cortex || strain: "},
		},
	)
	op, done := connect(t, snapshot)
	defer done()

	output := filepath.Join(t.TempDir(), "out.tsv")
	cfg := config.New()
	drop := true
	cfg.Update([]config.Option{
		config.OptExtractStudyID("SRP056840"),
		config.OptExtractColumns([]string{"source_name", "strain"}),
		config.OptExtractOutput(output),
		config.OptExtractDropEmptyColumns(&drop),
	})

	ext := ioextract.New(cfg, op)
	stats, err := ext.Extract(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"source_name"}, stats.Columns)
	assert.Equal(t, []string{"strain"}, stats.DroppedColumns)

	rows := readTSV(t, output)
	require.Len(t, rows, 3)
	assert.Equal(t,
		[]string{"run_accession", "sample_accession", "source_name"},
		rows[0],
	)
}

func TestExtractDuplicateSampleRows(t *testing.T) {
	snapshot := iotesting.NewSnapshot(t,
		[]iotesting.StudyRow{{Accession: "SRP056840"}},
		[]iotesting.LinkageRow{
			{RunAccession: "SRR001", SampleAccession: "SRS001", StudyAccession: "SRP056840"},
		},
		[]iotesting.SampleRow{
			// duplicated snapshot row collapses to one sample
			{Accession: "SRS001", Attribute: "source_name: liver"},
			{Accession: "SRS001", Attribute: "source_name: liver"},
		},
	)
	op, done := connect(t, snapshot)
	defer done()

	output := filepath.Join(t.TempDir(), "out.tsv")
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptExtractStudyID("SRP056840"),
		config.OptExtractColumns([]string{"source_name"}),
		config.OptExtractOutput(output),
	})

	ext := ioextract.New(cfg, op)
	stats, err := ext.Extract(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Samples)
	assert.Equal(t, 1, stats.Rows)
}

func TestExtractNotConnected(t *testing.T) {
	cfg := extractCfg("SRP056840", filepath.Join(t.TempDir(), "out.tsv"))
	ext := ioextract.New(cfg, iodb.NewSqliteOperator())
	_, err := ext.Extract(context.Background())
	require.Error(t, err)

	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.SnapshotNotConnectedError, gnErr.Code)
}
