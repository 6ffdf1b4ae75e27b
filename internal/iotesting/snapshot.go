// Package iotesting provides shared test utilities for integration
// tests. This is an internal package for test infrastructure only.
package iotesting

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SampleRow seeds one row of the fixture's sample table.
type SampleRow struct {
	Accession string
	Attribute string
}

// LinkageRow seeds one row of the fixture's sra linkage table.
type LinkageRow struct {
	RunAccession    string
	SampleAccession string
	StudyAccession  string
}

// StudyRow seeds one row of the fixture's study table.
type StudyRow struct {
	Accession string
	Title     string
	Type      string
	Abstract  string
}

// NewSnapshot builds a throwaway SQLite snapshot with the sra, study
// and sample tables in t.TempDir and returns its path. The schema
// mirrors the columns the pipeline reads from an SRAmetadb file.
func NewSnapshot(
	t *testing.T,
	studies []StudyRow,
	linkage []LinkageRow,
	samples []SampleRow,
) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "SRAmetadb.sqlite")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("cannot create snapshot fixture: %v", err)
	}
	defer db.Close()

	ddl := `
CREATE TABLE study (
	study_accession TEXT,
	study_title TEXT,
	study_type TEXT,
	study_abstract TEXT
);
CREATE TABLE sra (
	run_accession TEXT,
	sample_accession TEXT,
	study_accession TEXT
);
CREATE TABLE sample (
	sample_accession TEXT,
	sample_attribute TEXT
);
`
	if _, err = db.Exec(ddl); err != nil {
		t.Fatalf("cannot create fixture schema: %v", err)
	}

	for _, s := range studies {
		_, err = db.Exec(
			`INSERT INTO study VALUES (?, ?, ?, ?)`,
			s.Accession, s.Title, s.Type, s.Abstract,
		)
		if err != nil {
			t.Fatalf("cannot seed study table: %v", err)
		}
	}
	for _, l := range linkage {
		_, err = db.Exec(
			`INSERT INTO sra VALUES (?, ?, ?)`,
			l.RunAccession, l.SampleAccession, l.StudyAccession,
		)
		if err != nil {
			t.Fatalf("cannot seed sra table: %v", err)
		}
	}
	for _, s := range samples {
		_, err = db.Exec(
			`INSERT INTO sample VALUES (?, ?)`,
			s.Accession, s.Attribute,
		)
		if err != nil {
			t.Fatalf("cannot seed sample table: %v", err)
		}
	}

	return path
}
