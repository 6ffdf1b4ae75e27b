package ioextract

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/sradb/pkg/errcode"
	"github.com/gnames/sradb/pkg/metadata"
)

// NotConnectedError creates an error for when extraction is attempted
// without a snapshot connection.
func NotConnectedError() error {
	msg := "Extract operation attempted without snapshot connection"

	return &gn.Error{
		Code: errcode.SnapshotNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to snapshot"),
	}
}

// StudyQueryError creates an error for when the study/linkage join
// query fails.
func StudyQueryError(studyID string, err error) error {
	msg := "Cannot resolve study <em>%s</em> from the snapshot"
	vars := []any{studyID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExtractStudyError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: study query failed: %w",
			fn, err),
	}
}

// SampleQueryError creates an error for when the sample query fails.
func SampleQueryError(err error) error {
	msg := "Cannot resolve samples from the snapshot"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExtractSampleError,
		Msg:  msg,
		Vars: nil,
		Err: fmt.Errorf("from %s: sample query failed: %w",
			fn, err),
	}
}

// ShapeMismatchError creates a fatal error for a sample whose
// attribute field does not split into the declared number of columns.
func ShapeMismatchError(smErr *metadata.ShapeMismatchError) error {
	msg := `Attribute field of sample <em>%s</em> splits into %d parts, expected %d

<em>Raw field:</em> %s

<em>How to fix:</em>
  1. Check the declared column list against the study's attributes
  2. Or run with <em>--by-label</em> to match parts by their labels`
	vars := []any{
		smErr.SampleAccession, smErr.Got, smErr.Want, smErr.Attribute,
	}

	return &gn.Error{
		Code: errcode.ExtractShapeMismatchError,
		Msg:  msg,
		Vars: vars,
		Err:  smErr,
	}
}

// WriteError creates an error for when the output file cannot be
// written.
func WriteError(path string, err error) error {
	msg := "Cannot write output file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExtractWriteError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write output: %w",
			fn, err),
	}
}
