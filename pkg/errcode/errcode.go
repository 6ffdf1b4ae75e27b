package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Snapshot errors
	SnapshotOpenError
	SnapshotMissingError
	SnapshotQueryError
	SnapshotTableCheckError
	SnapshotNotConnectedError
	SnapshotNoTablesError

	// Profile errors
	ProfilesConfigError
	ProfileNotFoundError
	ProfileColumnsError

	// Extract errors
	ExtractStudyError
	ExtractSampleError
	ExtractShapeMismatchError
	ExtractLabelError
	ExtractWriteError
)
