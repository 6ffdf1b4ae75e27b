package iodb

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/sradb/pkg/errcode"
)

// NoPathError is returned when no snapshot path is configured.
func NoPathError() error {
	msg := `Snapshot path is not configured

<em>How to fix:</em>
  1. Set <em>snapshot.path</em> in ~/.config/sradb/config.yaml
  2. Or set the <em>SRADB_SNAPSHOT_PATH</em> environment variable
  3. Or pass <em>--snapshot</em> on the command line`

	return &gn.Error{
		Code: errcode.SnapshotMissingError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("snapshot path is empty"),
	}
}

// MissingError is returned when the snapshot file does not exist or
// cannot be read.
func MissingError(path string, err error) error {
	msg := `Cannot find snapshot file <em>%s</em>

<em>Possible causes:</em>
  - Snapshot is not downloaded yet
  - Path in configuration is wrong

<em>How to fix:</em>
  1. Download the SRAmetadb snapshot
  2. Point <em>snapshot.path</em> at the downloaded file`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SnapshotMissingError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: snapshot file not found: %w",
			fn, err),
	}
}

// OpenError is returned when the snapshot file exists but cannot be
// opened as a SQLite database.
func OpenError(path string, err error) error {
	msg := `Cannot open snapshot <em>%s</em>

<em>Possible causes:</em>
  - File is not a SQLite database
  - File is corrupted or truncated
  - Permission denied`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SnapshotOpenError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot open snapshot: %w",
			fn, err),
	}
}

// NotConnectedError is returned when an operation is attempted before
// Connect.
func NotConnectedError() error {
	msg := "Snapshot operation attempted without connection"

	return &gn.Error{
		Code: errcode.SnapshotNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to snapshot"),
	}
}

// TableCheckError is returned when checking for a snapshot table fails.
func TableCheckError(table string, err error) error {
	msg := "Cannot check snapshot table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SnapshotTableCheckError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot check table: %w",
			fn, err),
	}
}

// QueryError is returned when a snapshot query fails.
func QueryError(table string, err error) error {
	msg := "Query against snapshot table <em>%s</em> failed"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SnapshotQueryError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: snapshot query failed: %w",
			fn, err),
	}
}
