package db

import (
	"context"
	"database/sql"

	"github.com/gnames/sradb/pkg/config"
)

// Operator defines the interface for read-only access to the SRA
// metadata snapshot. It provides connection lifecycle management and
// exposes the *sql.DB handle for the extraction pipeline to run its
// queries internally.
//
// Design rationale:
// - Keeps interface minimal to avoid bloat with mixed semantics
// - DB() lets the extractor own its SQL while the operator owns the
//   handle's lifetime (opened once, read-only, closed after all reads)
type Operator interface {
	// Connect opens the snapshot file read-only and verifies the
	// connection with a ping.
	Connect(context.Context, *config.SnapshotConfig) error

	// Close releases the snapshot handle. Safe to call when not
	// connected.
	Close() error

	// DB returns the underlying sql.DB handle for the extraction
	// pipeline to run queries against the sra, study and sample tables.
	DB() *sql.DB

	// TableExists checks if a table exists in the snapshot.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the snapshot contains any tables at all.
	// Used to distinguish an empty file from a real snapshot.
	HasTables(ctx context.Context) (bool, error)

	// TableCount returns the number of rows in a snapshot table.
	TableCount(ctx context.Context, tableName string) (int64, error)
}
