// Package iodb implements read-only snapshot access using the sqlite3
// driver. This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/gnames/sradb/pkg/config"
	"github.com/gnames/sradb/pkg/db"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// sqliteOperator implements db.Operator over a local SQLite snapshot
// file opened read-only.
type sqliteOperator struct {
	db   *sql.DB
	path string
}

// NewSqliteOperator creates a new snapshot operator
// (without connecting).
func NewSqliteOperator() db.Operator {
	return &sqliteOperator{}
}

// Connect opens the snapshot file read-only and verifies the
// connection with a ping. The read-only mode guarantees the snapshot
// is never modified, whatever the pipeline does later.
func (o *sqliteOperator) Connect(
	ctx context.Context,
	cfg *config.SnapshotConfig,
) error {
	if cfg.Path == "" {
		return NoPathError()
	}
	if _, err := os.Stat(cfg.Path); err != nil {
		return MissingError(cfg.Path, err)
	}

	dsn := fmt.Sprintf("file:%s?mode=ro", cfg.Path)
	handle, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return OpenError(cfg.Path, err)
	}

	if err := handle.PingContext(ctx); err != nil {
		handle.Close()
		return OpenError(cfg.Path, err)
	}

	o.db = handle
	o.path = cfg.Path
	return nil
}

// Close releases the snapshot handle.
func (o *sqliteOperator) Close() error {
	if o.db != nil {
		err := o.db.Close()
		o.db = nil
		return err
	}
	return nil
}

// DB returns the underlying sql.DB handle for the extraction pipeline.
func (o *sqliteOperator) DB() *sql.DB {
	return o.db
}

// TableExists checks if a table exists in the snapshot.
func (o *sqliteOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if o.db == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT 1 FROM sqlite_master
			WHERE type = 'table'
			AND name = ?
		)
	`

	var exists bool
	err := o.db.QueryRowContext(ctx, query, tableName).Scan(&exists)
	if err != nil {
		return false, TableCheckError(tableName, err)
	}

	return exists, nil
}

// HasTables checks if the snapshot contains any tables at all.
func (o *sqliteOperator) HasTables(ctx context.Context) (bool, error) {
	if o.db == nil {
		return false, NotConnectedError()
	}

	query := `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table'`

	var count int
	err := o.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return false, TableCheckError("sqlite_master", err)
	}

	return count > 0, nil
}

// TableCount returns the number of rows in a snapshot table.
// The table name comes from a fixed internal list, never from user
// input, so string interpolation is safe here.
func (o *sqliteOperator) TableCount(
	ctx context.Context,
	tableName string,
) (int64, error) {
	if o.db == nil {
		return 0, NotConnectedError()
	}

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %q`, tableName)

	var count int64
	err := o.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, QueryError(tableName, err)
	}

	return count, nil
}
