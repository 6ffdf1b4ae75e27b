package iodb_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gnames/sradb/internal/iodb"
	"github.com/gnames/sradb/internal/iotesting"
	"github.com/gnames/sradb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot(t *testing.T) string {
	t.Helper()
	return iotesting.NewSnapshot(t,
		[]iotesting.StudyRow{
			{Accession: "SRP001", Title: "Mouse cerebellum"},
		},
		[]iotesting.LinkageRow{
			{RunAccession: "SRR001", SampleAccession: "SRS001", StudyAccession: "SRP001"},
			{RunAccession: "SRR002", SampleAccession: "SRS001", StudyAccession: "SRP001"},
		},
		[]iotesting.SampleRow{
			{Accession: "SRS001", Attribute: "source_name: cerebellum"},
		},
	)
}

func TestConnect(t *testing.T) {
	ctx := context.Background()

	t.Run("connects to real snapshot", func(t *testing.T) {
		op := iodb.NewSqliteOperator()
		cfg := &config.SnapshotConfig{Path: testSnapshot(t)}
		require.NoError(t, op.Connect(ctx, cfg))
		defer op.Close()
		assert.NotNil(t, op.DB())
	})

	t.Run("empty path fails", func(t *testing.T) {
		op := iodb.NewSqliteOperator()
		err := op.Connect(ctx, &config.SnapshotConfig{})
		require.Error(t, err)
	})

	t.Run("missing file fails with path info", func(t *testing.T) {
		op := iodb.NewSqliteOperator()
		path := filepath.Join(t.TempDir(), "nope.sqlite")
		err := op.Connect(ctx, &config.SnapshotConfig{Path: path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nope.sqlite")
	})
}

func TestReadOnly(t *testing.T) {
	ctx := context.Background()
	op := iodb.NewSqliteOperator()
	cfg := &config.SnapshotConfig{Path: testSnapshot(t)}
	require.NoError(t, op.Connect(ctx, cfg))
	defer op.Close()

	_, err := op.DB().ExecContext(ctx,
		`INSERT INTO sample VALUES ('SRS999', 'x: y')`)
	assert.Error(t, err, "snapshot handle must be read-only")
}

func TestTableExists(t *testing.T) {
	ctx := context.Background()
	op := iodb.NewSqliteOperator()
	cfg := &config.SnapshotConfig{Path: testSnapshot(t)}
	require.NoError(t, op.Connect(ctx, cfg))
	defer op.Close()

	for _, table := range []string{"sra", "study", "sample"} {
		exists, err := op.TableExists(ctx, table)
		require.NoError(t, err)
		assert.True(t, exists, table)
	}

	exists, err := op.TableExists(ctx, "experiment")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestHasTables(t *testing.T) {
	ctx := context.Background()
	op := iodb.NewSqliteOperator()
	cfg := &config.SnapshotConfig{Path: testSnapshot(t)}
	require.NoError(t, op.Connect(ctx, cfg))
	defer op.Close()

	has, err := op.HasTables(ctx)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestTableCount(t *testing.T) {
	ctx := context.Background()
	op := iodb.NewSqliteOperator()
	cfg := &config.SnapshotConfig{Path: testSnapshot(t)}
	require.NoError(t, op.Connect(ctx, cfg))
	defer op.Close()

	count, err := op.TableCount(ctx, "sra")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	_, err = op.TableCount(ctx, "no_such_table")
	assert.Error(t, err)
}

func TestNotConnected(t *testing.T) {
	ctx := context.Background()
	op := iodb.NewSqliteOperator()

	_, err := op.TableExists(ctx, "sra")
	assert.Error(t, err)
	_, err = op.HasTables(ctx)
	assert.Error(t, err)
	_, err = op.TableCount(ctx, "sra")
	assert.Error(t, err)

	// Close before Connect is a no-op
	assert.NoError(t, op.Close())
}
