/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/sradb/internal/iodb"
	"github.com/gnames/sradb/pkg/config"
	"github.com/spf13/cobra"
)

// requiredTables are the snapshot tables the extract pipeline reads.
var requiredTables = []string{"sra", "study", "sample"}

// getInfoCmd returns the info command.
func getInfoCmd() *cobra.Command {
	var snapshot string

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Report snapshot tables and row counts",
		Long: `Check that the configured snapshot is usable and report its shape.

The command opens the snapshot read-only, verifies the tables the
extract pipeline depends on (sra, study, sample) and prints the row
count of each.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runInfo(snapshot)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	infoCmd.Flags().StringVar(
		&snapshot, "snapshot", "",
		"override snapshot path from config",
	)

	return infoCmd
}

func runInfo(snapshot string) error {
	ctx := context.Background()

	if snapshot != "" {
		cfg.Update([]config.Option{config.OptSnapshotPath(snapshot)})
	}

	op := iodb.NewSqliteOperator()
	if err := op.Connect(ctx, &cfg.Snapshot); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Snapshot: <em>%s</em>", cfg.Snapshot.Path)

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		return err
	}
	if !hasTables {
		gn.Warn("<warn>Snapshot contains no tables</warn>")
		return nil
	}

	for _, table := range requiredTables {
		exists, err := op.TableExists(ctx, table)
		if err != nil {
			return err
		}
		if !exists {
			gn.Warn("Table <em>%s</em> is missing from the snapshot", table)
			continue
		}

		count, err := op.TableCount(ctx, table)
		if err != nil {
			return err
		}
		gn.Message("<em>%s</em>: %s rows", table, humanize.Comma(count))
		slog.Info("Snapshot table", "table", table, "rows", count)
	}

	return nil
}
