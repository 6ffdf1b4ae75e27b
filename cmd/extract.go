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
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/sradb/internal/iodb"
	"github.com/gnames/sradb/internal/ioextract"
	"github.com/gnames/sradb/pkg/config"
	"github.com/gnames/sradb/pkg/errcode"
	"github.com/gnames/sradb/pkg/profiles"
	"github.com/spf13/cobra"
)

// getExtractCmd returns the extract command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getExtractCmd() *cobra.Command {
	var (
		studyID     string
		columns     []string
		profileName string
		output      string
		snapshot    string
		byLabel     bool
		dropEmpty   bool
		emptyNull   bool
	)

	extractCmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract cleaned study metadata to a TSV file",
		Long: `Extract a flat metadata table for one study accession.

This command:
  1. Opens the snapshot read-only
  2. Filters the sra linkage table by the study accession and joins
     the study table
  3. Resolves the distinct samples of those runs
  4. Splits each sample's free-text sample_attribute field into the
     declared attribute columns
  5. Strips "label: " prefixes from the values
  6. Re-attaches run accessions (one output row per run) and writes
     a TSV with a header row

Attribute columns come either from --columns or from a named profile
in ~/.config/sradb/profiles.yaml.

By default parts are assigned to columns by position and a sample
whose attribute field does not split into the declared number of
parts halts the extraction. With --by-label parts are matched to
columns by their "label:" prefix instead, which tolerates reordered
or missing attributes.

Examples:
  # Extract with an inline column list
  sradb extract -s SRP056840 -o srp056840.tsv \
    -c source_name,strain,tissue,age,genotype

  # Extract with a named profile
  sradb extract -s SRP056840 -o srp056840.tsv -p mouse_brain

  # Tolerate reordered attributes, drop all-empty columns
  sradb extract -s SRP056840 -o srp056840.tsv -p mouse_brain \
    --by-label --drop-empty-columns`,
		Aliases: []string{"ex"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runExtract(
				cmd, studyID, columns, profileName, output,
				snapshot, byLabel, dropEmpty, emptyNull,
			)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	extractCmd.Flags().StringVarP(
		&studyID, "study", "s", "",
		"study accession to extract (required)",
	)
	extractCmd.Flags().StringSliceVarP(
		&columns, "columns", "c", []string{},
		"ordered attribute column names",
	)
	extractCmd.Flags().StringVarP(
		&profileName, "profile", "p", "",
		"attribute profile name from profiles.yaml",
	)
	extractCmd.Flags().StringVarP(
		&output, "output", "o", "",
		"output TSV path (required)",
	)
	extractCmd.Flags().StringVar(
		&snapshot, "snapshot", "",
		"override snapshot path from config",
	)
	extractCmd.Flags().BoolVar(
		&byLabel, "by-label", false,
		"assign attribute parts to columns by label instead of position",
	)
	extractCmd.Flags().BoolVar(
		&dropEmpty, "drop-empty-columns", false,
		"drop attribute columns that are empty in every row",
	)
	extractCmd.Flags().BoolVar(
		&emptyNull, "empty-as-null", true,
		"treat empty strings as null for --drop-empty-columns",
	)

	return extractCmd
}

func runExtract(
	cmd *cobra.Command,
	studyID string,
	columns []string,
	profileName string,
	output string,
	snapshot string,
	byLabel bool,
	dropEmpty bool,
	emptyNull bool,
) error {
	ctx := context.Background()

	hasColumns := cmd.Flags().Changed("columns")
	hasProfile := cmd.Flags().Changed("profile")

	if studyID == "" {
		gn.Warn("<warn>Study accession is required, use --study</warn>")
		err := fmt.Errorf("missing required flag: --study")
		slog.Error("missing flag", "error", err)
		return err
	}
	if output == "" {
		gn.Warn("<warn>Output path is required, use --output</warn>")
		err := fmt.Errorf("missing required flag: --output")
		slog.Error("missing flag", "error", err)
		return err
	}
	if hasColumns == hasProfile {
		gn.Warn(`<warn>Provide the attribute columns with either --columns or --profile</warn>
   <warn>The two flags are mutually exclusive</warn>`)
		err := fmt.Errorf("invalid flag combination")
		slog.Error("invalid flag combination", "error", err)
		return err
	}

	if hasProfile {
		var err error
		columns, err = profileColumns(profileName)
		if err != nil {
			return err
		}
	}

	// Build options from explicitly set flags
	extractOpts := []config.Option{
		config.OptExtractStudyID(studyID),
		config.OptExtractColumns(columns),
		config.OptExtractOutput(output),
	}

	if snapshot != "" {
		extractOpts = append(extractOpts, config.OptSnapshotPath(snapshot))
	}
	if cmd.Flags().Changed("by-label") {
		extractOpts = append(extractOpts, config.OptExtractByLabel(&byLabel))
	}
	if cmd.Flags().Changed("drop-empty-columns") {
		extractOpts = append(extractOpts,
			config.OptExtractDropEmptyColumns(&dropEmpty))
	}
	if cmd.Flags().Changed("empty-as-null") {
		extractOpts = append(extractOpts,
			config.OptExtractEmptyAsNull(&emptyNull))
	}

	cfg.Update(extractOpts)

	// Open the snapshot
	op := iodb.NewSqliteOperator()
	if err := op.Connect(ctx, &cfg.Snapshot); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Using snapshot: <em>%s</em>", cfg.Snapshot.Path)

	ext := ioextract.New(cfg, op)
	stats, err := ext.Extract(ctx)
	if err != nil {
		return err
	}

	slog.Info("Extract command finished",
		"study", stats.StudyID,
		"rows", stats.Rows,
		"output", stats.Output,
	)

	return nil
}

// profileColumns resolves a profile name to its column list using
// the user's profiles.yaml.
func profileColumns(name string) ([]string, error) {
	path := config.ProfilesFilePath(homeDir)
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Error("cannot read profiles file", "path", path, "error", err)
		return nil, err
	}

	profCfg, err := profiles.Parse(data)
	if err != nil {
		slog.Error("cannot parse profiles file", "path", path, "error", err)
		return nil, &gn.Error{
			Code: errcode.ProfilesConfigError,
			Msg:  "Cannot parse profiles file <em>%s</em>",
			Vars: []any{path},
			Err:  err,
		}
	}

	prof, ok := profCfg.Find(name)
	if !ok {
		return nil, &gn.Error{
			Code: errcode.ProfileNotFoundError,
			Msg: `Profile <em>%s</em> is not defined in %s

Available profiles: <em>%s</em>`,
			Vars: []any{name, path, strings.Join(profCfg.Names(), ", ")},
			Err:  fmt.Errorf("profile not found: %q", name),
		}
	}

	return prof.Columns, nil
}
