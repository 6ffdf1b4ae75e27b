// Package config provides configuration management for SRAdb.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Snapshot: path
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Extract.StudyID, Columns, Profile, Output, ByLabel, DropEmptyColumns,
//     EmptyAsNull (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use SRADB_ prefix with underscores for nesting:
//
//	SRADB_SNAPSHOT_PATH=/data/SRAmetadb.sqlite
//	SRADB_LOG_LEVEL=info
package config

// Config represents the complete SRAdb configuration.
type Config struct {
	// Snapshot contains settings for the SRA metadata snapshot file.
	Snapshot SnapshotConfig `mapstructure:"snapshot" yaml:"snapshot"`

	// Extract contains settings specific to the extract command.
	Extract ExtractConfig `mapstructure:"extract" yaml:"extract"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// SnapshotConfig contains settings for the pre-downloaded SQLite snapshot
// of the SRA metadata registry.
type SnapshotConfig struct {
	// Path is the location of the SRAmetadb-style SQLite file.
	// The file is opened read-only and is never modified.
	Path string `mapstructure:"path" yaml:"path"`
}

// ExtractConfig contains settings specific to the extract command.
// All fields are runtime-only, supplied through CLI flags.
type ExtractConfig struct {
	// StudyID is the study accession to extract (e.g. "SRP056840").
	// It is a data-shape assumption, not validated against the snapshot.
	StudyID string `mapstructure:"study_id" yaml:"study_id"`

	// Columns is the ordered list of attribute column names the
	// sample_attribute field is expected to split into.
	// Either Columns or Profile must be provided.
	Columns []string `mapstructure:"columns" yaml:"columns"`

	// Profile is the name of an attribute profile from profiles.yaml.
	// Mutually exclusive with Columns; the CLI validates this.
	Profile string `mapstructure:"profile" yaml:"profile"`

	// Output is the path of the TSV file to write.
	// Parent directories are created if absent.
	Output string `mapstructure:"output" yaml:"output"`

	// ByLabel switches the attribute splitter from positional assignment
	// to label-matched assignment. With label matching a part goes to the
	// column whose name equals the part's "label:" prefix, which removes
	// the shape-mismatch failure mode for reordered attributes.
	// Uses pointer to distinguish between unset (nil) and false.
	ByLabel *bool `mapstructure:"by_label" yaml:"by_label"`

	// DropEmptyColumns enables the optional pre-filter stage that removes
	// attribute columns which are null in every extracted row.
	DropEmptyColumns *bool `mapstructure:"drop_empty_columns" yaml:"drop_empty_columns"`

	// EmptyAsNull controls whether empty strings count as null for the
	// DropEmptyColumns pre-filter. Default is true.
	EmptyAsNull *bool `mapstructure:"empty_as_null" yaml:"empty_as_null"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
