package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptSnapshotPath sets the location of the SQLite snapshot file.
func OptSnapshotPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Snapshot Path", s) {
			c.Snapshot.Path = s
		}
	}
}

// OptExtractStudyID sets the study accession to extract.
// Runtime-only field - not in ToOptions().
func OptExtractStudyID(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Study ID", s) {
			c.Extract.StudyID = s
		}
	}
}

// OptExtractColumns sets the ordered attribute column names.
// Runtime-only field - not in ToOptions().
func OptExtractColumns(ss []string) Option {
	return func(c *Config) {
		if len(ss) > 0 {
			c.Extract.Columns = ss
		}
	}
}

// OptExtractProfile sets the attribute profile name from profiles.yaml.
// Runtime-only field - not in ToOptions().
func OptExtractProfile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Profile", s) {
			c.Extract.Profile = s
		}
	}
}

// OptExtractOutput sets the output TSV path.
// Runtime-only field - not in ToOptions().
func OptExtractOutput(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Path", s) {
			c.Extract.Output = s
		}
	}
}

// OptExtractByLabel switches the splitter to label-matched assignment.
// Uses pointer to distinguish between unset (nil) and false.
// Runtime-only field - not in ToOptions().
func OptExtractByLabel(b *bool) Option {
	return func(c *Config) {
		if b != nil {
			c.Extract.ByLabel = b
		}
	}
}

// OptExtractDropEmptyColumns enables the all-null column pre-filter.
// Uses pointer to distinguish between unset (nil) and false.
// Runtime-only field - not in ToOptions().
func OptExtractDropEmptyColumns(b *bool) Option {
	return func(c *Config) {
		if b != nil {
			c.Extract.DropEmptyColumns = b
		}
	}
}

// OptExtractEmptyAsNull controls whether empty strings count as null
// for the DropEmptyColumns pre-filter.
// Uses pointer to distinguish between unset (nil) and false.
// Runtime-only field - not in ToOptions().
func OptExtractEmptyAsNull(b *bool) Option {
	return func(c *Config) {
		if b != nil {
			c.Extract.EmptyAsNull = b
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stdin", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
