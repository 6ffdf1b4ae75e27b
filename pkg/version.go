// Package sradb provides application-wide metadata for the SRAdb CLI.
package sradb

var (
	// Version is set by the build process via ldflags.
	Version = "v0.1.0"
	// Build is the build timestamp, set via ldflags.
	Build = "n/a"
)
