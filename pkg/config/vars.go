package config

import (
	"path/filepath"
)

// AppName is used in generating file system paths.
var AppName = "sradb"

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/sradb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/sradb by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/sradb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/sradb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// ProfilesFilePath returns the full path to the profiles.yaml file.
// Returns ~/.config/sradb/profiles.yaml by default.
func ProfilesFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "profiles.yaml")
}
