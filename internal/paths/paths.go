// Package paths resolves the application's data, config, history and log
// file locations.
package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "rolo"

// override replaces the computed data directory when set via SetDataDir
// (the --data-dir flag).
var override string

// SetDataDir forces all application files under the given directory.
func SetDataDir(dir string) {
	override = dir
}

// AppDataDir returns the application data directory, creating it with
// restrictive permissions. Uses os.UserConfigDir():
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData%
func AppDataDir() string {
	if override != "" {
		_ = os.MkdirAll(override, 0700)
		return override
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns the path of the key=value config file.
func ConfigFilePath() string {
	return filepath.Join(AppDataDir(), "config")
}

// HistoryFilePath returns the path of the shell history file.
func HistoryFilePath() string {
	return filepath.Join(AppDataDir(), "history")
}

// LogFilePath returns the path of the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "rolo.log")
}

// DBFilePath returns the path of the sqlite database.
func DBFilePath() string {
	return filepath.Join(AppDataDir(), "rolo.db")
}
