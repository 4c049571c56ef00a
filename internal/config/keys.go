// Package config reads and writes the line-based key=value configuration
// file. Comments and unknown lines are preserved on edit.
package config

// Key describes one configuration setting.
type Key struct {
	Name        string
	Default     string
	Description string
}

// Keys lists every supported setting, in the order they appear in a freshly
// created config file.
var Keys = []Key{
	{Name: "enable_log", Default: "false", Description: "Write diagnostics to the log file"},
	{Name: "log_level", Default: "warn", Description: "Minimum log level: debug, info, warn, error"},
	{Name: "history_size", Default: "500", Description: "Maximum number of shell history entries kept"},
	{Name: "color_success", Default: "2", Description: "ANSI color for success messages"},
	{Name: "color_error", Default: "1", Description: "ANSI color for error messages"},
	{Name: "color_warning", Default: "3", Description: "ANSI color for warnings"},
	{Name: "color_info", Default: "6", Description: "ANSI color for informational messages"},
	{Name: "color_header", Default: "5", Description: "ANSI color for headers"},
	{Name: "color_muted", Default: "8", Description: "ANSI color for de-emphasized text"},
}

// DefaultFor returns the default value for a key name, or "" when the key is
// unknown.
func DefaultFor(name string) string {
	for _, k := range Keys {
		if k.Name == name {
			return k.Default
		}
	}
	return ""
}
