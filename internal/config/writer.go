package config

import (
	"os"
	"strings"

	"github.com/rolo-tools/cli/internal/paths"
)

// WriteLines replaces the config file contents atomically via a temp file
// rename.
func WriteLines(lines []string) error {
	configPath := paths.ConfigFilePath()
	tmpPath := configPath + ".tmp"

	content := strings.Join(lines, "\n")
	if content != "" {
		content += "\n"
	}

	if err := os.WriteFile(tmpPath, []byte(content), 0600); err != nil {
		return err
	}

	return os.Rename(tmpPath, configPath)
}

// Set updates the value for a key in the given lines, preserving inline
// comments, or appends a new line when the key is absent. The second return
// value reports whether an existing line was updated.
func Set(lines []string, key, value string) ([]string, bool) {
	for i, line := range lines {
		k, _, ok := parseLine(line)
		if !ok || k != key {
			continue
		}

		// Preserve an inline comment after the old value.
		if idx := strings.Index(line, "#"); idx > strings.Index(line, "=") {
			comment := strings.TrimSpace(line[idx:])
			lines[i] = key + "=" + value + " " + comment
		} else {
			lines[i] = key + "=" + value
		}
		return lines, true
	}

	return append(lines, key+"="+value), false
}

// Unset removes the line for a key. The second return value reports whether
// a line was removed.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		if k, _, ok := parseLine(line); ok && k == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}
