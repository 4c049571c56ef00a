package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/rolo-tools/cli/internal/paths"
)

// ReadLines returns the raw lines of the config file, creating it with
// defaults when it does not exist yet.
func ReadLines() ([]string, error) {
	configPath := paths.ConfigFilePath()

	info, err := os.Stat(configPath)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 {
		lines = defaultLines()
		if err := WriteLines(lines); err != nil {
			return nil, err
		}
	}

	return lines, nil
}

func defaultLines() []string {
	lines := []string{
		"# rolo configuration",
		"# Edit values below; unset keys fall back to their defaults.",
		"",
	}
	for _, key := range Keys {
		lines = append(lines, key.Name+"="+key.Default)
	}
	return lines
}

// parseLine splits a config line into key and value. The second return
// value is false for blank lines and comments.
func parseLine(line string) (string, string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}

	parts := strings.SplitN(trimmed, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}

	key := strings.TrimSpace(parts[0])
	value := parts[1]

	// Strip inline comment after the value.
	if idx := strings.Index(value, "#"); idx >= 0 {
		value = value[:idx]
	}

	return key, strings.TrimSpace(value), true
}

// GetAll returns every configured value keyed by name.
func GetAll() (map[string]string, error) {
	lines, err := ReadLines()
	if err != nil {
		return nil, err
	}

	values := make(map[string]string)
	for _, line := range lines {
		if key, value, ok := parseLine(line); ok {
			values[key] = value
		}
	}
	return values, nil
}

// Get returns the configured value for a key, falling back to the key's
// default. The second return value is false when the key is neither set nor
// known.
func Get(key string) (string, bool) {
	values, err := GetAll()
	if err == nil {
		if value, ok := values[key]; ok {
			return value, true
		}
	}

	if def := DefaultFor(key); def != "" {
		return def, true
	}
	return "", false
}
