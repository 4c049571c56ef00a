package shell

import (
	"os"
	"strings"
)

// History keeps the lines a session has executed, backed by a file so
// recall survives restarts. The newest entry is last.
type History struct {
	path    string
	max     int
	entries []string
}

// LoadHistory reads the history file at path, keeping at most max
// entries. A missing file yields an empty history.
func LoadHistory(path string, max int) (*History, error) {
	h := &History{path: path, max: max}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return h, nil
		}
		return nil, err
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			h.entries = append(h.entries, line)
		}
	}
	h.trim()
	return h, nil
}

// Add records line and persists the history. Blank lines and immediate
// repeats are skipped.
func (h *History) Add(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == line {
		return nil
	}
	h.entries = append(h.entries, line)
	h.trim()
	return h.save()
}

// Entries returns the history oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) trim() {
	if h.max > 0 && len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
}

func (h *History) save() error {
	if h.path == "" {
		return nil
	}
	data := strings.Join(h.entries, "\n") + "\n"
	return os.WriteFile(h.path, []byte(data), 0o600)
}
