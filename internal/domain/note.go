package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Note is a free-form text record with a set of tags. Tags are kept
// normalized (lowercase, no leading '#'), unique and sorted.
type Note struct {
	ID         string
	Content    string
	Tags       []string
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// NewNote creates a note with a fresh ID. Content must not be blank;
// invalid tags are rejected.
func NewNote(content string, tags []string) (*Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("note content cannot be empty")
	}

	now := time.Now()
	n := &Note{
		ID:         uuid.NewString(),
		Content:    content,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	for _, tag := range tags {
		if err := n.AddTag(tag); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Touch updates the modification timestamp.
func (n *Note) Touch() {
	n.ModifiedAt = time.Now()
}

// SetContent replaces the note content. Content must not be blank.
func (n *Note) SetContent(content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return fmt.Errorf("note content cannot be empty")
	}
	n.Content = content
	n.Touch()
	return nil
}

// NormalizeTag converts a tag to its canonical form: trimmed, lowercased,
// without a leading '#'.
func NormalizeTag(tag string) string {
	tag = strings.TrimSpace(strings.ToLower(tag))
	return strings.TrimPrefix(tag, "#")
}

// AddTag adds a tag in normalized form. Adding an existing tag is a no-op.
func (n *Note) AddTag(tag string) error {
	tag = NormalizeTag(tag)
	if tag == "" {
		return fmt.Errorf("tag cannot be empty")
	}
	if n.HasTag(tag) {
		return nil
	}
	n.Tags = append(n.Tags, tag)
	sort.Strings(n.Tags)
	n.Touch()
	return nil
}

// RemoveTag removes a tag, failing when the note does not carry it.
func (n *Note) RemoveTag(tag string) error {
	tag = NormalizeTag(tag)
	for i, t := range n.Tags {
		if t == tag {
			n.Tags = append(n.Tags[:i], n.Tags[i+1:]...)
			n.Touch()
			return nil
		}
	}
	return fmt.Errorf("tag '%s' not found", tag)
}

// ClearTags removes every tag from the note.
func (n *Note) ClearTags() {
	if len(n.Tags) == 0 {
		return
	}
	n.Tags = nil
	n.Touch()
}

// HasTag reports whether the note carries the given tag.
func (n *Note) HasTag(tag string) bool {
	tag = NormalizeTag(tag)
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// MatchesSearch reports whether the note content or any tag contains the
// query, case-insensitively.
func (n *Note) MatchesSearch(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(n.Content), q) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(tag, q) {
			return true
		}
	}
	return false
}

// Preview returns the note content truncated for table display.
func (n *Note) Preview(maxLen int) string {
	runes := []rune(n.Content)
	if len(runes) <= maxLen {
		return n.Content
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
