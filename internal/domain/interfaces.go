// Package domain holds the record models and the interfaces that tie the
// storage, logging and command layers together.
package domain

import "errors"

// ErrNotFound is returned by store lookups when no record matches.
var ErrNotFound = errors.New("record not found")

// IsNotFound reports whether err is a missing-record error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// ContactStore defines persistence operations for contacts.
type ContactStore interface {
	// Add inserts a new contact.
	Add(c *Contact) error

	// Get returns the contact with the given ID, or ErrNotFound.
	Get(id string) (*Contact, error)

	// GetByName returns the first contact whose name matches
	// case-insensitively, or ErrNotFound.
	GetByName(name string) (*Contact, error)

	// All returns every contact ordered by name.
	All() ([]*Contact, error)

	// Update persists changes to an existing contact.
	Update(c *Contact) error

	// Delete removes the contact with the given ID.
	Delete(id string) error

	// Search returns contacts matching the query in any field.
	Search(query string) ([]*Contact, error)

	// Clear removes every contact.
	Clear() error
}

// NoteStore defines persistence operations for notes.
type NoteStore interface {
	// Add inserts a new note.
	Add(n *Note) error

	// Get returns the note with the given ID, or ErrNotFound.
	Get(id string) (*Note, error)

	// All returns every note ordered by creation time.
	All() ([]*Note, error)

	// Update persists changes to an existing note.
	Update(n *Note) error

	// Delete removes the note with the given ID.
	Delete(id string) error

	// Search returns notes whose content or tags match the query.
	Search(query string) ([]*Note, error)

	// FindByContent returns the first note whose content matches the query,
	// or ErrNotFound.
	FindByContent(query string) (*Note, error)

	// ByTag returns notes carrying the given tag.
	ByTag(tag string) ([]*Note, error)

	// Tags returns every tag in use with its note count.
	Tags() (map[string]int, error)

	// Clear removes every note.
	Clear() error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}
