package store

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/rolo-tools/cli/internal/domain"
)

// NoteStore implements domain.NoteStore over SQLite.
type NoteStore struct {
	db *sql.DB
}

var _ domain.NoteStore = (*NoteStore)(nil)

// Add inserts a note with its tags in one transaction.
func (s *NoteStore) Add(n *domain.Note) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		`INSERT INTO notes (id, content, created_at, modified_at) VALUES (?, ?, ?, ?)`,
		n.ID, n.Content,
		n.CreatedAt.Format(time.RFC3339Nano), n.ModifiedAt.Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("insert note: %w", err)
	}

	if err := insertTags(tx, n); err != nil {
		return err
	}

	return tx.Commit()
}

// Get returns the note with the given ID.
func (s *NoteStore) Get(id string) (*domain.Note, error) {
	notes, err := s.list(`WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, domain.ErrNotFound
	}
	return notes[0], nil
}

// All returns every note, oldest first.
func (s *NoteStore) All() ([]*domain.Note, error) {
	return s.list(`ORDER BY created_at`)
}

// Update rewrites the note row and replaces its tags.
func (s *NoteStore) Update(n *domain.Note) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(
		`UPDATE notes SET content = ?, modified_at = ? WHERE id = ?`,
		n.Content, n.ModifiedAt.Format(time.RFC3339Nano), n.ID,
	)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.Exec(`DELETE FROM note_tags WHERE note_id = ?`, n.ID); err != nil {
		return fmt.Errorf("clear tags: %w", err)
	}
	if err := insertTags(tx, n); err != nil {
		return err
	}

	return tx.Commit()
}

// Delete removes the note; tags cascade.
func (s *NoteStore) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search returns notes whose content or tags contain the query.
func (s *NoteStore) Search(query string) ([]*domain.Note, error) {
	pattern := "%" + query + "%"
	return s.list(
		`WHERE id IN (
			SELECT id FROM notes WHERE content LIKE ?
			UNION
			SELECT note_id FROM note_tags WHERE tag LIKE ?
		 )
		 ORDER BY created_at`,
		pattern, pattern,
	)
}

// FindByContent returns the oldest note whose content contains the query.
func (s *NoteStore) FindByContent(query string) (*domain.Note, error) {
	notes, err := s.list(`WHERE content LIKE ? ORDER BY created_at LIMIT 1`, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, domain.ErrNotFound
	}
	return notes[0], nil
}

// ByTag returns notes carrying the given tag, oldest first.
func (s *NoteStore) ByTag(tag string) ([]*domain.Note, error) {
	return s.list(
		`WHERE id IN (SELECT note_id FROM note_tags WHERE tag = ?) ORDER BY created_at`,
		domain.NormalizeTag(tag),
	)
}

// Tags returns every tag in use with the number of notes carrying it.
func (s *NoteStore) Tags() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT tag, COUNT(*) FROM note_tags GROUP BY tag`)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	defer rows.Close()

	tags := make(map[string]int)
	for rows.Next() {
		var (
			tag   string
			count int
		)
		if err := rows.Scan(&tag, &count); err != nil {
			return nil, err
		}
		tags[tag] = count
	}
	return tags, rows.Err()
}

// Clear removes every note.
func (s *NoteStore) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM notes`); err != nil {
		return fmt.Errorf("clear notes: %w", err)
	}
	return nil
}

func (s *NoteStore) list(clause string, args ...any) ([]*domain.Note, error) {
	rows, err := s.db.Query(
		`SELECT id, content, created_at, modified_at FROM notes `+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	var notes []*domain.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, n := range notes {
		if err := s.loadTags(n); err != nil {
			return nil, err
		}
	}

	return notes, nil
}

func (s *NoteStore) loadTags(n *domain.Note) error {
	rows, err := s.db.Query(`SELECT tag FROM note_tags WHERE note_id = ?`, n.ID)
	if err != nil {
		return fmt.Errorf("load tags: %w", err)
	}
	defer rows.Close()

	n.Tags = nil
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return err
		}
		n.Tags = append(n.Tags, tag)
	}
	sort.Strings(n.Tags)
	return rows.Err()
}

func scanNote(rows *sql.Rows) (*domain.Note, error) {
	var (
		n        domain.Note
		created  string
		modified string
	)
	if err := rows.Scan(&n.ID, &n.Content, &created, &modified); err != nil {
		return nil, fmt.Errorf("scan note: %w", err)
	}

	var err error
	if n.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if n.ModifiedAt, err = time.Parse(time.RFC3339Nano, modified); err != nil {
		return nil, fmt.Errorf("parse modified_at: %w", err)
	}

	return &n, nil
}

func insertTags(tx *sql.Tx, n *domain.Note) error {
	for _, tag := range n.Tags {
		if _, err := tx.Exec(
			`INSERT INTO note_tags (note_id, tag) VALUES (?, ?)`, n.ID, tag,
		); err != nil {
			return fmt.Errorf("insert tag: %w", err)
		}
	}
	return nil
}
