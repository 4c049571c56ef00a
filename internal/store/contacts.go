package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rolo-tools/cli/internal/domain"
)

// ContactStore implements domain.ContactStore over SQLite. Phones and
// emails live in side tables keyed by position to preserve insertion order.
type ContactStore struct {
	db *sql.DB
}

var _ domain.ContactStore = (*ContactStore)(nil)

// Add inserts a contact together with its phones and emails in one
// transaction.
func (s *ContactStore) Add(c *domain.Contact) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		`INSERT INTO contacts (id, name, address, birthday, created_at, modified_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Address, birthdayValue(c.Birthday),
		c.CreatedAt.Format(time.RFC3339Nano), c.ModifiedAt.Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}

	if err := insertContactLists(tx, c); err != nil {
		return err
	}

	return tx.Commit()
}

// Get returns the contact with the given ID.
func (s *ContactStore) Get(id string) (*domain.Contact, error) {
	return s.one(`WHERE id = ?`, id)
}

// GetByName returns the first contact whose name matches, ignoring case.
func (s *ContactStore) GetByName(name string) (*domain.Contact, error) {
	return s.one(`WHERE name = ? COLLATE NOCASE ORDER BY created_at LIMIT 1`, name)
}

// All returns every contact ordered by name.
func (s *ContactStore) All() ([]*domain.Contact, error) {
	return s.list(`ORDER BY name COLLATE NOCASE`)
}

// Update rewrites the contact row and replaces its phone and email lists.
func (s *ContactStore) Update(c *domain.Contact) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(
		`UPDATE contacts SET name = ?, address = ?, birthday = ?, modified_at = ? WHERE id = ?`,
		c.Name, c.Address, birthdayValue(c.Birthday),
		c.ModifiedAt.Format(time.RFC3339Nano), c.ID,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.Exec(`DELETE FROM contact_phones WHERE contact_id = ?`, c.ID); err != nil {
		return fmt.Errorf("clear phones: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM contact_emails WHERE contact_id = ?`, c.ID); err != nil {
		return fmt.Errorf("clear emails: %w", err)
	}
	if err := insertContactLists(tx, c); err != nil {
		return err
	}

	return tx.Commit()
}

// Delete removes the contact; phones and emails cascade.
func (s *ContactStore) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search returns contacts with the query in any field. Name, address and
// emails match case-insensitively; phones and birthdays match verbatim.
func (s *ContactStore) Search(query string) ([]*domain.Contact, error) {
	pattern := "%" + query + "%"
	return s.list(
		`WHERE id IN (
			SELECT id FROM contacts
			 WHERE name LIKE ? OR address LIKE ? OR ifnull(birthday, '') LIKE ?
			UNION
			SELECT contact_id FROM contact_phones WHERE phone LIKE ?
			UNION
			SELECT contact_id FROM contact_emails WHERE email LIKE ?
		 )
		 ORDER BY name COLLATE NOCASE`,
		pattern, pattern, pattern, pattern, pattern,
	)
}

// Clear removes every contact.
func (s *ContactStore) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM contacts`); err != nil {
		return fmt.Errorf("clear contacts: %w", err)
	}
	return nil
}

func (s *ContactStore) one(clause string, args ...any) (*domain.Contact, error) {
	contacts, err := s.list(clause, args...)
	if err != nil {
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, domain.ErrNotFound
	}
	return contacts[0], nil
}

func (s *ContactStore) list(clause string, args ...any) ([]*domain.Contact, error) {
	rows, err := s.db.Query(
		`SELECT id, name, address, birthday, created_at, modified_at FROM contacts `+clause,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*domain.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, c := range contacts {
		if err := s.loadLists(c); err != nil {
			return nil, err
		}
	}

	return contacts, nil
}

func (s *ContactStore) loadLists(c *domain.Contact) error {
	var err error
	c.Phones, err = s.stringColumn(
		`SELECT phone FROM contact_phones WHERE contact_id = ? ORDER BY position`, c.ID)
	if err != nil {
		return fmt.Errorf("load phones: %w", err)
	}
	c.Emails, err = s.stringColumn(
		`SELECT email FROM contact_emails WHERE contact_id = ? ORDER BY position`, c.ID)
	if err != nil {
		return fmt.Errorf("load emails: %w", err)
	}
	return nil
}

func (s *ContactStore) stringColumn(query string, args ...any) ([]string, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func scanContact(rows *sql.Rows) (*domain.Contact, error) {
	var (
		c        domain.Contact
		birthday sql.NullString
		created  string
		modified string
	)
	if err := rows.Scan(&c.ID, &c.Name, &c.Address, &birthday, &created, &modified); err != nil {
		return nil, fmt.Errorf("scan contact: %w", err)
	}

	var err error
	if c.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if c.ModifiedAt, err = time.Parse(time.RFC3339Nano, modified); err != nil {
		return nil, fmt.Errorf("parse modified_at: %w", err)
	}
	if birthday.Valid && birthday.String != "" {
		t, err := time.ParseInLocation("2006-01-02", birthday.String, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parse birthday: %w", err)
		}
		c.Birthday = &t
	}

	return &c, nil
}

func insertContactLists(tx *sql.Tx, c *domain.Contact) error {
	for i, phone := range c.Phones {
		if _, err := tx.Exec(
			`INSERT INTO contact_phones (contact_id, position, phone) VALUES (?, ?, ?)`,
			c.ID, i, phone,
		); err != nil {
			return fmt.Errorf("insert phone: %w", err)
		}
	}
	for i, email := range c.Emails {
		if _, err := tx.Exec(
			`INSERT INTO contact_emails (contact_id, position, email) VALUES (?, ?, ?)`,
			c.ID, i, email,
		); err != nil {
			return fmt.Errorf("insert email: %w", err)
		}
	}
	return nil
}

func birthdayValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format("2006-01-02")
}
