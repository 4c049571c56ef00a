package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Contact is a single address-book record. Phones and emails hold values
// already normalized by the validate package; the store persists them in
// insertion order.
type Contact struct {
	ID         string
	Name       string
	Address    string
	Phones     []string
	Emails     []string
	Birthday   *time.Time
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// NewContact creates a contact with a fresh ID and timestamps.
func NewContact(name string) *Contact {
	now := time.Now()
	return &Contact{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(name),
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

// Touch updates the modification timestamp.
func (c *Contact) Touch() {
	c.ModifiedAt = time.Now()
}

// Rename sets the contact name. The name must not be blank.
func (c *Contact) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	c.Name = name
	c.Touch()
	return nil
}

// SetAddress replaces the contact address.
func (c *Contact) SetAddress(address string) {
	c.Address = strings.TrimSpace(address)
	c.Touch()
}

// AddPhone appends a phone number. The caller is expected to validate and
// normalize the number first.
func (c *Contact) AddPhone(phone string) error {
	for _, p := range c.Phones {
		if p == phone {
			return fmt.Errorf("phone %s already exists", phone)
		}
	}
	c.Phones = append(c.Phones, phone)
	c.Touch()
	return nil
}

// RemovePhone removes a phone number.
func (c *Contact) RemovePhone(phone string) error {
	for i, p := range c.Phones {
		if p == phone {
			c.Phones = append(c.Phones[:i], c.Phones[i+1:]...)
			c.Touch()
			return nil
		}
	}
	return fmt.Errorf("phone %s not found", phone)
}

// AddEmail appends an email address. The caller is expected to validate and
// normalize the address first.
func (c *Contact) AddEmail(email string) error {
	for _, e := range c.Emails {
		if e == email {
			return fmt.Errorf("email %s already exists", email)
		}
	}
	c.Emails = append(c.Emails, email)
	c.Touch()
	return nil
}

// RemoveEmail removes an email address.
func (c *Contact) RemoveEmail(email string) error {
	for i, e := range c.Emails {
		if e == email {
			c.Emails = append(c.Emails[:i], c.Emails[i+1:]...)
			c.Touch()
			return nil
		}
	}
	return fmt.Errorf("email %s not found", email)
}

// SetBirthday sets or clears the birthday.
func (c *Contact) SetBirthday(birthday *time.Time) {
	c.Birthday = birthday
	c.Touch()
}

// DaysUntilBirthday returns the number of days until the next occurrence of
// the contact's birthday. The second return value is false when no birthday
// is set.
func (c *Contact) DaysUntilBirthday() (int, bool) {
	if c.Birthday == nil {
		return 0, false
	}

	today := truncateToDay(time.Now())
	next := time.Date(today.Year(), c.Birthday.Month(), c.Birthday.Day(), 0, 0, 0, 0, today.Location())
	if next.Before(today) {
		next = time.Date(today.Year()+1, c.Birthday.Month(), c.Birthday.Day(), 0, 0, 0, 0, today.Location())
	}

	return int(next.Sub(today).Hours() / 24), true
}

// MatchesSearch reports whether any contact field contains the query.
// Name, address and emails are matched case-insensitively; phones and the
// birthday are matched verbatim.
func (c *Contact) MatchesSearch(query string) bool {
	q := strings.ToLower(query)

	if strings.Contains(strings.ToLower(c.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Address), q) {
		return true
	}
	for _, phone := range c.Phones {
		if strings.Contains(phone, query) {
			return true
		}
	}
	for _, email := range c.Emails {
		if strings.Contains(strings.ToLower(email), q) {
			return true
		}
	}
	if c.Birthday != nil && strings.Contains(c.Birthday.Format("2006-01-02"), query) {
		return true
	}

	return false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
