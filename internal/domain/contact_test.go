package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewContact(t *testing.T) {
	c := NewContact("  John Doe  ")

	require.NotEmpty(t, c.ID)
	require.Equal(t, "John Doe", c.Name)
	require.Empty(t, c.Phones)
	require.Empty(t, c.Emails)
	require.Nil(t, c.Birthday)
	require.False(t, c.CreatedAt.IsZero())
	require.Equal(t, c.CreatedAt, c.ModifiedAt)
}

func TestContactRename(t *testing.T) {
	c := NewContact("John")

	require.NoError(t, c.Rename("Jane"))
	require.Equal(t, "Jane", c.Name)

	require.Error(t, c.Rename("   "))
	require.Equal(t, "Jane", c.Name)
}

func TestContactPhones(t *testing.T) {
	c := NewContact("John")

	require.NoError(t, c.AddPhone("1234567890"))
	require.NoError(t, c.AddPhone("0987654321"))
	require.Equal(t, []string{"1234567890", "0987654321"}, c.Phones)

	err := c.AddPhone("1234567890")
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")

	require.NoError(t, c.RemovePhone("1234567890"))
	require.Equal(t, []string{"0987654321"}, c.Phones)

	err = c.RemovePhone("1234567890")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestContactEmails(t *testing.T) {
	c := NewContact("John")

	require.NoError(t, c.AddEmail("john@example.com"))
	require.Error(t, c.AddEmail("john@example.com"))
	require.NoError(t, c.RemoveEmail("john@example.com"))
	require.Error(t, c.RemoveEmail("john@example.com"))
}

func TestDaysUntilBirthday(t *testing.T) {
	c := NewContact("John")

	_, ok := c.DaysUntilBirthday()
	require.False(t, ok)

	// Birthday tomorrow.
	tomorrow := time.Now().AddDate(0, 0, 1)
	bday := time.Date(1990, tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, time.Local)
	c.SetBirthday(&bday)

	days, ok := c.DaysUntilBirthday()
	require.True(t, ok)
	require.Equal(t, 1, days)

	// Birthday today.
	today := time.Now()
	bday = time.Date(1990, today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
	c.SetBirthday(&bday)

	days, ok = c.DaysUntilBirthday()
	require.True(t, ok)
	require.Equal(t, 0, days)
}

func TestContactMatchesSearch(t *testing.T) {
	c := NewContact("John Doe")
	c.SetAddress("123 Main St")
	require.NoError(t, c.AddPhone("5551234567"))
	require.NoError(t, c.AddEmail("john@example.com"))
	bday := time.Date(1990, 5, 15, 0, 0, 0, 0, time.Local)
	c.SetBirthday(&bday)

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "name match", query: "john", want: true},
		{name: "name case insensitive", query: "JOHN", want: true},
		{name: "address match", query: "main st", want: true},
		{name: "phone match", query: "555123", want: true},
		{name: "email match", query: "example.com", want: true},
		{name: "birthday match", query: "1990-05", want: true},
		{name: "no match", query: "zzz", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, c.MatchesSearch(tt.query))
		})
	}
}
