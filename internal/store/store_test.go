package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rolo-tools/cli/internal/domain"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestContactRoundTrip(t *testing.T) {
	s := newTestStore(t)
	contacts := s.Contacts()

	c := domain.NewContact("John Doe")
	c.SetAddress("123 Main St")
	require.NoError(t, c.AddPhone("5551234567"))
	require.NoError(t, c.AddPhone("5559876543"))
	require.NoError(t, c.AddEmail("john@example.com"))
	bday := time.Date(1990, 5, 15, 0, 0, 0, 0, time.Local)
	c.SetBirthday(&bday)

	require.NoError(t, contacts.Add(c))

	got, err := contacts.Get(c.ID)
	require.NoError(t, err)
	require.Equal(t, c.Name, got.Name)
	require.Equal(t, c.Address, got.Address)
	require.Equal(t, []string{"5551234567", "5559876543"}, got.Phones)
	require.Equal(t, []string{"john@example.com"}, got.Emails)
	require.NotNil(t, got.Birthday)
	require.Equal(t, "1990-05-15", got.Birthday.Format("2006-01-02"))
}

func TestContactGetByName(t *testing.T) {
	s := newTestStore(t)
	contacts := s.Contacts()

	require.NoError(t, contacts.Add(domain.NewContact("Alice")))

	got, err := contacts.GetByName("alice")
	require.NoError(t, err)
	require.Equal(t, "Alice", got.Name)

	_, err = contacts.GetByName("bob")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContactUpdate(t *testing.T) {
	s := newTestStore(t)
	contacts := s.Contacts()

	c := domain.NewContact("Alice")
	require.NoError(t, c.AddPhone("1234567890"))
	require.NoError(t, contacts.Add(c))

	require.NoError(t, c.Rename("Alicia"))
	require.NoError(t, c.RemovePhone("1234567890"))
	require.NoError(t, c.AddPhone("0987654321"))
	require.NoError(t, contacts.Update(c))

	got, err := contacts.Get(c.ID)
	require.NoError(t, err)
	require.Equal(t, "Alicia", got.Name)
	require.Equal(t, []string{"0987654321"}, got.Phones)

	ghost := domain.NewContact("Ghost")
	require.ErrorIs(t, contacts.Update(ghost), domain.ErrNotFound)
}

func TestContactDelete(t *testing.T) {
	s := newTestStore(t)
	contacts := s.Contacts()

	c := domain.NewContact("Alice")
	require.NoError(t, c.AddPhone("1234567890"))
	require.NoError(t, contacts.Add(c))

	require.NoError(t, contacts.Delete(c.ID))
	_, err := contacts.Get(c.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	// Cascade removed the phone rows.
	var count int
	require.NoError(t, s.DB().QueryRow(
		`SELECT COUNT(*) FROM contact_phones WHERE contact_id = ?`, c.ID).Scan(&count))
	require.Zero(t, count)

	require.ErrorIs(t, contacts.Delete(c.ID), domain.ErrNotFound)
}

func TestCascadeDeleteAcrossConnections(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "rolo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	contacts := s.Contacts()
	c := domain.NewContact("Alice")
	require.NoError(t, c.AddPhone("5551234567"))
	require.NoError(t, c.AddEmail("alice@example.com"))
	require.NoError(t, contacts.Add(c))

	notes := s.Notes()
	n, err := domain.NewNote("tagged note", []string{"work"})
	require.NoError(t, err)
	require.NoError(t, notes.Add(n))

	// Drop idle connections so the deletes run on fresh ones, which must
	// still enforce foreign keys.
	s.DB().SetMaxIdleConns(0)

	require.NoError(t, contacts.Delete(c.ID))
	require.NoError(t, notes.Delete(n.ID))

	for _, table := range []string{"contact_phones", "contact_emails", "note_tags"} {
		var count int
		require.NoError(t, s.DB().QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&count))
		require.Zero(t, count, table)
	}

	tags, err := notes.Tags()
	require.NoError(t, err)
	require.Empty(t, tags)
}

func TestContactAllSortedByName(t *testing.T) {
	s := newTestStore(t)
	contacts := s.Contacts()

	for _, name := range []string{"zoe", "Adam", "mary"} {
		require.NoError(t, contacts.Add(domain.NewContact(name)))
	}

	all, err := contacts.All()
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "Adam", all[0].Name)
	require.Equal(t, "mary", all[1].Name)
	require.Equal(t, "zoe", all[2].Name)
}

func TestContactSearch(t *testing.T) {
	s := newTestStore(t)
	contacts := s.Contacts()

	john := domain.NewContact("John Doe")
	require.NoError(t, john.AddPhone("5551234567"))
	require.NoError(t, john.AddEmail("john@work.org"))
	require.NoError(t, contacts.Add(john))

	jane := domain.NewContact("Jane Smith")
	jane.SetAddress("42 Harbor Road")
	require.NoError(t, contacts.Add(jane))

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "by name", query: "doe", want: []string{"John Doe"}},
		{name: "by phone", query: "555123", want: []string{"John Doe"}},
		{name: "by email", query: "work.org", want: []string{"John Doe"}},
		{name: "by address", query: "harbor", want: []string{"Jane Smith"}},
		{name: "no match", query: "nothing", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := contacts.Search(tt.query)
			require.NoError(t, err)
			var names []string
			for _, c := range got {
				names = append(names, c.Name)
			}
			require.Equal(t, tt.want, names)
		})
	}
}

func TestContactClear(t *testing.T) {
	s := newTestStore(t)
	contacts := s.Contacts()

	require.NoError(t, contacts.Add(domain.NewContact("a")))
	require.NoError(t, contacts.Add(domain.NewContact("b")))
	require.NoError(t, contacts.Clear())

	all, err := contacts.All()
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestNoteRoundTrip(t *testing.T) {
	s := newTestStore(t)
	notes := s.Notes()

	n, err := domain.NewNote("Buy milk", []string{"shopping", "errands"})
	require.NoError(t, err)
	require.NoError(t, notes.Add(n))

	got, err := notes.Get(n.ID)
	require.NoError(t, err)
	require.Equal(t, "Buy milk", got.Content)
	require.Equal(t, []string{"errands", "shopping"}, got.Tags)
}

func TestNoteUpdateAndDelete(t *testing.T) {
	s := newTestStore(t)
	notes := s.Notes()

	n, err := domain.NewNote("original", []string{"one"})
	require.NoError(t, err)
	require.NoError(t, notes.Add(n))

	require.NoError(t, n.SetContent("updated"))
	require.NoError(t, n.AddTag("two"))
	require.NoError(t, notes.Update(n))

	got, err := notes.Get(n.ID)
	require.NoError(t, err)
	require.Equal(t, "updated", got.Content)
	require.Equal(t, []string{"one", "two"}, got.Tags)

	require.NoError(t, notes.Delete(n.ID))
	_, err = notes.Get(n.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNoteSearchAndFindByContent(t *testing.T) {
	s := newTestStore(t)
	notes := s.Notes()

	first, err := domain.NewNote("meeting with the team", []string{"work"})
	require.NoError(t, err)
	require.NoError(t, notes.Add(first))

	second, err := domain.NewNote("grocery list", []string{"errands"})
	require.NoError(t, err)
	require.NoError(t, notes.Add(second))

	byContent, err := notes.Search("meeting")
	require.NoError(t, err)
	require.Len(t, byContent, 1)
	require.Equal(t, first.ID, byContent[0].ID)

	byTag, err := notes.Search("errands")
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	require.Equal(t, second.ID, byTag[0].ID)

	found, err := notes.FindByContent("grocery")
	require.NoError(t, err)
	require.Equal(t, second.ID, found.ID)

	_, err = notes.FindByContent("vacation")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNoteByTagAndTags(t *testing.T) {
	s := newTestStore(t)
	notes := s.Notes()

	for _, spec := range []struct {
		content string
		tags    []string
	}{
		{content: "n1", tags: []string{"work", "urgent"}},
		{content: "n2", tags: []string{"work"}},
		{content: "n3", tags: []string{"home"}},
	} {
		n, err := domain.NewNote(spec.content, spec.tags)
		require.NoError(t, err)
		require.NoError(t, notes.Add(n))
	}

	work, err := notes.ByTag("Work")
	require.NoError(t, err)
	require.Len(t, work, 2)

	tags, err := notes.Tags()
	require.NoError(t, err)
	require.Equal(t, map[string]int{"work": 2, "urgent": 1, "home": 1}, tags)
}

func TestNoteClear(t *testing.T) {
	s := newTestStore(t)
	notes := s.Notes()

	n, err := domain.NewNote("something", []string{"tag"})
	require.NoError(t, err)
	require.NoError(t, notes.Add(n))
	require.NoError(t, notes.Clear())

	all, err := notes.All()
	require.NoError(t, err)
	require.Empty(t, all)

	tags, err := notes.Tags()
	require.NoError(t, err)
	require.Empty(t, tags)
}
