package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNote(t *testing.T) {
	n, err := NewNote("  Buy milk  ", []string{"Shopping", "#errands"})
	require.NoError(t, err)
	require.NotEmpty(t, n.ID)
	require.Equal(t, "Buy milk", n.Content)
	require.Equal(t, []string{"errands", "shopping"}, n.Tags)

	_, err = NewNote("   ", nil)
	require.Error(t, err)
}

func TestNoteTags(t *testing.T) {
	n, err := NewNote("content", nil)
	require.NoError(t, err)

	require.NoError(t, n.AddTag("Work"))
	require.NoError(t, n.AddTag("#work")) // duplicate after normalization
	require.Equal(t, []string{"work"}, n.Tags)

	require.Error(t, n.AddTag("  "))

	require.True(t, n.HasTag("WORK"))
	require.False(t, n.HasTag("play"))

	require.NoError(t, n.RemoveTag("work"))
	require.Empty(t, n.Tags)
	require.Error(t, n.RemoveTag("work"))
}

func TestNoteSetContent(t *testing.T) {
	n, err := NewNote("original", nil)
	require.NoError(t, err)

	require.NoError(t, n.SetContent("updated"))
	require.Equal(t, "updated", n.Content)

	require.Error(t, n.SetContent(""))
	require.Equal(t, "updated", n.Content)
}

func TestNoteMatchesSearch(t *testing.T) {
	n, err := NewNote("Remember the meeting notes", []string{"work", "meetings"})
	require.NoError(t, err)

	require.True(t, n.MatchesSearch("MEETING"))
	require.True(t, n.MatchesSearch("work"))
	require.False(t, n.MatchesSearch("vacation"))
}

func TestNotePreview(t *testing.T) {
	n, err := NewNote("a very long note content here", nil)
	require.NoError(t, err)

	require.Equal(t, "a very long note content here", n.Preview(100))
	require.Equal(t, "a very ...", n.Preview(10))
}
