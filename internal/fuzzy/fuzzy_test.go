package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "identical", a: "add-contact", b: "add-contact", want: 0},
		{name: "one substitution", a: "list", b: "lost", want: 1},
		{name: "missing letter", a: "add-contac", b: "add-contact", want: 1},
		{name: "transposition", a: "add", b: "dad", want: 2},
		{name: "completely different", a: "abc", b: "xyz", want: 3},
		{name: "empty a", a: "", b: "help", want: 4},
		{name: "empty b", a: "help", b: "", want: 4},
		{name: "both empty", a: "", b: "", want: 0},
		{name: "case insensitive", a: "HELP", b: "help", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Distance(tt.a, tt.b))
		})
	}
}

func TestSimilarity(t *testing.T) {
	require.Equal(t, 1.0, Similarity("add-contact", "add-contact"))
	require.Equal(t, 1.0, Similarity("", ""))
	require.Equal(t, 0.0, Similarity("", "abc"))
	require.Less(t, Similarity("abc", "xyz"), 0.4)

	// Symmetric.
	require.Equal(t, Similarity("add-note", "add-contact"), Similarity("add-contact", "add-note"))

	// Bounded.
	sim := Similarity("list-contacts", "list-notes")
	require.GreaterOrEqual(t, sim, 0.0)
	require.LessOrEqual(t, sim, 1.0)
}

func TestBestMatch(t *testing.T) {
	candidates := []string{"add-contact", "list-contacts", "search-contacts", "delete-contact"}

	got, ok := BestMatch("add-contac", candidates, MatchThreshold)
	require.True(t, ok)
	require.Equal(t, "add-contact", got)

	_, ok = BestMatch("xyz", candidates, MatchThreshold)
	require.False(t, ok)

	_, ok = BestMatch("anything", nil, MatchThreshold)
	require.False(t, ok)
}

func TestSuggestPrefixPass(t *testing.T) {
	candidates := []string{"help", "add-contact", "list-contacts", "add-note"}

	// Prefix matches preserve candidate order and exclude non-prefixed names.
	require.Equal(t, []string{"add-contact", "add-note"}, Suggest("add", candidates))
}

func TestSuggestPrefixCap(t *testing.T) {
	candidates := []string{"a1", "a2", "a3", "a4"}
	require.Len(t, Suggest("a", candidates), 3)
}

func TestSuggestFuzzyPass(t *testing.T) {
	candidates := []string{"help", "exit", "clear"}

	// No prefix match; fuzzy pass ranks by similarity above the floor.
	got := Suggest("hepl", candidates)
	require.NotEmpty(t, got)
	require.Equal(t, "help", got[0])
	for _, name := range got {
		require.Greater(t, Similarity("hepl", name), 0.4)
	}
}

func TestSuggestNoMatches(t *testing.T) {
	candidates := []string{"help", "exit", "clear"}
	require.Empty(t, Suggest("qqqqqqqqqq", candidates))
	require.Empty(t, Suggest("x", nil))
}
