// Package fuzzy provides case-insensitive edit-distance matching, used for
// "did you mean" prompts and command suggestions.
package fuzzy

import (
	"sort"
	"strings"
)

const (
	// MatchThreshold is the minimum similarity BestMatch accepts.
	MatchThreshold = 0.6

	// suggestionFloor drops fuzzy suggestions with very low similarity.
	suggestionFloor = 0.4

	// maxSuggestions caps the number of results from Suggest.
	maxSuggestions = 3
)

// Distance returns the Levenshtein distance between two strings,
// case-insensitively and per rune.
func Distance(a, b string) int {
	return distance([]rune(strings.ToLower(a)), []rune(strings.ToLower(b)))
}

func distance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Single-row dynamic programming; keep the shorter string as the row.
	if len(a) > len(b) {
		a, b = b, a
	}

	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(b); j++ {
		prev := row[0]
		row[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			tmp := row[i]
			row[i] = min(row[i]+1, row[i-1]+1, prev+cost)
			prev = tmp
		}
	}

	return row[len(a)]
}

// Similarity returns a ratio in [0,1]: 1.0 for equal strings (ignoring
// case), approaching 0.0 for disjoint ones. Two empty strings are identical.
func Similarity(a, b string) float64 {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 1.0
	}

	return 1.0 - float64(distance(ra, rb))/float64(longest)
}

// BestMatch returns the candidate most similar to query, provided its
// similarity meets the threshold. The second return value is false when no
// candidate qualifies.
func BestMatch(query string, candidates []string, threshold float64) (string, bool) {
	best := ""
	bestRatio := 0.0

	for _, candidate := range candidates {
		ratio := Similarity(query, candidate)
		if ratio > bestRatio && ratio >= threshold {
			bestRatio = ratio
			best = candidate
		}
	}

	return best, best != ""
}

// Suggest returns up to three candidates likely intended by query. Prefix
// matches win outright, in candidate order; only when none exist does the
// fuzzy pass rank the remaining candidates by similarity.
func Suggest(query string, candidates []string) []string {
	var prefixed []string
	for _, candidate := range candidates {
		if hasPrefixFold(candidate, query) {
			prefixed = append(prefixed, candidate)
			if len(prefixed) == maxSuggestions {
				break
			}
		}
	}
	if len(prefixed) > 0 {
		return prefixed
	}

	type scored struct {
		name  string
		ratio float64
	}

	ranked := make([]scored, 0, len(candidates))
	for _, candidate := range candidates {
		ranked = append(ranked, scored{name: candidate, ratio: Similarity(query, candidate)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ratio > ranked[j].ratio
	})

	if len(ranked) > maxSuggestions {
		ranked = ranked[:maxSuggestions]
	}

	var result []string
	for _, s := range ranked {
		if s.ratio > suggestionFloor {
			result = append(result, s.name)
		}
	}
	return result
}

func hasPrefixFold(s, prefix string) bool {
	if prefix == "" {
		return false
	}
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}
