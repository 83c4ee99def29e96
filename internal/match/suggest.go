package match

import (
	"slices"
	"strings"
)

// DefaultThreshold is the minimum similarity for a suggestion.
const DefaultThreshold = 0.6

// Candidate is a known name and its similarity to the query.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every name against query, best first. Ties keep name order.
func Rank(query string, names []string) []Candidate {
	out := make([]Candidate, 0, len(names))
	for _, n := range names {
		out = append(out, Candidate{Name: n, Score: Similarity(query, n)})
	}

	slices.SortStableFunc(out, func(a, b Candidate) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return strings.Compare(a.Name, b.Name)
		}
	})

	return out
}

// Suggest returns the closest name if it scores at least threshold.
func Suggest(query string, names []string, threshold float64) (string, bool) {
	ranked := Rank(query, names)
	if len(ranked) == 0 || ranked[0].Score < threshold {
		return "", false
	}

	return ranked[0].Name, true
}

// Hint formats a " (did you mean X?)" suffix, or "" without a close match.
func Hint(query string, names []string) string {
	s, ok := Suggest(query, names, DefaultThreshold)
	if !ok {
		return ""
	}

	return " (did you mean " + s + "?)"
}
