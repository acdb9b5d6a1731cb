package core

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// FilterResult is the visible subset produced by a search query. An empty
// result is a distinct state the render layer presents explicitly, never
// a silently empty list; Suggestion carries a "did you mean" label when
// one is close enough to the query.
type FilterResult struct {
	Options    OptionSet
	Query      string
	Suggestion string
}

func (r FilterResult) Empty() bool {
	return len(r.Options) == 0
}

// FilterOptions reduces options to those whose label contains query,
// case-insensitively. The empty query returns the full list unmodified
// and relative order is always preserved. No scoring, no ranking.
func FilterOptions(options []Option, query string) FilterResult {
	set := OptionSet(options)
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return FilterResult{Options: set.Clone(), Query: query}
	}
	out := make(OptionSet, 0, len(set))
	for _, o := range set {
		if strings.Contains(strings.ToLower(o.Label), q) {
			out = append(out, o)
		}
	}
	res := FilterResult{Options: out, Query: query}
	if len(out) == 0 {
		res.Suggestion = suggestClosest(set, q)
	}
	return res
}

// suggestClosest finds the label nearest to the query by edit distance.
// Distances beyond half the label length read as unrelated typing rather
// than a typo, so no suggestion is offered.
func suggestClosest(options OptionSet, query string) string {
	best := ""
	bestDist := -1
	for _, o := range options {
		label := strings.ToLower(o.Label)
		d := levenshtein.ComputeDistance(label, query)
		limit := len(label)/2 + 1
		if d > limit {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best = o.Label
			bestDist = d
		}
	}
	return best
}
