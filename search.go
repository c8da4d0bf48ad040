package main

import (
	"sort"
	"strings"
)

// matchClass orders how well a signal name matches a query. Contiguous
// substring matches always rank above scattered subsequence matches.
type matchClass int

const (
	matchNone matchClass = iota
	matchSubsequence
	matchSubstring
)

// classify reports how a query matches a signal name, case-insensitively.
func classify(query, name string) matchClass {
	if query == "" {
		return matchSubstring
	}
	q := strings.ToLower(query)
	n := strings.ToLower(name)
	if strings.Contains(n, q) {
		return matchSubstring
	}
	if isSubsequence(q, n) {
		return matchSubsequence
	}
	return matchNone
}

func isSubsequence(q, n string) bool {
	qi := 0
	for i := 0; i < len(n) && qi < len(q); i++ {
		if n[i] == q[qi] {
			qi++
		}
	}
	return qi == len(q)
}

// rankSignals filters and orders the catalog against a query: substring
// matches before subsequence matches, shorter names before longer ones
// within a class, catalog order breaking remaining ties. Names the query
// does not even match as a subsequence are excluded. An empty query
// returns the whole catalog unchanged.
func rankSignals(query string, catalog []string) []string {
	if query == "" {
		out := make([]string, len(catalog))
		copy(out, catalog)
		return out
	}

	type ranked struct {
		name  string
		class matchClass
	}
	var matches []ranked
	for _, name := range catalog {
		if c := classify(query, name); c != matchNone {
			matches = append(matches, ranked{name: name, class: c})
		}
	}

	// The stable sort keeps catalog order for names that compare equal.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].class != matches[j].class {
			return matches[i].class > matches[j].class
		}
		return len(matches[i].name) < len(matches[j].name)
	})

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.name
	}
	return out
}
