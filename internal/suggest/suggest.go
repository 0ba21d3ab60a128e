// Package suggest proposes close alternatives for misspelled dataset or
// column names in lookup errors.
package suggest

import (
	"sort"
	"strings"
)

// maxDistance is the largest edit distance still considered a near miss.
const maxDistance = 3

// Closest returns candidates within maxDistance edits of name, ordered from
// best to worst match. Comparison is case-insensitive.
func Closest(name string, candidates []string) []string {
	type scored struct {
		name string
		dist int
	}

	var near []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		d := Levenshtein(strings.ToLower(name), strings.ToLower(c))
		if d <= maxDistance {
			near = append(near, scored{name: c, dist: d})
		}
	}

	sort.SliceStable(near, func(i, j int) bool { return near[i].dist < near[j].dist })

	out := make([]string, 0, len(near))
	for _, s := range near {
		out = append(out, s.name)
	}

	return out
}

// Levenshtein computes the Levenshtein distance (edit distance) between two strings.
// The distance is the minimum number of single-character edits (insertions, deletions,
// or substitutions) required to transform one string into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Ensure a is the shorter string for space optimization
	if len(a) > len(b) {
		a, b = b, a
	}

	// Use two rows instead of full matrix for space optimization
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	// Initialize first row
	for i := range prev {
		prev[i] = i
	}

	// Fill in the rest of the matrix
	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min3(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}

		return c
	}

	if b < c {
		return b
	}

	return c
}
