// Package similarity computes the edit distance used for fuzzy term matching.
package similarity

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// Distance returns the Levenshtein distance between a and b, ignoring case.
// Insertions, deletions and substitutions each cost 1 and are counted per
// rune. The result is symmetric and has no upper bound; callers apply their
// own threshold.
func Distance(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 0
	}
	return edlib.LevenshteinDistance(a, b)
}
