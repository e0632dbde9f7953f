// Package search filters flattened glossary entries by edit distance to a query.
package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ppiankov/tkdgloss/internal/model"
	"github.com/ppiankov/tkdgloss/internal/segment"
	"github.com/ppiankov/tkdgloss/internal/similarity"
)

// DefaultMaxDistance mirrors the segmenter default
const DefaultMaxDistance = segment.DefaultMaxDistance

// ErrInvalidMaxDistance is returned for a negative maximum distance
var ErrInvalidMaxDistance = segment.ErrInvalidMaxDistance

// Search returns the entries whose canonical spelling or label is within
// maxDistance edits of query, each annotated with the smaller of the two
// distances, closest first. Entries at equal distance keep their input order.
//
// An empty query returns entries unchanged: same order, no distances.
// The input slice is never modified.
func Search(entries []model.Entry, query string, maxDistance int) ([]model.Entry, error) {
	if maxDistance < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidMaxDistance, maxDistance)
	}
	if query == "" {
		return entries, nil
	}

	query = strings.ToLower(query)
	var results []model.Entry
	for _, e := range entries {
		canonical := similarity.Distance(query, e.Canonical)
		label := similarity.Distance(query, e.Label)
		if canonical > maxDistance && label > maxDistance {
			continue
		}
		results = append(results, e.WithDistance(min(canonical, label)))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return *results[i].Distance < *results[j].Distance
	})
	return results, nil
}
