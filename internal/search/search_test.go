package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/tkdgloss/internal/catalog"
	"github.com/ppiankov/tkdgloss/internal/model"
)

func TestSearch_EmptyQueryReturnsInput(t *testing.T) {
	entries := catalog.Default().Entries()

	got, err := Search(entries, "", DefaultMaxDistance)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
	for _, e := range got {
		assert.Nil(t, e.Distance)
	}
}

func TestSearch_MatchesCanonicalOrLabel(t *testing.T) {
	entries := catalog.Default().Entries()

	got, err := Search(entries, "soco", DefaultMaxDistance)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Jireugi", got[0].Canonical)
	assert.Equal(t, 0, *got[0].Distance)
	// Equal distances keep catalog order
	assert.Equal(t, "Goro", got[1].Canonical)
	assert.Equal(t, "Sewo", got[2].Canonical)
	assert.Equal(t, 2, *got[1].Distance)
	assert.Equal(t, 2, *got[2].Distance)
}

func TestSearch_SortedByDistance(t *testing.T) {
	got, err := Search(catalog.Default().Entries(), "Chagi", DefaultMaxDistance)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Chagi", got[0].Canonical)
	assert.Equal(t, "Chigi", got[1].Canonical)
	assert.Equal(t, 1, *got[1].Distance)
}

func TestSearch_StableForEqualDistances(t *testing.T) {
	entries := []model.Entry{
		{Category: "A", Term: model.Term{Canonical: "abc", Label: "x"}},
		{Category: "B", Term: model.Term{Canonical: "abd", Label: "y"}},
		{Category: "C", Term: model.Term{Canonical: "abc", Label: "z"}},
		{Category: "D", Term: model.Term{Canonical: "abe", Label: "w"}},
	}

	got, err := Search(entries, "abc", 1)
	require.NoError(t, err)
	require.Len(t, got, 4)

	var order []string
	for _, e := range got {
		order = append(order, e.Category)
	}
	assert.Equal(t, []string{"A", "C", "B", "D"}, order)
}

func TestSearch_DoesNotModifyInput(t *testing.T) {
	entries := catalog.Default().Entries()
	_, err := Search(entries, "makgi", DefaultMaxDistance)
	require.NoError(t, err)
	for _, e := range entries {
		assert.Nil(t, e.Distance)
	}
}

func TestSearch_NeverExceedsMaxDistance(t *testing.T) {
	entries := catalog.Default().Entries()
	for _, query := range []string{"chagi", "base", "frente", "dwit", "sonal"} {
		for max := 0; max <= 4; max++ {
			got, err := Search(entries, query, max)
			require.NoError(t, err)
			for _, e := range got {
				assert.LessOrEqual(t, *e.Distance, max, "%q at %d", query, max)
			}
		}
	}
}

func TestSearch_MonotonicInMaxDistance(t *testing.T) {
	entries := catalog.Default().Entries()
	key := func(e model.Entry) string { return e.Category + "/" + e.Canonical }

	for _, query := range []string{"chagi", "soco", "momtong", "ap"} {
		var previous map[string]bool
		for max := 0; max <= 4; max++ {
			got, err := Search(entries, query, max)
			require.NoError(t, err)

			current := make(map[string]bool, len(got))
			for _, e := range got {
				current[key(e)] = true
			}
			for k := range previous {
				assert.True(t, current[k], "%q lost %s when widening to %d", query, k, max)
			}
			previous = current
		}
	}
}

func TestSearch_NoHits(t *testing.T) {
	got, err := Search(catalog.Default().Entries(), "zzzzzzzz", DefaultMaxDistance)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearch_RejectsNegativeDistance(t *testing.T) {
	_, err := Search(catalog.Default().Entries(), "chagi", -1)
	assert.True(t, errors.Is(err, ErrInvalidMaxDistance))
}
