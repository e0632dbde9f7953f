package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/tkdgloss/internal/model"
)

func TestDefault_CategoryOrder(t *testing.T) {
	assert.Equal(t, []string{
		Stances, Actions, Directions, BodyParts, HandParts,
		FootParts, BlockingTechniques, KickTypes, MovementTypes, DirectionModifiers,
	}, Default().Names())
}

func TestCategory_LookupIgnoresCase(t *testing.T) {
	cat, err := Default().Category("actions")
	require.NoError(t, err)
	assert.Equal(t, Actions, cat.Name)

	terms := cat.List()
	require.NotEmpty(t, terms)
	assert.Equal(t, "Chagi", terms[0].Canonical)
	assert.Equal(t, "Chute", terms[0].Label)
}

func TestCategory_NotFoundNamesKey(t *testing.T) {
	_, err := Default().Category("Kicks")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), `"Kicks"`)
}

func TestCategory_ListIsACopy(t *testing.T) {
	cat, err := Default().Category(Directions)
	require.NoError(t, err)

	terms := cat.List()
	terms[0].Canonical = "changed"

	again := cat.List()
	assert.Equal(t, "Ollyeo", again[0].Canonical)
}

func TestEach_EnumerationOrderIsStable(t *testing.T) {
	collect := func() []string {
		var out []string
		Default().Each(func(category string, term model.Term) bool {
			out = append(out, category+"/"+term.Canonical)
			return true
		})
		return out
	}

	first := collect()
	assert.Equal(t, first, collect())
	assert.Equal(t, "Stances/Apgubi", first[0])
	assert.Equal(t, len(Default().Entries()), len(first))
}

func TestEach_StopsEarly(t *testing.T) {
	calls := 0
	Default().Each(func(string, model.Term) bool {
		calls++
		return calls < 3
	})
	assert.Equal(t, 3, calls)
}

func TestAll_MatchesCategories(t *testing.T) {
	all := Default().All()
	for _, cat := range Default().Categories() {
		assert.Len(t, all[cat.Name], cat.Len(), cat.Name)
	}
}

func TestEntries_CarryCategory(t *testing.T) {
	entries := Default().Entries()
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.NotEmpty(t, e.Category)
		assert.NotEmpty(t, e.Canonical)
		assert.Nil(t, e.Distance)
	}
}

func TestAmbiguous_ReportsSharedSpellings(t *testing.T) {
	ambiguous := Default().Ambiguous()
	assert.Equal(t, []string{BodyParts, HandParts}, ambiguous["sonnal"])
	assert.Equal(t, []string{KickTypes, MovementTypes}, ambiguous["balbucheo"])
	assert.NotContains(t, ambiguous, "chagi")
}

func TestNew_RejectsDuplicateNames(t *testing.T) {
	_, err := New(NewCategory("Kicks"), NewCategory("kicks"))
	assert.Error(t, err)

	_, err = New(NewCategory(""))
	assert.Error(t, err)
}

func TestTerm_String(t *testing.T) {
	term := model.Term{Canonical: "Makgi", Label: "Bloqueio"}
	assert.Equal(t, "Makgi (Bloqueio)", term.String())
}
