package segment

import "github.com/ppiankov/tkdgloss/internal/model"

// Segmentation is the outcome of segmenting one phrase
type Segmentation struct {
	Phrase  string        // Raw input
	Tokens  []string      // Normalized tokens the cursor walked over
	Matches []model.Match // Recognized terms in phrase order
	Skipped []int         // Indices of tokens that matched nothing
}

// Empty reports whether nothing was recognized
func (s Segmentation) Empty() bool {
	return len(s.Matches) == 0
}

// ByCategory groups matches by category, each group in discovery order
func (s Segmentation) ByCategory() map[string][]model.Match {
	_, groups := model.GroupByCategory(s.Matches)
	return groups
}

// Categories lists matched categories in the order they were first found
func (s Segmentation) Categories() []string {
	order, _ := model.GroupByCategory(s.Matches)
	return order
}

// All flattens the category grouping back into one list: every match of the
// first discovered category, then the next, and so on.
func (s Segmentation) All() []model.Match {
	order, groups := model.GroupByCategory(s.Matches)
	all := make([]model.Match, 0, len(s.Matches))
	for _, category := range order {
		all = append(all, groups[category]...)
	}
	return all
}

// SkippedTokens returns the text of every unmatched token
func (s Segmentation) SkippedTokens() []string {
	out := make([]string, 0, len(s.Skipped))
	for _, i := range s.Skipped {
		out = append(out, s.Tokens[i])
	}
	return out
}

// Recognized counts the tokens consumed by matches
func (s Segmentation) Recognized() int {
	n := 0
	for _, m := range s.Matches {
		n += m.Span
	}
	return n
}
