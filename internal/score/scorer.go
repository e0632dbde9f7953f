package score

import (
	"fmt"
	"strings"

	"github.com/ppiankov/tkdgloss/internal/model"
	"github.com/ppiankov/tkdgloss/internal/segment"
)

// Confidence levels
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Scorer measures how much of a phrase the catalog explains and emits
// diagnostic signals
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Calculate builds the coverage breakdown of a segmentation. ambiguous maps
// lower-cased canonical spellings to the categories declaring them, as
// returned by catalog.Ambiguous; it may be nil.
func (s *Scorer) Calculate(seg segment.Segmentation, ambiguous map[string][]string) model.Coverage {
	cov := model.Coverage{
		Tokens:     len(seg.Tokens),
		Recognized: seg.Recognized(),
		Signals:    []model.Signal{},
	}
	if cov.Tokens > 0 {
		cov.Ratio = float64(cov.Recognized) / float64(cov.Tokens)
	}

	for _, m := range seg.Matches {
		switch {
		case m.Composite():
			cov.Composite++
		case m.Exact():
			cov.Exact++
		default:
			cov.Fuzzy++
		}
	}

	// 1. Unrecognized tokens
	if sig, ok := s.unrecognized(seg); ok {
		cov.Signals = append(cov.Signals, sig)
	}

	// 2. Fuzzy single-token matches
	if sig, ok := s.fuzzy(seg.Matches); ok {
		cov.Signals = append(cov.Signals, sig)
	}

	// 3. Composite terms
	if sig, ok := s.composite(seg.Matches); ok {
		cov.Signals = append(cov.Signals, sig)
	}

	// 4. Spellings attributed to one of several categories
	if sig, ok := s.ambiguous(seg.Matches, ambiguous); ok {
		cov.Signals = append(cov.Signals, sig)
	}

	cov.Confidence = s.determineConfidence(cov)
	return cov
}

// unrecognized reports tokens no term explains. Critical when nothing at all
// was recognized.
func (s *Scorer) unrecognized(seg segment.Segmentation) (model.Signal, bool) {
	if len(seg.Skipped) == 0 {
		return model.Signal{}, false
	}

	tokens := seg.SkippedTokens()
	severity := model.SeverityWarning
	if seg.Empty() {
		severity = model.SeverityCritical
	}

	return model.Signal{
		Type:        model.SignalUnrecognized,
		Severity:    severity,
		Description: fmt.Sprintf("%d of %d tokens unrecognized: %s", len(tokens), len(seg.Tokens), strings.Join(tokens, ", ")),
		Data: map[string]interface{}{
			"tokens":    tokens,
			"positions": seg.Skipped,
			"total":     len(seg.Tokens),
		},
	}, true
}

// fuzzy lists tokens matched at a non-zero distance
func (s *Scorer) fuzzy(matches []model.Match) (model.Signal, bool) {
	var pairs []map[string]interface{}
	maxDist := 0
	for _, m := range matches {
		if m.Composite() || m.Exact() {
			continue
		}
		pairs = append(pairs, map[string]interface{}{
			"token":     m.Text,
			"canonical": m.Term.Canonical,
			"distance":  m.Distance,
		})
		if m.Distance > maxDist {
			maxDist = m.Distance
		}
	}
	if len(pairs) == 0 {
		return model.Signal{}, false
	}

	return model.Signal{
		Type:        model.SignalFuzzy,
		Severity:    model.SeverityInfo,
		Description: fmt.Sprintf("%d token(s) matched within edit distance (max %d)", len(pairs), maxDist),
		Data: map[string]interface{}{
			"matches":      pairs,
			"max_distance": maxDist,
		},
	}, true
}

// composite lists multi-word terms recognized in one piece
func (s *Scorer) composite(matches []model.Match) (model.Signal, bool) {
	var terms []string
	for _, m := range matches {
		if m.Composite() {
			terms = append(terms, m.Term.Canonical)
		}
	}
	if len(terms) == 0 {
		return model.Signal{}, false
	}

	return model.Signal{
		Type:        model.SignalComposite,
		Severity:    model.SeverityInfo,
		Description: fmt.Sprintf("Composite terms: %s", strings.Join(terms, ", ")),
		Data: map[string]interface{}{
			"terms": terms,
		},
	}, true
}

// ambiguous flags matches whose spelling several categories declare; the
// match carries the first category only
func (s *Scorer) ambiguous(matches []model.Match, ambiguous map[string][]string) (model.Signal, bool) {
	if len(ambiguous) == 0 {
		return model.Signal{}, false
	}

	terms := make(map[string][]string)
	var order []string
	for _, m := range matches {
		key := strings.ToLower(m.Term.Canonical)
		categories, ok := ambiguous[key]
		if !ok {
			continue
		}
		if _, seen := terms[m.Term.Canonical]; !seen {
			order = append(order, m.Term.Canonical)
		}
		terms[m.Term.Canonical] = categories
	}
	if len(order) == 0 {
		return model.Signal{}, false
	}

	return model.Signal{
		Type:        model.SignalAmbiguous,
		Severity:    model.SeverityWarning,
		Description: fmt.Sprintf("Spelling shared by several categories: %s", strings.Join(order, ", ")),
		Data: map[string]interface{}{
			"terms": terms,
		},
	}, true
}

// determineConfidence: high when every token is recognized without fuzziness,
// medium when every token is recognized, low otherwise
func (s *Scorer) determineConfidence(cov model.Coverage) string {
	if cov.Tokens == 0 || cov.Recognized < cov.Tokens {
		return ConfidenceLow
	}
	if cov.Fuzzy > 0 {
		return ConfidenceMedium
	}
	return ConfidenceHigh
}
