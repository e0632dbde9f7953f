package model

import "time"

// Report is the complete analysis of one technique name
type Report struct {
	Phrase      string    `json:"phrase"`            // Raw technique name as given
	Tokens      []string  `json:"tokens"`            // Normalized phrase tokens
	MaxDistance int       `json:"max_distance"`      // Fuzzy threshold used for single tokens
	AnalyzedAt  time.Time `json:"analyzed_at"`       // When the analysis ran
	Matches     []Match   `json:"matches"`           // Recognized terms in phrase order
	Skipped     []string  `json:"skipped,omitempty"` // Tokens without a qualifying match
	Coverage    Coverage  `json:"coverage"`          // Recognition breakdown
}

// Grouped returns the report's matches grouped by category
func (r *Report) Grouped() ([]string, map[string][]Match) {
	return GroupByCategory(r.Matches)
}

// Coverage is the transparent recognition breakdown of a report
type Coverage struct {
	Tokens     int      `json:"tokens"`     // Number of phrase tokens
	Recognized int      `json:"recognized"` // Tokens consumed by a match
	Ratio      float64  `json:"ratio"`      // Recognized / Tokens (0 for an empty phrase)
	Exact      int      `json:"exact"`      // Single-token matches at distance 0
	Fuzzy      int      `json:"fuzzy"`      // Single-token matches at distance > 0
	Composite  int      `json:"composite"`  // Multi-token matches
	Confidence string   `json:"confidence"` // "low", "medium", "high"
	Signals    []Signal `json:"signals"`    // Diagnostic signals with transparent data
}

// Signal represents a diagnostic signal with transparent scoring data
type Signal struct {
	Type        SignalType             `json:"type"`
	Severity    SignalSeverity         `json:"severity"`
	Description string                 `json:"description"`
	Data        map[string]interface{} `json:"data,omitempty"`
}

// SignalType classifies the type of diagnostic signal
type SignalType string

const (
	SignalUnrecognized SignalType = "unrecognized_tokens" // Tokens no catalog term explains
	SignalFuzzy        SignalType = "fuzzy_match"         // Tokens matched only within edit distance
	SignalComposite    SignalType = "composite_match"     // Multi-word terms matched exactly
	SignalAmbiguous    SignalType = "ambiguous_category"  // Matched spelling declared in several categories
)

// SignalSeverity indicates the importance of the signal
type SignalSeverity string

const (
	SeverityInfo     SignalSeverity = "info"
	SeverityWarning  SignalSeverity = "warning"
	SeverityCritical SignalSeverity = "critical"
)

// GroupByCategory groups matches by category. Categories are listed in the
// order they were first discovered and each group keeps phrase order.
func GroupByCategory(matches []Match) ([]string, map[string][]Match) {
	var order []string
	groups := make(map[string][]Match)
	for _, m := range matches {
		if _, ok := groups[m.Category]; !ok {
			order = append(order, m.Category)
		}
		groups[m.Category] = append(groups[m.Category], m)
	}
	return order, groups
}
