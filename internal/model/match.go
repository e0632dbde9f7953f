package model

// Match is one recognized term occurrence inside a phrase
type Match struct {
	Category string `json:"category"`       // Category the term was declared in
	Term     Term   `json:"term"`           // Snapshot of the matched record
	Distance int    `json:"distance"`       // 0 for exact and composite matches
	Start    int    `json:"start"`          // Index of the first consumed token
	Span     int    `json:"span"`           // Number of consumed tokens (1, 2 or 3)
	Text     string `json:"text,omitempty"` // Phrase text that produced the match
}

// Composite reports whether the match consumed more than one token
func (m Match) Composite() bool {
	return m.Span > 1
}

// Exact reports whether the match required no edits
func (m Match) Exact() bool {
	return m.Distance == 0
}
