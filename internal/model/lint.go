package model

// IssueKind classifies a lint finding
type IssueKind string

const (
	IssueUnrecognized IssueKind = "unrecognized" // Token no catalog term explains
	IssueFuzzy        IssueKind = "fuzzy"        // Token matched only within edit distance
	IssueAmbiguous    IssueKind = "ambiguous"    // Canonical spelling declared in several categories
)

// LintIssue is one finding about a belt technique or a catalog term
type LintIssue struct {
	Kind      IssueKind `json:"kind"`
	Belt      string    `json:"belt,omitempty"`      // Belt color, empty for catalog issues
	Technique string    `json:"technique,omitempty"` // Technique name as written in the belt file
	Token     string    `json:"token,omitempty"`     // Offending token or canonical spelling
	Detail    string    `json:"detail"`
}
