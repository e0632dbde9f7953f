package model

// Term is one glossary record: the Korean canonical spelling, its translated
// label and a free-text description.
type Term struct {
	Canonical   string `json:"canonical" yaml:"canonical"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

func (t Term) String() string {
	return t.Canonical + " (" + t.Label + ")"
}

// Entry is a term flattened out of the catalog, remembering its category.
// Distance is only set on entries returned by a search.
type Entry struct {
	Category string `json:"category"`
	Term
	Distance *int `json:"distance,omitempty"`
}

// WithDistance returns a copy of the entry annotated with d
func (e Entry) WithDistance(d int) Entry {
	e.Distance = &d
	return e
}
