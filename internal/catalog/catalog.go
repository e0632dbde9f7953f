// Package catalog holds the Taekwondo glossary: a fixed, ordered set of
// categories, each an ordered list of terms.
//
// The catalog is built once and never modified afterwards, so a *Catalog may
// be shared by any number of goroutines without locking. Enumeration order is
// category declaration order, then term declaration order, and is identical on
// every call.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ppiankov/tkdgloss/internal/model"
)

// ErrNotFound is returned when a category lookup names no known category
var ErrNotFound = errors.New("not found")

// Category is a named, ordered collection of terms
type Category struct {
	Name  string
	terms []model.Term
}

// NewCategory creates a category holding a copy of terms
func NewCategory(name string, terms ...model.Term) Category {
	return Category{Name: name, terms: append([]model.Term(nil), terms...)}
}

// List returns every term of the category in declaration order.
// The returned slice is a copy.
func (c Category) List() []model.Term {
	return append([]model.Term(nil), c.terms...)
}

// Len returns the number of terms in the category
func (c Category) Len() int {
	return len(c.terms)
}

// Entries returns the category's terms flattened into entries
func (c Category) Entries() []model.Entry {
	entries := make([]model.Entry, 0, len(c.terms))
	for _, t := range c.terms {
		entries = append(entries, model.Entry{Category: c.Name, Term: t})
	}
	return entries
}

// Catalog is the set of all categories
type Catalog struct {
	categories []Category
	index      map[string]int
}

// New builds a catalog from categories in the given order. Category names are
// matched case-insensitively, so two names differing only in case collide.
func New(categories ...Category) (*Catalog, error) {
	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}
	for _, cat := range categories {
		key := strings.ToLower(cat.Name)
		if key == "" {
			return nil, fmt.Errorf("category name must not be empty")
		}
		if _, dup := c.index[key]; dup {
			return nil, fmt.Errorf("duplicate category %q", cat.Name)
		}
		c.index[key] = len(c.categories)
		c.categories = append(c.categories, NewCategory(cat.Name, cat.terms...))
	}
	return c, nil
}

var std = mustBuiltin()

func mustBuiltin() *Catalog {
	c, err := New(builtin...)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid builtin glossary: %v", err))
	}
	return c
}

// Default returns the built-in glossary
func Default() *Catalog {
	return std
}

// Names returns category names in declaration order
func (c *Catalog) Names() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// Categories returns every category in declaration order
func (c *Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

// Category looks a category up by name, ignoring case
func (c *Catalog) Category(name string) (Category, error) {
	i, ok := c.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Category{}, fmt.Errorf("category %q: %w", name, ErrNotFound)
	}
	return c.categories[i], nil
}

// All maps every category name to its terms
func (c *Catalog) All() map[string][]model.Term {
	all := make(map[string][]model.Term, len(c.categories))
	for _, cat := range c.categories {
		all[cat.Name] = cat.List()
	}
	return all
}

// Entries flattens the whole catalog in enumeration order
func (c *Catalog) Entries() []model.Entry {
	var entries []model.Entry
	for _, cat := range c.categories {
		entries = append(entries, cat.Entries()...)
	}
	return entries
}

// Each calls fn for every term in enumeration order until fn returns false
func (c *Catalog) Each(fn func(category string, term model.Term) bool) {
	for _, cat := range c.categories {
		for _, t := range cat.terms {
			if !fn(cat.Name, t) {
				return
			}
		}
	}
}

// Ambiguous maps each canonical spelling declared in more than one category
// to those categories, in declaration order. Spellings compare case-insensitively.
func (c *Catalog) Ambiguous() map[string][]string {
	seen := make(map[string][]string)
	c.Each(func(category string, t model.Term) bool {
		key := strings.ToLower(t.Canonical)
		seen[key] = appendUnique(seen[key], category)
		return true
	})

	ambiguous := make(map[string][]string)
	for key, categories := range seen {
		if len(categories) > 1 {
			ambiguous[key] = categories
		}
	}
	return ambiguous
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
