// Package segment splits a free-text technique name into known glossary terms.
//
// A phrase is lower-cased, hyphens are read as spaces and the result is split
// on whitespace. The segmenter then walks the tokens left to right:
//
//  1. If three tokens remain, they are joined with single spaces and compared
//     exactly against every canonical spelling (hyphens removed).
//  2. Otherwise, or if that failed, the same is tried with two tokens.
//  3. Failing both, the current token alone is compared to every canonical
//     spelling (hyphens read as spaces) by edit distance. The closest term
//     within the configured maximum wins; ties go to the first term in
//     enumeration order. Tokens with no such term are skipped.
//
// Consumed tokens are never revisited. Multi-token matches always have
// distance 0.
//
// A Segmenter holds only an immutable snapshot of the catalog, so one value
// may serve concurrent callers.
package segment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ppiankov/tkdgloss/internal/model"
	"github.com/ppiankov/tkdgloss/internal/similarity"
)

// DefaultMaxDistance is the single-token edit distance tolerated by default
const DefaultMaxDistance = 2

// maxWindow is the longest composite term the segmenter looks for
const maxWindow = 3

// ErrInvalidMaxDistance is returned for a negative maximum distance
var ErrInvalidMaxDistance = errors.New("max distance must be >= 0")

// Provider enumerates catalog terms in a deterministic order.
// *catalog.Catalog satisfies it.
type Provider interface {
	Each(fn func(category string, term model.Term) bool)
}

// entry is a catalog term with its comparison forms precomputed
type entry struct {
	category string
	term     model.Term
	spaced   string // lower-cased, hyphens as spaces; single-token fuzzy form
}

// Segmenter matches phrases against a catalog snapshot
type Segmenter struct {
	entries     []entry
	composite   map[string]int // compact canonical form -> first entry index
	maxDistance int
}

// New snapshots the provider's terms. maxDistance bounds single-token fuzzy
// matches; 0 restricts them to exact spellings.
func New(p Provider, maxDistance int) (*Segmenter, error) {
	if maxDistance < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidMaxDistance, maxDistance)
	}
	if p == nil {
		return nil, fmt.Errorf("segment: nil catalog")
	}

	s := &Segmenter{
		composite:   make(map[string]int),
		maxDistance: maxDistance,
	}
	p.Each(func(category string, term model.Term) bool {
		lower := strings.ToLower(term.Canonical)
		compact := strings.ReplaceAll(lower, "-", "")
		// First declaration wins, matching a linear scan in enumeration order
		if _, ok := s.composite[compact]; !ok {
			s.composite[compact] = len(s.entries)
		}
		s.entries = append(s.entries, entry{
			category: category,
			term:     term,
			spaced:   strings.ReplaceAll(lower, "-", " "),
		})
		return true
	})
	return s, nil
}

// MaxDistance returns the single-token threshold
func (s *Segmenter) MaxDistance() int {
	return s.maxDistance
}

// Segment splits phrase into matches. An empty phrase yields an empty
// segmentation.
func (s *Segmenter) Segment(phrase string) Segmentation {
	tokens := Tokenize(phrase)
	seg := Segmentation{
		Phrase: phrase,
		Tokens: tokens,
	}

	for i := 0; i < len(tokens); {
		if m, ok := s.matchWindow(tokens, i); ok {
			seg.Matches = append(seg.Matches, m)
			i += m.Span
			continue
		}

		if m, ok := s.closest(tokens[i]); ok {
			m.Start = i
			seg.Matches = append(seg.Matches, m)
		} else {
			seg.Skipped = append(seg.Skipped, i)
		}
		i++
	}

	return seg
}

// matchWindow tries the widest composite window first
func (s *Segmenter) matchWindow(tokens []string, i int) (model.Match, bool) {
	for n := maxWindow; n >= 2; n-- {
		if i+n > len(tokens) {
			continue
		}
		text := strings.Join(tokens[i:i+n], " ")
		idx, ok := s.composite[text]
		if !ok {
			continue
		}
		e := s.entries[idx]
		return model.Match{
			Category: e.category,
			Term:     e.term,
			Distance: 0,
			Start:    i,
			Span:     n,
			Text:     text,
		}, true
	}
	return model.Match{}, false
}

// closest finds the nearest term within maxDistance of token
func (s *Segmenter) closest(token string) (model.Match, bool) {
	best := -1
	bestDist := 0
	for i, e := range s.entries {
		d := similarity.Distance(e.spaced, token)
		if d > s.maxDistance {
			continue
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
			if d == 0 {
				break // nothing later can be strictly closer
			}
		}
	}
	if best < 0 {
		return model.Match{}, false
	}

	e := s.entries[best]
	return model.Match{
		Category: e.category,
		Term:     e.term,
		Distance: bestDist,
		Span:     1,
		Text:     token,
	}, true
}

// Tokenize lower-cases phrase, reads hyphens as spaces and splits on
// whitespace
func Tokenize(phrase string) []string {
	phrase = strings.ToLower(phrase)
	phrase = strings.ReplaceAll(phrase, "-", " ")
	return strings.Fields(phrase)
}

// Segment is a convenience wrapper building a one-off Segmenter
func Segment(p Provider, phrase string, maxDistance int) (Segmentation, error) {
	s, err := New(p, maxDistance)
	if err != nil {
		return Segmentation{}, err
	}
	return s.Segment(phrase), nil
}
