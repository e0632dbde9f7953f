package validate

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ppiankov/tkdgloss/internal/belt"
	"github.com/ppiankov/tkdgloss/internal/catalog"
	"github.com/ppiankov/tkdgloss/internal/model"
	"github.com/ppiankov/tkdgloss/internal/segment"
)

// Linter checks belt curricula against the glossary
type Linter struct {
	segmenter  *segment.Segmenter
	ambiguous  map[string][]string
	maxWorkers int
}

// NewLinter creates a linter. maxDistance is the fuzzy threshold used when
// segmenting techniques.
func NewLinter(cat *catalog.Catalog, maxDistance, maxWorkers int) (*Linter, error) {
	if maxWorkers <= 0 {
		maxWorkers = 4
	}

	seg, err := segment.New(cat, maxDistance)
	if err != nil {
		return nil, err
	}

	return &Linter{
		segmenter:  seg,
		ambiguous:  cat.Ambiguous(),
		maxWorkers: maxWorkers,
	}, nil
}

// technique identifies one technique of one belt
type technique struct {
	belt  int
	index int
	name  string
}

// Lint segments every technique of every belt concurrently. Issues come back
// in belt order, then technique order, followed by catalog-wide issues.
func (l *Linter) Lint(ctx context.Context, belts []belt.Belt) ([]model.LintIssue, error) {
	perBelt := make([][][]model.LintIssue, len(belts))
	var work []technique
	for bi, b := range belts {
		names := b.Techniques()
		perBelt[bi] = make([][]model.LintIssue, len(names))
		for ti, name := range names {
			work = append(work, technique{belt: bi, index: ti, name: name})
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.maxWorkers)

	for _, w := range work {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Each goroutine owns its slot
			perBelt[w.belt][w.index] = l.lintTechnique(belts[w.belt].Color, w.name)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("lint: %w", err)
	}

	issues := []model.LintIssue{}
	for _, techniques := range perBelt {
		for _, found := range techniques {
			issues = append(issues, found...)
		}
	}
	return append(issues, l.catalogIssues()...), nil
}

// lintTechnique reports tokens the glossary does not explain exactly
func (l *Linter) lintTechnique(color, name string) []model.LintIssue {
	seg := l.segmenter.Segment(name)

	var issues []model.LintIssue
	for _, tok := range seg.SkippedTokens() {
		issues = append(issues, model.LintIssue{
			Kind:      model.IssueUnrecognized,
			Belt:      color,
			Technique: name,
			Token:     tok,
			Detail:    fmt.Sprintf("no term within edit distance %d", l.segmenter.MaxDistance()),
		})
	}
	for _, m := range seg.Matches {
		if m.Composite() || m.Exact() {
			continue
		}
		issues = append(issues, model.LintIssue{
			Kind:      model.IssueFuzzy,
			Belt:      color,
			Technique: name,
			Token:     m.Text,
			Detail:    fmt.Sprintf("read as %s (%s), distance %d", m.Term.Canonical, m.Category, m.Distance),
		})
	}
	return issues
}

// catalogIssues lists spellings declared in more than one category
func (l *Linter) catalogIssues() []model.LintIssue {
	keys := make([]string, 0, len(l.ambiguous))
	for k := range l.ambiguous {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	issues := make([]model.LintIssue, 0, len(keys))
	for _, k := range keys {
		categories := l.ambiguous[k]
		issues = append(issues, model.LintIssue{
			Kind:   model.IssueAmbiguous,
			Token:  k,
			Detail: fmt.Sprintf("declared in %s; matches are attributed to %s", strings.Join(categories, ", "), categories[0]),
		})
	}
	return issues
}

// Count tallies issues by kind
func Count(issues []model.LintIssue) map[model.IssueKind]int {
	counts := make(map[model.IssueKind]int)
	for _, issue := range issues {
		counts[issue.Kind]++
	}
	return counts
}
