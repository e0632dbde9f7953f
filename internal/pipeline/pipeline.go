package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ppiankov/tkdgloss/internal/belt"
	"github.com/ppiankov/tkdgloss/internal/cache"
	"github.com/ppiankov/tkdgloss/internal/catalog"
	"github.com/ppiankov/tkdgloss/internal/model"
	"github.com/ppiankov/tkdgloss/internal/score"
	"github.com/ppiankov/tkdgloss/internal/segment"
)

// Analyzer turns technique names into reports: segmentation, coverage
// scoring and report caching
type Analyzer struct {
	segmenter *segment.Segmenter
	scorer    *score.Scorer
	renderer  *Renderer
	cache     cache.Cache // nil when caching is disabled
	ambiguous map[string][]string
	config    *model.Config
	warn      io.Writer
	now       func() time.Time
}

// NewAnalyzer creates an analyzer over cat. c may be nil to disable caching.
func NewAnalyzer(cat *catalog.Catalog, cfg *model.Config, c cache.Cache) (*Analyzer, error) {
	seg, err := segment.New(cat, cfg.Matching.MaxDistance)
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		segmenter: seg,
		scorer:    score.NewScorer(),
		renderer:  NewRenderer(cfg.Output.IncludeFooter, cfg.Output.ShowDescriptions),
		cache:     c,
		ambiguous: cat.Ambiguous(),
		config:    cfg,
		warn:      os.Stderr,
		now:       time.Now,
	}, nil
}

// Renderer returns the renderer configured for this analyzer
func (a *Analyzer) Renderer() *Renderer {
	return a.renderer
}

// Analyze segments and scores one technique name. Cache failures are
// reported as warnings and never fail the analysis.
func (a *Analyzer) Analyze(ctx context.Context, phrase string) (*model.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := cache.Key(phrase, a.segmenter.MaxDistance())
	if report, ok := a.cached(key); ok {
		report.Phrase = phrase
		return report, nil
	}

	seg := a.segmenter.Segment(phrase)
	report := &model.Report{
		Phrase:      phrase,
		Tokens:      seg.Tokens,
		MaxDistance: a.segmenter.MaxDistance(),
		AnalyzedAt:  a.now().UTC(),
		Matches:     seg.Matches,
		Skipped:     seg.SkippedTokens(),
		Coverage:    a.scorer.Calculate(seg, a.ambiguous),
	}
	if report.Tokens == nil {
		report.Tokens = []string{}
	}
	if report.Matches == nil {
		report.Matches = []model.Match{}
	}

	a.store(key, report)
	return report, nil
}

func (a *Analyzer) cached(key string) (*model.Report, bool) {
	if a.cache == nil {
		return nil, false
	}
	data, ok := a.cache.Get(key)
	if !ok {
		return nil, false
	}
	var report model.Report
	if err := json.Unmarshal(data, &report); err != nil {
		_ = a.cache.Delete(key)
		return nil, false
	}
	return &report, true
}

func (a *Analyzer) store(key string, report *model.Report) {
	if a.cache == nil {
		return
	}
	data, err := json.Marshal(report)
	if err != nil {
		fmt.Fprintf(a.warn, "Warning: encode report for cache: %v\n", err)
		return
	}
	if err := a.cache.Set(key, data, 0); err != nil {
		fmt.Fprintf(a.warn, "Warning: cache write failed: %v\n", err)
	}
}

// BeltReport is the analysis of every technique of one belt
type BeltReport struct {
	Belt belt.Belt       `json:"belt"`
	Hand []*model.Report `json:"hand_techniques"`
	Kick []*model.Report `json:"kick_techniques"`
}

// Reports returns hand reports followed by kick reports
func (r *BeltReport) Reports() []*model.Report {
	all := make([]*model.Report, 0, len(r.Hand)+len(r.Kick))
	all = append(all, r.Hand...)
	return append(all, r.Kick...)
}

// AnalyzeBelt analyzes every technique of b in curriculum order
func (a *Analyzer) AnalyzeBelt(ctx context.Context, b belt.Belt) (*BeltReport, error) {
	br := &BeltReport{Belt: b}

	for _, t := range b.HandTechniques {
		r, err := a.Analyze(ctx, t)
		if err != nil {
			return nil, fmt.Errorf("%s: %q: %w", b.Color, t, err)
		}
		br.Hand = append(br.Hand, r)
	}
	for _, t := range b.KickTechniques {
		r, err := a.Analyze(ctx, t)
		if err != nil {
			return nil, fmt.Errorf("%s: %q: %w", b.Color, t, err)
		}
		br.Kick = append(br.Kick, r)
	}

	return br, nil
}

// RenderReport writes the report to the requested files and prints the
// summary to w
func (a *Analyzer) RenderReport(w io.Writer, report *model.Report, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := a.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(a.warn, "✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := a.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(a.warn, "✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	a.renderer.RenderSummary(w, report)
	return nil
}
