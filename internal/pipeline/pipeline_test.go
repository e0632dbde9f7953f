package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/tkdgloss/internal/belt"
	"github.com/ppiankov/tkdgloss/internal/cache"
	"github.com/ppiankov/tkdgloss/internal/catalog"
	"github.com/ppiankov/tkdgloss/internal/model"
	"github.com/ppiankov/tkdgloss/internal/score"
)

func newTestAnalyzer(t *testing.T, c cache.Cache) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer(catalog.Default(), model.DefaultConfig(), c)
	require.NoError(t, err)
	a.warn = &bytes.Buffer{}
	a.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return a
}

// failingCache accepts nothing and never hits
type failingCache struct{ sets int }

func (f *failingCache) Get(string) ([]byte, bool) { return nil, false }
func (f *failingCache) Set(string, []byte, time.Duration) error {
	f.sets++
	return os.ErrPermission
}
func (f *failingCache) Delete(string) error { return nil }
func (f *failingCache) Clear() error        { return nil }

func canonicals(matches []model.Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Term.Canonical
	}
	return out
}

func TestAnalyze(t *testing.T) {
	a := newTestAnalyzer(t, nil)

	report, err := a.Analyze(context.Background(), "Bal Bakuda Dollyeo Chagi")
	require.NoError(t, err)

	assert.Len(t, report.Tokens, 4)
	assert.Equal(t, 2, report.MaxDistance)
	assert.Equal(t, []string{"Bal Bakuda", "Dollyeo", "Chagi"}, canonicals(report.Matches))
	assert.Equal(t, score.ConfidenceHigh, report.Coverage.Confidence)
	assert.True(t, report.AnalyzedAt.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)))
}

func TestAnalyze_EmptyPhrase(t *testing.T) {
	a := newTestAnalyzer(t, nil)

	report, err := a.Analyze(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, report.Matches)
	assert.Empty(t, report.Matches)
	assert.NotNil(t, report.Tokens)
}

func TestAnalyze_CanceledContext(t *testing.T) {
	a := newTestAnalyzer(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := a.Analyze(ctx, "Ap Chagi")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze_UsesCache(t *testing.T) {
	c := cache.NewMemoryCache(time.Minute, time.Minute)
	a := newTestAnalyzer(t, c)

	first, err := a.Analyze(context.Background(), "Ap Chagi")
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	a.now = func() time.Time { return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC) }
	second, err := a.Analyze(context.Background(), "AP-CHAGI")
	require.NoError(t, err)

	assert.True(t, second.AnalyzedAt.Equal(first.AnalyzedAt), "second analysis should come from the cache")
	assert.Equal(t, "AP-CHAGI", second.Phrase)
	assert.Len(t, second.Matches, 2)
}

func TestAnalyze_CacheFailureIsWarning(t *testing.T) {
	fc := &failingCache{}
	a := newTestAnalyzer(t, fc)
	warn := &bytes.Buffer{}
	a.warn = warn

	_, err := a.Analyze(context.Background(), "Ap Chagi")
	require.NoError(t, err)
	assert.Equal(t, 1, fc.sets)
	assert.Contains(t, warn.String(), "Warning:")
}

func TestAnalyze_CorruptCacheEntry(t *testing.T) {
	c := cache.NewMemoryCache(time.Minute, time.Minute)
	a := newTestAnalyzer(t, c)
	require.NoError(t, c.Set(cache.Key("Ap Chagi", 2), []byte("{broken"), 0))

	report, err := a.Analyze(context.Background(), "Ap Chagi")
	require.NoError(t, err)
	assert.Len(t, report.Matches, 2)
}

func TestNewAnalyzer_InvalidDistance(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Matching.MaxDistance = -1
	_, err := NewAnalyzer(catalog.Default(), cfg, nil)
	assert.Error(t, err)
}

func TestAnalyzeBelt(t *testing.T) {
	a := newTestAnalyzer(t, nil)
	b := belt.Belt{
		Color:          "Branca",
		Grade:          "10 GUB",
		HandTechniques: []string{"Arae Makgi", "Eolgul Makgi"},
		KickTechniques: []string{"Ap Chagi"},
	}

	br, err := a.AnalyzeBelt(context.Background(), b)
	require.NoError(t, err)
	require.Len(t, br.Hand, 2)
	require.Len(t, br.Kick, 1)
	assert.Equal(t, []string{"arae"}, br.Hand[0].Skipped)
	assert.Len(t, br.Reports(), 3)

	var out bytes.Buffer
	a.Renderer().RenderBelt(&out, br)
	for _, want := range []string{"Branca (10 GUB)", "Hand techniques:", "Kick techniques:", "? arae", "Chagi (Chute) [Actions]"} {
		assert.Contains(t, out.String(), want)
	}
}

func TestRenderReport(t *testing.T) {
	a := newTestAnalyzer(t, nil)
	report, err := a.Analyze(context.Background(), "Sonnal Mok Chigi")
	require.NoError(t, err)

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "out", "report.json")
	mdPath := filepath.Join(dir, "out", "report.md")

	var out bytes.Buffer
	require.NoError(t, a.RenderReport(&out, report, jsonPath, mdPath, false))

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var decoded model.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Sonnal Mok Chigi", decoded.Phrase)
	assert.Len(t, decoded.Matches, 2)

	md, err := os.ReadFile(mdPath)
	require.NoError(t, err)
	for _, want := range []string{"# Sonnal Mok Chigi", "## Terms", "### BodyParts", "## Unrecognized tokens", "`mok`", "ambiguous_category", "Generated by tkdgloss"} {
		assert.Contains(t, string(md), want)
	}

	summary := out.String()
	assert.Contains(t, summary, "Unrecognized: mok")
	assert.Contains(t, summary, "Coverage: 2/3 tokens (low confidence)")
}

func TestRenderReport_VerboseProgressGoesToWarnWriter(t *testing.T) {
	a := newTestAnalyzer(t, nil)
	progress := &bytes.Buffer{}
	a.warn = progress

	report, err := a.Analyze(context.Background(), "Ap Chagi")
	require.NoError(t, err)

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "r.json")
	mdPath := filepath.Join(dir, "r.md")

	var out bytes.Buffer
	require.NoError(t, a.RenderReport(&out, report, jsonPath, mdPath, true))

	assert.Contains(t, progress.String(), "✓ Wrote JSON: "+jsonPath)
	assert.Contains(t, progress.String(), "✓ Wrote Markdown: "+mdPath)
	assert.NotContains(t, out.String(), "✓ Wrote")
}

func TestRenderSummary_NoMatchesHint(t *testing.T) {
	a := newTestAnalyzer(t, nil)
	report, err := a.Analyze(context.Background(), "xyz")
	require.NoError(t, err)

	var out bytes.Buffer
	a.Renderer().RenderSummary(&out, report)
	assert.Contains(t, out.String(), "--max-distance (current 2)")
}

func TestRenderMarkdown_NoFooter(t *testing.T) {
	r := NewRenderer(false, false)
	report := &model.Report{
		Phrase: "Ap Chagi",
		Matches: []model.Match{
			{Category: "Directions", Term: model.Term{Canonical: "Ap", Label: "Frente", Description: "desc"}, Span: 1, Text: "ap"},
		},
	}

	var sb strings.Builder
	r.WriteMarkdown(&sb, report)
	assert.NotContains(t, sb.String(), "Generated by")
	assert.NotContains(t, sb.String(), "desc")
	assert.Contains(t, sb.String(), "- **Ap** (Frente)")
}
