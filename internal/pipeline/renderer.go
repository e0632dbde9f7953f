package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/tkdgloss/internal/model"
)

// Renderer writes reports as JSON, Markdown or a plain-text summary
type Renderer struct {
	includeFooter    bool
	showDescriptions bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter, showDescriptions bool) *Renderer {
	return &Renderer{
		includeFooter:    includeFooter,
		showDescriptions: showDescriptions,
	}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return writeFile(path, append(data, '\n'))
}

// RenderMarkdown writes the report as a Markdown document
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var sb strings.Builder
	r.WriteMarkdown(&sb, report)
	return writeFile(path, []byte(sb.String()))
}

// WriteMarkdown renders the Markdown document to w
func (r *Renderer) WriteMarkdown(w io.Writer, report *model.Report) {
	cov := report.Coverage

	fmt.Fprintf(w, "# %s\n\n", report.Phrase)
	fmt.Fprintf(w, "**Coverage:** %d/%d tokens (%.0f%%) | **Confidence:** %s | **Max distance:** %d\n\n",
		cov.Recognized, cov.Tokens, cov.Ratio*100, cov.Confidence, report.MaxDistance)

	if len(report.Matches) > 0 {
		fmt.Fprintf(w, "## Terms\n\n")
		fmt.Fprintf(w, "| # | Token | Term | Label | Category | Distance |\n")
		fmt.Fprintf(w, "|---|-------|------|-------|----------|----------|\n")
		for i, m := range report.Matches {
			fmt.Fprintf(w, "| %d | %s | %s | %s | %s | %d |\n",
				i+1, escapeCell(m.Text), escapeCell(m.Term.Canonical), escapeCell(m.Term.Label), m.Category, m.Distance)
		}
		fmt.Fprintln(w)

		fmt.Fprintf(w, "## By category\n\n")
		order, groups := report.Grouped()
		for _, category := range order {
			fmt.Fprintf(w, "### %s\n\n", category)
			for _, m := range groups[category] {
				if r.showDescriptions && m.Term.Description != "" {
					fmt.Fprintf(w, "- **%s** (%s): %s\n", m.Term.Canonical, m.Term.Label, m.Term.Description)
				} else {
					fmt.Fprintf(w, "- **%s** (%s)\n", m.Term.Canonical, m.Term.Label)
				}
			}
			fmt.Fprintln(w)
		}
	} else {
		fmt.Fprintf(w, "No terms recognized.\n\n")
	}

	if len(report.Skipped) > 0 {
		fmt.Fprintf(w, "## Unrecognized tokens\n\n")
		for _, tok := range report.Skipped {
			fmt.Fprintf(w, "- `%s`\n", tok)
		}
		fmt.Fprintln(w)
	}

	if len(cov.Signals) > 0 {
		fmt.Fprintf(w, "## Signals\n\n")
		for _, s := range cov.Signals {
			fmt.Fprintf(w, "- **%s** (%s): %s\n", s.Type, s.Severity, s.Description)
		}
		fmt.Fprintln(w)
	}

	if r.includeFooter {
		fmt.Fprintf(w, "---\n\n_Generated by tkdgloss on %s_\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 UTC"))
	}
}

// RenderSummary prints recognized terms grouped by category, in phrase order
func (r *Renderer) RenderSummary(w io.Writer, report *model.Report) {
	fmt.Fprintf(w, "%s\n", report.Phrase)

	if len(report.Matches) == 0 {
		fmt.Fprintf(w, "  No terms recognized. Try a higher --max-distance (current %d).\n", report.MaxDistance)
		return
	}

	order, groups := report.Grouped()
	for _, category := range order {
		fmt.Fprintf(w, "  %s\n", category)
		for _, m := range groups[category] {
			line := fmt.Sprintf("    %s - %s", m.Term.Canonical, m.Term.Label)
			if m.Distance > 0 {
				line += fmt.Sprintf(" [~%s, distance %d]", m.Text, m.Distance)
			}
			if r.showDescriptions && m.Term.Description != "" {
				line += ": " + m.Term.Description
			}
			fmt.Fprintln(w, line)
		}
	}

	cov := report.Coverage
	fmt.Fprintf(w, "  Coverage: %d/%d tokens (%s confidence)\n", cov.Recognized, cov.Tokens, cov.Confidence)
	if len(report.Skipped) > 0 {
		fmt.Fprintf(w, "  Unrecognized: %s\n", strings.Join(report.Skipped, ", "))
	}
}

// RenderBelt prints a belt's techniques, each with its recognized terms
func (r *Renderer) RenderBelt(w io.Writer, br *BeltReport) {
	fmt.Fprintf(w, "%s\n", br.Belt)

	section := func(title string, reports []*model.Report) {
		fmt.Fprintf(w, "\n%s:\n", title)
		if len(reports) == 0 {
			fmt.Fprintf(w, "  (none)\n")
			return
		}
		for _, rep := range reports {
			fmt.Fprintf(w, "  %s\n", rep.Phrase)
			for _, m := range rep.Matches {
				fmt.Fprintf(w, "    %s (%s) [%s]\n", m.Term.Canonical, m.Term.Label, m.Category)
			}
			if len(rep.Skipped) > 0 {
				fmt.Fprintf(w, "    ? %s\n", strings.Join(rep.Skipped, ", "))
			}
		}
	}

	section("Hand techniques", br.Hand)
	section("Kick techniques", br.Kick)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
