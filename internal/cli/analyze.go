package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/tkdgloss/internal/catalog"
	"github.com/ppiankov/tkdgloss/internal/pipeline"
	"github.com/ppiankov/tkdgloss/internal/segment"
)

var (
	outJSON     string
	outMD       string
	maxDistance int
	noCache     bool
	noFooter    bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <technique name>",
	Short: "Break a technique name into glossary terms",
	Long: `Analyze splits a technique name into the glossary terms it is made of:
- Multi-word terms ("Juchum Seogi", "Bal Bakuda") are recognized first
- Remaining words are matched one by one, tolerating small misspellings
- Words without a close enough term are reported as unrecognized

Terms are printed in phrase order, grouped by category.

Example:
  tkdgloss analyze Dollyeo Chagi
  tkdgloss analyze "Apgubi Momtong Jireugi" --md report.md
  tkdgloss analyze "Dolyo Chagi" --max-distance 3 --json report.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().IntVarP(&maxDistance, "max-distance", "d", segment.DefaultMaxDistance, "maximum edit distance for single words")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the analysis cache")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("max-distance") {
		cfg.Matching.MaxDistance = maxDistance
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if noFooter {
		cfg.Output.IncludeFooter = false
	}

	phrase := strings.Join(args, " ")

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %q\n", phrase)
		fmt.Fprintf(os.Stderr, "Max distance: %d\n", cfg.Matching.MaxDistance)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	a, err := pipeline.NewAnalyzer(catalog.Default(), cfg, openCache(cfg))
	if err != nil {
		return err
	}

	report, err := a.Analyze(context.Background(), phrase)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if cfg.Output.Verbose {
		cov := report.Coverage
		fmt.Fprintf(os.Stderr, "✓ %d tokens, %d recognized (%d exact, %d fuzzy, %d composite)\n",
			cov.Tokens, cov.Recognized, cov.Exact, cov.Fuzzy, cov.Composite)
		fmt.Fprintln(os.Stderr)
	}

	if err := a.RenderReport(cmd.OutOrStdout(), report, outJSON, outMD, cfg.Output.Verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}
