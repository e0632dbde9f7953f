package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/tkdgloss/internal/belt"
	"github.com/ppiankov/tkdgloss/internal/catalog"
	"github.com/ppiankov/tkdgloss/internal/model"
	"github.com/ppiankov/tkdgloss/internal/validate"
)

var (
	lintDir    string
	lintStrict bool
	lintWatch  bool
)

// lintCmd represents the lint command
var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check belt techniques against the glossary",
	Long: `Lint segments every technique of every belt and reports:
- words no glossary term explains (unrecognized)
- words recognized only through a misspelling tolerance (fuzzy)
- glossary spellings declared in more than one category (ambiguous)

With --strict, unrecognized words make the command fail.
With --watch, the belts directory is re-checked whenever a belt file changes
(Ctrl-C to stop).

Example:
  tkdgloss lint
  tkdgloss lint --dir ./faixas --strict
  tkdgloss lint --dir ./faixas --watch`,
	Args: cobra.NoArgs,
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVar(&lintDir, "dir", "", "directory with belt files (default: built-in curriculum)")
	lintCmd.Flags().BoolVar(&lintStrict, "strict", false, "fail when any technique has unrecognized words")
	lintCmd.Flags().BoolVar(&lintWatch, "watch", false, "re-run whenever a belt file in --dir changes")
}

func runLint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyBeltsDir(cmd, cfg, lintDir)

	linter, err := validate.NewLinter(catalog.Default(), cfg.Matching.MaxDistance, cfg.Concurrency.Workers)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if lintWatch {
		if cfg.Belts.Dir == "" {
			return fmt.Errorf("--watch needs a belts directory (--dir or belts.dir)")
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		fmt.Fprintf(os.Stderr, "Watching %s for changes (Ctrl-C to stop)\n", cfg.Belts.Dir)
		return belt.Watch(ctx, cfg.Belts.Dir, cfg.Belts.Pattern, belt.DefaultDebounce, func(reg *belt.Registry, err error) {
			fmt.Fprintf(out, "── %s ──\n", time.Now().Format("15:04:05"))
			if err != nil {
				fmt.Fprintf(os.Stderr, "✗ %v\n", err)
				return
			}
			if _, err := lintOnce(ctx, out, linter, reg, cfg.Output.Verbose); err != nil {
				fmt.Fprintf(os.Stderr, "✗ %v\n", err)
			}
			fmt.Fprintln(out)
		})
	}

	reg, err := openBelts(cfg)
	if err != nil {
		return err
	}

	counts, err := lintOnce(context.Background(), out, linter, reg, cfg.Output.Verbose)
	if err != nil {
		return err
	}

	if lintStrict && counts[model.IssueUnrecognized] > 0 {
		return fmt.Errorf("%d unrecognized words in belt techniques", counts[model.IssueUnrecognized])
	}
	return nil
}

// lintOnce lints every belt of reg and prints the findings
func lintOnce(ctx context.Context, out io.Writer, linter *validate.Linter, reg *belt.Registry, verbose bool) (map[model.IssueKind]int, error) {
	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Linting %d belts...\n", reg.Len())
	}

	issues, err := linter.Lint(ctx, reg.All())
	if err != nil {
		return nil, err
	}

	for _, issue := range issues {
		if issue.Belt == "" {
			fmt.Fprintf(out, "%-12s %s: %s\n", issue.Kind, issue.Token, issue.Detail)
			continue
		}
		fmt.Fprintf(out, "%-12s %s / %q: %s: %s\n", issue.Kind, issue.Belt, issue.Technique, issue.Token, issue.Detail)
	}

	counts := validate.Count(issues)
	fmt.Fprintf(out, "\n%d unrecognized, %d fuzzy, %d ambiguous\n",
		counts[model.IssueUnrecognized], counts[model.IssueFuzzy], counts[model.IssueAmbiguous])
	return counts, nil
}
