package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/tkdgloss/internal/catalog"
	"github.com/ppiankov/tkdgloss/internal/model"
	"github.com/ppiankov/tkdgloss/internal/search"
)

var (
	searchCategory    string
	searchMaxDistance int
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the glossary with typo tolerance",
	Long: `Search matches the query against every term's Korean spelling and its
Portuguese label, keeping terms within the maximum edit distance of
either. Closest terms are listed first.

Example:
  tkdgloss search chagi
  tkdgloss search soco --max-distance 1
  tkdgloss search sonal --category HandParts`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", "", "restrict the search to one category")
	searchCmd.Flags().IntVarP(&searchMaxDistance, "max-distance", "d", search.DefaultMaxDistance, "maximum edit distance")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("max-distance") {
		cfg.Matching.SearchMaxDistance = searchMaxDistance
	}

	query := strings.Join(args, " ")

	cat := catalog.Default()
	var entries []model.Entry
	if searchCategory != "" {
		c, err := cat.Category(searchCategory)
		if err != nil {
			return err
		}
		entries = c.Entries()
	} else {
		entries = cat.Entries()
	}

	hits, err := search.Search(entries, query, cfg.Matching.SearchMaxDistance)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(hits) == 0 {
		fmt.Fprintf(out, "No terms within distance %d of %q\n", cfg.Matching.SearchMaxDistance, query)
		return nil
	}

	for _, e := range hits {
		dist := 0
		if e.Distance != nil {
			dist = *e.Distance
		}
		line := fmt.Sprintf("%d  %-20s %s", dist, e.Category, e.Term)
		if cfg.Output.ShowDescriptions && e.Description != "" {
			line += ": " + e.Description
		}
		fmt.Fprintln(out, line)
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d terms within distance %d\n", len(hits), len(entries), cfg.Matching.SearchMaxDistance)
	}
	return nil
}
