package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ppiankov/tkdgloss/internal/catalog"
	"github.com/ppiankov/tkdgloss/internal/model"
)

var noDesc bool

// termsCmd represents the terms command
var termsCmd = &cobra.Command{
	Use:   "terms [category]",
	Short: "List glossary terms",
	Long: `List every term of one category, or of the whole glossary.

Category names are case-insensitive; see 'tkdgloss categories'.

Example:
  tkdgloss terms
  tkdgloss terms kicktypes
  tkdgloss terms Stances --no-desc`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTerms,
}

// categoriesCmd represents the categories command
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List glossary categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, c := range catalog.Default().Categories() {
			fmt.Fprintf(out, "%-20s %d terms\n", c.Name, c.Len())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(termsCmd)
	rootCmd.AddCommand(categoriesCmd)

	termsCmd.Flags().BoolVar(&noDesc, "no-desc", false, "omit term descriptions")
}

func runTerms(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("no-desc") {
		cfg.Output.ShowDescriptions = !noDesc
	}

	cat := catalog.Default()
	categories := cat.Categories()
	if len(args) == 1 {
		c, err := cat.Category(args[0])
		if err != nil {
			return err
		}
		categories = []catalog.Category{c}
	}

	out := cmd.OutOrStdout()
	for i, c := range categories {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s\n", c.Name)
		for _, t := range c.List() {
			printTerm(out, t, cfg.Output.ShowDescriptions)
		}
	}
	return nil
}

func printTerm(w io.Writer, t model.Term, withDesc bool) {
	if withDesc && t.Description != "" {
		fmt.Fprintf(w, "  %s: %s\n", t, t.Description)
		return
	}
	fmt.Fprintf(w, "  %s\n", t)
}
