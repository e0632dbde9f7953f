package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/tkdgloss/internal/catalog"
	"github.com/ppiankov/tkdgloss/internal/model"
	"github.com/ppiankov/tkdgloss/internal/pipeline"
)

var beltsDir string

// beltsCmd represents the belts command
var beltsCmd = &cobra.Command{
	Use:   "belts [color]",
	Short: "List belts or show a belt's techniques",
	Long: `Without arguments, list every belt from beginner to black.

With a color, show the belt's hand and kick techniques, each broken into
the glossary terms it contains.

Belts are read from files named faixa_*.yaml / .yml / .json in --dir (or
belts.dir in the config file); without one the built-in curriculum is used.

Example:
  tkdgloss belts
  tkdgloss belts azul
  tkdgloss belts preta --dir ./faixas`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBelts,
}

func init() {
	rootCmd.AddCommand(beltsCmd)

	beltsCmd.Flags().StringVar(&beltsDir, "dir", "", "directory with belt files (default: built-in curriculum)")
}

// applyBeltsDir lets a command's --dir flag override belts.dir
func applyBeltsDir(cmd *cobra.Command, cfg *model.Config, dir string) {
	if cmd.Flags().Changed("dir") {
		cfg.Belts.Dir = dir
	}
}

func runBelts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyBeltsDir(cmd, cfg, beltsDir)

	reg, err := openBelts(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, b := range reg.All() {
			fmt.Fprintf(out, "%-10s %-8s %d hand, %d kick techniques\n",
				b.Color, b.Grade, len(b.HandTechniques), len(b.KickTechniques))
		}
		return nil
	}

	b, err := reg.Get(args[0])
	if err != nil {
		return err
	}

	a, err := pipeline.NewAnalyzer(catalog.Default(), cfg, openCache(cfg))
	if err != nil {
		return err
	}
	br, err := a.AnalyzeBelt(context.Background(), b)
	if err != nil {
		return err
	}

	a.Renderer().RenderBelt(out, br)
	return nil
}
