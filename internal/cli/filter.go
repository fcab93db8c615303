package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ppiankov/raadsel/internal/record"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var filterOut string

// filterCmd represents the filter command
var filterCmd = &cobra.Command{
	Use:   "filter [aspects.jsonl]",
	Short: "Run the aspect cascade over an aspect file",
	Long: `Filter re-runs the aspect-selection cascade over previously scraped aspects,
for example after changing thresholds or lexicon lists. No network access is needed.

Example:
  raadsel filter
  raadsel filter data/all_aspects.jsonl --out data/all_filtered2.jsonl
  raadsel filter --category-leak=false`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFilter,
}

func init() {
	rootCmd.AddCommand(filterCmd)

	filterCmd.Flags().StringVar(&filterOut, "out", filepath.Join("data", filtered2File), "output file for ranked pages")
	filterCmd.Flags().Bool("category-leak", true, "drop every aspect after the first excluded one on a page")
	filterCmd.Flags().Int("min-links", 3, "minimum number of links per page")

	_ = viper.BindPFlag("filter.category_leak", filterCmd.Flags().Lookup("category-leak"))
	_ = viper.BindPFlag("filter.min_links", filterCmd.Flags().Lookup("min-links"))
}

func runFilter(cmd *cobra.Command, args []string) error {
	in := filepath.Join("data", aspectsFile)
	if len(args) == 1 {
		in = args[0]
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	lex, err := loadLexicon(cfg.Lexicon)
	if err != nil {
		return err
	}

	pages, err := record.ReadFile(in, record.DecodeAspectPage)
	if err != nil {
		return err
	}

	result := newCascade(cfg, lex, logger).Run(pages)
	if err := record.WriteFile(filterOut, result.Pages); err != nil {
		return err
	}

	banner("Aspect Cascade")
	fmt.Fprintf(os.Stderr, "  Input:         %s (%d pages)\n", in, len(pages))
	fmt.Fprintf(os.Stderr, "  Output:        %s (%d pages)\n", filterOut, len(result.Pages))
	fmt.Fprintf(os.Stderr, "  Category leak: %v\n", cfg.Filter.CategoryLeak)
	fmt.Fprintf(os.Stderr, "\n")
	printStages(result.Stages)

	return nil
}
