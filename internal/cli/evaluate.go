package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/raadsel/internal/evaluate"
	"github.com/ppiankov/raadsel/internal/model"
	"github.com/ppiankov/raadsel/internal/record"
	"github.com/spf13/cobra"
)

var evalJSON bool

// evaluateCmd groups the evaluation commands
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score model answers",
	Long: `Evaluate compares answer files produced by "raadsel solve".

  raadsel evaluate order   accuracy across clue orderings of the same puzzles
  raadsel evaluate human   agreement between human judgments and model answers`,
}

var evaluateOrderCmd = &cobra.Command{
	Use:   "order <results.jsonl>...",
	Short: "Compare runs over the same puzzles in different clue orders",
	Long: `Order loads several answer files for the same puzzles, one per clue ordering,
and reports accuracy per run, the best and average accuracy, and how many
puzzles were solved in at least one run and in every run.

The file name without extension identifies the run.

Example:
  raadsel evaluate order results/results_test_puzzles_*_gpt-4o.jsonl`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runs := make(map[string][]model.EvaluationRecord, len(args))
		for _, path := range args {
			records, err := record.ReadFile(path, record.DecodeEvaluationRecord)
			if err != nil {
				return err
			}
			id := runID(path)
			if _, dup := runs[id]; dup {
				return fmt.Errorf("duplicate run id %s (%s)", id, path)
			}
			runs[id] = records
		}

		stats, err := evaluate.CrossRun(runs)
		if err != nil {
			return fmt.Errorf("evaluate runs: %w", err)
		}

		if evalJSON {
			return printJSON(stats)
		}
		printCrossRun(stats)
		return nil
	},
}

var evaluateHumanCmd = &cobra.Command{
	Use:   "human <human.jsonl> <results.jsonl>",
	Short: "Compare human judgments with model correctness",
	Long: `Human joins human judgment records ({"prompt", "correct"}) with model answer
records by prompt and counts the four agreement categories. Human prompts
without a model answer are listed and left out of the totals.

Example:
  raadsel evaluate human data/human_eval.jsonl results/results_test_puzzles_gpt-4o.jsonl`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		human, err := record.ReadFile(args[0], record.DecodeHumanRecord)
		if err != nil {
			return err
		}
		records, err := record.ReadFile(args[1], record.DecodeEvaluationRecord)
		if err != nil {
			return err
		}

		stats, err := evaluate.Agreement(human, records)
		if err != nil {
			return fmt.Errorf("evaluate agreement: %w", err)
		}

		if evalJSON {
			return printJSON(stats)
		}
		printAgreement(stats)
		return nil
	},
}

// runID names a run after its file
func runID(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printCrossRun(stats model.CrossRunStats) {
	fmt.Println("Correct instances and accuracy per run:")
	for _, r := range stats.Runs {
		fmt.Printf("  %-40s %5d / %-5d  %6.2f%%\n", r.RunID, r.Correct, r.Total, r.Accuracy*100)
	}
	fmt.Println()
	fmt.Printf("Best accuracy:     %s with %.2f%%\n", stats.Best.RunID, stats.Best.Accuracy*100)
	fmt.Printf("Average accuracy:  %.2f%%\n", stats.Average*100)
	fmt.Println()
	fmt.Printf("Solved in any run:   %d\n", stats.UnionCorrectCount)
	fmt.Printf("Solved in every run: %d\n", stats.IntersectionCorrectCount)
}

func printAgreement(stats model.AgreementStats) {
	fmt.Printf("Matched prompts: %d\n\n", stats.Matched)
	for _, c := range stats.Categories {
		fmt.Printf("  %-22s %5d  %6.2f%%\n", c.Category, c.Count, c.Percent)
	}
	if len(stats.Unmatched) > 0 {
		fmt.Fprintf(os.Stderr, "\n⚠️  %d human prompts have no model answer:\n", len(stats.Unmatched))
		for _, p := range stats.Unmatched {
			fmt.Fprintf(os.Stderr, "    %s\n", p)
		}
	}
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
	evaluateCmd.AddCommand(evaluateOrderCmd)
	evaluateCmd.AddCommand(evaluateHumanCmd)

	evaluateCmd.PersistentFlags().BoolVar(&evalJSON, "json", false, "print the result as JSON")
}
