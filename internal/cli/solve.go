package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/ppiankov/raadsel/internal/llm"
	"github.com/ppiankov/raadsel/internal/model"
	"github.com/ppiankov/raadsel/internal/record"
	"github.com/ppiankov/raadsel/internal/worker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

var (
	solveOutDir  string
	solveTimeout time.Duration
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve <puzzles.jsonl>...",
	Short: "Collect model answers for puzzle files",
	Long: `Solve sends every puzzle to the configured model and writes one answer record
per puzzle, in puzzle order, to results_<input>_<model>.jsonl in the output directory.

Example:
  raadsel solve data/test_puzzles.jsonl
  raadsel solve data/test_puzzles_*.jsonl --workers 8 --out-dir results
  raadsel solve data/dev_puzzles.jsonl --provider ollama --model llama3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVar(&solveOutDir, "out-dir", "results", "output directory for answer files")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 2*time.Hour, "total timeout for all files")
	solveCmd.Flags().String("provider", "openai", "LLM provider (openai, anthropic, ollama)")
	solveCmd.Flags().String("model", "gpt-4o", "LLM model name")
	solveCmd.Flags().Int("workers", 4, "number of concurrent requests")

	_ = viper.BindPFlag("llm.provider", solveCmd.Flags().Lookup("provider"))
	_ = viper.BindPFlag("llm.model", solveCmd.Flags().Lookup("model"))
	_ = viper.BindPFlag("concurrency.workers", solveCmd.Flags().Lookup("workers"))
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg))
	if err != nil {
		return fmt.Errorf("create provider: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), solveTimeout)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	banner("raadsel solve")
	fmt.Fprintf(os.Stderr, "  Provider:     %s/%s\n", provider.Name(), cfg.LLM.Model)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", cfg.Concurrency.Workers)
	fmt.Fprintf(os.Stderr, "  Files:        %d\n", len(args))
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", solveOutDir)
	fmt.Fprintf(os.Stderr, "\n")

	if err := os.MkdirAll(solveOutDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	processor := worker.NewBatchProcessor(provider, cfg.Concurrency.Workers, logger)

	failures := 0
	for _, in := range args {
		puzzles, err := record.ReadFile(in, record.DecodePuzzle)
		if err != nil {
			return err
		}

		records, solveErr := processor.Solve(ctx, puzzles)
		fillUnanswered(records, puzzles)

		out := filepath.Join(solveOutDir, resultsName(in, cfg.LLM.Model))
		if err := record.WriteFile(out, records); err != nil {
			return err
		}

		failed := len(multierr.Errors(solveErr))
		failures += failed
		if failed > 0 {
			fmt.Fprintf(os.Stderr, "✗ %s: %d of %d puzzles failed\n", in, failed, len(puzzles))
			for _, e := range multierr.Errors(solveErr) {
				fmt.Fprintf(os.Stderr, "    %v\n", e)
			}
		} else {
			fmt.Fprintf(os.Stderr, "✓ %s -> %s (%d answers)\n", in, out, len(records))
		}

		if ctx.Err() != nil {
			return fmt.Errorf("solve interrupted: %w", ctx.Err())
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d puzzles failed; their results are empty", failures)
	}
	return nil
}

// fillUnanswered restores prompt and answer of records that were never submitted
func fillUnanswered(records []model.EvaluationRecord, puzzles []model.Puzzle) {
	for i := range records {
		if records[i].Prompt == "" {
			records[i].Prompt = puzzles[i].Puzzle
			records[i].Answer = puzzles[i].Answer
		}
	}
}

// resultsName maps data/test_puzzles_1.jsonl and gpt-4o to results_test_puzzles_1_gpt-4o.jsonl
func resultsName(input, modelName string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	modelName = strings.NewReplacer("/", "-", ":", "-").Replace(modelName)
	if modelName == "" {
		return "results_" + base + ".jsonl"
	}
	return "results_" + base + "_" + modelName + ".jsonl"
}
