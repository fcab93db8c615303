package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ppiankov/raadsel/internal/model"
	"github.com/ppiankov/raadsel/internal/puzzle"
	"github.com/ppiankov/raadsel/internal/record"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var puzzlesDir string

// puzzlesCmd represents the puzzles command
var puzzlesCmd = &cobra.Command{
	Use:   "puzzles [clues.jsonl]",
	Short: "Build test and dev puzzle sets from curated clues",
	Long: `Puzzles splits the curated clue records into a test and a dev set and writes,
for each split, the puzzles in annotated clue order plus one file per clue ordering:

  test_puzzles.jsonl, test_puzzles_1.jsonl .. test_puzzles_6.jsonl
  dev_puzzles.jsonl,  dev_puzzles_1.jsonl  .. dev_puzzles_6.jsonl

All files of a split list the same answers in the same order.

Example:
  raadsel puzzles
  raadsel puzzles data/all_annotations_in.jsonl --ratio 0.8 --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPuzzles,
}

func init() {
	rootCmd.AddCommand(puzzlesCmd)

	puzzlesCmd.Flags().StringVar(&puzzlesDir, "out-dir", "data", "output directory for puzzle files")
	puzzlesCmd.Flags().Float64("ratio", 0.9, "share of entries in the test set")
	puzzlesCmd.Flags().Uint64("seed", 0, "shuffle seed (0 = random)")

	_ = viper.BindPFlag("puzzle.test_ratio", puzzlesCmd.Flags().Lookup("ratio"))
	_ = viper.BindPFlag("puzzle.seed", puzzlesCmd.Flags().Lookup("seed"))
}

func runPuzzles(cmd *cobra.Command, args []string) error {
	in := argOr(args, filepath.Join("data", annotationsInFile))

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	entries, err := record.ReadFile(in, record.DecodeClueEntry)
	if err != nil {
		return err
	}

	sets, err := puzzle.BuildSets(entries, cfg.Puzzle.TestRatio, puzzle.NewShuffler(cfg.Puzzle.Seed))
	if err != nil {
		return fmt.Errorf("build puzzles: %w", err)
	}

	if err := os.MkdirAll(puzzlesDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for name, split := range map[string]puzzle.SplitSet{"test": sets.Test, "dev": sets.Dev} {
		if err := writeSplit(puzzlesDir, name, split); err != nil {
			return err
		}
	}

	banner("Puzzles Complete")
	fmt.Fprintf(os.Stderr, "  Entries:   %d\n", len(entries))
	fmt.Fprintf(os.Stderr, "  Test:      %d\n", len(sets.Test.Canonical))
	fmt.Fprintf(os.Stderr, "  Dev:       %d\n", len(sets.Dev.Canonical))
	if cfg.Puzzle.Seed != 0 {
		fmt.Fprintf(os.Stderr, "  Seed:      %d\n", cfg.Puzzle.Seed)
	}
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", puzzlesDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// writeSplit writes the canonical file and one file per clue ordering
func writeSplit(dir, name string, split puzzle.SplitSet) error {
	if err := record.WriteFile(filepath.Join(dir, name+"_puzzles.jsonl"), split.Canonical); err != nil {
		return err
	}
	for i := 0; i < model.PermutationCount; i++ {
		path := filepath.Join(dir, fmt.Sprintf("%s_puzzles_%d.jsonl", name, i+1))
		if err := record.WriteFile(path, split.Permutations[i]); err != nil {
			return err
		}
	}
	return nil
}
