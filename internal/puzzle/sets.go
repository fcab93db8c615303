package puzzle

import (
	"fmt"

	"github.com/ppiankov/raadsel/internal/model"
)

// SplitSet holds the puzzles derived from one side of the test/dev split
type SplitSet struct {
	Entries      []model.ClueEntry
	Canonical    []model.Puzzle
	Permutations [model.PermutationCount][]model.Puzzle
}

// Sets is the full puzzle benchmark: a test and a dev split, each with the
// canonical ordering and all six clue orderings built from the same entries
type Sets struct {
	Test SplitSet
	Dev  SplitSet
}

// BuildSets splits entries once and builds every puzzle file from the shuffled result
func BuildSets(entries []model.ClueEntry, ratio float64, shuffler Shuffler) (Sets, error) {
	test, dev, err := Split(entries, ratio, shuffler)
	if err != nil {
		return Sets{}, err
	}

	testSet, err := buildSplit(test)
	if err != nil {
		return Sets{}, fmt.Errorf("test set: %w", err)
	}
	devSet, err := buildSplit(dev)
	if err != nil {
		return Sets{}, fmt.Errorf("dev set: %w", err)
	}

	return Sets{Test: testSet, Dev: devSet}, nil
}

func buildSplit(entries []model.ClueEntry) (SplitSet, error) {
	canonical, err := BuildDefault(entries)
	if err != nil {
		return SplitSet{}, err
	}
	perms, err := BuildAllPermutations(entries)
	if err != nil {
		return SplitSet{}, err
	}
	return SplitSet{Entries: entries, Canonical: canonical, Permutations: perms}, nil
}
