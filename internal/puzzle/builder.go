// Package puzzle turns curated clue entries into puzzle prompts, including
// every ordering of the three clues and the test/dev split.
package puzzle

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ppiankov/raadsel/internal/model"
	"github.com/ppiankov/raadsel/internal/record"
)

// ErrInvalidRatio is returned when a split ratio falls outside [0, 1]
var ErrInvalidRatio = errors.New("split ratio must be between 0 and 1")

// permutations lists the orderings of three clues in standard permutation order
var permutations = [model.PermutationCount][3]int{
	{0, 1, 2},
	{0, 2, 1},
	{1, 0, 2},
	{1, 2, 0},
	{2, 0, 1},
	{2, 1, 0},
}

// Shuffler randomizes the order of n elements; *rand.Rand satisfies it
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewShuffler returns a seeded generator, or one seeded from entropy when seed is 0
func NewShuffler(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Combine joins three clues into a Dutch puzzle sentence. Each clue is
// trimmed and only its first letter is lower-cased.
func Combine(c1, c2, c3 string) string {
	return fmt.Sprintf("Het is %s, %s, en %s", lowerFirst(c1), lowerFirst(c2), lowerFirst(c3))
}

func lowerFirst(s string) string {
	s = strings.TrimSpace(s)
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// BuildDefault builds one puzzle per entry with the clues in annotation order
func BuildDefault(entries []model.ClueEntry) ([]model.Puzzle, error) {
	puzzles := make([]model.Puzzle, 0, len(entries))
	for i, e := range entries {
		clues, err := threeClues(e)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		puzzles = append(puzzles, model.Puzzle{
			Puzzle: Combine(clues[0], clues[1], clues[2]),
			Answer: e.Answer,
		})
	}
	return puzzles, nil
}

// BuildAllPermutations builds six parallel puzzle sets, one per clue ordering.
// Index i of every set refers to entries[i].
func BuildAllPermutations(entries []model.ClueEntry) ([model.PermutationCount][]model.Puzzle, error) {
	var sets [model.PermutationCount][]model.Puzzle
	for p := range sets {
		sets[p] = make([]model.Puzzle, 0, len(entries))
	}

	for i, e := range entries {
		clues, err := threeClues(e)
		if err != nil {
			return sets, fmt.Errorf("entry %d: %w", i, err)
		}
		for p, order := range permutations {
			sets[p] = append(sets[p], model.Puzzle{
				Puzzle: Combine(clues[order[0]], clues[order[1]], clues[order[2]]),
				Answer: e.Answer,
			})
		}
	}
	return sets, nil
}

// threeClues returns the first three clues of an entry; annotators may supply more
func threeClues(e model.ClueEntry) ([3]string, error) {
	var clues [3]string
	if len(e.Clues) < 3 {
		return clues, &record.MalformedRecordError{
			Field:  "clue3",
			Reason: fmt.Sprintf("answer %q has %d clues, need 3", e.Answer, len(e.Clues)),
		}
	}
	copy(clues[:], e.Clues[:3])
	return clues, nil
}

// Split shuffles a copy of entries and cuts it at floor(ratio*n). The first
// part is the test set, the remainder the dev set.
func Split(entries []model.ClueEntry, ratio float64, shuffler Shuffler) (test, dev []model.ClueEntry, err error) {
	if math.IsNaN(ratio) || ratio < 0 || ratio > 1 {
		return nil, nil, fmt.Errorf("%w: got %v", ErrInvalidRatio, ratio)
	}

	shuffled := make([]model.ClueEntry, len(entries))
	copy(shuffled, entries)
	shuffler.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	cut := int(math.Floor(ratio * float64(len(shuffled))))
	return shuffled[:cut:cut], shuffled[cut:], nil
}
