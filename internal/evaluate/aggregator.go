// Package evaluate scores answer records and compares evaluation runs,
// both across clue orderings and between human and model judgments.
package evaluate

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ppiankov/raadsel/internal/model"
)

var (
	// ErrEmptyInput means there were no records to compute a statistic over
	ErrEmptyInput = errors.New("no records to evaluate")
	// ErrMisalignedRuns means runs do not enumerate the same puzzles in the same order
	ErrMisalignedRuns = errors.New("evaluation runs are not aligned")
)

// IsCorrect reports whether result contains expected, ignoring case.
// An empty expected answer is never correct.
func IsCorrect(expected, result string) bool {
	if expected == "" {
		return false
	}
	return strings.Contains(strings.ToLower(result), strings.ToLower(expected))
}

// IsHumanCorrect reports whether a human label marks the answer as correct
func IsHumanCorrect(label string) bool {
	switch strings.ToLower(label) {
	case "agree", "yes":
		return true
	}
	return false
}

// CorrectIndices returns the positions of the correct records in ascending order
func CorrectIndices(records []model.EvaluationRecord) []int {
	var indices []int
	for i, r := range records {
		if IsCorrect(r.Answer, r.Result) {
			indices = append(indices, i)
		}
	}
	return indices
}

// Accuracy is the share of correct records
func Accuracy(records []model.EvaluationRecord) (float64, error) {
	if len(records) == 0 {
		return 0, ErrEmptyInput
	}
	return float64(len(CorrectIndices(records))) / float64(len(records)), nil
}

// CrossRun compares runs positionally. Every run must have the same length
// and the same expected answer at each index.
func CrossRun(runs map[string][]model.EvaluationRecord) (model.CrossRunStats, error) {
	if len(runs) == 0 {
		return model.CrossRunStats{}, ErrEmptyInput
	}

	ids := make([]string, 0, len(runs))
	for id := range runs {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	if err := checkAligned(ids, runs); err != nil {
		return model.CrossRunStats{}, err
	}

	n := len(runs[ids[0]])
	hits := make([]int, n)
	stats := model.CrossRunStats{Runs: make([]model.RunStats, 0, len(ids))}
	var sum float64

	for _, id := range ids {
		records := runs[id]
		acc, err := Accuracy(records)
		if err != nil {
			return model.CrossRunStats{}, fmt.Errorf("run %s: %w", id, err)
		}

		correct := CorrectIndices(records)
		for _, i := range correct {
			hits[i]++
		}

		rs := model.RunStats{RunID: id, Correct: len(correct), Total: len(records), Accuracy: acc}
		stats.Runs = append(stats.Runs, rs)
		if len(stats.Runs) == 1 || rs.Accuracy > stats.Best.Accuracy {
			stats.Best = rs
		}
		sum += acc
	}

	for _, h := range hits {
		if h > 0 {
			stats.UnionCorrectCount++
		}
		if h == len(ids) {
			stats.IntersectionCorrectCount++
		}
	}
	stats.Average = sum / float64(len(ids))

	return stats, nil
}

func checkAligned(ids []string, runs map[string][]model.EvaluationRecord) error {
	ref := runs[ids[0]]
	for _, id := range ids[1:] {
		other := runs[id]
		if len(other) != len(ref) {
			return fmt.Errorf("%w: run %s has %d records, run %s has %d",
				ErrMisalignedRuns, id, len(other), ids[0], len(ref))
		}
		for i := range other {
			if other[i].Answer != ref[i].Answer {
				return fmt.Errorf("%w: run %s index %d answers %q, run %s answers %q",
					ErrMisalignedRuns, id, i, other[i].Answer, ids[0], ref[i].Answer)
			}
		}
	}
	return nil
}

// Agreement joins human judgments with model records by prompt and sorts
// every matched pair into one of four categories. Human prompts without a
// model record are listed in Unmatched and left out of the totals.
func Agreement(human []model.HumanRecord, records []model.EvaluationRecord) (model.AgreementStats, error) {
	if len(human) == 0 {
		return model.AgreementStats{}, ErrEmptyInput
	}

	byPrompt := make(map[string]model.EvaluationRecord, len(records))
	for _, r := range records {
		byPrompt[r.Prompt] = r
	}

	counts := make(map[model.AgreementCategory]int)
	var stats model.AgreementStats
	for _, h := range human {
		r, ok := byPrompt[h.Prompt]
		if !ok {
			stats.Unmatched = append(stats.Unmatched, h.Prompt)
			continue
		}
		stats.Matched++
		counts[categorize(IsHumanCorrect(h.Correct), IsCorrect(r.Answer, r.Result))]++
	}

	for _, c := range model.AgreementCategories() {
		cc := model.CategoryCount{Category: c, Count: counts[c]}
		if stats.Matched > 0 {
			cc.Percent = float64(cc.Count) / float64(stats.Matched) * 100
		}
		stats.Categories = append(stats.Categories, cc)
	}

	return stats, nil
}

func categorize(humanCorrect, modelCorrect bool) model.AgreementCategory {
	switch {
	case modelCorrect && humanCorrect:
		return model.CategoryBothCorrect
	case modelCorrect:
		return model.CategoryModelOnlyCorrect
	case humanCorrect:
		return model.CategoryHumanOnlyCorrect
	default:
		return model.CategoryBothWrong
	}
}
