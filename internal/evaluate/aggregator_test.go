package evaluate

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ppiankov/raadsel/internal/model"
)

func rec(prompt, answer, result string) model.EvaluationRecord {
	return model.EvaluationRecord{Prompt: prompt, Answer: answer, Result: result}
}

// run builds a run of n records where only the given indices are answered correctly
func run(n int, correct ...int) []model.EvaluationRecord {
	ok := make(map[int]bool)
	for _, i := range correct {
		ok[i] = true
	}
	records := make([]model.EvaluationRecord, n)
	for i := range records {
		result := "geen idee"
		if ok[i] {
			result = "Het antwoord is Mars"
		}
		records[i] = rec("p", "mars", result)
	}
	return records
}

func TestIsCorrect(t *testing.T) {
	tests := []struct {
		expected, result string
		want             bool
	}{
		{"kat", "de kat is zwart", true},
		{"Kat", "DE KAT", true},
		{"hond", "de kat is zwart", false},
		{"", "de kat is zwart", false},
		{"kat", "", false},
	}

	for _, tt := range tests {
		if got := IsCorrect(tt.expected, tt.result); got != tt.want {
			t.Errorf("IsCorrect(%q, %q) = %v, want %v", tt.expected, tt.result, got, tt.want)
		}
	}
}

func TestIsHumanCorrect(t *testing.T) {
	for label, want := range map[string]bool{
		"agree":    true,
		"Agree":    true,
		"YES":      true,
		"disagree": false,
		"no":       false,
		"":         false,
	} {
		if got := IsHumanCorrect(label); got != want {
			t.Errorf("IsHumanCorrect(%q) = %v, want %v", label, got, want)
		}
	}
}

func TestAccuracy(t *testing.T) {
	records := []model.EvaluationRecord{
		rec("p1", "kat", "de kat is zwart"),
		rec("p2", "hond", "de kat is zwart"),
	}

	acc, err := Accuracy(records)
	if err != nil {
		t.Fatalf("Accuracy failed: %v", err)
	}
	if acc != 0.5 {
		t.Errorf("Expected accuracy 0.5, got %v", acc)
	}
}

func TestAccuracy_EmptyInput(t *testing.T) {
	if _, err := Accuracy(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput, got %v", err)
	}

	// Zero percent is a result, not an error
	acc, err := Accuracy(run(3))
	if err != nil || acc != 0 {
		t.Errorf("Expected accuracy 0 without error, got %v, %v", acc, err)
	}
}

func TestCorrectIndices(t *testing.T) {
	if diff := cmp.Diff([]int{0, 2}, CorrectIndices(run(4, 0, 2))); diff != "" {
		t.Errorf("CorrectIndices mismatch (-want +got):\n%s", diff)
	}
}

func TestCrossRun(t *testing.T) {
	runs := map[string][]model.EvaluationRecord{
		"b": run(4, 1, 2),
		"a": run(4, 0, 1),
	}

	stats, err := CrossRun(runs)
	if err != nil {
		t.Fatalf("CrossRun failed: %v", err)
	}

	if stats.UnionCorrectCount != 3 {
		t.Errorf("Expected union 3, got %d", stats.UnionCorrectCount)
	}
	if stats.IntersectionCorrectCount != 1 {
		t.Errorf("Expected intersection 1, got %d", stats.IntersectionCorrectCount)
	}
	// Equal accuracy: the first run id wins
	if stats.Best.RunID != "a" {
		t.Errorf("Expected best run a, got %s", stats.Best.RunID)
	}
	if stats.Average != 0.5 {
		t.Errorf("Expected average 0.5, got %v", stats.Average)
	}

	want := []model.RunStats{
		{RunID: "a", Correct: 2, Total: 4, Accuracy: 0.5},
		{RunID: "b", Correct: 2, Total: 4, Accuracy: 0.5},
	}
	if diff := cmp.Diff(want, stats.Runs); diff != "" {
		t.Errorf("Run stats mismatch (-want +got):\n%s", diff)
	}
}

func TestCrossRun_Best(t *testing.T) {
	runs := map[string][]model.EvaluationRecord{
		"1": run(4, 0),
		"2": run(4, 0, 1, 2),
		"3": run(4, 0, 1),
	}

	stats, err := CrossRun(runs)
	if err != nil {
		t.Fatalf("CrossRun failed: %v", err)
	}
	if stats.Best.RunID != "2" || stats.Best.Accuracy != 0.75 {
		t.Errorf("Expected best run 2 at 0.75, got %s at %v", stats.Best.RunID, stats.Best.Accuracy)
	}
	if math.Abs(stats.Average-0.5) > 1e-9 {
		t.Errorf("Expected average 0.5, got %v", stats.Average)
	}
}

func TestCrossRun_Errors(t *testing.T) {
	shifted := run(2)
	shifted[1].Answer = "venus"

	tests := []struct {
		name string
		runs map[string][]model.EvaluationRecord
		want error
	}{
		{"no runs", nil, ErrEmptyInput},
		{"empty run", map[string][]model.EvaluationRecord{"a": {}}, ErrEmptyInput},
		{"different lengths", map[string][]model.EvaluationRecord{"a": run(2), "b": run(3)}, ErrMisalignedRuns},
		{"different answers", map[string][]model.EvaluationRecord{"a": run(2), "b": shifted}, ErrMisalignedRuns},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CrossRun(tt.runs); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestAgreement(t *testing.T) {
	human := []model.HumanRecord{
		{Prompt: "p1", Correct: "agree"},
		{Prompt: "p2", Correct: "no"},
		{Prompt: "p3", Correct: "yes"},
		{Prompt: "p4", Correct: "disagree"},
		{Prompt: "p5", Correct: "agree"},
	}
	records := []model.EvaluationRecord{
		rec("p1", "kat", "een kat"),
		rec("p2", "kat", "een kat"),
		rec("p3", "kat", "een hond"),
		rec("p4", "kat", "een hond"),
	}

	stats, err := Agreement(human, records)
	if err != nil {
		t.Fatalf("Agreement failed: %v", err)
	}

	want := model.AgreementStats{
		Matched: 4,
		Categories: []model.CategoryCount{
			{Category: model.CategoryBothCorrect, Count: 1, Percent: 25},
			{Category: model.CategoryModelOnlyCorrect, Count: 1, Percent: 25},
			{Category: model.CategoryHumanOnlyCorrect, Count: 1, Percent: 25},
			{Category: model.CategoryBothWrong, Count: 1, Percent: 25},
		},
		Unmatched: []string{"p5"},
	}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Errorf("Agreement mismatch (-want +got):\n%s", diff)
	}

	total := 0
	for _, c := range stats.Categories {
		total += c.Count
	}
	if total != stats.Matched {
		t.Errorf("Category counts sum to %d, expected %d", total, stats.Matched)
	}
}

func TestAgreement_EmptyInput(t *testing.T) {
	if _, err := Agreement(nil, []model.EvaluationRecord{rec("p", "a", "a")}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput, got %v", err)
	}

	// Nothing matched: all categories zero, no division by zero
	stats, err := Agreement([]model.HumanRecord{{Prompt: "x", Correct: "yes"}}, nil)
	if err != nil {
		t.Fatalf("Agreement failed: %v", err)
	}
	if stats.Matched != 0 || stats.Count(model.CategoryBothCorrect) != 0 || stats.Categories[0].Percent != 0 {
		t.Errorf("Expected empty categories, got %+v", stats)
	}
}
