package model

// StageReport records what a single cascade stage did to the batch
type StageReport struct {
	Stage      string `json:"stage"`
	PagesIn    int    `json:"pages_in"`
	PagesOut   int    `json:"pages_out"`
	AspectsIn  int    `json:"aspects_in"`
	AspectsOut int    `json:"aspects_out"`
}

// DroppedAspects returns how many aspects the stage removed
func (r StageReport) DroppedAspects() int {
	return r.AspectsIn - r.AspectsOut
}

// RunStats is the accuracy of a single evaluation run
type RunStats struct {
	RunID    string  `json:"run_id"`
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
	Accuracy float64 `json:"accuracy"`
}

// CrossRunStats compares runs over the same puzzles in the same order
type CrossRunStats struct {
	Runs                     []RunStats `json:"runs"`                       // Sorted by run id
	Best                     RunStats   `json:"best"`                       // Highest accuracy, first run id on ties
	Average                  float64    `json:"average"`                    // Mean of per-run accuracies
	UnionCorrectCount        int        `json:"union_correct_count"`        // Indices correct in at least one run
	IntersectionCorrectCount int        `json:"intersection_correct_count"` // Indices correct in every run
}

// CategoryCount is the size of one agreement category
type CategoryCount struct {
	Category AgreementCategory `json:"category"`
	Count    int               `json:"count"`
	Percent  float64           `json:"percent"` // Share of matched prompts, 0-100
}

// AgreementStats summarizes human versus model correctness
type AgreementStats struct {
	Matched    int             `json:"matched"`
	Categories []CategoryCount `json:"categories"`          // Always all four, in reporting order
	Unmatched  []string        `json:"unmatched,omitempty"` // Human prompts with no model record
}

// Count returns the number of prompts in a category
func (s AgreementStats) Count(category AgreementCategory) int {
	for _, c := range s.Categories {
		if c.Category == category {
			return c.Count
		}
	}
	return 0
}
