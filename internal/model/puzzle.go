package model

// ClueEntry is a curated clue record produced by human annotation
type ClueEntry struct {
	Answer string   `json:"answer"`
	Clues  []string `json:"clues"` // clue1..clueN in annotation order
}

// Puzzle is a single prompt with its expected answer
type Puzzle struct {
	Puzzle string `json:"puzzle"`
	Answer string `json:"answer"`
}

// PermutationCount is the number of orderings of three clues
const PermutationCount = 6
