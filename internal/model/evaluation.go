package model

// EvaluationRecord is one scored answer from a model run
type EvaluationRecord struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"` // Expected answer
	Result string `json:"result"` // Raw model output
}

// HumanRecord is one human judgment of a puzzle
type HumanRecord struct {
	Prompt  string `json:"prompt"`
	Correct string `json:"correct"` // "agree", "yes" or anything else
}

// AgreementCategory classifies a joined human/model pair
type AgreementCategory string

const (
	CategoryBothCorrect      AgreementCategory = "both_correct"
	CategoryModelOnlyCorrect AgreementCategory = "model_only_correct"
	CategoryHumanOnlyCorrect AgreementCategory = "human_only_correct"
	CategoryBothWrong        AgreementCategory = "both_wrong"
)

// AgreementCategories lists the categories in reporting order
func AgreementCategories() []AgreementCategory {
	return []AgreementCategory{
		CategoryBothCorrect,
		CategoryModelOnlyCorrect,
		CategoryHumanOnlyCorrect,
		CategoryBothWrong,
	}
}
