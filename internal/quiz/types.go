package quiz

import (
	"time"
)

// Difficulty tiers.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Kind discriminates question variants.
type Kind string

const (
	KindMultipleChoice Kind = "multiple_choice"
	KindTrueFalse      Kind = "true_false"
	KindShortAnswer    Kind = "short_answer"
)

// Canonical true/false answer strings. Scorer and handlers share this
// convention; other casings are normalized when an answer is saved.
const (
	AnswerTrue  = "True"
	AnswerFalse = "False"
)

// Option labels for multiple-choice questions, in rendering order.
var OptionLabels = [4]string{"A", "B", "C", "D"}

// Question is the normalized question payload. Kind-specific fields:
// multiple-choice fills Options (4 entries, label prefix baked in) and
// CorrectAnswer holds the bare label; true/false leaves Options nil and
// CorrectAnswer is "True" or "False"; short-answer stores the reference
// answer text in CorrectAnswer.
type Question struct {
	ID            string   `json:"id"`
	Kind          Kind     `json:"kind"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"` // server-side only
	Explanation   string   `json:"explanation,omitempty"`
}

// Counts carries the requested number of questions per kind.
type Counts struct {
	MultipleChoice int `json:"multiple_choice"`
	TrueFalse      int `json:"true_false"`
	ShortAnswer    int `json:"short_answer"`
}

// Total sums only the kinds present in kinds.
func (c Counts) Total(kinds []Kind) int {
	total := 0
	for _, k := range kinds {
		total += c.For(k)
	}
	return total
}

// For returns the requested count for one kind.
func (c Counts) For(k Kind) int {
	switch k {
	case KindMultipleChoice:
		return c.MultipleChoice
	case KindTrueFalse:
		return c.TrueFalse
	case KindShortAnswer:
		return c.ShortAnswer
	}
	return 0
}

// Quiz is an ordered sequence of questions plus the parameters that
// produced it. Difficulty and Requested are traceability fields; nothing
// downstream enforces them.
type Quiz struct {
	ID         string     `json:"id"`
	Difficulty string     `json:"difficulty"`
	Requested  Counts     `json:"requested"`
	Questions  []Question `json:"questions"`
	Source     string     `json:"source"` // "remote", "local" or "mixed"
	CreatedAt  time.Time  `json:"created_at"`
}

// OfKind returns the sub-sequence of questions with the given kind,
// preserving quiz order.
func (q *Quiz) OfKind(kind Kind) []Question {
	var out []Question
	for _, question := range q.Questions {
		if question.Kind == kind {
			out = append(out, question)
		}
	}
	return out
}

// MultipleChoice returns the multiple-choice sub-sequence.
func (q *Quiz) MultipleChoice() []Question { return q.OfKind(KindMultipleChoice) }

// TrueFalse returns the true/false sub-sequence.
func (q *Quiz) TrueFalse() []Question { return q.OfKind(KindTrueFalse) }

// ShortAnswer returns the short-answer sub-sequence.
func (q *Quiz) ShortAnswer() []Question { return q.OfKind(KindShortAnswer) }

// AnswerSet maps 0-based question index to the submitted answer. Partial by
// design: unanswered questions simply have no entry.
type AnswerSet map[int]string

// ScoreResult is computed once per quiz completion and immutable afterward.
type ScoreResult struct {
	Correct            int          `json:"correct"`
	Total              int          `json:"total"`
	Percentage         float64      `json:"percentage"`
	ShortAnswerResults map[int]bool `json:"short_answer_results,omitempty"`
}
