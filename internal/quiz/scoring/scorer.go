package scoring

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Naman-sys/QuizForge/internal/quiz"
)

// overlapThreshold is the fraction of answer-key words that must appear
// in a short-answer submission for it to count as correct.
const overlapThreshold = 0.3

// ShortAnswerEvaluator judges a free-text submission against the expected
// answer. Implementations may call out to a generative service; a returned
// error means no verdict was reached and lexical overlap decides instead.
type ShortAnswerEvaluator interface {
	Evaluate(ctx context.Context, question quiz.Question, submission string) (bool, error)
}

// Scorer grades answer sets against a quiz.
type Scorer struct {
	evaluator ShortAnswerEvaluator
	logger    zerolog.Logger
}

func NewScorer(evaluator ShortAnswerEvaluator, logger zerolog.Logger) *Scorer {
	return &Scorer{
		evaluator: evaluator,
		logger:    logger.With().Str("component", "scorer").Logger(),
	}
}

// Score grades every question in the quiz against the submitted answers.
// Questions with no submission count as incorrect. Returns
// quiz.ErrEmptyQuiz for a quiz with no questions.
func (s *Scorer) Score(ctx context.Context, q *quiz.Quiz, answers quiz.AnswerSet) (*quiz.ScoreResult, error) {
	total := len(q.Questions)
	if total == 0 {
		return nil, quiz.ErrEmptyQuiz
	}

	result := &quiz.ScoreResult{
		Total:              total,
		ShortAnswerResults: make(map[int]bool),
	}

	for i, question := range q.Questions {
		submission, answered := answers[i]

		var correct bool
		switch question.Kind {
		case quiz.KindShortAnswer:
			correct = answered && s.gradeShortAnswer(ctx, question, submission)
			result.ShortAnswerResults[i] = correct
		default:
			correct = answered && submission == question.CorrectAnswer
		}

		if correct {
			result.Correct++
		}
	}

	result.Percentage = float64(result.Correct) / float64(total) * 100
	return result, nil
}

func (s *Scorer) gradeShortAnswer(ctx context.Context, question quiz.Question, submission string) bool {
	if strings.TrimSpace(submission) == "" {
		return false
	}

	if s.evaluator != nil {
		verdict, err := s.evaluator.Evaluate(ctx, question, submission)
		if err == nil {
			return verdict
		}
		s.logger.Warn().Err(err).Msg("short answer evaluation failed, falling back to overlap")
	}

	return overlap(question.CorrectAnswer, submission) >= overlapThreshold
}

// overlap reports the fraction of distinct words in the key that also
// appear in the submission, case-insensitively.
func overlap(key, submission string) float64 {
	keyWords := strings.Fields(strings.ToLower(key))
	if len(keyWords) == 0 {
		return 0
	}

	submitted := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(submission)) {
		submitted[w] = struct{}{}
	}

	seen := make(map[string]struct{})
	matched := 0
	for _, w := range keyWords {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		if _, ok := submitted[w]; ok {
			matched++
		}
	}

	return float64(matched) / float64(len(seen))
}
