package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naman-sys/QuizForge/internal/quiz"
)

type stubEvaluator struct {
	verdict bool
	err     error
	calls   int
}

func (s *stubEvaluator) Evaluate(_ context.Context, _ quiz.Question, _ string) (bool, error) {
	s.calls++
	return s.verdict, s.err
}

func sampleQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		ID:         "q-1",
		Difficulty: quiz.DifficultyMedium,
		Questions: []quiz.Question{
			{
				Kind:          quiz.KindMultipleChoice,
				Prompt:        "Which pigment captures light?",
				Options:       []string{"A) Chlorophyll", "B) Keratin", "C) Melanin", "D) Hemoglobin"},
				CorrectAnswer: "A",
			},
			{
				Kind:          quiz.KindTrueFalse,
				Prompt:        "True or False: Plants use chlorophyll to capture light.",
				CorrectAnswer: quiz.AnswerTrue,
			},
			{
				Kind:          quiz.KindShortAnswer,
				Prompt:        "Summarize the main points discussed in the content about photosynthesis.",
				CorrectAnswer: "Photosynthesis converts light energy into chemical energy",
			},
		},
	}
}

func TestScoreAllCorrect(t *testing.T) {
	scorer := NewScorer(nil, zerolog.Nop())
	q := sampleQuiz()

	answers := quiz.AnswerSet{}
	for i, question := range q.Questions {
		answers[i] = question.CorrectAnswer
	}

	result, err := scorer.Score(context.Background(), q, answers)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Correct)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 100.0, result.Percentage)
	assert.True(t, result.ShortAnswerResults[2], "exact reference answer must pass the overlap rule")
}

func TestScoreNoAnswers(t *testing.T) {
	scorer := NewScorer(nil, zerolog.Nop())

	result, err := scorer.Score(context.Background(), sampleQuiz(), quiz.AnswerSet{})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Correct)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 0.0, result.Percentage)
	assert.False(t, result.ShortAnswerResults[2])
}

func TestScoreMultipleChoiceLabelCompare(t *testing.T) {
	scorer := NewScorer(nil, zerolog.Nop())
	q := sampleQuiz()

	result, err := scorer.Score(context.Background(), q, quiz.AnswerSet{0: "B"})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Correct)

	result, err = scorer.Score(context.Background(), q, quiz.AnswerSet{0: "A"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Correct)
}

func TestScoreEmptyQuiz(t *testing.T) {
	scorer := NewScorer(nil, zerolog.Nop())

	_, err := scorer.Score(context.Background(), &quiz.Quiz{ID: "empty"}, quiz.AnswerSet{})
	assert.ErrorIs(t, err, quiz.ErrEmptyQuiz)
}

func TestShortAnswerOverlap(t *testing.T) {
	scorer := NewScorer(nil, zerolog.Nop())
	question := quiz.Question{
		Kind:          quiz.KindShortAnswer,
		CorrectAnswer: "plants convert light energy into chemical energy",
	}

	cases := []struct {
		name       string
		submission string
		want       bool
	}{
		// key holds 6 distinct words, so 2 matches clear the 30% bar
		{"exact answer", "plants convert light energy into chemical energy", true},
		{"case insensitive", "PLANTS CONVERT LIGHT things", true},
		{"partial above threshold", "light energy from plants", true},
		{"below threshold", "light only", false},
		{"no shared words", "mitochondria produce power", false},
		{"empty submission", "", false},
		{"whitespace submission", "   ", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := scorer.gradeShortAnswer(context.Background(), question, tc.submission)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestShortAnswerEvaluatorVerdictWins(t *testing.T) {
	// Submission fails the overlap rule, but the evaluator accepts it.
	eval := &stubEvaluator{verdict: true}
	scorer := NewScorer(eval, zerolog.Nop())

	q := sampleQuiz()
	result, err := scorer.Score(context.Background(), q, quiz.AnswerSet{2: "turning sunlight into food"})
	require.NoError(t, err)

	assert.Equal(t, 1, eval.calls)
	assert.True(t, result.ShortAnswerResults[2])
	assert.Equal(t, 1, result.Correct)
}

func TestShortAnswerEvaluatorRejectionWins(t *testing.T) {
	// Submission passes the overlap rule, but the evaluator rejects it.
	eval := &stubEvaluator{verdict: false}
	scorer := NewScorer(eval, zerolog.Nop())

	q := sampleQuiz()
	answer := q.Questions[2].CorrectAnswer
	result, err := scorer.Score(context.Background(), q, quiz.AnswerSet{2: answer})
	require.NoError(t, err)

	assert.Equal(t, 1, eval.calls)
	assert.False(t, result.ShortAnswerResults[2])
}

func TestShortAnswerEvaluatorErrorFallsBack(t *testing.T) {
	eval := &stubEvaluator{err: errors.New("service unavailable")}
	scorer := NewScorer(eval, zerolog.Nop())

	q := sampleQuiz()
	answer := q.Questions[2].CorrectAnswer
	result, err := scorer.Score(context.Background(), q, quiz.AnswerSet{2: answer})
	require.NoError(t, err)

	assert.Equal(t, 1, eval.calls)
	assert.True(t, result.ShortAnswerResults[2], "overlap rule decides when the evaluator fails")
}

func TestShortAnswerEvaluatorSkippedForEmptySubmission(t *testing.T) {
	eval := &stubEvaluator{verdict: true}
	scorer := NewScorer(eval, zerolog.Nop())

	q := sampleQuiz()
	_, err := scorer.Score(context.Background(), q, quiz.AnswerSet{2: "  "})
	require.NoError(t, err)

	assert.Equal(t, 0, eval.calls, "nothing to evaluate for a blank submission")
}

func TestOverlapFraction(t *testing.T) {
	assert.InDelta(t, 1.0, overlap("alpha beta", "beta alpha gamma"), 1e-9)
	assert.InDelta(t, 0.5, overlap("alpha beta", "beta"), 1e-9)
	assert.InDelta(t, 0.0, overlap("alpha beta", "gamma"), 1e-9)
	assert.InDelta(t, 0.0, overlap("", "anything"), 1e-9)
	// repeated key words count once
	assert.InDelta(t, 1.0, overlap("alpha alpha", "alpha"), 1e-9)
}
