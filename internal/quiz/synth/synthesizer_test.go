package synth

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naman-sys/QuizForge/internal/quiz"
)

func seeded(seed int64) *Synthesizer {
	return New(rand.New(rand.NewSource(seed)))
}

var (
	photoTerms     = []string{"Photosynthesis", "chlorophyll"}
	photoSentences = []string{
		"Photosynthesis converts light energy into chemical energy",
		"Plants use chlorophyll to capture light",
	}
)

func assertWellFormedMC(t *testing.T, q quiz.Question) {
	t.Helper()
	require.Equal(t, quiz.KindMultipleChoice, q.Kind)
	require.NotEmpty(t, q.Prompt)
	require.Len(t, q.Options, 4)

	labels := map[string]bool{}
	correctResolves := false
	for i, opt := range q.Options {
		label := quiz.OptionLabels[i]
		assert.True(t, strings.HasPrefix(opt, label+") "), "option %q should carry label %s", opt, label)
		labels[label] = true
		if label == q.CorrectAnswer {
			correctResolves = true
		}
	}
	assert.Len(t, labels, 4, "labels must be distinct")
	assert.True(t, correctResolves, "correct label %q must index an option", q.CorrectAnswer)
}

func TestSynthesizeMultipleChoiceStructure(t *testing.T) {
	s := seeded(1)

	questions := s.Synthesize(quiz.SynthRequest{
		Terms:      photoTerms,
		Sentences:  photoSentences,
		Difficulty: quiz.DifficultyMedium,
		Counts:     quiz.Counts{MultipleChoice: 2},
		Kinds:      []quiz.Kind{quiz.KindMultipleChoice},
	})

	require.Len(t, questions, 2)
	for _, q := range questions {
		assertWellFormedMC(t, q)
	}
	assert.Contains(t, questions[0].Prompt, "Photosynthesis")
	assert.Contains(t, questions[1].Prompt, "chlorophyll")
}

func TestSynthesizeTopsUpWithGenericTemplate(t *testing.T) {
	s := seeded(2)

	questions := s.Synthesize(quiz.SynthRequest{
		Terms:      []string{"Photosynthesis"},
		Difficulty: quiz.DifficultyEasy,
		Counts:     quiz.Counts{MultipleChoice: 3},
		Kinds:      []quiz.Kind{quiz.KindMultipleChoice},
	})

	require.Len(t, questions, 3, "top-up should reach the requested count")
	for _, q := range questions {
		assertWellFormedMC(t, q)
		assert.Contains(t, q.Prompt, "Photosynthesis")
	}
	assert.NotEqual(t, questions[0].Prompt, questions[1].Prompt,
		"top-up questions use a more generic template")
}

func TestSynthesizeZeroTermsZeroMC(t *testing.T) {
	s := seeded(3)

	questions := s.Synthesize(quiz.SynthRequest{
		Sentences:  photoSentences,
		Difficulty: quiz.DifficultyEasy,
		Counts:     quiz.Counts{MultipleChoice: 5},
		Kinds:      []quiz.Kind{quiz.KindMultipleChoice},
	})
	assert.Empty(t, questions)
}

func TestSynthesizeTrueFalseFromSentences(t *testing.T) {
	s := seeded(4)

	questions := s.Synthesize(quiz.SynthRequest{
		Terms:      photoTerms,
		Sentences:  photoSentences,
		Difficulty: quiz.DifficultyMedium,
		Counts:     quiz.Counts{TrueFalse: 1},
		Kinds:      []quiz.Kind{quiz.KindTrueFalse},
	})

	require.Len(t, questions, 1)
	q := questions[0]
	assert.Equal(t, quiz.KindTrueFalse, q.Kind)
	assert.Equal(t, quiz.AnswerTrue, q.CorrectAnswer)
	assert.Equal(t, "True or False: "+photoSentences[0], q.Prompt)
}

func TestSynthesizeTrueFalseTruncatesLongSentences(t *testing.T) {
	s := seeded(5)
	long := strings.Repeat("photosynthesis is remarkable ", 8) // > 100 chars

	questions := s.Synthesize(quiz.SynthRequest{
		Sentences:  []string{long},
		Difficulty: quiz.DifficultyEasy,
		Counts:     quiz.Counts{TrueFalse: 1},
		Kinds:      []quiz.Kind{quiz.KindTrueFalse},
	})

	require.Len(t, questions, 1)
	prompt := strings.TrimPrefix(questions[0].Prompt, "True or False: ")
	assert.True(t, strings.HasSuffix(prompt, "..."))
	assert.LessOrEqual(t, len(prompt), maxStatementChars+3)
}

func TestSynthesizeHardTrueFalseAssertsTermImportance(t *testing.T) {
	s := seeded(6)

	questions := s.Synthesize(quiz.SynthRequest{
		Terms:      []string{"Photosynthesis"},
		Sentences:  photoSentences,
		Difficulty: quiz.DifficultyHard,
		Counts:     quiz.Counts{TrueFalse: 2},
		Kinds:      []quiz.Kind{quiz.KindTrueFalse},
	})

	require.Len(t, questions, 2)
	for _, q := range questions {
		assert.Contains(t, q.Prompt, "Photosynthesis")
		assert.Contains(t, q.Prompt, "significant")
		assert.Equal(t, quiz.AnswerTrue, q.CorrectAnswer)
	}
}

func TestSynthesizeOnlyRequestedKinds(t *testing.T) {
	s := seeded(7)

	questions := s.Synthesize(quiz.SynthRequest{
		Terms:      photoTerms,
		Sentences:  photoSentences,
		Difficulty: quiz.DifficultyMedium,
		Counts:     quiz.Counts{MultipleChoice: 2, TrueFalse: 2, ShortAnswer: 2},
		Kinds:      []quiz.Kind{quiz.KindTrueFalse},
	})

	require.NotEmpty(t, questions)
	for _, q := range questions {
		assert.Equal(t, quiz.KindTrueFalse, q.Kind)
	}
}

func TestSynthesizeShortAnswer(t *testing.T) {
	s := seeded(8)

	questions := s.Synthesize(quiz.SynthRequest{
		Terms:  []string{"Photosynthesis"},
		Counts: quiz.Counts{ShortAnswer: 1},
		Kinds:  []quiz.Kind{quiz.KindShortAnswer},
	})

	require.Len(t, questions, 1)
	q := questions[0]
	assert.Equal(t, quiz.KindShortAnswer, q.Kind)
	assert.Contains(t, q.Prompt, "Photosynthesis")
	assert.NotEmpty(t, q.CorrectAnswer, "reference answer must be present")
}

func TestSynthesizeSeededReproducibility(t *testing.T) {
	req := quiz.SynthRequest{
		Terms:      photoTerms,
		Sentences:  photoSentences,
		Difficulty: quiz.DifficultyHard,
		Counts:     quiz.Counts{MultipleChoice: 3, TrueFalse: 2},
		Kinds:      []quiz.Kind{quiz.KindMultipleChoice, quiz.KindTrueFalse},
	}

	a := seeded(42).Synthesize(req)
	b := seeded(42).Synthesize(req)

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Prompt, b[i].Prompt)
		assert.Equal(t, a[i].Options, b[i].Options)
		assert.Equal(t, a[i].CorrectAnswer, b[i].CorrectAnswer)
	}
}

func TestSynthesizeTruncationKeepsValidUTF8(t *testing.T) {
	s := seeded(10)
	long := strings.Repeat("光", 40) // 120 bytes of three-byte runes

	questions := s.Synthesize(quiz.SynthRequest{
		Sentences:  []string{long},
		Difficulty: quiz.DifficultyEasy,
		Counts:     quiz.Counts{TrueFalse: 1},
		Kinds:      []quiz.Kind{quiz.KindTrueFalse},
	})

	require.Len(t, questions, 1)
	prompt := questions[0].Prompt
	assert.True(t, utf8.ValidString(prompt), "truncation must not split a rune: %q", prompt)
	assert.True(t, strings.HasSuffix(prompt, "..."))
	assert.LessOrEqual(t, len(strings.TrimPrefix(prompt, "True or False: ")), maxStatementChars+3)
}

func TestSynthesizePhotosynthesisExample(t *testing.T) {
	s := seeded(9)

	questions := s.Synthesize(quiz.SynthRequest{
		Terms:      photoTerms,
		Sentences:  photoSentences,
		Difficulty: quiz.DifficultyMedium,
		Counts:     quiz.Counts{MultipleChoice: 1, TrueFalse: 1},
		Kinds:      []quiz.Kind{quiz.KindMultipleChoice, quiz.KindTrueFalse},
	})

	require.Len(t, questions, 2)
	mc, tf := questions[0], questions[1]

	assertWellFormedMC(t, mc)
	assert.True(t,
		strings.Contains(mc.Prompt, "Photosynthesis") || strings.Contains(mc.Prompt, "chlorophyll"))

	assert.Equal(t, quiz.KindTrueFalse, tf.Kind)
	assert.Equal(t, quiz.AnswerTrue, tf.CorrectAnswer)
	stmt := strings.TrimPrefix(tf.Prompt, "True or False: ")
	matched := false
	for _, sent := range photoSentences {
		if strings.HasPrefix(sent, strings.TrimSuffix(stmt, "...")) {
			matched = true
		}
	}
	assert.True(t, matched, "true/false prompt must come from a source sentence")
}
