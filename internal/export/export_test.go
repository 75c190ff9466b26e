package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naman-sys/QuizForge/internal/quiz"
)

func exportQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		ID:         "q-1",
		Difficulty: quiz.DifficultyMedium,
		Questions: []quiz.Question{
			{
				Kind:          quiz.KindMultipleChoice,
				Prompt:        "Which pigment captures light?",
				Options:       []string{"A) Chlorophyll", "B) Keratin", "C) Melanin", "D) Hemoglobin"},
				CorrectAnswer: "A",
				Explanation:   "Chlorophyll absorbs light for photosynthesis.",
			},
			{
				Kind:          quiz.KindTrueFalse,
				Prompt:        "True or False: Plants capture light with chlorophyll.",
				CorrectAnswer: quiz.AnswerTrue,
			},
			{
				Kind:          quiz.KindShortAnswer,
				Prompt:        "Summarize the role of chlorophyll.",
				CorrectAnswer: "Chlorophyll captures light energy for photosynthesis.",
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{
		"":     FormatText,
		"text": FormatText,
		"txt":  FormatText,
		"TXT":  FormatText,
		"rtf":  FormatRTF,
		"pdf":  FormatPDF,
		" pdf": FormatPDF,
	} {
		got, err := ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseFormat("docx")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRenderTextContainsEveryPrompt(t *testing.T) {
	q := exportQuiz()

	out, err := Render(q, FormatText, Options{})
	require.NoError(t, err)
	text := string(out)

	for _, question := range q.Questions {
		assert.Contains(t, text, question.Prompt)
	}
	assert.Contains(t, text, "A) Chlorophyll")
	assert.NotContains(t, text, "Answer Key", "key omitted unless requested")
}

func TestRenderTextWithKey(t *testing.T) {
	out, err := Render(exportQuiz(), FormatText, Options{WithKey: true})
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "Answer Key")
	assert.Contains(t, text, "1. A")
	assert.Contains(t, text, "2. True")
	assert.Contains(t, text, "Chlorophyll absorbs light for photosynthesis.")
}

func TestRenderRTF(t *testing.T) {
	out, err := Render(exportQuiz(), FormatRTF, Options{WithKey: true})
	require.NoError(t, err)
	doc := string(out)

	assert.True(t, strings.HasPrefix(doc, `{\rtf1`))
	assert.True(t, strings.HasSuffix(doc, "}"))
	assert.Contains(t, doc, "Which pigment captures light?")
	assert.Contains(t, doc, "Answer Key")
}

func TestRTFEscape(t *testing.T) {
	assert.Equal(t, `a\{b\}c\\d`, rtfEscape(`a{b}c\d`))
	assert.Equal(t, `caf\u233?`, rtfEscape("café"))
	assert.Equal(t, "plain", rtfEscape("plain"))
}

func TestRenderPDF(t *testing.T) {
	out, err := Render(exportQuiz(), FormatPDF, Options{WithKey: true})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(out), "%PDF-"))
	assert.Greater(t, len(out), 500)
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render(exportQuiz(), Format("docx"), Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatMetadata(t *testing.T) {
	assert.Equal(t, "txt", FormatText.Extension())
	assert.Equal(t, "application/pdf", FormatPDF.ContentType())
	assert.Equal(t, "application/rtf", FormatRTF.ContentType())
	assert.Equal(t, "text/plain; charset=utf-8", FormatText.ContentType())
}
