// Package export renders generated quizzes to downloadable byte streams.
// Rendering is pure formatting; nothing here feeds back into generation or
// scoring.
package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Naman-sys/QuizForge/internal/quiz"
)

// Format selects the output rendering.
type Format string

const (
	FormatText Format = "text"
	FormatRTF  Format = "rtf"
	FormatPDF  Format = "pdf"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// Options controls what a rendering includes.
type Options struct {
	// WithKey appends the answer key (correct answers and explanations).
	WithKey bool
}

// ParseFormat maps a query-string value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "txt", "":
		return FormatText, nil
	case FormatRTF:
		return FormatRTF, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// ContentType returns the MIME type served for a format.
func (f Format) ContentType() string {
	switch f {
	case FormatRTF:
		return "application/rtf"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Extension returns the file extension for a format, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatRTF:
		return "rtf"
	case FormatPDF:
		return "pdf"
	default:
		return "txt"
	}
}

// Render produces the quiz in the requested format.
func Render(q *quiz.Quiz, format Format, opts Options) ([]byte, error) {
	switch format {
	case FormatText:
		return renderText(q, opts), nil
	case FormatRTF:
		return renderRTF(q, opts), nil
	case FormatPDF:
		return renderPDF(q, opts)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func kindLabel(k quiz.Kind) string {
	switch k {
	case quiz.KindMultipleChoice:
		return "Multiple Choice"
	case quiz.KindTrueFalse:
		return "True/False"
	case quiz.KindShortAnswer:
		return "Short Answer"
	}
	return string(k)
}

func title(q *quiz.Quiz) string {
	difficulty := q.Difficulty
	if difficulty == "" {
		difficulty = quiz.DifficultyMedium
	}
	return fmt.Sprintf("Quiz (%s difficulty, %d questions)", difficulty, len(q.Questions))
}
