package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/Naman-sys/QuizForge/internal/quiz"
)

func renderPDF(q *quiz.Quiz, opts Options) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	translate := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, translate(title(q)), "", "L", false)
	pdf.Ln(4)

	for i, question := range q.Questions {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, translate(fmt.Sprintf("%d. [%s] %s", i+1, kindLabel(question.Kind), question.Prompt)), "", "L", false)

		pdf.SetFont("Helvetica", "", 11)
		for _, opt := range question.Options {
			pdf.MultiCell(0, 6, translate("    "+opt), "", "L", false)
		}
		pdf.Ln(3)
	}

	if opts.WithKey {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.MultiCell(0, 7, "Answer Key", "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
		for i, question := range q.Questions {
			line := fmt.Sprintf("%d. %s", i+1, question.CorrectAnswer)
			if question.Explanation != "" {
				line += fmt.Sprintf(" (%s)", question.Explanation)
			}
			pdf.MultiCell(0, 6, translate(line), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
