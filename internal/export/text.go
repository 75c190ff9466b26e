package export

import (
	"fmt"
	"strings"

	"github.com/Naman-sys/QuizForge/internal/quiz"
)

func renderText(q *quiz.Quiz, opts Options) []byte {
	var b strings.Builder

	b.WriteString(title(q))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len(title(q))))
	b.WriteString("\n\n")

	for i, question := range q.Questions {
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, kindLabel(question.Kind), question.Prompt)
		for _, opt := range question.Options {
			fmt.Fprintf(&b, "   %s\n", opt)
		}
		b.WriteString("\n")
	}

	if opts.WithKey {
		b.WriteString("Answer Key\n----------\n")
		for i, question := range q.Questions {
			fmt.Fprintf(&b, "%d. %s", i+1, question.CorrectAnswer)
			if question.Explanation != "" {
				fmt.Fprintf(&b, " (%s)", question.Explanation)
			}
			b.WriteString("\n")
		}
	}

	return []byte(b.String())
}
