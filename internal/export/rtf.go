package export

import (
	"fmt"
	"strings"

	"github.com/Naman-sys/QuizForge/internal/quiz"
)

// renderRTF emits a minimal RTF 1.x document that word processors open
// directly. Only the control words actually needed are used.
func renderRTF(q *quiz.Quiz, opts Options) []byte {
	var b strings.Builder

	b.WriteString(`{\rtf1\ansi\deff0{\fonttbl{\f0 Helvetica;}}\f0\fs22` + "\n")
	fmt.Fprintf(&b, `{\b\fs28 %s}\par\par`+"\n", rtfEscape(title(q)))

	for i, question := range q.Questions {
		fmt.Fprintf(&b, `{\b %d. [%s]} %s\par`+"\n", i+1, kindLabel(question.Kind), rtfEscape(question.Prompt))
		for _, opt := range question.Options {
			fmt.Fprintf(&b, `\tab %s\par`+"\n", rtfEscape(opt))
		}
		b.WriteString(`\par` + "\n")
	}

	if opts.WithKey {
		b.WriteString(`{\b Answer Key}\par` + "\n")
		for i, question := range q.Questions {
			fmt.Fprintf(&b, `%d. %s`, i+1, rtfEscape(question.CorrectAnswer))
			if question.Explanation != "" {
				fmt.Fprintf(&b, ` (%s)`, rtfEscape(question.Explanation))
			}
			b.WriteString(`\par` + "\n")
		}
	}

	b.WriteString("}")
	return []byte(b.String())
}

// rtfEscape protects the three RTF syntax characters and encodes non-ASCII
// runes as \uN escapes.
func rtfEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\\' || r == '{' || r == '}':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r > 0x7f:
			fmt.Fprintf(&b, `\u%d?`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
