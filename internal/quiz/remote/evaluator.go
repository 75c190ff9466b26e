package remote

import (
	"context"
	"fmt"
	"strings"

	"github.com/Naman-sys/QuizForge/internal/quiz"
)

type verdictPayload struct {
	IsCorrect bool   `json:"is_correct"`
	Reasoning string `json:"reasoning"`
}

// Evaluate asks the completion service to judge a free-text submission
// against the reference answer. An error means no verdict was reached; the
// scorer then falls back to lexical overlap.
func (g *Generator) Evaluate(ctx context.Context, question quiz.Question, submission string) (bool, error) {
	if g.config.BaseURL == "" {
		return false, &quiz.RemoteGenerationError{Reason: "generator endpoint not configured"}
	}

	completion, err := g.complete(ctx, buildEvaluationPrompt(question, submission))
	if err != nil {
		return false, err
	}

	var verdict verdictPayload
	if err := decodeInto(completion, &verdict); err != nil {
		return false, &quiz.RemoteGenerationError{Reason: "unusable evaluation payload", Err: err}
	}

	g.logger.Debug().Bool("is_correct", verdict.IsCorrect).Msg("remote evaluation verdict")
	return verdict.IsCorrect, nil
}

func buildEvaluationPrompt(question quiz.Question, submission string) string {
	var b strings.Builder
	b.WriteString("Evaluate if the user's answer is correct or acceptable.\n\n")
	fmt.Fprintf(&b, "QUESTION: %s\n", question.Prompt)
	fmt.Fprintf(&b, "EXPECTED ANSWER: %s\n", question.CorrectAnswer)
	fmt.Fprintf(&b, "USER'S ANSWER: %s\n\n", submission)
	b.WriteString(`Respond with JSON: {"is_correct": true/false, "reasoning": "explanation"}` + "\n\n")
	b.WriteString("Be lenient - if the answer contains key concepts, mark as correct even if wording differs.")
	return b.String()
}
