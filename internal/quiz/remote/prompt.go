package remote

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Naman-sys/QuizForge/internal/quiz"
)

type difficultyGuideline struct {
	description string
	focus       string
	complexity  string
}

var difficultyGuidelines = map[string]difficultyGuideline{
	quiz.DifficultyEasy: {
		description: "Basic recall and recognition questions with simple vocabulary",
		focus:       "Factual information, definitions, and straightforward concepts",
		complexity:  "Elementary level understanding",
	},
	quiz.DifficultyMedium: {
		description: "Questions requiring understanding, application, and basic analysis",
		focus:       "Connecting concepts, explaining relationships, and applying knowledge",
		complexity:  "High school to undergraduate level",
	},
	quiz.DifficultyHard: {
		description: "Complex analysis, synthesis, evaluation, and critical thinking",
		focus:       "Advanced reasoning, comparing theories, and drawing conclusions",
		complexity:  "Advanced undergraduate to graduate level",
	},
}

// buildPrompt renders the structured instruction block the completion
// service receives. Content is truncated to keep the prompt inside the
// remote model's context budget.
func buildPrompt(req quiz.RemoteRequest, maxContentChars int) string {
	content := req.Text
	if len(content) > maxContentChars {
		cut := maxContentChars
		for cut > 0 && !utf8.RuneStart(content[cut]) {
			cut--
		}
		content = content[:cut] + "..."
	}

	guidelines, ok := difficultyGuidelines[req.Difficulty]
	if !ok {
		guidelines = difficultyGuidelines[quiz.DifficultyMedium]
	}

	kinds := make(map[quiz.Kind]bool, len(req.Kinds))
	for _, k := range req.Kinds {
		kinds[k] = true
	}

	var b strings.Builder
	b.WriteString("You are an expert educational quiz creator. Create a ")
	b.WriteString(req.Difficulty)
	b.WriteString(" level quiz based on the provided content.\n\n")

	b.WriteString("CONTENT TO ANALYZE:\n")
	b.WriteString(content)
	b.WriteString("\n\nQUIZ REQUIREMENTS:\n")
	if kinds[quiz.KindMultipleChoice] {
		fmt.Fprintf(&b, "- Generate %d multiple choice questions\n", req.Counts.MultipleChoice)
	}
	if kinds[quiz.KindTrueFalse] {
		fmt.Fprintf(&b, "- Generate %d true/false questions\n", req.Counts.TrueFalse)
	}
	if kinds[quiz.KindShortAnswer] {
		fmt.Fprintf(&b, "- Generate %d short answer questions\n", req.Counts.ShortAnswer)
	}
	fmt.Fprintf(&b, "- Difficulty Level: %s\n", strings.ToUpper(req.Difficulty))
	fmt.Fprintf(&b, "- %s\n", guidelines.description)
	fmt.Fprintf(&b, "- Focus on: %s\n", guidelines.focus)
	fmt.Fprintf(&b, "- Complexity: %s\n", guidelines.complexity)

	b.WriteString(`
FORMATTING INSTRUCTIONS:
- Each multiple choice question must have exactly 4 options (A, B, C, D)
- Only ONE option should be correct
- True/false questions should be clear statements that are definitively true or false
- Short answer questions need a brief reference answer (1-3 sentences)
- Include helpful explanations for learning
- Base ALL questions strictly on the provided content
- IMPORTANT: Response must be valid JSON only, no extra text or markdown formatting

OUTPUT FORMAT (JSON ONLY):
{
    "multiple_choice": [
        {
            "question": "Clear, well-formed question?",
            "options": ["A) First option", "B) Second option", "C) Third option", "D) Fourth option"],
            "correct_answer": "A",
            "explanation": "Why this answer is correct"
        }
    ],
    "true_false": [
        {
            "question": "Clear statement that can be definitively judged.",
            "correct_answer": "True",
            "explanation": "Why this statement is true/false"
        }
    ],
    "short_answer": [
        {
            "question": "Question requiring a brief explanatory answer.",
            "correct_answer": "Reference answer in 1-3 sentences.",
            "explanation": "What a good answer should cover"
        }
    ]
}

Return ONLY the JSON, no other text.`)

	return b.String()
}
