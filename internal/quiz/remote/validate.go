package remote

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Naman-sys/QuizForge/internal/quiz"
)

type payload struct {
	MultipleChoice []payloadQuestion `json:"multiple_choice"`
	TrueFalse      []payloadQuestion `json:"true_false"`
	ShortAnswer    []payloadQuestion `json:"short_answer"`
}

type payloadQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// decodePayload extracts the questions object from a completion.
func decodePayload(completion string) (payload, error) {
	var p payload
	if err := decodeInto(completion, &p); err != nil {
		return payload{}, err
	}
	return p, nil
}

// decodeInto extracts a JSON object from a completion into target,
// tolerating markdown code fences and leading/trailing prose around the
// object.
func decodeInto(completion string, target interface{}) error {
	text := stripFences(completion)

	// Models sometimes wrap the object in prose; keep the outermost object.
	if start := strings.Index(text, "{"); start >= 0 {
		if end := strings.LastIndex(text, "}"); end > start {
			text = text[start : end+1]
		}
	}

	if err := json.Unmarshal([]byte(text), target); err != nil {
		return fmt.Errorf("parse completion JSON: %w", err)
	}
	return nil
}

func stripFences(text string) string {
	text = strings.TrimSpace(text)
	for _, fence := range []string{"```json", "```"} {
		if idx := strings.Index(text, fence); idx >= 0 {
			rest := text[idx+len(fence):]
			if end := strings.Index(rest, "```"); end >= 0 {
				return strings.TrimSpace(rest[:end])
			}
			return strings.TrimSpace(rest)
		}
	}
	return text
}

// validatePayload checks every returned question against the schema, drops
// invalid entries silently, and truncates each kind to its requested count.
// Kinds the caller did not request are discarded outright.
func validatePayload(p payload, counts quiz.Counts, kinds []quiz.Kind) quiz.RemoteResult {
	requested := make(map[quiz.Kind]bool, len(kinds))
	for _, k := range kinds {
		requested[k] = true
	}

	var result quiz.RemoteResult
	if requested[quiz.KindMultipleChoice] {
		for _, pq := range p.MultipleChoice {
			if len(result.MultipleChoice) == counts.MultipleChoice {
				break
			}
			if q, ok := validateMultipleChoice(pq); ok {
				result.MultipleChoice = append(result.MultipleChoice, q)
			}
		}
	}
	if requested[quiz.KindTrueFalse] {
		for _, pq := range p.TrueFalse {
			if len(result.TrueFalse) == counts.TrueFalse {
				break
			}
			if q, ok := validateTrueFalse(pq); ok {
				result.TrueFalse = append(result.TrueFalse, q)
			}
		}
	}
	if requested[quiz.KindShortAnswer] {
		for _, pq := range p.ShortAnswer {
			if len(result.ShortAnswer) == counts.ShortAnswer {
				break
			}
			if q, ok := validateShortAnswer(pq); ok {
				result.ShortAnswer = append(result.ShortAnswer, q)
			}
		}
	}
	return result
}

// validateMultipleChoice accepts an entry with exactly 4 options whose
// correct answer resolves to one of them, given either as a bare letter or
// as the fully-labeled option string. The stored answer is always the bare
// label.
func validateMultipleChoice(pq payloadQuestion) (quiz.Question, bool) {
	prompt := strings.TrimSpace(pq.Question)
	if prompt == "" || len(pq.Options) != 4 {
		return quiz.Question{}, false
	}

	correct := strings.TrimSpace(pq.CorrectAnswer)
	label := ""
	if isBareLabel(correct) {
		for _, opt := range pq.Options {
			if strings.HasPrefix(opt, correct+")") {
				label = correct
				break
			}
		}
	} else {
		for _, opt := range pq.Options {
			if opt == correct {
				label = optionLabel(opt)
				break
			}
		}
	}
	if label == "" {
		return quiz.Question{}, false
	}

	return quiz.Question{
		ID:            uuid.NewString(),
		Kind:          quiz.KindMultipleChoice,
		Prompt:        prompt,
		Options:       pq.Options,
		CorrectAnswer: label,
		Explanation:   strings.TrimSpace(pq.Explanation),
	}, true
}

func validateTrueFalse(pq payloadQuestion) (quiz.Question, bool) {
	prompt := strings.TrimSpace(pq.Question)
	if prompt == "" {
		return quiz.Question{}, false
	}

	var canonical string
	switch strings.ToLower(strings.TrimSpace(pq.CorrectAnswer)) {
	case "true":
		canonical = quiz.AnswerTrue
	case "false":
		canonical = quiz.AnswerFalse
	default:
		return quiz.Question{}, false
	}

	return quiz.Question{
		ID:            uuid.NewString(),
		Kind:          quiz.KindTrueFalse,
		Prompt:        prompt,
		CorrectAnswer: canonical,
		Explanation:   strings.TrimSpace(pq.Explanation),
	}, true
}

func validateShortAnswer(pq payloadQuestion) (quiz.Question, bool) {
	prompt := strings.TrimSpace(pq.Question)
	reference := strings.TrimSpace(pq.CorrectAnswer)
	if prompt == "" || reference == "" {
		return quiz.Question{}, false
	}

	return quiz.Question{
		ID:            uuid.NewString(),
		Kind:          quiz.KindShortAnswer,
		Prompt:        prompt,
		CorrectAnswer: reference,
		Explanation:   strings.TrimSpace(pq.Explanation),
	}, true
}

func isBareLabel(s string) bool {
	if len(s) != 1 {
		return false
	}
	for _, label := range quiz.OptionLabels {
		if s == label {
			return true
		}
	}
	return false
}

// optionLabel pulls the leading "X)" label out of a rendered option.
func optionLabel(option string) string {
	for _, label := range quiz.OptionLabels {
		if strings.HasPrefix(option, label+")") {
			return label
		}
	}
	return ""
}
