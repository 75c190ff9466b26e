package synth

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Naman-sys/QuizForge/internal/quiz"
)

// Statements longer than this are truncated before becoming true/false
// prompts.
const maxStatementChars = 100

// Synthesizer builds quiz questions from extracted terms and sentences
// without any external service. Output structure is deterministic; option
// order and hard-tier term picks come from the injected random source, so a
// seeded source yields reproducible quizzes.
type Synthesizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a synthesizer. A nil rng gets a time-seeded source.
func New(rng *rand.Rand) *Synthesizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Synthesizer{rng: rng}
}

// Synthesize produces questions for every requested kind, in multiple-choice,
// true/false, short-answer order. Kinds absent from req.Kinds are never
// produced. Zero qualifying terms or sentences yield zero questions of the
// dependent kind rather than an error.
func (s *Synthesizer) Synthesize(req quiz.SynthRequest) []quiz.Question {
	s.mu.Lock()
	defer s.mu.Unlock()

	kinds := make(map[quiz.Kind]bool, len(req.Kinds))
	for _, k := range req.Kinds {
		kinds[k] = true
	}

	var questions []quiz.Question
	if kinds[quiz.KindMultipleChoice] {
		questions = append(questions, s.multipleChoice(req.Terms, req.Difficulty, req.Counts.MultipleChoice)...)
	}
	if kinds[quiz.KindTrueFalse] {
		questions = append(questions, s.trueFalse(req.Sentences, req.Terms, req.Difficulty, req.Counts.TrueFalse)...)
	}
	if kinds[quiz.KindShortAnswer] {
		questions = append(questions, s.shortAnswer(req.Terms, req.Counts.ShortAnswer)...)
	}
	return questions
}

func (s *Synthesizer) multipleChoice(terms []string, difficulty string, count int) []quiz.Question {
	if count <= 0 || len(terms) == 0 {
		return nil
	}

	tier := mcTierFor(difficulty)
	questions := make([]quiz.Question, 0, count)
	for i := 0; i < count; i++ {
		term := terms[i%len(terms)]
		tpl := tier
		if i >= len(terms) {
			// Every term has been used once; top up with the generic template.
			tpl = mcGeneric
		}

		options, correctLabel := s.shuffleOptions(tpl.correct, tpl.distractors)
		questions = append(questions, quiz.Question{
			ID:            uuid.NewString(),
			Kind:          quiz.KindMultipleChoice,
			Prompt:        fmt.Sprintf(tpl.prompt, term),
			Options:       options,
			CorrectAnswer: correctLabel,
			Explanation:   fmt.Sprintf(tpl.explanation, term),
		})
	}
	return questions
}

// shuffleOptions permutes one correct option and three distractors, bakes the
// label prefix into each rendered option, and returns the label that landed
// on the correct one.
func (s *Synthesizer) shuffleOptions(correct string, distractors [3]string) ([]string, string) {
	texts := []string{correct, distractors[0], distractors[1], distractors[2]}
	perm := s.rng.Perm(len(texts))

	options := make([]string, len(texts))
	correctLabel := ""
	for pos, src := range perm {
		label := quiz.OptionLabels[pos]
		options[pos] = fmt.Sprintf("%s) %s", label, texts[src])
		if src == 0 {
			correctLabel = label
		}
	}
	return options, correctLabel
}

func (s *Synthesizer) trueFalse(sentences, terms []string, difficulty string, count int) []quiz.Question {
	if count <= 0 || len(sentences) == 0 {
		return nil
	}

	questions := make([]quiz.Question, 0, count)
	for i := 0; i < count; i++ {
		var prompt string
		if difficulty == quiz.DifficultyHard && len(terms) > 0 {
			term := terms[s.rng.Intn(len(terms))]
			prompt = fmt.Sprintf("True or False: The content identifies %s as significant to the overall topic.", term)
		} else {
			prompt = "True or False: " + truncate(sentences[i%len(sentences)], maxStatementChars)
		}
		questions = append(questions, quiz.Question{
			ID:            uuid.NewString(),
			Kind:          quiz.KindTrueFalse,
			Prompt:        prompt,
			CorrectAnswer: quiz.AnswerTrue,
			Explanation:   "This statement is supported by the provided content.",
		})
	}
	return questions
}

func (s *Synthesizer) shortAnswer(terms []string, count int) []quiz.Question {
	if count <= 0 || len(terms) == 0 {
		return nil
	}

	questions := make([]quiz.Question, 0, count)
	for i := 0; i < count; i++ {
		term := terms[i%len(terms)]
		questions = append(questions, quiz.Question{
			ID:            uuid.NewString(),
			Kind:          quiz.KindShortAnswer,
			Prompt:        fmt.Sprintf("Summarize the main points discussed in the content about %s.", term),
			CorrectAnswer: fmt.Sprintf("The content discusses %s and explains its relevance to the overall topic.", term),
			Explanation:   "A good answer should identify the key themes and their relationships.",
		})
	}
	return questions
}

// truncate cuts s to at most max bytes without splitting a rune, so prompts
// built from multibyte text stay valid UTF-8.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return strings.TrimSpace(s[:cut]) + "..."
}

type mcTemplate struct {
	prompt      string
	correct     string
	distractors [3]string
	explanation string
}

// Tier templates: easy asks for direct recall, medium for significance and
// role, hard for analytical synthesis. Each fixes one correct option and
// exactly three distractors.
var (
	mcEasy = mcTemplate{
		prompt:  "According to the content, which statement best describes %s?",
		correct: "It is a key concept explained in the content",
		distractors: [3]string{
			"It is never mentioned in the content",
			"It appears only as a passing example",
			"It contradicts the main topic",
		},
		explanation: "The content presents %s as one of its key concepts.",
	}
	mcMedium = mcTemplate{
		prompt:  "Based on the content, what is most important about %s?",
		correct: "It is central to understanding the main concept",
		distractors: [3]string{
			"It provides supporting information only",
			"It is mentioned but not explained",
			"It contradicts the main ideas",
		},
		explanation: "The content emphasizes the importance of %s in the overall discussion.",
	}
	mcHard = mcTemplate{
		prompt:  "Which statement best captures the analytical role of %s within the content?",
		correct: "It connects multiple ideas and underpins the overall argument",
		distractors: [3]string{
			"It is an isolated detail with no wider significance",
			"It is introduced only to be dismissed later",
			"It restates the conclusion without adding evidence",
		},
		explanation: "Analyzing the content shows %s linking its major ideas together.",
	}
	mcGeneric = mcTemplate{
		prompt:  "Which of the following is true about %s as discussed in the content?",
		correct: "The content discusses it in relation to the main topic",
		distractors: [3]string{
			"The content explicitly refutes it",
			"It appears only in the title",
			"It is described as unrelated to the subject",
		},
		explanation: "The content relates %s to its main topic.",
	}
)

func mcTierFor(difficulty string) mcTemplate {
	switch difficulty {
	case quiz.DifficultyEasy:
		return mcEasy
	case quiz.DifficultyHard:
		return mcHard
	default:
		return mcMedium
	}
}
