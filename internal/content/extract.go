package content

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Extraction bounds.
const (
	minSentenceChars = 20
	minTermChars     = 4
	longTermChars    = 7
	DefaultMaxTerms  = 15
)

// Extractor derives candidate key terms and sentences from normalized text.
// Both extractions are deterministic for identical input.
type Extractor struct {
	stopWords StopWords
	maxTerms  int
}

func NewExtractor(stopWords StopWords, maxTerms int) *Extractor {
	if stopWords == nil {
		stopWords = DefaultStopWords
	}
	if maxTerms <= 0 {
		maxTerms = DefaultMaxTerms
	}
	return &Extractor{stopWords: stopWords, maxTerms: maxTerms}
}

// Sentences splits text on sentence-terminal punctuation and keeps fragments
// longer than 20 characters, in source order. An empty result is not an
// error; callers handle zero-sentence input.
func (e *Extractor) Sentences(text string) []string {
	var sentences []string
	var b strings.Builder
	flush := func() {
		s := strings.TrimSpace(b.String())
		b.Reset()
		if len(s) > minSentenceChars {
			sentences = append(sentences, s)
		}
	}
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			flush()
		case '\n':
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return sentences
}

// KeyTerms tokenizes on whitespace, strips trailing punctuation, and keeps
// tokens longer than 4 characters that are not stop words and either start
// with an uppercase letter or are longer than 7 characters. Deduplicated
// case-insensitively in first-seen order, capped at the configured maximum.
func (e *Extractor) KeyTerms(text string) []string {
	seen := make(map[string]struct{})
	var terms []string
	for _, token := range strings.Fields(text) {
		term := strings.TrimRightFunc(token, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if len(term) <= minTermChars || e.stopWords.Contains(term) {
			continue
		}
		first, _ := utf8.DecodeRuneInString(term)
		if !unicode.IsUpper(first) && len(term) <= longTermChars {
			continue
		}
		key := strings.ToLower(term)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		terms = append(terms, term)
		if len(terms) == e.maxTerms {
			break
		}
	}
	return terms
}
