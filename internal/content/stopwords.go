package content

import "strings"

// DefaultStopWords is the built-in stop-word set used when the caller does
// not supply one. Lookups are case-insensitive.
var DefaultStopWords = NewStopWords(
	"the", "and", "for", "are", "but", "not", "you", "all", "can", "had",
	"her", "was", "one", "our", "out", "day", "get", "has", "him", "his",
	"how", "its", "may", "new", "now", "old", "see", "two", "who", "boy",
	"did", "she", "use", "way", "when", "what", "with", "this", "that",
	"have", "from", "they", "know", "want", "been", "good", "much", "some",
	"time", "very", "were", "will", "your", "about", "after", "before",
	"other", "right", "their", "there", "these", "which", "would", "could",
	"should", "where", "while", "because", "between", "through", "during",
	"under", "again", "against", "being", "doing", "into", "such", "than",
	"then", "them", "also",
)

// StopWords is a case-insensitive word set.
type StopWords map[string]struct{}

func NewStopWords(words ...string) StopWords {
	s := make(StopWords, len(words))
	for _, w := range words {
		s[strings.ToLower(w)] = struct{}{}
	}
	return s
}

func (s StopWords) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s[strings.ToLower(word)]
	return ok
}
