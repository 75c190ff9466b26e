package content

import (
	"fmt"
	"strings"
)

// SourceKind describes how the raw text was produced. Structured sources
// (CSV summaries, extracted tables) already carry signal per character, so
// they get a lower minimum length than free-form prose.
type SourceKind string

const (
	SourceArticle    SourceKind = "article"
	SourceStructured SourceKind = "structured"
)

// Default minimum normalized lengths per source kind.
const (
	MinArticleChars    = 100
	MinStructuredChars = 50
)

// ContentTooShortError reports input below the minimum usable length.
type ContentTooShortError struct {
	Length int
	Min    int
}

func (e *ContentTooShortError) Error() string {
	return fmt.Sprintf("content too short: %d chars, need at least %d", e.Length, e.Min)
}

// Normalizer cleans raw extracted text before term/sentence extraction.
type Normalizer struct {
	minArticle    int
	minStructured int
}

func NewNormalizer(minArticle, minStructured int) *Normalizer {
	if minArticle <= 0 {
		minArticle = MinArticleChars
	}
	if minStructured <= 0 {
		minStructured = MinStructuredChars
	}
	return &Normalizer{minArticle: minArticle, minStructured: minStructured}
}

// Normalize trims surrounding whitespace, collapses runs of spaces to one
// and runs of blank lines to a single blank line. Returns
// ContentTooShortError when the cleaned text is below the minimum for kind.
func (n *Normalizer) Normalize(raw string, kind SourceKind) (string, error) {
	cleaned := collapse(raw)

	min := n.minArticle
	if kind == SourceStructured {
		min = n.minStructured
	}
	if len(cleaned) < min {
		return "", &ContentTooShortError{Length: len(cleaned), Min: min}
	}
	return cleaned, nil
}

func collapse(raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	lines := strings.Split(raw, "\n")

	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			// Collapse blank-line runs: keep one separator between paragraphs.
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, strings.Join(fields, " "))
	}
	// Drop a trailing paragraph separator left by trailing blank lines.
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
