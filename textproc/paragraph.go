package textproc

import (
	"strings"
	"unicode/utf8"
)

// FormatParagraphs regroups the sentences of text into paragraphs separated
// by a blank line. Short sentences are packed more densely (up to 5 per
// paragraph) while long ones close a paragraph sooner (as few as 3),
// approximating a natural reading rhythm for translated bodies that arrive
// without source paragraph breaks. Empty input returns the empty string.
func FormatParagraphs(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	var paragraphs []string
	var current []string
	for _, sentence := range splitSentences(text) {
		current = append(current, sentence)
		if len(current) >= flushThreshold(sentence) {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		}
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, strings.Join(current, " "))
	}
	return strings.Join(paragraphs, "\n\n")
}

// flushThreshold is the paragraph sentence count that the given sentence
// triggers a flush at: <50 runes → 5, <100 → 4, else 3.
func flushThreshold(sentence string) int {
	switch n := utf8.RuneCountInString(sentence); {
	case n < 50:
		return 5
	case n < 100:
		return 4
	default:
		return 3
	}
}

// splitSentences cuts text after each terminal mark that is followed by
// whitespace. The mark stays on the preceding sentence; the whitespace run is
// consumed.
func splitSentences(text string) []string {
	var out []string
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		c := text[i]
		b.WriteByte(c)
		if (c == '.' || c == '!' || c == '?') && i+1 < len(text) && isSpace(text[i+1]) {
			out = append(out, b.String())
			b.Reset()
			for i+1 < len(text) && isSpace(text[i+1]) {
				i++
			}
		}
	}
	if tail := b.String(); tail != "" {
		out = append(out, tail)
	}
	return out
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r'
}
