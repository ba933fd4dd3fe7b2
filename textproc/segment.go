// Package textproc holds the pure text transformations used by the ingestion
// job: splitting long article bodies into translation-sized chunks and
// regrouping translated sentences into readable paragraphs.
//
// One sentence-boundary definition is used throughout the package: a terminal
// mark (. ! ?) immediately followed by whitespace ends a sentence, the mark
// stays with the preceding text and the whitespace is consumed. The segmenter
// additionally treats a bare newline as a boundary.
package textproc

import (
	"strings"
	"unicode/utf8"
)

var sentenceEnders = []string{". ", "! ", "? "}

// Segment splits text into substrings of at most maxLen bytes, preferring
// sentence boundaries, then word boundaries, else cutting hard at the window
// end. Concatenating the result reconstructs text exactly. Empty input or
// input that already fits yields a single element.
func Segment(text string, maxLen int) []string {
	if maxLen <= 0 || len(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	start := 0
	for start < len(text) {
		end := start + maxLen
		if end >= len(text) {
			chunks = append(chunks, text[start:])
			break
		}

		cut := start + boundaryCut(text[start:end])
		if cut <= start {
			// Hard cut, backed off so a multi-byte rune is never split.
			cut = end
			for cut > start+1 && !utf8.RuneStart(text[cut]) {
				cut--
			}
		}
		chunks = append(chunks, text[start:cut])
		start = cut
	}
	return chunks
}

// boundaryCut returns the cut offset within window after the rightmost
// sentence terminator, falling back to the rightmost space. It returns 0 when
// no usable boundary exists; the boundary must sit strictly inside the window
// so the caller always makes progress.
func boundaryCut(window string) int {
	pos, cut := -1, 0
	for _, t := range sentenceEnders {
		if p := strings.LastIndex(window, t); p > pos {
			pos, cut = p, p+len(t)
		}
	}
	if p := strings.LastIndexByte(window, '\n'); p > pos {
		pos, cut = p, p+1
	}
	if pos >= 0 {
		if pos > 0 {
			return cut
		}
		return 0
	}
	if p := strings.LastIndexByte(window, ' '); p > 0 {
		return p + 1
	}
	return 0
}
