package chunker

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var paragraphSplitRe = regexp.MustCompile(`\n\s*\n+`)

// splitLargeBlock subdivides a block whose body exceeds the chunk size:
// paragraph-boundary grouping first, then sentence grouping for any
// group that is still too large. A run with no boundaries at all comes
// back whole; the caller logs and emits it rather than dropping text.
func (c *Chunker) splitLargeBlock(content string) []string {
	paragraphs := splitParagraphs(content)
	if len(paragraphs) <= 1 {
		return c.splitBySentences(content)
	}

	var groups []string
	current := ""
	for _, para := range paragraphs {
		switch {
		case current == "":
			current = para
		case runeLen(current)+runeLen(para)+2 > c.maxChunkSize:
			groups = append(groups, current)
			// Carry the tail of the finished group into the next one.
			current = tailRunes(current, c.chunkOverlap) + "\n\n" + para
		default:
			current += "\n\n" + para
		}
	}
	if current != "" {
		groups = append(groups, current)
	}

	var final []string
	for _, g := range groups {
		if runeLen(g) > c.maxChunkSize {
			final = append(final, c.splitBySentences(g)...)
		} else {
			final = append(final, g)
		}
	}
	if len(final) == 0 {
		return []string{content}
	}
	return final
}

// splitBySentences groups sentences under the chunk size with a
// trailing overlap of up to three sentences.
func (c *Chunker) splitBySentences(text string) []string {
	var chunks []string
	current := ""
	for _, sentence := range splitSentences(text) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		switch {
		case current == "":
			current = sentence
		case runeLen(current)+runeLen(sentence)+1 > c.maxChunkSize:
			chunks = append(chunks, current)
			current = sentenceOverlap(current) + " " + sentence
		default:
			current += " " + sentence
		}
	}
	if current != "" {
		chunks = append(chunks, current)
	}
	if len(chunks) == 0 {
		return []string{text}
	}
	return chunks
}

// splitSentences splits on sentence terminators followed by a space,
// keeping the terminator with its sentence.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		if isSentenceEnd(r) && i+1 < len(runes) && runes[i+1] == ' ' {
			sentences = append(sentences, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}
	if current.Len() > 0 {
		sentences = append(sentences, strings.TrimSpace(current.String()))
	}
	return sentences
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '؟'
}

// sentenceOverlap returns the last up-to-three sentences of text.
func sentenceOverlap(text string) string {
	parts := strings.Split(text, ".")
	if len(parts) > 3 {
		parts = parts[len(parts)-3:]
	}
	return strings.TrimSpace(strings.Join(parts, "."))
}

// splitParagraphs splits on blank lines, dropping empty entries.
func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range paragraphSplitRe.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// prefixRunes returns the first n runes of s.
func prefixRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// tailRunes returns the last n runes of s.
func tailRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}
