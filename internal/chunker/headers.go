package chunker

import (
	"regexp"
	"sort"
	"strings"

	"github.com/muhannadq/lawchunk/internal/arabic"
)

// markerKind tags the structural marker a header pattern detects. New
// marker types are added to headerPatterns without touching the
// splitting algorithm.
type markerKind int

const (
	markerPart     markerKind = iota // الباب
	markerChapter                    // الفصل
	markerArticle                    // المادة
	markerNumbered                   // "1.", "2)"
)

type headerPattern struct {
	kind markerKind
	re   *regexp.Regexp
}

// Patterns are line-anchored: a marker mid-sentence is not a header.
// Order is structural priority for co-located matches.
var headerPatterns = []headerPattern{
	{markerPart, regexp.MustCompile(`(?m)^[ \t]*الباب\s+`)},
	{markerChapter, regexp.MustCompile(`(?m)^[ \t]*الفصل\s+`)},
	{markerArticle, regexp.MustCompile(`(?m)^[ \t]*` + arabic.ArticlePattern)},
	{markerNumbered, regexp.MustCompile(`(?m)^[ \t]*\d+[.)]\s+`)},
}

// numberedHeaderRe pulls the number and optional title out of a
// generic numbered-section header.
var numberedHeaderRe = regexp.MustCompile(`^(\d+)[.)][ \t]*([^\n]*)`)

// markerWords widen a matched header to its whole first line.
var markerWords = []string{"المادة", "الباب", "الفصل"}

// headerLineMaxRunes bounds how long a line can be and still count as
// a header line.
const headerLineMaxRunes = 100

// block is one (header, body) segment of a split document.
type block struct {
	header string
	body   string
}

// splitByHeaders partitions normalized text into blocks spanning from
// one header start to the next. Text before the first header becomes a
// headerless block. With no headers at all, text longer than
// maxChunkSize falls back to paragraph-boundary grouping so a
// marker-free document never yields one oversized blob.
func splitByHeaders(text string, maxChunkSize int) []block {
	type headerPos struct {
		start  int
		header string
	}

	var positions []headerPos
	seen := make(map[int]bool)
	for _, hp := range headerPatterns {
		for _, loc := range hp.re.FindAllStringIndex(text, -1) {
			// A header must be followed by more text.
			if loc[1] >= len(text) {
				continue
			}
			if seen[loc[0]] {
				continue
			}
			seen[loc[0]] = true
			positions = append(positions, headerPos{loc[0], strings.TrimSpace(text[loc[0]:loc[1]])})
		}
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].start < positions[j].start })

	if len(positions) == 0 {
		return fallbackBlocks(text, maxChunkSize)
	}

	var blocks []block
	if preamble := strings.TrimSpace(text[:positions[0].start]); preamble != "" {
		blocks = append(blocks, block{body: preamble})
	}

	for i, p := range positions {
		end := len(text)
		if i+1 < len(positions) {
			end = positions[i+1].start
		}
		segment := strings.TrimSpace(text[p.start:end])

		header := p.header
		body := segment
		// Widen the header to the whole first line when it names a
		// structural marker, e.g. "الباب الأول: التعيين". A segment
		// that is a single line (a header directly above the next one)
		// widens the same way and carries an empty body.
		firstLine, rest := segment, ""
		if idx := strings.Index(segment, "\n"); idx >= 0 {
			firstLine, rest = segment[:idx], segment[idx:]
		}
		if runeLen(firstLine) <= headerLineMaxRunes {
			firstLine = strings.TrimSpace(firstLine)
			for _, w := range markerWords {
				if strings.Contains(firstLine, w) {
					header = firstLine
					body = strings.TrimSpace(rest)
					break
				}
			}
		}
		blocks = append(blocks, block{header: header, body: body})
	}

	return blocks
}

// fallbackBlocks groups paragraphs of a marker-free document under
// maxChunkSize.
func fallbackBlocks(text string, maxChunkSize int) []block {
	if runeLen(text) <= maxChunkSize {
		return []block{{body: text}}
	}

	var blocks []block
	current := ""
	for _, para := range splitParagraphs(text) {
		switch {
		case current == "":
			current = para
		case runeLen(current)+runeLen(para)+2 > maxChunkSize:
			blocks = append(blocks, block{body: current})
			current = para
		default:
			current += "\n\n" + para
		}
	}
	if current != "" {
		blocks = append(blocks, block{body: current})
	}
	if len(blocks) == 0 {
		return []block{{body: text}}
	}
	return blocks
}

var headerLeadRe = regexp.MustCompile(`^[:\s–—-]+`)

// stripHeaderDuplication removes the header text from the start of
// body so it appears once as the header field and not again in the
// body, along with any leading colon or dash left behind.
func stripHeaderDuplication(header, body string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return body
	}

	trimmed := strings.TrimSpace(body)
	if !strings.HasPrefix(trimmed, header) {
		return body
	}
	rest := trimmed[len(header):]
	return headerLeadRe.ReplaceAllString(rest, "")
}
