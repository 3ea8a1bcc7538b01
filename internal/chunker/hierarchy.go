package chunker

import (
	"regexp"
	"strings"

	"github.com/muhannadq/lawchunk/internal/arabic"
)

// hierarchyContext is the document cursor: the Part, Chapter and
// Article currently in effect while blocks are consumed in reading
// order. One value is created per ChunkDocument call and threaded
// through the block loop; there is no shared or package-level state.
type hierarchyContext struct {
	documentTitle        string
	currentPart          string // الباب, as "ref" or "ref: title"
	currentChapter       string // الفصل, same form
	currentArticleRef    string // canonical citation, e.g. "المادة 37"
	currentArticleNumber string
}

var (
	partRefRe    = regexp.MustCompile(`الباب\s+(?:\d+|` + arabic.OrdinalPattern + `)`)
	chapterRefRe = regexp.MustCompile(`الفصل\s+(?:\d+|` + arabic.OrdinalPattern + `)`)
)

// update advances the cursor for one block. Marker types appearing in
// the same header line update independently; an unrecognized header
// leaves the cursor unchanged. Entering a new Part clears the current
// Chapter: a chapter belongs to exactly one part.
func (h *hierarchyContext) update(header, body string) {
	if strings.Contains(header, "الباب") {
		if ref := partRefRe.FindString(header); ref != "" {
			h.currentPart = refWithTitle(ref, header, body)
			h.currentChapter = ""
		}
	}

	if strings.Contains(header, "الفصل") {
		if ref := chapterRefRe.FindString(header); ref != "" {
			h.currentChapter = refWithTitle(ref, header, body)
		}
	}

	if strings.Contains(header, "المادة") {
		if n, ok := arabic.ParseArticleNumber(header); ok {
			h.currentArticleNumber = n
			if ref, ok := arabic.FindArticleReference(header); ok {
				h.currentArticleRef = ref
			} else {
				h.currentArticleRef = "المادة " + n
			}
		}
	}
}

// articleRefFor returns the tracked citation when header restates it,
// so every sub-chunk of a subdivided article shares one reference.
func (h *hierarchyContext) articleRefFor(header string) string {
	if h.currentArticleRef == "" {
		return ""
	}
	if strings.Contains(strings.Join(strings.Fields(header), " "), h.currentArticleRef) {
		return h.currentArticleRef
	}
	return ""
}

// refWithTitle appends the marker's trailing title, looked up on the
// header line or at the start of the body, e.g.
// "الباب الخامس: الواجبات الوظيفية".
func refWithTitle(ref, header, body string) string {
	if title := markerTitle(ref, header+"\n"+prefixRunes(body, 200)); title != "" {
		return ref + ": " + title
	}
	return ref
}

// markerTitle returns the title text following a marker reference in
// scope: the remainder of the reference's own line, or the next line.
func markerTitle(ref, scope string) string {
	idx := strings.Index(scope, ref)
	if idx < 0 {
		return ""
	}
	rest := scope[idx+len(ref):]

	lines := strings.SplitN(rest, "\n", 3)
	if len(lines) > 2 {
		lines = lines[:2]
	}
	for _, line := range lines {
		if title := strings.Trim(line, " \t:–—-"); title != "" {
			return title
		}
	}
	return ""
}
