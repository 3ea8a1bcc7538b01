// Package chunker splits Arabic legal/regulatory document text into
// metadata-rich chunks: header-based segmentation, Part/Chapter/Article
// hierarchy tracking, rule-based classification and keyword tagging.
// Splitting is deterministic and structural; it never calls a model.
package chunker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/muhannadq/lawchunk/internal/arabic"
	"github.com/muhannadq/lawchunk/internal/classify"
	"github.com/muhannadq/lawchunk/internal/keywords"
	"github.com/muhannadq/lawchunk/internal/lawdoc"
)

// Config controls chunking behavior. Sizes are in runes.
type Config struct {
	MaxChunkSize int // target upper bound per chunk body
	ChunkOverlap int // overlap carried between consecutive sub-chunks
}

// DefaultConfig returns sensible defaults: 1500 runes is roughly
// 500-750 tokens of Arabic, a safe margin under embedding limits.
func DefaultConfig() Config {
	return Config{
		MaxChunkSize: 1500,
		ChunkOverlap: 200,
	}
}

const (
	// hardMaxChunkSize caps configured sizes for embedding safety.
	hardMaxChunkSize = 2000

	// oversizeFactor bounds emitted content: a chunk larger than
	// oversizeFactor * MaxChunkSize means an unsplittable run and is
	// logged on the way out.
	oversizeFactor = 2
)

// Chunker turns one document's text into an ordered chunk sequence.
// Safe for concurrent use: each ChunkDocument call owns its own
// hierarchy cursor and touches no shared state.
type Chunker struct {
	maxChunkSize int
	chunkOverlap int
	keywords     keywords.Extractor
	log          *slog.Logger
}

// New validates the configuration and builds a Chunker. Malformed
// sizes fail here, not mid-document.
func New(cfg Config, kw keywords.Extractor, log *slog.Logger) (*Chunker, error) {
	if cfg.MaxChunkSize <= 0 {
		return nil, fmt.Errorf("max chunk size must be positive, got %d", cfg.MaxChunkSize)
	}
	if cfg.ChunkOverlap < 0 {
		return nil, fmt.Errorf("chunk overlap cannot be negative, got %d", cfg.ChunkOverlap)
	}
	if cfg.ChunkOverlap >= cfg.MaxChunkSize {
		return nil, fmt.Errorf("chunk overlap %d must be less than max chunk size %d", cfg.ChunkOverlap, cfg.MaxChunkSize)
	}

	size := cfg.MaxChunkSize
	if size > hardMaxChunkSize {
		size = hardMaxChunkSize
	}
	if kw == nil {
		kw = keywords.NewFrequency(keywords.DefaultTopN)
	}
	if log == nil {
		log = slog.Default()
	}

	return &Chunker{
		maxChunkSize: size,
		chunkOverlap: cfg.ChunkOverlap,
		keywords:     kw,
		log:          log,
	}, nil
}

// ChunkDocument splits one document into ordered chunks with metadata.
// text is already-extracted UTF-8; sourceFile is used verbatim as the
// document name. Content-shaped input never produces an error: absent
// structure degrades to paragraph and sentence splitting.
func (c *Chunker) ChunkDocument(ctx context.Context, text, sourceFile string) []lawdoc.Chunk {
	text = NormalizeText(text)
	if text == "" {
		return nil
	}

	title := extractTitle(text)
	hctx := hierarchyContext{documentTitle: title}
	blocks := splitByHeaders(text, c.maxChunkSize)

	var chunks []lawdoc.Chunk
	for _, b := range blocks {
		hctx.update(b.header, b.body)
		body := stripHeaderDuplication(b.header, b.body)

		if runeLen(body) > c.maxChunkSize {
			for _, sub := range c.splitLargeBlock(body) {
				chunks = append(chunks, c.buildChunk(ctx, b.header, sub, sourceFile, &hctx, len(chunks)))
			}
		} else {
			chunks = append(chunks, c.buildChunk(ctx, b.header, body, sourceFile, &hctx, len(chunks)))
		}
	}

	c.log.Debug("chunked document",
		"file", sourceFile,
		"blocks", len(blocks),
		"chunks", len(chunks),
	)
	return chunks
}

// buildChunk assembles one chunk: content with title/header context,
// hierarchy snapshot by value, and extracted metadata.
func (c *Chunker) buildChunk(ctx context.Context, header, body, sourceFile string, hctx *hierarchyContext, index int) lawdoc.Chunk {
	chunk := lawdoc.Chunk{
		ID:               uuid.NewString(),
		Content:          buildContent(hctx.documentTitle, header, body),
		DocumentName:     sourceFile,
		DocumentTitle:    hctx.documentTitle,
		ChunkIndex:       index,
		LegalPartName:    hctx.currentPart,
		LegalChapterName: hctx.currentChapter,
		Metadata:         make(map[string]string),
	}

	// The cursor already parsed the header's citation.
	if ref := hctx.articleRefFor(header); ref != "" {
		chunk.ArticleReference = ref
		chunk.ItemType = lawdoc.ItemArticle
		chunk.ItemNumber = hctx.currentArticleNumber
		if title := markerTitle(ref, header); title != "" {
			chunk.ItemTitle = firstSentence(title)
		}
	}

	c.extractMetadata(ctx, &chunk, header, body)

	if n := runeLen(chunk.Content); n > oversizeFactor*c.maxChunkSize {
		c.log.Warn("emitting oversized chunk, no split boundary found",
			"file", sourceFile,
			"index", index,
			"runes", n,
			"est_tokens", EstimateTokens(chunk.Content),
		)
	}
	return chunk
}

// buildContent prefixes the body with the bolded document title and the
// header line so each chunk carries retrieval-time context on its own.
func buildContent(title, header, body string) string {
	var b strings.Builder
	if title != "" {
		b.WriteString("**" + title + "**\n")
	}
	if header != "" {
		b.WriteString(header + "\n")
	}
	b.WriteString("\n")
	b.WriteString(body)
	return strings.TrimSpace(b.String())
}

// titleKeywords mark a line as a plausible legal-document title.
var titleKeywords = []string{"لائحة", "نظام", "دليل", "تعليمات", "قرار"}

// extractTitle scans the first five lines for a title-like line:
// 20-200 runes naming a legal document type.
func extractTitle(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		n := utf8.RuneCountInString(line)
		if n < 20 || n > 200 {
			continue
		}
		for _, kw := range titleKeywords {
			if strings.Contains(line, kw) {
				return line
			}
		}
	}
	return ""
}

// extractMetadata fills the remaining pattern-derived fields. All
// values stay in Arabic: they feed citations shown to readers as-is.
func (c *Chunker) extractMetadata(ctx context.Context, chunk *lawdoc.Chunk, header, body string) {
	// Article citation in the body prefix, for chunks split away from
	// their header line.
	if chunk.ItemNumber == "" {
		if ref, ok := arabic.FindArticleReference(prefixRunes(body, 500)); ok {
			if n, ok := arabic.ParseArticleNumber(ref); ok {
				chunk.ArticleReference = ref
				chunk.ItemType = lawdoc.ItemArticle
				chunk.ItemNumber = n
				if title := markerTitle(ref, prefixRunes(body, 400)); title != "" {
					chunk.ItemTitle = firstSentence(title)
				}
			}
		}
	}

	// Part/Chapter fallback for chunks split away from their header.
	if chunk.LegalPartName == "" {
		if ref := partRefRe.FindString(prefixRunes(body, 300)); ref != "" {
			chunk.LegalPartName = refWithTitle(ref, "", prefixRunes(body, 300))
		}
	}
	if chunk.LegalChapterName == "" {
		if ref := chapterRefRe.FindString(prefixRunes(body, 300)); ref != "" {
			chunk.LegalChapterName = refWithTitle(ref, "", prefixRunes(body, 300))
		}
	}

	// Generic numbered sections: "1. التقديم على الإجازة".
	if m := numberedHeaderRe.FindStringSubmatch(header); m != nil {
		chunk.ItemNumber = m[1]
		chunk.ItemType = lawdoc.ItemSection
		if title := strings.TrimSpace(m[2]); title != "" {
			chunk.ItemTitle = title
		}
	}

	chunk.Category = classify.Category(body, chunk.DocumentTitle)
	chunk.TargetAudience = classify.TargetAudience(body, chunk.DocumentTitle)
	chunk.Keywords = c.keywords.Extract(ctx, chunk.Content)
	chunk.Metadata["resource_path"] = resourcePath(chunk)
}

// firstSentence cuts a title candidate at the first terminator so body
// prose does not leak into it.
func firstSentence(s string) string {
	if i := strings.IndexAny(s, ".!?؟"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// resourcePath joins the citation trail from document title down to the
// article, skipping empty segments:
// "نظام العمل > الباب الخامس > الفصل الأول > المادة 151".
func resourcePath(chunk *lawdoc.Chunk) string {
	var parts []string

	switch {
	case chunk.DocumentTitle != "":
		parts = append(parts, chunk.DocumentTitle)
	case chunk.DocumentName != "":
		parts = append(parts, strings.TrimSuffix(chunk.DocumentName, ".pdf"))
	}

	if chunk.LegalPartName != "" {
		parts = append(parts, chunk.LegalPartName)
	}
	if chunk.LegalChapterName != "" {
		parts = append(parts, chunk.LegalChapterName)
	}

	switch {
	case chunk.ArticleReference != "":
		parts = append(parts, chunk.ArticleReference)
	case chunk.ItemType == lawdoc.ItemSection && chunk.ItemNumber != "":
		parts = append(parts, "البند "+chunk.ItemNumber)
	}

	return strings.Join(parts, " > ")
}
