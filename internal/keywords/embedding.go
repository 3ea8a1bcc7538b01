package keywords

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/philippgille/chromem-go"
)

// maxCandidates bounds the number of embedding calls per chunk.
const maxCandidates = 64

// Embedding ranks candidate 1- and 2-word phrases by cosine similarity
// to the whole-text embedding. Any backend failure is logged and the
// frequency extractor answers instead, so Extract never fails.
type Embedding struct {
	embed    chromem.EmbeddingFunc
	fallback *Frequency
	topN     int
	log      *slog.Logger
}

func NewEmbedding(embed chromem.EmbeddingFunc, topN int, log *slog.Logger) *Embedding {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if log == nil {
		log = slog.Default()
	}
	return &Embedding{
		embed:    embed,
		fallback: NewFrequency(topN),
		topN:     topN,
		log:      log,
	}
}

func (e *Embedding) Extract(ctx context.Context, text string) []string {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minTextRunes {
		return nil
	}

	keywords, err := e.rank(ctx, text)
	if err != nil {
		e.log.Warn("keyword embedding backend failed, using frequency fallback", "error", err)
		return e.fallback.Extract(ctx, text)
	}
	return keywords
}

func (e *Embedding) rank(ctx context.Context, text string) ([]string, error) {
	clean := strings.Join(strings.Fields(text), " ")

	docVec, err := e.embed(ctx, clean)
	if err != nil {
		return nil, fmt.Errorf("embed document: %w", err)
	}

	type scored struct {
		phrase string
		score  float64
	}
	var ranked []scored

	for _, cand := range candidatePhrases(clean) {
		vec, err := e.embed(ctx, cand)
		if err != nil {
			return nil, fmt.Errorf("embed candidate %q: %w", cand, err)
		}
		score := cosine(docVec, vec)
		if score > minSimilarity && utf8.RuneCountInString(cand) > 1 {
			ranked = append(ranked, scored{cand, score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	keywords := make([]string, 0, e.topN)
	for _, s := range ranked {
		keywords = append(keywords, s.phrase)
		if len(keywords) == e.topN {
			break
		}
	}
	return keywords, nil
}

// candidatePhrases yields distinct unigrams and adjacent bigrams of the
// Arabic tokens in text, in first-occurrence order, capped at
// maxCandidates.
func candidatePhrases(text string) []string {
	words := arabicWordRe.FindAllString(text, -1)

	seen := make(map[string]bool)
	var candidates []string
	add := func(phrase string) {
		if len(candidates) < maxCandidates && !seen[phrase] {
			seen[phrase] = true
			candidates = append(candidates, phrase)
		}
	}

	for _, w := range words {
		add(w)
	}
	for i := 0; i < len(words)-1; i++ {
		add(words[i] + " " + words[i+1])
	}
	return candidates
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
