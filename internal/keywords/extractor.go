// Package keywords extracts representative keyword phrases from Arabic
// chunk text. The embedding-ranked extractor needs a reachable backend;
// the frequency extractor is pure and always available. Callers only
// see the Extractor interface and never learn which one answered.
package keywords

import (
	"context"
	"log/slog"

	"github.com/philippgille/chromem-go"
)

// Extractor produces up to topN keyword phrases for a text, best first.
// Extraction never fails: degraded output is returned instead of errors.
type Extractor interface {
	Extract(ctx context.Context, text string) []string
}

const (
	// DefaultTopN is the number of keywords extracted per chunk.
	DefaultTopN = 5

	// Texts shorter than this carry too little signal to tag.
	minTextRunes = 20

	// Candidates scoring at or below this cosine similarity are noise.
	// Kept low: Arabic scores lower than English against multilingual
	// embedding models.
	minSimilarity = 0.05
)

// Backend names accepted by New.
const (
	BackendFrequency = "frequency"
	BackendOllama    = "ollama"
	BackendOpenAI    = "openai"
)

// Config selects and parameterizes the extractor implementation.
type Config struct {
	Backend      string // frequency, ollama, or openai
	Model        string // embedding model name for ollama/openai
	OllamaURL    string // ollama API base URL
	OpenAIAPIKey string
	TopN         int // 0 means DefaultTopN
}

// New builds the extractor named by cfg.Backend. Unknown or empty
// backend names select the frequency extractor.
func New(cfg Config, log *slog.Logger) Extractor {
	topN := cfg.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}
	if log == nil {
		log = slog.Default()
	}

	switch cfg.Backend {
	case BackendOllama:
		return NewEmbedding(chromem.NewEmbeddingFuncOllama(cfg.Model, cfg.OllamaURL), topN, log)
	case BackendOpenAI:
		return NewEmbedding(chromem.NewEmbeddingFuncOpenAI(cfg.OpenAIAPIKey, chromem.EmbeddingModelOpenAI(cfg.Model)), topN, log)
	default:
		return NewFrequency(topN)
	}
}
