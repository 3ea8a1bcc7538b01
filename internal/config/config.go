package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/muhannadq/lawchunk/internal/chunker"
	"github.com/muhannadq/lawchunk/internal/keywords"
)

type Config struct {
	// Chunking
	MaxChunkSize int
	ChunkOverlap int

	// Keyword extraction
	KeywordBackend string
	EmbeddingModel string
	OllamaURL      string
	OpenAIAPIKey   string
	TopKeywords    int
}

func Load() Config {
	cfg := Config{
		MaxChunkSize: envInt("CHUNK_SIZE", 1500),
		ChunkOverlap: envInt("CHUNK_OVERLAP", 200),

		KeywordBackend: envOr("KEYWORD_BACKEND", keywords.BackendFrequency),
		EmbeddingModel: envOr("EMBEDDING_MODEL", "nomic-embed-text"),
		OllamaURL:      envOr("OLLAMA_URL", "http://localhost:11434/api"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		TopKeywords:    envInt("TOP_KEYWORDS", keywords.DefaultTopN),
	}

	if cfg.MaxChunkSize <= 0 {
		cfg.MaxChunkSize = 1500
	}
	if cfg.ChunkOverlap < 0 {
		cfg.ChunkOverlap = 200
	}

	return cfg
}

func (c Config) Validate() error {
	if c.ChunkOverlap >= c.MaxChunkSize {
		return fmt.Errorf("CHUNK_OVERLAP %d must be less than CHUNK_SIZE %d", c.ChunkOverlap, c.MaxChunkSize)
	}
	if c.KeywordBackend == keywords.BackendOpenAI && c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required for the openai keyword backend")
	}
	return nil
}

// Chunker maps the loaded values onto the chunker configuration.
func (c Config) Chunker() chunker.Config {
	return chunker.Config{
		MaxChunkSize: c.MaxChunkSize,
		ChunkOverlap: c.ChunkOverlap,
	}
}

// Keywords maps the loaded values onto the extractor configuration.
func (c Config) Keywords() keywords.Config {
	return keywords.Config{
		Backend:      c.KeywordBackend,
		Model:        c.EmbeddingModel,
		OllamaURL:    c.OllamaURL,
		OpenAIAPIKey: c.OpenAIAPIKey,
		TopN:         c.TopKeywords,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
