package engine

import (
	"context"
	"net/http"
	"time"
)

// LLMClient is the narrow completion surface the engine needs from the
// reasoning backend. main.go adapts the go-kit llm client to it; tests
// inject fakes.
type LLMClient interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Embedder converts text into a vector. Implemented by EmbeddingClient;
// tests inject fakes.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Config holds all engine configuration, injected from main.
type Config struct {
	LLMAPIKey          string
	LLMAPIKeyFallbacks []string
	LLMAPIBase         string
	LLMModel           string
	LLMTemperature     float64
	LLMMaxTokens       int

	EmbedModel string // served from the same OpenAI-compatible base

	Neo4jURI      string // empty = edge source disabled, static catalog only
	Neo4jUser     string
	Neo4jPassword string
	Neo4jDatabase string

	PineconeAPIKey    string // empty = related-jobs retrieval disabled
	PineconeIndexName string

	DatabaseURL string // optional Postgres analysis store; empty = SQLite

	RateLimitPerHour     int
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration

	HTTPClient *http.Client

	LLMClient LLMClient // nil = reasoning calls fail closed to defaults
	Embedding Embedder  // nil = embedding signal unavailable
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (skills, jobindex).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
