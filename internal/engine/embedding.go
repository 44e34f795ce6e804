package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"
)

// EmbeddingClient talks to an OpenAI-compatible /embeddings endpoint.
type EmbeddingClient struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

// NewEmbeddingClient creates an embedding client. baseURL is the API root
// (same base as the chat endpoint), model e.g. "text-embedding-3-small".
func NewEmbeddingClient(baseURL, apiKey, model string) *EmbeddingClient {
	return &EmbeddingClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type embeddingsRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingsResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

// Embed returns the vector for a single text.
func (c *EmbeddingClient) Embed(ctx context.Context, text string) ([]float32, error) {
	metrics.EmbedCalls.Add(1)

	if strings.TrimSpace(text) == "" {
		metrics.EmbedErrors.Add(1)
		return nil, fmt.Errorf("%w: empty text", ErrEmbedding)
	}

	body, err := json.Marshal(embeddingsRequest{Model: c.model, Input: []string{text}})
	if err != nil {
		metrics.EmbedErrors.Add(1)
		return nil, fmt.Errorf("%w: marshal request: %v", ErrEmbedding, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/embeddings", bytes.NewReader(body))
	if err != nil {
		metrics.EmbedErrors.Add(1)
		return nil, fmt.Errorf("%w: %v", ErrEmbedding, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.EmbedErrors.Add(1)
		return nil, fmt.Errorf("%w: %v", ErrEmbedding, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		metrics.EmbedErrors.Add(1)
		return nil, fmt.Errorf("%w: status %d: %s", ErrEmbedding, resp.StatusCode, string(b))
	}

	var out embeddingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		metrics.EmbedErrors.Add(1)
		return nil, fmt.Errorf("%w: decode response: %v", ErrEmbedding, err)
	}
	if len(out.Data) == 0 {
		metrics.EmbedErrors.Add(1)
		return nil, fmt.Errorf("%w: empty response", ErrEmbedding)
	}

	vec := make([]float32, len(out.Data[0].Embedding))
	for i, v := range out.Data[0].Embedding {
		vec[i] = float32(v)
	}
	return vec, nil
}

// CosineScore computes cosine similarity between two vectors scaled to
// 0-100 and rounded to 2 decimals. Returns 0 for mismatched or zero vectors.
func CosineScore(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
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
	score := dot / (math.Sqrt(normA) * math.Sqrt(normB)) * 100
	return math.Round(score*100) / 100
}
