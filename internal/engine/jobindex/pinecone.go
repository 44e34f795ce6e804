// Package jobindex retrieves and scores job postings related to a
// candidate: embed the resume and target role, query the vector index,
// then rank candidates with the LLM (cosine fallback).
package jobindex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/skillvector/skillvector/internal/engine"
)

// PineconeClient is a minimal REST client for the Pinecone control and
// data planes. Safe for concurrent use.
type PineconeClient struct {
	apiKey     string
	apiVersion string
	baseURL    string
	http       *http.Client

	indexName string

	mu   sync.Mutex
	host string // resolved lazily from DescribeIndex
}

// NewPineconeClient creates a Pinecone client for one index.
func NewPineconeClient(apiKey, indexName string) *PineconeClient {
	return &PineconeClient{
		apiKey:     apiKey,
		apiVersion: "2025-10",
		baseURL:    "https://api.pinecone.io",
		indexName:  indexName,
		http:       &http.Client{Timeout: 30 * time.Second},
	}
}

// IndexDescription is the control-plane view of an index.
type IndexDescription struct {
	Name      string `json:"name"`
	Host      string `json:"host"`
	Dimension int    `json:"dimension"`
	Metric    string `json:"metric"`
	Status    struct {
		Ready bool   `json:"ready"`
		State string `json:"state"`
	} `json:"status"`
}

// Vector is one stored vector with its metadata payload.
type Vector struct {
	ID       string         `json:"id"`
	Values   []float32      `json:"values"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type queryRequest struct {
	Vector          []float32 `json:"vector"`
	TopK            int       `json:"topK"`
	IncludeMetadata bool      `json:"includeMetadata"`
}

// QueryMatch is one result of a vector query.
type QueryMatch struct {
	ID       string         `json:"id"`
	Score    float64        `json:"score"`
	Metadata map[string]any `json:"metadata"`
}

type queryResponse struct {
	Matches []QueryMatch `json:"matches"`
}

type upsertRequest struct {
	Vectors []Vector `json:"vectors"`
}

// DescribeIndex fetches the index description from the control plane.
func (c *PineconeClient) DescribeIndex(ctx context.Context) (*IndexDescription, error) {
	var desc IndexDescription
	u := c.baseURL + "/indexes/" + c.indexName
	if err := c.do(ctx, http.MethodGet, u, nil, &desc); err != nil {
		return nil, err
	}
	return &desc, nil
}

// resolveHost caches the index's data-plane host.
func (c *PineconeClient) resolveHost(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.host != "" {
		return c.host, nil
	}
	desc, err := c.DescribeIndex(ctx)
	if err != nil {
		return "", err
	}
	if desc.Host == "" {
		return "", fmt.Errorf("%w: index %s has no host", engine.ErrRetrieval, c.indexName)
	}
	c.host = "https://" + strings.TrimPrefix(desc.Host, "https://")
	return c.host, nil
}

// Query returns the topK nearest stored vectors with metadata.
func (c *PineconeClient) Query(ctx context.Context, vector []float32, topK int) ([]QueryMatch, error) {
	host, err := c.resolveHost(ctx)
	if err != nil {
		return nil, err
	}
	var out queryResponse
	req := queryRequest{Vector: vector, TopK: topK, IncludeMetadata: true}
	if err := c.do(ctx, http.MethodPost, host+"/query", req, &out); err != nil {
		return nil, err
	}
	return out.Matches, nil
}

// Upsert writes vectors to the index.
func (c *PineconeClient) Upsert(ctx context.Context, vectors []Vector) error {
	host, err := c.resolveHost(ctx)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, host+"/vectors/upsert", upsertRequest{Vectors: vectors}, nil)
}

func (c *PineconeClient) do(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: marshal request: %v", engine.ErrRetrieval, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("%w: %v", engine.ErrRetrieval, err)
	}
	req.Header.Set("Api-Key", c.apiKey)
	req.Header.Set("X-Pinecone-Api-Version", c.apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", engine.ErrRetrieval, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s %s: status %d: %s", engine.ErrRetrieval, method, url, resp.StatusCode, string(b))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode response: %v", engine.ErrRetrieval, err)
		}
	}
	return nil
}
