package skillserver

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/skillvector/skillvector/internal/engine"
)

// HealthInput is the (empty) input for health.
type HealthInput struct{}

// HealthOutput reports per-backend availability.
type HealthOutput struct {
	Status   string          `json:"status"`
	Version  string          `json:"version"`
	Checks   map[string]bool `json:"checks"`
	ChecksMS int64           `json:"checks_ms"`
}

func registerHealth(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "health",
		Description: "Health check: reports which backends (LLM, embeddings, skill graph, job index) are configured and reachable.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ HealthInput) (*mcp.CallToolResult, *HealthOutput, error) {
		start := time.Now()
		checks := map[string]bool{
			"llm":        engine.Cfg.LLMClient != nil,
			"embeddings": engine.Cfg.Embedding != nil,
			"graph":      false,
			"job_index":  false,
		}

		checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if deps.Graph != nil {
			checks["graph"] = deps.Graph.Ping(checkCtx)
		}
		if deps.Pinecone != nil {
			_, err := deps.Pinecone.DescribeIndex(checkCtx)
			checks["job_index"] = err == nil
		}

		// The core analysis degrades gracefully without any one backend;
		// only a missing LLM makes the service materially worse.
		status := "ok"
		if !checks["llm"] {
			status = "degraded"
		}

		return nil, &HealthOutput{
			Status:   status,
			Version:  deps.Version,
			Checks:   checks,
			ChecksMS: time.Since(start).Milliseconds(),
		}, nil
	})
}
