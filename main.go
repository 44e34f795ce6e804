// skillvector — resume vs. job skill-gap analysis MCP server.
//
// Exposes five MCP tools: analyze_gap, learning_path, analysis_history,
// daily_insight, health. Runs as HTTP MCP server or stdio transport.
//
// Backends are optional and the analysis degrades per stage: without
// Neo4j the planner uses the built-in skill catalog, without Pinecone
// related-jobs retrieval is skipped, without an LLM key the gap analysis
// falls back to neutral defaults.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/skillvector/skillvector/internal/engine"
	"github.com/skillvector/skillvector/internal/engine/jobindex"
	"github.com/skillvector/skillvector/internal/engine/skills"
	"github.com/skillvector/skillvector/internal/skillserver"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

// llmAdapter narrows the go-kit llm client to the engine's completion
// interface.
type llmAdapter struct {
	client *llm.Client
}

func (a llmAdapter) Complete(ctx context.Context, system, prompt string) (string, error) {
	return a.client.Complete(ctx, system, prompt)
}

func envFlag(name string) bool {
	switch env.Str(name, "") {
	case "1", "true", "yes":
		return true
	}
	return false
}

func main() {
	deps := initEngine()
	deps.Version = version

	slog.Info("starting skillvector",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "skillvector",
		Version: version,
	}, nil)

	skillserver.RegisterTools(server, deps)
	slog.Info("tools registered", slog.Int("count", 5))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "skillvector",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 600 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() skillserver.Deps {
	c := engine.Config{
		LLMAPIKey:            env.Str("LLM_API_KEY", ""),
		LLMAPIKeyFallbacks:   env.List("LLM_API_KEY_FALLBACKS", ""),
		LLMAPIBase:           env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:             env.Str("LLM_MODEL", "gemini-2.5-flash"),
		LLMTemperature:       env.Float("LLM_TEMPERATURE", 0.1),
		LLMMaxTokens:         env.Int("LLM_MAX_TOKENS", 4096),
		EmbedModel:           env.Str("EMBED_MODEL", "text-embedding-004"),
		Neo4jURI:             env.Str("NEO4J_URI", ""),
		Neo4jUser:            env.Str("NEO4J_USER", "neo4j"),
		Neo4jPassword:        env.Str("NEO4J_PASSWORD", ""),
		Neo4jDatabase:        env.Str("NEO4J_DATABASE", "neo4j"),
		PineconeAPIKey:       env.Str("PINECONE_API_KEY", ""),
		PineconeIndexName:    env.Str("PINECONE_INDEX", "skillvector-jobs"),
		DatabaseURL:          env.Str("DATABASE_URL", ""),
		RateLimitPerHour:     env.Int("RATE_LIMIT_PER_HOUR", 100),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	if c.LLMAPIKey != "" {
		c.LLMClient = llmAdapter{client: llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
			llm.WithFallbackKeys(c.LLMAPIKeyFallbacks),
			llm.WithMaxTokens(c.LLMMaxTokens),
			llm.WithTemperature(c.LLMTemperature),
			llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
		)}
		c.Embedding = engine.NewEmbeddingClient(c.LLMAPIBase, c.LLMAPIKey, c.EmbedModel)
	} else {
		slog.Warn("LLM_API_KEY not set, analysis runs on fallback defaults")
	}

	engine.Init(c)

	ctx := context.Background()
	deps := skillserver.Deps{
		Stats: skills.NewDailyStats(),
	}

	// Skill graph (Neo4j). Optional: the planner falls back to the
	// built-in catalog when absent or unreachable.
	if c.Neo4jURI != "" {
		graph, err := skills.ConnectGraphStore(ctx, c.Neo4jURI, c.Neo4jUser, c.Neo4jPassword, c.Neo4jDatabase)
		if err != nil {
			slog.Warn("neo4j init failed, using built-in skill catalog", slog.Any("error", err))
		} else {
			deps.Graph = graph
			slog.Info("skill graph connected", slog.String("uri", c.Neo4jURI))
			if envFlag("SEED_SKILL_GRAPH") {
				if err := graph.Seed(ctx); err != nil {
					slog.Warn("skill graph seed failed", slog.Any("error", err))
				} else {
					slog.Info("skill graph seeded")
				}
			}
		}
	}

	var edgeSource skills.EdgeSource
	if deps.Graph != nil {
		edgeSource = deps.Graph
	}
	deps.Planner = skills.NewPlanner(edgeSource)

	// Job index (Pinecone). Optional: related_jobs stays empty without it.
	var retriever *jobindex.Retriever
	if c.PineconeAPIKey != "" && c.PineconeIndexName != "" {
		pc := jobindex.NewPineconeClient(c.PineconeAPIKey, c.PineconeIndexName)
		deps.Pinecone = pc
		retriever = jobindex.NewRetriever(pc)
		slog.Info("job index client initialized", slog.String("index", c.PineconeIndexName))
		if envFlag("SEED_JOB_INDEX") {
			if err := jobindex.SeedIndex(ctx, pc); err != nil {
				slog.Warn("job index seed failed", slog.Any("error", err))
			} else {
				slog.Info("job index seeded")
			}
		}
	}

	// Analysis history: Postgres when DATABASE_URL is set, local SQLite
	// otherwise.
	if c.DatabaseURL != "" {
		pg, err := skills.ConnectPostgresStore(ctx, c.DatabaseURL)
		if err != nil {
			slog.Warn("postgres history init failed, using sqlite", slog.Any("error", err))
			deps.Store = skills.SQLiteStore{}
		} else {
			deps.Store = pg
		}
	} else {
		deps.Store = skills.SQLiteStore{}
	}

	deps.Pipeline = skills.NewPipeline(deps.Planner, retriever, deps.Stats)

	cacheTTL := env.Duration("CACHE_TTL", 15*time.Minute)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)

	return deps
}
