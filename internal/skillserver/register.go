// Package skillserver registers the MCP tools exposed by skillvector:
// analyze_gap, learning_path, analysis_history, daily_insight, health.
package skillserver

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/skillvector/skillvector/internal/engine"
	"github.com/skillvector/skillvector/internal/engine/jobindex"
	"github.com/skillvector/skillvector/internal/engine/skills"
)

// Deps carries the wired backends. Pinecone and Graph may be nil, the
// tools degrade accordingly.
type Deps struct {
	Pipeline *skills.Pipeline
	Planner  *skills.Planner
	Store    skills.AnalysisStore
	Stats    *skills.DailyStats
	Graph    *skills.GraphStore
	Pinecone *jobindex.PineconeClient
	Version  string
}

var (
	deps    Deps
	limiter *rate.Limiter
)

// RegisterTools registers all skillvector tools on the given MCP server.
func RegisterTools(server *mcp.Server, d Deps) {
	deps = d

	if perHour := engine.Cfg.RateLimitPerHour; perHour > 0 {
		limiter = rate.NewLimiter(rate.Every(hourly(perHour)), perHour)
	}

	registerAnalyzeGap(server)
	registerLearningPath(server)
	registerAnalysisHistory(server)
	registerDailyInsight(server)
	registerHealth(server)
}

func hourly(perHour int) time.Duration {
	return time.Hour / time.Duration(perHour)
}

