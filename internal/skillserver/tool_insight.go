package skillserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/skillvector/skillvector/internal/engine"
	"github.com/skillvector/skillvector/internal/engine/skills"
)

// DailyInsightInput is the input for daily_insight.
type DailyInsightInput struct {
	RefreshTrending bool `json:"refresh_trending,omitempty"`
}

const trendingPrompt = `List the 5 most in-demand software engineering skills right now.
Respond with ONLY a JSON array of skill names, e.g. ["Kubernetes","Rust","..."].`

func registerDailyInsight(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "daily_insight",
		Description: "Today's aggregate stats: number of analyses, average match score, most common skill gaps, top target roles, and trending skills.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input DailyInsightInput) (*mcp.CallToolResult, *skills.DailySnapshot, error) {
		if input.RefreshTrending {
			refreshTrending(ctx)
		}

		snap := deps.Stats.TodaysStats()
		if len(snap.TrendingSkills) == 0 {
			refreshTrending(ctx)
			snap = deps.Stats.TodaysStats()
		}
		return nil, &snap, nil
	})
}

// refreshTrending asks the LLM for a trending-skills list. Best effort:
// failures leave the previous list in place.
func refreshTrending(ctx context.Context) {
	raw, err := engine.CallLLM(ctx, trendingPrompt)
	if err != nil {
		slog.Warn("daily_insight: trending refresh failed", slog.Any("error", err))
		return
	}

	var trending []string
	if err := json.Unmarshal([]byte(raw), &trending); err != nil {
		slog.Warn("daily_insight: trending parse failed", slog.Any("error", err))
		return
	}

	clean := trending[:0]
	for _, s := range trending {
		if s = strings.TrimSpace(s); s != "" {
			clean = append(clean, s)
		}
	}
	if len(clean) > 0 {
		deps.Stats.UpdateTrending(clean)
	}
}
