package skillserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/skillvector/skillvector/internal/engine/skills"
)

// AnalysisHistoryInput is the input for analysis_history.
type AnalysisHistoryInput struct {
	Limit int `json:"limit,omitempty"`
}

// AnalysisHistoryOutput is the output for analysis_history.
type AnalysisHistoryOutput struct {
	Analyses []skills.AnalysisRecord `json:"analyses"`
	Total    int                     `json:"total"`
}

func registerAnalysisHistory(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analysis_history",
		Description: "List recent skill-gap analyses (newest first) with their match scores, priorities, and full results.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input AnalysisHistoryInput) (*mcp.CallToolResult, *AnalysisHistoryOutput, error) {
		if deps.Store == nil {
			return nil, nil, errors.New("analysis history is not configured")
		}

		records, err := deps.Store.RecentAnalyses(ctx, input.Limit)
		if err != nil {
			return nil, nil, err
		}
		return nil, &AnalysisHistoryOutput{Analyses: records, Total: len(records)}, nil
	})
}
