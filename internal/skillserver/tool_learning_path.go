package skillserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/skillvector/skillvector/internal/engine/skills"
)

// LearningPathInput is the input for learning_path.
type LearningPathInput struct {
	Skills []string `json:"skills"`
}

// LearningPathOutput is the output for learning_path.
type LearningPathOutput struct {
	LearningPath []skills.PathStep `json:"learning_path"`
	TotalDays    int               `json:"total_days"`
	TotalWeeks   int               `json:"total_weeks"`
}

func registerLearningPath(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "learning_path",
		Description: "Order a list of skills into a prerequisite-respecting learning path with time estimates. Skills without prerequisite constraints are ordered alphabetically.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input LearningPathInput) (*mcp.CallToolResult, *LearningPathOutput, error) {
		if len(input.Skills) == 0 {
			return nil, nil, errors.New("skills is required")
		}

		path := deps.Planner.Plan(ctx, input.Skills)

		out := &LearningPathOutput{LearningPath: path}
		for _, step := range path {
			out.TotalDays += step.EstimatedDays
			out.TotalWeeks += step.EstimatedWeeks
		}
		return nil, out, nil
	})
}
