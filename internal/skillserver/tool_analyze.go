package skillserver

import (
	"context"
	"errors"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/skillvector/skillvector/internal/engine"
	"github.com/skillvector/skillvector/internal/engine/skills"
)

// AnalyzeGapInput is the input for analyze_gap.
type AnalyzeGapInput struct {
	Resume         string `json:"resume"`
	JobDescription string `json:"job_description"`
}

func registerAnalyzeGap(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_gap",
		Description: "Analyze skill gaps between a resume and a target job description. Returns match score, learning priority, missing skills, a prerequisite-ordered learning path, portfolio evidence suggestions, interview prep questions, assessment rubrics, and related job matches.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input AnalyzeGapInput) (*mcp.CallToolResult, *skills.AnalysisResult, error) {
		if limiter != nil && !limiter.Allow() {
			engine.IncrRateLimited()
			return nil, nil, errors.New("rate limit exceeded, try again later")
		}

		resume := engine.SanitizeText(input.Resume)
		job := engine.SanitizeText(input.JobDescription)
		if err := engine.ValidateResume(resume); err != nil {
			return nil, nil, err
		}
		if err := engine.ValidateJobDescription(job); err != nil {
			return nil, nil, err
		}

		cacheKey := engine.CacheKey("analyze_gap", resume, job)
		if out, ok := engine.CacheLoadJSON[skills.AnalysisResult](ctx, cacheKey); ok {
			return nil, &out, nil
		}

		result, err := deps.Pipeline.Run(ctx, resume, job)
		if err != nil {
			return nil, nil, err
		}

		if deps.Store != nil {
			if err := deps.Store.SaveAnalysis(ctx, result, resume, job); err != nil {
				slog.Warn("analyze_gap: history save failed", slog.Any("error", err))
			}
		}

		engine.CacheStoreJSON(ctx, cacheKey, result)
		return nil, result, nil
	})
}
