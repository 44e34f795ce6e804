package skills

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/skillvector/skillvector/internal/engine"
)

// Priority labels the urgency of closing a skill gap.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// GapResult is the combined output of gap analysis.
type GapResult struct {
	MatchScore    float64  `json:"match_score"`
	MissingSkills []string `json:"missing_skills"`
	Priority      string   `json:"priority"`
}

// gapReasoningOutput is the JSON structure expected from the LLM. The
// payload is untrusted: every field has a safe default and parse failures
// collapse to defaultGapReasoning.
type gapReasoningOutput struct {
	MatchScore    float64  `json:"match_score"`
	Priority      string   `json:"priority"`
	MissingSkills []string `json:"missing_skills"`
}

func defaultGapReasoning() gapReasoningOutput {
	return gapReasoningOutput{
		MatchScore:    50,
		Priority:      PriorityMedium,
		MissingSkills: []string{},
	}
}

const gapReasoningPrompt = `You are a senior technical recruiter and curriculum architect analyzing fit between a candidate and a job.

RESUME:
%s

JOB DESCRIPTION:
%s

1. Estimate an overall match score from 0 to 100 (how well does the candidate meet the job's requirements).

2. Identify ONLY the skills required by the job that are NOT clearly present in the resume. Use short canonical skill names (e.g. "Docker", "Kubernetes", "PostgreSQL").

3. Assign a learning priority: "High" if the candidate is far from the role, "Medium" for a partial match, "Low" if the gaps are minor.

Return a JSON object with this exact structure:
{
  "match_score": <number 0-100>,
  "priority": "<Low|Medium|High>",
  "missing_skills": ["<skill name>", ...]
}

Return ONLY the JSON object, no markdown, no explanation.`

// Analyze computes a match score and missing-skill set for a resume/job
// pair. Two independent signals are combined: a deterministic embedding
// cosine score and an LLM reasoning result. The embedding score, when
// available, overrides the reasoning score (it is reproducible); missing
// skills and priority always come from the reasoning result. Either
// signal failing degrades to the other; both failing yields the safe
// default (score 50, Medium, no skills). Only blank input is an error.
func Analyze(ctx context.Context, resume, jobDescription string) (*GapResult, error) {
	if strings.TrimSpace(resume) == "" {
		return nil, fmt.Errorf("%w: resume text cannot be empty", engine.ErrValidation)
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, fmt.Errorf("%w: job description cannot be empty", engine.ErrValidation)
	}

	embScore := computeEmbeddingScore(ctx, resume, jobDescription)
	reasoning := runGapReasoning(ctx, resume, jobDescription)

	score := reasoning.MatchScore
	if embScore != nil {
		score = *embScore
	}

	missing := reasoning.MissingSkills
	if missing == nil {
		missing = []string{}
	}

	return &GapResult{
		MatchScore:    score,
		MissingSkills: missing,
		Priority:      reasoning.Priority,
	}, nil
}

// computeEmbeddingScore embeds both texts and returns their cosine score
// (0-100, 2 decimals). Returns nil when the embedding backend is absent
// or fails; the failure is logged, not retried.
func computeEmbeddingScore(ctx context.Context, resume, job string) *float64 {
	embedder := engine.Cfg.Embedding
	if embedder == nil {
		return nil
	}

	resumeVec, err := embedder.Embed(ctx, resume)
	if err != nil {
		slog.Warn("gap: resume embedding failed, dropping embedding signal", slog.Any("error", err))
		return nil
	}
	jobVec, err := embedder.Embed(ctx, job)
	if err != nil {
		slog.Warn("gap: job embedding failed, dropping embedding signal", slog.Any("error", err))
		return nil
	}

	score := engine.CosineScore(resumeVec, jobVec)
	slog.Debug("gap: embedding similarity", slog.Float64("score", score))
	return &score
}

// runGapReasoning asks the LLM for a structured gap assessment. Call
// failures and malformed output both collapse to the safe default.
func runGapReasoning(ctx context.Context, resume, job string) gapReasoningOutput {
	resumeTrunc := engine.TruncateRunes(resume, 4000, "")
	jobTrunc := engine.TruncateRunes(job, 3000, "")

	prompt := fmt.Sprintf(gapReasoningPrompt, resumeTrunc, jobTrunc)

	raw, err := engine.CallLLM(ctx, prompt)
	if err != nil {
		slog.Warn("gap: reasoning call failed, using defaults", slog.Any("error", err))
		return defaultGapReasoning()
	}

	out := defaultGapReasoning()
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		slog.Warn("gap: unparseable reasoning output, using defaults",
			slog.String("raw", engine.TruncateRunes(raw, 200, "...")))
		return defaultGapReasoning()
	}

	if out.MatchScore < 0 || out.MatchScore > 100 {
		out.MatchScore = 50
	}
	switch out.Priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
	default:
		out.Priority = PriorityMedium
	}
	if out.MissingSkills == nil {
		out.MissingSkills = []string{}
	}
	return out
}

// PriorityForScore derives the learning priority tier from a match score.
func PriorityForScore(score float64) string {
	switch {
	case score < 50:
		return PriorityHigh
	case score < 75:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
