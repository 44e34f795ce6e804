package jobindex

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/skillvector/skillvector/internal/engine"
)

// ScoredJob is one related job posting with its match assessment.
type ScoredJob struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Company             string   `json:"company"`
	RequiredSkills      []string `json:"required_skills"`
	MatchScore          int      `json:"match_score"`
	MatchLabel          string   `json:"match_label"`
	WhyMatch            string   `json:"why_match"`
	WhyGap              string   `json:"why_gap"`
	BestSkillToCloseGap string   `json:"best_skill_to_close_gap"`
	VectorScore         float64  `json:"vector_score"`
}

// VectorIndex is the narrow query surface the retriever needs.
// Implemented by PineconeClient; tests inject fakes.
type VectorIndex interface {
	Query(ctx context.Context, vector []float32, topK int) ([]QueryMatch, error)
}

const (
	retrieveTopK = 10
	scoreTopN    = 8
	returnTopN   = 5
)

// Retriever finds jobs semantically close to a candidate and ranks them.
// Shared across requests; safe for concurrent use.
type Retriever struct {
	index VectorIndex
}

// NewRetriever creates a retriever over the given index.
func NewRetriever(index VectorIndex) *Retriever {
	return &Retriever{index: index}
}

const jobScoringPrompt = `You are a precise talent matching engine. Analyze this candidate against job postings.

CANDIDATE RESUME SUMMARY:
%s

CANDIDATE TARGET ROLE: %s

CANDIDATE'S IDENTIFIED SKILL GAPS:
%s

JOB POSTINGS TO EVALUATE:
%s

For each job, return a JSON array with EXACTLY this structure:
[
  {
    "id": "job_001",
    "match_score": 74,
    "match_label": "Strong Match",
    "why_match": "One sentence: what makes this candidate strong for this role",
    "why_gap": "One sentence: the single most important thing they're missing",
    "best_skill_to_close_gap": "The one skill that would most improve this match"
  }
]

Scoring rules:
- 85-100: Exceptional match (candidate meets 90%%+ of requirements)
- 70-84: Strong match (meets core requirements, minor gaps)
- 50-69: Moderate match (meets 60%% of requirements, clear gaps)
- 30-49: Stretch role (significant gaps but direction is right)
- Below 30: Not a good match right now

Be accurate. Do not inflate scores. A 74%% means 74%%.
Return ONLY the JSON array. No markdown. No explanation.`

// RetrieveAndScore embeds the resume and target role, queries the vector
// index for similar jobs, and ranks the candidates with the LLM. When
// scoring fails the vector similarity stands in for the match score.
// Index or embedding failure returns an error; the pipeline masks it
// with an empty list.
func (r *Retriever) RetrieveAndScore(ctx context.Context, resume, targetRole string, missingSkills []string) ([]ScoredJob, error) {
	if r == nil || r.index == nil {
		return nil, fmt.Errorf("%w: no index configured", engine.ErrRetrieval)
	}
	engine.IncrRetrievalCalls()

	embedder := engine.Cfg.Embedding
	if embedder == nil {
		engine.IncrRetrievalErrors()
		return nil, fmt.Errorf("%w: no embedder configured", engine.ErrRetrieval)
	}

	query := fmt.Sprintf("Candidate targeting: %s\n\nResume:\n%s",
		targetRole, engine.TruncateRunes(resume, 2000, ""))
	vec, err := embedder.Embed(ctx, query)
	if err != nil {
		engine.IncrRetrievalErrors()
		return nil, fmt.Errorf("%w: embed query: %v", engine.ErrRetrieval, err)
	}

	matches, err := r.index.Query(ctx, vec, retrieveTopK)
	if err != nil {
		engine.IncrRetrievalErrors()
		return nil, err
	}
	if len(matches) == 0 {
		return []ScoredJob{}, nil
	}

	jobs := make([]ScoredJob, 0, len(matches))
	for _, m := range matches {
		jobs = append(jobs, jobFromMatch(m))
	}
	slog.Info("jobindex: retrieved candidates",
		slog.Int("count", len(jobs)),
		slog.String("role", targetRole))

	scored, err := r.scoreWithLLM(ctx, resume, targetRole, missingSkills, jobs)
	if err != nil {
		slog.Warn("jobindex: LLM scoring failed, using vector scores", slog.Any("error", err))
		return fallbackScores(jobs), nil
	}
	return scored, nil
}

// jobFromMatch maps untrusted index metadata onto a ScoredJob.
func jobFromMatch(m QueryMatch) ScoredJob {
	job := ScoredJob{
		ID:          m.ID,
		VectorScore: math.Round(m.Score*1000) / 1000,
	}
	if v, ok := m.Metadata["title"].(string); ok {
		job.Title = v
	}
	if v, ok := m.Metadata["company"].(string); ok {
		job.Company = v
	}
	if raw, ok := m.Metadata["required_skills"].([]any); ok {
		for _, s := range raw {
			if str, ok := s.(string); ok {
				job.RequiredSkills = append(job.RequiredSkills, str)
			}
		}
	}
	return job
}

type llmJobScore struct {
	ID                  string `json:"id"`
	MatchScore          int    `json:"match_score"`
	MatchLabel          string `json:"match_label"`
	WhyMatch            string `json:"why_match"`
	WhyGap              string `json:"why_gap"`
	BestSkillToCloseGap string `json:"best_skill_to_close_gap"`
}

func (r *Retriever) scoreWithLLM(ctx context.Context, resume, targetRole string, missingSkills []string, jobs []ScoredJob) ([]ScoredJob, error) {
	if len(jobs) > scoreTopN {
		jobs = jobs[:scoreTopN]
	}

	missing := missingSkills
	if len(missing) > 5 {
		missing = missing[:5]
	}
	var missingText strings.Builder
	for _, s := range missing {
		fmt.Fprintf(&missingText, "- %s\n", s)
	}

	var jobsText strings.Builder
	for i, job := range jobs {
		fmt.Fprintf(&jobsText, "JOB_%d (id: %s):\nTitle: %s at %s\nRequired Skills: %s\n\n",
			i+1, job.ID, job.Title, job.Company, strings.Join(job.RequiredSkills, ", "))
	}

	prompt := fmt.Sprintf(jobScoringPrompt,
		engine.TruncateRunes(resume, 1500, ""),
		targetRole,
		missingText.String(),
		jobsText.String(),
	)

	raw, err := engine.CallLLM(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var scores []llmJobScore
	if err := json.Unmarshal([]byte(raw), &scores); err != nil {
		return nil, fmt.Errorf("%w: parse scores: %v", engine.ErrLLM, err)
	}

	scoreMap := make(map[string]llmJobScore, len(scores))
	for _, s := range scores {
		scoreMap[s.ID] = s
	}

	var out []ScoredJob
	for _, job := range jobs {
		s, ok := scoreMap[job.ID]
		if !ok {
			continue
		}
		job.MatchScore = s.MatchScore
		job.MatchLabel = s.MatchLabel
		job.WhyMatch = s.WhyMatch
		job.WhyGap = s.WhyGap
		job.BestSkillToCloseGap = s.BestSkillToCloseGap
		out = append(out, job)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchScore > out[j].MatchScore })
	if len(out) > returnTopN {
		out = out[:returnTopN]
	}
	return out, nil
}

// fallbackScores converts vector similarity into estimated match scores
// when the LLM is unavailable.
func fallbackScores(jobs []ScoredJob) []ScoredJob {
	for i := range jobs {
		jobs[i].MatchScore = int(math.Round(jobs[i].VectorScore * 100))
		jobs[i].MatchLabel = "Estimated"
		jobs[i].WhyMatch = "Semantic similarity match"
		jobs[i].WhyGap = "Detailed analysis unavailable"
	}
	sort.SliceStable(jobs, func(i, j int) bool { return jobs[i].MatchScore > jobs[j].MatchScore })
	if len(jobs) > returnTopN {
		jobs = jobs[:returnTopN]
	}
	return jobs
}
