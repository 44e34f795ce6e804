package skills

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/skillvector/skillvector/internal/engine"
	"github.com/skillvector/skillvector/internal/engine/jobindex"
)

// AnalysisResult is the complete per-request output. Every field is
// always present and typed regardless of backend degradation: list
// fields are never nil, only possibly empty.
type AnalysisResult struct {
	MatchScore       float64              `json:"match_score"`
	LearningPriority string               `json:"learning_priority"`
	MissingSkills    []string             `json:"missing_skills"`
	LearningPath     []PathStep           `json:"learning_path"`
	Evidence         []EvidenceItem       `json:"evidence"`
	InterviewPrep    []InterviewPrep      `json:"interview_prep"`
	Rubrics          []Rubric             `json:"rubrics"`
	RelatedJobs      []jobindex.ScoredJob `json:"related_jobs"`
	RequestID        string               `json:"request_id"`
	LatencyMS        int64                `json:"latency_ms"`
}

// Pipeline composes gap analysis, path planning, evidence, interview and
// rubric generation, and optional job retrieval into one response. Each
// stage is isolated: its failure is logged and replaced with a safe
// default, never aborting the request. The one exception is input
// validation, which is the caller's fault and propagates.
//
// Collaborators are function fields so tests can force individual stages
// to fail.
type Pipeline struct {
	analyze      func(ctx context.Context, resume, job string) (*GapResult, error)
	plan         func(ctx context.Context, missing []string) []PathStep
	evidence     func(path []PathStep) []EvidenceItem
	interview    func(missing []string) []InterviewPrep
	rubrics      func(missing []string) []Rubric
	retrieveJobs func(ctx context.Context, resume, role string, missing []string) ([]jobindex.ScoredJob, error)

	stats *DailyStats // nil = no daily stats recording
}

// NewPipeline wires the default collaborators. retriever and stats may
// be nil (job retrieval disabled / stats disabled).
func NewPipeline(planner *Planner, retriever *jobindex.Retriever, stats *DailyStats) *Pipeline {
	p := &Pipeline{
		analyze:   Analyze,
		plan:      planner.Plan,
		evidence:  GenerateEvidence,
		interview: GenerateInterviewPrep,
		rubrics:   GenerateRubrics,
		stats:     stats,
	}
	if retriever != nil {
		p.retrieveJobs = retriever.RetrieveAndScore
	}
	return p
}

// Run executes the full analysis for a resume / target-job pair.
// Only validation errors are returned; every other failure degrades the
// corresponding field to its safe default.
func (p *Pipeline) Run(ctx context.Context, resume, targetJob string) (*AnalysisResult, error) {
	engine.IncrAnalyzeRequests()
	requestID := uuid.NewString()[:8]
	start := time.Now()

	gap, err := p.analyze(ctx, resume, targetJob)
	if err != nil {
		return nil, err
	}

	priority := PriorityForScore(gap.MatchScore)

	missing := gap.MissingSkills
	if missing == nil {
		missing = []string{}
	}

	path := runStage(requestID, "plan", flatFallbackPath(missing), func() []PathStep {
		return p.plan(ctx, missing)
	})
	if path == nil {
		path = []PathStep{}
	}

	evidence := runStage(requestID, "evidence", []EvidenceItem{}, func() []EvidenceItem {
		return p.evidence(path)
	})
	interviewPrep := runStage(requestID, "interview", []InterviewPrep{}, func() []InterviewPrep {
		return p.interview(missing)
	})
	rubrics := runStage(requestID, "rubrics", []Rubric{}, func() []Rubric {
		return p.rubrics(missing)
	})

	relatedJobs := []jobindex.ScoredJob{}
	if p.retrieveJobs != nil {
		relatedJobs = runStage(requestID, "related_jobs", []jobindex.ScoredJob{}, func() []jobindex.ScoredJob {
			jobs, err := p.retrieveJobs(ctx, resume, targetJob, missing)
			if err != nil {
				slog.Warn("pipeline: job retrieval failed, returning empty list",
					slog.String("request_id", requestID),
					slog.Int("missing_skills", len(missing)),
					slog.Any("error", err))
				return []jobindex.ScoredJob{}
			}
			return jobs
		})
	}
	if relatedJobs == nil {
		relatedJobs = []jobindex.ScoredJob{}
	}

	if p.stats != nil {
		p.stats.Record(gap.MatchScore, missing, targetJob)
	}

	latency := time.Since(start).Milliseconds()
	if latency < 0 {
		latency = 0
	}

	return &AnalysisResult{
		MatchScore:       gap.MatchScore,
		LearningPriority: priority,
		MissingSkills:    missing,
		LearningPath:     path,
		Evidence:         evidence,
		InterviewPrep:    interviewPrep,
		Rubrics:          rubrics,
		RelatedJobs:      relatedJobs,
		RequestID:        requestID,
		LatencyMS:        latency,
	}, nil
}

// runStage executes one pipeline stage, converting a panic into the
// stage's fallback value. Failures never cross stage boundaries.
func runStage[T any](requestID, stage string, fallback T, fn func() T) (out T) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("pipeline: stage panicked, using fallback",
				slog.String("request_id", requestID),
				slog.String("stage", stage),
				slog.Any("panic", r))
			out = fallback
		}
	}()
	return fn()
}

// flatFallbackPath is the plan substitute when the planner itself fails:
// every missing skill in input order with the default estimates.
func flatFallbackPath(missing []string) []PathStep {
	path := make([]PathStep, 0, len(missing))
	for _, skill := range missing {
		path = append(path, PathStep{
			Skill:          skill,
			EstimatedDays:  DefaultEstimatedDays,
			EstimatedWeeks: 2,
		})
	}
	return path
}
