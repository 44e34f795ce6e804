package jobindex

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillvector/skillvector/internal/engine"
)

type fakeIndex struct {
	matches []QueryMatch
	err     error
}

func (f fakeIndex) Query(context.Context, []float32, int) ([]QueryMatch, error) {
	return f.matches, f.err
}

type fakeEmbedder struct {
	err error
}

func (f fakeEmbedder) Embed(context.Context, string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []float32{0.1, 0.9}, nil
}

type fakeLLM struct {
	out string
	err error
}

func (f fakeLLM) Complete(context.Context, string, string) (string, error) {
	return f.out, f.err
}

func initRetrieverEngine(t *testing.T, llmOut string, llmErr error) {
	t.Helper()
	engine.Init(engine.Config{
		Embedding: fakeEmbedder{},
		LLMClient: fakeLLM{out: llmOut, err: llmErr},
	})
	t.Cleanup(func() { engine.Init(engine.Config{}) })
}

func sampleMatches() []QueryMatch {
	return []QueryMatch{
		{ID: "job_001", Score: 0.91, Metadata: map[string]any{
			"title": "Platform Engineer", "company": "Acme",
			"required_skills": []any{"Kubernetes", "Terraform"},
		}},
		{ID: "job_002", Score: 0.75, Metadata: map[string]any{
			"title": "Backend Engineer", "company": "Globex",
			"required_skills": []any{"Go", "PostgreSQL"},
		}},
	}
}

func TestRetrieveAndScore_LLMScoring(t *testing.T) {
	initRetrieverEngine(t, `[
		{"id": "job_002", "match_score": 88, "match_label": "Strong Match", "why_match": "solid Go background", "why_gap": "no Postgres", "best_skill_to_close_gap": "PostgreSQL"},
		{"id": "job_001", "match_score": 64, "match_label": "Moderate Match", "why_match": "infra exposure", "why_gap": "no Kubernetes", "best_skill_to_close_gap": "Kubernetes"}
	]`, nil)

	r := NewRetriever(fakeIndex{matches: sampleMatches()})
	jobs, err := r.RetrieveAndScore(context.Background(), "resume", "Backend Engineer", []string{"Kubernetes"})
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	// Sorted by LLM match score descending.
	assert.Equal(t, "job_002", jobs[0].ID)
	assert.Equal(t, 88, jobs[0].MatchScore)
	assert.Equal(t, "Strong Match", jobs[0].MatchLabel)
	assert.Equal(t, "PostgreSQL", jobs[0].BestSkillToCloseGap)
	assert.Equal(t, "job_001", jobs[1].ID)

	// Metadata carried through.
	assert.Equal(t, "Globex", jobs[0].Company)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, jobs[0].RequiredSkills)
	assert.InDelta(t, 0.75, jobs[0].VectorScore, 0.001)
}

func TestRetrieveAndScore_LLMFailureFallsBackToVectorScores(t *testing.T) {
	initRetrieverEngine(t, "", errors.New("llm down"))

	r := NewRetriever(fakeIndex{matches: sampleMatches()})
	jobs, err := r.RetrieveAndScore(context.Background(), "resume", "role", nil)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, 91, jobs[0].MatchScore)
	assert.Equal(t, "Estimated", jobs[0].MatchLabel)
	assert.Equal(t, 75, jobs[1].MatchScore)
}

func TestRetrieveAndScore_UnparseableScoresFallBack(t *testing.T) {
	initRetrieverEngine(t, "not json", nil)

	r := NewRetriever(fakeIndex{matches: sampleMatches()})
	jobs, err := r.RetrieveAndScore(context.Background(), "resume", "role", nil)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Estimated", jobs[0].MatchLabel)
}

func TestRetrieveAndScore_EmptyIndex(t *testing.T) {
	initRetrieverEngine(t, "[]", nil)

	r := NewRetriever(fakeIndex{})
	jobs, err := r.RetrieveAndScore(context.Background(), "resume", "role", nil)
	require.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

func TestRetrieveAndScore_IndexErrorPropagates(t *testing.T) {
	initRetrieverEngine(t, "[]", nil)

	r := NewRetriever(fakeIndex{err: errors.New("index unreachable")})
	_, err := r.RetrieveAndScore(context.Background(), "resume", "role", nil)
	require.Error(t, err)
}

func TestRetrieveAndScore_NoEmbedder(t *testing.T) {
	engine.Init(engine.Config{})
	t.Cleanup(func() { engine.Init(engine.Config{}) })

	r := NewRetriever(fakeIndex{matches: sampleMatches()})
	_, err := r.RetrieveAndScore(context.Background(), "resume", "role", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrRetrieval)
}

func TestRetrieveAndScore_UnknownIDsDropped(t *testing.T) {
	initRetrieverEngine(t, `[{"id": "job_999", "match_score": 90}]`, nil)

	r := NewRetriever(fakeIndex{matches: sampleMatches()})
	jobs, err := r.RetrieveAndScore(context.Background(), "resume", "role", nil)
	require.NoError(t, err)
	// The LLM scored a job we never sent; nothing merges, result is empty.
	assert.Empty(t, jobs)
}
