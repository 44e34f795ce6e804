package skills

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sync"
	"testing"
)

// resetStore resets the singleton so each test gets a fresh DB.
func resetStore(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	analysisDB = nil
	analysisErr = nil
	analysisOnce = sync.Once{}
	return filepath.Join(dir, ".skillvector", "analyses.db")
}

func sampleResult(requestID string, score float64) *AnalysisResult {
	return &AnalysisResult{
		MatchScore:       score,
		LearningPriority: PriorityMedium,
		MissingSkills:    []string{"Docker"},
		LearningPath:     []PathStep{{Skill: "Docker", EstimatedDays: 7, EstimatedWeeks: 1}},
		Evidence:         []EvidenceItem{},
		InterviewPrep:    []InterviewPrep{},
		Rubrics:          []Rubric{},
		RequestID:        requestID,
		LatencyMS:        12,
	}
}

func TestSQLiteStore_SaveAndList(t *testing.T) {
	resetStore(t)
	ctx := context.Background()
	store := SQLiteStore{}

	if err := store.SaveAnalysis(ctx, sampleResult("req-1", 55), "resume one", "job one"); err != nil {
		t.Fatalf("SaveAnalysis error: %v", err)
	}
	if err := store.SaveAnalysis(ctx, sampleResult("req-2", 80), "resume two", "job two"); err != nil {
		t.Fatalf("SaveAnalysis error: %v", err)
	}

	records, err := store.RecentAnalyses(ctx, 10)
	if err != nil {
		t.Fatalf("RecentAnalyses error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	// Newest first.
	if records[0].RequestID != "req-2" {
		t.Errorf("expected req-2 first, got %q", records[0].RequestID)
	}
	if records[0].MatchScore != 80 {
		t.Errorf("expected score 80, got %v", records[0].MatchScore)
	}

	// The stored result JSON round-trips.
	var decoded AnalysisResult
	if err := json.Unmarshal([]byte(records[0].ResultJSON), &decoded); err != nil {
		t.Fatalf("result JSON should decode: %v", err)
	}
	if decoded.RequestID != "req-2" {
		t.Errorf("expected decoded request id req-2, got %q", decoded.RequestID)
	}
}

func TestSQLiteStore_TruncatesInputs(t *testing.T) {
	resetStore(t)
	ctx := context.Background()
	store := SQLiteStore{}

	long := make([]byte, 5000)
	for i := range long {
		long[i] = 'x'
	}
	if err := store.SaveAnalysis(ctx, sampleResult("req-long", 50), string(long), "short job"); err != nil {
		t.Fatalf("SaveAnalysis error: %v", err)
	}

	records, err := store.RecentAnalyses(ctx, 1)
	if err != nil {
		t.Fatalf("RecentAnalyses error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if len(records[0].ResumeText) > storedInputLimit+10 {
		t.Errorf("resume should be truncated, got %d chars", len(records[0].ResumeText))
	}
}

func TestSQLiteStore_EmptyHistory(t *testing.T) {
	resetStore(t)

	records, err := SQLiteStore{}.RecentAnalyses(context.Background(), 5)
	if err != nil {
		t.Fatalf("RecentAnalyses error: %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", records)
	}
}

func TestSQLiteStore_LimitClamped(t *testing.T) {
	resetStore(t)
	ctx := context.Background()
	store := SQLiteStore{}

	for i := 0; i < 3; i++ {
		if err := store.SaveAnalysis(ctx, sampleResult("req", 50), "resume text", "job text"); err != nil {
			t.Fatalf("SaveAnalysis error: %v", err)
		}
	}

	records, err := store.RecentAnalyses(ctx, -1)
	if err != nil {
		t.Fatalf("RecentAnalyses error: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("expected default limit to return all 3, got %d", len(records))
	}
}
