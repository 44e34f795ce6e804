package skills

import (
	"reflect"
	"testing"
)

func TestDailyStats_EmptyDefaults(t *testing.T) {
	stats := NewDailyStats()
	snap := stats.TodaysStats()

	if snap.Date == "" {
		t.Error("expected date to be set")
	}
	if snap.Analyses != 0 {
		t.Errorf("expected 0 analyses, got %d", snap.Analyses)
	}
	if snap.AvgMatchScore != 0 {
		t.Errorf("expected 0 avg, got %v", snap.AvgMatchScore)
	}
	if snap.TopSkillGaps == nil || snap.TopTargetRoles == nil || snap.TrendingSkills == nil {
		t.Error("list fields must be non-nil")
	}
}

func TestDailyStats_RecordAndAverage(t *testing.T) {
	stats := NewDailyStats()
	stats.Record(80, []string{"Docker", "Kubernetes"}, "Platform Engineer")
	stats.Record(60, []string{"docker"}, "Platform Engineer\nLong description below")
	stats.Record(70, nil, "SRE")

	snap := stats.TodaysStats()
	if snap.Analyses != 3 {
		t.Errorf("expected 3 analyses, got %d", snap.Analyses)
	}
	if snap.AvgMatchScore != 70 {
		t.Errorf("expected avg 70, got %v", snap.AvgMatchScore)
	}

	// docker counted twice (case-insensitive), so it ranks first.
	if len(snap.TopSkillGaps) == 0 || snap.TopSkillGaps[0] != "docker" {
		t.Errorf("expected docker as top gap, got %v", snap.TopSkillGaps)
	}

	// Role keys come from the first line, lowercased.
	if len(snap.TopTargetRoles) == 0 || snap.TopTargetRoles[0] != "platform engineer" {
		t.Errorf("expected platform engineer as top role, got %v", snap.TopTargetRoles)
	}
}

func TestDailyStats_TopGapsCapped(t *testing.T) {
	stats := NewDailyStats()
	gaps := []string{"a", "b", "c", "d", "e", "f", "g"}
	stats.Record(50, gaps, "role")

	snap := stats.TodaysStats()
	if len(snap.TopSkillGaps) != 5 {
		t.Errorf("expected top 5 gaps, got %d", len(snap.TopSkillGaps))
	}
}

func TestDailyStats_Trending(t *testing.T) {
	stats := NewDailyStats()
	stats.UpdateTrending([]string{"Rust", "Kubernetes"})

	snap := stats.TodaysStats()
	want := []string{"Rust", "Kubernetes"}
	if !reflect.DeepEqual(snap.TrendingSkills, want) {
		t.Errorf("expected %v, got %v", want, snap.TrendingSkills)
	}
}

func TestDailyStats_RolloverOnNewDay(t *testing.T) {
	stats := NewDailyStats()
	stats.Record(90, []string{"Go"}, "backend")
	stats.UpdateTrending([]string{"Go"})

	// Force a stale day marker; the next write rolls everything over.
	stats.mu.Lock()
	stats.day = "2000-01-01"
	stats.mu.Unlock()

	stats.Record(40, []string{"Rust"}, "systems")
	snap := stats.TodaysStats()

	if snap.Analyses != 1 {
		t.Errorf("expected rollover to keep only today's record, got %d", snap.Analyses)
	}
	if snap.AvgMatchScore != 40 {
		t.Errorf("expected avg 40, got %v", snap.AvgMatchScore)
	}
	if len(snap.TrendingSkills) != 0 {
		t.Errorf("expected trending cleared on rollover, got %v", snap.TrendingSkills)
	}
}
