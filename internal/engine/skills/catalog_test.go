package skills

import (
	"strings"
	"testing"
)

func TestCatalog_EdgeEndpointsExist(t *testing.T) {
	known := make(map[string]bool)
	for _, s := range Catalog() {
		known[strings.ToLower(s.Name)] = true
	}
	for _, e := range PrerequisiteEdges() {
		if !known[strings.ToLower(e.Prereq)] {
			t.Errorf("edge prereq %q not in catalog", e.Prereq)
		}
		if !known[strings.ToLower(e.Dependent)] {
			t.Errorf("edge dependent %q not in catalog", e.Dependent)
		}
	}
}

func TestCatalog_NoDuplicateSkills(t *testing.T) {
	seen := make(map[string]string)
	for _, s := range Catalog() {
		key := strings.ToLower(s.Name)
		if prev, ok := seen[key]; ok {
			t.Errorf("duplicate skill (case-insensitive): %q and %q", prev, s.Name)
		}
		seen[key] = s.Name
	}
}

func TestCatalog_PositiveEstimates(t *testing.T) {
	for _, s := range Catalog() {
		if s.EstimatedDays <= 0 {
			t.Errorf("skill %q has non-positive estimate %d", s.Name, s.EstimatedDays)
		}
	}
}

// The static prerequisite graph must be acyclic: sorting every catalog
// skill at once must visit all of them without the cycle fallback.
func TestCatalog_Acyclic(t *testing.T) {
	names := SkillNames()
	ordered := topologicalSort(names, PrerequisiteEdges())
	if len(ordered) != len(names) {
		t.Fatalf("expected %d skills in topological order, got %d", len(names), len(ordered))
	}

	pos := make(map[string]int, len(ordered))
	for i, s := range ordered {
		pos[strings.ToLower(s)] = i
	}
	for _, e := range PrerequisiteEdges() {
		if pos[strings.ToLower(e.Prereq)] > pos[strings.ToLower(e.Dependent)] {
			t.Errorf("cycle or bad order: %s after %s", e.Prereq, e.Dependent)
		}
	}
}
