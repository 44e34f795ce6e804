package skills

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type staticEdgeSource struct {
	edges []Edge
	err   error
}

func (s staticEdgeSource) FetchEdges(context.Context) ([]Edge, error) {
	return s.edges, s.err
}

func pathSkills(path []PathStep) []string {
	out := make([]string, len(path))
	for i, step := range path {
		out[i] = step.Skill
	}
	return out
}

func TestPlan_Empty(t *testing.T) {
	p := NewPlanner(nil)
	path := p.Plan(context.Background(), nil)
	if path == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(path) != 0 {
		t.Errorf("expected empty path, got %v", path)
	}
}

func TestPlan_AlphabeticalWhenUnconstrained(t *testing.T) {
	p := NewPlanner(nil)
	path := p.Plan(context.Background(), []string{"Rust", "Elixir", "Haskell"})

	want := []string{"Elixir", "Haskell", "Rust"}
	if got := pathSkills(path); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPlan_PrerequisiteOrdering(t *testing.T) {
	p := NewPlanner(nil)

	path := p.Plan(context.Background(), []string{"Kubernetes", "Docker"})
	want := []string{"Docker", "Kubernetes"}
	if got := pathSkills(path); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	path = p.Plan(context.Background(), []string{"Kubernetes", "Docker", "Linux"})
	want = []string{"Linux", "Docker", "Kubernetes"}
	if got := pathSkills(path); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPlan_PrereqBeforeDependent(t *testing.T) {
	p := NewPlanner(nil)
	input := []string{"System Design", "Microservices", "Docker", "Kubernetes", "SQL", "Linux"}
	path := p.Plan(context.Background(), input)

	if len(path) != len(input) {
		t.Fatalf("expected %d steps, got %d", len(input), len(path))
	}

	pos := make(map[string]int, len(path))
	for i, step := range path {
		pos[step.Skill] = i
	}
	for _, e := range PrerequisiteEdges() {
		pi, pok := pos[e.Prereq]
		di, dok := pos[e.Dependent]
		if pok && dok && pi > di {
			t.Errorf("%s ordered after its dependent %s", e.Prereq, e.Dependent)
		}
	}
}

func TestPlan_DedupAndCasing(t *testing.T) {
	p := NewPlanner(nil)
	path := p.Plan(context.Background(), []string{"Docker", "docker", "DOCKER", "Kubernetes"})

	if len(path) != 2 {
		t.Fatalf("expected 2 steps after dedup, got %d: %v", len(path), pathSkills(path))
	}
	// First-seen casing wins.
	if path[0].Skill != "Docker" {
		t.Errorf("expected first-seen casing 'Docker', got %q", path[0].Skill)
	}
}

func TestPlan_UnknownSkillDefaults(t *testing.T) {
	p := NewPlanner(nil)
	path := p.Plan(context.Background(), []string{"Quantum Basket Weaving"})

	if len(path) != 1 {
		t.Fatalf("expected 1 step, got %d", len(path))
	}
	if path[0].EstimatedDays != DefaultEstimatedDays {
		t.Errorf("expected %d days, got %d", DefaultEstimatedDays, path[0].EstimatedDays)
	}
	if path[0].EstimatedWeeks != 2 {
		t.Errorf("expected 2 weeks, got %d", path[0].EstimatedWeeks)
	}
}

func TestPlan_WeeksNeverZero(t *testing.T) {
	p := NewPlanner(nil)
	// Git is a 3-day skill in the catalog.
	path := p.Plan(context.Background(), []string{"Git"})
	if len(path) != 1 {
		t.Fatalf("expected 1 step, got %d", len(path))
	}
	if path[0].EstimatedWeeks != 1 {
		t.Errorf("expected minimum 1 week, got %d", path[0].EstimatedWeeks)
	}
}

func TestPlan_Idempotent(t *testing.T) {
	p := NewPlanner(nil)
	input := []string{"Python", "Kafka", "Airflow", "SQL", "Docker"}

	first := p.Plan(context.Background(), input)
	second := p.Plan(context.Background(), input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("plan not deterministic:\nfirst:  %v\nsecond: %v", first, second)
	}
}

func TestPlan_CycleTolerated(t *testing.T) {
	src := staticEdgeSource{edges: []Edge{
		{Prereq: "A", Dependent: "B"},
		{Prereq: "B", Dependent: "C"},
		{Prereq: "C", Dependent: "A"},
	}}
	p := NewPlanner(src)

	path := p.Plan(context.Background(), []string{"C", "A", "B"})
	if len(path) != 3 {
		t.Fatalf("cycle must not drop skills: got %d steps", len(path))
	}
	// The whole cycle degrades to alphabetical order.
	want := []string{"A", "B", "C"}
	if got := pathSkills(path); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPlan_SelfLoopIgnored(t *testing.T) {
	src := staticEdgeSource{edges: []Edge{
		{Prereq: "Docker", Dependent: "Docker"},
		{Prereq: "Docker", Dependent: "Kubernetes"},
	}}
	p := NewPlanner(src)

	path := p.Plan(context.Background(), []string{"Kubernetes", "Docker"})
	want := []string{"Docker", "Kubernetes"}
	if got := pathSkills(path); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPlan_DuplicateEdgesCountedOnce(t *testing.T) {
	src := staticEdgeSource{edges: []Edge{
		{Prereq: "Docker", Dependent: "Kubernetes"},
		{Prereq: "docker", Dependent: "kubernetes"},
		{Prereq: "DOCKER", Dependent: "Kubernetes"},
	}}
	p := NewPlanner(src)

	path := p.Plan(context.Background(), []string{"Kubernetes", "Docker"})
	want := []string{"Docker", "Kubernetes"}
	if got := pathSkills(path); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPlan_SourceErrorFallsBackToCatalog(t *testing.T) {
	src := staticEdgeSource{err: errors.New("connection refused")}
	p := NewPlanner(src)

	// Catalog edges still apply after the fallback.
	path := p.Plan(context.Background(), []string{"Kubernetes", "Docker"})
	want := []string{"Docker", "Kubernetes"}
	if got := pathSkills(path); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPlan_ExternalEdgesOverrideCatalog(t *testing.T) {
	// External graph reverses the catalog's Docker → Kubernetes edge.
	src := staticEdgeSource{edges: []Edge{
		{Prereq: "Kubernetes", Dependent: "Docker"},
	}}
	p := NewPlanner(src)

	path := p.Plan(context.Background(), []string{"Docker", "Kubernetes"})
	want := []string{"Kubernetes", "Docker"}
	if got := pathSkills(path); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPlan_BlankSkillsSkipped(t *testing.T) {
	p := NewPlanner(nil)
	path := p.Plan(context.Background(), []string{"  ", "", "Git"})
	if len(path) != 1 || path[0].Skill != "Git" {
		t.Errorf("expected only Git, got %v", pathSkills(path))
	}
}
