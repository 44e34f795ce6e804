package skills

import (
	"strings"
	"testing"
)

func TestGenerateInterviewPrep_KnownSkill(t *testing.T) {
	prep := GenerateInterviewPrep([]string{"Kubernetes"})

	if len(prep) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(prep))
	}
	if prep[0].Skill != "Kubernetes" {
		t.Errorf("expected Kubernetes, got %q", prep[0].Skill)
	}
	if len(prep[0].Questions) != 5 {
		t.Errorf("expected 5 bank questions, got %d", len(prep[0].Questions))
	}
}

func TestGenerateInterviewPrep_CaseInsensitiveLookup(t *testing.T) {
	lower := GenerateInterviewPrep([]string{"docker"})
	upper := GenerateInterviewPrep([]string{"DOCKER"})

	if len(lower) != 1 || len(upper) != 1 {
		t.Fatal("expected 1 entry each")
	}
	if len(lower[0].Questions) != len(upper[0].Questions) {
		t.Error("lookup should be case-insensitive")
	}
}

func TestGenerateInterviewPrep_UnknownSkillGeneric(t *testing.T) {
	prep := GenerateInterviewPrep([]string{"Fortran"})

	if len(prep) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(prep))
	}
	if len(prep[0].Questions) != 3 {
		t.Errorf("expected 3 generic questions, got %d", len(prep[0].Questions))
	}
	for _, q := range prep[0].Questions {
		if !strings.Contains(q, "Fortran") {
			t.Errorf("generic question should name the skill: %q", q)
		}
	}
}

func TestGenerateInterviewPrep_Empty(t *testing.T) {
	prep := GenerateInterviewPrep(nil)
	if prep == nil || len(prep) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", prep)
	}
}
