package skills

import "testing"

func TestGenerateRubrics_KnownSkillWeightsSum(t *testing.T) {
	rubrics := GenerateRubrics([]string{"Python"})

	if len(rubrics) != 1 {
		t.Fatalf("expected 1 rubric, got %d", len(rubrics))
	}
	total := 0
	for _, c := range rubrics[0].Criteria {
		total += c.Weight
		for _, level := range []string{"Excellent", "Good", "Needs Work"} {
			if _, ok := c.Levels[level]; !ok {
				t.Errorf("criterion %q missing level %q", c.Name, level)
			}
		}
	}
	if total != 100 {
		t.Errorf("weights should sum to 100, got %d", total)
	}
}

func TestGenerateRubrics_UnknownSkillGeneric(t *testing.T) {
	rubrics := GenerateRubrics([]string{"Prolog"})

	if len(rubrics) != 1 {
		t.Fatalf("expected 1 rubric, got %d", len(rubrics))
	}
	total := 0
	for _, c := range rubrics[0].Criteria {
		total += c.Weight
	}
	if total != 100 {
		t.Errorf("generic weights should sum to 100, got %d", total)
	}
}

func TestGenerateRubrics_OnePerSkill(t *testing.T) {
	skills := []string{"Python", "docker", "Unknown Thing"}
	rubrics := GenerateRubrics(skills)
	if len(rubrics) != len(skills) {
		t.Fatalf("expected %d rubrics, got %d", len(skills), len(rubrics))
	}
	for i, r := range rubrics {
		if r.Skill != skills[i] {
			t.Errorf("rubric %d: expected %q, got %q", i, skills[i], r.Skill)
		}
	}
}
