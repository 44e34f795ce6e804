package skills

import "fmt"

// RubricCriterion is one weighted assessment dimension with performance levels.
type RubricCriterion struct {
	Name   string            `json:"name"`
	Weight int               `json:"weight"`
	Levels map[string]string `json:"levels"`
}

// Rubric bundles the assessment criteria for one skill's portfolio project.
type Rubric struct {
	Skill    string            `json:"skill"`
	Criteria []RubricCriterion `json:"criteria"`
}

var rubricCatalog = map[string][]RubricCriterion{
	"python": {
		{
			Name: "Code Quality", Weight: 25,
			Levels: map[string]string{
				"Excellent":  "Clean, idiomatic Python following PEP 8. Type hints, meaningful names, appropriate data structures.",
				"Good":       "Readable code with minor style inconsistencies. Some type hints.",
				"Needs Work": "Functional but hard to read. No type hints or documentation.",
			},
		},
		{
			Name: "Testing", Weight: 25,
			Levels: map[string]string{
				"Excellent":  "Comprehensive unit and integration tests, edge cases covered, fixtures and parametrize used well.",
				"Good":       "Tests for main functionality. Some edge cases covered.",
				"Needs Work": "Few or no tests. No edge case coverage.",
			},
		},
		{
			Name: "Architecture", Weight: 25,
			Levels: map[string]string{
				"Excellent":  "Clear separation of concerns, appropriate design patterns, easy to extend.",
				"Good":       "Reasonable structure with some modularity.",
				"Needs Work": "Monolithic code with mixed concerns.",
			},
		},
		{
			Name: "Documentation", Weight: 25,
			Levels: map[string]string{
				"Excellent":  "Clear README with setup, usage examples, and architecture overview. Docstrings on public APIs.",
				"Good":       "README with basic setup steps. Some docstrings.",
				"Needs Work": "Minimal or no documentation.",
			},
		},
	},
	"docker": {
		{
			Name: "Dockerfile Quality", Weight: 30,
			Levels: map[string]string{
				"Excellent":  "Multi-stage build, minimal image size, non-root user, proper layer caching, .dockerignore configured.",
				"Good":       "Working Dockerfile with reasonable layer ordering.",
				"Needs Work": "Large image, no caching optimization, runs as root.",
			},
		},
		{
			Name: "Compose Setup", Weight: 25,
			Levels: map[string]string{
				"Excellent":  "Services isolated, health checks, named volumes, networks configured, env externalized.",
				"Good":       "Working compose file with multiple services.",
				"Needs Work": "Hardcoded values, no health checks.",
			},
		},
		{
			Name: "Operational Readiness", Weight: 25,
			Levels: map[string]string{
				"Excellent":  "Graceful shutdown, log output to stdout, resource limits set, images pinned by digest.",
				"Good":       "Containers restart cleanly, basic logging in place.",
				"Needs Work": "No shutdown handling, logs written inside the container.",
			},
		},
		{
			Name: "Documentation", Weight: 20,
			Levels: map[string]string{
				"Excellent":  "README covers build, run, and debug workflows with troubleshooting notes.",
				"Good":       "README with build and run instructions.",
				"Needs Work": "Minimal or no documentation.",
			},
		},
	},
	"kubernetes": {
		{
			Name: "Manifest Quality", Weight: 30,
			Levels: map[string]string{
				"Excellent":  "Probes, resource requests/limits, labels and selectors consistent, config externalized.",
				"Good":       "Working Deployment and Service manifests.",
				"Needs Work": "Bare pod specs, no probes, hardcoded config.",
			},
		},
		{
			Name: "Resilience", Weight: 30,
			Levels: map[string]string{
				"Excellent":  "Rolling updates verified, HPA configured, pod disruption budget, tested failure recovery.",
				"Good":       "Rolling updates work, replicas above one.",
				"Needs Work": "Single replica, untested updates.",
			},
		},
		{
			Name: "Security", Weight: 20,
			Levels: map[string]string{
				"Excellent":  "Non-root containers, NetworkPolicies, Secrets for credentials, least-privilege RBAC.",
				"Good":       "Secrets used for credentials.",
				"Needs Work": "Credentials in ConfigMaps or manifests.",
			},
		},
		{
			Name: "Documentation", Weight: 20,
			Levels: map[string]string{
				"Excellent":  "README covers deploy, scale, and rollback, with architecture diagram.",
				"Good":       "README with deploy instructions.",
				"Needs Work": "Minimal or no documentation.",
			},
		},
	},
}

// genericRubric covers skills without a dedicated rubric.
func genericRubric(skill string) []RubricCriterion {
	return []RubricCriterion{
		{
			Name: "Working Implementation", Weight: 40,
			Levels: map[string]string{
				"Excellent":  fmt.Sprintf("The project demonstrates production-grade use of %s with edge cases handled.", skill),
				"Good":       fmt.Sprintf("Core %s functionality works end to end.", skill),
				"Needs Work": "Incomplete or frequently broken functionality.",
			},
		},
		{
			Name: "Understanding", Weight: 30,
			Levels: map[string]string{
				"Excellent":  fmt.Sprintf("Design decisions around %s are explained and justified.", skill),
				"Good":       "The main concepts are applied correctly.",
				"Needs Work": "Copy-pasted usage without explanation.",
			},
		},
		{
			Name: "Documentation", Weight: 30,
			Levels: map[string]string{
				"Excellent":  "Clear README with setup, usage, and lessons learned.",
				"Good":       "README with basic setup steps.",
				"Needs Work": "Minimal or no documentation.",
			},
		},
	}
}

// GenerateRubrics returns an assessment rubric per missing skill so the
// candidate knows what a strong demonstration looks like. Never fails;
// one entry per input skill.
func GenerateRubrics(missingSkills []string) []Rubric {
	rubrics := make([]Rubric, 0, len(missingSkills))
	for _, skill := range missingSkills {
		criteria, ok := rubricCatalog[normalizeSkill(skill)]
		if !ok {
			criteria = genericRubric(skill)
		}
		rubrics = append(rubrics, Rubric{Skill: skill, Criteria: criteria})
	}
	return rubrics
}
