package skills

import "fmt"

// EvidenceItem is a concrete, resume-ready portfolio project for one skill.
type EvidenceItem struct {
	Skill          string   `json:"skill"`
	Project        string   `json:"project"`
	Description    string   `json:"description"`
	Deliverables   []string `json:"deliverables"`
	EstimatedWeeks int      `json:"estimated_weeks"`
}

// evidenceTemplate is the static part of an EvidenceItem, keyed by
// lowercased skill name.
type evidenceTemplate struct {
	project      string
	description  string
	deliverables []string
}

var evidenceCatalog = map[string]evidenceTemplate{
	"python": {
		project:      "CLI Task Manager with SQLite",
		description:  "Build a command-line task management tool with persistence, categories, priorities, and due dates.",
		deliverables: []string{"cli.py", "models.py", "tests/", "README.md"},
	},
	"docker": {
		project:      "Dockerize a FastAPI Application",
		description:  "Create a production-ready Docker setup for a web service including environment configuration and health checks.",
		deliverables: []string{"Dockerfile", "docker-compose.yml", "README.md"},
	},
	"kubernetes": {
		project:      "Deploy a Service to Kubernetes",
		description:  "Deploy a containerized application to Kubernetes with rolling updates, health checks, and autoscaling.",
		deliverables: []string{"deployment.yaml", "service.yaml", "hpa.yaml", "README.md"},
	},
	"ci/cd": {
		project:      "End-to-End CI/CD Pipeline",
		description:  "Build a pipeline that lints, tests, builds a container image, and deploys on merge to main.",
		deliverables: []string{".github/workflows/ci.yml", "Dockerfile", "README.md"},
	},
	"terraform": {
		project:      "Infrastructure as Code for a Web Stack",
		description:  "Provision a small cloud environment (network, compute, storage) with reusable Terraform modules.",
		deliverables: []string{"main.tf", "modules/", "variables.tf", "README.md"},
	},
	"aws": {
		project:      "Serverless API on AWS",
		description:  "Deploy an HTTP API with Lambda, API Gateway, and DynamoDB, managed through infrastructure as code.",
		deliverables: []string{"template.yaml", "src/", "README.md"},
	},
	"sql": {
		project:      "Analytics Schema and Query Suite",
		description:  "Design a normalized schema for an e-commerce dataset and write the reporting queries against it.",
		deliverables: []string{"schema.sql", "queries.sql", "README.md"},
	},
	"postgresql": {
		project:      "PostgreSQL-backed REST Service",
		description:  "Build a small service with migrations, indexes tuned from EXPLAIN output, and transactional writes.",
		deliverables: []string{"migrations/", "schema.sql", "README.md"},
	},
	"react": {
		project:      "Dashboard SPA with React",
		description:  "Build a data dashboard with routing, state management, and chart components fed from a public API.",
		deliverables: []string{"src/components/", "src/hooks/", "README.md"},
	},
	"kafka": {
		project:      "Event Pipeline with Kafka",
		description:  "Stream events through Kafka topics with a producer, a consumer group, and replay handling.",
		deliverables: []string{"producer/", "consumer/", "docker-compose.yml", "README.md"},
	},
	"microservices": {
		project:      "Two-Service Split with an API Gateway",
		description:  "Split a monolith feature into two services with an API gateway, service discovery, and contract tests.",
		deliverables: []string{"gateway/", "services/", "docker-compose.yml", "README.md"},
	},
	"system design": {
		project:      "Design Document: URL Shortener at Scale",
		description:  "Produce a full design doc covering data model, caching, sharding, and failure modes, with capacity estimates.",
		deliverables: []string{"design.md", "diagrams/", "README.md"},
	},
}

// GenerateEvidence maps each learning-path step to a portfolio project.
// Unknown skills get a generic placeholder project. Never fails; always
// returns one entry per input step.
func GenerateEvidence(learningPath []PathStep) []EvidenceItem {
	evidence := make([]EvidenceItem, 0, len(learningPath))
	for _, step := range learningPath {
		if tmpl, ok := evidenceCatalog[normalizeSkill(step.Skill)]; ok {
			evidence = append(evidence, EvidenceItem{
				Skill:          step.Skill,
				Project:        tmpl.project,
				Description:    tmpl.description,
				Deliverables:   tmpl.deliverables,
				EstimatedWeeks: step.EstimatedWeeks,
			})
			continue
		}
		evidence = append(evidence, EvidenceItem{
			Skill:          step.Skill,
			Project:        fmt.Sprintf("Build a practical project for %s", step.Skill),
			Description:    fmt.Sprintf("Design and ship a small project that demonstrates working knowledge of %s.", step.Skill),
			Deliverables:   []string{"README.md"},
			EstimatedWeeks: step.EstimatedWeeks,
		})
	}
	return evidence
}
