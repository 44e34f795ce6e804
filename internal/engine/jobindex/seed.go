package jobindex

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/skillvector/skillvector/internal/engine"
)

// seedJob is one entry of the built-in demo corpus used to bootstrap an
// empty index.
type seedJob struct {
	id             string
	title          string
	company        string
	description    string
	requiredSkills []string
}

var seedCorpus = []seedJob{
	{
		id: "job_001", title: "Backend Engineer", company: "Finchline",
		description:    "Build payment APIs in Go and Python. PostgreSQL, Docker, CI/CD pipelines. You own services end to end.",
		requiredSkills: []string{"Go", "Python", "PostgreSQL", "Docker", "CI/CD"},
	},
	{
		id: "job_002", title: "Platform Engineer", company: "Orbit Systems",
		description:    "Kubernetes platform team. Terraform-managed AWS, observability tooling, internal developer platform.",
		requiredSkills: []string{"Kubernetes", "Terraform", "AWS", "Docker", "Linux"},
	},
	{
		id: "job_003", title: "Data Engineer", company: "Harborlight Analytics",
		description:    "Batch and streaming pipelines with Spark, Airflow orchestration, Kafka ingestion, warehouse modeling in SQL.",
		requiredSkills: []string{"Python", "SQL", "Spark", "Airflow", "Kafka"},
	},
	{
		id: "job_004", title: "Full-Stack Developer", company: "Brightpath",
		description:    "React and TypeScript frontend over a Node.js API. GraphQL, REST, PostgreSQL. Product-minded team.",
		requiredSkills: []string{"React", "TypeScript", "Node.js", "GraphQL", "PostgreSQL"},
	},
	{
		id: "job_005", title: "Site Reliability Engineer", company: "Quietgrid",
		description:    "Keep a multi-region platform healthy: Kubernetes, Linux, Nginx, incident response, capacity planning.",
		requiredSkills: []string{"Kubernetes", "Linux", "Nginx", "Docker", "CI/CD"},
	},
	{
		id: "job_006", title: "Java Backend Developer", company: "Ledgerworks",
		description:    "Spring Boot microservices for a core banking ledger. SQL tuning, Kafka events, REST contracts.",
		requiredSkills: []string{"Java", "Spring Boot", "SQL", "Kafka", "Microservices"},
	},
	{
		id: "job_007", title: "Cloud Architect", company: "Northbeam",
		description:    "Design multi-cloud landing zones on AWS and Azure. System design reviews, Terraform modules, governance.",
		requiredSkills: []string{"AWS", "Azure", "Terraform", "System Design", "Linux"},
	},
	{
		id: "job_008", title: "Python Developer", company: "Clearharbor",
		description:    "FastAPI services behind Nginx, Redis caching, Django admin tooling, PostgreSQL storage.",
		requiredSkills: []string{"Python", "FastAPI", "Django", "Redis", "PostgreSQL"},
	},
}

// SeedIndex embeds the built-in corpus and upserts it into the vector
// index. Idempotent: vector ids are stable across runs.
func SeedIndex(ctx context.Context, client *PineconeClient) error {
	if client == nil {
		return fmt.Errorf("%w: no index configured", engine.ErrRetrieval)
	}
	embedder := engine.Cfg.Embedding
	if embedder == nil {
		return fmt.Errorf("%w: no embedder configured", engine.ErrRetrieval)
	}

	vectors := make([]Vector, 0, len(seedCorpus))
	for _, job := range seedCorpus {
		text := fmt.Sprintf("%s at %s. %s Skills: %s",
			job.title, job.company, job.description, strings.Join(job.requiredSkills, ", "))
		vec, err := embedder.Embed(ctx, text)
		if err != nil {
			return fmt.Errorf("embed seed job %s: %w", job.id, err)
		}
		skills := make([]any, len(job.requiredSkills))
		for i, s := range job.requiredSkills {
			skills[i] = s
		}
		vectors = append(vectors, Vector{
			ID:     job.id,
			Values: vec,
			Metadata: map[string]any{
				"title":           job.title,
				"company":         job.company,
				"required_skills": skills,
			},
		})
	}

	if err := client.Upsert(ctx, vectors); err != nil {
		return err
	}
	slog.Info("jobindex: seeded job corpus", slog.Int("jobs", len(vectors)))
	return nil
}
