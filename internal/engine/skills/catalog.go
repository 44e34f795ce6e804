// Package skills implements the skill-gap analysis core: the prerequisite
// DAG catalog, the learning-path planner, the gap analyzer, the evidence /
// interview / rubric catalogs, and the pipeline that composes them.
package skills

import "strings"

// Skill is immutable reference data: a name, an informational category,
// and a baseline learning-time estimate in days.
type Skill struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	EstimatedDays int    `json:"estimated_days"`
}

// Edge is a prerequisite relationship: Prereq must be scheduled strictly
// before Dependent whenever both appear in a plan.
type Edge struct {
	Prereq    string `json:"prereq"`
	Dependent string `json:"dependent"`
}

// DefaultEstimatedDays is used for skills outside the catalog
// (free-text skills named by the reasoning call).
const DefaultEstimatedDays = 14

// catalogSkills is the full skill vocabulary. Loaded once, never mutated.
var catalogSkills = []Skill{
	// Languages
	{Name: "Python", Category: "language", EstimatedDays: 7},
	{Name: "JavaScript", Category: "language", EstimatedDays: 7},
	{Name: "Java", Category: "language", EstimatedDays: 10},
	{Name: "Go", Category: "language", EstimatedDays: 10},
	// Data foundations
	{Name: "SQL", Category: "data", EstimatedDays: 5},
	{Name: "PostgreSQL", Category: "data", EstimatedDays: 5},
	{Name: "MongoDB", Category: "data", EstimatedDays: 5},
	{Name: "Redis", Category: "data", EstimatedDays: 4},
	// Tools
	{Name: "Git", Category: "tool", EstimatedDays: 3},
	// Operations
	{Name: "Linux", Category: "operations", EstimatedDays: 5},
	{Name: "Nginx", Category: "operations", EstimatedDays: 3},
	// Frontend
	{Name: "HTML/CSS", Category: "frontend", EstimatedDays: 5},
	{Name: "TypeScript", Category: "language", EstimatedDays: 7},
	{Name: "React", Category: "frontend", EstimatedDays: 10},
	// Runtimes / Frameworks
	{Name: "Node.js", Category: "runtime", EstimatedDays: 7},
	{Name: "Django", Category: "framework", EstimatedDays: 7},
	{Name: "FastAPI", Category: "framework", EstimatedDays: 5},
	{Name: "Spring Boot", Category: "framework", EstimatedDays: 10},
	// Architecture
	{Name: "REST APIs", Category: "architecture", EstimatedDays: 4},
	{Name: "GraphQL", Category: "architecture", EstimatedDays: 5},
	{Name: "Microservices", Category: "architecture", EstimatedDays: 10},
	{Name: "System Design", Category: "architecture", EstimatedDays: 14},
	// DevOps
	{Name: "Docker", Category: "devops", EstimatedDays: 5},
	{Name: "Kubernetes", Category: "devops", EstimatedDays: 7},
	{Name: "CI/CD", Category: "devops", EstimatedDays: 5},
	{Name: "Terraform", Category: "devops", EstimatedDays: 7},
	// Cloud
	{Name: "AWS", Category: "cloud", EstimatedDays: 10},
	{Name: "GCP", Category: "cloud", EstimatedDays: 10},
	{Name: "Azure", Category: "cloud", EstimatedDays: 10},
	// Data engineering
	{Name: "Kafka", Category: "data", EstimatedDays: 7},
	{Name: "Spark", Category: "data", EstimatedDays: 10},
	{Name: "Airflow", Category: "data", EstimatedDays: 7},
}

// catalogEdges is the prerequisite edge set. Restricted to catalogSkills
// it forms a DAG; catalog_test.go enforces that invariant.
var catalogEdges = []Edge{
	// Language → framework chains
	{"JavaScript", "TypeScript"},
	{"JavaScript", "React"},
	{"JavaScript", "Node.js"},
	{"HTML/CSS", "React"},
	{"Python", "Django"},
	{"Python", "FastAPI"},
	{"Java", "Spring Boot"},
	// SQL → database chains
	{"SQL", "PostgreSQL"},
	{"SQL", "MongoDB"},
	{"SQL", "Redis"},
	// API layer
	{"REST APIs", "FastAPI"},
	{"REST APIs", "GraphQL"},
	{"REST APIs", "Microservices"},
	// Linux → infrastructure
	{"Linux", "Docker"},
	{"Linux", "AWS"},
	{"Linux", "GCP"},
	{"Linux", "Azure"},
	{"Linux", "Nginx"},
	// DevOps chains
	{"Docker", "Kubernetes"},
	{"Docker", "CI/CD"},
	{"Docker", "Microservices"},
	{"Git", "CI/CD"},
	{"AWS", "Terraform"},
	// Data engineering
	{"Python", "Spark"},
	{"SQL", "Spark"},
	{"Python", "Airflow"},
	{"SQL", "Airflow"},
	{"Python", "Kafka"},
	// Advanced patterns
	{"Microservices", "System Design"},
	{"SQL", "System Design"},
}

// EstimatedDays returns a lowercase-name → estimated-days mapping.
func EstimatedDays() map[string]int {
	m := make(map[string]int, len(catalogSkills))
	for _, s := range catalogSkills {
		m[strings.ToLower(s.Name)] = s.EstimatedDays
	}
	return m
}

// PrerequisiteEdges returns a copy of the (prerequisite, dependent) edge list.
func PrerequisiteEdges() []Edge {
	out := make([]Edge, len(catalogEdges))
	copy(out, catalogEdges)
	return out
}

// SkillNames returns all skill display names.
func SkillNames() []string {
	out := make([]string, len(catalogSkills))
	for i, s := range catalogSkills {
		out[i] = s.Name
	}
	return out
}

// Catalog returns a copy of the full skill list.
func Catalog() []Skill {
	out := make([]Skill, len(catalogSkills))
	copy(out, catalogSkills)
	return out
}
