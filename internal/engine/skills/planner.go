package skills

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/skillvector/skillvector/internal/engine"
)

// PathStep is one entry of a learning path: the skill (original casing
// preserved) with its time estimates.
type PathStep struct {
	Skill          string `json:"skill"`
	EstimatedDays  int    `json:"estimated_days"`
	EstimatedWeeks int    `json:"estimated_weeks"`
}

// EdgeSource supplies prerequisite edges from an external store.
// Implementations must be safe for concurrent use.
type EdgeSource interface {
	FetchEdges(ctx context.Context) ([]Edge, error)
}

// Planner orders missing skills into a learning path using prerequisite
// edges. The edge source is resolved once per planner: the external source
// is tried first and any failure falls back to the static catalog, never
// to an error. Safe for concurrent use.
type Planner struct {
	source    EdgeSource // nil = static catalog only
	estimates map[string]int

	edgeOnce sync.Once
	edges    []Edge
}

// NewPlanner creates a planner. source may be nil to use only the
// static catalog edges.
func NewPlanner(source EdgeSource) *Planner {
	return &Planner{
		source:    source,
		estimates: EstimatedDays(),
	}
}

// prerequisiteEdges resolves the edge set once: external source first,
// static catalog on any failure or empty result.
func (p *Planner) prerequisiteEdges(ctx context.Context) []Edge {
	p.edgeOnce.Do(func() {
		if p.source != nil {
			edges, err := p.source.FetchEdges(ctx)
			if err == nil && len(edges) > 0 {
				slog.Debug("planner: loaded edges from graph store", slog.Int("edges", len(edges)))
				p.edges = edges
				return
			}
			if err != nil {
				slog.Warn("planner: graph edge fetch failed, using static catalog",
					slog.Any("error", err))
			}
			engine.IncrGraphFallbacks()
		}
		p.edges = PrerequisiteEdges()
	})
	return p.edges
}

// Plan converts an unordered set of missing skills into a learning path:
// a topological order over the prerequisite edges restricted to the input
// set, alphabetical among unconstrained skills, with time estimates
// attached. Unknown skills get DefaultEstimatedDays. Duplicates collapse,
// first-seen casing wins. Never fails: cyclic or malformed edge data
// degrades to alphabetical ordering for the affected subset.
func (p *Planner) Plan(ctx context.Context, missingSkills []string) []PathStep {
	if len(missingSkills) == 0 {
		slog.Info("planner: no missing skills to plan")
		return []PathStep{}
	}

	slog.Info("planner: planning learning path", slog.Int("skills", len(missingSkills)))

	ordered := topologicalSort(missingSkills, p.prerequisiteEdges(ctx))

	path := make([]PathStep, 0, len(ordered))
	totalDays := 0
	for _, skill := range ordered {
		days, ok := p.estimates[normalizeSkill(skill)]
		if !ok {
			days = DefaultEstimatedDays
		}
		weeks := int(math.Round(float64(days) / 7))
		if weeks < 1 {
			weeks = 1
		}
		totalDays += days
		path = append(path, PathStep{
			Skill:          skill,
			EstimatedDays:  days,
			EstimatedWeeks: weeks,
		})
	}

	slog.Info("planner: learning path ready",
		slog.Int("steps", len(path)),
		slog.Int("total_days", totalDays))
	return path
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// topologicalSort orders skills so prerequisites come before dependents
// (Kahn's BFS). The ready queue is kept alphabetically sorted after every
// step, so ties break alphabetically, not by insertion order. Any skills
// left unvisited when the queue drains sit on a cycle; they are appended
// alphabetically rather than dropped.
func topologicalSort(skills []string, edges []Edge) []string {
	if len(skills) == 0 {
		return nil
	}

	// Case-insensitive key → first-seen original casing.
	caseMap := make(map[string]string, len(skills))
	keys := make([]string, 0, len(skills))
	for _, s := range skills {
		k := normalizeSkill(s)
		if k == "" {
			continue
		}
		if _, seen := caseMap[k]; !seen {
			caseMap[k] = s
			keys = append(keys, k)
		}
	}

	inSet := make(map[string]bool, len(keys))
	for _, k := range keys {
		inSet[k] = true
	}

	// Only edges with both endpoints in the input set matter.
	adjacency := make(map[string][]string, len(keys))
	inDegree := make(map[string]int, len(keys))
	for _, k := range keys {
		inDegree[k] = 0
	}
	seenEdge := make(map[[2]string]bool)
	for _, e := range edges {
		pre, dep := normalizeSkill(e.Prereq), normalizeSkill(e.Dependent)
		if !inSet[pre] || !inSet[dep] || pre == dep {
			continue
		}
		if seenEdge[[2]string{pre, dep}] {
			continue
		}
		seenEdge[[2]string{pre, dep}] = true
		adjacency[pre] = append(adjacency[pre], dep)
		inDegree[dep]++
	}

	var queue []string
	for _, k := range keys {
		if inDegree[k] == 0 {
			queue = append(queue, k)
		}
	}
	sort.Strings(queue)

	result := make([]string, 0, len(keys))
	visited := make(map[string]bool, len(keys))
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)
		visited[node] = true

		succ := adjacency[node]
		sort.Strings(succ)
		for _, next := range succ {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
		sort.Strings(queue)
	}

	if len(result) < len(keys) {
		var remaining []string
		for _, k := range keys {
			if !visited[k] {
				remaining = append(remaining, k)
			}
		}
		sort.Strings(remaining)
		slog.Warn("planner: cycle detected in skill graph, appending remaining skills",
			slog.Int("remaining", len(remaining)))
		engine.IncrPlanCycleWarns()
		result = append(result, remaining...)
	}

	out := make([]string, len(result))
	for i, k := range result {
		out[i] = caseMap[k]
	}
	return out
}
