package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	AnalyzeRequests  atomic.Int64
	LLMCalls         atomic.Int64
	LLMErrors        atomic.Int64
	EmbedCalls       atomic.Int64
	EmbedErrors      atomic.Int64
	GraphEdgeFetches atomic.Int64
	GraphFallbacks   atomic.Int64
	PlanCycleWarns   atomic.Int64
	RetrievalCalls   atomic.Int64
	RetrievalErrors  atomic.Int64
	AnalysesSaved    atomic.Int64
	RateLimited      atomic.Int64
}

// IncrAnalyzeRequests increments the analyze request counter.
func IncrAnalyzeRequests() { metrics.AnalyzeRequests.Add(1) }

// IncrEmbedCalls increments the embedding call counter.
func IncrEmbedCalls() { metrics.EmbedCalls.Add(1) }

// IncrEmbedErrors increments the embedding error counter.
func IncrEmbedErrors() { metrics.EmbedErrors.Add(1) }

// IncrGraphEdgeFetches increments the graph edge fetch counter.
func IncrGraphEdgeFetches() { metrics.GraphEdgeFetches.Add(1) }

// IncrGraphFallbacks increments the static-catalog fallback counter.
func IncrGraphFallbacks() { metrics.GraphFallbacks.Add(1) }

// IncrPlanCycleWarns increments the planner cycle warning counter.
func IncrPlanCycleWarns() { metrics.PlanCycleWarns.Add(1) }

// IncrRetrievalCalls increments the job retrieval counter.
func IncrRetrievalCalls() { metrics.RetrievalCalls.Add(1) }

// IncrRetrievalErrors increments the job retrieval error counter.
func IncrRetrievalErrors() { metrics.RetrievalErrors.Add(1) }

// IncrAnalysesSaved increments the persisted analysis counter.
func IncrAnalysesSaved() { metrics.AnalysesSaved.Add(1) }

// IncrRateLimited increments the rejected-by-rate-limit counter.
func IncrRateLimited() { metrics.RateLimited.Add(1) }

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"analyze_requests":   metrics.AnalyzeRequests.Load(),
		"llm_calls":          metrics.LLMCalls.Load(),
		"llm_errors":         metrics.LLMErrors.Load(),
		"embed_calls":        metrics.EmbedCalls.Load(),
		"embed_errors":       metrics.EmbedErrors.Load(),
		"graph_edge_fetches": metrics.GraphEdgeFetches.Load(),
		"graph_fallbacks":    metrics.GraphFallbacks.Load(),
		"plan_cycle_warns":   metrics.PlanCycleWarns.Load(),
		"retrieval_calls":    metrics.RetrievalCalls.Load(),
		"retrieval_errors":   metrics.RetrievalErrors.Load(),
		"analyses_saved":     metrics.AnalysesSaved.Load(),
		"rate_limited":       metrics.RateLimited.Load(),
		"cache_hits":         hits,
		"cache_misses":       misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"analyze_requests", "llm_calls", "llm_errors",
		"embed_calls", "embed_errors",
		"graph_edge_fetches", "graph_fallbacks", "plan_cycle_warns",
		"retrieval_calls", "retrieval_errors",
		"analyses_saved", "rate_limited",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}
