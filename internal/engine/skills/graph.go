package skills

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/skillvector/skillvector/internal/engine"
)

// GraphStore wraps the Neo4j driver for the skill prerequisite graph.
// It is one of two edge sources for the planner; the static catalog is
// the unconditional fallback. Safe for concurrent use (driver pools
// connections internally).
type GraphStore struct {
	driver   neo4j.DriverWithContext
	database string
}

// ConnectGraphStore creates a Neo4j-backed graph store and verifies
// connectivity. Returns an error if the store is unreachable; callers
// treat that as "not configured" and run catalog-only.
func ConnectGraphStore(ctx context.Context, uri, user, password, database string) (*GraphStore, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, fmt.Errorf("%w: init driver: %v", engine.ErrGraph, err)
	}

	vctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := driver.VerifyConnectivity(vctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("%w: verify connectivity: %v", engine.ErrGraph, err)
	}

	return &GraphStore{driver: driver, database: database}, nil
}

// Close releases the underlying driver. Safe to call multiple times.
func (g *GraphStore) Close(ctx context.Context) error {
	if g == nil || g.driver == nil {
		return nil
	}
	err := g.driver.Close(ctx)
	g.driver = nil
	return err
}

// Ping reports whether the graph store is reachable.
func (g *GraphStore) Ping(ctx context.Context) bool {
	if g == nil || g.driver == nil {
		return false
	}
	vctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return g.driver.VerifyConnectivity(vctx) == nil
}

// FetchEdges returns all (prerequisite, dependent) pairs stored in the graph.
func (g *GraphStore) FetchEdges(ctx context.Context) ([]Edge, error) {
	if g == nil || g.driver == nil {
		return nil, fmt.Errorf("%w: not connected", engine.ErrGraph)
	}
	engine.IncrGraphEdgeFetches()

	session := g.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: g.database,
	})
	defer session.Close(ctx)

	records, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
MATCH (a:Skill)-[:PREREQUISITE_OF]->(b:Skill)
RETURN a.name AS prereq, b.name AS dependent
`, nil)
		if err != nil {
			return nil, err
		}
		var edges []Edge
		for res.Next(ctx) {
			rec := res.Record()
			prereq, _ := rec.Get("prereq")
			dependent, _ := rec.Get("dependent")
			p, pok := prereq.(string)
			d, dok := dependent.(string)
			if pok && dok && p != "" && d != "" {
				edges = append(edges, Edge{Prereq: p, Dependent: d})
			}
		}
		return edges, res.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("%w: fetch edges: %v", engine.ErrGraph, err)
	}
	return records.([]Edge), nil
}

// Seed idempotently MERGEs the full catalog (skills and PREREQUISITE_OF
// edges) into the graph.
func (g *GraphStore) Seed(ctx context.Context) error {
	if g == nil || g.driver == nil {
		return fmt.Errorf("%w: not connected", engine.ErrGraph)
	}

	session := g.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: g.database,
	})
	defer session.Close(ctx)

	// Schema helper; may fail for restricted users, continue anyway.
	if res, err := session.Run(ctx, `CREATE CONSTRAINT skill_name_unique IF NOT EXISTS FOR (s:Skill) REQUIRE s.name IS UNIQUE`, nil); err != nil {
		slog.Warn("graph: schema init failed (continuing)", slog.Any("error", err))
	} else {
		_, _ = res.Consume(ctx)
	}

	nodes := make([]map[string]any, 0, len(catalogSkills))
	for _, s := range catalogSkills {
		nodes = append(nodes, map[string]any{
			"name":           s.Name,
			"category":       s.Category,
			"estimated_days": int64(s.EstimatedDays),
		})
	}
	rels := make([]map[string]any, 0, len(catalogEdges))
	for _, e := range catalogEdges {
		rels = append(rels, map[string]any{
			"prereq":    e.Prereq,
			"dependent": e.Dependent,
		})
	}

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
UNWIND $nodes AS n
MERGE (s:Skill {name: n.name})
SET s.category = n.category, s.estimated_days = n.estimated_days
`, map[string]any{"nodes": nodes})
		if err != nil {
			return nil, err
		}
		if _, err := res.Consume(ctx); err != nil {
			return nil, err
		}

		res, err = tx.Run(ctx, `
UNWIND $rels AS r
MATCH (a:Skill {name: r.prereq})
MATCH (b:Skill {name: r.dependent})
MERGE (a)-[:PREREQUISITE_OF]->(b)
`, map[string]any{"rels": rels})
		if err != nil {
			return nil, err
		}
		_, err = res.Consume(ctx)
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("%w: seed: %v", engine.ErrGraph, err)
	}

	slog.Info("graph: seeded skill catalog",
		slog.Int("skills", len(nodes)),
		slog.Int("edges", len(rels)))
	return nil
}
