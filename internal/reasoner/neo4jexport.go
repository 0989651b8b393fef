package reasoner

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/config"
)

// Neo4jConfig names the external graph store ConceptExporter writes to.
// It is read from the environment rather than internal/config because it
// is optional infrastructure, not part of the reasoning loop itself.
type Neo4jConfig struct {
	URI      string
	Username string
	Password string
	Database string
	Timeout  time.Duration
}

// Neo4jConfigFromEnv builds a Neo4jConfig from NEO4J_URI, NEO4J_USERNAME,
// NEO4J_PASSWORD, NEO4J_DATABASE and NEO4J_TIMEOUT_MS, defaulting to a local
// bolt instance and a 5s timeout when unset.
func Neo4jConfigFromEnv() Neo4jConfig {
	cfg := Neo4jConfig{
		URI:      "bolt://localhost:7687",
		Username: "neo4j",
		Password: "neo4j",
		Database: "neo4j",
		Timeout:  5 * time.Second,
	}
	if v := os.Getenv("NEO4J_URI"); v != "" {
		cfg.URI = v
	}
	if v := os.Getenv("NEO4J_USERNAME"); v != "" {
		cfg.Username = v
	}
	if v := os.Getenv("NEO4J_PASSWORD"); v != "" {
		cfg.Password = v
	}
	if v := os.Getenv("NEO4J_DATABASE"); v != "" {
		cfg.Database = v
	}
	if v := os.Getenv("NEO4J_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.Timeout = time.Duration(ms) * time.Millisecond
		}
	}
	return cfg
}

// ConceptExporter mirrors a ConceptGraph into Neo4j for external
// visualization. It never participates in inference; a reasoner with no
// exporter attached behaves identically.
type ConceptExporter struct {
	driver   neo4j.DriverWithContext
	database string
}

// NewConceptExporter connects to Neo4j and verifies connectivity before
// returning, matching the donor's eager-verify construction.
func NewConceptExporter(ctx context.Context, cfg Neo4jConfig) (*ConceptExporter, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""),
		func(c *config.Config) {
			c.MaxConnectionPoolSize = 10
			c.ConnectionAcquisitionTimeout = cfg.Timeout
		})
	if err != nil {
		return nil, fmt.Errorf("reasoner: connect neo4j: %w", err)
	}
	verifyCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := driver.VerifyConnectivity(verifyCtx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("reasoner: verify neo4j connectivity: %w", err)
	}
	return &ConceptExporter{driver: driver, database: cfg.Database}, nil
}

// Close releases the underlying driver.
func (e *ConceptExporter) Close(ctx context.Context) error {
	return e.driver.Close(ctx)
}

// Export walks g and MERGEs a :Concept node per vertex and a :LINKS_TO
// relationship per edge, so repeated exports of an evolving graph converge
// rather than accumulate duplicates.
func (e *ConceptExporter) Export(ctx context.Context, g *ConceptGraph) error {
	adjacency, err := g.g.AdjacencyMap()
	if err != nil {
		return fmt.Errorf("reasoner: export: adjacency map: %w", err)
	}

	session := e.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: e.database})
	defer session.Close(ctx)

	_, err = session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for name := range adjacency {
			if _, err := tx.Run(ctx, "MERGE (:Concept {name: $name})", map[string]any{"name": name}); err != nil {
				return nil, fmt.Errorf("merge concept %s: %w", name, err)
			}
		}
		for source, edges := range adjacency {
			for target := range edges {
				_, err := tx.Run(ctx, `
					MATCH (a:Concept {name: $source})
					MATCH (b:Concept {name: $target})
					MERGE (a)-[:LINKS_TO]->(b)`,
					map[string]any{"source": source, "target": target})
				if err != nil {
					return nil, fmt.Errorf("merge edge %s->%s: %w", source, target, err)
				}
			}
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("reasoner: export: %w", err)
	}
	return nil
}

// ExportConceptGraph is a convenience that builds r's current structural
// snapshot and exports it in one call.
func (r *Reasoner) ExportConceptGraph(ctx context.Context, e *ConceptExporter) error {
	g, err := r.BuildConceptGraph()
	if err != nil {
		return fmt.Errorf("reasoner: export concept graph: %w", err)
	}
	return e.Export(ctx, g)
}
