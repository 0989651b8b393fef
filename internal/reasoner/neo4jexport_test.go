package reasoner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNeo4jConfigFromEnvDefaults(t *testing.T) {
	cfg := Neo4jConfigFromEnv()
	assert.Equal(t, "bolt://localhost:7687", cfg.URI)
	assert.Equal(t, "neo4j", cfg.Username)
	assert.Equal(t, "neo4j", cfg.Database)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestNeo4jConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("NEO4J_URI", "bolt://example:7687")
	t.Setenv("NEO4J_USERNAME", "alice")
	t.Setenv("NEO4J_TIMEOUT_MS", "250")

	cfg := Neo4jConfigFromEnv()
	assert.Equal(t, "bolt://example:7687", cfg.URI)
	assert.Equal(t, "alice", cfg.Username)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
}

// NewConceptExporter requires a reachable Neo4j instance, which this test
// suite does not provision; construction failure against an unreachable
// address is exercised instead, covering the connectivity-verify path.
func TestNewConceptExporterFailsFastWithoutServer(t *testing.T) {
	cfg := Neo4jConfig{
		URI:      "bolt://127.0.0.1:1",
		Username: "neo4j",
		Password: "neo4j",
		Database: "neo4j",
		Timeout:  200 * time.Millisecond,
	}
	_, err := NewConceptExporter(t.Context(), cfg)
	assert.Error(t, err)
}
