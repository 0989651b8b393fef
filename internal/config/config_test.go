package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsPopulated(t *testing.T) {
	cfg := Default()
	assert.Greater(t, cfg.Bags.ConceptCapacity, 0)
	assert.Greater(t, cfg.Reasoner.BudgetThreshold, 0.0)
}

func TestLoadOverridesFromEnv(t *testing.T) {
	t.Setenv("REASONER_CONCEPT_BAG_CAPACITY", "42")
	t.Setenv("REASONER_BUDGET_THRESHOLD", "0.25")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Bags.ConceptCapacity)
	assert.Equal(t, 0.25, cfg.Reasoner.BudgetThreshold)
}

func TestLoadRejectsMalformedOverride(t *testing.T) {
	t.Setenv("REASONER_CONCEPT_BAG_CAPACITY", "not-a-number")
	_, err := Load()
	assert.Error(t, err)
}
