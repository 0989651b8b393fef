package reasoner

import (
	"testing"

	"github.com/narsgo/reasoner/internal/config"
	"github.com/narsgo/reasoner/internal/term"
	"github.com/narsgo/reasoner/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConceptGraphOrderMatchesConceptCount(t *testing.T) {
	sink := &SliceSink{}
	r := New(config.Default(), sink)

	ravenBird, _ := term.MakeInheritance(term.MakeWord("raven"), term.MakeWord("bird"))
	_, err := r.InputJudgment(ravenBird, value.NewTruth(0.9, 0.9))
	require.NoError(t, err)
	r.Cycle()

	g, err := r.BuildConceptGraph()
	require.NoError(t, err)
	order, err := g.Order()
	require.NoError(t, err)
	assert.Equal(t, r.ConceptCount(), order)
}
