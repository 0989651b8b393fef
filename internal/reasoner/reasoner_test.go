package reasoner

import (
	"testing"

	"github.com/narsgo/reasoner/internal/config"
	"github.com/narsgo/reasoner/internal/term"
	"github.com/narsgo/reasoner/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReasonerAnswersDirectQuestion(t *testing.T) {
	sink := &SliceSink{}
	r := New(config.Default(), sink)

	ravenBird, ok := term.MakeInheritance(term.MakeWord("raven"), term.MakeWord("bird"))
	require.True(t, ok)
	_, err := r.InputJudgment(ravenBird, value.NewTruth(0.95, 0.9))
	require.NoError(t, err)
	r.Cycle()

	_, err = r.InputQuestion(ravenBird)
	require.NoError(t, err)
	r.Cycle()

	found := false
	for _, ev := range sink.Events {
		if ev.Kind == OutputAnswer {
			found = true
		}
	}
	assert.True(t, found, "expected an ANSWER event after asking a directly known judgment")
}

func TestReasonerDerivesAcrossConcepts(t *testing.T) {
	sink := &SliceSink{}
	r := New(config.Default(), sink)

	ravenBird, _ := term.MakeInheritance(term.MakeWord("raven"), term.MakeWord("bird"))
	birdAnimal, _ := term.MakeInheritance(term.MakeWord("bird"), term.MakeWord("animal"))

	_, err := r.InputJudgment(ravenBird, value.NewTruth(0.95, 0.9))
	require.NoError(t, err)
	r.Cycle()
	_, err = r.InputJudgment(birdAnimal, value.NewTruth(0.95, 0.9))
	require.NoError(t, err)
	r.Cycle()

	for i := 0; i < 10; i++ {
		r.Cycle()
	}

	require.GreaterOrEqual(t, r.ConceptCount(), 2)

	found := false
	for _, ev := range sink.Events {
		if ev.Kind != OutputOut || ev.Sentence == nil {
			continue
		}
		content := ev.Sentence.Content
		if content.Subject().Name() == "raven" && content.Predicate().Name() == "animal" {
			found = true
		}
	}
	assert.True(t, found, "expected raven and bird's shared concept to derive <raven --> animal>")
}
