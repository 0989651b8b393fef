package modes

import (
	"testing"

	"github.com/narsgo/reasoner/internal/term"
	"github.com/narsgo/reasoner/internal/types"
	"github.com/narsgo/reasoner/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func judgment(t *testing.T, subj, pred string, f, c float64, serial int64) types.Sentence {
	t.Helper()
	content, ok := term.MakeInheritance(term.MakeWord(subj), term.MakeWord(pred))
	require.True(t, ok)
	s, err := types.NewJudgment(content, value.NewTruth(f, c), value.NewStamp(serial, 0))
	require.NoError(t, err)
	return s
}

func TestDirectPhaseAnswersQuestionFromOwnConcept(t *testing.T) {
	content, _ := term.MakeInheritance(term.MakeWord("raven"), term.MakeWord("bird"))
	q, err := types.NewQuestion(content, value.NewStamp(1, 0))
	require.NoError(t, err)
	task := types.NewTask(q, value.NewBudget(0.5, 0.5, 0.5))

	belief := judgment(t, "raven", "bird", 0.95, 0.9, 2)
	ctx := &Context{Task: task, Belief: &belief, StampNow: 0, MaxStampLen: 20}

	_, events := DirectPhase{}.Apply(ctx)
	require.Len(t, events, 1)
	assert.Equal(t, EventAnswer, events[0].Kind)
}

func TestDirectPhaseRevisesDisjointJudgments(t *testing.T) {
	task := types.NewTask(judgment(t, "raven", "bird", 0.9, 0.6, 1), value.NewBudget(0.6, 0.6, 0.6))
	belief := judgment(t, "raven", "bird", 0.8, 0.6, 2)
	ctx := &Context{Task: task, Belief: &belief, StampNow: 0, MaxStampLen: 20}

	derivations, _ := DirectPhase{}.Apply(ctx)
	require.Len(t, derivations, 1)
	assert.Greater(t, derivations[0].Sentence.Truth.Confidence.Value(), task.Sentence.Truth.Confidence.Value())
}

func TestTransformPhaseProductToImage(t *testing.T) {
	tom, jerry, chases := term.MakeWord("tom"), term.MakeWord("jerry"), term.MakeWord("chases")
	product, ok := term.MakeProduct(tom, jerry)
	require.True(t, ok)
	content, ok := term.MakeInheritance(product, chases)
	require.True(t, ok)
	sentence, err := types.NewJudgment(content, value.NewTruth(0.9, 0.9), value.NewStamp(1, 0))
	require.NoError(t, err)
	task := types.NewTask(sentence, value.NewBudget(0.6, 0.6, 0.6))
	ctx := &Context{Task: task, StampNow: 0, MaxStampLen: 20}

	derivations, _ := TransformPhase{}.Apply(ctx)
	require.Len(t, derivations, 2)

	var sawTom, sawJerry bool
	for _, d := range derivations {
		switch {
		case d.Sentence.Content.Subject().Equal(tom):
			sawTom = true
			assert.Equal(t, term.ImageExt, d.Sentence.Content.Predicate().ID())
		case d.Sentence.Content.Subject().Equal(jerry):
			sawJerry = true
		}
	}
	assert.True(t, sawTom, "expected a <tom --> image> rewrite")
	assert.True(t, sawJerry, "expected a <jerry --> image> rewrite")
}

func TestTransformPhaseImageToProduct(t *testing.T) {
	tom, jerry, chases := term.MakeWord("tom"), term.MakeWord("jerry"), term.MakeWord("chases")
	image, ok := term.MakeImageExt(chases, []term.Term{tom, jerry}, 0)
	require.True(t, ok)
	content, ok := term.MakeInheritance(tom, image)
	require.True(t, ok)
	sentence, err := types.NewJudgment(content, value.NewTruth(0.9, 0.9), value.NewStamp(1, 0))
	require.NoError(t, err)
	task := types.NewTask(sentence, value.NewBudget(0.6, 0.6, 0.6))
	ctx := &Context{Task: task, StampNow: 0, MaxStampLen: 20}

	derivations, _ := TransformPhase{}.Apply(ctx)
	require.Len(t, derivations, 1)
	rebuilt := derivations[0].Sentence.Content
	assert.Equal(t, term.Product, rebuilt.Subject().ID())
	assert.Equal(t, "chases", rebuilt.Predicate().Name())
}

func TestReasonPhaseDeduction(t *testing.T) {
	task := types.NewTask(judgment(t, "raven", "bird", 0.9, 0.9, 1), value.NewBudget(0.6, 0.6, 0.6))
	belief := judgment(t, "bird", "animal", 0.9, 0.9, 2)
	ctx := &Context{Task: task, Belief: &belief, StampNow: 0, MaxStampLen: 20}

	derivations, _ := ReasonPhase{}.Apply(ctx)
	require.NotEmpty(t, derivations)
	found := false
	for _, d := range derivations {
		if d.Sentence.Content.Subject().Name() == "raven" && d.Sentence.Content.Predicate().Name() == "animal" {
			found = true
		}
	}
	assert.True(t, found, "deduction should derive <raven --> animal>")
}

func TestRunAccumulatesAcrossPhases(t *testing.T) {
	task := types.NewTask(judgment(t, "raven", "bird", 0.9, 0.9, 1), value.NewBudget(0.6, 0.6, 0.6))
	belief := judgment(t, "bird", "animal", 0.9, 0.9, 2)
	linked := belief.Content
	ctx := &Context{Task: task, Belief: &belief, LinkedTerm: &linked, StampNow: 0, MaxStampLen: 20}

	derivations, _ := Run(ctx, DefaultPhases())
	assert.NotEmpty(t, derivations)
}
