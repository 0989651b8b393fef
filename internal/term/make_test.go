package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func w(name string) Term { return MakeWord(name) }

func TestMakeInheritanceRejectsReflexive(t *testing.T) {
	a := w("A")
	_, ok := MakeInheritance(a, a)
	assert.False(t, ok)
}

func TestMakeInheritanceRejectsContainment(t *testing.T) {
	a := w("A")
	set, ok := MakeSetExt(a)
	require.True(t, ok)
	_, ok = MakeInheritance(a, set)
	assert.False(t, ok, "<A --> {A}> must be rejected")
}

func TestMakeImplicationRejectsConverseTautology(t *testing.T) {
	ab, ok := MakeInheritance(w("A"), w("B"))
	require.True(t, ok)
	ba, ok := MakeInheritance(w("B"), w("A"))
	require.True(t, ok)
	_, ok = MakeImplication(ab, ba)
	assert.False(t, ok, "<<A-->B> ==> <B-->A>> must be rejected")
}

func TestMakeImplicationRewritesNestedConsequent(t *testing.T) {
	bc, ok := MakeImplication(w("B"), w("C"))
	require.True(t, ok)
	got, ok := MakeImplication(w("A"), bc)
	require.True(t, ok)
	want, ok := MakeConjunction(w("A"), w("B"))
	require.True(t, ok)
	assert.True(t, got.Subject().Equal(want))
	assert.True(t, got.Predicate().Equal(w("C")))
}

func TestMakeConjunctionSingletonExtracts(t *testing.T) {
	got, ok := MakeConjunction(w("A"))
	require.True(t, ok)
	assert.True(t, got.Equal(w("A")))
}

func TestMakeSetExtEmptyIsNoTerm(t *testing.T) {
	_, ok := MakeSetExt()
	assert.False(t, ok)
}

func TestMakeSetExtSortsAndDedups(t *testing.T) {
	a, ok := MakeSetExt(w("B"), w("A"), w("A"))
	require.True(t, ok)
	b, ok := MakeSetExt(w("A"), w("B"))
	require.True(t, ok)
	assert.True(t, a.Equal(b))
	assert.Len(t, a.Children(), 2)
}

func TestMakeIntersectExtOfSetsFoldsToSetIntersection(t *testing.T) {
	s1, _ := MakeSetExt(w("A"), w("B"))
	s2, _ := MakeSetExt(w("B"), w("C"))
	got, ok := MakeIntersectExt(s1, s2)
	require.True(t, ok)
	want, _ := MakeSetExt(w("B"))
	assert.True(t, got.Equal(want))
}

func TestMakeIntersectIntOfSetsFoldsToSetIntersection(t *testing.T) {
	s1, _ := MakeSetInt(w("A"), w("B"))
	s2, _ := MakeSetInt(w("B"), w("C"))
	got, ok := MakeIntersectInt(s1, s2)
	require.True(t, ok)
	want, _ := MakeSetInt(w("B"))
	assert.True(t, got.Equal(want))
}

func TestMakeDiffExtSelfIsNoTerm(t *testing.T) {
	a := w("A")
	_, ok := MakeDiffExt(a, a)
	assert.False(t, ok)
}

func TestMakeDiffExtOfSetsIsSetDifference(t *testing.T) {
	s1, _ := MakeSetExt(w("A"), w("B"))
	s2, _ := MakeSetExt(w("B"))
	got, ok := MakeDiffExt(s1, s2)
	require.True(t, ok)
	want, _ := MakeSetExt(w("A"))
	assert.True(t, got.Equal(want))
}

func TestMakeImageExtPlacesRelationAndPlaceholder(t *testing.T) {
	got, ok := MakeImageExt(w("R"), []Term{w("A"), w("B")}, 1)
	require.True(t, ok)
	assert.Equal(t, ImageExt, got.ID())
	assert.True(t, got.Children()[0].Equal(w("R")))
	assert.True(t, got.Children()[1].Equal(w("A")))
	assert.Equal(t, Placeholder, got.Children()[2].ID())
}

func TestMakeNegationDoubleCancels(t *testing.T) {
	n1, _ := MakeNegation(w("A"))
	n2, ok := MakeNegation(n1)
	require.True(t, ok)
	assert.True(t, n2.Equal(w("A")))
}

func TestInstancePropertySugar(t *testing.T) {
	got, ok := MakeInstanceProperty(w("tweety"), w("bird"))
	require.True(t, ok)
	subjSet, _ := MakeSetExt(w("tweety"))
	predSet, _ := MakeSetInt(w("bird"))
	want, _ := MakeInheritance(subjSet, predSet)
	assert.True(t, got.Equal(want))
}

func TestRoundTripTextualForm(t *testing.T) {
	ab, _ := MakeInheritance(w("A"), w("B"))
	conj, _ := MakeConjunction(w("A"), w("B"), w("C"))
	set, _ := MakeSetExt(w("A"), w("B"))
	img, _ := MakeImageExt(w("R"), []Term{w("A"), w("B")}, 0)
	for _, tm := range []Term{ab, conj, set, img, w("word")} {
		text := tm.String()
		parsed, ok := Parse(text)
		require.True(t, ok, "parse failed for %q", text)
		assert.True(t, tm.Equal(parsed), "round trip mismatch: %q -> %q", text, parsed.String())
	}
}
