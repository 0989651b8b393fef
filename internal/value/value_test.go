package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortFloatRoundTrip(t *testing.T) {
	cases := []float64{0, 0.1, 0.5, 0.9, 1.0, 0.1024}
	for _, f := range cases {
		sf := FromFloat(f)
		assert.InDelta(t, f, sf.Value(), 0.0001)
	}
}

func TestShortFloatAndOrNot(t *testing.T) {
	a := FromFloat(0.5)
	b := FromFloat(0.5)
	assert.Equal(t, FromFloat(0.25), a.And(b))
	assert.InDelta(t, 0.75, a.Or(b).Value(), 0.0001)
	assert.Equal(t, FromFloat(0.5), a.Not())
}

func TestTruthExpectation(t *testing.T) {
	cases := []struct {
		f, c, want float64
	}{
		{0, 0, 0.5},
		{1, 1, 1.0},
		{1, 0.9, 0.95},
		{0, 1, 0},
	}
	for _, c := range cases {
		tr := NewTruth(c.f, c.c)
		assert.InDelta(t, c.want, tr.Expectation(), 0.0005)
	}
}

func TestTruthEqualIgnoresAnalytic(t *testing.T) {
	a := NewTruth(0.8, 0.9)
	b := NewTruth(0.8, 0.9).SetAnalytic()
	assert.True(t, a.Equal(b))
	assert.False(t, a.Analytic)
	assert.True(t, b.Analytic)
}

func TestBudgetAboveThreshold(t *testing.T) {
	b := NewBudget(0.9, 0.9, 0.9)
	assert.True(t, b.AboveThreshold(0.5))
	low := NewBudget(0.01, 0.01, 0.01)
	assert.False(t, low.AboveThreshold(0.5))
}

func TestBudgetMergeIsComponentwiseMax(t *testing.T) {
	a := NewBudget(0.2, 0.9, 0.1)
	b := NewBudget(0.5, 0.1, 0.8)
	m := Merge(a, b)
	assert.Equal(t, FromFloat(0.5), m.Priority)
	assert.Equal(t, FromFloat(0.9), m.Durability)
	assert.Equal(t, FromFloat(0.8), m.Quality)
}

func TestStampMergeDisjoint(t *testing.T) {
	a := NewStamp(1, 0)
	b := NewStamp(2, 0)
	merged, err := Merge(a, b, 10, 20)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2}, merged.Base)
}

func TestStampMergeOverlapFails(t *testing.T) {
	a := Stamp{Base: []int64{1, 2}}
	b := Stamp{Base: []int64{2, 3}}
	_, err := Merge(a, b, 0, 20)
	require.ErrorIs(t, err, ErrStampOverlap)
}

func TestStampMergeTruncatesToMaxLen(t *testing.T) {
	a := Stamp{Base: []int64{1, 3, 5, 7}}
	b := Stamp{Base: []int64{2, 4, 6, 8}}
	merged, err := Merge(a, b, 0, 3)
	require.NoError(t, err)
	assert.Len(t, merged.Base, 3)
}

func TestStampEqualIgnoresOrder(t *testing.T) {
	a := Stamp{Base: []int64{1, 2, 3}}
	b := Stamp{Base: []int64{3, 1, 2}}
	assert.True(t, a.Equal(b))
}
