package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeComputesComplexityRange(t *testing.T) {
	s := Summarize(3, 5, 2, 1, []int{1, 5, 3})
	assert.Equal(t, 1, s.MinComplexity)
	assert.Equal(t, 5, s.MaxComplexity)
	assert.InDelta(t, 3.0, s.MeanComplexity, 0.001)
}

func TestAnsweredFractionWithNoQuestionsIsZero(t *testing.T) {
	s := Summarize(1, 0, 0, 0, nil)
	assert.Equal(t, 0.0, s.AnsweredFraction())
}

func TestAnsweredFraction(t *testing.T) {
	s := Summarize(1, 0, 4, 1, []int{1})
	assert.InDelta(t, 0.25, s.AnsweredFraction(), 0.001)
}
