package reasoning

import (
	"testing"

	"github.com/narsgo/reasoner/internal/value"
	"github.com/stretchr/testify/assert"
)

func TestForwardBudgetRewardsNovelConclusions(t *testing.T) {
	taskBudget := value.NewBudget(0.5, 0.5, 0.5)
	taskTruth := value.NewTruth(0.5, 0.9)
	novel := value.NewTruth(0.95, 0.9)
	same := value.NewTruth(0.5, 0.9)

	novelBudget := Forward(taskBudget, taskTruth, novel)
	sameBudget := Forward(taskBudget, taskTruth, same)
	assert.Greater(t, novelBudget.Priority.Value(), sameBudget.Priority.Value())
}

func TestBackwardBudgetScalesWithBeliefPriority(t *testing.T) {
	taskBudget := value.NewBudget(0.8, 0.8, 0.8)
	lowBelief := value.NewBudget(0.1, 0.8, 0.8)
	highBelief := value.NewBudget(0.9, 0.8, 0.8)
	assert.Less(t, Backward(taskBudget, lowBelief).Priority.Value(), Backward(taskBudget, highBelief).Priority.Value())
}

func TestActivateConceptNeverLowersBudget(t *testing.T) {
	concept := value.NewBudget(0.8, 0.8, 0.8)
	task := value.NewBudget(0.2, 0.2, 0.2)
	got := ActivateConcept(concept, task)
	assert.Equal(t, concept.Priority.Value(), got.Priority.Value())
}

func TestReviseBudgetRewardsConfidenceGain(t *testing.T) {
	b1 := value.NewBudget(0.5, 0.5, 0.5)
	b2 := value.NewBudget(0.5, 0.5, 0.5)
	before := value.NewTruth(0.9, 0.5)
	after := value.NewTruth(0.9, 0.8)
	got := Revise(b1, b2, before, after)
	assert.Greater(t, got.Priority.Value(), 0.0)
}
