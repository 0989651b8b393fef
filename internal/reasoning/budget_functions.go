package reasoning

import "github.com/narsgo/reasoner/internal/value"

// Budget functions derive a conclusion's budget from its premises' budget
// and the truth values involved, so that more informative or more
// confident derivations are pursued more eagerly without the caller
// having to know anything about how truth was computed.

// Forward derives budget for a forward-inference conclusion: priority is
// the mean of the task's priority and the absolute difference between the
// conclusion's and the task's expectations (a conclusion that tells us
// nothing new gets deprioritized), durability is the task's, and quality
// is the conclusion's confidence.
func Forward(taskBudget value.Budget, taskTruth, conclusionTruth value.Truth) value.Budget {
	difference := conclusionTruth.ExpectationAbsDif(taskTruth)
	priority := value.Mean(taskBudget.Priority, value.FromFloat(difference))
	durability := taskBudget.Durability
	quality := value.FromFloat(conclusionTruth.Confidence.Value())
	return value.Budget{Priority: priority, Durability: durability, Quality: quality}
}

// Backward derives budget for a backward-inference (question-driven)
// conclusion: priority is scaled down by the belief's own priority so that
// chains of backward derivation naturally lose urgency with depth.
func Backward(taskBudget, beliefBudget value.Budget) value.Budget {
	priority := value.FromFloat(taskBudget.Priority.Value() * beliefBudget.Priority.Value())
	durability := taskBudget.Durability
	quality := taskBudget.Quality
	return value.Budget{Priority: priority, Durability: durability, Quality: quality}
}

// Revise derives budget for a revision conclusion: priority rises with
// how much the revision improved confidence over the caller-supplied
// before truth, rewarding revisions that meaningfully sharpen belief.
func Revise(b1, b2 value.Budget, before, after value.Truth) value.Budget {
	gain := after.Confidence.Value() - before.Confidence.Value()
	if gain < 0 {
		gain = 0
	}
	priority := value.Mean(b1.Priority, b2.Priority, value.FromFloat(gain))
	durability := value.Mean(b1.Durability, b2.Durability)
	quality := value.FromFloat(after.Confidence.Value())
	return value.Budget{Priority: priority, Durability: durability, Quality: quality}
}

// ActivateConcept derives the budget a task lends to the concept it is
// being absorbed into: the concept's existing budget is raised toward the
// task's, never lowered (a concept only gets more attention from an
// incoming task, never less).
func ActivateConcept(conceptBudget, taskBudget value.Budget) value.Budget {
	return value.Merge(conceptBudget, taskBudget)
}
