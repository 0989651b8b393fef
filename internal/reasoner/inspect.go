package reasoner

import "github.com/narsgo/reasoner/internal/metrics"

// Inspect returns a read-only summary of memory's current state: concept
// count and the belief/question/complexity statistics the metrics
// package computes, for an outer shell to display without mutating
// anything.
func (r *Reasoner) Inspect() metrics.Summary {
	var complexities []int
	var beliefs, questions, answered int
	for _, c := range r.memory.Concepts() {
		complexities = append(complexities, c.Term.Complexity())
		beliefs += c.Beliefs.Len()
		questions += c.Questions.Len()
		for _, q := range c.Questions.All() {
			if q.BestSolution != nil {
				answered++
			}
		}
	}
	return metrics.Summarize(len(complexities), beliefs, questions, answered, complexities)
}
