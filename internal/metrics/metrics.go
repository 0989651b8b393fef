// Package metrics computes the summary statistics the inspection surface
// reports about memory's current state: concept counts, belief/question
// totals, complexity distribution and the fraction of questions answered
// so far.
package metrics

// Summary is a point-in-time snapshot of memory's aggregate statistics.
type Summary struct {
	ConceptCount         int
	BeliefCount           int
	QuestionCount         int
	AnsweredQuestionCount int
	MinComplexity         int
	MaxComplexity         int
	MeanComplexity        float64
}

// AnsweredFraction is the share of outstanding questions that have at
// least one recorded answer, or 0 if there are no questions.
func (s Summary) AnsweredFraction() float64 {
	if s.QuestionCount == 0 {
		return 0
	}
	return float64(s.AnsweredQuestionCount) / float64(s.QuestionCount)
}

// Summarize builds a Summary from raw per-concept counts and the list of
// concept term complexities.
func Summarize(conceptCount, beliefCount, questionCount, answeredCount int, complexities []int) Summary {
	s := Summary{
		ConceptCount:          conceptCount,
		BeliefCount:           beliefCount,
		QuestionCount:         questionCount,
		AnsweredQuestionCount: answeredCount,
	}
	if len(complexities) == 0 {
		return s
	}
	s.MinComplexity = complexities[0]
	s.MaxComplexity = complexities[0]
	sum := 0
	for _, c := range complexities {
		if c < s.MinComplexity {
			s.MinComplexity = c
		}
		if c > s.MaxComplexity {
			s.MaxComplexity = c
		}
		sum += c
	}
	s.MeanComplexity = float64(sum) / float64(len(complexities))
	return s
}
