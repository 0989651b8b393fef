package value

import "fmt"

// Truth is a judgment's evidential value: how frequently the statement has
// held among the evidence seen (frequency), and how much more evidence
// would be needed to change that assessment much further (confidence).
type Truth struct {
	Frequency  ShortFloat
	Confidence ShortFloat

	// Analytic marks a truth value produced by a single analytic
	// derivation step (e.g. conversion). Carried for behavioral parity
	// with the original reasoner; only SetAnalytic raises it, no rule
	// in this implementation sets or consults it, and Equal ignores it.
	Analytic bool
}

// NewTruth builds a truth value from float frequency/confidence.
func NewTruth(frequency, confidence float64) Truth {
	return Truth{Frequency: FromFloat(frequency), Confidence: FromFloat(confidence)}
}

// Expectation is c*(f-0.5)+0.5, the single scalar used to rank beliefs and
// answers.
func (t Truth) Expectation() float64 {
	return t.Confidence.Value()*(t.Frequency.Value()-0.5) + 0.5
}

// ExpectationAbsDif is the absolute difference between two truth values'
// expectations.
func (t Truth) ExpectationAbsDif(other Truth) float64 {
	d := t.Expectation() - other.Expectation()
	if d < 0 {
		return -d
	}
	return d
}

// IsNegative reports whether the frequency is below one half.
func (t Truth) IsNegative() bool {
	return t.Frequency < Half
}

// Equal compares frequency and confidence only; the analytic flag is not
// part of truth-value identity.
func (t Truth) Equal(other Truth) bool {
	return t.Frequency == other.Frequency && t.Confidence == other.Confidence
}

// SetAnalytic returns a copy of t with the analytic flag raised.
func (t Truth) SetAnalytic() Truth {
	t.Analytic = true
	return t
}

func (t Truth) String() string {
	return fmt.Sprintf("%%%s;%s%%", t.Frequency.String(), t.Confidence.String())
}

// Brief renders truth at two-decimal precision, the form used in OUT events.
func (t Truth) Brief() string {
	return fmt.Sprintf("%%%s;%s%%", t.Frequency.Brief(), t.Confidence.Brief())
}
