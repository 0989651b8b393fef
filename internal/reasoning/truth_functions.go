// Package reasoning implements the NAL truth- and budget-function rule
// content that the inference phases apply once they have found a task and
// a belief to combine. None of the functions here know about concepts,
// bags or term structure; they operate purely on value.Truth/value.Budget
// pairs, which keeps them trivially testable in isolation.
package reasoning

import "github.com/narsgo/reasoner/internal/value"

// The functions below follow the standard NAL truth-function table (as
// used by OpenNARS and its derivatives): each combines the frequency and
// confidence of one or two premises into a conclusion truth value. f/c
// denote frequency/confidence of the first premise, f1/c1 the second where
// applicable.

// Deduction: strong syllogism, <A-->B>,<B-->C> |- <A-->C>.
func Deduction(t1, t2 value.Truth) value.Truth {
	f1, c1 := t1.Frequency.Value(), t1.Confidence.Value()
	f2, c2 := t2.Frequency.Value(), t2.Confidence.Value()
	f := f1 * f2
	c := f * c1 * c2
	return value.NewTruth(f, c)
}

// Analogy: <A-->B>,<B<->C> |- <A-->C>.
func Analogy(t1, t2 value.Truth) value.Truth {
	f1, c1 := t1.Frequency.Value(), t1.Confidence.Value()
	f2, c2 := t2.Frequency.Value(), t2.Confidence.Value()
	f := f1 * f2
	c := f2 * c1 * c2
	return value.NewTruth(f, c)
}

// Resemblance: <A<->B>,<B<->C> |- <A<->C>.
func Resemblance(t1, t2 value.Truth) value.Truth {
	f1, c1 := t1.Frequency.Value(), t1.Confidence.Value()
	f2, c2 := t2.Frequency.Value(), t2.Confidence.Value()
	f := f1 * f2
	c := (f1 + f2 - f1*f2) * c1 * c2
	return value.NewTruth(f, c)
}

// Abduction: weak syllogism from shared predicate, <A-->B>,<C-->B> |- <A-->C>.
func Abduction(t1, t2 value.Truth) value.Truth {
	f1, c1 := t1.Frequency.Value(), t1.Confidence.Value()
	f2, c2 := t2.Frequency.Value(), t2.Confidence.Value()
	w := c1 * c2 * f2
	return value.NewTruth(f1, w/(w+kHorizon))
}

// Induction: weak syllogism from shared subject, <A-->B>,<A-->C> |- <B-->C>.
func Induction(t1, t2 value.Truth) value.Truth {
	return Abduction(t2, t1)
}

// Exemplification: converse-chained weak syllogism, <A-->B>,<B-->C> |- <C-->A>.
func Exemplification(t1, t2 value.Truth) value.Truth {
	f1, c1 := t1.Frequency.Value(), t1.Confidence.Value()
	f2, c2 := t2.Frequency.Value(), t2.Confidence.Value()
	w := f1 * f2 * c1 * c2
	return value.NewTruth(1, w/(w+kHorizon))
}

// Comparison: <A-->B>,<A-->C> |- <B<->C>.
func Comparison(t1, t2 value.Truth) value.Truth {
	f1, c1 := t1.Frequency.Value(), t1.Confidence.Value()
	f2, c2 := t2.Frequency.Value(), t2.Confidence.Value()
	union := f1 + f2 - f1*f2
	var f float64
	if union > 0 {
		f = (f1 * f2) / union
	}
	w := union * c1 * c2
	c := w / (w + kHorizon)
	return value.NewTruth(f, c)
}

// Conversion: <A-->B> |- <B-->A>, valid only to the extent the original is
// positive evidence; this is a single-premise function but takes the
// belief's truth as t.
func Conversion(t value.Truth) value.Truth {
	f, c := t.Frequency.Value(), t.Confidence.Value()
	w := f * c
	newF := 1.0
	newC := w / (w + kHorizon)
	if w == 0 {
		newC = 0
	}
	return value.NewTruth(newF, newC)
}

// Contraposition: <A==>B> |- <(--,B)==>(--,A)>, defined only where the
// antecedent is mostly false.
func Contraposition(t value.Truth) value.Truth {
	f, c := t.Frequency.Value(), t.Confidence.Value()
	w := (1 - f) * c
	newC := w / (w + kHorizon)
	if w == 0 {
		newC = 0
	}
	return value.NewTruth(0, newC)
}

// Revision merges two judgments about the same statement from independent
// evidential bases, strengthening confidence beyond either premise alone.
func Revision(t1, t2 value.Truth) value.Truth {
	f1, c1 := t1.Frequency.Value(), t1.Confidence.Value()
	f2, c2 := t2.Frequency.Value(), t2.Confidence.Value()
	w1 := c1 / (1 - c1)
	w2 := c2 / (1 - c2)
	wTotal := w1 + w2
	f := (w1*f1 + w2*f2) / wTotal
	c := wTotal / (wTotal + 1)
	return value.NewTruth(f, c)
}

// IntersectionTruth: <A-->B>,<A-->C> |- <A-->(B&C)> (extensional
// intersection of the predicates), i.e. "and" over both premises.
func IntersectionTruth(t1, t2 value.Truth) value.Truth {
	f1, c1 := t1.Frequency.Value(), t1.Confidence.Value()
	f2, c2 := t2.Frequency.Value(), t2.Confidence.Value()
	return value.NewTruth(f1*f2, c1*c2)
}

// UnionTruth: <A-->B>,<A-->C> |- <A-->(B|C)>, "or" over both premises.
func UnionTruth(t1, t2 value.Truth) value.Truth {
	f1, c1 := t1.Frequency.Value(), t1.Confidence.Value()
	f2, c2 := t2.Frequency.Value(), t2.Confidence.Value()
	f := f1 + f2 - f1*f2
	return value.NewTruth(f, c1*c2)
}

// DifferenceTruth: <A-->B>,<A-->C> |- <A-->(B-C)>.
func DifferenceTruth(t1, t2 value.Truth) value.Truth {
	f1, c1 := t1.Frequency.Value(), t1.Confidence.Value()
	f2, c2 := t2.Frequency.Value(), t2.Confidence.Value()
	f := f1 * (1 - f2)
	return value.NewTruth(f, c1*c2)
}

// kHorizon is NAL's evidential horizon constant: the amount of new
// evidence weight w that yields confidence 0.5 (w/(w+k)=0.5 at w=k). NAL
// fixes k=1.
const kHorizon = 1.0
