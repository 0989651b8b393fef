package modes

import (
	"github.com/narsgo/reasoner/internal/reasoning"
	"github.com/narsgo/reasoner/internal/term"
	"github.com/narsgo/reasoner/internal/types"
	"github.com/narsgo/reasoner/internal/value"
)

// ReasonPhase runs the full two-premise NAL rule table across a task and
// a term/task-linked belief that share a component: syllogisms when
// subject or predicate line up (deduction/abduction/induction/
// exemplification for two inheritance statements, resemblance for two
// similarities, analogy for a mixed inheritance/similarity pair),
// compositional rules that fold a shared subject or predicate into an
// intersection/union/difference compound, conditional syllogism across an
// implication whose antecedent is a conjunction, and conjunction/
// disjunction composition/decomposition. The syllogisms between two
// inheritance statements unify the terms that must line up rather than
// comparing them for literal equality, so they also fire when the two
// sides agree up to a shared independent variable; the compositional,
// resemblance, analogy, conditional and conjunction/disjunction rules
// compare terms with Equal and do not unify.
type ReasonPhase struct{}

func (ReasonPhase) Name() string { return "reason" }

func (ReasonPhase) Apply(ctx *Context) ([]Derivation, []Event) {
	if ctx.Task.Sentence.Punctuation != types.Judgment {
		return nil, nil
	}

	derivations := contrapositives(ctx)

	if ctx.Belief == nil {
		return derivations, nil
	}

	taskContent := ctx.Task.Sentence.Content
	beliefContent := ctx.Belief.Content
	taskTruth := ctx.Task.Sentence.Truth
	beliefTruth := ctx.Belief.Truth

	emit := func(content term.Term, ok bool, truth value.Truth) {
		if !ok {
			return
		}
		merged, err := value.Merge(ctx.Task.Sentence.Stamp, ctx.Belief.Stamp, ctx.StampNow, ctx.MaxStampLen)
		if err != nil {
			return
		}
		sentence, err := types.NewJudgment(content, truth, merged)
		if err != nil {
			return
		}
		budget := reasoning.Forward(ctx.Task.Budget, taskTruth, truth)
		derivations = append(derivations, Derivation{Sentence: sentence, Budget: budget})
	}

	conditionalSyllogism(taskContent, beliefContent, taskTruth, beliefTruth, emit)

	if taskContent.IsStatement() && beliefContent.IsStatement() {
		switch {
		case taskContent.ID() == term.Inheritance && beliefContent.ID() == term.Inheritance:
			inheritanceSyllogism(taskContent.Subject(), taskContent.Predicate(),
				beliefContent.Subject(), beliefContent.Predicate(), taskTruth, beliefTruth, emit)
		case taskContent.ID() == term.Similarity && beliefContent.ID() == term.Similarity:
			similarityResemblance(taskContent, beliefContent, taskTruth, beliefTruth, emit)
		default:
			analogyRule(taskContent, beliefContent, taskTruth, beliefTruth, emit)
		}
	}

	conjunctionDisjunctionRules(taskContent, beliefContent, taskTruth, beliefTruth, emit)

	return derivations, nil
}

// unify unifies a and b under a shared independent variable, falling back
// to a plain structural match when neither side carries a variable (the
// common case in this codebase's tests, where every term is constant).
func unify(a, b term.Term) (term.Substitution, term.Substitution, bool) {
	return term.Unify(term.VarIndependent, a, b)
}

func unifiable(a, b term.Term) bool {
	_, _, ok := unify(a, b)
	return ok
}

// inheritanceSyllogism applies the four syllogistic rules between two
// inheritance statements, whichever pair of terms (subject/predicate on
// each side) unifies. Each branch applies the substitution the unifier
// found to the surviving terms before building the conclusion, so a
// match that only holds up to a shared variable still produces a
// correctly generalized statement.
func inheritanceSyllogism(ts, tp, bs, bp term.Term, taskTruth, beliefTruth value.Truth, emit func(term.Term, bool, value.Truth)) {
	switch {
	case unifiable(tp, bs):
		sub1, sub2, _ := unify(tp, bs)
		c, ok := term.MakeInheritance(term.ApplySubstitution(ts, sub1), term.ApplySubstitution(bp, sub2))
		emit(c, ok, reasoning.Deduction(taskTruth, beliefTruth))

	case unifiable(ts, bs):
		sub1, sub2, _ := unify(ts, bs)
		tp2, bp2 := term.ApplySubstitution(tp, sub1), term.ApplySubstitution(bp, sub2)
		c, ok := term.MakeInheritance(tp2, bp2)
		emit(c, ok, reasoning.Induction(taskTruth, beliefTruth))
		cc, okc := term.MakeSimilarity(tp2, bp2)
		emit(cc, okc, reasoning.Comparison(taskTruth, beliefTruth))

	case unifiable(tp, bp):
		sub1, sub2, _ := unify(tp, bp)
		c, ok := term.MakeInheritance(term.ApplySubstitution(ts, sub1), term.ApplySubstitution(bs, sub2))
		emit(c, ok, reasoning.Abduction(taskTruth, beliefTruth))

	case unifiable(ts, bp):
		sub1, sub2, _ := unify(ts, bp)
		bs2, tp2 := term.ApplySubstitution(bs, sub2), term.ApplySubstitution(tp, sub1)
		c, ok := term.MakeInheritance(bs2, tp2)
		emit(c, ok, reasoning.Deduction(beliefTruth, taskTruth))
		ce, oke := term.MakeInheritance(tp2, bs2)
		emit(ce, oke, reasoning.Exemplification(taskTruth, beliefTruth))
	}

	composeInheritance(ts, tp, bs, bp, taskTruth, beliefTruth, emit)
}

// composeInheritance folds a shared subject or shared predicate into a
// compound on the other side: extensional intersection (both premises
// true of it), intensional intersection (either premise true of it, using
// UnionTruth since an intensional intersection is the broader category),
// and extensional difference.
func composeInheritance(ts, tp, bs, bp term.Term, taskTruth, beliefTruth value.Truth, emit func(term.Term, bool, value.Truth)) {
	if ts.Equal(bs) && !tp.Equal(bp) {
		if c, ok := term.MakeIntersectExt(tp, bp); ok {
			s, oks := term.MakeInheritance(ts, c)
			emit(s, oks, reasoning.IntersectionTruth(taskTruth, beliefTruth))
		}
		if c, ok := term.MakeIntersectInt(tp, bp); ok {
			s, oks := term.MakeInheritance(ts, c)
			emit(s, oks, reasoning.UnionTruth(taskTruth, beliefTruth))
		}
		if c, ok := term.MakeDiffExt(tp, bp); ok {
			s, oks := term.MakeInheritance(ts, c)
			emit(s, oks, reasoning.DifferenceTruth(taskTruth, beliefTruth))
		}
	}
	if tp.Equal(bp) && !ts.Equal(bs) {
		if c, ok := term.MakeIntersectExt(ts, bs); ok {
			s, oks := term.MakeInheritance(c, tp)
			emit(s, oks, reasoning.IntersectionTruth(taskTruth, beliefTruth))
		}
		if c, ok := term.MakeIntersectInt(ts, bs); ok {
			s, oks := term.MakeInheritance(c, tp)
			emit(s, oks, reasoning.UnionTruth(taskTruth, beliefTruth))
		}
		if c, ok := term.MakeDiffExt(ts, bs); ok {
			s, oks := term.MakeInheritance(c, tp)
			emit(s, oks, reasoning.DifferenceTruth(taskTruth, beliefTruth))
		}
	}
}

// similarityResemblance chains two similarities sharing a term into a
// similarity across the other two.
func similarityResemblance(taskContent, beliefContent term.Term, taskTruth, beliefTruth value.Truth, emit func(term.Term, bool, value.Truth)) {
	ts, tp := taskContent.Subject(), taskContent.Predicate()
	bs, bp := beliefContent.Subject(), beliefContent.Predicate()
	switch {
	case tp.Equal(bs):
		c, ok := term.MakeSimilarity(ts, bp)
		emit(c, ok, reasoning.Resemblance(taskTruth, beliefTruth))
	case ts.Equal(bp):
		c, ok := term.MakeSimilarity(bs, tp)
		emit(c, ok, reasoning.Resemblance(taskTruth, beliefTruth))
	}
}

// analogyRule pairs an inheritance statement with a similarity statement
// that shares a term, producing the analogous inheritance over the
// similarity's other member. It tries both (task=inheritance,
// belief=similarity) and the reverse assignment.
func analogyRule(taskContent, beliefContent term.Term, taskTruth, beliefTruth value.Truth, emit func(term.Term, bool, value.Truth)) {
	try := func(inh, sim term.Term, inhTruth, simTruth value.Truth) {
		if inh.ID() != term.Inheritance || sim.ID() != term.Similarity {
			return
		}
		is, ip := inh.Subject(), inh.Predicate()
		ss, sp := sim.Subject(), sim.Predicate()
		switch {
		case ip.Equal(ss):
			c, ok := term.MakeInheritance(is, sp)
			emit(c, ok, reasoning.Analogy(inhTruth, simTruth))
		case ip.Equal(sp):
			c, ok := term.MakeInheritance(is, ss)
			emit(c, ok, reasoning.Analogy(inhTruth, simTruth))
		}
	}
	try(taskContent, beliefContent, taskTruth, beliefTruth)
	try(beliefContent, taskContent, beliefTruth, taskTruth)
}

// conditionalSyllogism reduces an implication whose antecedent is a
// conjunction against a judgment confirming one of the conjuncts: the
// matched conjunct drops out of the antecedent (or, if it was the only
// one left, the conclusion is detached outright).
func conditionalSyllogism(taskContent, beliefContent term.Term, taskTruth, beliefTruth value.Truth, emit func(term.Term, bool, value.Truth)) {
	try := func(impl, component term.Term, implTruth, componentTruth value.Truth) {
		if impl.ID() != term.Implication {
			return
		}
		ant, cons := impl.Subject(), impl.Predicate()
		if ant.ID() != term.Conjunction {
			return
		}
		conjuncts := ant.Children()
		matched := -1
		for i, c := range conjuncts {
			if c.Equal(component) {
				matched = i
				break
			}
		}
		if matched < 0 {
			return
		}
		remaining := make([]term.Term, 0, len(conjuncts)-1)
		for i, c := range conjuncts {
			if i != matched {
				remaining = append(remaining, c)
			}
		}
		truth := reasoning.Deduction(implTruth, componentTruth)
		if len(remaining) == 0 {
			emit(cons, true, truth)
			return
		}
		reducedAnt, ok := term.MakeConjunction(remaining...)
		if !ok {
			return
		}
		c, ok := term.MakeImplication(reducedAnt, cons)
		emit(c, ok, truth)
	}
	try(taskContent, beliefContent, taskTruth, beliefTruth)
	try(beliefContent, taskContent, beliefTruth, taskTruth)
}

// conjunctionDisjunctionRules composes two unrelated judgments into a
// conjunction/disjunction fact, and decomposes a held conjunction/
// disjunction fact against a judgment confirming one of its components.
func conjunctionDisjunctionRules(taskContent, beliefContent term.Term, taskTruth, beliefTruth value.Truth, emit func(term.Term, bool, value.Truth)) {
	if d, ok := decompose(taskContent, beliefContent); ok {
		emit(d, true, taskTruth)
	}
	if d, ok := decompose(beliefContent, taskContent); ok {
		emit(d, true, beliefTruth)
	}

	if !taskContent.IsStatement() && !beliefContent.IsStatement() &&
		taskContent.ID() != term.Conjunction && taskContent.ID() != term.Disjunction &&
		beliefContent.ID() != term.Conjunction && beliefContent.ID() != term.Disjunction &&
		!taskContent.Equal(beliefContent) {
		if conj, ok := term.MakeConjunction(taskContent, beliefContent); ok {
			emit(conj, true, reasoning.IntersectionTruth(taskTruth, beliefTruth))
		}
		if disj, ok := term.MakeDisjunction(taskContent, beliefContent); ok {
			emit(disj, true, reasoning.UnionTruth(taskTruth, beliefTruth))
		}
	}
}

// decompose extracts the remaining components from a held conjunction/
// disjunction whole when comp matches exactly one of its children,
// preserving whole's own truth (knowing the compound is true tells us its
// components are true, or false, to the same degree).
func decompose(whole, comp term.Term) (term.Term, bool) {
	if whole.ID() != term.Conjunction && whole.ID() != term.Disjunction {
		return term.Term{}, false
	}
	children := whole.Children()
	for i, c := range children {
		if !c.Equal(comp) {
			continue
		}
		rest := make([]term.Term, 0, len(children)-1)
		for j, other := range children {
			if j != i {
				rest = append(rest, other)
			}
		}
		if whole.ID() == term.Conjunction {
			return term.MakeConjunction(rest...)
		}
		return term.MakeDisjunction(rest...)
	}
	return term.Term{}, false
}

// contrapositives derives the contrapositive of any implication carried
// by the task or the belief: <A==>B> yields <(--,B)==>(--,A)>. Unlike the
// rules above this needs only one premise, so it runs even when ctx has
// no matched belief at all.
func contrapositives(ctx *Context) []Derivation {
	var out []Derivation
	try := func(sentence *types.Sentence, budget value.Budget) {
		if sentence == nil || sentence.Content.ID() != term.Implication {
			return
		}
		negCons, ok1 := term.MakeNegation(sentence.Content.Predicate())
		negAnt, ok2 := term.MakeNegation(sentence.Content.Subject())
		if !ok1 || !ok2 {
			return
		}
		c, ok := term.MakeImplication(negCons, negAnt)
		if !ok {
			return
		}
		truth := reasoning.Contraposition(sentence.Truth)
		derived, err := types.NewJudgment(c, truth, sentence.Stamp)
		if err != nil {
			return
		}
		out = append(out, Derivation{Sentence: derived, Budget: budget})
	}
	try(&ctx.Task.Sentence, ctx.Task.Budget)
	try(ctx.Belief, ctx.Task.Budget)
	return out
}
