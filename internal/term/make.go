package term

import "sort"

// make.go holds the smart constructors: the only way to build a
// compound or statement Term. Each performs semantic reduction and
// returns ok=false ("no term") on vacuous or invalid input; nothing here
// ever panics on bad input data, only on programmer error (e.g. a nil
// slice where an atom was expected).

// MakeWord builds a word atom.
func MakeWord(name string) Term { return Term{id: Word, name: name} }

// MakeOperator builds an operator atom.
func MakeOperator(name string) Term { return Term{id: Operator, name: name} }

// placeholderTerm is the unique zero-arity placeholder atom used inside
// images.
var placeholderTerm = Term{id: Placeholder}

// MakePlaceholder returns the placeholder atom.
func MakePlaceholder() Term { return placeholderTerm }

// MakeVariable builds a variable atom of the given kind and local id. Ids
// are assigned by Rename; this constructor is also used directly by the
// unifier when it invents a fresh shared variable.
func MakeVariable(kind Identifier, id int) Term {
	return Term{id: kind, varID: id}
}

// MakeRawVariable builds a variable atom keyed by its surface name rather
// than a local id, as produced by the (out-of-core) Narsese-to-Term
// translation before Rename assigns canonical 1..N ids. Two raw variables
// are distinct terms until Rename identifies them by (kind, name).
func MakeRawVariable(kind Identifier, name string) Term {
	return Term{id: kind, name: name}
}

func sortedDedup(terms []Term) []Term {
	sorted := append([]Term(nil), terms...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key() < sorted[j].Key() })
	out := sorted[:0]
	for i, t := range sorted {
		if i == 0 || !t.Equal(sorted[i-1]) {
			out = append(out, t)
		}
	}
	return out
}

func isSingletonSetOf(container, element Term) bool {
	return (container.id == SetExt || container.id == SetInt) &&
		len(container.children) == 1 && container.children[0].Equal(element)
}

// --- Sets ---

// MakeSetExt builds an extensional set {a,b,...}. An empty input yields
// no term; otherwise the elements are sorted and deduplicated.
func MakeSetExt(terms ...Term) (Term, bool) {
	return makeSet(SetExt, terms)
}

// MakeSetInt builds an intensional set [a,b,...].
func MakeSetInt(terms ...Term) (Term, bool) {
	return makeSet(SetInt, terms)
}

func makeSet(id Identifier, terms []Term) (Term, bool) {
	if len(terms) == 0 {
		return Term{}, false
	}
	return Term{id: id, children: sortedDedup(terms)}, true
}

// --- Intersections ---

// MakeIntersectExt builds an extensional intersection, flattening nested
// extensional intersections, folding into a set intersection when both
// operands are extensional sets, and extracting a singleton operand.
func MakeIntersectExt(terms ...Term) (Term, bool) {
	return makeIntersection(IntersectExt, SetExt, terms)
}

// MakeIntersectInt builds an intensional intersection, analogous to
// MakeIntersectExt with intensional sets.
func MakeIntersectInt(terms ...Term) (Term, bool) {
	return makeIntersection(IntersectInt, SetInt, terms)
}

func makeIntersection(id, dualSet Identifier, terms []Term) (Term, bool) {
	if len(terms) == 2 && terms[0].id == dualSet && terms[1].id == dualSet {
		elems := setIntersect(terms[0].children, terms[1].children)
		if len(elems) == 0 {
			return Term{}, false
		}
		return Term{id: dualSet, children: sortedDedup(elems)}, true
	}
	flat := flattenSameKind(id, terms)
	flat = sortedDedup(flat)
	if len(flat) == 0 {
		return Term{}, false
	}
	if len(flat) == 1 {
		return flat[0], true
	}
	return Term{id: id, children: flat}, true
}

func flattenSameKind(id Identifier, terms []Term) []Term {
	out := make([]Term, 0, len(terms))
	for _, t := range terms {
		if t.id == id {
			out = append(out, t.children...)
		} else {
			out = append(out, t)
		}
	}
	return out
}

func setIntersect(a, b []Term) []Term {
	out := make([]Term, 0)
	for _, x := range a {
		for _, y := range b {
			if x.Equal(y) {
				out = append(out, x)
				break
			}
		}
	}
	return out
}

func setSubtract(a, b []Term) []Term {
	out := make([]Term, 0, len(a))
	for _, x := range a {
		found := false
		for _, y := range b {
			if x.Equal(y) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, x)
		}
	}
	return out
}

// --- Differences ---

// MakeDiffExt builds an extensional difference a-b. A-A yields no term;
// two extensional-set operands fold to the element-wise set difference.
func MakeDiffExt(a, b Term) (Term, bool) {
	return makeDifference(DiffExt, SetExt, a, b)
}

// MakeDiffInt builds an intensional difference, analogous to MakeDiffExt.
func MakeDiffInt(a, b Term) (Term, bool) {
	return makeDifference(DiffInt, SetInt, a, b)
}

func makeDifference(id, dualSet Identifier, a, b Term) (Term, bool) {
	if a.Equal(b) {
		return Term{}, false
	}
	if a.id == dualSet && b.id == dualSet {
		elems := setSubtract(a.children, b.children)
		if len(elems) == 0 {
			return Term{}, false
		}
		return Term{id: dualSet, children: sortedDedup(elems)}, true
	}
	return Term{id: id, children: []Term{a, b}}, true
}

// --- Product & Images ---

// MakeProduct builds an ordered product (*,a,b,...). Order and duplicates
// are both significant; the only rejection is zero operands.
func MakeProduct(terms ...Term) (Term, bool) {
	if len(terms) == 0 {
		return Term{}, false
	}
	return Term{id: Product, children: append([]Term(nil), terms...)}, true
}

// MakeImageExt builds an extensional image from a product's argument list,
// a relation term, and the product-argument index to replace with the
// placeholder. The relation is stored at position 0, the placeholder at
// position index+1. No peep-hole reduction is applied: when the relation
// is itself a product sharing a side with the arguments, the image is
// built as given, neither reduced nor rejected.
func MakeImageExt(relation Term, args []Term, placeholderIndex int) (Term, bool) {
	return makeImage(ImageExt, relation, args, placeholderIndex)
}

// MakeImageInt builds an intensional image, analogous to MakeImageExt.
func MakeImageInt(relation Term, args []Term, placeholderIndex int) (Term, bool) {
	return makeImage(ImageInt, relation, args, placeholderIndex)
}

func makeImage(id Identifier, relation Term, args []Term, placeholderIndex int) (Term, bool) {
	if len(args) == 0 || placeholderIndex < 0 || placeholderIndex >= len(args) {
		return Term{}, false
	}
	children := make([]Term, 0, len(args)+1)
	children = append(children, relation)
	for i, a := range args {
		if i == placeholderIndex {
			children = append(children, placeholderTerm)
		} else {
			children = append(children, a)
		}
	}
	return Term{id: id, children: children}, true
}

// --- Conjunction / Disjunction / Negation / Sequence ---

// MakeConjunction builds (&&,a,b,...): flattens nested conjunctions, sorts
// and deduplicates (commutative), and extracts a singleton operand.
func MakeConjunction(terms ...Term) (Term, bool) {
	return makeJunction(Conjunction, terms)
}

// MakeDisjunction builds (||,a,b,...), analogous to MakeConjunction.
func MakeDisjunction(terms ...Term) (Term, bool) {
	return makeJunction(Disjunction, terms)
}

func makeJunction(id Identifier, terms []Term) (Term, bool) {
	flat := flattenSameKind(id, terms)
	flat = sortedDedup(flat)
	if len(flat) == 0 {
		return Term{}, false
	}
	if len(flat) == 1 {
		return flat[0], true
	}
	return Term{id: id, children: flat}, true
}

// MakeNegation builds --(t); double negation cancels: --(--P) = P.
func MakeNegation(t Term) (Term, bool) {
	if t.id == Negation {
		return t.children[0], true
	}
	return Term{id: Negation, children: []Term{t}}, true
}

// MakeSequence builds a temporal sequence, flattening nested sequences and
// extracting a singleton operand. Sequences are ordered, not commutative.
func MakeSequence(terms ...Term) (Term, bool) {
	flat := make([]Term, 0, len(terms))
	for _, t := range terms {
		if t.id == Sequence {
			flat = append(flat, t.children...)
		} else {
			flat = append(flat, t)
		}
	}
	if len(flat) == 0 {
		return Term{}, false
	}
	if len(flat) == 1 {
		return flat[0], true
	}
	return Term{id: Sequence, children: flat}, true
}

// --- Statements ---

func isHigherOrder(t Term) bool {
	return t.id == Implication || t.id == Equivalence || t.id == TemporalImplication
}

func reflexiveOrContained(subj, pred Term) bool {
	if subj.Equal(pred) {
		return true
	}
	return isSingletonSetOf(subj, pred) || isSingletonSetOf(pred, subj)
}

// isConverseOf reports whether pred is the exact subject/predicate swap of
// subj under the same copula, the "<<A-->B> ==> <B-->A>>" tautology
// forbidden here.
func isConverseOf(subj, pred Term) bool {
	if subj.id != pred.id || !statementIdentifiers[subj.id] {
		return false
	}
	return subj.children[0].Equal(pred.children[1]) && subj.children[1].Equal(pred.children[0])
}

// MakeInheritance builds <subj --> pred>, rejecting reflexive and
// containment tautologies.
func MakeInheritance(subj, pred Term) (Term, bool) {
	if reflexiveOrContained(subj, pred) {
		return Term{}, false
	}
	return Term{id: Inheritance, children: []Term{subj, pred}}, true
}

// MakeSimilarity builds <a <-> b>: commutative (canonical order), rejects
// reflexive tautologies and nested higher-order operands.
func MakeSimilarity(a, b Term) (Term, bool) {
	if reflexiveOrContained(a, b) || isHigherOrder(a) || isHigherOrder(b) {
		return Term{}, false
	}
	return canonicalSymmetric(Similarity, a, b), true
}

// MakeImplication builds <ant ==> cons>, rewriting nested implication in
// the consequent: <A ==> <B ==> C>> becomes <(&&,A,B) ==> C>.
func MakeImplication(ant, cons Term) (Term, bool) {
	if reflexiveOrContained(ant, cons) || isConverseOf(ant, cons) {
		return Term{}, false
	}
	for cons.id == Implication {
		conjoined, ok := MakeConjunction(ant, cons.children[0])
		if !ok {
			return Term{}, false
		}
		ant, cons = conjoined, cons.children[1]
		if reflexiveOrContained(ant, cons) || isConverseOf(ant, cons) {
			return Term{}, false
		}
	}
	return Term{id: Implication, children: []Term{ant, cons}}, true
}

// MakeTemporalImplication builds a predictive implication <ant =/> cons>,
// subject to the same tautology checks as MakeImplication but without the
// nested-implication rewrite (temporal order is load-bearing there).
func MakeTemporalImplication(ant, cons Term) (Term, bool) {
	if reflexiveOrContained(ant, cons) || isConverseOf(ant, cons) {
		return Term{}, false
	}
	return Term{id: TemporalImplication, children: []Term{ant, cons}}, true
}

// MakeEquivalence builds <a <=> b>: commutative, rejects reflexive
// tautologies and nested higher-order operands.
func MakeEquivalence(a, b Term) (Term, bool) {
	if reflexiveOrContained(a, b) || isHigherOrder(a) || isHigherOrder(b) {
		return Term{}, false
	}
	return canonicalSymmetric(Equivalence, a, b), true
}

func canonicalSymmetric(id Identifier, a, b Term) Term {
	if b.Key() < a.Key() {
		a, b = b, a
	}
	return Term{id: id, children: []Term{a, b}}
}

// MakeInstance builds <{subj} --> pred>, the instance-statement sugar that
// lowers to inheritance with an extensional-set subject.
func MakeInstance(subj, pred Term) (Term, bool) {
	set, ok := MakeSetExt(subj)
	if !ok {
		return Term{}, false
	}
	return MakeInheritance(set, pred)
}

// MakeProperty builds <subj --> [pred]>.
func MakeProperty(subj, pred Term) (Term, bool) {
	set, ok := MakeSetInt(pred)
	if !ok {
		return Term{}, false
	}
	return MakeInheritance(subj, set)
}

// MakeInstanceProperty builds <{subj} --> [pred]>.
func MakeInstanceProperty(subj, pred Term) (Term, bool) {
	subjSet, ok := MakeSetExt(subj)
	if !ok {
		return Term{}, false
	}
	predSet, ok := MakeSetInt(pred)
	if !ok {
		return Term{}, false
	}
	return MakeInheritance(subjSet, predSet)
}
