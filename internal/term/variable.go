package term

import "strconv"

// variable.go implements renaming, substitution and the bounded unifier
// used by the inference engine's compositional reasoning phase.

// Rename reassigns every distinct variable atom in t (grouped by kind and
// surface identity) to a fresh sequential id, 1..N, in first-occurrence
// (pre-order) order. Rename is idempotent: rename(rename(t)) == rename(t),
// since a term built entirely of already-numbered variables visits them in
// the same relative order and reassigns the same 1..N sequence.
func Rename(t Term) Term {
	ids := make(map[string]int)
	counter := 0
	var walk func(Term) Term
	walk = func(t Term) Term {
		if t.IsVariable() {
			key := varKey(t)
			id, ok := ids[key]
			if !ok {
				counter++
				id = counter
				ids[key] = id
			}
			return MakeVariable(t.id, id)
		}
		if !t.IsCompound() {
			return t
		}
		children := make([]Term, len(t.children))
		for i, c := range t.children {
			children[i] = walk(c)
		}
		return rebuildCompound(t.id, children)
	}
	return walk(t)
}

// rebuildCompound reconstructs a compound node from (possibly changed)
// children, re-sorting and deduplicating if the kind is commutative. It
// deliberately does not re-run the full make_* reduction pipeline: renaming
// and substitution only ever need to restore canonical ordering, not
// re-derive folds like set intersection.
func rebuildCompound(id Identifier, children []Term) Term {
	if commutativeIdentifiers[id] {
		children = sortedDedup(children)
	}
	return Term{id: id, children: children}
}

func varKey(t Term) string {
	if t.varID != 0 {
		return string(t.id) + "#" + strconv.Itoa(t.varID)
	}
	return string(t.id) + "@" + t.name
}

// Substitution maps a variable's key (kind + id/name) to its replacement
// term.
type Substitution map[string]Term

// ApplySubstitution recursively replaces every variable in t that sub
// binds, re-sorting commutative compounds afterward.
func ApplySubstitution(t Term, sub Substitution) Term {
	if t.IsVariable() {
		if repl, ok := sub[varKey(t)]; ok {
			return repl
		}
		return t
	}
	if !t.IsCompound() {
		return t
	}
	children := make([]Term, len(t.children))
	for i, c := range t.children {
		children[i] = ApplySubstitution(c, sub)
	}
	return rebuildCompound(t.id, children)
}

// maxUnifyPermutationSize bounds the brute-force permutation search used to
// unify the children of a commutative compound; above this size Unify
// deterministically fails rather than exploring an exponential search
// space.
const maxUnifyPermutationSize = 6

// Unify searches for substitutions sub1 (over t1) and sub2 (over t2) such
// that applying them makes the two terms equal, binding only variables of
// the given kind. When a kind-K variable on each side meet at the same
// position, a fresh shared variable is invented and both sides are bound
// to it. Returns ok=false ("no unifier") if no such pair of substitutions
// exists within the permutation-search bound.
func Unify(kind Identifier, t1, t2 Term) (sub1, sub2 Substitution, ok bool) {
	sub1 = Substitution{}
	sub2 = Substitution{}
	fresh := -1
	if !unify(kind, t1, t2, sub1, sub2, &fresh) {
		return nil, nil, false
	}
	return sub1, sub2, true
}

func unify(kind Identifier, a, b Term, sub1, sub2 Substitution, fresh *int) bool {
	aVar := a.id == kind
	bVar := b.id == kind

	switch {
	case aVar && bVar:
		boundA, hasA := sub1[varKey(a)]
		boundB, hasB := sub2[varKey(b)]
		switch {
		case hasA && hasB:
			return boundA.Equal(boundB)
		case hasA:
			sub2[varKey(b)] = boundA
			return true
		case hasB:
			sub1[varKey(a)] = boundB
			return true
		default:
			common := MakeVariable(kind, *fresh)
			*fresh--
			sub1[varKey(a)] = common
			sub2[varKey(b)] = common
			return true
		}
	case aVar:
		if bound, ok := sub1[varKey(a)]; ok {
			return unify(kind, bound, b, sub1, sub2, fresh)
		}
		sub1[varKey(a)] = b
		return true
	case bVar:
		if bound, ok := sub2[varKey(b)]; ok {
			return unify(kind, a, bound, sub1, sub2, fresh)
		}
		sub2[varKey(b)] = a
		return true
	}

	if a.id != b.id {
		return false
	}
	if a.IsAtom() {
		return a.name == b.name && a.varID == b.varID
	}
	if len(a.children) != len(b.children) {
		return false
	}
	if commutativeIdentifiers[a.id] {
		if len(a.children) > maxUnifyPermutationSize {
			return false
		}
		return unifyCommutative(kind, a.children, b.children, sub1, sub2, fresh)
	}
	for i := range a.children {
		if !unify(kind, a.children[i], b.children[i], sub1, sub2, fresh) {
			return false
		}
	}
	return true
}

// unifyCommutative enumerates permutations of b's children (deterministic
// order) looking for one that unifies elementwise with a's children,
// rolling back partial bindings between attempts.
func unifyCommutative(kind Identifier, aChildren, bChildren []Term, sub1, sub2 Substitution, fresh *int) bool {
	perm := append([]Term(nil), bChildren...)
	found := false
	permute(perm, 0, func(candidate []Term) bool {
		snap1, snap2, freshSnap := cloneSub(sub1), cloneSub(sub2), *fresh
		ok := true
		for i := range aChildren {
			if !unify(kind, aChildren[i], candidate[i], sub1, sub2, fresh) {
				ok = false
				break
			}
		}
		if ok {
			found = true
			return true
		}
		restoreSub(sub1, snap1)
		restoreSub(sub2, snap2)
		*fresh = freshSnap
		return false
	})
	return found
}

// permute enumerates all permutations of items in place, calling visit
// after each full permutation; it stops as soon as visit returns true.
func permute(items []Term, k int, visit func([]Term) bool) bool {
	if k == len(items) {
		return visit(items)
	}
	for i := k; i < len(items); i++ {
		items[k], items[i] = items[i], items[k]
		if permute(items, k+1, visit) {
			items[k], items[i] = items[i], items[k]
			return true
		}
		items[k], items[i] = items[i], items[k]
	}
	return false
}

func cloneSub(s Substitution) Substitution {
	c := make(Substitution, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

func restoreSub(dst, snapshot Substitution) {
	for k := range dst {
		delete(dst, k)
	}
	for k, v := range snapshot {
		dst[k] = v
	}
}
