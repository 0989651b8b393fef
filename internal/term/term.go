// Package term implements the immutable term algebra: atoms, variables,
// compounds and statements, built exclusively through the make_* smart
// constructors in make.go so that every live Term value already satisfies
// the structural invariants.
package term

import (
	"strconv"
	"strings"
)

// Identifier names a term's kind. It plays the role the design calls the
// term's "identifier" tag: atom kind, compound connective, or statement
// copula.
type Identifier string

const (
	// Atoms.
	Word               Identifier = "word"
	Placeholder        Identifier = "_"
	VarIndependent     Identifier = "$"
	VarDependent       Identifier = "#"
	VarQuery           Identifier = "?"
	Operator           Identifier = "^"

	// Pure compounds.
	SetExt       Identifier = "SetExt"
	SetInt       Identifier = "SetInt"
	IntersectExt Identifier = "IntersectExt"
	IntersectInt Identifier = "IntersectInt"
	DiffExt      Identifier = "DiffExt"
	DiffInt      Identifier = "DiffInt"
	Product      Identifier = "Product"
	ImageExt     Identifier = "ImageExt"
	ImageInt     Identifier = "ImageInt"
	Conjunction  Identifier = "Conjunction"
	Disjunction  Identifier = "Disjunction"
	Negation     Identifier = "Negation"
	Sequence     Identifier = "Sequence"

	// Statements (arity 2 copulas).
	Inheritance         Identifier = "-->"
	Similarity          Identifier = "<->"
	Implication         Identifier = "==>"
	Equivalence         Identifier = "<=>"
	TemporalImplication Identifier = "=/>"
)

// variableIdentifiers and the maps below classify an Identifier's
// syntactic family; used pervasively by predicates below.
var variableIdentifiers = map[Identifier]bool{
	VarIndependent: true, VarDependent: true, VarQuery: true,
}

var commutativeIdentifiers = map[Identifier]bool{
	SetExt: true, SetInt: true, IntersectExt: true, IntersectInt: true,
	Conjunction: true, Disjunction: true, Similarity: true, Equivalence: true,
}

var statementIdentifiers = map[Identifier]bool{
	Inheritance: true, Similarity: true, Implication: true, Equivalence: true,
	TemporalImplication: true,
}

var imageIdentifiers = map[Identifier]bool{ImageExt: true, ImageInt: true}

// Term is an immutable, value-equal, hashable tree node. At most one of
// the component fields is populated per the term's Identifier: word and
// operator atoms carry name, numbered variables carry varID (unnumbered
// ones carry name), compounds and statements carry children, and the
// Placeholder carries none.
type Term struct {
	id       Identifier
	name     string
	varID    int
	children []Term
}

// ID returns the term's identifier tag.
func (t Term) ID() Identifier { return t.id }

// Name returns a word/operator atom's name, or "" for any other term.
func (t Term) Name() string { return t.name }

// VarID returns a variable atom's local numeric id, or 0 for any other
// term.
func (t Term) VarID() int { return t.varID }

// Children returns a compound or statement's ordered operands. Callers
// must not mutate the returned slice; Term values are immutable.
func (t Term) Children() []Term { return t.children }

// IsAtom reports whether t is a leaf (word, placeholder, variable or
// operator).
func (t Term) IsAtom() bool {
	return t.id == Word || t.id == Placeholder || t.id == Operator || variableIdentifiers[t.id]
}

// IsVariable reports whether t is any of the three variable kinds.
func (t Term) IsVariable() bool { return variableIdentifiers[t.id] }

// IsCompound reports whether t is a compound or statement (has children).
func (t Term) IsCompound() bool { return len(t.children) > 0 }

// IsStatement reports whether t's identifier is one of the copulas.
func (t Term) IsStatement() bool { return statementIdentifiers[t.id] }

// IsCommutative reports whether t's compound kind stores components in
// canonical sorted order.
func (t Term) IsCommutative() bool { return commutativeIdentifiers[t.id] }

// IsImage reports whether t is an extensional or intensional image.
func (t Term) IsImage() bool { return imageIdentifiers[t.id] }

// Subject and Predicate return a statement's two operands. Callers must
// only call these on terms for which IsStatement() is true.
func (t Term) Subject() Term   { return t.children[0] }
func (t Term) Predicate() Term { return t.children[1] }

// Constant reports whether t contains no free non-query variable; only
// constant terms may name a concept.
func (t Term) Constant() bool {
	switch {
	case t.id == VarIndependent || t.id == VarDependent:
		return false
	case t.id == VarQuery:
		// A query variable is "free" everywhere it appears, but a
		// sentence containing one is a question, never a concept
		// name by itself; constancy here only concerns whether this
		// term, in isolation, could name a concept.
		return false
	case t.IsAtom():
		return true
	default:
		for _, c := range t.children {
			if !c.Constant() {
				return false
			}
		}
		return true
	}
}

// Complexity is the term's syntactic size: 1 for an atom, 1 plus the sum
// of children's complexity for a compound.
func (t Term) Complexity() int {
	if t.IsAtom() {
		return 1
	}
	sum := 1
	for _, c := range t.children {
		sum += c.Complexity()
	}
	return sum
}

// Equal is structural equality, delegating to the canonical textual key so
// that equal terms (including post-reduction commutative reorderings) are
// always recognized as equal regardless of construction order.
func (t Term) Equal(other Term) bool { return t.Key() == other.Key() }

// Key returns a canonical string uniquely identifying t's structure; it is
// used as the map key wherever terms name concepts or populate sets
// (Term's Components are not themselves Go-comparable because of the
// nested slice).
func (t Term) Key() string { return t.String() }

// String renders t in a Narsese-like textual form. Term -> String -> Term
// is an identity for all valid terms; see Parse in text.go for the
// inverse direction exercised by the round-trip tests.
func (t Term) String() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t Term) write(b *strings.Builder) {
	switch {
	case t.id == Word:
		b.WriteString(t.name)
	case t.id == Operator:
		b.WriteByte('^')
		b.WriteString(t.name)
	case t.id == Placeholder:
		b.WriteByte('_')
	case variableIdentifiers[t.id]:
		b.WriteString(string(t.id))
		if t.varID != 0 {
			b.WriteString(strconv.Itoa(t.varID))
		} else {
			b.WriteString(t.name)
		}
	case t.IsStatement():
		b.WriteByte('<')
		t.children[0].write(b)
		b.WriteByte(' ')
		b.WriteString(string(t.id))
		b.WriteByte(' ')
		t.children[1].write(b)
		b.WriteByte('>')
	case t.id == SetExt:
		writeBracketed(b, '{', '}', t.children)
	case t.id == SetInt:
		writeBracketed(b, '[', ']', t.children)
	default:
		b.WriteByte('(')
		b.WriteString(connectiveSymbol(t.id))
		for _, c := range t.children {
			b.WriteByte(',')
			c.write(b)
		}
		b.WriteByte(')')
	}
}

func writeBracketed(b *strings.Builder, open, close byte, children []Term) {
	b.WriteByte(open)
	for i, c := range children {
		if i > 0 {
			b.WriteByte(',')
		}
		c.write(b)
	}
	b.WriteByte(close)
}

func connectiveSymbol(id Identifier) string {
	switch id {
	case IntersectExt:
		return "&"
	case IntersectInt:
		return "|"
	case DiffExt:
		return "-"
	case DiffInt:
		return "~"
	case Product:
		return "*"
	case ImageExt:
		return "/"
	case ImageInt:
		return "\\"
	case Conjunction:
		return "&&"
	case Disjunction:
		return "||"
	case Negation:
		return "--"
	case Sequence:
		return ";"
	default:
		return string(id)
	}
}
