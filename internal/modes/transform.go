package modes

import (
	"github.com/narsgo/reasoner/internal/term"
	"github.com/narsgo/reasoner/internal/types"
)

// TransformPhase rewrites an inheritance statement across the
// product/image equivalence for every inheritance judgment it is given
// (no link type is consulted): <(*,A,B) --> R> can be
// viewed as <A --> (/,R,_,B)> (focusing on A, the relation and remaining
// arguments folded into an extensional image) or symmetrically, with the
// product on the predicate side, as an intensional image focused on one
// of its arguments. Both directions are single-premise and truth-
// preserving (the two forms name the same fact), so this phase runs
// whether or not the task's concept has any beliefs yet.
type TransformPhase struct{}

func (TransformPhase) Name() string { return "transform_task" }

func (TransformPhase) Apply(ctx *Context) ([]Derivation, []Event) {
	content := ctx.Task.Sentence.Content
	if ctx.Task.Sentence.Punctuation != types.Judgment || content.ID() != term.Inheritance {
		return nil, nil
	}

	var rewrites []term.Term
	rewrites = append(rewrites, productToImage(content)...)
	rewrites = append(rewrites, imageToProduct(content)...)

	var derivations []Derivation
	for _, rewritten := range rewrites {
		sentence, err := types.NewJudgment(rewritten, ctx.Task.Sentence.Truth, ctx.Task.Sentence.Stamp)
		if err != nil {
			continue
		}
		derivations = append(derivations, Derivation{Sentence: sentence, Budget: ctx.Task.Budget})
	}
	return derivations, nil
}

// productToImage rewrites <(*,x1,...,xn) --> R> into one <xi --> image>
// statement per argument position, and <R --> (*,x1,...,xn)> into one
// <image --> xi> statement per argument position, the two directions
// NAL's extensional/intensional images exist to name.
func productToImage(content term.Term) []term.Term {
	var out []term.Term
	if subject := content.Subject(); subject.ID() == term.Product {
		relation := content.Predicate()
		args := subject.Children()
		for i, arg := range args {
			image, ok := term.MakeImageExt(relation, args, i)
			if !ok {
				continue
			}
			if rewritten, ok := term.MakeInheritance(arg, image); ok {
				out = append(out, rewritten)
			}
		}
	}
	if predicate := content.Predicate(); predicate.ID() == term.Product {
		relation := content.Subject()
		args := predicate.Children()
		for i, arg := range args {
			image, ok := term.MakeImageInt(relation, args, i)
			if !ok {
				continue
			}
			if rewritten, ok := term.MakeInheritance(image, arg); ok {
				out = append(out, rewritten)
			}
		}
	}
	return out
}

// imageToProduct reverses productToImage: given <xi --> (/,R,...,_,...)>
// or <(\,R,...,_,...) --> xi>, it substitutes xi back into the
// placeholder and rebuilds the original product statement <(*,...) --> R>
// or <R --> (*,...)>.
func imageToProduct(content term.Term) []term.Term {
	var out []term.Term
	if subject, predicate := content.Subject(), content.Predicate(); predicate.ID() == term.ImageExt {
		if args, ok := restoreProductArgs(predicate, subject); ok {
			if product, ok := term.MakeProduct(args...); ok {
				if rewritten, ok := term.MakeInheritance(product, predicate.Children()[0]); ok {
					out = append(out, rewritten)
				}
			}
		}
	}
	if subject, predicate := content.Subject(), content.Predicate(); subject.ID() == term.ImageInt {
		if args, ok := restoreProductArgs(subject, predicate); ok {
			if product, ok := term.MakeProduct(args...); ok {
				if rewritten, ok := term.MakeInheritance(subject.Children()[0], product); ok {
					out = append(out, rewritten)
				}
			}
		}
	}
	return out
}

// restoreProductArgs extracts an image's argument list (children[1:])
// with the placeholder position filled in by focused, the term that was
// standing in its place in the statement.
func restoreProductArgs(image, focused term.Term) ([]term.Term, bool) {
	children := image.Children()
	if len(children) < 2 {
		return nil, false
	}
	args := append([]term.Term(nil), children[1:]...)
	for i, a := range args {
		if a.ID() == term.Placeholder {
			args[i] = focused
			return args, true
		}
	}
	return nil, false
}
