// Package validation classifies the ways an externally supplied request
// can fail before it ever reaches memory or the inference phases:
// malformed textual Narsese, a term that fails semantic construction, or
// an inspection request naming a target the reasoner doesn't recognize.
package validation

import (
	"errors"
	"fmt"

	"github.com/narsgo/reasoner/internal/term"
)

// Kind classifies a validation failure.
type Kind int

const (
	KindInvalidNarsese Kind = iota
	KindInvalidConstruction
	KindUnknownInspectTarget
)

func (k Kind) String() string {
	switch k {
	case KindInvalidNarsese:
		return "invalid Narsese"
	case KindInvalidConstruction:
		return "invalid construction"
	case KindUnknownInspectTarget:
		return "unknown inspection target"
	default:
		return "unknown"
	}
}

// Error is a validation failure tagged with its Kind, so a caller can
// render or route it differently (e.g. a parse error vs. a semantically
// vacuous construction).
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Message) }

// errBadTerm is the sentinel wrapped by Error when term parsing fails.
var errBadTerm = errors.New("validation: term failed to parse")

// ParseTerm parses text as a term, wrapping a failure as a KindInvalidNarsese
// Error.
func ParseTerm(text string) (term.Term, error) {
	t, ok := term.Parse(text)
	if !ok {
		return term.Term{}, &Error{Kind: KindInvalidNarsese, Message: fmt.Sprintf("%q: %v", text, errBadTerm)}
	}
	return t, nil
}

// RequireConstant validates that t can stand as a sentence's content,
// wrapping a failure as a KindInvalidConstruction Error.
func RequireConstant(t term.Term) error {
	if !t.Constant() {
		return &Error{Kind: KindInvalidConstruction, Message: fmt.Sprintf("%s is not constant", t.String())}
	}
	return nil
}

// KnownInspectTargets lists the inspection target names the reasoner
// recognizes (see Reasoner.Inspect and cmd/reasoner's dispatch).
var KnownInspectTargets = map[string]bool{
	"summary":   true,
	"concepts":  true,
	"questions": true,
}

// RequireKnownInspectTarget validates name against KnownInspectTargets,
// wrapping a failure as a KindUnknownInspectTarget Error.
func RequireKnownInspectTarget(name string) error {
	if !KnownInspectTargets[name] {
		return &Error{Kind: KindUnknownInspectTarget, Message: fmt.Sprintf("%q", name)}
	}
	return nil
}
