// Package types implements the sentence and task entities carried through
// the memory and inference layers: a sentence pairs a constant term with a
// punctuation, an evidential stamp and (for judgments) a truth value; a
// task adds a budget and bookkeeping for derivation and question answering.
package types

import (
	"errors"
	"fmt"

	"github.com/narsgo/reasoner/internal/term"
	"github.com/narsgo/reasoner/internal/value"
)

// ErrNotConstant is returned when a sentence is built from a term that
// still contains a free independent or dependent variable; only constant
// terms may be asserted or asked about.
var ErrNotConstant = errors.New("types: term is not constant")

// Punctuation distinguishes a judgment from a question.
type Punctuation byte

const (
	Judgment Punctuation = '.'
	Question Punctuation = '?'
)

func (p Punctuation) String() string { return string(p) }

// Sentence is a constant term under a punctuation, with a truth value for
// judgments (the zero Truth for questions, which carry none).
type Sentence struct {
	Content     term.Term
	Punctuation Punctuation
	Truth       value.Truth
	Stamp       value.Stamp
}

// NewJudgment builds a judgment sentence. content must be constant.
func NewJudgment(content term.Term, truth value.Truth, stamp value.Stamp) (Sentence, error) {
	if !content.Constant() {
		return Sentence{}, fmt.Errorf("judgment %s: %w", content.String(), ErrNotConstant)
	}
	return Sentence{Content: content, Punctuation: Judgment, Truth: truth, Stamp: stamp}, nil
}

// NewQuestion builds a question sentence. content may contain query
// variables but no independent/dependent variable, since questions are
// still asked against the constant-term concept graph.
func NewQuestion(content term.Term, stamp value.Stamp) (Sentence, error) {
	var hasFree func(t term.Term) bool
	hasFree = func(t term.Term) bool {
		if t.ID() == term.VarIndependent || t.ID() == term.VarDependent {
			return true
		}
		for _, c := range t.Children() {
			if hasFree(c) {
				return true
			}
		}
		return false
	}
	if hasFree(content) {
		return Sentence{}, fmt.Errorf("question %s: %w", content.String(), ErrNotConstant)
	}
	return Sentence{Content: content, Punctuation: Question, Stamp: stamp}, nil
}

// Key identifies the sentence's content+punctuation+evidential-base
// identity, used as the bag key for tasks. The belief and question tables
// do not use it: they compare content (and, for beliefs, stamps) directly.
func (s Sentence) Key() string {
	return s.Content.Key() + string(s.Punctuation) + s.Stamp.Fingerprint()
}

func (s Sentence) String() string {
	if s.Punctuation == Judgment {
		return fmt.Sprintf("%s%c %s", s.Content.String(), s.Punctuation, s.Truth.Brief())
	}
	return fmt.Sprintf("%s%c", s.Content.String(), s.Punctuation)
}
