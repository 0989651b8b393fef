package modes

import "github.com/narsgo/reasoner/internal/types"

// DirectPhase absorbs a freshly arrived task straight into its own
// concept: a judgment revises against the concept's existing best belief
// if their evidential bases don't overlap, and a question is answered
// immediately if the concept already holds a sufficient belief.
type DirectPhase struct{}

func (DirectPhase) Name() string { return "process_direct" }

func (DirectPhase) Apply(ctx *Context) ([]Derivation, []Event) {
	if ctx.Task.Sentence.Punctuation == types.Question {
		if ctx.Belief != nil {
			answered := ctx.Task.RecordAnswer(*ctx.Belief)
			if answered {
				return nil, []Event{{Kind: EventAnswer, Answer: ctx.Belief}}
			}
		}
		return nil, nil
	}

	if ctx.Belief == nil {
		return nil, nil
	}

	revised, ok := reviseIfDisjoint(ctx)
	if !ok {
		return nil, nil
	}
	return []Derivation{revised}, nil
}
