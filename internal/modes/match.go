package modes

import "github.com/narsgo/reasoner/internal/types"

// MatchPhase pairs a task against a belief reached via one term link
// (rather than the task's own concept): a question is answered if the
// linked belief's content matches, and a judgment attempts revision the
// same way DirectPhase does for its own concept.
type MatchPhase struct{}

func (MatchPhase) Name() string { return "match_task_and_belief" }

func (MatchPhase) Apply(ctx *Context) ([]Derivation, []Event) {
	if ctx.Belief == nil || ctx.LinkedTerm == nil {
		return nil, nil
	}
	if !ctx.Task.Sentence.Content.Equal(ctx.Belief.Content) {
		return nil, nil
	}

	if ctx.Task.Sentence.Punctuation == types.Question {
		if ctx.Task.RecordAnswer(*ctx.Belief) {
			return nil, []Event{{Kind: EventAnswer, Answer: ctx.Belief}}
		}
		return nil, nil
	}

	revised, ok := reviseIfDisjoint(ctx)
	if !ok {
		return nil, nil
	}
	return []Derivation{revised}, nil
}
