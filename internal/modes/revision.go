package modes

import (
	"github.com/narsgo/reasoner/internal/reasoning"
	"github.com/narsgo/reasoner/internal/types"
	"github.com/narsgo/reasoner/internal/value"
)

// reviseIfDisjoint attempts to revise the task's judgment with the
// matched belief, succeeding only if their evidential bases do not
// overlap (an overlapping base would double-count evidence). Returns
// ok=false if the stamps overlap or the contents differ.
func reviseIfDisjoint(ctx *Context) (Derivation, bool) {
	task := ctx.Task.Sentence
	belief := *ctx.Belief
	if !task.Content.Equal(belief.Content) {
		return Derivation{}, false
	}
	merged, err := value.Merge(task.Stamp, belief.Stamp, ctx.StampNow, ctx.MaxStampLen)
	if err != nil {
		return Derivation{}, false
	}
	truth := reasoning.Revision(task.Truth, belief.Truth)
	sentence, err := types.NewJudgment(task.Content, truth, merged)
	if err != nil {
		return Derivation{}, false
	}
	budget := reasoning.Revise(ctx.Task.Budget, ctx.Task.Budget, task.Truth, truth)
	return Derivation{Sentence: sentence, Budget: budget}, true
}
