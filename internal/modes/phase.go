// Package modes implements the four pluggable inference phases that run,
// in order, each reasoning cycle: process a freshly arrived task directly
// against its own concept, transform structural tasks (compound rewrite
// rules), match a task against a term-linked belief, and run the full
// two-premise reasoning rule table across a task-link/term-link pair.
package modes

import (
	"github.com/narsgo/reasoner/internal/term"
	"github.com/narsgo/reasoner/internal/types"
	"github.com/narsgo/reasoner/internal/value"
)

// Derivation is one conclusion produced by a phase: a new sentence ready
// to be budgeted into a task and enqueued, plus the budget the phase
// computed for it.
type Derivation struct {
	Sentence types.Sentence
	Budget   value.Budget
}

// Event is a phase's side-channel output (an answer found, an error, an
// informational trace line), kept separate from Derivation so the
// reasoner's output sink can render it without constructing a task.
type Event struct {
	Kind    EventKind
	Message string
	Answer  *types.Sentence
}

// EventKind classifies an Event for the output sink (the INFO/ANSWER/
// ERROR/COMMENT subset of the reasoner's output categories).
type EventKind int

const (
	EventInfo EventKind = iota
	EventAnswer
	EventError
	EventComment
)

// Phase is one of the four per-cycle inference stages. It receives the
// current task and (if one was matched) a belief sentence from the same
// concept or a term-linked one, and returns any derived tasks plus any
// output events.
type Phase interface {
	Name() string
	Apply(ctx *Context) ([]Derivation, []Event)
}

// Context carries everything a phase needs: the task being processed,
// the concept's own term, an optional matched belief, and an optional
// term-linked target term (populated only for the match/reason phases).
type Context struct {
	Task         *types.Task
	ConceptTerm  term.Term
	Belief       *types.Sentence
	LinkedTerm   *term.Term
	StampNow     int64
	NextSerial   func() int64
	MaxStampLen  int
}
