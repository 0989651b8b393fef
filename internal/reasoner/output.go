// Package reasoner drives the reasoning cycle: it owns memory, picks a
// novel task each tick, runs the inference phases over its concept and
// the concepts it links to, and threads the results back into memory while
// emitting a typed stream of output events for an outer shell to display.
package reasoner

import "github.com/narsgo/reasoner/internal/types"

// OutputKind classifies one event emitted by a reasoning cycle.
type OutputKind int

const (
	OutputIn OutputKind = iota
	OutputOut
	OutputAnswer
	OutputInfo
	OutputError
	OutputComment
)

func (k OutputKind) String() string {
	switch k {
	case OutputIn:
		return "IN"
	case OutputOut:
		return "OUT"
	case OutputAnswer:
		return "ANSWER"
	case OutputInfo:
		return "INFO"
	case OutputError:
		return "ERROR"
	case OutputComment:
		return "COMMENT"
	default:
		return "UNKNOWN"
	}
}

// Output is one line of the reasoner's externally observable event
// stream.
type Output struct {
	Kind     OutputKind
	Sentence *types.Sentence
	Message  string
}

func (o Output) String() string {
	if o.Sentence != nil {
		return o.Kind.String() + ": " + o.Sentence.String()
	}
	return o.Kind.String() + ": " + o.Message
}

// Sink receives the reasoner's output stream; the demo binary implements
// one that prints to stdout, tests implement one that collects into a
// slice.
type Sink interface {
	Emit(Output)
}

// SliceSink is a Sink that appends every event to a slice, used by tests
// and by inspection to retain recent history.
type SliceSink struct {
	Events []Output
}

func (s *SliceSink) Emit(o Output) { s.Events = append(s.Events, o) }
