package modes

// DefaultPhases returns the four inference phases in the fixed order a
// reasoning cycle runs them: a freshly arrived task is first tried
// directly against its own concept, then structural rewrites are
// attempted, then it's matched against one term-linked belief, and
// finally the full two-premise rule table runs across the same pair.
func DefaultPhases() []Phase {
	return []Phase{
		DirectPhase{},
		TransformPhase{},
		MatchPhase{},
		ReasonPhase{},
	}
}

// Run applies every phase in order to ctx, accumulating all derivations
// and events. A phase that needs ctx.Belief/ctx.LinkedTerm unset simply
// returns nothing for that context, so callers can reuse one Context
// across phases that apply and ones that don't.
func Run(ctx *Context, phases []Phase) ([]Derivation, []Event) {
	var derivations []Derivation
	var events []Event
	for _, phase := range phases {
		d, e := phase.Apply(ctx)
		derivations = append(derivations, d...)
		events = append(events, e...)
	}
	return derivations, events
}
