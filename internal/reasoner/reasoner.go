package reasoner

import (
	"fmt"

	"github.com/narsgo/reasoner/internal/concept"
	"github.com/narsgo/reasoner/internal/config"
	"github.com/narsgo/reasoner/internal/modes"
	"github.com/narsgo/reasoner/internal/storage"
	"github.com/narsgo/reasoner/internal/term"
	"github.com/narsgo/reasoner/internal/types"
	"github.com/narsgo/reasoner/internal/value"
)

// Reasoner owns concept memory and drives the per-cycle inference loop:
// absorb new tasks, pick a novel task, find its concept, run the inference
// phases against that concept and every term-linked concept, and feed
// derived tasks and output events back in. The concept bag is not drawn
// from: a cycle with no novel task does no inference.
type Reasoner struct {
	cfg     config.Config
	memory  *storage.Memory[*concept.Concept]
	phases  []modes.Phase
	sink    Sink
	serial  int64
	clock   int64
}

// New builds a Reasoner over a fresh memory using cfg's parameters,
// emitting output to sink.
func New(cfg config.Config, sink Sink) *Reasoner {
	return &Reasoner{
		cfg:    cfg,
		memory: storage.NewMemory[*concept.Concept](cfg),
		phases: modes.DefaultPhases(),
		sink:   sink,
	}
}

// nextSerial hands out the next evidential-base serial number for a
// freshly input (non-derived) task.
func (r *Reasoner) nextSerial() int64 {
	r.serial++
	return r.serial
}

// InputJudgment submits an externally supplied judgment as a new task,
// with full initial budget.
func (r *Reasoner) InputJudgment(content term.Term, truth value.Truth) (*types.Task, error) {
	stamp := value.NewStamp(r.nextSerial(), r.clock)
	sentence, err := types.NewJudgment(content, truth, stamp)
	if err != nil {
		return nil, fmt.Errorf("reasoner: input judgment: %w", err)
	}
	task := types.NewTask(sentence, value.NewBudget(0.8, 0.8, 0.8))
	r.memory.EnqueueTask(task)
	r.sink.Emit(Output{Kind: OutputIn, Sentence: &sentence})
	return task, nil
}

// InputQuestion submits an externally supplied question as a new task.
func (r *Reasoner) InputQuestion(content term.Term) (*types.Task, error) {
	stamp := value.NewStamp(r.nextSerial(), r.clock)
	sentence, err := types.NewQuestion(content, stamp)
	if err != nil {
		return nil, fmt.Errorf("reasoner: input question: %w", err)
	}
	task := types.NewTask(sentence, value.NewBudget(0.9, 0.9, 0.9))
	r.memory.EnqueueTask(task)
	r.sink.Emit(Output{Kind: OutputIn, Sentence: &sentence})
	return task, nil
}

// Cycle runs one inference step: absorb pending input, draw a novel task
// (returning at once if there is none; existing concepts and task links
// are not revisited), process it through every phase against its own
// concept's best belief, run match/reason across every term-linked
// concept, and feed results back into memory.
func (r *Reasoner) Cycle() {
	r.clock++
	r.memory.AbsorbNewTasks()

	task, ok := r.memory.PickNovelTask()
	if !ok {
		return
	}
	task.MarkProcessed()

	self := r.conceptFor(task.Sentence.Content)
	r.propagateTaskLinks(self, task)

	var belief *types.Sentence
	if b, ok := self.Beliefs.Best(); ok {
		belief = &b
	}

	ctx := &modes.Context{
		Task:        task,
		ConceptTerm: self.Term,
		Belief:      belief,
		StampNow:    r.clock,
		MaxStampLen: r.cfg.Reasoner.MaximumStampLength,
	}
	derivations, events := modes.Run(ctx, r.phases)

	for _, ev := range events {
		r.emitPhaseEvent(ev)
	}

	if task.Sentence.Punctuation == types.Judgment {
		self.Beliefs.Insert(task.Sentence)
		for _, answered := range self.Questions.NotifyAnswer(task.Sentence) {
			r.sink.Emit(Output{Kind: OutputAnswer, Sentence: answered.BestSolution})
		}
	} else {
		self.Questions.Insert(task)
	}

	r.reasonAcrossTermLinks(self, task)

	for _, d := range derivations {
		r.absorbDerivation(d)
	}

	r.memory.PutConcept(self)
}

// conceptFor returns the concept named by t, creating and seeding it (and
// recursively ensuring a concept exists for every term it links to) if it
// doesn't exist yet.
func (r *Reasoner) conceptFor(t term.Term) *concept.Concept {
	c, created := r.ensureConcept(t)
	if created {
		r.propagateComponentConcepts(c)
	}
	return c
}

// ensureConcept returns the concept named by t, creating and seeding it
// (but not yet recursing into its own term-link targets) if it doesn't
// exist yet. Returns created=true if a new concept was built.
func (r *Reasoner) ensureConcept(t term.Term) (c *concept.Concept, created bool) {
	key := t.Key()
	if c, ok := r.memory.Concept(key); ok {
		return c, false
	}
	c = concept.New(t, value.NewBudget(0.5, 0.5, 0.5), r.cfg)
	c.SeedTermLinks()
	r.memory.PutConcept(c)
	return c, true
}

// propagateComponentConcepts recursively ensures a concept exists for
// every non-self term-link target named in c's templates — in particular,
// a statement's atomic subject and predicate each get their own concept.
// This is what lets two statements that share only a component term (say
// <A-->B> and <B-->C>, sharing atom B) ever meet: neither holds a belief
// about the other, but both register at concept B.
func (r *Reasoner) propagateComponentConcepts(c *concept.Concept) {
	for _, tpl := range c.Templates() {
		if tpl.Type == concept.SelfLink {
			continue
		}
		child, created := r.ensureConcept(tpl.Target)
		if created {
			r.propagateComponentConcepts(child)
		}
	}
}

// propagateTaskLinks registers task as a task link at self's own concept
// and at every concept named by one of self's term-link templates. This
// is the other half of the structural link graph: a term-link says "these
// terms are structurally related"; a task-link says "this specific task
// is relevant here". Together they let a component concept accumulate
// task-links from every statement that mentions it, which is how
// reasonAcrossTermLinks below finds two otherwise-unrelated statements
// standing at the same concept.
func (r *Reasoner) propagateTaskLinks(self *concept.Concept, task *types.Task) {
	self.TaskLinks.Put(task.Key(), task, task.Budget)
	for _, tpl := range self.Templates() {
		if tpl.Type == concept.SelfLink {
			continue
		}
		linked, ok := r.memory.Concept(tpl.Target.Key())
		if !ok {
			continue
		}
		linked.TaskLinks.Put(task.Key(), task, task.Budget)
	}
}

// reasonAcrossTermLinks sweeps every term link in self's bag (there are
// few enough, at this system's scale, that a full sweep per cycle is
// affordable and keeps results independent of draw order) and, for each
// one naming an existing concept, runs match/reason against that
// concept's own best belief and against its task-linked tasks.
func (r *Reasoner) reasonAcrossTermLinks(self *concept.Concept, task *types.Task) {
	type draw struct {
		tpl    concept.TermLinkTemplate
		budget value.Budget
	}
	var drawn []draw
	for n := self.TermLinks.Len(); n > 0; n-- {
		tpl, budget, ok := self.TermLinks.PickOut()
		if !ok {
			break
		}
		drawn = append(drawn, draw{tpl, budget})
	}
	defer func() {
		for _, d := range drawn {
			self.TermLinks.Put(d.tpl, d.budget)
		}
	}()

	for _, d := range drawn {
		if d.tpl.Type == concept.SelfLink {
			continue
		}
		linked, ok := r.memory.Concept(d.tpl.Target.Key())
		if !ok {
			continue
		}
		if belief, ok := linked.Beliefs.Best(); ok {
			r.runCrossConcept(self, task, linked.Term, belief)
		}
		r.reasonAcrossTaskLinks(self, task, linked)
	}
}

// reasonAcrossTaskLinks sweeps linked's task-link bag looking for a
// judgment task distinct from task itself, and runs match/reason against
// its sentence. This is the path that makes <A-->B> and <B-->C> meet at
// shared atomic concept B: B holds no belief of its own, but both
// statements registered a task-link there.
func (r *Reasoner) reasonAcrossTaskLinks(self *concept.Concept, task *types.Task, linked *concept.Concept) {
	type draw struct {
		key    string
		target *types.Task
		budget value.Budget
	}
	var drawn []draw
	var chosen *types.Task
	for n := linked.TaskLinks.Len(); n > 0; n-- {
		target, budget, ok := linked.TaskLinks.PickOut()
		if !ok {
			break
		}
		linkedTask, ok := target.(*types.Task)
		if !ok {
			continue
		}
		drawn = append(drawn, draw{linkedTask.Key(), linkedTask, budget})
		if chosen == nil && linkedTask.Key() != task.Key() && linkedTask.Sentence.Punctuation == types.Judgment {
			chosen = linkedTask
		}
	}
	for _, d := range drawn {
		linked.TaskLinks.Put(d.key, d.target, d.budget)
	}
	if chosen == nil {
		return
	}
	r.runCrossConcept(self, task, linked.Term, chosen.Sentence)
}

// runCrossConcept runs the match/reason phases pairing task against
// belief, a sentence reached through a term- or task-link rather than
// task's own concept.
func (r *Reasoner) runCrossConcept(self *concept.Concept, task *types.Task, linkedTerm term.Term, belief types.Sentence) {
	ctx := &modes.Context{
		Task:        task,
		ConceptTerm: self.Term,
		Belief:      &belief,
		LinkedTerm:  &linkedTerm,
		StampNow:    r.clock,
		MaxStampLen: r.cfg.Reasoner.MaximumStampLength,
	}
	derivations, events := modes.Run(ctx, []modes.Phase{modes.MatchPhase{}, modes.ReasonPhase{}})
	for _, ev := range events {
		r.emitPhaseEvent(ev)
	}
	for _, d := range derivations {
		r.absorbDerivation(d)
	}
}

func (r *Reasoner) absorbDerivation(d modes.Derivation) {
	if !d.Budget.AboveThreshold(r.cfg.Reasoner.BudgetThreshold) {
		return
	}
	task := types.NewTask(d.Sentence, d.Budget)
	r.memory.EnqueueTask(task)
	r.sink.Emit(Output{Kind: OutputOut, Sentence: &d.Sentence})
}

func (r *Reasoner) emitPhaseEvent(ev modes.Event) {
	switch ev.Kind {
	case modes.EventAnswer:
		r.sink.Emit(Output{Kind: OutputAnswer, Sentence: ev.Answer})
	case modes.EventError:
		r.sink.Emit(Output{Kind: OutputError, Message: ev.Message})
	default:
		r.sink.Emit(Output{Kind: OutputInfo, Message: ev.Message})
	}
}

// ConceptCount reports how many concepts memory currently holds.
func (r *Reasoner) ConceptCount() int { return r.memory.ConceptCount() }

// Memory exposes the underlying memory store for inspection and
// snapshotting.
func (r *Reasoner) Memory() *storage.Memory[*concept.Concept] { return r.memory }
