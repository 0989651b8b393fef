package concept

import (
	"fmt"

	"github.com/narsgo/reasoner/internal/storage"
	"github.com/narsgo/reasoner/internal/term"
	"github.com/narsgo/reasoner/internal/value"
)

// LinkType classifies the structural relationship a term-link template
// records between a concept's own term and a component or compound term
// reachable from it, mirroring how NARust-158's term_link_template module
// tags each link so budget can be distributed according to structural
// distance rather than spread evenly.
type LinkType int

const (
	SelfLink LinkType = iota
	ComponentLink
	CompoundLink
	ComponentStatementLink
	CompoundStatementLink
	ComponentConditionLink
	CompoundConditionLink
	TransformLink
)

// TermLinkTemplate is a precomputed, static description of one structural
// link from a concept's term to a related term, built once when the
// concept is created from its term's shape (the term itself and each of
// its immediate children; superterms are not enumerated).
type TermLinkTemplate struct {
	Type   LinkType
	Target term.Term
	// Index records the position of Target among the children of the
	// concept's term (0 for the self link).
	Index int
}

// BuildTermLinkTemplates enumerates the static term-link templates for a
// concept whose term is self. It covers the SELF link and one COMPONENT
// link per immediate child — atomic children included, since an atom like
// a word appearing as both the predicate of one statement and the
// subject of another is exactly what lets two otherwise unrelated
// statements meet at a shared concept — plus the COMPONENT_STATEMENT/
// COMPONENT_CONDITION specializations for statement and
// implication-conditioned compounds. (The COMPOUND/COMPOUND_STATEMENT/
// COMPOUND_CONDITION/TRANSFORM counterparts are built from the child's own
// perspective once it becomes a concept in its own right.)
func BuildTermLinkTemplates(self term.Term) []TermLinkTemplate {
	templates := []TermLinkTemplate{{Type: SelfLink, Target: self}}
	for i, child := range self.Children() {
		linkType := ComponentLink
		switch {
		case self.ID() == term.Implication && i == 0:
			linkType = ComponentConditionLink
		case self.IsStatement():
			linkType = ComponentStatementLink
		}
		templates = append(templates, TermLinkTemplate{Type: linkType, Target: child, Index: i})
	}
	return templates
}

// termLinkItem adapts a TermLinkTemplate plus its current budget to the
// storage.Item interface.
type termLinkItem struct {
	TermLinkTemplate
	budget value.Budget
}

func (t termLinkItem) Key() string            { return fmt.Sprintf("%d:%s", t.Type, t.Target.Key()) }
func (t termLinkItem) Priority() value.Budget { return t.budget }

// TermLinkBag holds a concept's term links, prioritized by budget so
// inference visits structurally closer/fresher related terms more often.
type TermLinkBag struct{ bag *storage.Bag[termLinkItem] }

// NewTermLinkBag builds an empty term-link bag of the given capacity.
func NewTermLinkBag(capacity, forgetCycles int) *TermLinkBag {
	return &TermLinkBag{bag: storage.NewBag[termLinkItem](capacity, forgetCycles)}
}

// Put inserts or refreshes a term link with the given budget.
func (b *TermLinkBag) Put(tpl TermLinkTemplate, budget value.Budget) {
	b.bag.PutIn(termLinkItem{TermLinkTemplate: tpl, budget: budget})
}

// PickOut draws a term link probabilistically.
func (b *TermLinkBag) PickOut() (TermLinkTemplate, value.Budget, bool) {
	item, ok := b.bag.PickOut()
	if !ok {
		return TermLinkTemplate{}, value.Budget{}, false
	}
	return item.TermLinkTemplate, item.budget, true
}

// Len reports how many term links are held.
func (b *TermLinkBag) Len() int { return b.bag.Len() }

// taskLinkItem adapts a task reference plus budget to storage.Item,
// keyed by the linked task's own key so the same task is never linked
// twice into one concept.
type taskLinkItem struct {
	key    string
	target interface{}
	budget value.Budget
}

func (t taskLinkItem) Key() string            { return t.key }
func (t taskLinkItem) Priority() value.Budget { return t.budget }

// TaskLinkBag holds references to tasks relevant to a concept, the other
// half of the structural link graph used by inference's reason phase to
// pair a task with a term-linked belief.
type TaskLinkBag struct{ bag *storage.Bag[taskLinkItem] }

// NewTaskLinkBag builds an empty task-link bag of the given capacity.
func NewTaskLinkBag(capacity, forgetCycles int) *TaskLinkBag {
	return &TaskLinkBag{bag: storage.NewBag[taskLinkItem](capacity, forgetCycles)}
}

// Put inserts or refreshes a task link for taskKey with the given budget.
// target is the linked task value (typed as interface{} here to avoid an
// import of internal/types from this low-level link bag; callers type-
// assert it back).
func (b *TaskLinkBag) Put(taskKey string, target interface{}, budget value.Budget) {
	b.bag.PutIn(taskLinkItem{key: taskKey, target: target, budget: budget})
}

// PickOut draws a task link probabilistically.
func (b *TaskLinkBag) PickOut() (target interface{}, budget value.Budget, ok bool) {
	item, ok := b.bag.PickOut()
	if !ok {
		return nil, value.Budget{}, false
	}
	return item.target, item.budget, true
}

// Len reports how many task links are held.
func (b *TaskLinkBag) Len() int { return b.bag.Len() }
