package concept

import (
	"github.com/narsgo/reasoner/internal/config"
	"github.com/narsgo/reasoner/internal/term"
	"github.com/narsgo/reasoner/internal/value"
)

// Concept is the memory node for one constant term: its belief table, its
// question table, and the task-link/term-link bags that connect it to
// structurally related concepts for compositional inference.
type Concept struct {
	Term   term.Term
	Budget value.Budget

	Beliefs   *BeliefTable
	Questions *QuestionTable
	TermLinks *TermLinkBag
	TaskLinks *TaskLinkBag

	templates []TermLinkTemplate
}

// New builds a concept for t, pre-populating its static term-link
// templates from t's shape.
func New(t term.Term, budget value.Budget, cfg config.Config) *Concept {
	return &Concept{
		Term:      t,
		Budget:    budget,
		Beliefs:   NewBeliefTable(cfg.Bags.BeliefCapacity),
		Questions: NewQuestionTable(cfg.Bags.QuestionCapacity),
		TermLinks: NewTermLinkBag(cfg.Bags.TermLinkCapacity, cfg.Forgetting.TermLinkCycles),
		TaskLinks: NewTaskLinkBag(cfg.Bags.TaskLinkCapacity, cfg.Forgetting.TaskLinkCycles),
		templates: BuildTermLinkTemplates(t),
	}
}

// Key identifies this concept by its term's canonical textual form.
func (c *Concept) Key() string { return c.Term.Key() }

// Name is an alias for Key, satisfying storage.ConceptItem.
func (c *Concept) Name() string { return c.Key() }

// Priority satisfies storage.Item.
func (c *Concept) Priority() value.Budget { return c.Budget }

// Templates returns the concept's precomputed term-link templates.
func (c *Concept) Templates() []TermLinkTemplate { return c.templates }

// SeedTermLinks populates the term-link bag from the concept's templates,
// each starting at the concept's own budget; called once when a concept
// is first created so inference has somewhere to go immediately.
func (c *Concept) SeedTermLinks() {
	for _, tpl := range c.templates {
		c.TermLinks.Put(tpl, c.Budget)
	}
}
