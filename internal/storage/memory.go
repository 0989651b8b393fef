package storage

import (
	"log"
	"os"

	"github.com/narsgo/reasoner/internal/config"
	"github.com/narsgo/reasoner/internal/types"
	"github.com/narsgo/reasoner/internal/value"
)

// ConceptItem is the subset of concept.Concept that Memory and Bag need to
// know about; the concept package implements it to avoid an import cycle
// (storage is lower-level than concept).
type ConceptItem interface {
	Item
	Name() string
}

// taskItem adapts *types.Task to the Bag Item interface.
type taskItem struct{ *types.Task }

func (t *taskItem) Key() string            { return t.Task.Key() }
func (t *taskItem) Priority() value.Budget { return t.Task.Budget }

// Memory is the reasoner's concept store: a name-indexed table backed by a
// priority bag (so both O(1) lookup-by-term and probabilistic
// attention-driven selection are available), plus the new-task FIFO and
// the novel-task bag that feed each reasoning cycle. New tasks arrive via
// EnqueueTask and sit in FIFO order until AbsorbNewTasks moves them into
// the novel-task bag, from which PickNovelTask draws them for processing
// in roughly priority order.
type Memory[C ConceptItem] struct {
	concepts *Bag[C]
	byName   map[string]C

	newTasks   []*types.Task
	novelTasks *Bag[*taskItem]

	log *log.Logger
}

// NewMemory builds an empty memory using cfg's bag capacities and
// forgetting rates.
func NewMemory[C ConceptItem](cfg config.Config) *Memory[C] {
	return &Memory[C]{
		concepts:   NewBag[C](cfg.Bags.ConceptCapacity, cfg.Forgetting.ConceptCycles),
		byName:     make(map[string]C),
		novelTasks: NewBag[*taskItem](cfg.Bags.NovelTaskCapacity, cfg.Forgetting.ConceptCycles),
		log:        log.New(os.Stderr, "[memory] ", log.LstdFlags),
	}
}

// Concept returns the concept named by key, if one exists.
func (m *Memory[C]) Concept(key string) (C, bool) {
	c, ok := m.byName[key]
	return c, ok
}

// PutConcept inserts or replaces a concept, keeping the name index and the
// attention bag in sync.
func (m *Memory[C]) PutConcept(c C) {
	m.byName[c.Name()] = c
	if evicted, did := m.concepts.PutIn(c); did && evicted.Name() != c.Name() {
		delete(m.byName, evicted.Name())
		m.log.Printf("forgot concept %s to make room for %s", evicted.Name(), c.Name())
	}
}

// PickConcept draws a concept probabilistically from the attention bag,
// per cycle, mirroring PickOut's decay-on-return contract: the caller
// must PutConcept it back (possibly decayed) when done.
func (m *Memory[C]) PickConcept() (C, bool) {
	c, ok := m.concepts.PickOut()
	if ok {
		delete(m.byName, c.Name())
	}
	return c, ok
}

// ConceptCount reports how many concepts memory currently holds.
func (m *Memory[C]) ConceptCount() int { return len(m.byName) }

// Concepts returns every held concept, in no particular order.
func (m *Memory[C]) Concepts() []C { return m.concepts.Items() }

// EnqueueTask appends an externally supplied or derived task to the
// new-task FIFO.
func (m *Memory[C]) EnqueueTask(t *types.Task) {
	m.newTasks = append(m.newTasks, t)
}

// AbsorbNewTasks drains the new-task FIFO into the novel-task bag, making
// every pending task available to PickNovelTask in priority order. A
// reasoner cycle calls this once before drawing a novel task.
func (m *Memory[C]) AbsorbNewTasks() {
	for _, t := range m.newTasks {
		m.novelTasks.PutIn(&taskItem{t})
	}
	m.newTasks = nil
}

// PickNovelTask draws the next unprocessed task from the novel-task bag.
func (m *Memory[C]) PickNovelTask() (*types.Task, bool) {
	item, ok := m.novelTasks.PickOut()
	if !ok {
		return nil, false
	}
	return item.Task, true
}

// PendingTaskCount reports how many tasks are queued for absorption.
func (m *Memory[C]) PendingTaskCount() int { return len(m.newTasks) }

// NovelTaskCount reports how many tasks are waiting in the novel-task bag.
func (m *Memory[C]) NovelTaskCount() int { return m.novelTasks.Len() }
