// Package concept implements the per-term concept node: its ranked belief
// table, FIFO question table, and the task-link/term-link bags that let
// inference find structurally related concepts to reason across.
package concept

import (
	"sort"

	"github.com/narsgo/reasoner/internal/types"
)

// BeliefTable holds a capacity-bounded, confidence-ranked list of
// judgments about one concept's term. Insert replaces an entry with equal
// content and stamp; judgments whose evidential bases merely overlap are
// stored as separate entries (revision results arrive later as their own
// derived tasks). Beyond that, Insert just maintains rank and capacity.
type BeliefTable struct {
	capacity int
	entries  []types.Sentence
}

// NewBeliefTable builds an empty table with the given capacity.
func NewBeliefTable(capacity int) *BeliefTable {
	return &BeliefTable{capacity: capacity}
}

// Insert adds judgment j, keeping entries sorted by descending confidence
// and capped at capacity (the lowest-confidence entry is dropped past
// capacity). Returns true if j was kept.
func (b *BeliefTable) Insert(j types.Sentence) bool {
	for i, e := range b.entries {
		if e.Content.Equal(j.Content) && e.Stamp.Equal(j.Stamp) {
			b.entries[i] = j
			b.resort()
			return true
		}
	}
	b.entries = append(b.entries, j)
	b.resort()
	if len(b.entries) > b.capacity {
		b.entries = b.entries[:b.capacity]
		for _, e := range b.entries {
			if e.Content.Equal(j.Content) && e.Stamp.Equal(j.Stamp) {
				return true
			}
		}
		return false
	}
	return true
}

func (b *BeliefTable) resort() {
	sort.SliceStable(b.entries, func(i, k int) bool {
		return b.entries[i].Truth.Confidence.Value() > b.entries[k].Truth.Confidence.Value()
	})
}

// Best returns the highest-confidence belief, if any.
func (b *BeliefTable) Best() (types.Sentence, bool) {
	if len(b.entries) == 0 {
		return types.Sentence{}, false
	}
	return b.entries[0], true
}

// All returns every belief currently held, highest confidence first.
// Callers must not mutate the returned slice.
func (b *BeliefTable) All() []types.Sentence { return b.entries }

// Len reports how many beliefs are held.
func (b *BeliefTable) Len() int { return len(b.entries) }
