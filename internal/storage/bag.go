package storage

import (
	"golang.org/x/exp/slices"

	"github.com/narsgo/reasoner/internal/value"
)

const bagLevels = 100

// Item is anything a Bag can hold: something keyed and budgeted.
type Item interface {
	Key() string
	Priority() value.Budget
}

// Bag is a capacity-bounded, level-distributed probabilistic priority
// container (concept bag, task-link bag, term-link bag all specialize
// this one generic implementation). Items are bucketed into bagLevels
// discrete priority levels; PickOut draws from a level chosen by a
// Distributor so that higher-priority items are drawn more often without
// ever starving the low-priority levels entirely. Forgetting decays an
// item's priority each time it is returned via PutBack, modelling the
// passage of attention away from items not actively being processed.
type Bag[T Item] struct {
	capacity    int
	forgetCycle int
	dist        *Distributor
	levels      [bagLevels][]T
	index       map[string]int // key -> level, for O(1) lookup/removal
	size        int
}

// NewBag builds an empty bag with the given capacity and forgetting rate
// (in cycles; see Forgetting in internal/config).
func NewBag[T Item](capacity, forgetCycles int) *Bag[T] {
	return &Bag[T]{
		capacity:    capacity,
		forgetCycle: forgetCycles,
		dist:        NewDistributor(bagLevels),
		index:       make(map[string]int),
	}
}

func levelOf(b value.Budget) int {
	level := int(b.Priority.Value() * float64(bagLevels))
	if level >= bagLevels {
		level = bagLevels - 1
	}
	if level < 0 {
		level = 0
	}
	return level
}

// Len returns the number of items currently held.
func (b *Bag[T]) Len() int { return b.size }

// Get returns the item stored under key, if any.
func (b *Bag[T]) Get(key string) (T, bool) {
	if level, ok := b.index[key]; ok {
		for _, item := range b.levels[level] {
			if item.Key() == key {
				return item, true
			}
		}
	}
	var zero T
	return zero, false
}

// PutIn inserts or replaces item, evicting the globally lowest-priority
// item if the bag is already at capacity (and the new item outranks it).
// Returns the evicted item, if any.
func (b *Bag[T]) PutIn(item T) (evicted T, didEvict bool) {
	key := item.Key()
	if level, ok := b.index[key]; ok {
		b.removeAt(level, key)
	}
	level := levelOf(item.Priority())
	b.levels[level] = append(b.levels[level], item)
	b.index[key] = level
	b.size++

	if b.size > b.capacity {
		if victim, ok := b.lowestPriorityItem(); ok {
			b.removeAt(b.index[victim.Key()], victim.Key())
			return victim, true
		}
	}
	var zero T
	return zero, false
}

// PickOut draws an item probabilistically: it consults the Distributor
// for a level, then removes and returns the most recently inserted item
// of the nearest non-empty level (at each distance the level below is
// checked before the level above). Items within a level are not ordered
// by priority. Returns ok=false if the bag is empty.
func (b *Bag[T]) PickOut() (item T, ok bool) {
	if b.size == 0 {
		var zero T
		return zero, false
	}
	target := b.dist.Next()
	level := b.nearestNonEmptyLevel(target)
	bucket := b.levels[level]
	item = bucket[len(bucket)-1]
	b.levels[level] = bucket[:len(bucket)-1]
	delete(b.index, item.Key())
	b.size--
	return item, true
}

// PutBack reinserts an item after processing, applying forgetting through
// the caller-supplied decay function; the bag applies no decay of its own
// (ForgetRate reports the configured rate such a function can use).
func (b *Bag[T]) PutBack(item T, decay func(T) T) {
	decayed := decay(item)
	b.PutIn(decayed)
}

// ForgetRate returns the fractional priority decay applied per cycle this
// bag's kind is configured for (1/forgetCycle), for use by a caller's
// decay function.
func (b *Bag[T]) ForgetRate() float64 {
	if b.forgetCycle <= 0 {
		return 0
	}
	return 1 / float64(b.forgetCycle)
}

func (b *Bag[T]) nearestNonEmptyLevel(target int) int {
	for offset := 0; offset < bagLevels; offset++ {
		if down := target - offset; down >= 0 && len(b.levels[down]) > 0 {
			return down
		}
		if up := target + offset; up < bagLevels && len(b.levels[up]) > 0 {
			return up
		}
	}
	return target
}

func (b *Bag[T]) lowestPriorityItem() (T, bool) {
	for level := 0; level < bagLevels; level++ {
		if len(b.levels[level]) > 0 {
			return b.levels[level][len(b.levels[level])-1], true
		}
	}
	var zero T
	return zero, false
}

func (b *Bag[T]) removeAt(level int, key string) {
	bucket := b.levels[level]
	i := slices.IndexFunc(bucket, func(item T) bool { return item.Key() == key })
	if i < 0 {
		return
	}
	b.levels[level] = slices.Delete(bucket, i, i+1)
	delete(b.index, key)
	b.size--
}

// Items returns every item currently held, in no particular order; used
// by snapshotting and inspection, never by the inference hot path.
func (b *Bag[T]) Items() []T {
	out := make([]T, 0, b.size)
	for _, bucket := range b.levels {
		out = append(out, bucket...)
	}
	return out
}
