package value

import "fmt"

// Budget is a task or link's resource allocation: how urgently it should
// be processed (priority), how long it should survive un-processed
// (durability), and how useful further processing of it is expected to be
// (quality).
type Budget struct {
	Priority   ShortFloat
	Durability ShortFloat
	Quality    ShortFloat
}

// NewBudget builds a budget from float components.
func NewBudget(priority, durability, quality float64) Budget {
	return Budget{
		Priority:   FromFloat(priority),
		Durability: FromFloat(durability),
		Quality:    FromFloat(quality),
	}
}

// Summary is (p+d+q)/3, the single scalar compared against thresholds.
func (b Budget) Summary() float64 {
	return (b.Priority.Value() + b.Durability.Value() + b.Quality.Value()) / 3
}

// AboveThreshold reports whether the budget's summary is at least t.
func (b Budget) AboveThreshold(t float64) bool {
	return b.Summary() >= t
}

// IncPriority raises priority using fuzzy-OR: p := p or v.
func (b *Budget) IncPriority(v ShortFloat) {
	b.Priority = b.Priority.Or(v)
}

// DecPriority lowers priority using fuzzy-AND: p := p and v.
func (b *Budget) DecPriority(v ShortFloat) {
	b.Priority = b.Priority.And(v)
}

// IncDurability raises durability using fuzzy-OR.
func (b *Budget) IncDurability(v ShortFloat) {
	b.Durability = b.Durability.Or(v)
}

// DecDurability lowers durability using fuzzy-AND.
func (b *Budget) DecDurability(v ShortFloat) {
	b.Durability = b.Durability.And(v)
}

// Merge combines two budgets componentwise-max; ActivateConcept uses it.
// Bag.PutIn does not: an item whose key is already present replaces the
// old item and its budget outright, without merging.
func Merge(dest, src Budget) Budget {
	return Budget{
		Priority:   maxSF(dest.Priority, src.Priority),
		Durability: maxSF(dest.Durability, src.Durability),
		Quality:    maxSF(dest.Quality, src.Quality),
	}
}

func maxSF(a, b ShortFloat) ShortFloat {
	if a > b {
		return a
	}
	return b
}

func (b Budget) String() string {
	return fmt.Sprintf("$%s;%s;%s$", b.Priority.Brief(), b.Durability.Brief(), b.Quality.Brief())
}
