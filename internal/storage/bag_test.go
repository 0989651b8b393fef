package storage

import (
	"testing"

	"github.com/narsgo/reasoner/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeItem struct {
	key    string
	budget value.Budget
}

func (f fakeItem) Key() string            { return f.key }
func (f fakeItem) Priority() value.Budget { return f.budget }

func item(key string, priority float64) fakeItem {
	return fakeItem{key: key, budget: value.NewBudget(priority, 0.5, 0.5)}
}

func TestBagPutAndGet(t *testing.T) {
	b := NewBag[fakeItem](10, 10)
	b.PutIn(item("a", 0.9))
	got, ok := b.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", got.Key())
}

func TestBagPickOutRemovesItem(t *testing.T) {
	b := NewBag[fakeItem](10, 10)
	b.PutIn(item("a", 0.9))
	assert.Equal(t, 1, b.Len())
	got, ok := b.PickOut()
	require.True(t, ok)
	assert.Equal(t, "a", got.Key())
	assert.Equal(t, 0, b.Len())
	_, ok = b.Get("a")
	assert.False(t, ok)
}

func TestBagPickOutEmptyReturnsFalse(t *testing.T) {
	b := NewBag[fakeItem](10, 10)
	_, ok := b.PickOut()
	assert.False(t, ok)
}

func TestBagEvictsLowestPriorityOverCapacity(t *testing.T) {
	b := NewBag[fakeItem](2, 10)
	b.PutIn(item("low", 0.1))
	b.PutIn(item("high", 0.9))
	_, evicted := b.PutIn(item("higher", 0.95))
	assert.True(t, evicted)
	assert.Equal(t, 2, b.Len())
	_, ok := b.Get("low")
	assert.False(t, ok, "lowest-priority item should have been evicted")
}

func TestBagPutInReplacesExistingKey(t *testing.T) {
	b := NewBag[fakeItem](10, 10)
	b.PutIn(item("a", 0.1))
	b.PutIn(item("a", 0.9))
	assert.Equal(t, 1, b.Len())
	got, _ := b.Get("a")
	assert.InDelta(t, 0.9, got.budget.Priority.Value(), 0.01)
}

func TestBagItemsReturnsAllHeldItems(t *testing.T) {
	b := NewBag[fakeItem](10, 10)
	b.PutIn(item("a", 0.5))
	b.PutIn(item("b", 0.6))
	assert.Len(t, b.Items(), 2)
}
