package storage

import (
	"testing"

	"github.com/narsgo/reasoner/internal/config"
	"github.com/narsgo/reasoner/internal/term"
	"github.com/narsgo/reasoner/internal/types"
	"github.com/narsgo/reasoner/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConcept struct {
	name   string
	budget value.Budget
}

func (c fakeConcept) Key() string            { return c.name }
func (c fakeConcept) Name() string           { return c.name }
func (c fakeConcept) Priority() value.Budget { return c.budget }

func TestMemoryPutAndGetConcept(t *testing.T) {
	m := NewMemory[fakeConcept](config.Default())
	m.PutConcept(fakeConcept{name: "bird", budget: value.NewBudget(0.8, 0.8, 0.8)})
	got, ok := m.Concept("bird")
	require.True(t, ok)
	assert.Equal(t, "bird", got.Name())
	assert.Equal(t, 1, m.ConceptCount())
}

func TestMemoryPickConceptRemovesFromIndex(t *testing.T) {
	m := NewMemory[fakeConcept](config.Default())
	m.PutConcept(fakeConcept{name: "bird", budget: value.NewBudget(0.8, 0.8, 0.8)})
	got, ok := m.PickConcept()
	require.True(t, ok)
	assert.Equal(t, "bird", got.Name())
	_, ok = m.Concept("bird")
	assert.False(t, ok)
}

func TestMemoryTaskQueueAndNovelBag(t *testing.T) {
	m := NewMemory[fakeConcept](config.Default())
	content := term.MakeWord("raven")
	s, err := types.NewJudgment(content, value.NewTruth(1, 0.9), value.NewStamp(1, 0))
	require.NoError(t, err)
	task := types.NewTask(s, value.NewBudget(0.9, 0.9, 0.9))

	m.EnqueueTask(task)
	assert.Equal(t, 1, m.PendingTaskCount())
	assert.Equal(t, 0, m.NovelTaskCount())

	m.AbsorbNewTasks()
	assert.Equal(t, 0, m.PendingTaskCount())
	assert.Equal(t, 1, m.NovelTaskCount())

	got, ok := m.PickNovelTask()
	require.True(t, ok)
	assert.Equal(t, task.Key(), got.Key())
	assert.Equal(t, 0, m.NovelTaskCount())
}
