package concept

import "github.com/narsgo/reasoner/internal/types"

// QuestionTable holds a capacity-bounded FIFO of outstanding question
// tasks about one concept's term. A question asked again (same content)
// merges into the existing entry instead of duplicating it, so repeated
// asks don't crowd out other questions.
type QuestionTable struct {
	capacity int
	entries  []*types.Task
}

// NewQuestionTable builds an empty table with the given capacity.
func NewQuestionTable(capacity int) *QuestionTable {
	return &QuestionTable{capacity: capacity}
}

// Insert adds question task q, merging into an existing entry asking the
// same content, or evicting the oldest entry once at capacity.
func (q *QuestionTable) Insert(task *types.Task) {
	for _, e := range q.entries {
		if e.Sentence.Content.Equal(task.Sentence.Content) {
			return
		}
	}
	q.entries = append(q.entries, task)
	if len(q.entries) > q.capacity {
		q.entries = q.entries[1:]
	}
}

// All returns every outstanding question task, oldest first. Callers must
// not mutate the returned slice.
func (q *QuestionTable) All() []*types.Task { return q.entries }

// Len reports how many questions are outstanding.
func (q *QuestionTable) Len() int { return len(q.entries) }

// NotifyAnswer offers a candidate judgment to every outstanding question
// whose content it could answer, updating each task's best solution.
// Returns the tasks whose best solution changed.
func (q *QuestionTable) NotifyAnswer(candidate types.Sentence) []*types.Task {
	var answered []*types.Task
	for _, task := range q.entries {
		if task.Sentence.Content.Equal(candidate.Content) && task.RecordAnswer(candidate) {
			answered = append(answered, task)
		}
	}
	return answered
}
