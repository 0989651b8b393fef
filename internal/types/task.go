package types

import "github.com/narsgo/reasoner/internal/value"

// Task wraps a sentence with the budget that drives its priority in the
// task-link and novel-task bags, plus the bookkeeping a question task needs
// to track its best answer so far.
type Task struct {
	Sentence Sentence
	Budget   value.Budget

	// Parent is the task this one was derived from, or nil for an
	// externally supplied input task.
	Parent *Task

	// BestSolution caches the highest-expectation judgment answering this
	// question task; nil until an answer is recorded. Only meaningful
	// when Sentence.Punctuation == Question.
	BestSolution *Sentence

	// novel marks a task that has never yet been processed by a
	// reasoning cycle.
	novel bool
}

// NewTask builds an unprocessed (novel) task from a sentence and budget.
func NewTask(s Sentence, b value.Budget) *Task {
	return &Task{Sentence: s, Budget: b, novel: true}
}

// Key is the bag key identifying this task's sentence.
func (t *Task) Key() string { return t.Sentence.Key() }

// Novel reports whether this task has not yet been consumed from the
// novel-task bag.
func (t *Task) Novel() bool { return t.novel }

// MarkProcessed clears the novel flag after a reasoning cycle has consumed
// this task from the novel-task bag.
func (t *Task) MarkProcessed() { t.novel = false }

// Question reports whether this task's sentence is a question.
func (t *Task) Question() bool { return t.Sentence.Punctuation == Question }

// RecordAnswer updates BestSolution if candidate is a strictly better
// answer (by expectation) than the one currently cached; the task's budget
// is left unchanged. Returns true if the candidate was accepted as the new
// best solution.
func (t *Task) RecordAnswer(candidate Sentence) bool {
	if !t.Question() {
		return false
	}
	if t.BestSolution == nil || candidate.Truth.Expectation() > t.BestSolution.Truth.Expectation() {
		sol := candidate
		t.BestSolution = &sol
		return true
	}
	return false
}

func (t *Task) String() string { return t.Sentence.String() }
