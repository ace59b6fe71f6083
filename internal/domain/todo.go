package domain

import "time"

type TodoID string
type TodoPriority string

const (
	PriorityLow    TodoPriority = "low"
	PriorityMedium TodoPriority = "medium"
	PriorityHigh   TodoPriority = "high"
)

func (p TodoPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

type Todo struct {
	ID          TodoID
	Title       string
	Detail      *string
	Priority    TodoPriority
	Tags        []string
	PlannedAt   *time.Time
	DueAt       *time.Time
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SetCompleted flips the completion flag and keeps CompletedAt in step with it.
func (t *Todo) SetCompleted(completed bool, now time.Time) {
	if t == nil {
		return
	}

	t.Completed = completed
	if completed {
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}
	t.UpdatedAt = now
}

// NormalizeCompletion repairs a todo whose CompletedAt disagrees with Completed.
func (t *Todo) NormalizeCompletion(now time.Time) {
	if t == nil {
		return
	}

	switch {
	case t.Completed && t.CompletedAt == nil:
		t.CompletedAt = &now
	case !t.Completed:
		t.CompletedAt = nil
	}
}

func FindTodo(todos []Todo, id TodoID) (int, bool) {
	for i := range todos {
		if todos[i].ID == id {
			return i, true
		}
	}

	return -1, false
}
