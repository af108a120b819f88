package domain

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskDone:
		return true
	}
	return false
}

// Task is a single entry of the personal task list.
//
// At most one task is TaskInProgress at any time. Done is terminal:
// starting or pausing a done task leaves it untouched.
type Task struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is an opaque uuid string generated at creation.
	ID string `json:"id"`

	// CreatedAt is set once at creation.
	CreatedAt time.Time `json:"createdAt"`

	// ─────────────────────────────
	// Content
	// ─────────────────────────────

	Title string  `json:"title"`
	Notes *string `json:"notes"`

	// ─────────────────────────────
	// Lifecycle
	// ─────────────────────────────

	Status TaskStatus `json:"status"`

	// StartedAt is refreshed on every start and kept on pause.
	StartedAt *time.Time `json:"startedAt"`

	// CompletedAt is set when the task becomes done.
	CompletedAt *time.Time `json:"completedAt"`
}

// IsDone reports whether the task reached its terminal state.
func (t *Task) IsDone() bool {
	return t != nil && t.Status == TaskDone
}

// TaskPatch lists the fields of a partial update. Nil means "leave as is".
type TaskPatch struct {
	Title *string
	Notes *string
}

// Empty reports whether the patch changes nothing.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Notes == nil
}
