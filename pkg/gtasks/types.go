package gtasks

import "time"

// Task status values used by the Google Tasks API.
const (
	StatusNeedsAction = "needsAction"
	StatusCompleted   = "completed"
)

// Task is a simplified representation of a Google Tasks task.
type Task struct {
	ID     string
	Title  string
	Notes  string
	Due    *time.Time // nil when the task has no due date
	Status string
}

// CreateTaskRequest is the input for creating a task.
type CreateTaskRequest struct {
	TasklistID string
	Title      string
	Notes      string
	Due        *time.Time
}

// ListTasksRequest is the input for listing tasks.
type ListTasksRequest struct {
	TasklistID    string
	ShowCompleted bool
}
