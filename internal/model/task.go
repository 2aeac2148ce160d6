package model

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusOpen      TaskStatus = "open"
	TaskStatusCompleted TaskStatus = "completed"
)

// Task represents a task stored in Google Tasks.
type Task struct {
	ID     string
	Title  string
	Notes  string     // free text, carries the planned duration
	Due    *time.Time // nil when the task has no due date
	Status TaskStatus
}
