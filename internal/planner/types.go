package planner

import (
	"time"

	"task-planner-bot/internal/model"
)

// AddTaskInput is the input for creating a task.
type AddTaskInput struct {
	Title    string
	Due      time.Time
	Duration string // normalized display string, stored in the notes
}

// AddEventInput is the input for scheduling a calendar event.
type AddEventInput struct {
	Title string
	Start time.Time
	End   time.Time
}

// Agenda is the combined view of one day's tasks and events.
type Agenda struct {
	Date   time.Time
	Tasks  []model.Task
	Events []model.Event
}
