package planner

import (
	"context"

	"task-planner-bot/internal/model"
)

// UseCase defines the business logic interface for the planner domain.
type UseCase interface {
	// ListOpenTasks returns all open tasks. The store gives no ordering
	// guarantee; callers sort or group as needed.
	ListOpenTasks(ctx context.Context, sc model.Scope) ([]model.Task, error)

	// AddTask creates a task with a due date and a planned-duration note.
	AddTask(ctx context.Context, sc model.Scope, input AddTaskInput) (model.Task, error)

	// CompleteTask flips a task's status to completed.
	CompleteTask(ctx context.Context, sc model.Scope, taskID string) (model.Task, error)

	// AddEvent schedules a calendar event. The end must be strictly
	// after the start.
	AddEvent(ctx context.Context, sc model.Scope, input AddEventInput) (model.Event, error)

	// TodayAgenda returns tasks due today plus today's calendar events.
	TodayAgenda(ctx context.Context, sc model.Scope) (Agenda, error)

	// OverdueTasks returns open tasks whose due date has passed.
	OverdueTasks(ctx context.Context, sc model.Scope) ([]model.Task, error)
}
