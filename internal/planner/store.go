package planner

import (
	"context"

	"task-planner-bot/pkg/gcalendar"
	"task-planner-bot/pkg/gtasks"
)

// TaskStore is the external task-list service. Satisfied by
// *gtasks.Client.
type TaskStore interface {
	ListTasks(ctx context.Context, req gtasks.ListTasksRequest) ([]gtasks.Task, error)
	CreateTask(ctx context.Context, req gtasks.CreateTaskRequest) (gtasks.Task, error)
	CompleteTask(ctx context.Context, tasklistID, taskID string) (gtasks.Task, error)
}

// CalendarStore is the external calendar service. Satisfied by
// *gcalendar.Client.
type CalendarStore interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}
