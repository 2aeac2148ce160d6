package usecase

import (
	"context"
	"fmt"
	"strings"

	"task-planner-bot/internal/model"
	"task-planner-bot/internal/planner"
	"task-planner-bot/pkg/gtasks"
)

// NotesPrefix marks the planned-duration note attached to a task.
const NotesPrefix = "Планируемое время: "

func (uc *implUseCase) ListOpenTasks(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	items, err := uc.tasks.ListTasks(ctx, gtasks.ListTasksRequest{
		TasklistID:    uc.tasklistID,
		ShowCompleted: false,
	})
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.ListOpenTasks: %v", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	out := make([]model.Task, 0, len(items))
	for _, item := range items {
		out = append(out, taskFromStore(item))
	}
	return out, nil
}

func (uc *implUseCase) AddTask(ctx context.Context, sc model.Scope, input planner.AddTaskInput) (model.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return model.Task{}, planner.ErrEmptyTitle
	}

	due := input.Due
	created, err := uc.tasks.CreateTask(ctx, gtasks.CreateTaskRequest{
		TasklistID: uc.tasklistID,
		Title:      input.Title,
		Notes:      NotesPrefix + input.Duration,
		Due:        &due,
	})
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.AddTask: %v", err)
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	uc.l.Infof(ctx, "planner.usecase.AddTask: created %q for %s", created.Title, sc.UserID)
	return taskFromStore(created), nil
}

func (uc *implUseCase) CompleteTask(ctx context.Context, sc model.Scope, taskID string) (model.Task, error) {
	updated, err := uc.tasks.CompleteTask(ctx, uc.tasklistID, taskID)
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.CompleteTask: %v", err)
		return model.Task{}, fmt.Errorf("failed to complete task: %w", err)
	}

	uc.l.Infof(ctx, "planner.usecase.CompleteTask: completed %q", updated.Title)
	return taskFromStore(updated), nil
}

func (uc *implUseCase) OverdueTasks(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	open, err := uc.ListOpenTasks(ctx, sc)
	if err != nil {
		return nil, err
	}

	cutoff := now().In(uc.location)
	var overdue []model.Task
	for _, t := range open {
		if t.Due != nil && t.Due.In(uc.location).Before(cutoff) {
			overdue = append(overdue, t)
		}
	}
	return overdue, nil
}

func taskFromStore(t gtasks.Task) model.Task {
	status := model.TaskStatusOpen
	if t.Status == gtasks.StatusCompleted {
		status = model.TaskStatusCompleted
	}
	return model.Task{
		ID:     t.ID,
		Title:  t.Title,
		Notes:  t.Notes,
		Due:    t.Due,
		Status: status,
	}
}
