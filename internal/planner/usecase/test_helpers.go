package usecase

import (
	"context"
	"errors"

	"task-planner-bot/pkg/gcalendar"
	"task-planner-bot/pkg/gtasks"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{}) {}

// Mock task store for testing
type mockTaskStore struct {
	tasks   []gtasks.Task
	fail    bool
	created []gtasks.CreateTaskRequest
}

func (m *mockTaskStore) ListTasks(ctx context.Context, req gtasks.ListTasksRequest) ([]gtasks.Task, error) {
	if m.fail {
		return nil, errors.New("store error")
	}
	return m.tasks, nil
}

func (m *mockTaskStore) CreateTask(ctx context.Context, req gtasks.CreateTaskRequest) (gtasks.Task, error) {
	if m.fail {
		return gtasks.Task{}, errors.New("store error")
	}
	m.created = append(m.created, req)
	t := gtasks.Task{
		ID:     "task-1",
		Title:  req.Title,
		Notes:  req.Notes,
		Status: gtasks.StatusNeedsAction,
	}
	if req.Due != nil {
		due := *req.Due
		t.Due = &due
	}
	return t, nil
}

func (m *mockTaskStore) CompleteTask(ctx context.Context, tasklistID, taskID string) (gtasks.Task, error) {
	if m.fail {
		return gtasks.Task{}, errors.New("store error")
	}
	for _, t := range m.tasks {
		if t.ID == taskID {
			t.Status = gtasks.StatusCompleted
			return t, nil
		}
	}
	return gtasks.Task{}, errors.New("task not found")
}

// Mock calendar store for testing
type mockCalendarStore struct {
	events  []gcalendar.Event
	fail    bool
	created []gcalendar.CreateEventRequest
}

func (m *mockCalendarStore) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.fail {
		return nil, errors.New("calendar error")
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{
		ID:          "event-1",
		Summary:     req.Summary,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

func (m *mockCalendarStore) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	if m.fail {
		return nil, errors.New("calendar error")
	}
	return m.events, nil
}
