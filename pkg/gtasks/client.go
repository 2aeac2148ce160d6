package gtasks

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"
)

// DefaultTasklist is the alias Google Tasks uses for the user's
// default task list.
const DefaultTasklist = "@default"

// Client wraps the Google Tasks API service.
type Client struct {
	service *tasks.Service
}

// NewClientFromHTTP creates a Tasks client from a pre-authorized HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListTasks returns the tasks of a task list. The API does not
// guarantee any ordering.
func (c *Client) ListTasks(ctx context.Context, req ListTasksRequest) ([]Task, error) {
	tasklistID := req.TasklistID
	if tasklistID == "" {
		tasklistID = DefaultTasklist
	}

	result, err := c.service.Tasks.List(tasklistID).
		ShowCompleted(req.ShowCompleted).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	out := make([]Task, 0, len(result.Items))
	for _, item := range result.Items {
		out = append(out, fromAPI(item))
	}
	return out, nil
}

// CreateTask inserts a new task into the task list.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (Task, error) {
	tasklistID := req.TasklistID
	if tasklistID == "" {
		tasklistID = DefaultTasklist
	}

	body := &tasks.Task{
		Title: req.Title,
		Notes: req.Notes,
	}
	if req.Due != nil {
		// The API keeps only the date portion of due, so the local
		// calendar date has to be sent as UTC midnight. Converting the
		// instant to UTC instead would shift the date back a day for
		// any positive-offset timezone.
		y, m, d := req.Due.Date()
		body.Due = time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Format(time.RFC3339)
	}

	created, err := c.service.Tasks.Insert(tasklistID, body).Context(ctx).Do()
	if err != nil {
		return Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return fromAPI(created), nil
}

// CompleteTask flips a task's status to completed.
func (c *Client) CompleteTask(ctx context.Context, tasklistID, taskID string) (Task, error) {
	if tasklistID == "" {
		tasklistID = DefaultTasklist
	}

	current, err := c.service.Tasks.Get(tasklistID, taskID).Context(ctx).Do()
	if err != nil {
		return Task{}, fmt.Errorf("failed to get task %s: %w", taskID, err)
	}

	current.Status = StatusCompleted
	updated, err := c.service.Tasks.Update(tasklistID, taskID, current).Context(ctx).Do()
	if err != nil {
		return Task{}, fmt.Errorf("failed to update task %s: %w", taskID, err)
	}
	return fromAPI(updated), nil
}

// fromAPI converts an API task into the simplified representation.
// Unparseable due dates are treated as absent, matching how overdue
// and today views skip malformed entries.
func fromAPI(t *tasks.Task) Task {
	out := Task{
		ID:     t.Id,
		Title:  t.Title,
		Notes:  t.Notes,
		Status: t.Status,
	}
	if t.Due != "" {
		if due, err := time.Parse(time.RFC3339, t.Due); err == nil {
			out.Due = &due
		}
	}
	return out
}
