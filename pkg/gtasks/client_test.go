package gtasks_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"task-planner-bot/pkg/gtasks"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *gtasks.Client {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gtasks.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestListTasks(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/lists/@default/tasks") && r.Method == http.MethodGet {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"items": [
						{"id": "t1", "title": "Купить молоко", "notes": "Планируемое время: 30 минут", "status": "needsAction", "due": "2025-04-01T00:00:00.000Z"},
						{"id": "t2", "title": "Отчёт", "status": "needsAction"},
						{"id": "t3", "title": "Сломанная дата", "status": "needsAction", "due": "not-a-date"}
					]
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		items, err := client.ListTasks(context.Background(), gtasks.ListTasksRequest{})
		if err != nil {
			t.Fatalf("failed to list tasks: %v", err)
		}
		if len(items) != 3 {
			t.Fatalf("expected 3 tasks, got %d", len(items))
		}
		if items[0].Due == nil || items[0].Due.Day() != 1 {
			t.Errorf("expected parsed due date, got %v", items[0].Due)
		}
		if items[1].Due != nil {
			t.Error("expected nil due for undated task")
		}
		if items[2].Due != nil {
			t.Error("expected unparseable due to be dropped")
		}
	})

	t.Run("API error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		if _, err := client.ListTasks(context.Background(), gtasks.ListTasksRequest{}); err == nil {
			t.Fatal("expected api error")
		}
	})
}

func TestCreateTask(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var received map[string]interface{}
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/lists/@default/tasks") && r.Method == http.MethodPost {
				json.NewDecoder(r.Body).Decode(&received)
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"id": "t1", "title": "Купить молоко", "status": "needsAction", "due": "2025-04-01T00:00:00.000Z"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		due := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
		task, err := client.CreateTask(context.Background(), gtasks.CreateTaskRequest{
			Title: "Купить молоко",
			Notes: "Планируемое время: 30 минут",
			Due:   &due,
		})
		if err != nil {
			t.Fatalf("failed to create task: %v", err)
		}
		if task.ID != "t1" {
			t.Errorf("unexpected id: %s", task.ID)
		}
		if received["due"] != "2025-04-01T00:00:00Z" {
			t.Errorf("expected RFC3339 UTC due in request, got %v", received["due"])
		}
	})

	t.Run("Due keeps local calendar date", func(t *testing.T) {
		var received map[string]interface{}
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&received)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id": "t2", "title": "Отчёт", "status": "needsAction", "due": "2025-04-01T00:00:00.000Z"}`))
		})

		minsk, err := time.LoadLocation("Europe/Minsk")
		if err != nil {
			t.Fatalf("failed to load location: %v", err)
		}

		// Midnight Minsk is 21:00 UTC the previous day; the API only
		// stores the date, so the request must carry 1 April, not 31 March.
		due := time.Date(2025, 4, 1, 0, 0, 0, 0, minsk)
		if _, err := client.CreateTask(context.Background(), gtasks.CreateTaskRequest{
			Title: "Отчёт",
			Due:   &due,
		}); err != nil {
			t.Fatalf("failed to create task: %v", err)
		}
		if received["due"] != "2025-04-01T00:00:00Z" {
			t.Errorf("expected due date preserved, got %v", received["due"])
		}
	})

	t.Run("API error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		if _, err := client.CreateTask(context.Background(), gtasks.CreateTaskRequest{Title: "x"}); err == nil {
			t.Fatal("expected api error")
		}
	})
}

func TestCompleteTask(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var updatedStatus string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/lists/@default/tasks/t1") {
				switch r.Method {
				case http.MethodGet:
					w.WriteHeader(http.StatusOK)
					w.Write([]byte(`{"id": "t1", "title": "Отчёт", "status": "needsAction"}`))
					return
				case http.MethodPut:
					var body map[string]interface{}
					json.NewDecoder(r.Body).Decode(&body)
					updatedStatus, _ = body["status"].(string)
					w.WriteHeader(http.StatusOK)
					w.Write([]byte(`{"id": "t1", "title": "Отчёт", "status": "completed"}`))
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
		})

		task, err := client.CompleteTask(context.Background(), "", "t1")
		if err != nil {
			t.Fatalf("failed to complete task: %v", err)
		}
		if task.Status != gtasks.StatusCompleted {
			t.Errorf("unexpected status: %s", task.Status)
		}
		if updatedStatus != gtasks.StatusCompleted {
			t.Errorf("expected completed status in update request, got %q", updatedStatus)
		}
	})

	t.Run("Unknown task", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		if _, err := client.CompleteTask(context.Background(), "", "nope"); err == nil {
			t.Fatal("expected api error")
		}
	})
}
