package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"task-planner-bot/internal/dialog"
	"task-planner-bot/internal/model"
	"task-planner-bot/internal/planner"
	"task-planner-bot/internal/planner/delivery/telegram"
	"task-planner-bot/internal/router"
	"task-planner-bot/internal/session"
	"task-planner-bot/internal/webhook"
	"task-planner-bot/pkg/datetext"
	pkgTelegram "task-planner-bot/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

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

type mockUseCase struct {
	openTasks    []model.Task
	overdueTasks []model.Task
	agenda       planner.Agenda
	listErr      error
	agendaErr    error
}

func (m *mockUseCase) ListOpenTasks(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	return m.openTasks, m.listErr
}

func (m *mockUseCase) AddTask(ctx context.Context, sc model.Scope, input planner.AddTaskInput) (model.Task, error) {
	return model.Task{ID: "task-1", Title: input.Title}, nil
}

func (m *mockUseCase) CompleteTask(ctx context.Context, sc model.Scope, taskID string) (model.Task, error) {
	return model.Task{ID: taskID, Title: "Отчёт"}, nil
}

func (m *mockUseCase) AddEvent(ctx context.Context, sc model.Scope, input planner.AddEventInput) (model.Event, error) {
	return model.Event{ID: "event-1", Title: input.Title}, nil
}

func (m *mockUseCase) TodayAgenda(ctx context.Context, sc model.Scope) (planner.Agenda, error) {
	return m.agenda, m.agendaErr
}

func (m *mockUseCase) OverdueTasks(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	return m.overdueTasks, m.listErr
}

// ── Test Helpers ───────────────────────────────────────────────────────────

type capturedMessages struct {
	mu   sync.Mutex
	msgs []string
}

func (c *capturedMessages) add(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, text)
}

func (c *capturedMessages) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.msgs...)
}

func (c *capturedMessages) waitFor(atLeast int, timeout time.Duration) []string {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if got := c.snapshot(); len(got) >= atLeast {
			return got
		}
		time.Sleep(20 * time.Millisecond)
	}
	return c.snapshot()
}

type testEnv struct {
	engine   *gin.Engine
	muc      *mockUseCase
	captured *capturedMessages
}

func newTestEnv(t *testing.T, muc *mockUseCase, secret string) (*testEnv, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	captured := &capturedMessages{}

	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/sendMessage") {
			var payload map[string]interface{}
			json.NewDecoder(r.Body).Decode(&payload)
			if text, ok := payload["text"].(string); ok {
				captured.add(text)
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(tgServer.Close)

	l := &mockLogger{}
	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	dates, err := datetext.NewExtractor("Europe/Minsk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dlgEngine := dialog.New(l, session.NewManager(time.Minute), muc, dates)
	security := webhook.NewSecurityValidator(webhook.SecurityConfig{Secret: secret})

	ginEngine := gin.New()
	h := telegram.New(l, muc, dlgEngine, router.New(nil), bot, security, dates.Location())
	ginEngine.POST("/webhook/telegram", h.HandleWebhook)

	return &testEnv{engine: ginEngine, muc: muc, captured: captured}, tgServer
}

func sendWebhook(engine *gin.Engine, text, secret string) *httptest.ResponseRecorder {
	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: 123},
			From:      &pkgTelegram.User{ID: 456, Username: "tester"},
			Text:      text,
		},
	}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set(webhook.SecretTokenHeader, secret)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func assertContains(t *testing.T, msgs []string, substr string) {
	t.Helper()
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return
		}
	}
	t.Errorf("expected a message containing %q, got: %v", substr, msgs)
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	env, _ := newTestEnv(t, &mockUseCase{}, "")

	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleWebhook_NonMessageUpdate(t *testing.T) {
	env, _ := newTestEnv(t, &mockUseCase{}, "")

	update := pkgTelegram.Update{UpdateID: 1, Message: nil}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestHandleWebhook_SecretToken(t *testing.T) {
	t.Run("Wrong token rejected", func(t *testing.T) {
		env, _ := newTestEnv(t, &mockUseCase{}, "s3cret")

		w := sendWebhook(env.engine, "/start", "wrong")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Correct token accepted", func(t *testing.T) {
		env, _ := newTestEnv(t, &mockUseCase{}, "s3cret")

		w := sendWebhook(env.engine, "/start", "s3cret")
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})
}

func TestHandleStart(t *testing.T) {
	env, _ := newTestEnv(t, &mockUseCase{}, "")

	w := sendWebhook(env.engine, "/start", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	msgs := env.captured.waitFor(1, 500*time.Millisecond)
	assertContains(t, msgs, "Я бот-планировщик")
}

func TestHandleListTasks(t *testing.T) {
	t.Run("With tasks", func(t *testing.T) {
		due := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
		env, _ := newTestEnv(t, &mockUseCase{openTasks: []model.Task{
			{ID: "t1", Title: "Купить молоко", Notes: "Планируемое время: 30 минут", Due: &due},
		}}, "")

		sendWebhook(env.engine, "/listtasks", "")
		msgs := env.captured.waitFor(1, 500*time.Millisecond)
		assertContains(t, msgs, "Купить молоко")
		assertContains(t, msgs, "Твои задачи")
	})

	t.Run("Empty list", func(t *testing.T) {
		env, _ := newTestEnv(t, &mockUseCase{}, "")

		sendWebhook(env.engine, "/listtasks", "")
		msgs := env.captured.waitFor(1, 500*time.Millisecond)
		assertContains(t, msgs, "нет активных задач")
	})

	t.Run("Store failure", func(t *testing.T) {
		env, _ := newTestEnv(t, &mockUseCase{listErr: errors.New("store down")}, "")

		sendWebhook(env.engine, "/listtasks", "")
		msgs := env.captured.waitFor(1, 500*time.Millisecond)
		assertContains(t, msgs, "Что-то пошло не так")
	})
}

func TestAddTaskDialogueOverWebhook(t *testing.T) {
	env, _ := newTestEnv(t, &mockUseCase{}, "")

	steps := []struct {
		input string
		reply string
	}{
		{"/addtask", "Введи текст задачи"},
		{"Купить молоко", "Укажи дату"},
		{"01.04.2025", "Сколько времени"},
		{"30 минут", "Задача добавлена"},
	}

	for i, step := range steps {
		sendWebhook(env.engine, step.input, "")
		msgs := env.captured.waitFor(i+1, 500*time.Millisecond)
		if len(msgs) < i+1 {
			t.Fatalf("step %d: no reply received", i)
		}
		if !strings.Contains(msgs[i], step.reply) {
			t.Fatalf("step %d: expected reply containing %q, got %q", i, step.reply, msgs[i])
		}
	}
}

func TestCancelCommand(t *testing.T) {
	env, _ := newTestEnv(t, &mockUseCase{}, "")

	sendWebhook(env.engine, "/addtask", "")
	env.captured.waitFor(1, 500*time.Millisecond)

	sendWebhook(env.engine, "/cancel", "")
	msgs := env.captured.waitFor(2, 500*time.Millisecond)
	assertContains(t, msgs, "Действие отменено")
}

func TestFreeTextIntentHints(t *testing.T) {
	t.Run("Meeting hint", func(t *testing.T) {
		env, _ := newTestEnv(t, &mockUseCase{}, "")

		sendWebhook(env.engine, "хочу назначить встречу", "")
		msgs := env.captured.waitFor(1, 500*time.Millisecond)
		assertContains(t, msgs, "/addevent")
	})

	t.Run("Task hint", func(t *testing.T) {
		env, _ := newTestEnv(t, &mockUseCase{}, "")

		sendWebhook(env.engine, "добавь задачу про отчёт", "")
		msgs := env.captured.waitFor(1, 500*time.Millisecond)
		assertContains(t, msgs, "/addtask")
	})

	t.Run("Unknown text", func(t *testing.T) {
		env, _ := newTestEnv(t, &mockUseCase{}, "")

		sendWebhook(env.engine, "привет", "")
		msgs := env.captured.waitFor(1, 500*time.Millisecond)
		assertContains(t, msgs, "Не понял")
	})
}

func TestButtonLabelsRouteLikeCommands(t *testing.T) {
	env, _ := newTestEnv(t, &mockUseCase{}, "")

	sendWebhook(env.engine, router.ButtonAddTask, "")
	msgs := env.captured.waitFor(1, 500*time.Millisecond)
	assertContains(t, msgs, "Введи текст задачи")
}

func TestHandleToday(t *testing.T) {
	loc, _ := time.LoadLocation("Europe/Minsk")
	day := time.Date(2025, 4, 10, 0, 0, 0, 0, loc)
	env, _ := newTestEnv(t, &mockUseCase{agenda: planner.Agenda{
		Date: day,
		Events: []model.Event{
			{ID: "e1", Title: "Созвон", Start: day.Add(10 * time.Hour), End: day.Add(11 * time.Hour)},
		},
	}}, "")

	sendWebhook(env.engine, "/today", "")
	msgs := env.captured.waitFor(1, 500*time.Millisecond)
	assertContains(t, msgs, "Сегодня")
	assertContains(t, msgs, "Созвон в 10:00")
}

func TestHandleOverdue(t *testing.T) {
	loc, _ := time.LoadLocation("Europe/Minsk")
	due := time.Date(2025, 4, 1, 9, 0, 0, 0, loc)
	env, _ := newTestEnv(t, &mockUseCase{overdueTasks: []model.Task{
		{ID: "t1", Title: "Старый отчёт", Due: &due},
	}}, "")

	sendWebhook(env.engine, "/overdue", "")
	msgs := env.captured.waitFor(1, 500*time.Millisecond)
	assertContains(t, msgs, "Просроченные задачи")
	assertContains(t, msgs, "Старый отчёт")
}
