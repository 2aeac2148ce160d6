package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"task-planner-bot/internal/model"
	"task-planner-bot/internal/router"
	"task-planner-bot/internal/webhook"
	pkgResponse "task-planner-bot/pkg/response"
	pkgTelegram "task-planner-bot/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine so a slow Google API call never trips Telegram's
// webhook timeout. Telegram delivers one update per chat at a time, so
// per-chat processing stays serial.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.security.ValidateSecretToken(c.GetHeader(webhook.SecretTokenHeader)); err != nil {
		h.l.Warnf(ctx, "telegram handler: rejected update: %v", err)
		pkgResponse.Unauthorized(c)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edits, polls, channel posts).
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	if err := h.security.CheckRateLimit(strconv.FormatInt(msg.Chat.ID, 10)); err != nil {
		h.l.Warnf(ctx, "telegram handler: %v", err)
		pkgResponse.OK(c, map[string]string{"status": "throttled"})
		return
	}

	// Process in a goroutine, return 200 immediately to Telegram.
	go func() {
		// Detach from the HTTP request context, which is cancelled as
		// soon as the response is written.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message: commands and
// buttons route first, then the active dialogue, then the free-text
// intent fallback.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	sc := model.Scope{ChatID: msg.Chat.ID}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
		sc.Username = msg.From.Username
	}

	if action, ok := h.router.Route(text); ok {
		return h.handleAction(ctx, sc, action)
	}

	if h.engine.Active(sc.ChatID) {
		return h.bot.SendMessage(sc.ChatID, h.engine.Advance(ctx, sc, msg.Text))
	}

	switch h.router.Classify(text) {
	case router.IntentMeeting:
		return h.bot.SendMessage(sc.ChatID, MsgHintAddEvent)
	case router.IntentTask:
		return h.bot.SendMessage(sc.ChatID, MsgHintAddTask)
	}
	return h.bot.SendMessage(sc.ChatID, MsgUnknown)
}

func (h *handler) handleAction(ctx context.Context, sc model.Scope, action router.Action) error {
	switch action {
	case router.ActionStart:
		return h.bot.SendMessageWithKeyboard(sc.ChatID, MsgMenu, menuKeyboard())

	case router.ActionCancel:
		return h.bot.SendMessage(sc.ChatID, h.engine.Cancel(ctx, sc))

	case router.ActionAddTask:
		return h.bot.SendMessage(sc.ChatID, h.engine.Start(ctx, sc, model.FlowAddTask))

	case router.ActionAddEvent:
		return h.bot.SendMessage(sc.ChatID, h.engine.Start(ctx, sc, model.FlowAddEvent))

	case router.ActionCompleteTask:
		return h.bot.SendMessage(sc.ChatID, h.engine.Start(ctx, sc, model.FlowCompleteTask))

	case router.ActionListTasks:
		tasks, err := h.uc.ListOpenTasks(ctx, sc)
		if err != nil {
			h.l.Errorf(ctx, "telegram handler: ListOpenTasks failed: %v", err)
			return h.bot.SendMessage(sc.ChatID, MsgStoreFailure)
		}
		return h.bot.SendMessage(sc.ChatID, formatTaskList(tasks, h.location))

	case router.ActionToday:
		agenda, err := h.uc.TodayAgenda(ctx, sc)
		if err != nil {
			h.l.Errorf(ctx, "telegram handler: TodayAgenda failed: %v", err)
			return h.bot.SendMessage(sc.ChatID, MsgStoreFailure)
		}
		return h.bot.SendMessage(sc.ChatID, formatAgenda(agenda, h.location))

	case router.ActionOverdue:
		tasks, err := h.uc.OverdueTasks(ctx, sc)
		if err != nil {
			h.l.Errorf(ctx, "telegram handler: OverdueTasks failed: %v", err)
			return h.bot.SendMessage(sc.ChatID, MsgStoreFailure)
		}
		return h.bot.SendMessage(sc.ChatID, formatOverdue(tasks, h.location))
	}

	h.l.Warnf(ctx, "telegram handler: unhandled action %q", action)
	return h.bot.SendMessage(sc.ChatID, MsgUnknown)
}
