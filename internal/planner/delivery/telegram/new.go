package telegram

import (
	"time"

	"github.com/gin-gonic/gin"

	"task-planner-bot/internal/dialog"
	"task-planner-bot/internal/planner"
	"task-planner-bot/internal/router"
	"task-planner-bot/internal/webhook"
	pkgLog "task-planner-bot/pkg/log"
	pkgTelegram "task-planner-bot/pkg/telegram"
)

// Sender is the outbound side of the chat transport. Satisfied by
// *pkgTelegram.Bot; narrowed to an interface for testability.
type Sender interface {
	SendMessage(chatID int64, text string) error
	SendMessageWithKeyboard(chatID int64, text string, keyboard *pkgTelegram.ReplyKeyboard) error
}

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l        pkgLog.Logger
	uc       planner.UseCase
	engine   dialog.Engine
	router   router.Router
	bot      Sender
	security *webhook.SecurityValidator
	location *time.Location
}

// New creates a new Telegram delivery handler.
func New(
	l pkgLog.Logger,
	uc planner.UseCase,
	engine dialog.Engine,
	r router.Router,
	bot Sender,
	security *webhook.SecurityValidator,
	location *time.Location,
) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		engine:   engine,
		router:   r,
		bot:      bot,
		security: security,
		location: location,
	}
}
