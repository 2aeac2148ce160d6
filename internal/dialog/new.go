// Package dialog drives the multi-turn conversations that collect a
// task's or event's fields one message at a time.
package dialog

import (
	"context"
	"time"

	"task-planner-bot/internal/model"
	"task-planner-bot/internal/planner"
	"task-planner-bot/internal/session"
	"task-planner-bot/pkg/datetext"
	pkgLog "task-planner-bot/pkg/log"
)

// Engine is the per-chat dialogue state machine. One chat's messages
// are processed strictly one at a time, so the engine itself holds no
// locks; the session manager is the only shared structure.
type Engine interface {
	// Active reports whether the chat has a dialogue in progress.
	Active(chatID int64) bool

	// Start opens the given flow for the chat, replacing any dialogue
	// already in progress, and returns the first prompt.
	Start(ctx context.Context, sc model.Scope, flow model.FlowType) string

	// Advance feeds the next user message into the active dialogue and
	// returns the reply. Invalid input re-prompts the same state.
	Advance(ctx context.Context, sc model.Scope, text string) string

	// Cancel aborts the active dialogue, if any, from whatever state
	// it is in.
	Cancel(ctx context.Context, sc model.Scope) string
}

type engine struct {
	l        pkgLog.Logger
	sessions *session.Manager
	uc       planner.UseCase
	dates    *datetext.Extractor
	location *time.Location
}

var _ Engine = (*engine)(nil)

// New creates a dialogue Engine.
func New(l pkgLog.Logger, sessions *session.Manager, uc planner.UseCase, dates *datetext.Extractor) *engine {
	return &engine{
		l:        l,
		sessions: sessions,
		uc:       uc,
		dates:    dates,
		location: dates.Location(),
	}
}

// now is stubbed in tests.
var now = time.Now
