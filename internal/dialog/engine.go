package dialog

import (
	"context"

	"task-planner-bot/internal/model"
)

func (e *engine) Active(chatID int64) bool {
	_, ok := e.sessions.Get(chatID)
	return ok
}

// Start opens a flow from its initial state. Issuing an entry command
// while another dialogue is running restarts from scratch: the last
// command wins and the fields map starts empty.
func (e *engine) Start(ctx context.Context, sc model.Scope, flow model.FlowType) string {
	switch flow {
	case model.FlowAddTask:
		e.sessions.Start(sc.ChatID, flow, model.StateAwaitTaskTitle)
		return MsgAskTaskTitle
	case model.FlowAddEvent:
		e.sessions.Start(sc.ChatID, flow, model.StateAwaitEventTitle)
		return MsgAskEventTitle
	case model.FlowCompleteTask:
		return e.startCompleteTask(ctx, sc)
	}

	e.l.Warnf(ctx, "dialog.Start: unknown flow %q", flow)
	return MsgCancelled
}

// Cancel is a global interrupt: it applies from any state of any flow
// and is handled before per-state dispatch.
func (e *engine) Cancel(ctx context.Context, sc model.Scope) string {
	e.sessions.Clear(sc.ChatID)
	return MsgCancelled
}

// Advance feeds one message into the active dialogue.
func (e *engine) Advance(ctx context.Context, sc model.Scope, text string) string {
	s, ok := e.sessions.Get(sc.ChatID)
	if !ok {
		return ""
	}
	// Expiry counts from the last message, not from the start of the flow.
	e.sessions.Touch(sc.ChatID)

	switch s.Flow {
	case model.FlowAddTask:
		return e.advanceAddTask(ctx, sc, s, text)
	case model.FlowAddEvent:
		return e.advanceAddEvent(ctx, sc, s, text)
	case model.FlowCompleteTask:
		return e.advanceCompleteTask(ctx, sc, s, text)
	}

	// Unreachable with a well-formed session; drop it to recover.
	e.l.Errorf(ctx, "dialog.Advance: session %s has unknown flow %q", s.ID, s.Flow)
	e.sessions.Clear(sc.ChatID)
	return MsgCancelled
}
