package dialog

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"task-planner-bot/internal/model"
)

// startCompleteTask lists the open tasks and opens the selection
// dialogue. With nothing to complete no session is created at all.
func (e *engine) startCompleteTask(ctx context.Context, sc model.Scope) string {
	items, err := e.uc.ListOpenTasks(ctx, sc)
	if err != nil {
		e.l.Errorf(ctx, "dialog.startCompleteTask: %v", err)
		e.sessions.Clear(sc.ChatID)
		return MsgListFailed
	}
	if len(items) == 0 {
		e.sessions.Clear(sc.ChatID)
		return MsgNoTasksToComplete
	}

	s := e.sessions.Start(sc.ChatID, model.FlowCompleteTask, model.StateAwaitTaskSelection)
	s.Listed = items

	var b strings.Builder
	b.WriteString(MsgChooseTask)
	for i, t := range items {
		b.WriteString(fmt.Sprintf("\n%d. %s", i+1, t.Title))
	}
	return b.String()
}

func (e *engine) advanceCompleteTask(ctx context.Context, sc model.Scope, s *model.Session, text string) string {
	index, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return MsgEnterTaskNumber
	}
	if index < 1 || index > len(s.Listed) {
		return MsgWrongTaskNumber
	}

	defer e.sessions.Clear(sc.ChatID)

	completed, err := e.uc.CompleteTask(ctx, sc, s.Listed[index-1].ID)
	if err != nil {
		e.l.Errorf(ctx, "dialog.advanceCompleteTask: %v", err)
		return MsgCompleteFailed
	}
	return fmt.Sprintf(MsgTaskCompleted, completed.Title)
}
