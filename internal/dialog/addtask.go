package dialog

import (
	"context"
	"time"

	"task-planner-bot/internal/model"
	"task-planner-bot/internal/planner"
	"task-planner-bot/pkg/duration"
)

func (e *engine) advanceAddTask(ctx context.Context, sc model.Scope, s *model.Session, text string) string {
	switch s.State {
	case model.StateAwaitTaskTitle:
		v := validateTitle(text, MsgTaskTitleEmpty)
		if !v.ok {
			return v.reason
		}
		s.Fields[model.FieldTaskTitle] = v.value
		s.State = model.StateAwaitTaskDate
		return MsgAskTaskDate

	case model.StateAwaitTaskDate:
		v := e.validateDueDate(text)
		if !v.ok {
			return v.reason
		}
		s.Fields[model.FieldTaskDue] = v.when.Format(time.RFC3339)
		s.State = model.StateAwaitTaskDuration
		return MsgAskTaskDuration

	case model.StateAwaitTaskDuration:
		s.Fields[model.FieldTaskDuration] = duration.Normalize(text)
		return e.finishAddTask(ctx, sc, s)
	}

	e.l.Errorf(ctx, "dialog.advanceAddTask: session %s in unexpected state %q", s.ID, s.State)
	e.sessions.Clear(sc.ChatID)
	return MsgCancelled
}

// finishAddTask is the flow's terminal action. The session is cleared
// whatever the store call's outcome, so a failed insert never leaves a
// half-committed dialogue behind.
func (e *engine) finishAddTask(ctx context.Context, sc model.Scope, s *model.Session) string {
	defer e.sessions.Clear(sc.ChatID)

	due, err := time.Parse(time.RFC3339, s.Fields[model.FieldTaskDue])
	if err != nil {
		e.l.Errorf(ctx, "dialog.finishAddTask: corrupt due field %q: %v", s.Fields[model.FieldTaskDue], err)
		return MsgTaskSaveFailed
	}

	_, err = e.uc.AddTask(ctx, sc, planner.AddTaskInput{
		Title:    s.Fields[model.FieldTaskTitle],
		Due:      due,
		Duration: s.Fields[model.FieldTaskDuration],
	})
	if err != nil {
		e.l.Errorf(ctx, "dialog.finishAddTask: %v", err)
		return MsgTaskSaveFailed
	}
	return MsgTaskAdded
}
