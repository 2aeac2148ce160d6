package dialog

import (
	"context"
	"fmt"

	"task-planner-bot/internal/model"
	"task-planner-bot/internal/planner"
)

func (e *engine) advanceAddEvent(ctx context.Context, sc model.Scope, s *model.Session, text string) string {
	switch s.State {
	case model.StateAwaitEventTitle:
		v := validateTitle(text, MsgEventTitleEmpty)
		if !v.ok {
			return v.reason
		}
		s.Fields[model.FieldEventTitle] = v.value
		s.State = model.StateAwaitEventDate
		return MsgAskEventDate

	case model.StateAwaitEventDate:
		v := validateStrictDate(text, e.location, MsgEventDateInvalid)
		if !v.ok {
			return v.reason
		}
		s.Fields[model.FieldEventDate] = v.when.Format(dateLayout)
		s.State = model.StateAwaitEventStart
		return MsgAskEventStart

	case model.StateAwaitEventStart:
		v := validateClock(text)
		if !v.ok {
			return v.reason
		}
		s.Fields[model.FieldEventStart] = v.value
		s.State = model.StateAwaitEventEnd
		return MsgAskEventEnd

	case model.StateAwaitEventEnd:
		v := validateClock(text)
		if !v.ok {
			return v.reason
		}
		return e.finishAddEvent(ctx, sc, s, v.value)
	}

	e.l.Errorf(ctx, "dialog.advanceAddEvent: session %s in unexpected state %q", s.ID, s.State)
	e.sessions.Clear(sc.ChatID)
	return MsgCancelled
}

// finishAddEvent checks the cross-field invariant (end strictly after
// start on the same date) before committing. An end that is not after
// the start keeps the dialogue in the end-time state; only a committed
// or failed store call closes the session.
func (e *engine) finishAddEvent(ctx context.Context, sc model.Scope, s *model.Session, endClock string) string {
	date := s.Fields[model.FieldEventDate]

	start, err := combineDateTime(date, s.Fields[model.FieldEventStart], e.location)
	if err != nil {
		e.l.Errorf(ctx, "dialog.finishAddEvent: corrupt start %q %q: %v", date, s.Fields[model.FieldEventStart], err)
		e.sessions.Clear(sc.ChatID)
		return MsgEventSaveFailed
	}
	end, err := combineDateTime(date, endClock, e.location)
	if err != nil {
		return MsgTimeInvalid
	}

	if !end.After(start) {
		return MsgEndNotAfterStart
	}

	defer e.sessions.Clear(sc.ChatID)

	title := s.Fields[model.FieldEventTitle]
	_, err = e.uc.AddEvent(ctx, sc, planner.AddEventInput{
		Title: title,
		Start: start,
		End:   end,
	})
	if err != nil {
		e.l.Errorf(ctx, "dialog.finishAddEvent: %v", err)
		return MsgEventSaveFailed
	}
	return fmt.Sprintf(MsgEventAdded, title)
}
