package usecase

import (
	"context"
	"fmt"
	"strings"

	"task-planner-bot/internal/model"
	"task-planner-bot/internal/planner"
	"task-planner-bot/pkg/gcalendar"
)

// EventDescription is attached to every event the bot schedules.
const EventDescription = "Добавлено через Telegram-бота"

func (uc *implUseCase) AddEvent(ctx context.Context, sc model.Scope, input planner.AddEventInput) (model.Event, error) {
	if strings.TrimSpace(input.Title) == "" {
		return model.Event{}, planner.ErrEmptyTitle
	}
	if !input.End.After(input.Start) {
		return model.Event{}, planner.ErrEndBeforeStart
	}

	created, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     input.Title,
		Description: EventDescription,
		StartTime:   input.Start,
		EndTime:     input.End,
		Timezone:    uc.location.String(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.AddEvent: %v", err)
		return model.Event{}, fmt.Errorf("failed to create event: %w", err)
	}

	uc.l.Infof(ctx, "planner.usecase.AddEvent: scheduled %q at %s", created.Summary, created.StartTime)
	return eventFromStore(*created), nil
}

func eventFromStore(e gcalendar.Event) model.Event {
	return model.Event{
		ID:          e.ID,
		Title:       e.Summary,
		Description: e.Description,
		Start:       e.StartTime,
		End:         e.EndTime,
		AllDay:      e.AllDay,
	}
}
