package usecase

import (
	"context"
	"fmt"
	"time"

	"task-planner-bot/internal/model"
	"task-planner-bot/internal/planner"
	"task-planner-bot/pkg/gcalendar"
)

func (uc *implUseCase) TodayAgenda(ctx context.Context, sc model.Scope) (planner.Agenda, error) {
	current := now().In(uc.location)
	dayStart := time.Date(current.Year(), current.Month(), current.Day(), 0, 0, 0, 0, uc.location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	open, err := uc.ListOpenTasks(ctx, sc)
	if err != nil {
		return planner.Agenda{}, err
	}

	agenda := planner.Agenda{Date: dayStart}
	for _, t := range open {
		if t.Due == nil {
			continue
		}
		due := t.Due.In(uc.location)
		if !due.Before(dayStart) && due.Before(dayEnd) {
			agenda.Tasks = append(agenda.Tasks, t)
		}
	}

	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		TimeMin:    dayStart,
		TimeMax:    dayEnd,
	})
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.TodayAgenda: %v", err)
		return planner.Agenda{}, fmt.Errorf("failed to list events: %w", err)
	}
	for _, e := range events {
		agenda.Events = append(agenda.Events, eventFromStore(e))
	}

	return agenda, nil
}
