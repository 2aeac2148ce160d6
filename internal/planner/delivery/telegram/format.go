package telegram

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"task-planner-bot/internal/model"
	"task-planner-bot/internal/planner"
)

// russianWeekdays maps Go weekdays to their Russian names.
var russianWeekdays = map[time.Weekday]string{
	time.Monday:    "Понедельник",
	time.Tuesday:   "Вторник",
	time.Wednesday: "Среда",
	time.Thursday:  "Четверг",
	time.Friday:    "Пятница",
	time.Saturday:  "Суббота",
	time.Sunday:    "Воскресенье",
}

// formatRussianDate renders "Понедельник (02.01)".
func formatRussianDate(t time.Time) string {
	return fmt.Sprintf("%s (%s)", russianWeekdays[t.Weekday()], t.Format("02.01"))
}

// taskLine renders "• title — notes".
func taskLine(t model.Task) string {
	line := "• " + t.Title
	if t.Notes != "" {
		line += " — " + t.Notes
	}
	return line
}

// formatTaskList groups open tasks by due date, dated groups first in
// chronological order, the no-date group last.
func formatTaskList(tasks []model.Task, loc *time.Location) string {
	if len(tasks) == 0 {
		return MsgNoOpenTasks
	}

	grouped := make(map[string][]model.Task)
	var days []time.Time
	var undated []model.Task

	for _, t := range tasks {
		if t.Due == nil {
			undated = append(undated, t)
			continue
		}
		due := t.Due.In(loc)
		day := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, loc)
		key := day.Format("2006-01-02")
		if _, seen := grouped[key]; !seen {
			days = append(days, day)
		}
		grouped[key] = append(grouped[key], t)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	var b strings.Builder
	b.WriteString(MsgTasksHeader)
	for _, day := range days {
		b.WriteString(fmt.Sprintf("\n\n📅 %s:", formatRussianDate(day)))
		for _, t := range grouped[day.Format("2006-01-02")] {
			b.WriteString("\n" + taskLine(t))
		}
	}
	if len(undated) > 0 {
		b.WriteString("\n\n" + MsgNoDateGroup)
		for _, t := range undated {
			b.WriteString("\n" + taskLine(t))
		}
	}
	return b.String()
}

// formatAgenda renders the combined today view: tasks due today, then
// the day's calendar events with their start times.
func formatAgenda(agenda planner.Agenda, loc *time.Location) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📆 Сегодня: %s", formatRussianDate(agenda.Date.In(loc))))

	b.WriteString("\n\n📝 Задачи:")
	if len(agenda.Tasks) == 0 {
		b.WriteString("\n" + MsgNoTasksToday)
	}
	for _, t := range agenda.Tasks {
		b.WriteString("\n" + taskLine(t))
	}

	b.WriteString("\n\n🕒 Встречи:")
	if len(agenda.Events) == 0 {
		b.WriteString("\n" + MsgNoEventsToday)
	}
	for _, e := range agenda.Events {
		if e.AllDay {
			b.WriteString("\n• " + e.Title)
			continue
		}
		b.WriteString(fmt.Sprintf("\n• %s в %s", e.Title, e.Start.In(loc).Format("15:04")))
	}
	return b.String()
}

// formatOverdue groups overdue tasks by their due date with weekday
// headers, oldest first.
func formatOverdue(tasks []model.Task, loc *time.Location) string {
	if len(tasks) == 0 {
		return MsgNoOverdue
	}

	grouped := make(map[string][]model.Task)
	var days []time.Time
	for _, t := range tasks {
		if t.Due == nil {
			continue
		}
		due := t.Due.In(loc)
		day := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, loc)
		key := day.Format("2006-01-02")
		if _, seen := grouped[key]; !seen {
			days = append(days, day)
		}
		grouped[key] = append(grouped[key], t)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	var b strings.Builder
	b.WriteString(MsgOverdueHeader)
	for _, day := range days {
		b.WriteString("\n\n" + formatRussianDate(day))
		for _, t := range grouped[day.Format("2006-01-02")] {
			b.WriteString("\n" + taskLine(t))
		}
	}
	return b.String()
}
