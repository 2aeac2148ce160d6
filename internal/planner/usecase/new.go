package usecase

import (
	"time"

	"task-planner-bot/internal/planner"
	pkgLog "task-planner-bot/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	tasks      planner.TaskStore
	calendar   planner.CalendarStore
	location   *time.Location
	tasklistID string
	calendarID string
}

var _ planner.UseCase = (*implUseCase)(nil)

// New creates a new planner UseCase instance.
func New(
	l pkgLog.Logger,
	tasks planner.TaskStore,
	calendar planner.CalendarStore,
	location *time.Location,
	tasklistID string,
	calendarID string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		tasks:      tasks,
		calendar:   calendar,
		location:   location,
		tasklistID: tasklistID,
		calendarID: calendarID,
	}
}

// now is stubbed in tests.
var now = time.Now
