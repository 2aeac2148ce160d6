package model

import "time"

// FlowType identifies one multi-turn dialogue state machine.
type FlowType string

const (
	FlowAddTask      FlowType = "add_task"
	FlowAddEvent     FlowType = "add_event"
	FlowCompleteTask FlowType = "complete_task"
)

// DialogState is the current position inside a flow's state machine.
type DialogState string

const (
	// AddTask flow: title → date → duration.
	StateAwaitTaskTitle    DialogState = "await_task_title"
	StateAwaitTaskDate     DialogState = "await_task_date"
	StateAwaitTaskDuration DialogState = "await_task_duration"

	// AddEvent flow: title → date → start → end.
	StateAwaitEventTitle DialogState = "await_event_title"
	StateAwaitEventDate  DialogState = "await_event_date"
	StateAwaitEventStart DialogState = "await_event_start"
	StateAwaitEventEnd   DialogState = "await_event_end"

	// CompleteTask flow: numeric selection.
	StateAwaitTaskSelection DialogState = "await_task_selection"
)

// Field keys of Session.Fields, written one per answered prompt.
const (
	FieldTaskTitle    = "task_title"
	FieldTaskDue      = "task_due" // RFC3339
	FieldTaskDuration = "task_duration"
	FieldEventTitle   = "event_title"
	FieldEventDate    = "event_date"  // DD.MM.YYYY as entered
	FieldEventStart   = "event_start" // HH:MM as entered
)

// Session is the per-chat ephemeral dialogue state. It exists only
// while a flow is in progress and is never persisted: a restart loses
// in-flight dialogues. One chat owns exactly one Session.
type Session struct {
	ID        string
	ChatID    int64
	Flow      FlowType
	State     DialogState
	Fields    map[string]string
	Listed    []Task // snapshot shown by the CompleteTask prompt
	StartedAt time.Time
}

// Scope carries the identity of the chat a message came from.
type Scope struct {
	ChatID   int64
	UserID   string
	Username string
}
