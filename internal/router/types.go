package router

// Action is a user-visible bot operation resolved from a command,
// a quick-reply button, or free text.
type Action string

const (
	ActionStart        Action = "START"
	ActionAddTask      Action = "ADD_TASK"
	ActionListTasks    Action = "LIST_TASKS"
	ActionCompleteTask Action = "COMPLETE_TASK"
	ActionAddEvent     Action = "ADD_EVENT"
	ActionToday        Action = "TODAY"
	ActionOverdue      Action = "OVERDUE"
	ActionCancel       Action = "CANCEL"
)

// Intent is a coarse guess at what unrecognized free text is about.
type Intent string

const (
	IntentTask    Intent = "TASK"
	IntentMeeting Intent = "MEETING"
	IntentUnknown Intent = "UNKNOWN"
)

// IntentRule maps substring keywords to an intent. Rules are evaluated
// in order and the first rule with a matching keyword wins.
type IntentRule struct {
	Keywords []string
	Intent   Intent
}
