package router

// Quick-reply button labels, mirrored by the /start keyboard.
const (
	ButtonAddTask      = "📝 Добавить задачу"
	ButtonListTasks    = "📋 Показать задачи"
	ButtonCompleteTask = "✅ Завершить задачу"
	ButtonAddEvent     = "📅 Добавить встречу"
	ButtonToday        = "📆 Сегодня"
	ButtonOverdue      = "⏰ Просроченные"
	ButtonCancel       = "❌ Отменить"
)

// commandActions maps slash commands and button labels to actions.
var commandActions = map[string]Action{
	"/start":     ActionStart,
	"/addtask":   ActionAddTask,
	"/listtasks": ActionListTasks,
	"/done":      ActionCompleteTask,
	"/addevent":  ActionAddEvent,
	"/today":     ActionToday,
	"/overdue":   ActionOverdue,
	"/cancel":    ActionCancel,

	ButtonAddTask:      ActionAddTask,
	ButtonListTasks:    ActionListTasks,
	ButtonCompleteTask: ActionCompleteTask,
	ButtonAddEvent:     ActionAddEvent,
	ButtonToday:        ActionToday,
	ButtonOverdue:      ActionOverdue,
	ButtonCancel:       ActionCancel,
}

// DefaultIntentRules is the default keyword rule list for free-text
// classification. The keyword set is heuristic, not load-bearing:
// deployments can pass their own rules to New.
var DefaultIntentRules = []IntentRule{
	{Keywords: []string{"встреч", "совещани", "созвон", "митинг"}, Intent: IntentMeeting},
	{Keywords: []string{"задач", "сдела", "напомни", "дедлайн"}, Intent: IntentTask},
}
