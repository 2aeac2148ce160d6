package telegram

import (
	"task-planner-bot/internal/router"
	pkgTelegram "task-planner-bot/pkg/telegram"
)

const (
	MsgMenu = `👋 Привет! Я бот-планировщик. Вот что я умею:

📝 /addtask — добавить задачу с датой и временем
📋 /listtasks — показать список всех активных задач
✅ /done — выбрать и отметить задачу как выполненную
📅 /addevent — запланировать встречу в Google Календарь
📆 /today — показать задачи и встречи на сегодня
⏰ /overdue — показать просроченные задачи
❌ /cancel — отменить текущую операцию

Выберите действие с помощью кнопок ниже:`

	MsgUnknown      = "🤔 Не понял. Используй команды из меню или /start."
	MsgHintAddTask  = "Похоже, ты хочешь добавить задачу — попробуй /addtask."
	MsgHintAddEvent = "Похоже, ты хочешь запланировать встречу — попробуй /addevent."
	MsgStoreFailure = "❌ Что-то пошло не так. Попробуй ещё раз позже."

	MsgNoOpenTasks   = "🎉 У тебя нет активных задач."
	MsgTasksHeader   = "📝 Твои задачи:"
	MsgNoDateGroup   = "📅 Без даты:"
	MsgNoTasksToday  = "Нет задач на сегодня."
	MsgNoEventsToday = "Нет встреч на сегодня."
	MsgNoOverdue     = "✅ У тебя нет просроченных задач!"
	MsgOverdueHeader = "⏰ Просроченные задачи:"
)

// menuKeyboard builds the quick-reply keyboard mirroring the commands.
func menuKeyboard() *pkgTelegram.ReplyKeyboard {
	rows := [][]string{
		{router.ButtonAddTask, router.ButtonListTasks},
		{router.ButtonCompleteTask, router.ButtonAddEvent},
		{router.ButtonToday, router.ButtonOverdue},
		{router.ButtonCancel},
	}

	kb := &pkgTelegram.ReplyKeyboard{ResizeKeyboard: true}
	for _, row := range rows {
		var buttons []pkgTelegram.KeyboardButton
		for _, label := range row {
			buttons = append(buttons, pkgTelegram.KeyboardButton{Text: label})
		}
		kb.Keyboard = append(kb.Keyboard, buttons)
	}
	return kb
}
