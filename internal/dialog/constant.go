package dialog

// Prompts and replies. Wording follows the bot's established Russian
// voice; validation errors re-prompt without advancing the dialogue.
const (
	MsgAskTaskTitle    = "📝 Введи текст задачи:"
	MsgTaskTitleEmpty  = "❌ Текст задачи не может быть пустым. Введи ещё раз:"
	MsgAskTaskDate     = "📅 Укажи дату (в формате ДД.ММ.ГГГГ):"
	MsgTaskDateInvalid = "❌ Неверный формат. Попробуй снова: ДД.ММ.ГГГГ"
	MsgAskTaskDuration = "⏱ Сколько времени планируешь на выполнение? (например: 1 час, 30 минут)"
	MsgTaskAdded       = "✅ Задача добавлена!"
	MsgTaskSaveFailed  = "❌ Не удалось сохранить задачу. Попробуй ещё раз позже."

	MsgAskEventTitle    = "📌 Введи название встречи:"
	MsgEventTitleEmpty  = "❌ Название не может быть пустым. Введи ещё раз:"
	MsgAskEventDate     = "📅 Укажи дату встречи (ДД.ММ.ГГГГ):"
	MsgEventDateInvalid = "❌ Неверный формат даты. Попробуй снова: ДД.ММ.ГГГГ"
	MsgAskEventStart    = "🕒 Укажи время начала (например: 14:30):"
	MsgAskEventEnd      = "🕕 Укажи время окончания (например: 15:30):"
	MsgTimeInvalid      = "❌ Неверный формат времени. Пример: 14:30"
	MsgEndNotAfterStart = "❌ Время окончания должно быть позже времени начала. Укажи другое время:"
	MsgEventAdded       = "✅ Встреча '%s' добавлена в календарь!"
	MsgEventSaveFailed  = "❌ Не удалось добавить встречу. Попробуй ещё раз позже."

	MsgNoTasksToComplete = "❌ Нет активных задач для завершения."
	MsgChooseTask        = "Выбери номер задачи, которую хочешь завершить:"
	MsgEnterTaskNumber   = "❌ Введи номер задачи."
	MsgWrongTaskNumber   = "❌ Неверный номер. Попробуй снова."
	MsgTaskCompleted     = "✅ Задача завершена: %s"
	MsgCompleteFailed    = "❌ Не удалось завершить задачу. Попробуй ещё раз позже."
	MsgListFailed        = "❌ Не удалось получить список задач. Попробуй ещё раз позже."

	MsgCancelled = "❌ Действие отменено."
)
