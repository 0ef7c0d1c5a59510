package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Данные callback-кнопок
const (
	CallbackChangeCalorie = "change_calorie"
	CallbackShowGoals     = "show_goals"
)

// CreateGoalsKeyboard — инлайн-кнопки под сообщениями о целях
func CreateGoalsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Изменить цель по калориям", CallbackChangeCalorie),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Показать график выполнения цели", CallbackShowGoals),
		),
	)
}
