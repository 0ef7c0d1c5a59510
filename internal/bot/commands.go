package bot

import (
	"fmt"
	"log"

	"HealthTrackerBot/internal/chart"
	"HealthTrackerBot/internal/storage"
	"HealthTrackerBot/internal/tracker"
	"HealthTrackerBot/pkg/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Состояния диалогов
const (
	StateAwaitingWeight       = "awaiting_weight"
	StateAwaitingHeight       = "awaiting_height"
	StateAwaitingAge          = "awaiting_age"
	StateAwaitingActivity     = "awaiting_activity"
	StateAwaitingCity         = "awaiting_city"
	StateAwaitingCalorieGoal  = "awaiting_calorie_goal"
	StateAwaitingFoodQuantity = "awaiting_food_quantity"
)

// Тексты типовых ответов
const (
	replyNeedProfile = "Сперва укажите данные с помощью /set_profile"
	replyError       = "Произошла ошибка при обработке запроса."
	replySetupError  = "Произошла ошибка при обработке запроса. Пожалуйста, попробуйте /set_profile еще раз..."
)

// BotAPI — часть telegram-клиента, используемая обработчиками
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type MessageHandler struct {
	bot     BotAPI
	storage storage.ProfileStorage
}

func NewMessageHandler(bot BotAPI, storage storage.ProfileStorage) *MessageHandler {
	return &MessageHandler{bot: bot, storage: storage}
}

func (h *MessageHandler) sendMessage(chatID int64, text string) error {
	return h.send(chatID, tgbotapi.NewMessage(chatID, text))
}

func (h *MessageHandler) sendMessageWithKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	return h.send(chatID, msg)
}

func (h *MessageHandler) send(chatID int64, msg tgbotapi.Chattable) error {
	sentMsg, err := h.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("send message failed: %w", err)
	}

	h.storage.SetLastMessageID(chatID, sentMsg.MessageID)
	return nil
}

// SendMessage — для внешних вызовов (планировщик утренней сводки)
func (h *MessageHandler) SendMessage(chatID int64, text string) error {
	return h.sendMessage(chatID, text)
}

func (h *MessageHandler) SendStart(chatID int64) {
	h.sendMessage(chatID, "Добро пожаловать! Этот бот помогает рассчитать дневные нормы воды и калорий, а также отслеживать тренировки и питание.")
}

func (h *MessageHandler) SendHelp(chatID int64) {
	h.sendMessage(chatID,
		"/start - Запуск бота;\n"+
			"/help - Информация о командах;\n"+
			"/set_profile - Заполнение профиля пользователя;\n"+
			"/log_water <количество> - Добавить запись о выпитой воде;\n"+
			"/log_food <название продукта> - Записывает калорийность съеденного продукта;\n"+
			"/log_workout <тип тренировки> <время (мин)> - Фиксирует сожженные калории и расход жидкости во время тренировки;\n"+
			"/check_progress - Показывает, сколько воды и калорий потреблено, сожжено и сколько осталось до выполнения цели;\n"+
			"/change_calorie_goal - Изменить количество калорий на день;\n"+
			"/toggle_digest - Включить или выключить утреннюю сводку.")
}

func (h *MessageHandler) SendNeedProfile(chatID int64) {
	h.sendMessage(chatID, replyNeedProfile)
}

func (h *MessageHandler) SendError(chatID int64) {
	h.sendMessage(chatID, replyError)
}

func (h *MessageHandler) SendSetupError(chatID int64) {
	h.sendMessage(chatID, replySetupError)
}

// SendGoalsUpdated отправляет подтверждение с текущими целями. В жару
// добавляется напоминание пить больше воды.
func (h *MessageHandler) SendGoalsUpdated(chatID int64, username string, calorieGoal, waterGoal int, temperature float64) {
	moreWaterInfo := ""
	if temperature > tracker.HotThreshold {
		moreWaterInfo = "\nСегодня жарко, выпейте побольше воды!"
	}

	text := fmt.Sprintf("@%s Ваша информация успешно записана!\n"+
		"Цель по калориям: %d калорий;\n"+
		"Цель по выпитой воде: %d мл.%s",
		username, calorieGoal, waterGoal, moreWaterInfo)

	h.sendMessageWithKeyboard(chatID, text, CreateGoalsKeyboard())
}

// SendProgress отправляет сводку прогресса за день. Ничего не изменяет.
func (h *MessageHandler) SendProgress(chatID int64, username string, profile *models.UserProfile) {
	text := fmt.Sprintf("@%s вот Ваш прогресс:\n"+
		"Жидкость:\n"+
		"  Выпито: %d/%d мл;\n"+
		"  Осталось: %d мл;\n\n"+
		"Калории:\n"+
		"  Потреблено: %.1f/%d ккал;\n"+
		"  Потрачено: %d ккал;\n"+
		"  Баланс: %.1f ккал.",
		username,
		profile.LoggedWater, profile.WaterGoal,
		profile.WaterGoal-profile.LoggedWater,
		profile.LoggedCalories, profile.CalorieGoal,
		profile.BurnedCalories,
		profile.LoggedCalories-float64(profile.BurnedCalories))

	h.sendMessageWithKeyboard(chatID, text, CreateGoalsKeyboard())
}

// SendGoalsChart рисует и отправляет график выполнения целей
func (h *MessageHandler) SendGoalsChart(chatID int64, profile *models.UserProfile) {
	image, err := chart.RenderGoals(
		profile.LoggedWater, profile.WaterGoal,
		profile.LoggedCalories, profile.CalorieGoal,
		profile.LoggedActivity, profile.Activity,
	)
	if err != nil {
		log.Printf("Error rendering goals chart: %v", err)
		h.SendError(chatID)
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "goals.png", Bytes: image})
	if _, err := h.bot.Send(photo); err != nil {
		log.Printf("Error sending goals chart: %v", err)
	}
}
