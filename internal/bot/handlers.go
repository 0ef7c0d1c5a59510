package bot

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"HealthTrackerBot/internal/nutrition"
	"HealthTrackerBot/internal/storage"
	"HealthTrackerBot/internal/tracker"
	"HealthTrackerBot/pkg/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// NutritionProvider ищет калорийность продукта по названию
type NutritionProvider interface {
	Search(product string) (*nutrition.FoodInfo, error)
}

type UpdateHandler struct {
	bot        BotAPI
	storage    storage.ProfileStorage
	tracker    *tracker.Tracker
	weather    tracker.TemperatureProvider
	nutrition  NutritionProvider
	msgHandler *MessageHandler
}

func NewUpdateHandler(bot BotAPI, storage storage.ProfileStorage, dayTracker *tracker.Tracker, weather tracker.TemperatureProvider, nutrition NutritionProvider) *UpdateHandler {
	return &UpdateHandler{
		bot:        bot,
		storage:    storage,
		tracker:    dayTracker,
		weather:    weather,
		nutrition:  nutrition,
		msgHandler: NewMessageHandler(bot, storage),
	}
}

func (h *UpdateHandler) GetMessageHandler() *MessageHandler {
	return h.msgHandler
}

func (h *UpdateHandler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.CallbackQuery != nil {
			h.handleCallback(update.CallbackQuery)
			continue
		}

		if update.Message == nil || update.Message.From == nil || update.Message.From.IsBot {
			continue
		}

		chatID := update.Message.Chat.ID
		log.Printf("[%d] %s: %s", chatID, update.Message.From.UserName, update.Message.Text)

		// Ленивый переход через границу суток: выполняется до любой
		// логики команд, только для пользователей с профилем
		if profile, ok := h.storage.GetProfile(chatID); ok {
			if h.tracker.RolloverIfNewDay(profile) {
				log.Printf("[%d] daily counters reset", chatID)
			}
		}

		if update.Message.IsCommand() {
			h.handleCommand(update.Message)
			continue
		}

		if session, ok := h.storage.GetSession(chatID); ok && session.State != "" {
			h.handleSessionInput(update.Message, session)
			continue
		}

		h.msgHandler.sendMessage(chatID, "Используйте /help для списка команд")
	}
}

func (h *UpdateHandler) handleCommand(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		h.msgHandler.SendStart(chatID)

	case "help":
		h.msgHandler.SendHelp(chatID)

	case "set_profile":
		h.storage.SetSession(chatID, models.Session{State: StateAwaitingWeight})
		h.msgHandler.sendMessage(chatID, "Введите ваш вес (в кг):")

	case "log_water":
		h.handleLogWater(msg)

	case "log_food":
		h.handleLogFood(msg)

	case "log_workout":
		h.handleLogWorkout(msg)

	case "check_progress":
		profile, ok := h.storage.GetProfile(chatID)
		if !ok {
			h.msgHandler.SendNeedProfile(chatID)
			return
		}
		h.msgHandler.SendProgress(chatID, msg.From.UserName, profile)

	case "change_calorie_goal":
		h.startCalorieGoalDialog(chatID)

	case "toggle_digest":
		profile, ok := h.storage.GetProfile(chatID)
		if !ok {
			h.msgHandler.SendNeedProfile(chatID)
			return
		}
		profile.MorningDigest = !profile.MorningDigest
		status := "выключена"
		if profile.MorningDigest {
			status = "включена"
		}
		h.msgHandler.sendMessage(chatID, fmt.Sprintf("Утренняя сводка %s.", status))

	default:
		h.msgHandler.sendMessage(chatID, "Неизвестная команда. Используйте /help для списка команд")
	}
}

// handleLogWater добавляет выпитую воду из аргумента команды
func (h *UpdateHandler) handleLogWater(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	profile, ok := h.storage.GetProfile(chatID)
	if !ok {
		h.msgHandler.SendNeedProfile(chatID)
		return
	}

	args := strings.Fields(msg.CommandArguments())
	if len(args) == 0 {
		h.msgHandler.SendError(chatID)
		return
	}
	amount, err := strconv.Atoi(args[0])
	if err != nil {
		h.msgHandler.SendError(chatID)
		return
	}

	profile.LoggedWater += amount
	waterLeft := profile.WaterGoal - profile.LoggedWater
	h.msgHandler.sendMessage(chatID, fmt.Sprintf(
		"Выпитая вода записана.\n"+
			"Выпито: %d из %d мл\n"+
			"Осталось выпить: %d мл.",
		profile.LoggedWater, profile.WaterGoal, waterLeft))
}

// handleLogFood — первый шаг записи еды: поиск калорийности продукта
// и запрос количества грамм
func (h *UpdateHandler) handleLogFood(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if _, ok := h.storage.GetProfile(chatID); !ok {
		h.msgHandler.SendNeedProfile(chatID)
		return
	}

	product := strings.TrimSpace(msg.CommandArguments())
	if product == "" {
		h.msgHandler.SendError(chatID)
		return
	}

	foodInfo, err := h.nutrition.Search(product)
	if errors.Is(err, nutrition.ErrNotFound) {
		h.msgHandler.sendMessage(chatID, "Не удалось определить продукт.")
		return
	}
	if err != nil {
		log.Printf("[%d] food lookup failed: %v", chatID, err)
		h.msgHandler.SendError(chatID)
		return
	}

	h.storage.SetSession(chatID, models.Session{
		State:              StateAwaitingFoodQuantity,
		FoodName:           foodInfo.Name,
		FoodCaloriesPer100: foodInfo.CaloriesPer100,
	})
	h.msgHandler.sendMessage(chatID, fmt.Sprintf(
		"%s - %.1f ккал на 100г. Сколько грамм вы съели?",
		foodInfo.Name, foodInfo.CaloriesPer100))
}

// handleLogWorkout фиксирует тренировку: тип и длительность в минутах
func (h *UpdateHandler) handleLogWorkout(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	profile, ok := h.storage.GetProfile(chatID)
	if !ok {
		h.msgHandler.SendNeedProfile(chatID)
		return
	}

	args := strings.Fields(msg.CommandArguments())
	if len(args) < 2 {
		h.msgHandler.SendError(chatID)
		return
	}
	activityType := args[0]
	minutes, err := strconv.Atoi(args[1])
	if err != nil {
		h.msgHandler.SendError(chatID)
		return
	}

	burned := tracker.WorkoutBurn(minutes)
	profile.BurnedCalories += burned
	profile.LoggedActivity += minutes

	// После длинной тренировки советуем восполнить воду. Счетчик воды
	// при этом не меняется.
	optionalInfo := ""
	if minutes > 30 {
		optionalInfo = fmt.Sprintf(" Дополнительно: выпейте %d мл воды.", tracker.WorkoutWaterHint(minutes))
	}

	h.msgHandler.sendMessage(chatID, fmt.Sprintf(
		"%s %d минут — %d ккал.%s", activityType, minutes, burned, optionalInfo))
}

func (h *UpdateHandler) startCalorieGoalDialog(chatID int64) {
	if _, ok := h.storage.GetProfile(chatID); !ok {
		h.msgHandler.SendNeedProfile(chatID)
		return
	}
	h.storage.SetSession(chatID, models.Session{State: StateAwaitingCalorieGoal})
	h.msgHandler.sendMessage(chatID, "Укажите новое количество калорий на день:")
}

// handleSessionInput обрабатывает ответ пользователя на текущий шаг
// диалога. Ошибка разбора прерывает диалог целиком.
func (h *UpdateHandler) handleSessionInput(msg *tgbotapi.Message, session models.Session) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	switch session.State {
	case StateAwaitingWeight:
		weight, err := strconv.ParseFloat(text, 64)
		if err != nil {
			h.abortSetup(chatID)
			return
		}
		session.Weight = weight
		session.State = StateAwaitingHeight
		h.storage.SetSession(chatID, session)
		h.msgHandler.sendMessage(chatID, "Введите ваш рост (в см):")

	case StateAwaitingHeight:
		height, err := strconv.ParseFloat(text, 64)
		if err != nil {
			h.abortSetup(chatID)
			return
		}
		session.Height = height
		session.State = StateAwaitingAge
		h.storage.SetSession(chatID, session)
		h.msgHandler.sendMessage(chatID, "Введите ваш возраст:")

	case StateAwaitingAge:
		age, err := strconv.Atoi(text)
		if err != nil {
			h.abortSetup(chatID)
			return
		}
		session.Age = age
		session.State = StateAwaitingActivity
		h.storage.SetSession(chatID, session)
		h.msgHandler.sendMessage(chatID, "Сколько минут активности у вас в день?")

	case StateAwaitingActivity:
		activity, err := strconv.Atoi(text)
		if err != nil {
			h.abortSetup(chatID)
			return
		}
		session.Activity = activity
		session.State = StateAwaitingCity
		h.storage.SetSession(chatID, session)
		h.msgHandler.sendMessage(chatID, "В каком городе вы находитесь?")

	case StateAwaitingCity:
		h.completeProfileSetup(msg, session, text)

	case StateAwaitingCalorieGoal:
		h.completeCalorieGoalChange(msg, text)

	case StateAwaitingFoodQuantity:
		h.completeFoodLog(msg, session, text)

	default:
		h.storage.ClearSession(chatID)
		h.msgHandler.SendError(chatID)
	}
}

// completeProfileSetup — финальный шаг анкеты: запрос температуры,
// расчет целей и создание профиля
func (h *UpdateHandler) completeProfileSetup(msg *tgbotapi.Message, session models.Session, city string) {
	chatID := msg.Chat.ID

	temperature, err := h.weather.CurrentTemperature(city)
	if err != nil {
		log.Printf("[%d] temperature lookup failed for %q: %v", chatID, city, err)
		h.abortSetup(chatID)
		return
	}

	calorieGoal := tracker.CalorieGoal(session.Weight, session.Height, session.Age, session.Activity)
	waterGoal := tracker.WaterGoal(session.Weight, session.Activity, temperature)

	// Новый профиль перезаписывает существующий, счетчики обнуляются
	profile := &models.UserProfile{
		TelegramID:     chatID,
		Weight:         session.Weight,
		Height:         session.Height,
		Age:            session.Age,
		Activity:       session.Activity,
		City:           city,
		WaterGoal:      waterGoal,
		CalorieGoal:    calorieGoal,
		Temperature:    temperature,
		LastActiveDate: tracker.Today(),
		MorningDigest:  true,
	}
	h.storage.SetProfile(profile)
	h.storage.ClearSession(chatID)

	h.msgHandler.SendGoalsUpdated(chatID, msg.From.UserName, calorieGoal, waterGoal, temperature)
}

func (h *UpdateHandler) completeCalorieGoalChange(msg *tgbotapi.Message, text string) {
	chatID := msg.Chat.ID
	defer h.storage.ClearSession(chatID)

	profile, ok := h.storage.GetProfile(chatID)
	if !ok {
		h.msgHandler.SendNeedProfile(chatID)
		return
	}

	calorieGoal, err := strconv.Atoi(text)
	if err != nil {
		h.msgHandler.SendError(chatID)
		return
	}

	profile.CalorieGoal = calorieGoal
	h.msgHandler.SendGoalsUpdated(chatID, msg.From.UserName, profile.CalorieGoal, profile.WaterGoal, profile.Temperature)
}

// completeFoodLog — второй шаг записи еды: количество грамм
func (h *UpdateHandler) completeFoodLog(msg *tgbotapi.Message, session models.Session, text string) {
	chatID := msg.Chat.ID
	defer h.storage.ClearSession(chatID)

	profile, ok := h.storage.GetProfile(chatID)
	if !ok {
		h.msgHandler.SendNeedProfile(chatID)
		return
	}

	grams, err := strconv.Atoi(text)
	if err != nil {
		h.msgHandler.SendError(chatID)
		return
	}

	// Дробная часть сохраняется, округление только при выводе
	newCalories := session.FoodCaloriesPer100 * float64(grams) / 100
	profile.LoggedCalories += newCalories

	h.msgHandler.sendMessage(chatID, fmt.Sprintf(
		"Потребленные калории записаны: %.1f ккал.\n"+
			"Калорий за день: %.1f из %d ккал\n"+
			"Баланс: %.1f ккал.",
		newCalories, profile.LoggedCalories, profile.CalorieGoal,
		profile.LoggedCalories-float64(profile.BurnedCalories)))
}

func (h *UpdateHandler) abortSetup(chatID int64) {
	h.storage.ClearSession(chatID)
	h.msgHandler.SendSetupError(chatID)
}

// handleCallback — нажатия инлайн-кнопок
func (h *UpdateHandler) handleCallback(query *tgbotapi.CallbackQuery) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		log.Printf("Error answering callback query: %v", err)
	}

	chatID := query.From.ID

	switch query.Data {
	case CallbackChangeCalorie:
		h.startCalorieGoalDialog(chatID)

	case CallbackShowGoals:
		profile, ok := h.storage.GetProfile(chatID)
		if !ok {
			h.msgHandler.SendNeedProfile(chatID)
			return
		}
		h.msgHandler.SendGoalsChart(chatID, profile)
	}
}
