package scheduler

import (
	"fmt"
	"log"

	"HealthTrackerBot/internal/storage"
	"HealthTrackerBot/internal/weather"

	"github.com/robfig/cron/v3"
)

// MessageSender отправляет текстовое сообщение пользователю
type MessageSender interface {
	SendMessage(chatID int64, text string) error
}

// WeatherProvider отдает данные о погоде для сводки
type WeatherProvider interface {
	GetWeatherData(city string) (*weather.WeatherData, error)
	FormatWeatherMessage(data *weather.WeatherData) string
}

// Scheduler рассылает утреннюю сводку: погода и цели на день.
type Scheduler struct {
	sender  MessageSender
	storage storage.ProfileStorage
	weather WeatherProvider
	cron    *cron.Cron
}

func NewScheduler(sender MessageSender, storage storage.ProfileStorage, weather WeatherProvider) *Scheduler {
	return &Scheduler{
		sender:  sender,
		storage: storage,
		weather: weather,
	}
}

// StartMorningDigest запускает ежедневную рассылку в указанное время
func (s *Scheduler) StartMorningDigest(hour, minute int) error {
	s.cron = cron.New()

	spec := fmt.Sprintf("%d %d * * *", minute, hour)
	if _, err := s.cron.AddFunc(spec, s.SendDigestToAllUsers); err != nil {
		return fmt.Errorf("failed to schedule morning digest: %w", err)
	}

	s.cron.Start()
	log.Printf("Morning digest scheduled at %02d:%02d", hour, minute)
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// SendDigestToAllUsers отправляет сводку всем пользователям с включенной
// рассылкой. Ошибка по одному пользователю не прерывает остальных.
func (s *Scheduler) SendDigestToAllUsers() {
	for _, profile := range s.storage.AllProfiles() {
		if !profile.MorningDigest || profile.City == "" {
			continue
		}

		weatherData, err := s.weather.GetWeatherData(profile.City)
		if err != nil {
			log.Printf("Error getting weather data for user %d: %v", profile.TelegramID, err)
			continue
		}

		text := fmt.Sprintf("🌅 Доброе утро! Вот сводка на сегодня:\n\n%s\n\n"+
			"Цели на день:\n"+
			"  Вода: %d мл;\n"+
			"  Калории: %d ккал;\n"+
			"  Активность: %d минут.",
			s.weather.FormatWeatherMessage(weatherData),
			profile.WaterGoal, profile.CalorieGoal, profile.Activity)

		if err := s.sender.SendMessage(profile.TelegramID, text); err != nil {
			log.Printf("Error sending digest to user %d: %v", profile.TelegramID, err)
		}
	}
}
