package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"HealthTrackerBot/internal/bot"
	"HealthTrackerBot/internal/config"
	"HealthTrackerBot/internal/nutrition"
	"HealthTrackerBot/internal/scheduler"
	"HealthTrackerBot/internal/storage"
	"HealthTrackerBot/internal/tracker"
	"HealthTrackerBot/internal/weather"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func monitorStorage(botStorage storage.ProfileStorage) {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		if statsStorage, ok := botStorage.(interface{ GetStats() map[string]interface{} }); ok {
			stats := statsStorage.GetStats()
			log.Printf("Storage stats: %+v", stats)
		}
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация хранилища
	botStorage, err := storage.NewMemoryStorage()
	if err != nil {
		log.Fatalf("Failed to create storage: %v", err)
	}

	go monitorStorage(botStorage)

	// Инициализация бота
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	weatherService := weather.NewWeatherService(cfg.WeatherAPIToken)
	nutritionService := nutrition.NewService()
	dayTracker := tracker.New(weatherService)

	updateHandler := bot.NewUpdateHandler(api, botStorage, dayTracker, weatherService, nutritionService)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := api.GetUpdatesChan(updateConfig)
	go updateHandler.HandleUpdates(updates)

	digest := scheduler.NewScheduler(updateHandler.GetMessageHandler(), botStorage, weatherService)
	if err := digest.StartMorningDigest(cfg.DigestHour, cfg.DigestMinute); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down bot ...")
	api.StopReceivingUpdates()
	digest.Stop()

	log.Println("Bot gracefully stopped")
}
