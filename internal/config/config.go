package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken        string
	WeatherAPIToken string

	// Время утренней сводки (локальное)
	DigestHour   int
	DigestMinute int
}

// Load читает конфигурацию из .env файла и переменных окружения.
// Без токена бота и ключа погодного API запуск невозможен.
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		BotToken:        os.Getenv("BOT_TOKEN"),
		WeatherAPIToken: os.Getenv("OPENWEATHER_API_KEY"),
		DigestHour:      envInt("DIGEST_HOUR", 9),
		DigestMinute:    envInt("DIGEST_MINUTE", 0),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("environment variable BOT_TOKEN is required")
	}
	if cfg.WeatherAPIToken == "" {
		return nil, fmt.Errorf("environment variable OPENWEATHER_API_KEY is required")
	}
	return cfg, nil
}

// loadEnvFile пробует несколько возможных путей до .env
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"./.env",
		"../.env",
		"../../.env",
	}

	for _, path := range possiblePaths {
		if err := godotenv.Load(path); err == nil {
			log.Printf("Loaded .env from: %s", path)
			return
		}
	}
	log.Println("No .env file found, using system environment variables")
}

func envInt(name string, defaultValue int) int {
	if v := os.Getenv(name); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
		log.Printf("Invalid value for %s, using default %d", name, defaultValue)
	}
	return defaultValue
}
