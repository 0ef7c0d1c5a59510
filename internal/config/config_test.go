package config

import "testing"

func TestLoad(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-bot-token")
	t.Setenv("OPENWEATHER_API_KEY", "test-weather-key")
	t.Setenv("DIGEST_HOUR", "7")
	t.Setenv("DIGEST_MINUTE", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BotToken != "test-bot-token" {
		t.Errorf("bot token = %q", cfg.BotToken)
	}
	if cfg.WeatherAPIToken != "test-weather-key" {
		t.Errorf("weather token = %q", cfg.WeatherAPIToken)
	}
	if cfg.DigestHour != 7 || cfg.DigestMinute != 30 {
		t.Errorf("digest time = %d:%d, want 7:30", cfg.DigestHour, cfg.DigestMinute)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-bot-token")
	t.Setenv("OPENWEATHER_API_KEY", "test-weather-key")
	t.Setenv("DIGEST_HOUR", "")
	t.Setenv("DIGEST_MINUTE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DigestHour != 9 || cfg.DigestMinute != 0 {
		t.Errorf("digest time = %d:%d, want default 9:00", cfg.DigestHour, cfg.DigestMinute)
	}
}

func TestLoadMissingBotToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("OPENWEATHER_API_KEY", "test-weather-key")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when BOT_TOKEN is missing")
	}
}

func TestLoadMissingWeatherToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-bot-token")
	t.Setenv("OPENWEATHER_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when OPENWEATHER_API_KEY is missing")
	}
}
