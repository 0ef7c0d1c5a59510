package tracker

import (
	"errors"
	"testing"

	"HealthTrackerBot/pkg/models"
)

type fakeWeather struct {
	temp  float64
	err   error
	calls int
}

func (f *fakeWeather) CurrentTemperature(city string) (float64, error) {
	f.calls++
	return f.temp, f.err
}

func staleProfile() *models.UserProfile {
	return &models.UserProfile{
		TelegramID:     1,
		Weight:         70,
		Activity:       30,
		City:           "Москва",
		WaterGoal:      2100,
		CalorieGoal:    1978,
		LoggedWater:    800,
		LoggedCalories: 450.5,
		BurnedCalories: 300,
		LoggedActivity: 45,
		Temperature:    30,
		LastActiveDate: "2020-01-01",
	}
}

func TestRolloverResetsCounters(t *testing.T) {
	weather := &fakeWeather{temp: 20}
	tr := New(weather)
	profile := staleProfile()

	if !tr.RolloverIfNewDay(profile) {
		t.Fatal("expected rollover on stale date")
	}

	if profile.LoggedWater != 0 || profile.LoggedCalories != 0 ||
		profile.BurnedCalories != 0 || profile.LoggedActivity != 0 {
		t.Errorf("counters not reset: %+v", profile)
	}
	if profile.Temperature != 20 {
		t.Errorf("temperature = %v, want 20", profile.Temperature)
	}
	if profile.WaterGoal != 3100 {
		t.Errorf("water goal = %d, want 3100", profile.WaterGoal)
	}
	if profile.LastActiveDate != Today() {
		t.Errorf("last active date = %q, want today", profile.LastActiveDate)
	}
	if profile.CalorieGoal != 1978 {
		t.Errorf("calorie goal changed to %d, rollover must not touch it", profile.CalorieGoal)
	}
}

func TestRolloverIdempotentWithinDay(t *testing.T) {
	weather := &fakeWeather{temp: 20}
	tr := New(weather)
	profile := staleProfile()

	tr.RolloverIfNewDay(profile)
	profile.LoggedWater = 500

	if tr.RolloverIfNewDay(profile) {
		t.Fatal("second rollover on the same day must be a no-op")
	}
	if profile.LoggedWater != 500 {
		t.Errorf("logged water = %d, want 500", profile.LoggedWater)
	}
	if weather.calls != 1 {
		t.Errorf("weather calls = %d, want 1", weather.calls)
	}
}

func TestRolloverWeatherFailureDegradesToZero(t *testing.T) {
	weather := &fakeWeather{err: errors.New("network down")}
	tr := New(weather)
	profile := staleProfile()

	if !tr.RolloverIfNewDay(profile) {
		t.Fatal("expected rollover despite weather failure")
	}
	if profile.Temperature != 0 {
		t.Errorf("temperature = %v, want 0", profile.Temperature)
	}
	// Норма воды пересчитана с нулевой температурой
	if profile.WaterGoal != 3100 {
		t.Errorf("water goal = %d, want 3100", profile.WaterGoal)
	}
	if profile.LastActiveDate != Today() {
		t.Errorf("last active date = %q, want today", profile.LastActiveDate)
	}
}
