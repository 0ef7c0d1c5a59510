package tracker

import (
	"log"
	"time"

	"HealthTrackerBot/pkg/models"
)

const dateLayout = "2006-01-02"

// Today возвращает текущую календарную дату без времени.
func Today() string {
	return time.Now().Format(dateLayout)
}

// TemperatureProvider отдает текущую температуру в городе.
type TemperatureProvider interface {
	CurrentTemperature(city string) (float64, error)
}

// Tracker отвечает за переход счетчиков через границу суток.
type Tracker struct {
	weather TemperatureProvider
}

func New(weather TemperatureProvider) *Tracker {
	return &Tracker{weather: weather}
}

// RolloverIfNewDay сбрасывает дневные счетчики профиля, если с последней
// активности наступил новый день, и пересчитывает норму воды по свежей
// температуре. Вызывается перед обработкой каждого сообщения; в пределах
// одного дня повторный вызов ничего не меняет. Возвращает true, если
// сброс произошел.
func (t *Tracker) RolloverIfNewDay(profile *models.UserProfile) bool {
	today := Today()
	if profile.LastActiveDate == today {
		return false
	}

	profile.LoggedWater = 0
	profile.LoggedCalories = 0
	profile.BurnedCalories = 0
	profile.LoggedActivity = 0

	temperature, err := t.weather.CurrentTemperature(profile.City)
	if err != nil {
		log.Printf("Temperature lookup failed for %q, using 0: %v", profile.City, err)
		temperature = 0
	}
	profile.Temperature = temperature
	profile.WaterGoal = WaterGoal(profile.Weight, profile.Activity, temperature)
	profile.LastActiveDate = today

	return true
}
