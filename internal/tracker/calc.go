package tracker

// CalorieGoal считает дневную норму калорий по весу (кг), росту (см),
// возрасту и минутам активности. Результат усекается до целого.
func CalorieGoal(weight, height float64, age, activity int) int {
	// Калории за время активности
	activityCalories := 200 + 4.5*float64(activity)
	return int(10*weight + 6.25*height - 5*float64(age) + activityCalories)
}

// WaterGoal считает дневную норму воды в мл с поправкой на температуру
// (выше 25°C поправка составляет 1000 мл). Результат усекается до целого.
func WaterGoal(weight float64, activity int, temperature float64) int {
	hotAdjustment := 0.0
	if temperature > 25 {
		hotAdjustment = 1000
	}
	return int(weight*30 + 500*float64(activity)/30 + 500 - hotAdjustment)
}

// WorkoutBurn — сожженные калории за тренировку.
func WorkoutBurn(minutes int) int {
	return minutes * 10
}

// WorkoutWaterHint — рекомендуемый объем воды (мл) после длительной
// тренировки. Только подсказка, счетчик воды не изменяет.
func WorkoutWaterHint(minutes int) int {
	return 200 * minutes / 30
}

// HotThreshold — температура, после которой бот советует пить больше.
const HotThreshold = 25.0
