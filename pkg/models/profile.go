package models

// UserProfile хранит данные пользователя, его цели и счетчики за день.
// Создается только после полного прохождения анкеты /set_profile.
type UserProfile struct {
	TelegramID int64

	// Анкетные данные
	Weight   float64 // кг
	Height   float64 // см
	Age      int
	Activity int // минут активности в день
	City     string

	// Рассчитанные цели
	WaterGoal   int // мл
	CalorieGoal int // ккал

	// Счетчики за день, сбрасываются при смене даты
	LoggedWater    int     // мл
	LoggedCalories float64 // ккал, может быть дробным
	BurnedCalories int     // ккал
	LoggedActivity int     // минут

	Temperature    float64 // последняя известная температура в городе, °C
	LastActiveDate string  // ISO-дата последней активности, без времени
	MorningDigest  bool    // утренняя сводка включена
}
