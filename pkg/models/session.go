package models

// Session — временное состояние диалога с пользователем: текущий шаг
// анкеты или ожидание одиночного значения. Удаляется по завершении
// диалога или при ошибке ввода.
type Session struct {
	State string

	// Частично собранные ответы анкеты
	Weight   float64
	Height   float64
	Age      int
	Activity int

	// Ожидание количества съеденных грамм
	FoodName           string
	FoodCaloriesPer100 float64
}
