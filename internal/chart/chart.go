package chart

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
)

// RenderGoals рисует столбчатую диаграмму выполнения дневных целей:
// вода, калории и активность — текущее значение рядом с целью.
// Возвращает PNG.
func RenderGoals(waterLogged, waterGoal int, caloriesLogged float64, calorieGoal, activityLogged, activityGoal int) ([]byte, error) {
	bars := []chart.Value{
		{Value: float64(waterLogged), Label: "Выпито, мл"},
		{Value: float64(waterGoal), Label: "Цель, мл"},
		{Value: caloriesLogged, Label: "Съедено, ккал"},
		{Value: float64(calorieGoal), Label: "Цель, ккал"},
		{Value: float64(activityLogged), Label: "Актив., мин"},
		{Value: float64(activityGoal), Label: "Цель, мин"},
	}

	maxValue := 0.0
	for _, bar := range bars {
		if bar.Value > maxValue {
			maxValue = bar.Value
		}
	}

	graph := chart.BarChart{
		Title:    "Прогресс по целям дня",
		Width:    1024,
		Height:   512,
		BarWidth: 110,
		Background: chart.Style{
			Padding: chart.Box{Top: 48},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue + 500},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Bytes(), nil
}
