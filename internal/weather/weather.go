package weather

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org"

// WeatherData — структура под JSON-ответ OpenWeatherMap
type WeatherData struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		Humidity  int     `json:"humidity"`
		FeelsLike float64 `json:"feels_like"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Main        string `json:"main"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// geoEntry — один результат геокодинга города
type geoEntry struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// apiError — ответ OpenWeatherMap при ошибке (например, неверный ключ)
type apiError struct {
	Cod     json.Number `json:"cod"`
	Message string      `json:"message"`
}

type WeatherService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewWeatherService(apiKey string) *WeatherService {
	return &WeatherService{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (ws *WeatherService) getBody(requestURL string) ([]byte, error) {
	resp, err := ws.client.Get(requestURL)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

// CurrentTemperature возвращает текущую температуру в городе (°C):
// сначала геокодинг названия города, затем запрос погоды по координатам.
// При ошибке авторизации на стороне API возвращает 0.0 без ошибки.
func (ws *WeatherService) CurrentTemperature(city string) (float64, error) {
	geoURL := fmt.Sprintf("%s/geo/1.0/direct?q=%s&limit=1&appid=%s",
		ws.baseURL, url.QueryEscape(city), ws.apiKey)

	body, err := ws.getBody(geoURL)
	if err != nil {
		return 0, err
	}

	// Нормальный ответ геокодинга — массив; объект означает ошибку API
	var entries []geoEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		var apiErr apiError
		if jsonErr := json.Unmarshal(body, &apiErr); jsonErr == nil && apiErr.Cod.String() == "401" {
			return 0.0, nil
		}
		return 0, fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	if len(entries) == 0 {
		return 0, fmt.Errorf("city %q not found", city)
	}

	weatherURL := fmt.Sprintf("%s/data/2.5/weather?lat=%f&lon=%f&units=metric&appid=%s",
		ws.baseURL, entries[0].Lat, entries[0].Lon, ws.apiKey)

	body, err = ws.getBody(weatherURL)
	if err != nil {
		return 0, err
	}

	var weather WeatherData
	if err := json.Unmarshal(body, &weather); err != nil {
		return 0, fmt.Errorf("failed to decode weather response: %w", err)
	}
	return weather.Main.Temp, nil
}

// GetWeatherData получает полные данные о погоде для утренней сводки
func (ws *WeatherService) GetWeatherData(city string) (*WeatherData, error) {
	requestURL := fmt.Sprintf("%s/data/2.5/weather?q=%s&units=metric&lang=ru&appid=%s",
		ws.baseURL, url.QueryEscape(city), ws.apiKey)

	body, err := ws.getBody(requestURL)
	if err != nil {
		return nil, err
	}

	var weather WeatherData
	if err := json.Unmarshal(body, &weather); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}
	if weather.Name == "" {
		var apiErr apiError
		if jsonErr := json.Unmarshal(body, &apiErr); jsonErr == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("weather api error: %s", apiErr.Message)
		}
	}
	return &weather, nil
}

// FormatWeatherMessage форматирует данные о погоде для сообщения
func (ws *WeatherService) FormatWeatherMessage(weather *WeatherData) string {
	description := "Нет данных"
	if len(weather.Weather) > 0 {
		description = weather.Weather[0].Description
	}

	return fmt.Sprintf(`%s Погода в %s:
🌡️ Температура: %.1f°C (ощущается как %.1f°C)
💧 Влажность: %d%%
🌬️ Ветер: %.1f м/с
%s`, ws.weatherEmoji(weather), weather.Name, weather.Main.Temp,
		weather.Main.FeelsLike, weather.Main.Humidity, weather.Wind.Speed,
		description)
}

// weatherEmoji возвращает эмодзи по погодным условиям
func (ws *WeatherService) weatherEmoji(weather *WeatherData) string {
	if len(weather.Weather) == 0 {
		return "🌤️"
	}

	switch weather.Weather[0].Main {
	case "Clear":
		return "☀️"
	case "Clouds":
		return "☁️"
	case "Rain", "Drizzle":
		return "🌧️"
	case "Thunderstorm":
		return "⛈️"
	case "Snow":
		return "❄️"
	case "Mist", "Fog":
		return "🌫️"
	default:
		return "🌤️"
	}
}
