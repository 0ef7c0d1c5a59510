package nutrition

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://world.openfoodfacts.org"

// ErrNotFound возвращается, когда продукт не удалось определить.
var ErrNotFound = errors.New("product not found")

// FoodInfo — калорийность продукта по данным OpenFoodFacts.
type FoodInfo struct {
	Name           string
	CaloriesPer100 float64
}

type searchResponse struct {
	Products []struct {
		ProductName string `json:"product_name"`
		Nutriments  struct {
			EnergyKcal100 float64 `json:"energy-kcal_100g"`
		} `json:"nutriments"`
	} `json:"products"`
}

type Service struct {
	baseURL string
	client  *http.Client
}

func NewService() *Service {
	return &Service{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Search ищет продукт по названию и возвращает его калорийность
// на 100 грамм. Если подходящих продуктов нет — ErrNotFound.
func (s *Service) Search(product string) (*FoodInfo, error) {
	requestURL := fmt.Sprintf("%s/cgi/search.pl?action=process&search_terms=%s&json=true&page_size=5",
		s.baseURL, url.QueryEscape(product))

	resp, err := s.client.Get(requestURL)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	// Берем первый продукт с известной калорийностью
	for _, p := range result.Products {
		if p.Nutriments.EnergyKcal100 <= 0 {
			continue
		}
		name := p.ProductName
		if name == "" {
			name = product
		}
		return &FoodInfo{Name: name, CaloriesPer100: p.Nutriments.EnergyKcal100}, nil
	}
	return nil, ErrNotFound
}
