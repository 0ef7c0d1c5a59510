package nutrition

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestService(handler http.Handler) (*Service, *httptest.Server) {
	server := httptest.NewServer(handler)
	service := NewService()
	service.baseURL = server.URL
	return service, server
}

func TestSearch(t *testing.T) {
	service, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("search_terms"); got != "банан спелый" {
			t.Errorf("search_terms = %q, want %q", got, "банан спелый")
		}
		fmt.Fprint(w, `{"products":[{"product_name":"Банан","nutriments":{"energy-kcal_100g":89}}]}`)
	}))
	defer server.Close()

	info, err := service.Search("банан спелый")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if info.Name != "Банан" {
		t.Errorf("name = %q, want Банан", info.Name)
	}
	if info.CaloriesPer100 != 89 {
		t.Errorf("calories = %v, want 89", info.CaloriesPer100)
	}
}

func TestSearchSkipsProductsWithoutCalories(t *testing.T) {
	service, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"products":[{"product_name":"Вода","nutriments":{}},{"product_name":"Сок","nutriments":{"energy-kcal_100g":45.5}}]}`)
	}))
	defer server.Close()

	info, err := service.Search("напиток")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if info.Name != "Сок" || info.CaloriesPer100 != 45.5 {
		t.Errorf("got %+v, want product with calories", info)
	}
}

func TestSearchNotFound(t *testing.T) {
	service, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"products":[]}`)
	}))
	defer server.Close()

	if _, err := service.Search("несуществующий продукт"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSearchUpstreamError(t *testing.T) {
	service, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := service.Search("банан")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want transport error", err)
	}
}
