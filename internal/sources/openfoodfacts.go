package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"nutriplan/internal/meal"
)

const openFoodFactsURL = "https://world.openfoodfacts.org/cgi/search.pl"

// OpenFoodFactsClient searches the Open Food Facts database for simple
// food items. Results carry per-100g nutrition which is scaled to a
// typical portion before entering the candidate pool.
type OpenFoodFactsClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewOpenFoodFactsClient creates a client against the public API.
func NewOpenFoodFactsClient() *OpenFoodFactsClient {
	return &OpenFoodFactsClient{
		baseURL: openFoodFactsURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type offResponse struct {
	Products []struct {
		ProductNameFR string `json:"product_name_fr"`
		ProductName   string `json:"product_name"`
		Nutriments    struct {
			EnergyKcal100g float64 `json:"energy-kcal_100g"`
			Proteins100g   float64 `json:"proteins_100g"`
			Carbs100g      float64 `json:"carbohydrates_100g"`
			Fat100g        float64 `json:"fat_100g"`
			Sugars100g     float64 `json:"sugars_100g"`
			Sodium100g     float64 `json:"sodium_100g"`
			Fiber100g      float64 `json:"fiber_100g"`
		} `json:"nutriments"`
	} `json:"products"`
}

// Search queries the database and returns portion-scaled candidates.
func (c *OpenFoodFactsClient) Search(ctx context.Context, query string, limit int) ([]meal.PlannedMealItem, error) {
	params := url.Values{}
	params.Set("search_terms", query)
	params.Set("search_simple", "1")
	params.Set("action", "process")
	params.Set("json", "1")
	params.Set("page_size", fmt.Sprintf("%d", limit))
	params.Set("fields", "product_name,product_name_fr,nutriments")

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("open food facts error: status=%d body=%s", resp.StatusCode, string(bodyBytes))
	}

	var offResp offResponse
	if err := json.NewDecoder(resp.Body).Decode(&offResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	var items []meal.PlannedMealItem
	for _, p := range offResp.Products {
		name := p.ProductNameFR
		if name == "" {
			name = p.ProductName
		}
		if name == "" || p.Nutriments.EnergyKcal100g <= 0 {
			continue
		}

		portion := PortionFor(name)
		factor := portion / 100

		per100 := meal.NutritionInfo{
			Calories: p.Nutriments.EnergyKcal100g,
			Proteins: p.Nutriments.Proteins100g,
			Carbs:    p.Nutriments.Carbs100g,
			Fats:     p.Nutriments.Fat100g,
			Sugar:    p.Nutriments.Sugars100g,
			Sodium:   p.Nutriments.Sodium100g * 1000,
			Fiber:    p.Nutriments.Fiber100g,
		}

		items = append(items, meal.PlannedMealItem{
			Name:            name,
			Description:     fmt.Sprintf("Portion de %.0fg", portion),
			Servings:        1,
			Nutrition:       per100.Scale(factor),
			CaloriesPer100g: p.Nutriments.EnergyKcal100g,
			Ingredients: []meal.Ingredient{
				{Name: name, Quantity: fmt.Sprintf("%.0fg", portion)},
			},
			Provenance: meal.ProvenanceFoodDB,
		})
		if len(items) >= limit {
			break
		}
	}
	return items, nil
}
