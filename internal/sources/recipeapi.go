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

const spoonacularURL = "https://api.spoonacular.com/recipes/complexSearch"

// SpoonacularClient searches the Spoonacular recipe API. Without an API
// key the client is unconfigured and every search returns an empty list.
type SpoonacularClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewSpoonacularClient creates the client. apiKey may be empty.
func NewSpoonacularClient(apiKey string) *SpoonacularClient {
	return &SpoonacularClient{
		apiKey:  apiKey,
		baseURL: spoonacularURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Configured reports whether the client holds an API credential.
func (c *SpoonacularClient) Configured() bool {
	return c.apiKey != ""
}

type spoonacularResponse struct {
	Results []struct {
		Title          string `json:"title"`
		ReadyInMinutes int    `json:"readyInMinutes"`
		Servings       int    `json:"servings"`
		Summary        string `json:"summary"`
		Nutrition      struct {
			Nutrients []struct {
				Name   string  `json:"name"`
				Amount float64 `json:"amount"`
			} `json:"nutrients"`
		} `json:"nutrition"`
		ExtendedIngredients []struct {
			Name   string  `json:"name"`
			Amount float64 `json:"amount"`
			Unit   string  `json:"unit"`
		} `json:"extendedIngredients"`
		AnalyzedInstructions []struct {
			Steps []struct {
				Step string `json:"step"`
			} `json:"steps"`
		} `json:"analyzedInstructions"`
	} `json:"results"`
}

// Search queries the API. dietTag and maxPrepMinutes are optional; zero
// values leave them unset.
func (c *SpoonacularClient) Search(ctx context.Context, query, dietTag string, maxPrepMinutes, limit int) ([]meal.PlannedMealItem, error) {
	if !c.Configured() {
		return nil, nil
	}

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("query", query)
	params.Set("number", fmt.Sprintf("%d", limit))
	params.Set("addRecipeNutrition", "true")
	params.Set("instructionsRequired", "true")
	if dietTag != "" && dietTag != string(meal.DietOmnivore) {
		params.Set("diet", dietTag)
	}
	if maxPrepMinutes > 0 {
		params.Set("maxReadyTime", fmt.Sprintf("%d", maxPrepMinutes))
	}

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
		return nil, fmt.Errorf("spoonacular api error: status=%d body=%s", resp.StatusCode, string(bodyBytes))
	}

	var apiResp spoonacularResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	var items []meal.PlannedMealItem
	for _, r := range apiResp.Results {
		if r.Title == "" {
			continue
		}
		item := meal.PlannedMealItem{
			Name:            r.Title,
			Description:     r.Summary,
			PrepTimeMinutes: r.ReadyInMinutes,
			Servings:        r.Servings,
			Provenance:      meal.ProvenanceExternal,
		}
		for _, n := range r.Nutrition.Nutrients {
			switch n.Name {
			case "Calories":
				item.Nutrition.Calories = n.Amount
			case "Protein":
				item.Nutrition.Proteins = n.Amount
			case "Carbohydrates":
				item.Nutrition.Carbs = n.Amount
			case "Fat":
				item.Nutrition.Fats = n.Amount
			case "Sugar":
				item.Nutrition.Sugar = n.Amount
			case "Sodium":
				item.Nutrition.Sodium = n.Amount
			case "Fiber":
				item.Nutrition.Fiber = n.Amount
			}
		}
		for _, ing := range r.ExtendedIngredients {
			item.Ingredients = append(item.Ingredients, meal.Ingredient{
				Name:     ing.Name,
				Quantity: fmt.Sprintf("%g %s", ing.Amount, ing.Unit),
			})
		}
		for _, inst := range r.AnalyzedInstructions {
			for _, step := range inst.Steps {
				item.Instructions = append(item.Instructions, step.Step)
			}
		}
		items = append(items, item)
	}
	return items, nil
}
