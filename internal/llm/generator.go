package llm

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/uuid"

	"nutriplan/internal/meal"
)

//go:embed meal_prompt.md
var mealPrompt string

//go:embed extractor_prompt.md
var extractorPrompt string

var slotLabels = map[meal.Slot]string{
	meal.SlotBreakfast: "petit déjeuner",
	meal.SlotLunch:     "déjeuner",
	meal.SlotSnack:     "collation",
	meal.SlotDinner:    "dîner",
}

// MealRequest carries everything the model needs to invent one meal.
type MealRequest struct {
	Slot           meal.Slot
	TargetCalories float64
	Diet           meal.Diet
	Allergies      []string
	RecentNames    []string
	IsTreatMeal    bool
}

// MealGenerator turns prompts into structured meals through a
// TextGenerator. It is the AI collaborator for both plan generation and
// recipe ingestion.
type MealGenerator struct {
	textGen TextGenerator
}

// NewMealGenerator creates a MealGenerator on top of any TextGenerator.
func NewMealGenerator(textGen TextGenerator) *MealGenerator {
	return &MealGenerator{textGen: textGen}
}

type mealPromptData struct {
	SlotLabel      string
	TargetCalories int
	Diet           string
	Allergies      []string
	RecentNames    []string
	IsTreatMeal    bool
}

// GenerateMeal asks the model for one meal fitting the request. The
// returned item carries the ai-generated provenance and a fresh ID. Any
// model failure or malformed response is returned as an error with no
// partial result.
func (g *MealGenerator) GenerateMeal(ctx context.Context, req MealRequest) (meal.PlannedMealItem, error) {
	diet := string(req.Diet)
	if req.Diet == meal.DietOmnivore {
		diet = ""
	}
	prompt, err := renderPrompt("meal", mealPrompt, mealPromptData{
		SlotLabel:      slotLabels[req.Slot],
		TargetCalories: int(req.TargetCalories),
		Diet:           diet,
		Allergies:      req.Allergies,
		RecentNames:    req.RecentNames,
		IsTreatMeal:    req.IsTreatMeal,
	})
	if err != nil {
		return meal.PlannedMealItem{}, err
	}

	resp, err := g.textGen.GenerateContent(ctx, prompt)
	if err != nil {
		return meal.PlannedMealItem{}, fmt.Errorf("failed to generate meal: %w", err)
	}

	item, err := decodeMeal(resp)
	if err != nil {
		return meal.PlannedMealItem{}, err
	}

	item.ID = uuid.NewString()
	item.Slot = req.Slot
	item.Provenance = meal.ProvenanceAI
	item.IsTreatMeal = req.IsTreatMeal
	return item, nil
}

type extractorPromptData struct {
	Title string
	Text  string
}

// ExtractRecipe turns cleaned web-page text into a structured recipe
// suitable for the curated store.
func (g *MealGenerator) ExtractRecipe(ctx context.Context, title, text string) (meal.PlannedMealItem, error) {
	prompt, err := renderPrompt("extractor", extractorPrompt, extractorPromptData{Title: title, Text: text})
	if err != nil {
		return meal.PlannedMealItem{}, err
	}

	resp, err := g.textGen.GenerateContent(ctx, prompt)
	if err != nil {
		return meal.PlannedMealItem{}, fmt.Errorf("failed to extract recipe: %w", err)
	}

	item, err := decodeMeal(resp)
	if err != nil {
		return meal.PlannedMealItem{}, err
	}

	item.ID = uuid.NewString()
	if item.Slot == "" {
		item.Slot = meal.SlotDinner
	}
	item.Provenance = meal.ProvenanceCurated
	return item, nil
}

func renderPrompt(name, text string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s prompt: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to build %s prompt: %w", name, err)
	}
	return buf.String(), nil
}

// decodeMeal parses the model response into a meal, tolerating markdown
// code fences around the JSON object.
func decodeMeal(resp string) (meal.PlannedMealItem, error) {
	var item meal.PlannedMealItem
	if err := json.Unmarshal([]byte(StripJSONFences(resp)), &item); err != nil {
		return meal.PlannedMealItem{}, fmt.Errorf("failed to parse meal response: %w: %s", err, resp)
	}
	if strings.TrimSpace(item.Name) == "" {
		return meal.PlannedMealItem{}, fmt.Errorf("meal response has no name: %s", resp)
	}
	if item.Nutrition.Calories <= 0 {
		return meal.PlannedMealItem{}, fmt.Errorf("meal response has no calories: %s", resp)
	}
	n := item.Nutrition
	if n.Proteins < 0 || n.Carbs < 0 || n.Fats < 0 || n.Sugar < 0 || n.Sodium < 0 || n.Fiber < 0 {
		return meal.PlannedMealItem{}, fmt.Errorf("meal response has negative nutrition values: %s", resp)
	}
	for _, ing := range item.Ingredients {
		if ing.Calories < 0 {
			return meal.PlannedMealItem{}, fmt.Errorf("meal response has negative ingredient calories: %s", resp)
		}
	}
	if item.Servings <= 0 {
		item.Servings = 1
	}
	return item, nil
}

// StripJSONFences removes a surrounding markdown code fence, if any, and
// returns the inner JSON text.
func StripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
