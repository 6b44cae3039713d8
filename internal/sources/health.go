package sources

import (
	"strings"

	"nutriplan/internal/meal"
)

// RecipeHealthFilter rejects external recipes that are too sugary or too
// salty for a meal plan, or that belong to festive categories that make
// no sense as everyday meals.
type RecipeHealthFilter struct {
	MaxSugarGrams  float64
	MaxSodiumMg    float64
	ExcludedLabels []string
}

// NewRecipeHealthFilter returns the filter with its default thresholds.
func NewRecipeHealthFilter() *RecipeHealthFilter {
	return &RecipeHealthFilter{
		MaxSugarGrams: 35,
		MaxSodiumMg:   2300,
		ExcludedLabels: []string{
			"dessert", "gateau", "gâteau", "aperitif", "apéritif",
			"cocktail", "buffet", "confiserie", "bonbon",
		},
	}
}

// Admit reports whether the recipe may enter the candidate pool. Zero
// sugar or sodium values mean the data is absent and are not penalized.
func (f *RecipeHealthFilter) Admit(m meal.PlannedMealItem) bool {
	if f.MaxSugarGrams > 0 && m.Nutrition.Sugar > f.MaxSugarGrams {
		return false
	}
	if f.MaxSodiumMg > 0 && m.Nutrition.Sodium > f.MaxSodiumMg {
		return false
	}
	text := strings.ToLower(m.Name + " " + m.Description)
	for _, label := range f.ExcludedLabels {
		if strings.Contains(text, label) {
			return false
		}
	}
	return true
}
