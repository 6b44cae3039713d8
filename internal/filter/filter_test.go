package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nutriplan/internal/meal"
)

func candidate(name string, ingredients ...string) meal.PlannedMealItem {
	m := meal.PlannedMealItem{Name: name}
	for _, ing := range ingredients {
		m.Ingredients = append(m.Ingredients, meal.Ingredient{Name: ing, Quantity: "1"})
	}
	return m
}

func TestMatchesDiet_VeganExcludesCheese(t *testing.T) {
	gratin := candidate("Gratin de légumes", "courgette", "fromage râpé", "crème")

	assert.False(t, MatchesDiet(gratin, meal.DietVegan))
	assert.True(t, MatchesDiet(gratin, meal.DietVegetarian))
}

func TestMatchesDiet_VegetarianExcludesMeatAndFish(t *testing.T) {
	bolo := candidate("Spaghetti bolognaise", "pâtes", "boeuf haché", "tomate")
	fish := candidate("Pavé de saumon", "saumon", "citron")
	veggie := candidate("Salade de lentilles", "lentilles", "oignon", "huile d'olive")

	assert.False(t, MatchesDiet(bolo, meal.DietVegetarian))
	assert.False(t, MatchesDiet(fish, meal.DietVegetarian))
	assert.True(t, MatchesDiet(fish, meal.DietPescatarian))
	assert.True(t, MatchesDiet(veggie, meal.DietVegan))
}

func TestMatchesDiet_AccentInsensitive(t *testing.T) {
	m := candidate("Quiche", "Crème fraîche", "Œuf")

	assert.False(t, MatchesDiet(m, meal.DietVegan))
}

func TestMatchesDiet_OmnivoreAdmitsEverything(t *testing.T) {
	m := candidate("Cassoulet", "saucisse", "haricots", "lardons")

	assert.True(t, MatchesDiet(m, meal.DietOmnivore))
}

func TestFreeOfAllergens_HardExclusion(t *testing.T) {
	pancakes := candidate("Pancakes", "farine", "lait", "oeuf")

	assert.False(t, FreeOfAllergens(pancakes, []string{"gluten"}))
	assert.False(t, FreeOfAllergens(pancakes, []string{"lactose"}))
	assert.True(t, FreeOfAllergens(pancakes, []string{"arachide"}))
	assert.True(t, FreeOfAllergens(pancakes, nil))
}

func TestFreeOfAllergens_LiteralTagMatch(t *testing.T) {
	// The tag itself matches even without a keyword-family entry.
	m := candidate("Salade exotique", "fruit du dragon")

	assert.False(t, FreeOfAllergens(m, []string{"dragon"}))
}

func TestFitsMealConvention_OnlyConfidentSavoryRejected(t *testing.T) {
	sweet := candidate("Porridge banane", "flocons d'avoine", "banane", "miel")
	savory := candidate("Omelette au jambon", "oeuf", "jambon")
	ambiguous := candidate("Bol de quinoa", "quinoa")

	assert.True(t, FitsMealConvention(sweet, meal.SlotBreakfast))
	assert.False(t, FitsMealConvention(savory, meal.SlotBreakfast))
	assert.True(t, FitsMealConvention(ambiguous, meal.SlotBreakfast))
	// Dinner is unrestricted.
	assert.True(t, FitsMealConvention(savory, meal.SlotDinner))
}

func TestFitsComplexity_SimpleRejectsSixIngredients(t *testing.T) {
	six := candidate("Buddha bowl", "riz", "avocat", "pois chiches", "carotte", "chou rouge", "sauce tahini")
	four := candidate("Riz sauté", "riz", "oeuf", "petits pois", "sauce soja")

	assert.False(t, FitsComplexity(six, meal.ComplexitySimple))
	assert.True(t, FitsComplexity(four, meal.ComplexitySimple))
	assert.True(t, FitsComplexity(six, meal.ComplexityMixed))
}

func TestApply_ShortCircuitsAndPreservesOrder(t *testing.T) {
	prefs := meal.Preferences{
		Diet:       meal.DietVegan,
		Allergies:  []string{"gluten"},
		Complexity: meal.ComplexityMixed,
	}
	keep := candidate("Compote de pommes", "pomme", "cannelle")
	dairy := candidate("Yaourt nature", "yaourt")
	wheat := candidate("Tartine", "pain", "confiture")
	keepToo := candidate("Salade de fruits", "fraise", "mangue")

	out := Apply([]meal.PlannedMealItem{keep, dairy, wheat, keepToo}, prefs, meal.SlotBreakfast)

	assert.Equal(t, []string{"Compote de pommes", "Salade de fruits"}, []string{out[0].Name, out[1].Name})
	assert.Len(t, out, 2)
}
