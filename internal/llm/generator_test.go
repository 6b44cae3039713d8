package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutriplan/internal/meal"
)

type mockTextGenerator struct {
	response string
	err      error
	prompts  []string
}

func (m *mockTextGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

const validMealJSON = `{
	"name": "Poulet rôti aux légumes",
	"description": "Un classique du dimanche",
	"prep_time_minutes": 45,
	"servings": 2,
	"nutrition": {"calories": 520, "proteins": 42, "carbs": 30, "fats": 22},
	"ingredients": [{"name": "poulet", "quantity": "200g"}],
	"instructions": ["Préchauffer le four", "Enfourner 40 minutes"]
}`

func TestGenerateMeal_ParsesResponse(t *testing.T) {
	mock := &mockTextGenerator{response: validMealJSON}
	gen := NewMealGenerator(mock)

	item, err := gen.GenerateMeal(context.Background(), MealRequest{
		Slot:           meal.SlotDinner,
		TargetCalories: 500,
		Diet:           meal.DietOmnivore,
		Allergies:      []string{"arachide"},
		RecentNames:    []string{"Gratin dauphinois"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Poulet rôti aux légumes", item.Name)
	assert.Equal(t, meal.SlotDinner, item.Slot)
	assert.Equal(t, meal.ProvenanceAI, item.Provenance)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, 520.0, item.Nutrition.Calories)
}

func TestGenerateMeal_PromptCarriesConstraints(t *testing.T) {
	mock := &mockTextGenerator{response: validMealJSON}
	gen := NewMealGenerator(mock)

	_, err := gen.GenerateMeal(context.Background(), MealRequest{
		Slot:           meal.SlotLunch,
		TargetCalories: 700,
		Diet:           meal.DietVegan,
		Allergies:      []string{"gluten", "soja"},
		RecentNames:    []string{"Curry de lentilles"},
		IsTreatMeal:    true,
	})

	require.NoError(t, err)
	require.Len(t, mock.prompts, 1)
	prompt := mock.prompts[0]
	assert.Contains(t, prompt, "700")
	assert.Contains(t, prompt, "vegan")
	assert.Contains(t, prompt, "gluten, soja")
	assert.Contains(t, prompt, "Curry de lentilles")
	assert.Contains(t, prompt, "repas plaisir")
}

func TestGenerateMeal_FailsCleanlyOnModelError(t *testing.T) {
	mock := &mockTextGenerator{err: errors.New("quota exceeded")}
	gen := NewMealGenerator(mock)

	item, err := gen.GenerateMeal(context.Background(), MealRequest{Slot: meal.SlotSnack, TargetCalories: 200})

	assert.Error(t, err)
	assert.Empty(t, item.Name)
}

func TestGenerateMeal_RejectsMalformedResponse(t *testing.T) {
	cases := map[string]string{
		"not json":             "je ne peux pas répondre",
		"missing name":         `{"nutrition": {"calories": 300}}`,
		"zero calories":        `{"name": "Salade", "nutrition": {"calories": 0}}`,
		"negative proteins":    `{"name": "Salade", "nutrition": {"calories": 300, "proteins": -12}}`,
		"negative fats":        `{"name": "Salade", "nutrition": {"calories": 300, "fats": -3}}`,
		"negative ingredient calories": `{"name": "Salade", "nutrition": {"calories": 300, "proteins": 10},
			"ingredients": [{"name": "laitue", "quantity": "100g", "calories": -40}]}`,
	}
	for label, resp := range cases {
		gen := NewMealGenerator(&mockTextGenerator{response: resp})
		_, err := gen.GenerateMeal(context.Background(), MealRequest{Slot: meal.SlotLunch, TargetCalories: 600})
		assert.Error(t, err, label)
	}
}

func TestGenerateMeal_ToleratesCodeFences(t *testing.T) {
	fenced := "```json\n" + validMealJSON + "\n```"
	gen := NewMealGenerator(&mockTextGenerator{response: fenced})

	item, err := gen.GenerateMeal(context.Background(), MealRequest{Slot: meal.SlotDinner, TargetCalories: 500})

	require.NoError(t, err)
	assert.Equal(t, "Poulet rôti aux légumes", item.Name)
}

func TestExtractRecipe_DefaultsSlotAndProvenance(t *testing.T) {
	gen := NewMealGenerator(&mockTextGenerator{response: validMealJSON})

	item, err := gen.ExtractRecipe(context.Background(), "Poulet rôti", "texte de la page")

	require.NoError(t, err)
	assert.Equal(t, meal.SlotDinner, item.Slot)
	assert.Equal(t, meal.ProvenanceCurated, item.Provenance)
}

func TestStripJSONFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripJSONFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripJSONFences(`{"a":1}`))
	assert.False(t, strings.Contains(StripJSONFences("```\n{}\n```"), "`"))
}
