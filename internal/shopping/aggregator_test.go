package shopping

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutriplan/internal/meal"
	"nutriplan/internal/planner"
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

func samplePlan() *planner.WeeklyPlan {
	return &planner.WeeklyPlan{
		ID:           "plan-1",
		DurationDays: 1,
		Items: []meal.PlannedMealItem{
			{
				Day: 0, Slot: meal.SlotLunch, Name: "Poulet rôti",
				Ingredients: []meal.Ingredient{
					{Name: "poulet", Quantity: "150g"},
					{Name: "Courgette", Quantity: "100g"},
				},
			},
			{
				Day: 0, Slot: meal.SlotDinner, Name: "Gratin de courgettes",
				Ingredients: []meal.Ingredient{
					{Name: "courgette ", Quantity: "200g"},
					{Name: "crème", Quantity: "10cl"},
				},
			},
		},
	}
}

const validListJSON = `{
	"categories": [
		{"name": "Viandes et poissons", "items": [{"name": "poulet", "quantity": "150g", "estimated_cost": 3.2}]},
		{"name": "Fruits et légumes", "items": [{"name": "courgette", "quantity": "300g", "estimated_cost": 1.1}]}
	]
}`

func TestBuildList_CategorizedPath(t *testing.T) {
	mock := &mockTextGenerator{response: validListJSON}
	agg := NewAggregator(mock, nil)

	list := agg.BuildList(context.Background(), samplePlan(), 2)

	require.NotNil(t, list)
	assert.True(t, list.Categorized)
	assert.Len(t, list.Categories, 2)
	assert.InDelta(t, 4.3, list.EstimatedCost, 0.001)
	assert.InDelta(t, 3.2, list.Categories[0].Subtotal, 0.001)
	assert.Equal(t, "plan-1", list.MealPlanID)
	assert.Equal(t, 2, list.Servings)
	assert.NotEmpty(t, list.ID)

	require.Len(t, mock.prompts, 1)
	assert.Contains(t, mock.prompts[0], "Poulet rôti")
	assert.Contains(t, mock.prompts[0], "poulet (150g)")
}

func TestBuildList_FallsBackOnModelError(t *testing.T) {
	agg := NewAggregator(&mockTextGenerator{err: errors.New("quota exceeded")}, nil)

	list := agg.BuildList(context.Background(), samplePlan(), 1)

	require.NotNil(t, list)
	assert.False(t, list.Categorized)
	require.Len(t, list.Categories, 1)
	assert.Equal(t, "Divers", list.Categories[0].Name)
	assert.NotEmpty(t, list.Tip)
	assert.Zero(t, list.EstimatedCost)
}

func TestBuildList_FallsBackOnMalformedResponse(t *testing.T) {
	agg := NewAggregator(&mockTextGenerator{response: "désolé, je ne peux pas"}, nil)

	list := agg.BuildList(context.Background(), samplePlan(), 1)

	assert.False(t, list.Categorized)
}

func TestLocalList_DeduplicatesByNormalizedName(t *testing.T) {
	agg := NewAggregator(nil, nil)

	list := agg.BuildList(context.Background(), samplePlan(), 1)

	require.Len(t, list.Categories, 1)
	byName := make(map[string]Item)
	for _, item := range list.Categories[0].Items {
		byName[item.Name] = item
	}
	// "Courgette" and "courgette " collapse into one entry.
	require.Len(t, byName, 3)
	courgette, ok := byName["Courgette"]
	require.True(t, ok)
	assert.Equal(t, 2, courgette.Occurrences)
	assert.Equal(t, "100g + 200g (x2)", courgette.Quantity)
	assert.Equal(t, 1, byName["poulet"].Occurrences)
}
