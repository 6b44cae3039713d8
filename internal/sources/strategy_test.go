package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nutriplan/internal/meal"
)

func TestPlanStrategy_WeightsSumToOne(t *testing.T) {
	prefs := []meal.SourcePreference{meal.PreferFresh, meal.PreferRecipes, meal.PreferQuick, meal.PreferBalanced}
	goals := []string{"", "weight_loss", "muscle_gain", "balanced"}

	for _, pref := range prefs {
		for _, goal := range goals {
			for _, slot := range meal.Slots {
				s := PlanStrategy(slot, pref, goal)
				assert.InDelta(t, 1.0, s.Curated+s.External+s.FoodDB, 1e-9,
					"pref=%s goal=%s slot=%s", pref, goal, slot)
				assert.GreaterOrEqual(t, s.Curated, weightFloor)
				assert.GreaterOrEqual(t, s.External, weightFloor)
				assert.GreaterOrEqual(t, s.FoodDB, weightFloor)
			}
		}
	}
}

func TestPlanStrategy_SimpleSlotsLeanOnFoodDatabase(t *testing.T) {
	breakfast := PlanStrategy(meal.SlotBreakfast, meal.PreferBalanced, "")
	dinner := PlanStrategy(meal.SlotDinner, meal.PreferBalanced, "")

	assert.Greater(t, breakfast.FoodDB, dinner.FoodDB)
	assert.Less(t, breakfast.Curated, dinner.Curated)
}

func TestPlanStrategy_GoalShiftsWeights(t *testing.T) {
	neutral := PlanStrategy(meal.SlotLunch, meal.PreferBalanced, "")
	loss := PlanStrategy(meal.SlotLunch, meal.PreferBalanced, "weight_loss")
	gain := PlanStrategy(meal.SlotLunch, meal.PreferBalanced, "muscle_gain")

	assert.Greater(t, loss.FoodDB, neutral.FoodDB)
	assert.Less(t, gain.FoodDB, neutral.FoodDB)
	assert.Greater(t, gain.Curated, neutral.Curated)
}

func TestPlanStrategy_UnknownPreferenceDefaultsToBalanced(t *testing.T) {
	got := PlanStrategy(meal.SlotLunch, meal.SourcePreference("???"), "")
	want := PlanStrategy(meal.SlotLunch, meal.PreferBalanced, "")

	assert.Equal(t, want, got)
}

func TestQuotas_NonZeroWeightKeepsAtLeastOne(t *testing.T) {
	s := Strategy{Curated: 0.05, External: 0.05, FoodDB: 0.90}
	curated, external, foodDB := s.Quotas()

	assert.Equal(t, 1, curated)
	assert.Equal(t, 1, external)
	assert.Equal(t, 13, foodDB)
}
