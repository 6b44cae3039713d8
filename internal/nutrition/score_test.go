package nutrition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"nutriplan/internal/meal"
)

func mealWith(n meal.NutritionInfo, per100g float64) meal.PlannedMealItem {
	return meal.PlannedMealItem{
		Name:            "test",
		Nutrition:       n,
		CaloriesPer100g: per100g,
	}
}

func TestScoreMeal_ZeroCaloriesIsNeutral(t *testing.T) {
	m := mealWith(meal.NutritionInfo{Calories: 0, Proteins: 30}, 0)

	assert.Equal(t, 50.0, ScoreMeal(m, CriteriaForGoal("balanced")))
}

func TestScoreMeal_HighProteinLeanBeatsJunkForWeightLoss(t *testing.T) {
	c := CriteriaForGoal("weight_loss")

	// Grilled chicken with vegetables: lean and protein dense.
	lean := mealWith(meal.NutritionInfo{
		Calories: 450, Proteins: 40, Carbs: 35, Fats: 12,
	}, 110)
	// Cream-heavy pasta: calorie dense, low protein.
	rich := mealWith(meal.NutritionInfo{
		Calories: 800, Proteins: 18, Carbs: 85, Fats: 40,
	}, 310)

	assert.Greater(t, ScoreMeal(lean, c), ScoreMeal(rich, c))
}

func TestScoreMeal_DensityPreferenceFlipsWithGoal(t *testing.T) {
	dense := mealWith(meal.NutritionInfo{
		Calories: 700, Proteins: 45, Carbs: 70, Fats: 22,
	}, 280)

	lossScore := ScoreMeal(dense, CriteriaForGoal("weight_loss"))
	gainScore := ScoreMeal(dense, CriteriaForGoal("muscle_gain"))

	assert.Greater(t, gainScore, lossScore)
}

func TestScoreMeal_BoundedZeroToHundred(t *testing.T) {
	extreme := mealWith(meal.NutritionInfo{
		Calories: 100, Proteins: 25, Carbs: 0, Fats: 0,
	}, 60)
	for _, goal := range []string{"weight_loss", "muscle_gain", "balanced"} {
		s := ScoreMeal(extreme, CriteriaForGoal(goal))
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 100.0)
	}
}

func TestScoreMeal_WholeNumberGrades(t *testing.T) {
	meals := []meal.PlannedMealItem{
		mealWith(meal.NutritionInfo{Calories: 450, Proteins: 40, Carbs: 35, Fats: 12}, 110),
		mealWith(meal.NutritionInfo{Calories: 800, Proteins: 18, Carbs: 85, Fats: 40}, 310),
		mealWith(meal.NutritionInfo{Calories: 400, Proteins: 30, Carbs: 40, Fats: 10}, 0),
	}
	for _, goal := range []string{"weight_loss", "muscle_gain", "balanced"} {
		c := CriteriaForGoal(goal)
		for _, m := range meals {
			s := ScoreMeal(m, c)
			assert.Equal(t, math.Trunc(s), s)
		}
	}
}

func TestScoreMeal_UnknownDensityGetsMiddleGrade(t *testing.T) {
	c := CriteriaForGoal("weight_loss")
	known := mealWith(meal.NutritionInfo{Calories: 400, Proteins: 30, Carbs: 40, Fats: 10}, 100)
	unknown := mealWith(meal.NutritionInfo{Calories: 400, Proteins: 30, Carbs: 40, Fats: 10}, 0)

	// Unknown density must not outrank a genuinely lean candidate, but it
	// must not collapse to the floor either.
	assert.Greater(t, ScoreMeal(known, c), ScoreMeal(unknown, c))
	assert.Greater(t, ScoreMeal(unknown, c), 40.0)
}

func TestRankMeals_DescendingAndStable(t *testing.T) {
	c := CriteriaForGoal("balanced")
	a := mealWith(meal.NutritionInfo{Calories: 500, Proteins: 28, Carbs: 62, Fats: 18}, 180)
	b := mealWith(meal.NutritionInfo{Calories: 900, Proteins: 10, Carbs: 40, Fats: 60}, 450)
	zeroFirst := mealWith(meal.NutritionInfo{}, 0)
	zeroFirst.Name = "premier"
	zeroSecond := mealWith(meal.NutritionInfo{}, 0)
	zeroSecond.Name = "second"

	meals := []meal.PlannedMealItem{b, zeroFirst, a, zeroSecond}
	RankMeals(meals, c)

	assert.Equal(t, "test", meals[0].Name)
	assert.Equal(t, ScoreMeal(a, c), ScoreMeal(meals[0], c))
	// Equal-score candidates keep their input order.
	firstZero := -1
	for i, m := range meals {
		if m.Name == "premier" {
			firstZero = i
		}
		if m.Name == "second" {
			assert.Greater(t, i, firstZero)
		}
	}
}
