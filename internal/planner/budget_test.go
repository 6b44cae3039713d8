package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nutriplan/internal/meal"
)

func TestBuildBudget_NoTreatMealIsFlat(t *testing.T) {
	budgets := BuildBudget(2200, false, 7)

	assert.Len(t, budgets, 7)
	for _, b := range budgets {
		assert.Equal(t, 2200.0, b.Total)
		assert.False(t, b.IsTreatDay)
	}
}

func TestBuildBudget_TreatMealBanking(t *testing.T) {
	budgets := BuildBudget(2000, true, 7)

	for day := 0; day < 5; day++ {
		assert.Equal(t, 1800.0, budgets[day].Total, "day %d", day)
		assert.False(t, budgets[day].IsTreatDay)
	}
	assert.Equal(t, 3000.0, budgets[5].Total)
	assert.True(t, budgets[5].IsTreatDay)
	assert.Equal(t, 2000.0, budgets[6].Total)

	var week float64
	for _, b := range budgets {
		week += b.Total
	}
	assert.Equal(t, 14000.0, week)
}

func TestBuildBudget_SlotSplitSumsToDailyTarget(t *testing.T) {
	for _, treat := range []bool{true, false} {
		for _, days := range []int{1, 3, 7} {
			for _, b := range BuildBudget(2137, treat, days) {
				var sum float64
				for _, slot := range meal.Slots {
					sum += b.BySlot[slot]
				}
				assert.InDelta(t, b.Total, sum, 2, "treat=%v days=%d day=%d", treat, days, b.Day)
			}
		}
	}
}

func TestBuildBudget_TreatSurplusGoesToDinnerOnly(t *testing.T) {
	budgets := BuildBudget(2000, true, 7)
	treat := budgets[5]
	normal := budgets[6]

	assert.Equal(t, normal.BySlot[meal.SlotBreakfast], treat.BySlot[meal.SlotBreakfast])
	assert.Equal(t, normal.BySlot[meal.SlotLunch], treat.BySlot[meal.SlotLunch])
	assert.Equal(t, normal.BySlot[meal.SlotSnack], treat.BySlot[meal.SlotSnack])
	assert.Equal(t, normal.BySlot[meal.SlotDinner]+1000, treat.BySlot[meal.SlotDinner])
}

func TestBuildBudget_ShortPlansSkipBanking(t *testing.T) {
	// Treat day 5 is outside a 3-day plan, so banking never starts.
	for _, b := range BuildBudget(2000, true, 3) {
		assert.Equal(t, 2000.0, b.Total)
		assert.False(t, b.IsTreatDay)
	}
}
