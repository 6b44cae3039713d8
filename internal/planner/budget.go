package planner

import (
	"math"

	"nutriplan/internal/meal"
)

// Slot split of a day's calorie target.
const (
	breakfastShare = 0.25
	lunchShare     = 0.35
	snackShare     = 0.10
	dinnerShare    = 0.30
)

// savingsRate is the fraction of the daily target banked on each day
// before the treat day.
const savingsRate = 0.10

// treatDayIndex is Saturday in a Monday-start week.
const treatDayIndex = 5

// DayBudget is the calorie plan for one day.
type DayBudget struct {
	Day        int
	Total      float64
	BySlot     map[meal.Slot]float64
	IsTreatDay bool
}

// BuildBudget computes the per-day calorie targets for the whole plan.
//
// Without a treat meal every day carries the base target. With one, 10%
// of the target is banked on every day before the treat day; the whole
// banked amount lands on the treat day's dinner, and later days return
// to the base target. The weekly total is unchanged either way.
func BuildBudget(baseDaily float64, treatMeal bool, durationDays int) []DayBudget {
	budgets := make([]DayBudget, 0, durationDays)

	// A treat day outside the plan disables banking entirely.
	banking := treatMeal && treatDayIndex < durationDays

	var banked float64
	for day := 0; day < durationDays; day++ {
		total := baseDaily
		isTreat := false

		if banking {
			switch {
			case day < treatDayIndex:
				total = baseDaily * (1 - savingsRate)
				banked += baseDaily * savingsRate
			case day == treatDayIndex:
				total = baseDaily + banked
				isTreat = true
			}
		}

		// Non-dinner slots are split from the base target so only the
		// treat dinner absorbs the surplus.
		splitBase := total
		if isTreat {
			splitBase = baseDaily
		}
		breakfast := math.Round(splitBase * breakfastShare)
		lunch := math.Round(splitBase * lunchShare)
		snack := math.Round(splitBase * snackShare)
		dinner := total - breakfast - lunch - snack

		budgets = append(budgets, DayBudget{
			Day:        day,
			Total:      total,
			IsTreatDay: isTreat,
			BySlot: map[meal.Slot]float64{
				meal.SlotBreakfast: breakfast,
				meal.SlotLunch:     lunch,
				meal.SlotSnack:     snack,
				meal.SlotDinner:    dinner,
			},
		})
	}
	return budgets
}
