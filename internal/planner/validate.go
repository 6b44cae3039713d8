package planner

import (
	"fmt"

	"nutriplan/internal/filter"
	"nutriplan/internal/meal"
)

// dayTolerance is how far a day's summed meal calories may drift from
// the daily target before validation flags it.
const dayTolerance = 0.25

// Issue is one validation finding. Issues are advisory: a plan with
// issues is still a usable plan.
type Issue struct {
	Day     int
	Slot    meal.Slot
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("day %d %s: %s", i.Day, i.Slot, i.Message)
}

// ValidatePlan checks a finished plan for structural and dietary
// problems: missing slots, allergen leaks from the AI path, days far off
// their calorie target, duplicated meal names.
func ValidatePlan(plan *WeeklyPlan) []Issue {
	var issues []Issue
	prefs := plan.Preferences

	budgets := BuildBudget(prefs.DailyCalories, prefs.IncludeTreatMeal, plan.DurationDays)

	seenNames := make(map[string]int)
	for day := 0; day < plan.DurationDays; day++ {
		items := plan.ItemsForDay(day)

		bySlot := make(map[meal.Slot]bool)
		for _, item := range items {
			bySlot[item.Slot] = true

			if !filter.FreeOfAllergens(item, prefs.Allergies) {
				issues = append(issues, Issue{Day: day, Slot: item.Slot,
					Message: fmt.Sprintf("%q may contain a declared allergen", item.Name)})
			}
			if !filter.MatchesDiet(item, prefs.Diet) {
				issues = append(issues, Issue{Day: day, Slot: item.Slot,
					Message: fmt.Sprintf("%q conflicts with the %s diet", item.Name, prefs.Diet)})
			}
			seenNames[item.Name]++
		}

		for _, slot := range meal.Slots {
			if !bySlot[slot] {
				issues = append(issues, Issue{Day: day, Slot: slot, Message: "slot has no meal"})
			}
		}

		if prefs.DailyCalories > 0 && day < len(budgets) {
			target := budgets[day].Total
			got := plan.DayCalories(day)
			if got < target*(1-dayTolerance) || got > target*(1+dayTolerance) {
				issues = append(issues, Issue{Day: day,
					Message: fmt.Sprintf("day calories %.0f far from target %.0f", got, target)})
			}
		}
	}

	for name, count := range seenNames {
		if count > 1 {
			issues = append(issues, Issue{Message: fmt.Sprintf("%q appears %d times in the plan", name, count)})
		}
	}
	return issues
}
