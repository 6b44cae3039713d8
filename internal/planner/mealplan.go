package planner

import (
	"time"

	"nutriplan/internal/meal"
)

// WeeklyPlan is the finished plan: one meal per (day, slot) pair, in day
// then slot order. Plain data, safe to serialize.
type WeeklyPlan struct {
	ID           string                 `json:"id"`
	CreatedAt    time.Time              `json:"created_at"`
	DurationDays int                    `json:"duration_days"`
	Preferences  meal.Preferences       `json:"preferences"`
	Items        []meal.PlannedMealItem `json:"items"`
}

// ItemsForDay returns the day's meals in slot order.
func (p *WeeklyPlan) ItemsForDay(day int) []meal.PlannedMealItem {
	var items []meal.PlannedMealItem
	for _, item := range p.Items {
		if item.Day == day {
			items = append(items, item)
		}
	}
	return items
}

// DayCalories sums a day's meal calories.
func (p *WeeklyPlan) DayCalories(day int) float64 {
	var total float64
	for _, item := range p.ItemsForDay(day) {
		total += item.Nutrition.Calories
	}
	return total
}
