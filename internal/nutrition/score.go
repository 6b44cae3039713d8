package nutrition

import (
	"math"
	"sort"

	"nutriplan/internal/meal"
)

// scoreNeutral is assigned to candidates with no usable calorie data so
// they rank behind good matches but ahead of poor ones.
const scoreNeutral = 50

// ScoreMeal rates a candidate against the goal criteria on a whole-number
// 0 to 100 scale. Protein density is worth up to 40 points, caloric
// density up to 30, macro balance up to 30.
func ScoreMeal(m meal.PlannedMealItem, c Criteria) float64 {
	n := m.Nutrition
	if n.Calories <= 0 {
		return scoreNeutral
	}

	score := proteinDensityScore(n, c)
	score += caloricDensityScore(m.CaloriesPer100g, c)
	score += macroBalanceScore(n, c)

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return math.Round(score)
}

// proteinDensityScore grades grams of protein per 100 kcal against the
// goal band, worth up to 40 points.
func proteinDensityScore(n meal.NutritionInfo, c Criteria) float64 {
	pd := n.Proteins / n.Calories * 100

	switch {
	case pd >= c.ProteinDensityIdeal:
		return 40
	case pd >= c.ProteinDensityMin:
		span := c.ProteinDensityIdeal - c.ProteinDensityMin
		if span <= 0 {
			return 40
		}
		return 20 + 20*(pd-c.ProteinDensityMin)/span
	default:
		if c.ProteinDensityMin <= 0 {
			return 20
		}
		return 20 * pd / c.ProteinDensityMin
	}
}

// caloricDensityScore grades kcal per 100g against the goal's density
// preference, worth up to 30 points. A zero density means the candidate
// carries no per-weight data; it gets a middling grade rather than a
// penalty.
func caloricDensityScore(per100g float64, c Criteria) float64 {
	if per100g <= 0 {
		return 15
	}

	switch c.Density {
	case DensityLow:
		switch {
		case per100g <= 120:
			return 30
		case per100g <= 180:
			return 22
		case per100g <= 250:
			return 12
		default:
			return 4
		}
	case DensityHigh:
		switch {
		case per100g >= 250:
			return 30
		case per100g >= 180:
			return 22
		case per100g >= 120:
			return 12
		default:
			return 4
		}
	default:
		switch {
		case per100g >= 120 && per100g <= 250:
			return 30
		case per100g >= 80 && per100g <= 320:
			return 20
		default:
			return 8
		}
	}
}

// macroBalanceScore grades the macro split against the goal bands, worth
// up to 30 points: 8 per macro inside its band, plus up to 6 for protein
// proximity to the ideal.
func macroBalanceScore(n meal.NutritionInfo, c Criteria) float64 {
	proteinPct := n.Proteins * 4 / n.Calories * 100
	carbPct := n.Carbs * 4 / n.Calories * 100
	fatPct := n.Fats * 9 / n.Calories * 100

	var score float64
	if c.Protein.Contains(proteinPct) {
		score += 8
	}
	if c.Carb.Contains(carbPct) {
		score += 8
	}
	if c.Fat.Contains(fatPct) {
		score += 8
	}

	// Proximity bonus rewards landing near the protein ideal even when
	// the other macros drift.
	dev := proteinPct - c.Protein.Ideal
	if dev < 0 {
		dev = -dev
	}
	if dev <= 10 {
		score += 6 * (1 - dev/10)
	}
	return score
}

// RankMeals sorts candidates by descending score. The sort is stable so
// candidates with equal scores keep their aggregation order.
func RankMeals(meals []meal.PlannedMealItem, c Criteria) {
	type ranked struct {
		item  meal.PlannedMealItem
		score float64
	}
	rs := make([]ranked, len(meals))
	for i, m := range meals {
		rs[i] = ranked{item: m, score: ScoreMeal(m, c)}
	}
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].score > rs[j].score
	})
	for i, r := range rs {
		meals[i] = r.item
	}
}
