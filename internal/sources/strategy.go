package sources

import (
	"nutriplan/internal/meal"
	"nutriplan/internal/nutrition"
)

// Strategy is the weighted mix across the three candidate source
// categories. Weights are non-negative and sum to 1.0.
type Strategy struct {
	Curated  float64
	External float64
	FoodDB   float64
}

// totalQuota is the candidate target per slot that the weights are
// multiplied against.
const totalQuota = 15

// Quotas converts the weights into per-source query quotas.
func (s Strategy) Quotas() (curated, external, foodDB int) {
	curated = int(s.Curated * totalQuota)
	external = int(s.External * totalQuota)
	foodDB = int(s.FoodDB * totalQuota)
	if curated == 0 && s.Curated > 0 {
		curated = 1
	}
	if external == 0 && s.External > 0 {
		external = 1
	}
	if foodDB == 0 && s.FoodDB > 0 {
		foodDB = 1
	}
	return curated, external, foodDB
}

type baseWeights struct {
	simple Strategy
	main   Strategy
}

// Base weights per source preference. Simple slots (breakfast, snack)
// lean on the food database; main slots allow full recipe weighting.
var weightsByPreference = map[meal.SourcePreference]baseWeights{
	meal.PreferFresh: {
		simple: Strategy{Curated: 0.15, External: 0.15, FoodDB: 0.70},
		main:   Strategy{Curated: 0.25, External: 0.30, FoodDB: 0.45},
	},
	meal.PreferRecipes: {
		simple: Strategy{Curated: 0.30, External: 0.25, FoodDB: 0.45},
		main:   Strategy{Curated: 0.40, External: 0.40, FoodDB: 0.20},
	},
	meal.PreferQuick: {
		simple: Strategy{Curated: 0.10, External: 0.10, FoodDB: 0.80},
		main:   Strategy{Curated: 0.30, External: 0.20, FoodDB: 0.50},
	},
	meal.PreferBalanced: {
		simple: Strategy{Curated: 0.20, External: 0.15, FoodDB: 0.65},
		main:   Strategy{Curated: 0.35, External: 0.30, FoodDB: 0.35},
	},
}

// goalShift is how much weight a goal moves into or out of the food
// database category.
const goalShift = 0.10

const (
	weightFloor = 0.05
	weightCeil  = 0.80
)

// PlanStrategy computes the source mix for one slot. Weight-loss favors
// the food database for portion precision; muscle-gain moves weight
// toward cooked recipes. The result is clamped per weight and
// renormalized so the sum stays 1.0. Pure function, no error path.
func PlanStrategy(slot meal.Slot, pref meal.SourcePreference, goal string) Strategy {
	base, ok := weightsByPreference[pref]
	if !ok {
		base = weightsByPreference[meal.PreferBalanced]
	}
	s := base.main
	if slot.IsSimple() {
		s = base.simple
	}

	switch nutrition.ParseGoal(goal) {
	case nutrition.GoalWeightLoss:
		s.FoodDB += goalShift
		s.Curated -= goalShift / 2
		s.External -= goalShift / 2
	case nutrition.GoalMuscleGain:
		s.FoodDB -= goalShift
		s.Curated += goalShift / 2
		s.External += goalShift / 2
	}

	s.Curated = clamp(s.Curated)
	s.External = clamp(s.External)
	s.FoodDB = clamp(s.FoodDB)

	sum := s.Curated + s.External + s.FoodDB
	s.Curated /= sum
	s.External /= sum
	s.FoodDB /= sum
	return s
}

func clamp(w float64) float64 {
	if w < weightFloor {
		return weightFloor
	}
	if w > weightCeil {
		return weightCeil
	}
	return w
}
