package nutrition

import "strings"

// Goal is a normalized nutrition goal.
type Goal string

const (
	GoalWeightLoss Goal = "weight_loss"
	GoalMuscleGain Goal = "muscle_gain"
	GoalBalanced   Goal = "balanced"
)

// DensityPreference expresses how calorie-dense meals should be for a goal.
type DensityPreference string

const (
	DensityLow    DensityPreference = "low"
	DensityMedium DensityPreference = "medium"
	DensityHigh   DensityPreference = "high"
)

// MacroBand is a {min, ideal, max} band expressed as percentage of calories.
type MacroBand struct {
	Min   float64
	Ideal float64
	Max   float64
}

// Contains reports whether pct falls inside the band (inclusive).
func (b MacroBand) Contains(pct float64) bool {
	return pct >= b.Min && pct <= b.Max
}

// Criteria is the goal-derived scoring policy for a generation run.
type Criteria struct {
	Goal    Goal
	Protein MacroBand
	Carb    MacroBand
	Fat     MacroBand

	Density DensityPreference
	// MaxDensityPer100g caps kcal per 100g when > 0 (weight-loss only).
	MaxDensityPer100g float64

	// Protein density in grams of protein per 100 kcal.
	ProteinDensityMin   float64
	ProteinDensityIdeal float64
}

var criteriaByGoal = map[Goal]Criteria{
	GoalWeightLoss: {
		Goal:                GoalWeightLoss,
		Protein:             MacroBand{Min: 25, Ideal: 30, Max: 40},
		Carb:                MacroBand{Min: 30, Ideal: 40, Max: 50},
		Fat:                 MacroBand{Min: 20, Ideal: 28, Max: 35},
		Density:             DensityLow,
		MaxDensityPer100g:   180,
		ProteinDensityMin:   1.5,
		ProteinDensityIdeal: 2.5,
	},
	GoalMuscleGain: {
		Goal:                GoalMuscleGain,
		Protein:             MacroBand{Min: 25, Ideal: 32, Max: 40},
		Carb:                MacroBand{Min: 40, Ideal: 48, Max: 55},
		Fat:                 MacroBand{Min: 15, Ideal: 22, Max: 30},
		Density:             DensityHigh,
		ProteinDensityMin:   2.0,
		ProteinDensityIdeal: 3.0,
	},
	GoalBalanced: {
		Goal:                GoalBalanced,
		Protein:             MacroBand{Min: 15, Ideal: 22, Max: 30},
		Carb:                MacroBand{Min: 40, Ideal: 50, Max: 60},
		Fat:                 MacroBand{Min: 25, Ideal: 32, Max: 40},
		Density:             DensityMedium,
		ProteinDensityMin:   1.0,
		ProteinDensityIdeal: 2.0,
	},
}

// ParseGoal normalizes a free-form goal tag. Synonyms are accepted
// case-insensitively; anything unrecognized resolves to the balanced goal.
func ParseGoal(raw string) Goal {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "weight_loss", "weightloss", "weight-loss", "lose", "lose_weight", "cut", "perte_de_poids", "perte de poids", "mincir":
		return GoalWeightLoss
	case "muscle_gain", "musclegain", "muscle-gain", "gain", "gain_muscle", "bulk", "prise_de_masse", "prise de masse":
		return GoalMuscleGain
	default:
		return GoalBalanced
	}
}

// CriteriaForGoal resolves a free-form goal tag to its scoring criteria.
// Total function: there is no error path, unknown goals get the balanced
// policy.
func CriteriaForGoal(raw string) Criteria {
	return criteriaByGoal[ParseGoal(raw)]
}
