package planner

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"go.uber.org/zap"

	"nutriplan/internal/filter"
	"nutriplan/internal/llm"
	"nutriplan/internal/meal"
	"nutriplan/internal/nutrition"
)

// calorieWindow is the tolerance around the slot target within which a
// candidate is accepted as-is.
const calorieWindow = 0.20

var errNoGenerator = errors.New("no ai generator configured")

// lockedRand serializes access to one rand.Rand so the four concurrent
// slot tasks of a day can share a deterministic source.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newLockedRand(rng *rand.Rand) *lockedRand {
	return &lockedRand{rng: rng}
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// CandidateSource produces the candidate pool for one slot. Implemented
// by sources.Aggregator.
type CandidateSource interface {
	Aggregate(ctx context.Context, slot meal.Slot, prefs meal.Preferences, usedNames map[string]bool, weekend bool) []meal.PlannedMealItem
}

// AIGenerator is the AI meal collaborator of the cascade.
type AIGenerator interface {
	GenerateMeal(ctx context.Context, req llm.MealRequest) (meal.PlannedMealItem, error)
}

// cascade resolves one meal slot through the fallback chain: source
// match, then AI generation, then the built-in tables. It always
// produces exactly one meal.
type cascade struct {
	source CandidateSource
	ai     AIGenerator
	logger *zap.Logger
	rng    *lockedRand
}

// slotStrategy is one cascade state. A false second return means the
// state produced nothing and the next one is tried.
type slotStrategy func(ctx context.Context, prefs meal.Preferences, req slotRequest) (meal.PlannedMealItem, bool)

// slotRequest is one cascade invocation.
type slotRequest struct {
	slot           meal.Slot
	targetCalories float64
	usedNames      map[string]bool
	weekend        bool
	treatDinner    bool
}

// fill resolves the slot by trying the cascade states in order. The
// treat dinner skips sourcing entirely and goes straight to the
// dedicated treat path.
func (c *cascade) fill(ctx context.Context, prefs meal.Preferences, req slotRequest) meal.PlannedMealItem {
	if req.treatDinner {
		return c.treatMeal(ctx, prefs, req)
	}

	// The builtin state cannot miss, so the loop always selects a meal.
	var chosen meal.PlannedMealItem
	for _, state := range []slotStrategy{c.sourceMatch, c.aiGenerate, c.builtin} {
		if item, ok := state(ctx, prefs, req); ok {
			chosen = item
			break
		}
	}
	return chosen
}

// sourceMatch runs aggregation, filtering and scoring, then selects the
// best candidate near the calorie target. When no candidate lands inside
// the window the top-scoring one is portion-scaled to the target
// instead.
func (c *cascade) sourceMatch(ctx context.Context, prefs meal.Preferences, req slotRequest) (meal.PlannedMealItem, bool) {
	if c.source == nil {
		return meal.PlannedMealItem{}, false
	}
	candidates := c.source.Aggregate(ctx, req.slot, prefs, req.usedNames, req.weekend)
	candidates = filter.Apply(candidates, prefs, req.slot)
	if len(candidates) == 0 {
		return meal.PlannedMealItem{}, false
	}

	criteria := nutrition.CriteriaForGoal(prefs.Goal)
	nutrition.RankMeals(candidates, criteria)

	low := req.targetCalories * (1 - calorieWindow)
	high := req.targetCalories * (1 + calorieWindow)
	for _, cand := range candidates {
		if cand.Nutrition.Calories >= low && cand.Nutrition.Calories <= high {
			return cand, true
		}
	}

	return scaleToTarget(candidates[0], req.targetCalories), true
}

// aiGenerate asks the AI collaborator for a meal. Any failure is logged
// and yields to the next state.
func (c *cascade) aiGenerate(ctx context.Context, prefs meal.Preferences, req slotRequest) (meal.PlannedMealItem, bool) {
	item, err := c.generate(ctx, prefs, req, false)
	if err != nil {
		c.logger.Warn("meal generation failed, using built-in recipe",
			zap.String("slot", string(req.slot)), zap.Error(err))
		return meal.PlannedMealItem{}, false
	}
	return item, true
}

// builtin is the terminal state: a recipe from the built-in tables,
// scaled to the target. It never misses.
func (c *cascade) builtin(_ context.Context, prefs meal.Preferences, req slotRequest) (meal.PlannedMealItem, bool) {
	return builtinMeal(c.rng, req.slot, prefs.Complexity, req.targetCalories), true
}

// treatMeal generates the treat dinner through the AI collaborator, or
// falls back to the built-in treat table.
func (c *cascade) treatMeal(ctx context.Context, prefs meal.Preferences, req slotRequest) meal.PlannedMealItem {
	item, err := c.generate(ctx, prefs, req, true)
	if err == nil {
		return item
	}
	c.logger.Warn("treat meal generation failed, using built-in recipe", zap.Error(err))
	return builtinTreatMeal(c.rng, req.targetCalories)
}

func (c *cascade) generate(ctx context.Context, prefs meal.Preferences, req slotRequest, treat bool) (meal.PlannedMealItem, error) {
	if c.ai == nil {
		return meal.PlannedMealItem{}, errNoGenerator
	}
	recent := make([]string, 0, len(req.usedNames))
	for name := range req.usedNames {
		recent = append(recent, name)
	}
	return c.ai.GenerateMeal(ctx, llm.MealRequest{
		Slot:           req.slot,
		TargetCalories: req.targetCalories,
		Diet:           prefs.Diet,
		Allergies:      prefs.Allergies,
		RecentNames:    recent,
		IsTreatMeal:    treat,
	})
}

// scaleToTarget linearly scales the meal's nutrition to the calorie
// target and flags the adjusted portion in the description.
func scaleToTarget(item meal.PlannedMealItem, targetCalories float64) meal.PlannedMealItem {
	if item.Nutrition.Calories <= 0 || targetCalories <= 0 {
		return item
	}
	factor := targetCalories / item.Nutrition.Calories
	item.Nutrition = item.Nutrition.Scale(factor)
	if item.Description != "" {
		item.Description += " "
	}
	item.Description += "(portion ajustée)"
	return item
}
