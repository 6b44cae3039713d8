// Package planner turns user preferences into a complete meal plan. The
// orchestrator walks the plan day by day, resolving the four slots of
// each day concurrently through the fallback cascade.
package planner

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"nutriplan/internal/meal"
)

const defaultDurationDays = 7

// Planner generates complete meal plans. Generation cannot fail: every
// collaborator failure degrades to the next cascade state and the
// built-in tables guarantee termination.
type Planner struct {
	cascade cascade
	logger  *zap.Logger
}

// New creates a Planner. source and ai may be nil, in which case the
// corresponding cascade states are skipped. rng may be nil for the
// default time-seeded source.
func New(source CandidateSource, ai AIGenerator, logger *zap.Logger, rng *rand.Rand) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Planner{
		cascade: cascade{source: source, ai: ai, logger: logger, rng: newLockedRand(rng)},
		logger:  logger,
	}
}

// GeneratePlan builds a plan of durationDays days. Unsupported durations
// fall back to a full week. The four slots of a day run concurrently;
// the used-names set is only updated between days, so slot tasks never
// share mutable state.
func (p *Planner) GeneratePlan(ctx context.Context, prefs meal.Preferences, durationDays int) *WeeklyPlan {
	switch durationDays {
	case 1, 3, 7:
	default:
		durationDays = defaultDurationDays
	}

	budgets := BuildBudget(prefs.DailyCalories, prefs.IncludeTreatMeal, durationDays)
	usedNames := make(map[string]bool)

	plan := &WeeklyPlan{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now(),
		DurationDays: durationDays,
		Preferences:  prefs,
		Items:        make([]meal.PlannedMealItem, 0, durationDays*len(meal.Slots)),
	}

	for _, budget := range budgets {
		dayItems := p.generateDay(ctx, prefs, budget, usedNames)
		for _, item := range dayItems {
			usedNames[strings.ToLower(strings.TrimSpace(item.Name))] = true
		}
		plan.Items = append(plan.Items, dayItems...)
	}

	p.logger.Info("meal plan generated",
		zap.String("plan_id", plan.ID),
		zap.Int("days", durationDays),
		zap.Int("meals", len(plan.Items)))
	return plan
}

// generateDay resolves the day's four slots as concurrent tasks against
// a read-only snapshot of the used-names set.
func (p *Planner) generateDay(ctx context.Context, prefs meal.Preferences, budget DayBudget, usedNames map[string]bool) []meal.PlannedMealItem {
	snapshot := make(map[string]bool, len(usedNames))
	for name := range usedNames {
		snapshot[name] = true
	}
	weekend := budget.Day >= 5

	items := make([]meal.PlannedMealItem, len(meal.Slots))
	g, gctx := errgroup.WithContext(ctx)
	for i, slot := range meal.Slots {
		g.Go(func() error {
			item := p.cascade.fill(gctx, prefs, slotRequest{
				slot:           slot,
				targetCalories: budget.BySlot[slot],
				usedNames:      snapshot,
				weekend:        weekend,
				treatDinner:    budget.IsTreatDay && slot == meal.SlotDinner,
			})
			item.Day = budget.Day
			item.Slot = slot
			if item.ID == "" {
				item.ID = uuid.NewString()
			}
			items[i] = item
			return nil
		})
	}
	_ = g.Wait()
	return items
}
