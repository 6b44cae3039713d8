package sources

import (
	"context"
	"math/rand"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"nutriplan/internal/meal"
)

// minCandidates is the floor below which the aggregator issues one
// broadened food-database query.
const minCandidates = 3

// slotQueries are the cultural query templates used against the food
// database, per slot. The broadened retry picks one at random.
var slotQueries = map[meal.Slot][]string{
	meal.SlotBreakfast: {
		"petit dejeuner", "cereales complètes", "yaourt nature",
		"fruits frais", "pain complet",
	},
	meal.SlotLunch: {
		"plat complet", "salade composee", "legumes de saison",
		"viande ou poisson", "feculents",
	},
	meal.SlotSnack: {
		"collation", "fruits secs", "fromage blanc", "compote",
		"barre de cereales",
	},
	meal.SlotDinner: {
		"diner leger", "soupe de legumes", "poisson blanc",
		"gratin de legumes", "omelette",
	},
}

// Aggregator fans out candidate queries across the source categories and
// merges the results. Any single source failure is logged and treated as
// zero candidates from that source.
type Aggregator struct {
	curated CuratedRecipeRepository
	externs ExternalRecipeSource
	foods   SimpleFoodSource
	health  HealthFilter
	logger  *zap.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewAggregator wires the three sources. health may be nil to skip the
// external pre-filter; rng may be nil for the default source.
func NewAggregator(curated CuratedRecipeRepository, externs ExternalRecipeSource, foods SimpleFoodSource, health HealthFilter, logger *zap.Logger, rng *rand.Rand) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		curated: curated,
		externs: externs,
		foods:   foods,
		health:  health,
		logger:  logger,
		rng:     rng,
	}
}

// Aggregate collects the candidate pool for one meal slot. Candidates
// already present in usedNames are dropped, as are duplicates by
// normalized name. The call never returns an error: failed sources
// degrade to empty result sets.
func (a *Aggregator) Aggregate(ctx context.Context, slot meal.Slot, prefs meal.Preferences, usedNames map[string]bool, weekend bool) []meal.PlannedMealItem {
	strategy := PlanStrategy(slot, prefs.SourcePreference, prefs.Goal)
	curatedQuota, externalQuota, foodQuota := strategy.Quotas()
	maxPrep := prefs.PrepCeiling(weekend)

	var curatedHits, externalHits, foodHits []meal.PlannedMealItem

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		curatedHits = a.queryCurated(gctx, slot, maxPrep, curatedQuota)
		return nil
	})
	g.Go(func() error {
		externalHits = a.queryExternal(gctx, a.slotQuery(slot), prefs, maxPrep, externalQuota)
		return nil
	})
	g.Go(func() error {
		foodHits = a.queryFoods(gctx, a.slotQuery(slot), foodQuota)
		return nil
	})
	_ = g.Wait()

	// Thin curated results promote the external source to a secondary
	// fallback within the same stage. The comparison avoids integer
	// division so odd quotas keep their true half.
	if 2*len(curatedHits) < curatedQuota && externalQuota > 0 {
		more := a.queryExternal(ctx, a.slotQuery(slot), prefs, maxPrep, curatedQuota)
		externalHits = append(externalHits, more...)
	}

	merged := a.merge(usedNames, curatedHits, externalHits, foodHits)

	if len(merged) < minCandidates {
		broadened := a.queryFoods(ctx, a.slotQuery(slot), totalQuota)
		merged = a.merge(usedNames, merged, broadened)
	}
	return merged
}

func (a *Aggregator) queryCurated(ctx context.Context, slot meal.Slot, maxPrep, limit int) []meal.PlannedMealItem {
	if a.curated == nil || limit <= 0 {
		return nil
	}
	items, err := a.curated.Find(ctx, slot, maxPrep, limit)
	if err != nil {
		a.logger.Warn("curated recipe query failed", zap.String("slot", string(slot)), zap.Error(err))
		return nil
	}
	for i := range items {
		items[i].Provenance = meal.ProvenanceCurated
	}
	return items
}

func (a *Aggregator) queryExternal(ctx context.Context, query string, prefs meal.Preferences, maxPrep, limit int) []meal.PlannedMealItem {
	if a.externs == nil || limit <= 0 {
		return nil
	}
	items, err := a.externs.Search(ctx, query, string(prefs.Diet), maxPrep, limit)
	if err != nil {
		a.logger.Warn("external recipe query failed", zap.String("query", query), zap.Error(err))
		return nil
	}
	kept := items[:0]
	for _, item := range items {
		if a.health != nil && !a.health.Admit(item) {
			continue
		}
		item.Provenance = meal.ProvenanceExternal
		kept = append(kept, item)
	}
	return kept
}

func (a *Aggregator) queryFoods(ctx context.Context, query string, limit int) []meal.PlannedMealItem {
	if a.foods == nil || limit <= 0 {
		return nil
	}
	items, err := a.foods.Search(ctx, query, limit)
	if err != nil {
		a.logger.Warn("food database query failed", zap.String("query", query), zap.Error(err))
		return nil
	}
	for i := range items {
		items[i].Provenance = meal.ProvenanceFoodDB
	}
	return items
}

// slotQuery picks a cultural query template for the slot. An injected
// rng is shared by the concurrent source queries, so access to it is
// serialized; the top-level rand fallback is already safe.
func (a *Aggregator) slotQuery(slot meal.Slot) string {
	templates := slotQueries[slot]
	if len(templates) == 0 {
		return string(slot)
	}
	if a.rng != nil {
		a.rngMu.Lock()
		defer a.rngMu.Unlock()
		return templates[a.rng.Intn(len(templates))]
	}
	return templates[rand.Intn(len(templates))]
}

// merge concatenates the candidate lists in source order, dropping
// already-used names and duplicates.
func (a *Aggregator) merge(usedNames map[string]bool, lists ...[]meal.PlannedMealItem) []meal.PlannedMealItem {
	seen := make(map[string]bool)
	var merged []meal.PlannedMealItem
	for _, list := range lists {
		for _, item := range list {
			key := strings.ToLower(strings.TrimSpace(item.Name))
			if key == "" || seen[key] || usedNames[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, item)
		}
	}
	return merged
}
