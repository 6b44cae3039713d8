package sources

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"nutriplan/internal/meal"
)

type stubCurated struct {
	items []meal.PlannedMealItem
	err   error
	calls int
}

func (s *stubCurated) Find(ctx context.Context, slot meal.Slot, maxPrep, limit int) ([]meal.PlannedMealItem, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if limit < len(s.items) {
		return s.items[:limit], nil
	}
	return s.items, nil
}

type stubExternal struct {
	items []meal.PlannedMealItem
	err   error
	calls int
}

func (s *stubExternal) Search(ctx context.Context, query, dietTag string, maxPrep, limit int) ([]meal.PlannedMealItem, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

type stubFoods struct {
	items []meal.PlannedMealItem
	err   error
	calls int
}

func (s *stubFoods) Search(ctx context.Context, query string, limit int) ([]meal.PlannedMealItem, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func named(names ...string) []meal.PlannedMealItem {
	items := make([]meal.PlannedMealItem, len(names))
	for i, n := range names {
		items[i] = meal.PlannedMealItem{Name: n, Nutrition: meal.NutritionInfo{Calories: 400}}
	}
	return items
}

func testPrefs() meal.Preferences {
	return meal.Preferences{SourcePreference: meal.PreferBalanced, Complexity: meal.ComplexityMixed}
}

func newTestAggregator(c *stubCurated, e *stubExternal, f *stubFoods) *Aggregator {
	return NewAggregator(c, e, f, nil, nil, rand.New(rand.NewSource(1)))
}

func TestAggregate_MergesAndDeduplicates(t *testing.T) {
	curated := &stubCurated{items: named("Gratin", "Soupe", "Quiche", "Salade")}
	external := &stubExternal{items: named("Curry", "gratin")}
	foods := &stubFoods{items: named("Pomme", "Yaourt", "Riz")}

	agg := newTestAggregator(curated, external, foods)
	got := agg.Aggregate(context.Background(), meal.SlotDinner, testPrefs(), nil, false)

	names := make(map[string]int)
	for _, item := range got {
		names[item.Name]++
	}
	// "gratin" deduplicates against "Gratin" case-insensitively.
	assert.Zero(t, names["gratin"])
	assert.Equal(t, 1, names["Gratin"])
	for _, count := range names {
		assert.Equal(t, 1, count)
	}
}

func TestAggregate_ExcludesUsedNames(t *testing.T) {
	curated := &stubCurated{items: named("Gratin", "Soupe", "Quiche", "Tajine")}
	agg := newTestAggregator(curated, &stubExternal{}, &stubFoods{})

	used := map[string]bool{"gratin": true, "soupe": true}
	got := agg.Aggregate(context.Background(), meal.SlotDinner, testPrefs(), used, false)

	for _, item := range got {
		assert.NotEqual(t, "Gratin", item.Name)
		assert.NotEqual(t, "Soupe", item.Name)
	}
}

func TestAggregate_SourceFailureDegradesToEmpty(t *testing.T) {
	curated := &stubCurated{err: errors.New("db locked")}
	external := &stubExternal{err: errors.New("timeout")}
	foods := &stubFoods{items: named("Pomme", "Yaourt", "Riz")}

	agg := newTestAggregator(curated, external, foods)
	got := agg.Aggregate(context.Background(), meal.SlotLunch, testPrefs(), nil, false)

	assert.Len(t, got, 3)
	for _, item := range got {
		assert.Equal(t, meal.ProvenanceFoodDB, item.Provenance)
	}
}

func TestAggregate_ThinCuratedTriggersSecondaryExternalQuery(t *testing.T) {
	curated := &stubCurated{items: named("Gratin")}
	external := &stubExternal{items: named("Curry", "Wok", "Paella")}
	foods := &stubFoods{items: named("Riz", "Salade", "Soupe")}

	agg := newTestAggregator(curated, external, foods)
	agg.Aggregate(context.Background(), meal.SlotDinner, testPrefs(), nil, false)

	assert.Equal(t, 2, external.calls)
}

func TestAggregate_OddQuotaShortfallTriggersSecondaryQuery(t *testing.T) {
	// Dinner with a balanced preference carries a curated quota of 5.
	// Two hits fall short of half that quota, so the external source
	// must be queried a second time even though the quota is odd.
	curated := &stubCurated{items: named("Gratin", "Soupe")}
	external := &stubExternal{items: named("Curry", "Wok", "Paella")}
	foods := &stubFoods{items: named("Riz", "Salade", "Taboulé")}

	agg := newTestAggregator(curated, external, foods)
	agg.Aggregate(context.Background(), meal.SlotDinner, testPrefs(), nil, false)

	assert.Equal(t, 2, external.calls)
}

func TestAggregate_BroadenedRetryWhenPoolTooSmall(t *testing.T) {
	foods := &stubFoods{items: named("Pomme")}
	agg := newTestAggregator(&stubCurated{}, &stubExternal{}, foods)

	got := agg.Aggregate(context.Background(), meal.SlotSnack, testPrefs(), nil, false)

	// One standard query plus exactly one broadened retry.
	assert.Equal(t, 2, foods.calls)
	assert.Len(t, got, 1)
}

func TestAggregate_SetsProvenancePerSource(t *testing.T) {
	curated := &stubCurated{items: named("Gratin", "Soupe", "Quiche", "Tajine", "Chili", "Wok")}
	external := &stubExternal{items: named("Curry")}
	foods := &stubFoods{items: named("Riz")}

	agg := newTestAggregator(curated, external, foods)
	got := agg.Aggregate(context.Background(), meal.SlotDinner, testPrefs(), nil, false)

	byName := make(map[string]meal.Provenance)
	for _, item := range got {
		byName[item.Name] = item.Provenance
	}
	assert.Equal(t, meal.ProvenanceCurated, byName["Gratin"])
	assert.Equal(t, meal.ProvenanceExternal, byName["Curry"])
	assert.Equal(t, meal.ProvenanceFoodDB, byName["Riz"])
}

func TestAggregate_HealthFilterRejectsExternalCandidates(t *testing.T) {
	sweet := meal.PlannedMealItem{Name: "Fondant dessert", Nutrition: meal.NutritionInfo{Calories: 600, Sugar: 80}}
	fine := meal.PlannedMealItem{Name: "Curry de pois chiches", Nutrition: meal.NutritionInfo{Calories: 450, Sugar: 6}}
	external := &stubExternal{items: []meal.PlannedMealItem{sweet, fine}}
	curated := &stubCurated{items: named("Gratin", "Soupe", "Quiche", "Tajine", "Chili", "Wok")}

	agg := NewAggregator(curated, external, &stubFoods{items: named("Riz")}, NewRecipeHealthFilter(), nil, rand.New(rand.NewSource(1)))
	got := agg.Aggregate(context.Background(), meal.SlotDinner, testPrefs(), nil, false)

	for _, item := range got {
		assert.NotEqual(t, "Fondant dessert", item.Name)
	}
}
