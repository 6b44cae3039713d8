// Package sources gathers meal candidates from the three source
// categories: the curated recipe store, external recipe APIs and the
// simple-food nutrition database. The aggregator fans out per slot and
// merges everything into one candidate list.
package sources

import (
	"context"

	"nutriplan/internal/meal"
)

// CuratedRecipeRepository serves pre-localized recipes from local
// storage. Implementations must be read-only and idempotent.
type CuratedRecipeRepository interface {
	Find(ctx context.Context, slot meal.Slot, maxPrepMinutes, limit int) ([]meal.PlannedMealItem, error)
}

// ExternalRecipeSource searches a remote recipe API. An unconfigured
// source returns an empty list, not an error.
type ExternalRecipeSource interface {
	Search(ctx context.Context, query string, dietTag string, maxPrepMinutes, limit int) ([]meal.PlannedMealItem, error)
}

// SimpleFoodSource searches a nutrition database for plain food items
// with per-100g nutrition. The aggregator scales results to realistic
// portions.
type SimpleFoodSource interface {
	Search(ctx context.Context, query string, limit int) ([]meal.PlannedMealItem, error)
}

// HealthFilter is an optional pre-filter applied to externally sourced
// recipes before constraint filtering.
type HealthFilter interface {
	Admit(m meal.PlannedMealItem) bool
}
