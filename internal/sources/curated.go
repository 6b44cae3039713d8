package sources

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nutriplan/internal/meal"
)

// CuratedRepository is the database-backed curated recipe store. Recipes
// are stored as JSON blobs; slot and prep time are lifted into columns so
// Find can filter in SQL.
type CuratedRepository struct {
	db *sql.DB
}

// NewCuratedRepository creates a new CuratedRepository.
func NewCuratedRepository(d *sql.DB) *CuratedRepository {
	return &CuratedRepository{db: d}
}

// Save inserts or updates a curated recipe. A missing ID gets a fresh
// UUID.
func (r *CuratedRepository) Save(ctx context.Context, item meal.PlannedMealItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal recipe to JSON: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO curated_recipes (id, slot, prep_time_minutes, data, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			slot = excluded.slot,
			prep_time_minutes = excluded.prep_time_minutes,
			data = excluded.data,
			updated_at = excluded.updated_at`,
		item.ID, string(item.Slot), item.PrepTimeMinutes, string(data), time.Now())
	if err != nil {
		return fmt.Errorf("failed to save curated recipe: %w", err)
	}
	return nil
}

// Find returns up to limit recipes for a slot whose prep time fits under
// maxPrepMinutes. A zero ceiling means no prep-time restriction.
func (r *CuratedRepository) Find(ctx context.Context, slot meal.Slot, maxPrepMinutes, limit int) ([]meal.PlannedMealItem, error) {
	if limit <= 0 {
		return nil, nil
	}
	if maxPrepMinutes <= 0 {
		maxPrepMinutes = 1 << 30
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT data FROM curated_recipes
		WHERE slot = ? AND prep_time_minutes <= ?
		ORDER BY RANDOM()
		LIMIT ?`,
		string(slot), maxPrepMinutes, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query curated recipes: %w", err)
	}
	defer rows.Close()

	var items []meal.PlannedMealItem
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan curated recipe row: %w", err)
		}
		var item meal.PlannedMealItem
		if err := json.Unmarshal([]byte(data), &item); err != nil {
			// Skip corrupted rows rather than failing the whole query.
			continue
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate curated recipes: %w", err)
	}
	return items, nil
}

// Count returns the number of curated recipes.
func (r *CuratedRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM curated_recipes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count curated recipes: %w", err)
	}
	return count, nil
}
