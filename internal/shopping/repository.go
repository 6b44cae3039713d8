package shopping

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Repository handles persistence of shopping lists.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new shopping list repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{db: d}
}

// Save inserts a shopping list.
func (r *Repository) Save(ctx context.Context, list *ShoppingList) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal shopping list: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO shopping_lists (id, meal_plan_id, data, created_at)
		VALUES (?, ?, ?, ?)`,
		list.ID, list.MealPlanID, string(data), list.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert shopping list: %w", err)
	}
	return nil
}

// GetByMealPlanID retrieves the list for a plan, or (nil, nil) when none
// exists.
func (r *Repository) GetByMealPlanID(ctx context.Context, mealPlanID string) (*ShoppingList, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `
		SELECT data FROM shopping_lists
		WHERE meal_plan_id = ?
		ORDER BY created_at DESC
		LIMIT 1`, mealPlanID).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shopping list by meal plan ID: %w", err)
	}

	var list ShoppingList
	if err := json.Unmarshal([]byte(data), &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shopping list: %w", err)
	}
	return &list, nil
}

// DeleteByMealPlanID removes the lists attached to a plan.
func (r *Repository) DeleteByMealPlanID(ctx context.Context, mealPlanID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM shopping_lists WHERE meal_plan_id = ?`, mealPlanID); err != nil {
		return fmt.Errorf("failed to delete shopping list: %w", err)
	}
	return nil
}
