package planner

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PlanRepository is a database-backed repository for generated plans.
type PlanRepository struct {
	db *sql.DB
}

// NewPlanRepository creates a new PlanRepository.
func NewPlanRepository(d *sql.DB) *PlanRepository {
	return &PlanRepository{db: d}
}

// Save inserts a finished plan.
func (r *PlanRepository) Save(ctx context.Context, plan *WeeklyPlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal plan to JSON: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO meal_plans (id, duration_days, data, created_at)
		VALUES (?, ?, ?, ?)`,
		plan.ID, plan.DurationDays, string(data), plan.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save meal plan: %w", err)
	}
	return nil
}

// Get retrieves a plan by its ID. A missing plan returns (nil, nil).
func (r *PlanRepository) Get(ctx context.Context, id string) (*WeeklyPlan, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM meal_plans WHERE id = ?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get meal plan: %w", err)
	}

	var plan WeeklyPlan
	if err := json.Unmarshal([]byte(data), &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal meal plan JSON: %w", err)
	}
	return &plan, nil
}

// ListRecent retrieves the N most recent plans, newest first.
func (r *PlanRepository) ListRecent(ctx context.Context, limit int) ([]WeeklyPlan, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT data FROM meal_plans
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list meal plans: %w", err)
	}
	defer rows.Close()

	var plans []WeeklyPlan
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan meal plan row: %w", err)
		}
		var plan WeeklyPlan
		if err := json.Unmarshal([]byte(data), &plan); err != nil {
			continue
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate meal plans: %w", err)
	}
	return plans, nil
}
