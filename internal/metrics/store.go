// Package metrics persists per-generation statistics to SQLite.
package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"nutriplan/internal/meal"
	"nutriplan/internal/planner"
)

// GenerationMetric records metadata for one plan generation run.
type GenerationMetric struct {
	PlanID           string
	DurationDays     int
	MealCount        int
	AIMealCount      int
	CuratedMealCount int
	Elapsed          time.Duration
	Timestamp        time.Time
}

// Store handles persistence of metrics to SQLite.
type Store struct {
	db *sql.DB
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Record saves a metric to the database.
func (s *Store) Record(ctx context.Context, m GenerationMetric) error {
	ts := m.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO generation_metrics
			(plan_id, duration_days, meal_count, ai_meal_count, curated_meal_count, elapsed_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.PlanID, m.DurationDays, m.MealCount, m.AIMealCount, m.CuratedMealCount, m.Elapsed.Milliseconds(), ts)
	if err != nil {
		return fmt.Errorf("failed to insert generation metric: %w", err)
	}
	return nil
}

// FromPlan derives a metric from a finished plan.
func FromPlan(plan *planner.WeeklyPlan, elapsed time.Duration) GenerationMetric {
	m := GenerationMetric{
		PlanID:       plan.ID,
		DurationDays: plan.DurationDays,
		MealCount:    len(plan.Items),
		Elapsed:      elapsed,
	}
	for _, item := range plan.Items {
		switch item.Provenance {
		case meal.ProvenanceAI:
			m.AIMealCount++
		case meal.ProvenanceCurated:
			m.CuratedMealCount++
		}
	}
	return m
}

// Summary is an aggregate over recent generations.
type Summary struct {
	Runs         int
	AvgElapsedMS float64
	AvgAIMeals   float64
	TotalMeals   int
}

// RecentSummary aggregates the last N generation runs.
func (s *Store) RecentSummary(ctx context.Context, limit int) (Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT meal_count, ai_meal_count, elapsed_ms
		FROM generation_metrics
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to query generation metrics: %w", err)
	}
	defer rows.Close()

	var sum Summary
	var elapsedTotal, aiTotal int
	for rows.Next() {
		var meals, ai, elapsed int
		if err := rows.Scan(&meals, &ai, &elapsed); err != nil {
			return Summary{}, fmt.Errorf("failed to scan generation metric: %w", err)
		}
		sum.Runs++
		sum.TotalMeals += meals
		aiTotal += ai
		elapsedTotal += elapsed
	}
	if err := rows.Err(); err != nil {
		return Summary{}, fmt.Errorf("failed to iterate generation metrics: %w", err)
	}
	if sum.Runs > 0 {
		sum.AvgElapsedMS = float64(elapsedTotal) / float64(sum.Runs)
		sum.AvgAIMeals = float64(aiTotal) / float64(sum.Runs)
	}
	return sum, nil
}
