// Package app wires the collaborators together and exposes the
// top-level flows: plan generation, recipe ingestion and metrics.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"nutriplan/internal/config"
	"nutriplan/internal/database"
	"nutriplan/internal/llm"
	"nutriplan/internal/meal"
	"nutriplan/internal/metrics"
	"nutriplan/internal/planner"
	"nutriplan/internal/shopping"
	"nutriplan/internal/sources"
)

// App holds the application's dependencies.
type App struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *database.DB

	textGen     llm.TextGenerator
	mealGen     *llm.MealGenerator
	mealPlanner *planner.Planner
	shopper     *shopping.Aggregator

	curatedRepo  *sources.CuratedRepository
	extractor    *sources.PageExtractor
	planRepo     *planner.PlanRepository
	shoppingRepo *shopping.Repository
	metricsStore *metrics.Store
}

// New builds the full application from configuration. AI credentials
// are optional: without them the planner runs on local sources and the
// built-in recipe tables.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := database.NewDB(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	a := &App{
		cfg:          cfg,
		logger:       logger,
		db:           db,
		curatedRepo:  sources.NewCuratedRepository(db.SQL),
		extractor:    sources.NewPageExtractor(),
		planRepo:     planner.NewPlanRepository(db.SQL),
		shoppingRepo: shopping.NewRepository(db.SQL),
		metricsStore: metrics.NewStore(db.SQL),
	}

	a.textGen, err = newTextGenerator(ctx, cfg)
	if err != nil {
		// AI is a degradable collaborator, not a hard dependency.
		logger.Warn("text generator unavailable, plans will use local sources only", zap.Error(err))
	}

	var ai planner.AIGenerator
	if a.textGen != nil {
		a.mealGen = llm.NewMealGenerator(a.textGen)
		ai = a.mealGen
	}

	aggregator := sources.NewAggregator(
		a.curatedRepo,
		sources.NewSpoonacularClient(cfg.SpoonacularAPIKey),
		sources.NewOpenFoodFactsClient(),
		sources.NewRecipeHealthFilter(),
		logger,
		nil,
	)

	a.mealPlanner = planner.New(aggregator, ai, logger, nil)
	a.shopper = shopping.NewAggregator(a.textGen, logger)
	return a, nil
}

func newTextGenerator(ctx context.Context, cfg *config.Config) (llm.TextGenerator, error) {
	switch {
	case cfg.LLMProvider == config.ProviderGroq && cfg.GroqAPIKey != "":
		return llm.NewGroqClient(cfg.GroqAPIKey), nil
	case cfg.GeminiAPIKey != "":
		return llm.NewGeminiClient(ctx, cfg.GeminiAPIKey)
	case cfg.GroqAPIKey != "":
		return llm.NewGroqClient(cfg.GroqAPIKey), nil
	default:
		return nil, fmt.Errorf("no LLM credentials configured")
	}
}

// Close releases the app's resources.
func (a *App) Close() error {
	if closer, ok := a.textGen.(llm.Closer); ok {
		_ = closer.Close()
	}
	return a.db.Close()
}

// GeneratePlan runs the full generation flow: plan, validation warnings,
// shopping list, persistence and metrics.
func (a *App) GeneratePlan(ctx context.Context, prefs meal.Preferences, durationDays, servings int) (*planner.WeeklyPlan, *shopping.ShoppingList, error) {
	start := time.Now()

	plan := a.mealPlanner.GeneratePlan(ctx, prefs, durationDays)

	for _, issue := range planner.ValidatePlan(plan) {
		a.logger.Warn("plan validation issue", zap.String("issue", issue.String()))
	}

	list := a.shopper.BuildList(ctx, plan, servings)

	if err := a.planRepo.Save(ctx, plan); err != nil {
		return nil, nil, fmt.Errorf("failed to persist plan: %w", err)
	}
	if err := a.shoppingRepo.Save(ctx, list); err != nil {
		return nil, nil, fmt.Errorf("failed to persist shopping list: %w", err)
	}

	if err := a.metricsStore.Record(ctx, metrics.FromPlan(plan, time.Since(start))); err != nil {
		a.logger.Warn("failed to record generation metric", zap.Error(err))
	}
	return plan, list, nil
}

// MetricsSummary aggregates the most recent generation runs.
func (a *App) MetricsSummary(ctx context.Context, limit int) (metrics.Summary, error) {
	return a.metricsStore.RecentSummary(ctx, limit)
}
