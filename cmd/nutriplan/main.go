package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"nutriplan/internal/app"
	"nutriplan/internal/config"
	"nutriplan/internal/meal"
	"nutriplan/internal/planner"
	"nutriplan/internal/shopping"
)

func main() {
	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer application.Close()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate":
		generateCmd := flag.NewFlagSet("generate", flag.ExitOnError)
		days := generateCmd.Int("days", 7, "Plan duration in days (1, 3 or 7)")
		calories := generateCmd.Float64("calories", cfg.DailyCalories, "Daily calorie target")
		diet := generateCmd.String("diet", "", "Diet tag (vegetarien, vegan, pescetarien, halal, keto)")
		allergies := generateCmd.String("allergies", "", "Comma-separated allergy tags")
		goal := generateCmd.String("goal", "", "Nutrition goal (weight_loss, muscle_gain, balanced)")
		complexity := generateCmd.String("complexity", "mixed", "Recipe complexity (basique, elabore, mixte)")
		source := generateCmd.String("source", "balanced", "Source preference (fresh, recipes, quick, balanced)")
		treat := generateCmd.Bool("treat", false, "Include the weekly treat meal")
		weekdayPrep := generateCmd.Int("weekday-prep", 0, "Weekday prep-time ceiling in minutes (0 = no limit)")
		weekendPrep := generateCmd.Int("weekend-prep", 0, "Weekend prep-time ceiling in minutes (0 = no limit)")
		servings := generateCmd.Int("servings", cfg.Servings, "Serving count for the shopping list")
		generateCmd.Parse(os.Args[2:])

		prefs := meal.Preferences{
			DailyCalories:    *calories,
			Diet:             meal.ParseDiet(*diet),
			Allergies:        splitTags(*allergies),
			IncludeTreatMeal: *treat,
			WeekdayPrepMax:   *weekdayPrep,
			WeekendPrepMax:   *weekendPrep,
			Complexity:       meal.ParseComplexity(*complexity),
			SourcePreference: meal.ParseSourcePreference(*source),
			Goal:             *goal,
		}

		plan, list, err := application.GeneratePlan(ctx, prefs, *days, *servings)
		if err != nil {
			log.Fatalf("Plan generation failed: %v", err)
		}
		printPlan(plan, list)

	case "ingest":
		if len(os.Args) < 3 {
			fmt.Println("Usage: nutriplan ingest <url> [url...]")
			os.Exit(1)
		}
		saved, err := application.IngestRecipes(ctx, os.Args[2:])
		if err != nil {
			log.Fatalf("Ingestion failed: %v", err)
		}
		fmt.Printf("Ingested %d recipe(s).\n", saved)

	case "metrics":
		metricsCmd := flag.NewFlagSet("metrics", flag.ExitOnError)
		limit := metricsCmd.Int("limit", 30, "Number of recent runs to aggregate")
		metricsCmd.Parse(os.Args[2:])

		summary, err := application.MetricsSummary(ctx, *limit)
		if err != nil {
			log.Fatalf("Failed to load metrics: %v", err)
		}
		fmt.Printf("Runs: %d | Meals: %d | Avg AI meals/run: %.1f | Avg latency: %.0fms\n",
			summary.Runs, summary.TotalMeals, summary.AvgAIMeals, summary.AvgElapsedMS)

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func printPlan(plan *planner.WeeklyPlan, list *shopping.ShoppingList) {
	fmt.Printf("Plan %s (%d days)\n", plan.ID, plan.DurationDays)
	for day := 0; day < plan.DurationDays; day++ {
		fmt.Printf("\nDay %d (%.0f kcal)\n", day+1, plan.DayCalories(day))
		for _, item := range plan.ItemsForDay(day) {
			marker := ""
			if item.IsTreatMeal {
				marker = " *"
			}
			fmt.Printf("  %-10s %s (%.0f kcal)%s\n", item.Slot, item.Name, item.Nutrition.Calories, marker)
		}
	}

	fmt.Printf("\nShopping list (%d items", list.ItemCount())
	if list.Categorized {
		fmt.Printf(", ~%.2f EUR", list.EstimatedCost)
	}
	fmt.Println(")")
	for _, cat := range list.Categories {
		fmt.Printf("  %s\n", cat.Name)
		for _, item := range cat.Items {
			fmt.Printf("    - %s (%s)\n", item.Name, item.Quantity)
		}
	}
	if list.Tip != "" {
		fmt.Printf("\n%s\n", list.Tip)
	}
}

func printUsage() {
	fmt.Println("Usage: nutriplan <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  generate   Generate a meal plan and its shopping list")
	fmt.Println("  ingest     Extract recipes from URLs into the curated store")
	fmt.Println("  metrics    Show aggregate generation metrics")
}
