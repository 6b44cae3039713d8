// Package shopping turns a finished meal plan into a shopping list,
// preferring AI categorization and pricing with a local aggregation
// fallback.
package shopping

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nutriplan/internal/llm"
	"nutriplan/internal/planner"
)

//go:embed shopping_prompt.md
var shoppingPrompt string

// fallbackCategory is the single bucket of the local aggregation path.
const fallbackCategory = "Divers"

const fallbackTip = "Liste générée hors ligne : les articles ne sont ni classés par rayon ni chiffrés. Vérifiez les quantités avant de partir en courses."

// Aggregator builds shopping lists from plans.
type Aggregator struct {
	textGen llm.TextGenerator
	logger  *zap.Logger
}

// NewAggregator creates an Aggregator. textGen may be nil, forcing the
// local fallback path.
func NewAggregator(textGen llm.TextGenerator, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{textGen: textGen, logger: logger}
}

// BuildList aggregates the plan's ingredients into a shopping list for
// the given serving count. The AI path produces priced, categorized
// items; any failure there degrades to the local aggregation, so the
// call itself never fails.
func (a *Aggregator) BuildList(ctx context.Context, plan *planner.WeeklyPlan, servings int) *ShoppingList {
	if servings <= 0 {
		servings = 1
	}

	list, err := a.categorized(ctx, plan, servings)
	if err != nil {
		a.logger.Warn("shopping list categorization failed, using local aggregation", zap.Error(err))
		list = a.localList(plan)
	}

	list.ID = uuid.NewString()
	list.MealPlanID = plan.ID
	list.Servings = servings
	list.CreatedAt = time.Now()
	return list
}

type promptData struct {
	Servings    int
	Meals       []string
	Ingredients []string
}

func (a *Aggregator) categorized(ctx context.Context, plan *planner.WeeklyPlan, servings int) (*ShoppingList, error) {
	if a.textGen == nil {
		return nil, fmt.Errorf("no text generator configured")
	}

	data := promptData{Servings: servings}
	for _, item := range plan.Items {
		data.Meals = append(data.Meals, item.Name)
		for _, ing := range item.Ingredients {
			data.Ingredients = append(data.Ingredients, fmt.Sprintf("%s (%s)", ing.Name, ing.Quantity))
		}
	}

	tmpl, err := template.New("shopping").Parse(shoppingPrompt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse shopping prompt: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to build shopping prompt: %w", err)
	}

	resp, err := a.textGen.GenerateContent(ctx, buf.String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate shopping list: %w", err)
	}

	var parsed struct {
		Categories []Category `json:"categories"`
	}
	if err := json.Unmarshal([]byte(llm.StripJSONFences(resp)), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse shopping list response: %w", err)
	}
	if len(parsed.Categories) == 0 {
		return nil, fmt.Errorf("shopping list response has no categories")
	}

	list := &ShoppingList{Categories: parsed.Categories, Categorized: true}
	for i := range list.Categories {
		var subtotal float64
		for _, item := range list.Categories[i].Items {
			subtotal += item.EstimatedCost
		}
		list.Categories[i].Subtotal = subtotal
		list.EstimatedCost += subtotal
	}
	return list, nil
}

// localList groups ingredients by lower-cased trimmed name, concatenates
// quantities with an occurrence count and drops everything in a single
// unpriced category.
func (a *Aggregator) localList(plan *planner.WeeklyPlan) *ShoppingList {
	type bucket struct {
		name       string
		quantities []string
		count      int
	}
	byName := make(map[string]*bucket)
	var order []string

	for _, item := range plan.Items {
		for _, ing := range item.Ingredients {
			key := strings.ToLower(strings.TrimSpace(ing.Name))
			if key == "" {
				continue
			}
			b, ok := byName[key]
			if !ok {
				b = &bucket{name: strings.TrimSpace(ing.Name)}
				byName[key] = b
				order = append(order, key)
			}
			if q := strings.TrimSpace(ing.Quantity); q != "" {
				b.quantities = append(b.quantities, q)
			}
			b.count++
		}
	}

	items := make([]Item, 0, len(order))
	for _, key := range order {
		b := byName[key]
		quantity := strings.Join(b.quantities, " + ")
		if b.count > 1 {
			quantity = fmt.Sprintf("%s (x%d)", quantity, b.count)
		}
		items = append(items, Item{
			Name:        b.name,
			Quantity:    quantity,
			Occurrences: b.count,
		})
	}

	return &ShoppingList{
		Categories: []Category{{Name: fallbackCategory, Items: items}},
		Tip:        fallbackTip,
	}
}
