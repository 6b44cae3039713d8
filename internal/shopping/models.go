package shopping

import "time"

// Item is one purchasable entry on the list. Checked starts false and
// is flipped by the caller as the user shops.
type Item struct {
	Name          string  `json:"name"`
	Quantity      string  `json:"quantity"`
	Occurrences   int     `json:"occurrences"`
	EstimatedCost float64 `json:"estimated_cost"`
	Checked       bool    `json:"checked"`
}

// Category groups items by store aisle.
type Category struct {
	Name     string  `json:"name"`
	Items    []Item  `json:"items"`
	Subtotal float64 `json:"subtotal"`
}

// ShoppingList is the aggregated list for one meal plan. Categorized
// reports whether the AI categorization path produced it; the local
// fallback yields a single uncategorized, unpriced category.
type ShoppingList struct {
	ID            string     `json:"id"`
	MealPlanID    string     `json:"meal_plan_id"`
	Servings      int        `json:"servings"`
	Categories    []Category `json:"categories"`
	EstimatedCost float64    `json:"estimated_cost"`
	Categorized   bool       `json:"categorized"`
	Tip           string     `json:"tip,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ItemCount returns the total number of entries across categories.
func (l *ShoppingList) ItemCount() int {
	var count int
	for _, c := range l.Categories {
		count += len(c.Items)
	}
	return count
}
