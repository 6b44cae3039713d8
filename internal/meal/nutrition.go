package meal

// NutritionInfo records the macros of a meal or food. All core fields are
// kcal or grams and never negative; Sugar, Sodium and Fiber are optional
// extras carried when a source provides them (sodium in mg).
type NutritionInfo struct {
	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Sugar    float64 `json:"sugar,omitempty"`
	Sodium   float64 `json:"sodium,omitempty"`
	Fiber    float64 `json:"fiber,omitempty"`
}

// Scale returns a copy with every field multiplied by factor. Used for
// portion adjustment; factor must not be negative.
func (n NutritionInfo) Scale(factor float64) NutritionInfo {
	return NutritionInfo{
		Calories: n.Calories * factor,
		Proteins: n.Proteins * factor,
		Carbs:    n.Carbs * factor,
		Fats:     n.Fats * factor,
		Sugar:    n.Sugar * factor,
		Sodium:   n.Sodium * factor,
		Fiber:    n.Fiber * factor,
	}
}

// Add returns the component-wise sum of two records.
func (n NutritionInfo) Add(other NutritionInfo) NutritionInfo {
	return NutritionInfo{
		Calories: n.Calories + other.Calories,
		Proteins: n.Proteins + other.Proteins,
		Carbs:    n.Carbs + other.Carbs,
		Fats:     n.Fats + other.Fats,
		Sugar:    n.Sugar + other.Sugar,
		Sodium:   n.Sodium + other.Sodium,
		Fiber:    n.Fiber + other.Fiber,
	}
}
