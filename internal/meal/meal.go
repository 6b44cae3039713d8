package meal

import "strings"

// Slot identifies one of the four meal slots of a day.
type Slot string

const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotSnack     Slot = "snack"
	SlotDinner    Slot = "dinner"
)

// Slots lists the slots in day order.
var Slots = []Slot{SlotBreakfast, SlotLunch, SlotSnack, SlotDinner}

// IsSimple reports whether the slot is a simple-item slot (breakfast or
// snack) as opposed to a composed-dish slot (lunch or dinner).
func (s Slot) IsSimple() bool {
	return s == SlotBreakfast || s == SlotSnack
}

// Diet is a dietary regime tag.
type Diet string

const (
	DietOmnivore    Diet = "omnivore"
	DietVegetarian  Diet = "vegetarian"
	DietVegan       Diet = "vegan"
	DietPescatarian Diet = "pescatarian"
	DietHalal       Diet = "halal"
	DietKeto        Diet = "keto"
)

// ParseDiet maps a free-form diet tag to a known Diet. Unknown tags resolve
// to omnivore (no restriction) rather than failing.
func ParseDiet(raw string) Diet {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "vegetarian", "végétarien", "vegetarien":
		return DietVegetarian
	case "vegan", "végan", "végétalien", "vegetalien":
		return DietVegan
	case "pescatarian", "pescetarian", "pescétarien":
		return DietPescatarian
	case "halal":
		return DietHalal
	case "keto", "cétogène", "cetogene", "lowcarb":
		return DietKeto
	default:
		return DietOmnivore
	}
}

// Complexity bounds how elaborate generated meals may be.
type Complexity string

const (
	ComplexitySimple    Complexity = "simple"
	ComplexityElaborate Complexity = "elaborate"
	ComplexityMixed     Complexity = "mixed"
)

// ParseComplexity accepts English and French complexity tags. Unknown tags
// resolve to mixed.
func ParseComplexity(raw string) Complexity {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "simple", "basique", "basic":
		return ComplexitySimple
	case "elaborate", "élaboré", "elabore", "gourmet":
		return ComplexityElaborate
	default:
		return ComplexityMixed
	}
}

// SourcePreference expresses where the user wants their meals to come from.
type SourcePreference string

const (
	PreferFresh    SourcePreference = "fresh"
	PreferRecipes  SourcePreference = "recipes"
	PreferQuick    SourcePreference = "quick"
	PreferBalanced SourcePreference = "balanced"
)

// ParseSourcePreference maps a raw tag to a SourcePreference, defaulting to
// balanced.
func ParseSourcePreference(raw string) SourcePreference {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "fresh", "frais":
		return PreferFresh
	case "recipes", "recettes":
		return PreferRecipes
	case "quick", "rapide":
		return PreferQuick
	default:
		return PreferBalanced
	}
}

// Provenance records which pipeline stage produced a planned meal.
type Provenance string

const (
	ProvenanceCurated  Provenance = "curated"
	ProvenanceExternal Provenance = "external-recipe"
	ProvenanceFoodDB   Provenance = "food-database"
	ProvenanceAI       Provenance = "ai-generated"
)

// Ingredient is one line of a meal's ingredient list.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity string  `json:"quantity"`
	Calories float64 `json:"calories,omitempty"`
}

// PlannedMealItem is the output unit of plan generation. Immutable once
// produced by the cascade, except for the ValidatedByUser flip which belongs
// to a downstream collaborator.
type PlannedMealItem struct {
	ID              string        `json:"id"`
	Day             int           `json:"day"`
	Slot            Slot          `json:"slot"`
	Name            string        `json:"name"`
	Description     string        `json:"description,omitempty"`
	PrepTimeMinutes int           `json:"prep_time_minutes"`
	Servings        int           `json:"servings"`
	Nutrition       NutritionInfo `json:"nutrition"`
	// CaloriesPer100g is the caloric density when the source knows it,
	// 0 when unknown (most external recipes).
	CaloriesPer100g float64      `json:"calories_per_100g,omitempty"`
	Ingredients     []Ingredient `json:"ingredients"`
	Instructions    []string     `json:"instructions,omitempty"`
	Provenance      Provenance   `json:"provenance"`
	IsTreatMeal     bool         `json:"is_treat_meal"`
	ValidatedByUser bool         `json:"validated_by_user"`
}

// Preferences holds all user inputs for one generation run. Supplied once
// per call and never mutated by the engine.
type Preferences struct {
	DailyCalories    float64          `json:"daily_calories"`
	TargetProteins   float64          `json:"target_proteins,omitempty"`
	TargetCarbs      float64          `json:"target_carbs,omitempty"`
	TargetFats       float64          `json:"target_fats,omitempty"`
	Diet             Diet             `json:"diet"`
	Allergies        []string         `json:"allergies,omitempty"`
	IncludeTreatMeal bool             `json:"include_treat_meal"`
	WeekdayPrepMax   int              `json:"weekday_prep_max_minutes"`
	WeekendPrepMax   int              `json:"weekend_prep_max_minutes"`
	Complexity       Complexity       `json:"complexity"`
	CookingSkill     string           `json:"cooking_skill,omitempty"`
	SourcePreference SourcePreference `json:"source_preference"`
	Goal             string           `json:"goal,omitempty"`
}

// PrepCeiling returns the applicable prep-time ceiling in minutes, 0 meaning
// no ceiling.
func (p Preferences) PrepCeiling(weekend bool) int {
	if weekend {
		return p.WeekendPrepMax
	}
	return p.WeekdayPrepMax
}
