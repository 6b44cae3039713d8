// Package filter holds the pure candidate predicates: diet compatibility,
// allergen exclusion, cultural breakfast conventions and complexity
// ceilings. All matching is keyword based over normalized French text.
package filter

import (
	"strings"

	"nutriplan/internal/meal"
)

// dietExclusions maps each diet to the keyword families it forbids.
// Vegan is strictly wider than vegetarian.
var dietExclusions = map[meal.Diet][][]string{
	meal.DietVegetarian:  {meatKeywords, fishKeywords},
	meal.DietVegan:       {meatKeywords, fishKeywords, dairyKeywords, eggKeywords, honeyKeywords},
	meal.DietPescatarian: {meatKeywords},
	meal.DietHalal:       {porkKeywords, alcoholKeywords},
	meal.DietKeto:        {highCarbKeywords},
}

// complexityCeiling is the ingredient-count ceiling per recipe complexity.
var complexityCeiling = map[meal.Complexity]int{
	meal.ComplexitySimple:    4,
	meal.ComplexityElaborate: 15,
	meal.ComplexityMixed:     10,
}

// normalize lowercases and strips the French accents so "Crème" matches
// "creme".
func normalize(s string) string {
	s = strings.ToLower(s)
	replacer := strings.NewReplacer(
		"à", "a", "â", "a", "ä", "a",
		"é", "e", "è", "e", "ê", "e", "ë", "e",
		"î", "i", "ï", "i",
		"ô", "o", "ö", "o",
		"ù", "u", "û", "u", "ü", "u",
		"ç", "c", "œ", "oe",
	)
	return replacer.Replace(s)
}

// searchText flattens a candidate's name and ingredient names into one
// normalized haystack.
func searchText(m meal.PlannedMealItem) string {
	var sb strings.Builder
	sb.WriteString(m.Name)
	sb.WriteByte(' ')
	sb.WriteString(m.Description)
	for _, ing := range m.Ingredients {
		sb.WriteByte(' ')
		sb.WriteString(ing.Name)
	}
	return normalize(sb.String())
}

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, normalize(kw)) {
			return true
		}
	}
	return false
}

// MatchesDiet reports whether the candidate is compatible with the diet.
// Omnivore admits everything.
func MatchesDiet(m meal.PlannedMealItem, diet meal.Diet) bool {
	families, ok := dietExclusions[diet]
	if !ok {
		return true
	}
	text := searchText(m)
	for _, family := range families {
		if matchesAny(text, family) {
			return false
		}
	}
	return true
}

// FreeOfAllergens reports whether the candidate avoids every declared
// allergen. Each allergen tag is checked against its keyword family plus
// a literal substring match of the tag itself. Any hit is a hard
// exclusion.
func FreeOfAllergens(m meal.PlannedMealItem, allergies []string) bool {
	if len(allergies) == 0 {
		return true
	}
	text := searchText(m)
	for _, allergy := range allergies {
		tag := normalize(strings.TrimSpace(allergy))
		if tag == "" {
			continue
		}
		if strings.Contains(text, tag) {
			return false
		}
		if family, ok := allergenKeywords[tag]; ok && matchesAny(text, family) {
			return false
		}
	}
	return true
}

// FitsMealConvention applies the sweet-breakfast rule: for breakfast and
// snack slots a candidate passes when it matches the sweet whitelist, or
// when it matches neither list. Only confidently savory items are
// rejected. Lunch and dinner are unrestricted.
func FitsMealConvention(m meal.PlannedMealItem, slot meal.Slot) bool {
	if !slot.IsSimple() {
		return true
	}
	text := searchText(m)
	if matchesAny(text, sweetKeywords) {
		return true
	}
	return !matchesAny(text, savoryKeywords)
}

// FitsComplexity rejects candidates whose ingredient count exceeds the
// complexity ceiling.
func FitsComplexity(m meal.PlannedMealItem, complexity meal.Complexity) bool {
	ceiling, ok := complexityCeiling[complexity]
	if !ok {
		ceiling = complexityCeiling[meal.ComplexityMixed]
	}
	return len(m.Ingredients) <= ceiling
}

// Apply runs the predicates in sequence over the candidate list and
// returns the survivors, preserving order. Short-circuits per candidate
// on the first failing predicate.
func Apply(candidates []meal.PlannedMealItem, prefs meal.Preferences, slot meal.Slot) []meal.PlannedMealItem {
	kept := make([]meal.PlannedMealItem, 0, len(candidates))
	for _, c := range candidates {
		if !MatchesDiet(c, prefs.Diet) {
			continue
		}
		if !FreeOfAllergens(c, prefs.Allergies) {
			continue
		}
		if !FitsMealConvention(c, slot) {
			continue
		}
		if !FitsComplexity(c, prefs.Complexity) {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}
