package sources

import "strings"

type portionRange struct {
	Min     float64
	Typical float64
	Max     float64
}

// typicalPortions maps food-name fragments to realistic gram/ml portions.
// Lookup is exact-substring on the normalized name, first match wins.
var typicalPortions = []struct {
	fragment string
	portion  portionRange
}{
	{"yaourt", portionRange{Min: 100, Typical: 125, Max: 250}},
	{"fromage blanc", portionRange{Min: 100, Typical: 150, Max: 300}},
	{"flocons d'avoine", portionRange{Min: 30, Typical: 50, Max: 80}},
	{"muesli", portionRange{Min: 30, Typical: 50, Max: 80}},
	{"granola", portionRange{Min: 30, Typical: 45, Max: 70}},
	{"pain", portionRange{Min: 30, Typical: 60, Max: 120}},
	{"banane", portionRange{Min: 80, Typical: 120, Max: 150}},
	{"pomme", portionRange{Min: 100, Typical: 150, Max: 200}},
	{"oeuf", portionRange{Min: 50, Typical: 100, Max: 150}},
	{"riz", portionRange{Min: 50, Typical: 70, Max: 100}},
	{"pates", portionRange{Min: 60, Typical: 85, Max: 120}},
	{"poulet", portionRange{Min: 100, Typical: 150, Max: 200}},
	{"poisson", portionRange{Min: 100, Typical: 140, Max: 180}},
	{"saumon", portionRange{Min: 100, Typical: 140, Max: 180}},
	{"lait", portionRange{Min: 150, Typical: 250, Max: 350}},
	{"jus", portionRange{Min: 150, Typical: 200, Max: 250}},
	{"amande", portionRange{Min: 15, Typical: 30, Max: 50}},
	{"noix", portionRange{Min: 15, Typical: 30, Max: 50}},
	{"compote", portionRange{Min: 90, Typical: 100, Max: 200}},
	{"soupe", portionRange{Min: 250, Typical: 300, Max: 400}},
	{"salade", portionRange{Min: 150, Typical: 250, Max: 350}},
	{"chocolat", portionRange{Min: 10, Typical: 20, Max: 40}},
}

const defaultPortionGrams = 100

// PortionFor returns a realistic portion size in grams or milliliters for
// a simple food item. Unknown foods get 100.
func PortionFor(name string) float64 {
	lowered := strings.ToLower(name)
	for _, entry := range typicalPortions {
		if strings.Contains(lowered, entry.fragment) {
			return entry.portion.Typical
		}
	}
	return defaultPortionGrams
}
