package filter

// Keyword tables for ingredient matching. Matching is substring based on
// lowercased, accent-folded text, so "fromage râpé" trips "fromage".

var meatKeywords = []string{
	"boeuf", "bœuf", "veau", "porc", "jambon", "lardon", "bacon",
	"poulet", "dinde", "canard", "agneau", "mouton", "lapin",
	"saucisse", "chorizo", "merguez", "viande", "steak", "gesier",
	"foie", "charcuterie", "pate de campagne",
}

var fishKeywords = []string{
	"poisson", "saumon", "thon", "cabillaud", "colin", "maquereau",
	"sardine", "truite", "crevette", "moule", "huitre", "crabe",
	"homard", "calamar", "anchois", "lieu", "sole", "bar", "dorade",
	"fruits de mer", "surimi",
}

var dairyKeywords = []string{
	"lait", "fromage", "beurre", "creme", "crème", "yaourt", "yogourt",
	"mozzarella", "parmesan", "gruyere", "emmental", "comte", "feta",
	"chevre", "ricotta", "mascarpone", "raclette", "camembert", "brie",
	"roquefort", "creme fraiche",
}

var eggKeywords = []string{"oeuf", "œuf", "omelette", "mayonnaise"}

var honeyKeywords = []string{"miel"}

var glutenKeywords = []string{
	"ble", "blé", "farine", "pain", "pates", "pâtes", "semoule",
	"couscous", "boulgour", "orge", "seigle", "avoine", "chapelure",
	"brioche", "croissant", "pizza", "biscotte",
}

var allergenKeywords = map[string][]string{
	"gluten":        glutenKeywords,
	"lactose":       dairyKeywords,
	"lait":          dairyKeywords,
	"oeuf":          eggKeywords,
	"oeufs":         eggKeywords,
	"arachide":      {"arachide", "cacahuete", "cacahuète", "beurre de cacahuete"},
	"arachides":     {"arachide", "cacahuete", "cacahuète", "beurre de cacahuete"},
	"fruits a coque": {
		"noix", "noisette", "amande", "pistache", "cajou", "pecan",
		"macadamia",
	},
	"noix":       {"noix", "noisette", "amande", "pistache", "cajou", "pecan"},
	"soja":       {"soja", "tofu", "tempeh", "edamame", "sauce soja"},
	"poisson":    fishKeywords,
	"crustaces":  {"crevette", "crabe", "homard", "langoustine", "ecrevisse"},
	"mollusques": {"moule", "huitre", "calamar", "poulpe", "escargot", "coquille saint-jacques"},
	"sesame":     {"sesame", "sésame", "tahini"},
	"moutarde":   {"moutarde"},
	"celeri":     {"celeri", "céleri"},
	"sulfites":   {"vin", "vinaigre de vin", "fruits secs"},
}

var porkKeywords = []string{
	"porc", "jambon", "lardon", "bacon", "saucisson", "chorizo",
	"rillettes", "boudin", "andouille",
}

var alcoholKeywords = []string{
	"vin", "biere", "bière", "rhum", "cognac", "whisky", "liqueur",
	"champagne", "cidre",
}

var highCarbKeywords = []string{
	"sucre", "farine", "pain", "pates", "pâtes", "riz", "pomme de terre",
	"semoule", "couscous", "miel", "confiture", "sirop", "cereales",
	"banane", "jus de fruit",
}

var sweetKeywords = []string{
	"sucre", "miel", "confiture", "chocolat", "caramel", "vanille",
	"compote", "sirop", "nutella", "pate a tartiner", "gateau", "crepe",
	"pancake", "muffin", "brioche", "banane", "fraise", "framboise",
	"pomme", "poire", "abricot", "cerise", "myrtille", "mangue",
	"granola", "muesli", "cereales",
}

var savoryKeywords = []string{
	"sel", "poivre", "oignon", "ail", "tomate", "fromage", "jambon",
	"lardon", "olive", "moutarde", "cornichon", "anchois", "bouillon",
	"herbes de provence", "curry", "paprika", "cumin",
}
