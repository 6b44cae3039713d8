package planner

import (
	"github.com/google/uuid"

	"nutriplan/internal/meal"
)

// Built-in recipes keyed by slot and complexity. This table is the last
// cascade state and must cover every slot/complexity combination so a
// plan can always be completed offline.
var builtinMeals = map[meal.Slot]map[meal.Complexity][]meal.PlannedMealItem{
	meal.SlotBreakfast: {
		meal.ComplexitySimple: {
			{
				Name:            "Yaourt, miel et flocons d'avoine",
				Description:     "Bol de yaourt nature avec flocons d'avoine et un filet de miel",
				PrepTimeMinutes: 5,
				Servings:        1,
				Nutrition:       meal.NutritionInfo{Calories: 320, Proteins: 14, Carbs: 48, Fats: 8},
				Ingredients: []meal.Ingredient{
					{Name: "yaourt nature", Quantity: "250g", Calories: 150},
					{Name: "flocons d'avoine", Quantity: "40g", Calories: 150},
					{Name: "miel", Quantity: "1 c. à café", Calories: 20},
				},
				Instructions: []string{"Verser le yaourt dans un bol", "Ajouter les flocons d'avoine et le miel"},
			},
			{
				Name:            "Tartines beurre et confiture",
				Description:     "Pain complet, beurre et confiture, avec un fruit",
				PrepTimeMinutes: 5,
				Servings:        1,
				Nutrition:       meal.NutritionInfo{Calories: 380, Proteins: 9, Carbs: 62, Fats: 11},
				Ingredients: []meal.Ingredient{
					{Name: "pain complet", Quantity: "80g", Calories: 200},
					{Name: "beurre", Quantity: "10g", Calories: 75},
					{Name: "confiture", Quantity: "20g", Calories: 55},
					{Name: "banane", Quantity: "1", Calories: 90},
				},
				Instructions: []string{"Griller le pain", "Tartiner de beurre puis de confiture"},
			},
		},
		meal.ComplexityElaborate: {
			{
				Name:            "Porridge aux fruits rouges et amandes",
				Description:     "Flocons d'avoine cuits au lait, fruits rouges et amandes effilées",
				PrepTimeMinutes: 15,
				Servings:        1,
				Nutrition:       meal.NutritionInfo{Calories: 420, Proteins: 16, Carbs: 58, Fats: 14},
				Ingredients: []meal.Ingredient{
					{Name: "flocons d'avoine", Quantity: "60g", Calories: 220},
					{Name: "lait demi-écrémé", Quantity: "250ml", Calories: 115},
					{Name: "fruits rouges", Quantity: "100g", Calories: 45},
					{Name: "amandes effilées", Quantity: "10g", Calories: 60},
				},
				Instructions: []string{
					"Porter le lait à frémissement",
					"Ajouter les flocons et cuire 10 minutes en remuant",
					"Servir avec les fruits rouges et les amandes",
				},
			},
		},
	},
	meal.SlotLunch: {
		meal.ComplexitySimple: {
			{
				Name:            "Salade de pâtes au thon",
				Description:     "Pâtes froides, thon, tomates et huile d'olive",
				PrepTimeMinutes: 15,
				Servings:        1,
				Nutrition:       meal.NutritionInfo{Calories: 620, Proteins: 35, Carbs: 70, Fats: 20},
				Ingredients: []meal.Ingredient{
					{Name: "pâtes", Quantity: "100g", Calories: 350},
					{Name: "thon au naturel", Quantity: "100g", Calories: 110},
					{Name: "tomates cerises", Quantity: "100g", Calories: 20},
					{Name: "huile d'olive", Quantity: "1 c. à soupe", Calories: 90},
				},
				Instructions: []string{"Cuire les pâtes et les refroidir", "Mélanger avec le thon, les tomates et l'huile"},
			},
		},
		meal.ComplexityElaborate: {
			{
				Name:            "Poulet rôti, riz et ratatouille",
				Description:     "Filet de poulet rôti accompagné de riz et de légumes mijotés",
				PrepTimeMinutes: 40,
				Servings:        1,
				Nutrition:       meal.NutritionInfo{Calories: 680, Proteins: 48, Carbs: 65, Fats: 22},
				Ingredients: []meal.Ingredient{
					{Name: "filet de poulet", Quantity: "150g", Calories: 250},
					{Name: "riz", Quantity: "80g", Calories: 280},
					{Name: "courgette", Quantity: "100g", Calories: 20},
					{Name: "aubergine", Quantity: "100g", Calories: 25},
					{Name: "tomate", Quantity: "100g", Calories: 20},
					{Name: "huile d'olive", Quantity: "1 c. à soupe", Calories: 90},
				},
				Instructions: []string{
					"Faire revenir les légumes coupés en dés 20 minutes",
					"Rôtir le filet de poulet",
					"Cuire le riz et dresser",
				},
			},
		},
	},
	meal.SlotSnack: {
		meal.ComplexitySimple: {
			{
				Name:            "Pomme et amandes",
				Description:     "Une pomme croquante et une poignée d'amandes",
				PrepTimeMinutes: 2,
				Servings:        1,
				Nutrition:       meal.NutritionInfo{Calories: 210, Proteins: 6, Carbs: 24, Fats: 11},
				Ingredients: []meal.Ingredient{
					{Name: "pomme", Quantity: "1", Calories: 80},
					{Name: "amandes", Quantity: "20g", Calories: 130},
				},
				Instructions: []string{"Laver la pomme", "Servir avec les amandes"},
			},
			{
				Name:            "Fromage blanc à la compote",
				Description:     "Fromage blanc nature et compote de pommes sans sucre ajouté",
				PrepTimeMinutes: 2,
				Servings:        1,
				Nutrition:       meal.NutritionInfo{Calories: 180, Proteins: 12, Carbs: 26, Fats: 3},
				Ingredients: []meal.Ingredient{
					{Name: "fromage blanc", Quantity: "150g", Calories: 110},
					{Name: "compote de pommes", Quantity: "100g", Calories: 70},
				},
				Instructions: []string{"Mélanger le fromage blanc et la compote"},
			},
		},
		meal.ComplexityElaborate: {
			{
				Name:            "Energy balls avoine et dattes",
				Description:     "Boules d'énergie maison aux dattes, avoine et cacao",
				PrepTimeMinutes: 20,
				Servings:        1,
				Nutrition:       meal.NutritionInfo{Calories: 240, Proteins: 7, Carbs: 34, Fats: 9},
				Ingredients: []meal.Ingredient{
					{Name: "dattes", Quantity: "60g", Calories: 170},
					{Name: "flocons d'avoine", Quantity: "20g", Calories: 75},
					{Name: "cacao en poudre", Quantity: "5g", Calories: 15},
				},
				Instructions: []string{
					"Mixer les dattes avec les flocons et le cacao",
					"Former des boules et réserver au frais",
				},
			},
		},
	},
	meal.SlotDinner: {
		meal.ComplexitySimple: {
			{
				Name:            "Omelette aux herbes et salade verte",
				Description:     "Omelette de trois oeufs, herbes fraîches et salade assaisonnée",
				PrepTimeMinutes: 15,
				Servings:        1,
				Nutrition:       meal.NutritionInfo{Calories: 450, Proteins: 28, Carbs: 8, Fats: 33},
				Ingredients: []meal.Ingredient{
					{Name: "oeufs", Quantity: "3", Calories: 230},
					{Name: "salade verte", Quantity: "100g", Calories: 15},
					{Name: "huile d'olive", Quantity: "1 c. à soupe", Calories: 90},
					{Name: "herbes fraîches", Quantity: "1 poignée", Calories: 5},
				},
				Instructions: []string{"Battre les oeufs avec les herbes", "Cuire l'omelette", "Assaisonner la salade"},
			},
		},
		meal.ComplexityElaborate: {
			{
				Name:            "Saumon au four, quinoa et brocoli",
				Description:     "Pavé de saumon rôti, quinoa et brocoli vapeur au citron",
				PrepTimeMinutes: 30,
				Servings:        1,
				Nutrition:       meal.NutritionInfo{Calories: 610, Proteins: 42, Carbs: 48, Fats: 26},
				Ingredients: []meal.Ingredient{
					{Name: "pavé de saumon", Quantity: "140g", Calories: 290},
					{Name: "quinoa", Quantity: "70g", Calories: 250},
					{Name: "brocoli", Quantity: "150g", Calories: 50},
					{Name: "citron", Quantity: "1/2", Calories: 10},
				},
				Instructions: []string{
					"Cuire le saumon au four 15 minutes",
					"Cuire le quinoa et le brocoli vapeur",
					"Arroser de jus de citron",
				},
			},
		},
	},
}

// Treat-meal fallbacks, used for the treat dinner when the AI path
// fails.
var builtinTreatMeals = []meal.PlannedMealItem{
	{
		Name:            "Raclette maison",
		Description:     "Raclette conviviale, pommes de terre, fromage et charcuterie",
		PrepTimeMinutes: 25,
		Servings:        1,
		Nutrition:       meal.NutritionInfo{Calories: 1150, Proteins: 48, Carbs: 75, Fats: 70},
		Ingredients: []meal.Ingredient{
			{Name: "fromage à raclette", Quantity: "180g", Calories: 600},
			{Name: "pommes de terre", Quantity: "300g", Calories: 240},
			{Name: "charcuterie", Quantity: "80g", Calories: 280},
			{Name: "cornichons", Quantity: "30g", Calories: 10},
		},
		Instructions: []string{"Cuire les pommes de terre", "Faire fondre le fromage et servir"},
	},
	{
		Name:            "Burger maison et frites au four",
		Description:     "Burger généreux avec steak, cheddar et frites de pommes de terre au four",
		PrepTimeMinutes: 35,
		Servings:        1,
		Nutrition:       meal.NutritionInfo{Calories: 1050, Proteins: 45, Carbs: 90, Fats: 55},
		Ingredients: []meal.Ingredient{
			{Name: "pain burger", Quantity: "1", Calories: 220},
			{Name: "steak haché", Quantity: "150g", Calories: 300},
			{Name: "cheddar", Quantity: "30g", Calories: 120},
			{Name: "pommes de terre", Quantity: "300g", Calories: 240},
			{Name: "sauce burger", Quantity: "30g", Calories: 170},
		},
		Instructions: []string{
			"Cuire les frites au four 30 minutes",
			"Griller le steak et monter le burger",
		},
	},
	{
		Name:            "Pizza margherita maison",
		Description:     "Pizza à la pâte fine, sauce tomate, mozzarella et basilic",
		PrepTimeMinutes: 40,
		Servings:        1,
		Nutrition:       meal.NutritionInfo{Calories: 950, Proteins: 38, Carbs: 110, Fats: 38},
		Ingredients: []meal.Ingredient{
			{Name: "pâte à pizza", Quantity: "250g", Calories: 560},
			{Name: "sauce tomate", Quantity: "100g", Calories: 60},
			{Name: "mozzarella", Quantity: "100g", Calories: 280},
			{Name: "basilic", Quantity: "quelques feuilles", Calories: 0},
			{Name: "huile d'olive", Quantity: "1 c. à café", Calories: 45},
		},
		Instructions: []string{"Étaler la pâte", "Garnir et cuire 12 minutes au four très chaud"},
	},
}

// builtinMeal returns a built-in recipe for the slot and complexity,
// scaled to the calorie target. Mixed complexity picks pseudo-randomly
// across both tables. The lookup cannot come back empty.
func builtinMeal(rng *lockedRand, slot meal.Slot, complexity meal.Complexity, targetCalories float64) meal.PlannedMealItem {
	var pool []meal.PlannedMealItem
	switch complexity {
	case meal.ComplexitySimple, meal.ComplexityElaborate:
		pool = builtinMeals[slot][complexity]
	default:
		pool = append(pool, builtinMeals[slot][meal.ComplexitySimple]...)
		pool = append(pool, builtinMeals[slot][meal.ComplexityElaborate]...)
	}
	item := pool[rng.Intn(len(pool))]
	item.ID = uuid.NewString()
	item.Provenance = meal.ProvenanceCurated
	return scaleToTarget(item, targetCalories)
}

// builtinTreatMeal returns a treat recipe scaled to the treat dinner
// target.
func builtinTreatMeal(rng *lockedRand, targetCalories float64) meal.PlannedMealItem {
	item := builtinTreatMeals[rng.Intn(len(builtinTreatMeals))]
	item.ID = uuid.NewString()
	item.Provenance = meal.ProvenanceCurated
	item.IsTreatMeal = true
	return scaleToTarget(item, targetCalories)
}
