package catalog

import "meal-planner/internal/core/models"

// BuiltinRecipes 內建的 14 道種子食譜
func BuiltinRecipes() []models.Recipe {
	return []models.Recipe{
		// 早餐
		{
			Name:         "Oatmeal with Berries",
			Description:  "Healthy oatmeal topped with fresh berries and honey",
			Calories:     350,
			ProteinG:     8,
			CarbsG:       60,
			FatG:         5,
			PrepTimeMin:  10,
			Ingredients:  "Oats, milk, berries, honey, almonds",
			Instructions: "1. Cook oats according to package directions\n2. Top with fresh berries\n3. Drizzle with honey\n4. Sprinkle almonds",
			DietTypes:    "vegan, vegetarian",
			MealType:     models.MealBreakfast,
		},
		{
			Name:         "Scrambled Eggs with Toast",
			Description:  "Fluffy scrambled eggs with whole grain toast",
			Calories:     320,
			ProteinG:     15,
			CarbsG:       35,
			FatG:         10,
			PrepTimeMin:  15,
			Ingredients:  "Eggs, whole grain bread, butter, salt, pepper",
			Instructions: "1. Toast bread\n2. Scramble eggs in butter\n3. Season with salt and pepper\n4. Serve together",
			DietTypes:    "vegetarian",
			MealType:     models.MealBreakfast,
		},
		{
			Name:         "Greek Yogurt Parfait",
			Description:  "Creamy yogurt layered with granola and fruit",
			Calories:     280,
			ProteinG:     12,
			CarbsG:       45,
			FatG:         4,
			PrepTimeMin:  5,
			Ingredients:  "Greek yogurt, granola, berries, honey",
			Instructions: "1. Layer yogurt in a bowl\n2. Add granola\n3. Top with fresh berries\n4. Drizzle honey",
			DietTypes:    "vegetarian",
			MealType:     models.MealBreakfast,
		},
		// 午餐
		{
			Name:         "Grilled Chicken Salad",
			Description:  "Fresh salad with grilled chicken breast and mixed greens",
			Calories:     420,
			ProteinG:     35,
			CarbsG:       25,
			FatG:         15,
			PrepTimeMin:  25,
			Ingredients:  "Chicken breast, mixed greens, tomatoes, cucumbers, olive oil, lemon juice",
			Instructions: "1. Grill chicken until cooked\n2. Slice chicken\n3. Mix greens with vegetables\n4. Top with chicken\n5. Dress with olive oil and lemon",
			DietTypes:    "keto",
			MealType:     models.MealLunch,
		},
		{
			Name:         "Quinoa Buddha Bowl",
			Description:  "Nutrient-packed bowl with quinoa, roasted veggies, and tahini dressing",
			Calories:     450,
			ProteinG:     15,
			CarbsG:       55,
			FatG:         16,
			PrepTimeMin:  30,
			Ingredients:  "Quinoa, roasted vegetables, tahini, lemon juice, chickpeas, spinach",
			Instructions: "1. Cook quinoa\n2. Roast vegetables at 400F for 25 minutes\n3. Mix tahini with lemon juice\n4. Assemble bowl\n5. Drizzle with dressing",
			DietTypes:    "vegan, vegetarian",
			MealType:     models.MealLunch,
		},
		{
			Name:         "Turkey Sandwich",
			Description:  "Lean turkey breast on whole wheat bread with veggies",
			Calories:     380,
			ProteinG:     28,
			CarbsG:       40,
			FatG:         8,
			PrepTimeMin:  10,
			Ingredients:  "Turkey breast, whole wheat bread, lettuce, tomato, mustard",
			Instructions: "1. Toast bread lightly\n2. Layer turkey\n3. Add lettuce and tomato\n4. Spread mustard\n5. Cut and serve",
			DietTypes:    "balanced",
			MealType:     models.MealLunch,
		},
		// 晚餐
		{
			Name:         "Baked Salmon with Veggies",
			Description:  "Omega-3 rich salmon baked with roasted vegetables",
			Calories:     520,
			ProteinG:     40,
			CarbsG:       30,
			FatG:         22,
			PrepTimeMin:  35,
			Ingredients:  "Salmon fillet, broccoli, bell peppers, olive oil, garlic, lemon",
			Instructions: "1. Preheat oven to 400F\n2. Place salmon on baking sheet\n3. Add vegetables\n4. Drizzle with olive oil\n5. Add garlic and lemon\n6. Bake 20-25 minutes",
			DietTypes:    "keto, paleo",
			MealType:     models.MealDinner,
		},
		{
			Name:         "Spaghetti with Marinara",
			Description:  "Classic pasta with homemade tomato sauce",
			Calories:     480,
			ProteinG:     15,
			CarbsG:       70,
			FatG:         10,
			PrepTimeMin:  30,
			Ingredients:  "Pasta, tomatoes, garlic, onion, olive oil, basil, oregano",
			Instructions: "1. Cook pasta according to directions\n2. Sauté garlic and onion\n3. Add tomatoes\n4. Simmer 15 minutes\n5. Add basil and oregano\n6. Serve with pasta",
			DietTypes:    "vegan, vegetarian",
			MealType:     models.MealDinner,
		},
		{
			Name:         "Grilled Chicken Breast with Rice",
			Description:  "Lean protein with brown rice and steamed vegetables",
			Calories:     550,
			ProteinG:     38,
			CarbsG:       65,
			FatG:         8,
			PrepTimeMin:  40,
			Ingredients:  "Chicken breast, brown rice, broccoli, carrots, olive oil, garlic",
			Instructions: "1. Cook brown rice\n2. Grill chicken until cooked\n3. Steam vegetables\n4. Combine on plate\n5. Drizzle with olive oil",
			DietTypes:    "balanced, keto",
			MealType:     models.MealDinner,
		},
		{
			Name:         "Vegetable Stir Fry",
			Description:  "Colorful mix of fresh vegetables in light sauce",
			Calories:     320,
			ProteinG:     12,
			CarbsG:       45,
			FatG:         8,
			PrepTimeMin:  25,
			Ingredients:  "Mixed vegetables, soy sauce, garlic, ginger, sesame oil, rice",
			Instructions: "1. Cook rice\n2. Heat oil in wok\n3. Add garlic and ginger\n4. Add vegetables\n5. Stir fry 10-12 minutes\n6. Add soy sauce\n7. Serve over rice",
			DietTypes:    "vegan, vegetarian",
			MealType:     models.MealDinner,
		},
		// 點心
		{
			Name:         "Almonds & Berries",
			Description:  "Protein-rich almonds with fresh berries",
			Calories:     180,
			ProteinG:     6,
			CarbsG:       15,
			FatG:         12,
			PrepTimeMin:  0,
			Ingredients:  "Almonds, mixed berries",
			Instructions: "1. Portion almonds\n2. Add berries\n3. Mix and enjoy",
			DietTypes:    "vegan, vegetarian, keto",
			MealType:     models.MealSnack,
		},
		{
			Name:         "Hummus with Vegetables",
			Description:  "Creamy hummus with fresh veggie sticks",
			Calories:     160,
			ProteinG:     6,
			CarbsG:       16,
			FatG:         6,
			PrepTimeMin:  5,
			Ingredients:  "Hummus, carrots, celery, bell peppers",
			Instructions: "1. Cut vegetables into sticks\n2. Portion hummus\n3. Serve with veggies",
			DietTypes:    "vegan, vegetarian",
			MealType:     models.MealSnack,
		},
		{
			Name:         "Protein Bar",
			Description:  "Convenient high-protein snack bar",
			Calories:     200,
			ProteinG:     20,
			CarbsG:       15,
			FatG:         6,
			PrepTimeMin:  0,
			Ingredients:  "Protein bar",
			Instructions: "1. Open wrapper\n2. Enjoy",
			DietTypes:    "balanced",
			MealType:     models.MealSnack,
		},
		{
			Name:         "Apple with Peanut Butter",
			Description:  "Fresh apple with creamy peanut butter",
			Calories:     190,
			ProteinG:     7,
			CarbsG:       20,
			FatG:         8,
			PrepTimeMin:  2,
			Ingredients:  "Apple, peanut butter",
			Instructions: "1. Slice apple\n2. Serve with peanut butter",
			DietTypes:    "vegan, vegetarian",
			MealType:     models.MealSnack,
		},
	}
}
