// Package data owns the meal catalog sources: a built-in dataset and a CSV
// ingester, both seeding the meals table idempotently.
package data

// MealRecord is one catalog entry before persistence.
type MealRecord struct {
	Name        string   `json:"name"`
	MealType    string   `json:"meal_type"`
	Calories    float64  `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	Ingredients []string `json:"ingredients"`
	DietaryTags []string `json:"dietary_tags"`
}

// BuiltinMeals is the default catalog used when no CSV is ingested.
var BuiltinMeals = []MealRecord{
	// Breakfasts
	{Name: "Oatmeal with Berries", MealType: "breakfast", Calories: 320, Protein: 12, Carbs: 58, Fat: 6,
		Ingredients: []string{"oats", "blueberries", "almond milk", "chia seeds"},
		DietaryTags: []string{"vegetarian", "vegan", "high-fiber"}},
	{Name: "Greek Yogurt Parfait", MealType: "breakfast", Calories: 260, Protein: 18, Carbs: 30, Fat: 6,
		Ingredients: []string{"greek yogurt", "honey", "granola", "strawberries"},
		DietaryTags: []string{"vegetarian"}},
	{Name: "Scrambled Eggs with Spinach", MealType: "breakfast", Calories: 290, Protein: 20, Carbs: 4, Fat: 21,
		Ingredients: []string{"egg", "spinach", "olive oil", "feta cheese"},
		DietaryTags: []string{"vegetarian", "keto", "gluten-free", "low-carb"}},
	{Name: "Avocado Toast", MealType: "breakfast", Calories: 340, Protein: 10, Carbs: 38, Fat: 17,
		Ingredients: []string{"whole grain bread", "avocado", "lemon", "chili flakes"},
		DietaryTags: []string{"vegetarian", "vegan"}},
	{Name: "Tofu Scramble", MealType: "breakfast", Calories: 270, Protein: 19, Carbs: 12, Fat: 16,
		Ingredients: []string{"tofu", "turmeric", "bell pepper", "onion", "olive oil"},
		DietaryTags: []string{"vegan", "vegetarian", "gluten-free"}},
	{Name: "Bacon and Eggs", MealType: "breakfast", Calories: 420, Protein: 25, Carbs: 2, Fat: 34,
		Ingredients: []string{"egg", "bacon", "butter"},
		DietaryTags: []string{"keto", "gluten-free", "low-carb", "paleo", "high-protein"}},
	{Name: "Buckwheat Porridge", MealType: "breakfast", Calories: 300, Protein: 11, Carbs: 55, Fat: 5,
		Ingredients: []string{"buckwheat", "banana", "walnuts", "maple syrup"},
		DietaryTags: []string{"vegan", "vegetarian", "gluten-free"}},
	// Lunches
	{Name: "Grilled Chicken Salad", MealType: "lunch", Calories: 420, Protein: 38, Carbs: 18, Fat: 22,
		Ingredients: []string{"chicken breast", "mixed greens", "olive oil", "cherry tomatoes", "cucumber"},
		DietaryTags: []string{"gluten-free", "high-protein", "low-carb", "paleo"}},
	{Name: "Quinoa Buddha Bowl", MealType: "lunch", Calories: 480, Protein: 17, Carbs: 68, Fat: 16,
		Ingredients: []string{"quinoa", "chickpeas", "kale", "sweet potato", "tahini"},
		DietaryTags: []string{"vegan", "vegetarian", "gluten-free", "mediterranean"}},
	{Name: "Turkey Club Sandwich", MealType: "lunch", Calories: 540, Protein: 32, Carbs: 48, Fat: 24,
		Ingredients: []string{"turkey", "whole grain bread", "bacon", "lettuce", "tomato", "mayonnaise"},
		DietaryTags: []string{"high-protein"}},
	{Name: "Lentil Soup with Salad", MealType: "lunch", Calories: 380, Protein: 18, Carbs: 56, Fat: 9,
		Ingredients: []string{"lentils", "carrot", "celery", "onion", "olive oil", "mixed greens"},
		DietaryTags: []string{"vegan", "vegetarian", "gluten-free", "high-fiber"}},
	{Name: "Salmon Poke Bowl", MealType: "lunch", Calories: 520, Protein: 30, Carbs: 52, Fat: 20,
		Ingredients: []string{"salmon", "rice", "edamame", "avocado", "soy sauce", "sesame seeds"},
		DietaryTags: []string{"mediterranean", "high-protein"}},
	{Name: "Zucchini Noodle Chicken Bowl", MealType: "lunch", Calories: 390, Protein: 34, Carbs: 12, Fat: 23,
		Ingredients: []string{"chicken breast", "zucchini", "pesto", "parmesan", "pine nuts"},
		DietaryTags: []string{"keto", "gluten-free", "low-carb", "high-protein"}},
	{Name: "Falafel Wrap", MealType: "lunch", Calories: 510, Protein: 15, Carbs: 66, Fat: 21,
		Ingredients: []string{"falafel", "tortilla", "hummus", "lettuce", "tomato", "pickles"},
		DietaryTags: []string{"vegan", "vegetarian"}},
	// Dinners
	{Name: "Baked Salmon with Vegetables", MealType: "dinner", Calories: 520, Protein: 40, Carbs: 24, Fat: 28,
		Ingredients: []string{"salmon", "broccoli", "asparagus", "olive oil", "lemon"},
		DietaryTags: []string{"gluten-free", "keto", "low-carb", "mediterranean", "paleo", "high-protein"}},
	{Name: "Beef Stir Fry with Rice", MealType: "dinner", Calories: 610, Protein: 36, Carbs: 62, Fat: 22,
		Ingredients: []string{"beef", "rice", "broccoli", "soy sauce", "ginger", "garlic"},
		DietaryTags: []string{"high-protein"}},
	{Name: "Vegetable Curry with Chickpeas", MealType: "dinner", Calories: 470, Protein: 14, Carbs: 64, Fat: 18,
		Ingredients: []string{"chickpeas", "coconut milk", "cauliflower", "spinach", "curry powder", "rice"},
		DietaryTags: []string{"vegan", "vegetarian", "gluten-free"}},
	{Name: "Grilled Chicken with Sweet Potato", MealType: "dinner", Calories: 550, Protein: 42, Carbs: 45, Fat: 20,
		Ingredients: []string{"chicken breast", "sweet potato", "green beans", "olive oil"},
		DietaryTags: []string{"gluten-free", "paleo", "high-protein"}},
	{Name: "Spaghetti Bolognese", MealType: "dinner", Calories: 650, Protein: 30, Carbs: 78, Fat: 24,
		Ingredients: []string{"pasta", "beef", "tomato", "onion", "garlic", "parmesan"},
		DietaryTags: []string{}},
	{Name: "Cauliflower Crust Pizza", MealType: "dinner", Calories: 430, Protein: 24, Carbs: 26, Fat: 26,
		Ingredients: []string{"cauliflower", "mozzarella", "egg", "tomato", "basil"},
		DietaryTags: []string{"vegetarian", "keto", "gluten-free", "low-carb"}},
	{Name: "Stuffed Bell Peppers", MealType: "dinner", Calories: 440, Protein: 16, Carbs: 58, Fat: 16,
		Ingredients: []string{"bell pepper", "quinoa", "black beans", "corn", "tomato"},
		DietaryTags: []string{"vegan", "vegetarian", "gluten-free"}},
	// Snacks
	{Name: "Apple with Almond Butter", MealType: "snack", Calories: 200, Protein: 5, Carbs: 24, Fat: 11,
		Ingredients: []string{"apple", "almond butter"},
		DietaryTags: []string{"vegan", "vegetarian", "gluten-free", "paleo"}},
	{Name: "Protein Shake", MealType: "snack", Calories: 180, Protein: 25, Carbs: 10, Fat: 4,
		Ingredients: []string{"whey protein", "banana", "almond milk"},
		DietaryTags: []string{"vegetarian", "gluten-free", "high-protein"}},
	{Name: "Mixed Nuts", MealType: "snack", Calories: 210, Protein: 6, Carbs: 8, Fat: 18,
		Ingredients: []string{"almonds", "cashews", "walnuts"},
		DietaryTags: []string{"vegan", "vegetarian", "keto", "gluten-free", "low-carb", "paleo"}},
	{Name: "Hummus with Carrot Sticks", MealType: "snack", Calories: 160, Protein: 6, Carbs: 18, Fat: 8,
		Ingredients: []string{"hummus", "carrot"},
		DietaryTags: []string{"vegan", "vegetarian", "gluten-free", "mediterranean"}},
	{Name: "Cottage Cheese Bowl", MealType: "snack", Calories: 170, Protein: 20, Carbs: 9, Fat: 6,
		Ingredients: []string{"cottage cheese", "pineapple"},
		DietaryTags: []string{"vegetarian", "gluten-free", "high-protein", "low-carb"}},
	{Name: "Hard-Boiled Eggs", MealType: "snack", Calories: 140, Protein: 12, Carbs: 1, Fat: 10,
		Ingredients: []string{"egg", "salt", "pepper"},
		DietaryTags: []string{"vegetarian", "keto", "gluten-free", "low-carb", "paleo", "high-protein"}},
	{Name: "Roasted Chickpeas", MealType: "snack", Calories: 150, Protein: 7, Carbs: 22, Fat: 4,
		Ingredients: []string{"chickpeas", "olive oil", "paprika"},
		DietaryTags: []string{"vegan", "vegetarian", "gluten-free", "high-fiber"}},
}
