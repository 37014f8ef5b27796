package shopping

// categoryKeywords maps each aisle to its trigger substrings, checked in
// categoryOrder, first match wins. Pantry is the fallback and needs no list.
var categoryKeywords = map[Category][]string{
	CategoryProduce: {
		"apple", "banana", "orange", "lemon", "tomato", "potato", "onion",
		"garlic", "lettuce", "spinach", "carrot", "pepper", "broccoli",
		"avocado", "fruit", "vegetable", "salad",
	},
	CategoryDairy: {
		"milk", "cheese", "yogurt", "butter", "cream", "egg",
	},
	CategoryMeat: {
		"chicken", "beef", "pork", "turkey", "ham", "bacon", "sausage",
		"fish", "salmon", "shrimp",
	},
	CategoryBakery: {
		"bread", "bagel", "croissant", "muffin", "tortilla", "bun", "cake",
	},
	CategoryFrozen: {
		"frozen", "ice cream", "pizza",
	},
	CategoryBeverages: {
		"water", "juice", "soda", "coffee", "tea", "beer", "wine",
	},
	CategoryHousehold: {
		"detergent", "soap", "shampoo", "toothpaste", "paper towel",
		"toilet paper", "trash bag", "sponge", "cleaner",
	},
}

var categoryOrder = []Category{
	CategoryProduce,
	CategoryDairy,
	CategoryMeat,
	CategoryBakery,
	CategoryFrozen,
	CategoryBeverages,
	CategoryHousehold,
}
