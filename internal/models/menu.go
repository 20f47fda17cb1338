package models

// Dish is one entry of the daily menu sheet
type Dish struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Calories    int     `json:"calories"`
	Description string  `json:"description,omitempty"`
	Available   bool    `json:"available"`
	Recommended bool    `json:"recommended,omitempty"`
}

// MenuDay is the planned menu for one calendar day
type MenuDay struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Menu    string `json:"menu"`
}

// MenuSheet is the generated menu of the day
type MenuSheet struct {
	Date            string  `json:"date"`
	Restaurant      string  `json:"restaurant"`
	Chef            string  `json:"chef"`
	Dishes          []Dish  `json:"dishes"`
	RecommendedDish string  `json:"recommended_dish"`
	TotalCalories   int     `json:"total_calories"`
	DishCount       int     `json:"dish_count"`
	AveragePrice    float64 `json:"average_price"`
}

// Meal is a prepared dish with its ingredient breakdown,
// used for calorie summation
type Meal struct {
	Name        string           `json:"name"`
	Ingredients []MealIngredient `json:"ingredients"`
}

// MealIngredient is one ingredient of a meal with its calorie count
type MealIngredient struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
}
