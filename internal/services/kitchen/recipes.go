package kitchen

import "fmt"

// IngredientAmount is one line of a recipe's requirements
type IngredientAmount struct {
	Name     string
	Quantity float64
}

// RecipeRequirement is the immutable ingredient list of one recipe
type RecipeRequirement struct {
	Name            string
	Ingredients     []IngredientAmount
	PrepTimeMinutes int
}

// Registry maps recipe names to their requirements
type Registry map[string]RecipeRequirement

// DefaultRegistry returns the registry of recipes the kitchen knows
func DefaultRegistry() Registry {
	return Registry{
		"margherita": {
			Name:            "margherita",
			PrepTimeMinutes: 15,
			Ingredients: []IngredientAmount{
				{Name: "pate_pizza", Quantity: 1},
				{Name: "tomates", Quantity: 0.2},
				{Name: "mozzarella", Quantity: 0.15},
				{Name: "basilic", Quantity: 1},
				{Name: "huile_olive", Quantity: 0.05},
			},
		},
	}
}

// Requirement looks up a recipe by name
func (r Registry) Requirement(name string) (RecipeRequirement, bool) {
	requirement, ok := r[name]
	return requirement, ok
}

// Register adds a recipe to the registry
func (r Registry) Register(requirement RecipeRequirement) {
	r[requirement.Name] = requirement
}

// RecipeInfo is the result of validating a recipe definition
type RecipeInfo struct {
	Name            string
	IngredientCount int
	PrepTimeMinutes int
	Difficulty      string
}

// ValidateRecipe checks a recipe definition and grades its difficulty
// by ingredient count
func ValidateRecipe(recipe RecipeRequirement) (RecipeInfo, error) {
	if recipe.Name == "" {
		return RecipeInfo{}, fmt.Errorf("recipe name is required")
	}

	if len(recipe.Ingredients) == 0 {
		return RecipeInfo{}, fmt.Errorf("recipe must contain at least one ingredient")
	}

	if recipe.PrepTimeMinutes <= 0 {
		return RecipeInfo{}, fmt.Errorf("preparation time must be greater than 0")
	}

	difficulty := "easy"
	switch {
	case len(recipe.Ingredients) > 10:
		difficulty = "hard"
	case len(recipe.Ingredients) > 5:
		difficulty = "medium"
	}

	return RecipeInfo{
		Name:            recipe.Name,
		IngredientCount: len(recipe.Ingredients),
		PrepTimeMinutes: recipe.PrepTimeMinutes,
		Difficulty:      difficulty,
	}, nil
}
