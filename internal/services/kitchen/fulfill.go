package kitchen

import (
	"fmt"

	"restaurant-ops/internal/models"
)

// Stock is the slice of the inventory ledger the kitchen needs
type Stock interface {
	CheckAvailable(ingredient string, needed float64) bool
	Consume(ingredient string, quantity float64) bool
}

// MissingIngredientError reports a recipe ingredient that is out of stock
type MissingIngredientError struct {
	Ingredient string
}

func (e MissingIngredientError) Error() string {
	return fmt.Sprintf("missing ingredient: %s", e.Ingredient)
}

// UnsupportedRecipeError reports a recipe name the kitchen does not know
type UnsupportedRecipeError struct {
	Recipe string
}

func (e UnsupportedRecipeError) Error() string {
	return fmt.Sprintf("unsupported recipe type: %s", e.Recipe)
}

// ConsumptionError reports a consumption that failed after validation
// passed, which can only happen when another writer drained the stock
// in between.
type ConsumptionError struct {
	Ingredient string
}

func (e ConsumptionError) Error() string {
	return fmt.Sprintf("failed to consume ingredient: %s", e.Ingredient)
}

// Fulfill consumes the recipe's ingredients from stock, all or nothing.
// Phase 1 validates availability of every ingredient and aborts before
// any mutation if one is missing. Phase 2 consumes them; if a consume
// fails there (concurrent writer), the fulfillment aborts with a
// ConsumptionError and earlier decrements of this call are not rolled
// back. Single-writer callers never see that error.
func Fulfill(requirement RecipeRequirement, stock Stock) error {
	for _, ingredient := range requirement.Ingredients {
		if !stock.CheckAvailable(ingredient.Name, ingredient.Quantity) {
			return MissingIngredientError{Ingredient: ingredient.Name}
		}
	}

	for _, ingredient := range requirement.Ingredients {
		if !stock.Consume(ingredient.Name, ingredient.Quantity) {
			return ConsumptionError{Ingredient: ingredient.Name}
		}
	}

	return nil
}

// PrepareOrder fulfills each item of an order independently: one item
// failing never aborts the others. Each item is fulfilled once per unit
// of its quantity; the first failed unit marks the item as failed.
func PrepareOrder(recipes Registry, stock Stock, items []models.OrderItem) []models.ItemResult {
	results := make([]models.ItemResult, 0, len(items))

	for _, item := range items {
		results = append(results, prepareItem(recipes, stock, item))
	}

	return results
}

func prepareItem(recipes Registry, stock Stock, item models.OrderItem) models.ItemResult {
	requirement, ok := recipes.Requirement(item.Type)
	if !ok {
		return models.ItemResult{
			Type:    item.Type,
			Outcome: models.OutcomeError,
			Message: UnsupportedRecipeError{Recipe: item.Type}.Error(),
		}
	}

	quantity := item.Quantity
	if quantity < 1 {
		quantity = 1
	}

	for i := 0; i < quantity; i++ {
		if err := Fulfill(requirement, stock); err != nil {
			return models.ItemResult{
				Type:    item.Type,
				Outcome: models.OutcomeError,
				Message: err.Error(),
			}
		}
	}

	return models.ItemResult{
		Type:    item.Type,
		Outcome: models.OutcomeSuccess,
		Message: fmt.Sprintf("%s ready", item.Type),
	}
}
