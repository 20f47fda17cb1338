package kitchen

import (
	"github.com/shopspring/decimal"

	"restaurant-ops/internal/models"
)

// Promo codes accepted at checkout
const (
	PromoStudent     = "ETUDIANT"      // 10% off
	PromoLoyalty     = "FIDELITE"      // 15% off
	PromoNewCustomer = "NOUVEAUCLIENT" // 5 flat off
)

// OrderTotal computes the price of an order with an optional promo code,
// rounded to 2 decimals and floored at zero
func OrderTotal(items []models.OrderItem, promoCode string) float64 {
	total := decimal.Zero
	for _, item := range items {
		price := decimal.NewFromFloat(item.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	switch promoCode {
	case PromoStudent:
		total = total.Mul(decimal.NewFromFloat(0.9))
	case PromoLoyalty:
		total = total.Mul(decimal.NewFromFloat(0.85))
	case PromoNewCustomer:
		total = total.Sub(decimal.NewFromInt(5))
	}

	total = total.Round(2)
	if total.IsNegative() {
		return 0
	}

	result, _ := total.Float64()
	return result
}

// MealCalories sums the calories of a meal's ingredients
func MealCalories(meal models.Meal) int {
	total := 0
	for _, ingredient := range meal.Ingredients {
		total += ingredient.Calories
	}
	return total
}
