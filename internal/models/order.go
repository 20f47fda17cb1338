package models

import (
	"fmt"
	"time"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	StatusInProgress      OrderStatus = "in_progress"
	StatusSucceeded       OrderStatus = "succeeded"
	StatusPartiallyFailed OrderStatus = "partially_failed"
	StatusFailed          OrderStatus = "failed"
)

// ItemOutcome represents the outcome of preparing one order item
type ItemOutcome string

const (
	OutcomeSuccess ItemOutcome = "success"
	OutcomeError   ItemOutcome = "error"
)

// OrderItem represents an item in an order
type OrderItem struct {
	Type     string  `json:"type"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// ItemResult records what happened to a single item of an order
type ItemResult struct {
	Type    string      `json:"type"`
	Outcome ItemOutcome `json:"outcome"`
	Message string      `json:"message"`
}

// Order is the immutable record of one order placement
type Order struct {
	Number       int          `json:"number"`
	Items        []OrderItem  `json:"items"`
	CreatedAt    time.Time    `json:"created_at"`
	Status       OrderStatus  `json:"status"`
	Results      []ItemResult `json:"results,omitempty"`
	ErrorMessage string       `json:"error,omitempty"`
}

// OrderStats summarizes the order history
type OrderStats struct {
	Total              int `json:"total"`
	Succeeded          int `json:"succeeded"`
	Failed             int `json:"failed"`
	SuccessRatePercent int `json:"success_rate_percent"`
}

// ValidationError describes a malformed order request
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateOrderItems checks that an order request is well formed.
// Unknown item types are not rejected here: they produce per-item
// errors during preparation instead of failing the whole batch.
func ValidateOrderItems(items []OrderItem) error {
	if len(items) == 0 {
		return ValidationError{
			Field:   "items",
			Message: "items cannot be empty",
		}
	}

	if len(items) > 20 {
		return ValidationError{
			Field:   "items",
			Message: "a maximum of 20 items is allowed",
		}
	}

	for i, item := range items {
		if item.Quantity < 1 {
			return ValidationError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "item quantity must be greater than 0",
			}
		}

		if item.Quantity > 10 {
			return ValidationError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "item quantity must be less than or equal to 10",
			}
		}

		if item.Price < 0 {
			return ValidationError{
				Field:   fmt.Sprintf("items[%d].price", i),
				Message: "item price must not be negative",
			}
		}
	}
	return nil
}
