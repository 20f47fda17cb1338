package order

import (
	"math"
	"sync"
	"time"

	"restaurant-ops/internal/logger"
	"restaurant-ops/internal/models"
	"restaurant-ops/internal/services/kitchen"
)

// Manager sequences order placements against the kitchen and keeps the
// append-only order history. Order numbers are monotonic for the
// lifetime of the manager and never reused, even for failed orders.
type Manager struct {
	mu         sync.Mutex
	stock      kitchen.Stock
	recipes    kitchen.Registry
	logger     *logger.Logger
	history    []models.Order
	nextNumber int
}

// NewManager creates an order manager fulfilling against the given stock
func NewManager(stock kitchen.Stock, recipes kitchen.Registry, log *logger.Logger) *Manager {
	return &Manager{
		stock:      stock,
		recipes:    recipes,
		logger:     log,
		nextNumber: 1,
	}
}

// PlaceOrder validates the request, prepares each item independently and
// records the outcome. The returned record is already terminal and is
// appended to the history unconditionally, whatever its status.
func (m *Manager) PlaceOrder(items []models.OrderItem) models.Order {
	m.mu.Lock()
	defer m.mu.Unlock()

	requestID := logger.GenerateRequestID()

	order := models.Order{
		Number:    m.nextNumber,
		Items:     append([]models.OrderItem(nil), items...),
		CreatedAt: time.Now(),
		Status:    models.StatusInProgress,
	}
	m.nextNumber++

	if err := models.ValidateOrderItems(items); err != nil {
		order.Status = models.StatusFailed
		order.ErrorMessage = err.Error()
		m.logger.Error("order_rejected", "Order request is malformed", requestID, err, map[string]interface{}{
			"order_number": order.Number,
		})
	} else {
		order.Results = kitchen.PrepareOrder(m.recipes, m.stock, items)
		order.Status = statusFromResults(order.Results)
		m.logger.Info("order_placed", "Order processed", requestID, map[string]interface{}{
			"order_number": order.Number,
			"status":       string(order.Status),
			"items":        len(items),
		})
	}

	m.history = append(m.history, order)
	return order
}

// statusFromResults derives the terminal order status from the per-item
// outcomes: succeeded only if every item succeeded, otherwise the order
// is partially failed. A failed status is reserved for batch-level
// errors and never derived from item results.
func statusFromResults(results []models.ItemResult) models.OrderStatus {
	for _, result := range results {
		if result.Outcome != models.OutcomeSuccess {
			return models.StatusPartiallyFailed
		}
	}
	return models.StatusSucceeded
}

// History returns a copy of the full order history in submission order
func (m *Manager) History() []models.Order {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]models.Order(nil), m.history...)
}

// Order returns the record with the given number, if any
func (m *Manager) Order(number int) (models.Order, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, order := range m.history {
		if order.Number == number {
			return order, true
		}
	}
	return models.Order{}, false
}

// Statistics summarizes the order history
func (m *Manager) Statistics() models.OrderStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := models.OrderStats{Total: len(m.history)}
	for _, order := range m.history {
		switch order.Status {
		case models.StatusSucceeded:
			stats.Succeeded++
		case models.StatusFailed:
			stats.Failed++
		}
	}

	if stats.Total > 0 {
		stats.SuccessRatePercent = int(math.Round(float64(stats.Succeeded) / float64(stats.Total) * 100))
	}
	return stats
}
