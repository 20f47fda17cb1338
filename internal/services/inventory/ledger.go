package inventory

import (
	"sort"
	"sync"
	"time"

	"restaurant-ops/internal/models"
)

// Ledger is the authoritative in-memory record of ingredient stock.
// All operations are safe for concurrent use; a check-and-decrement
// happens under a single lock so quantity can never go negative.
type Ledger struct {
	mu    sync.RWMutex
	stock map[string]*models.StockRecord
}

// Snapshot is an opaque immutable copy of the ledger state,
// used for deterministic test setup and teardown.
type Snapshot struct {
	stock map[string]models.StockRecord
}

// NewLedger creates an empty inventory ledger
func NewLedger() *Ledger {
	return &Ledger{
		stock: make(map[string]*models.StockRecord),
	}
}

// NewDefaultLedger creates a ledger seeded with the standard kitchen stock
func NewDefaultLedger() *Ledger {
	now := time.Now()
	ledger := NewLedger()
	ledger.Restock("tomates", 10, "kg", 2.5, now.AddDate(0, 0, 120))
	ledger.Restock("basilic", 5, "bouquets", 1.8, now.AddDate(0, 0, 7))
	ledger.Restock("mozzarella", 3, "kg", 12, now.AddDate(0, 0, 14))
	ledger.Restock("pate_pizza", 8, "unités", 1.5, now.AddDate(0, 0, 10))
	ledger.Restock("huile_olive", 2, "litres", 8, now.AddDate(0, 1, 0))
	return ledger
}

// CheckAvailable reports whether the ingredient exists with at least
// the needed quantity in stock. An unknown ingredient is unavailable,
// not an error.
func (l *Ledger) CheckAvailable(ingredient string, needed float64) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	record, exists := l.stock[ingredient]
	return exists && record.Quantity >= needed
}

// Consume decrements the ingredient's stock if enough is available and
// reports whether the decrement happened. On insufficient stock the
// ledger is left unchanged.
func (l *Ledger) Consume(ingredient string, quantity float64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	record, exists := l.stock[ingredient]
	if !exists || record.Quantity < quantity {
		return false
	}

	record.Quantity -= quantity
	return true
}

// Restock adds quantity to an existing ingredient or creates a new record.
// For an existing ingredient the original unit, price and expiry persist;
// the new arrival's values are ignored.
func (l *Ledger) Restock(ingredient string, quantity float64, unit string, price float64, expiry time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if record, exists := l.stock[ingredient]; exists {
		record.Quantity += quantity
		return
	}

	l.stock[ingredient] = &models.StockRecord{
		Name:       ingredient,
		Quantity:   quantity,
		Unit:       unit,
		UnitPrice:  price,
		ExpiryDate: expiry,
	}
}

// GetStock returns a copy of the ingredient's record, if present
func (l *Ledger) GetStock(ingredient string) (models.StockRecord, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	record, exists := l.stock[ingredient]
	if !exists {
		return models.StockRecord{}, false
	}
	return *record, true
}

// ListAll returns a copy of every stock record, sorted by ingredient name
func (l *Ledger) ListAll() []models.StockRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	records := make([]models.StockRecord, 0, len(l.stock))
	for _, record := range l.stock {
		records = append(records, *record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
	return records
}

// ExpiringWithin returns the records whose expiry date falls within the
// next given number of days
func (l *Ledger) ExpiringWithin(days int) []models.StockRecord {
	cutoff := time.Now().AddDate(0, 0, days)

	var expiring []models.StockRecord
	for _, record := range l.ListAll() {
		if !record.ExpiryDate.After(cutoff) {
			expiring = append(expiring, record)
		}
	}
	return expiring
}

// TotalValue returns the value of the whole stock, quantity times unit price
func (l *Ledger) TotalValue() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var total float64
	for _, record := range l.stock {
		total += record.Quantity * record.UnitPrice
	}
	return total
}

// Snapshot returns a deep copy of the current state
func (l *Ledger) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	copied := make(map[string]models.StockRecord, len(l.stock))
	for name, record := range l.stock {
		copied[name] = *record
	}
	return Snapshot{stock: copied}
}

// Restore replaces the ledger state wholesale with a saved snapshot.
// The snapshot itself stays valid and can be restored again.
func (l *Ledger) Restore(snapshot Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stock = make(map[string]*models.StockRecord, len(snapshot.stock))
	for name, record := range snapshot.stock {
		copied := record
		l.stock[name] = &copied
	}
}
