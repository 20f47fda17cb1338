package models

import "time"

// StockRecord describes the stock held for one ingredient
type StockRecord struct {
	Name       string    `json:"name"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
	UnitPrice  float64   `json:"unit_price"`
	ExpiryDate time.Time `json:"expiry_date"`
}
