package repositories

import (
	"kedaikopi/internal/models"
)

// PriceRepository defines the interface for coffee price data access.
type PriceRepository interface {
	GetAll() ([]models.CoffeePrice, error)
	// Upsert updates the price row for coffeeName, inserting one if no row
	// exists. A nil doublePrice leaves an existing double price untouched
	// (and stores 0.00 on insert).
	Upsert(coffeeName string, singlePrice float64, doublePrice *float64) error
}
