package services

import (
	"fmt"
	"log"
	"math"

	"kedaikopi/internal/models"
	"kedaikopi/internal/repositories"
)

// round2 rounds a currency amount to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PriceService handles business logic for the coffee price store.
type PriceService struct {
	repo repositories.PriceRepository
}

// NewPriceService creates a new PriceService.
func NewPriceService(repo repositories.PriceRepository) *PriceService {
	return &PriceService{
		repo: repo,
	}
}

// GetAllPrices returns the current price table for menu display. If the store
// is unreachable or empty it falls back to the hard-coded defaults so the
// menu stays usable in a read-degraded mode.
func (s *PriceService) GetAllPrices() models.PriceTable {
	rows, err := s.repo.GetAll()
	if err != nil {
		log.Printf("Price store unavailable, serving default prices: %v", err)
		return models.DefaultPriceTable()
	}
	table := models.PriceTableFrom(rows)
	if len(table.Single) == 0 {
		return models.DefaultPriceTable()
	}
	return table
}

// UpdatedPrices describes the outcome of a price update.
type UpdatedPrices struct {
	CoffeeType  string   `json:"coffeeType"`
	CoffeeName  string   `json:"coffeeName"`
	SinglePrice float64  `json:"singlePrice"`
	DoublePrice *float64 `json:"doublePrice"`
}

// UpdatePrice validates and applies an admin price change for the coffee
// identified by key (e.g. "CafeAuLait"). doublePrice is nil for the coffee
// without a shot choice. Validation happens before any write.
func (s *PriceService) UpdatePrice(key string, singlePrice float64, doublePrice *float64) (*UpdatedPrices, error) {
	product, ok := models.ProductByKey(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, key)
	}
	if singlePrice <= 0 || (doublePrice != nil && *doublePrice <= 0) {
		return nil, ErrInvalidPrice
	}

	// Shot-less coffees store the one price in both columns, so a
	// single-only update mirrors it into double_price.
	storedDouble := doublePrice
	if storedDouble == nil && !product.HasShots() {
		storedDouble = &singlePrice
	}

	if err := s.repo.Upsert(product.DisplayName(), singlePrice, storedDouble); err != nil {
		return nil, fmt.Errorf("failed to update price for %s: %w", product.DisplayName(), err)
	}

	return &UpdatedPrices{
		CoffeeType:  string(product),
		CoffeeName:  product.DisplayName(),
		SinglePrice: singlePrice,
		DoublePrice: doublePrice,
	}, nil
}
