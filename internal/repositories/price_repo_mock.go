package repositories

import (
	"sync"

	"kedaikopi/internal/models"
)

// MockPriceRepository is an in-memory implementation of PriceRepository.
type MockPriceRepository struct {
	rows   []models.CoffeePrice
	nextID uint
	mu     sync.RWMutex
}

// NewMockPriceRepository creates a new instance of MockPriceRepository.
func NewMockPriceRepository() *MockPriceRepository {
	return &MockPriceRepository{
		nextID: 1,
	}
}

// GetAll returns all price rows in insertion order.
func (r *MockPriceRepository) GetAll() ([]models.CoffeePrice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := make([]models.CoffeePrice, len(r.rows))
	copy(rows, r.rows)
	return rows, nil
}

// Upsert updates the row matching coffeeName or appends a new one.
func (r *MockPriceRepository) Upsert(coffeeName string, singlePrice float64, doublePrice *float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rows {
		if r.rows[i].CoffeeName == coffeeName {
			r.rows[i].SinglePrice = singlePrice
			if doublePrice != nil {
				r.rows[i].DoublePrice = *doublePrice
			}
			return nil
		}
	}

	row := models.CoffeePrice{
		ID:          r.nextID,
		CoffeeName:  coffeeName,
		SinglePrice: singlePrice,
	}
	if doublePrice != nil {
		row.DoublePrice = *doublePrice
	}
	r.nextID++
	r.rows = append(r.rows, row)
	return nil
}
