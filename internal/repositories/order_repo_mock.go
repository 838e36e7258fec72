package repositories

import (
	"sort"
	"sync"
	"time"

	"kedaikopi/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders []models.Order
	nextID uint
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		nextID: 1,
	}
}

// Create assigns a monotonic ID and order date, then stores the order.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextID
	r.nextID++
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}
	r.orders = append(r.orders, *order)
	return nil
}

// List returns orders newest first, optionally filtered to one calendar day.
func (r *MockOrderRepository) List(date *time.Time) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		if date != nil {
			y1, m1, d1 := order.OrderDate.Date()
			y2, m2, d2 := date.Date()
			if y1 != y2 || m1 != m2 || d1 != d2 {
				continue
			}
		}
		orders = append(orders, order)
	}

	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].OrderDate.Equal(orders[j].OrderDate) {
			return orders[i].OrderDate.After(orders[j].OrderDate)
		}
		return orders[i].ID > orders[j].ID
	})
	return orders, nil
}
