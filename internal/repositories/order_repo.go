package repositories

import (
	"time"

	"kedaikopi/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// Create inserts the order atomically and fills in its server-assigned ID
	// and order date. Orders are never updated or deleted afterwards.
	Create(order *models.Order) error
	// List returns orders, newest first. A non-nil date restricts the result
	// to orders placed on that calendar day.
	List(date *time.Time) ([]models.Order, error)
}
