package repositories

import (
	"fmt"
	"time"

	"kedaikopi/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create inserts the order inside a transaction. On any failure the
// transaction rolls back and no partial order state is visible.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// List retrieves orders, newest first, optionally restricted to one calendar
// day. The date comparison is on the date component only.
func (r *GORMOrderRepository) List(date *time.Time) ([]models.Order, error) {
	var orders []models.Order
	query := r.db.Order("order_date DESC, id DESC")
	if date != nil {
		query = query.Where("date(order_date) = ?", date.Format("2006-01-02"))
	}
	if err := query.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
