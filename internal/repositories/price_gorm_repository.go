package repositories

import (
	"fmt"

	"kedaikopi/internal/models"

	"gorm.io/gorm"
)

// GORMPriceRepository is a GORM implementation of PriceRepository.
type GORMPriceRepository struct {
	db *gorm.DB
}

// NewGORMPriceRepository creates a new instance of GORMPriceRepository.
func NewGORMPriceRepository(db *gorm.DB) *GORMPriceRepository {
	return &GORMPriceRepository{
		db: db,
	}
}

// GetAll retrieves all coffee price rows in table order.
func (r *GORMPriceRepository) GetAll() ([]models.CoffeePrice, error) {
	var prices []models.CoffeePrice
	if err := r.db.Order("id").Find(&prices).Error; err != nil {
		return nil, fmt.Errorf("failed to get coffee prices: %w", err)
	}
	return prices, nil
}

// Upsert updates the row for coffeeName, inserting one if the update touched
// no rows. The update-then-insert sequence is not atomic: two callers racing
// on the same coffee can both see zero rows affected and insert twice.
// Last-writer-wins is accepted here; there is no concurrent-writer guarantee.
func (r *GORMPriceRepository) Upsert(coffeeName string, singlePrice float64, doublePrice *float64) error {
	updates := map[string]interface{}{"single_price": singlePrice}
	if doublePrice != nil {
		updates["double_price"] = *doublePrice
	}

	res := r.db.Model(&models.CoffeePrice{}).Where("coffee_name = ?", coffeeName).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update prices for %s: %w", coffeeName, res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	row := models.CoffeePrice{
		CoffeeName:  coffeeName,
		SinglePrice: singlePrice,
	}
	if doublePrice != nil {
		row.DoublePrice = *doublePrice
	}
	if err := r.db.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert prices for %s: %w", coffeeName, err)
	}
	return nil
}
