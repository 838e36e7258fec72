package services_test

import (
	"testing"
	"time"

	"kedaikopi/internal/models"
	"kedaikopi/internal/repositories"
	"kedaikopi/internal/services"

	"github.com/stretchr/testify/assert"
)

// Drives checkout and reporting end to end on the in-memory repositories,
// with no database behind them.
func TestOrderFlow_InMemoryRepositories(t *testing.T) {
	priceRepo := repositories.NewMockPriceRepository()
	orderRepo := repositories.NewMockOrderRepository()

	defaults := models.DefaultPriceTable()
	for _, product := range models.AllProducts() {
		single := defaults.Single[product]
		double := defaults.Double[product]
		assert.NoError(t, priceRepo.Upsert(product.DisplayName(), single, &double))
	}

	orderService := services.NewOrderService(orderRepo, priceRepo, nil)
	reportService := services.NewReportService(orderRepo, priceRepo)

	receipt, err := orderService.PlaceOrder("Alice", []services.OrderItemRequest{
		{Name: "Just Java", Quantity: 2},
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(1), receipt.OrderID)
	assert.Equal(t, 44.00, receipt.CalculatedTotal)

	receipt, err = orderService.PlaceOrder("Bob", []services.OrderItemRequest{
		{Name: "Iced Cappucino", ShotType: "double", Quantity: 1},
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(2), receipt.OrderID) // server-assigned ids are monotonic
	assert.Equal(t, 5.75, receipt.CalculatedTotal)

	result, err := reportService.Report(services.ReportOrders, nil)
	assert.NoError(t, err)
	assert.Len(t, result.Orders, 2)
	assert.Equal(t, 49.75, result.Summary.TotalRevenue)

	// Upsert replaces the existing row in place; the products report then
	// prices the historical quantity at the new current rate.
	assert.NoError(t, priceRepo.Upsert("Just Java", 25.00, nil))
	rows, err := priceRepo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	result, err = reportService.Report(services.ReportProducts, nil)
	assert.NoError(t, err)
	assert.Equal(t, models.ProductSales{
		ProductName:   "Just Java",
		TotalQuantity: 2,
		TotalSales:    50.00,
	}, result.Products[0])

	// The day filter applies to the in-memory listing as well.
	day := time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	result, err = reportService.Report(services.ReportOrders, &day)
	assert.NoError(t, err)
	assert.Empty(t, result.Orders)
	assert.Equal(t, 0, result.Summary.TotalOrders)
}
