package services_test

import (
	"fmt"
	"testing"

	"kedaikopi/internal/models"
	"kedaikopi/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPriceRepository is a mock implementation of repositories.PriceRepository
type MockPriceRepository struct {
	mock.Mock
}

func (m *MockPriceRepository) GetAll() ([]models.CoffeePrice, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CoffeePrice), args.Error(1)
}

func (m *MockPriceRepository) Upsert(coffeeName string, singlePrice float64, doublePrice *float64) error {
	args := m.Called(coffeeName, singlePrice, doublePrice)
	return args.Error(0)
}

func priceRows() []models.CoffeePrice {
	return []models.CoffeePrice{
		{ID: 1, CoffeeName: "Just Java", SinglePrice: 22.00, DoublePrice: 22.00},
		{ID: 2, CoffeeName: "Cafe au Lait", SinglePrice: 2.00, DoublePrice: 3.00},
		{ID: 3, CoffeeName: "Iced Cappucino", SinglePrice: 4.75, DoublePrice: 5.75},
	}
}

func TestPriceService_GetAllPrices(t *testing.T) {
	mockRepo := new(MockPriceRepository)
	service := services.NewPriceService(mockRepo)

	mockRepo.On("GetAll").Return(priceRows(), nil).Twice()

	table := service.GetAllPrices()
	assert.Equal(t, 22.00, table.Single[models.JustJava])
	assert.Equal(t, 2.00, table.Single[models.CafeAuLait])
	assert.Equal(t, 3.00, table.Double[models.CafeAuLait])
	assert.Equal(t, 5.75, table.Double[models.IcedCappucino])

	// Reading again with no intervening update returns identical values.
	assert.Equal(t, table, service.GetAllPrices())
	mockRepo.AssertExpectations(t)
}

func TestPriceService_GetAllPrices_FallsBackToDefaults(t *testing.T) {
	mockRepo := new(MockPriceRepository)
	service := services.NewPriceService(mockRepo)

	// Store unreachable: menu still serves the hard-coded defaults.
	mockRepo.On("GetAll").Return(nil, fmt.Errorf("connection refused")).Once()
	table := service.GetAllPrices()
	assert.Equal(t, models.DefaultPriceTable(), table)

	// Empty table behaves the same way.
	mockRepo.On("GetAll").Return([]models.CoffeePrice{}, nil).Once()
	table = service.GetAllPrices()
	assert.Equal(t, models.DefaultPriceTable(), table)

	mockRepo.AssertExpectations(t)
}

func TestPriceService_UpdatePrice(t *testing.T) {
	mockRepo := new(MockPriceRepository)
	service := services.NewPriceService(mockRepo)

	double := 3.50
	mockRepo.On("Upsert", "Cafe au Lait", 2.50, &double).Return(nil).Once()

	updated, err := service.UpdatePrice("CafeAuLait", 2.50, &double)
	assert.NoError(t, err)
	assert.Equal(t, "Cafe au Lait", updated.CoffeeName)
	assert.Equal(t, 2.50, updated.SinglePrice)
	assert.Equal(t, 3.50, *updated.DoublePrice)
	mockRepo.AssertExpectations(t)
}

func TestPriceService_UpdatePrice_SingleOnly(t *testing.T) {
	mockRepo := new(MockPriceRepository)
	service := services.NewPriceService(mockRepo)

	// A single-only update for the shot-less coffee mirrors the price into
	// the double column, keeping the one price in both.
	mirrored := 25.00
	mockRepo.On("Upsert", "Just Java", 25.00, &mirrored).Return(nil).Once()

	updated, err := service.UpdatePrice("JustJava", 25.00, nil)
	assert.NoError(t, err)
	assert.Nil(t, updated.DoublePrice)
	mockRepo.AssertExpectations(t)
}

func TestPriceService_UpdatePrice_VariantSingleOnlyLeavesDouble(t *testing.T) {
	mockRepo := new(MockPriceRepository)
	service := services.NewPriceService(mockRepo)

	// Variant coffees get no mirroring: a nil double is passed through so
	// the repository leaves the existing double price untouched.
	mockRepo.On("Upsert", "Cafe au Lait", 2.75, (*float64)(nil)).Return(nil).Once()

	_, err := service.UpdatePrice("CafeAuLait", 2.75, nil)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestPriceService_UpdatePrice_RejectsInvalidInput(t *testing.T) {
	mockRepo := new(MockPriceRepository)
	service := services.NewPriceService(mockRepo)

	// Zero and negative prices fail before any write.
	_, err := service.UpdatePrice("JustJava", -1, nil)
	assert.ErrorIs(t, err, services.ErrInvalidPrice)

	_, err = service.UpdatePrice("JustJava", 0, nil)
	assert.ErrorIs(t, err, services.ErrInvalidPrice)

	bad := -3.50
	_, err = service.UpdatePrice("CafeAuLait", 2.50, &bad)
	assert.ErrorIs(t, err, services.ErrInvalidPrice)

	_, err = service.UpdatePrice("FlatWhite", 3.00, nil)
	assert.ErrorIs(t, err, services.ErrUnknownProduct)

	// No repository call was made for any of the rejected updates.
	mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
}
