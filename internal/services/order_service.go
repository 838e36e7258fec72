package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"kedaikopi/internal/models"
	"kedaikopi/internal/repositories"

	"github.com/google/uuid"
)

// OrderEventPublisher publishes order lifecycle events to the message broker.
type OrderEventPublisher interface {
	PublishOrderPlaced(event map[string]interface{}) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	priceRepo repositories.PriceRepository
	publisher OrderEventPublisher // may be nil when the broker is absent
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, priceRepo repositories.PriceRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		priceRepo: priceRepo,
		publisher: publisher,
	}
}

// OrderItemRequest is one line of an incoming order. Any price or total the
// client might attach is not part of this type: the server never trusts
// client-supplied monetary values.
type OrderItemRequest struct {
	Name     string `json:"name"`
	ShotType string `json:"shotType"`
	Quantity int    `json:"quantity"`
}

// OrderReceipt is returned to the client after a successful checkout.
type OrderReceipt struct {
	OrderID         uint
	CalculatedTotal float64
	Order           models.Order
}

// PlaceOrder validates the order, prices every item from the current price
// store snapshot, and persists the order atomically. Preconditions are
// checked in a fixed sequence, short-circuiting on the first failure.
func (s *OrderService) PlaceOrder(customerName string, items []OrderItemRequest) (*OrderReceipt, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, ErrInvalidCustomer
	}
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidQuantity, item.Name)
		}
	}

	// One snapshot per call: every line is priced from the same table.
	rows, err := s.priceRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current prices: %w", err)
	}
	prices := models.PriceTableFrom(rows)

	order := models.Order{CustomerName: customerName}
	var total float64
	for _, item := range items {
		product, ok := models.ProductByName(item.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, item.Name)
		}
		shot := models.ShotType(item.ShotType)
		slot, ok := models.SlotFor(product, shot)
		if !ok {
			return nil, fmt.Errorf("%w: %s (%s)", ErrUnknownProduct, item.Name, item.ShotType)
		}
		unitPrice, ok := prices.UnitPrice(product, shot)
		if !ok {
			return nil, fmt.Errorf("%w for %s", ErrPriceNotFound, slot.Label())
		}
		order.AddSlotQuantity(slot, item.Quantity)
		total += unitPrice * float64(item.Quantity)
	}

	total = round2(total)
	if total <= 0 {
		return nil, ErrZeroTotal
	}
	order.TotalAmount = total

	// The repository wraps the insert in a transaction; a failure here leaves
	// no partial order behind.
	if err := s.orderRepo.Create(&order); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	s.publishOrderPlaced(&order)

	return &OrderReceipt{
		OrderID:         order.ID,
		CalculatedTotal: order.TotalAmount,
		Order:           order,
	}, nil
}

// publishOrderPlaced emits the order.placed event. Publishing is best-effort:
// the order is already committed, so broker trouble is logged and swallowed.
func (s *OrderService) publishOrderPlaced(order *models.Order) {
	if s.publisher == nil {
		log.Println("Order event publisher is not configured. Skipping message publication.")
		return
	}

	event := map[string]interface{}{
		"eventId":  uuid.New().String(),
		"orderId":  order.ID,
		"customer": order.CustomerName,
		"total":    order.TotalAmount,
		"placedAt": order.OrderDate.Format(time.RFC3339),
		"items":    order.Lines(),
	}
	if err := s.publisher.PublishOrderPlaced(event); err != nil {
		log.Printf("Warning: Failed to publish order placed event for order %d: %v", order.ID, err)
	} else {
		log.Printf("Published order placed event for order %d", order.ID)
	}
}
