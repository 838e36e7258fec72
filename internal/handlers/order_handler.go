package handlers

import (
	"errors"
	"log"

	"kedaikopi/internal/cart"
	"kedaikopi/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for checkout.
type OrderHandler struct {
	orderService *services.OrderService
	priceService *services.PriceService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService *services.OrderService, priceService *services.PriceService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		priceService: priceService,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandlePlaceOrder)
	orderRoutes.Post("/estimate", h.HandleEstimate)
}

// PlaceOrderRequest is the checkout payload. Prices or totals the client
// attaches elsewhere are never read; items carry only name, shot and
// quantity.
type PlaceOrderRequest struct {
	CustomerName string                      `json:"customerName"`
	Items        []services.OrderItemRequest `json:"items"`
}

// HandlePlaceOrder validates and persists a new order, returning the
// server-calculated total.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var req PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid JSON data",
		})
	}

	receipt, err := h.orderService.PlaceOrder(req.CustomerName, req.Items)
	if err != nil {
		log.Printf("Error placing order for %q: %v", req.CustomerName, err)
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, services.ErrInvalidCustomer),
			errors.Is(err, services.ErrEmptyOrder),
			errors.Is(err, services.ErrInvalidQuantity),
			errors.Is(err, services.ErrUnknownProduct):
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	order := receipt.Order
	return c.JSON(fiber.Map{
		"success":         true,
		"message":         "Order placed successfully!",
		"orderId":         receipt.OrderID,
		"calculatedTotal": receipt.CalculatedTotal,
		"orderDetails": fiber.Map{
			"customer":            order.CustomerName,
			"total":               order.TotalAmount,
			"justJava":            order.JustJavaSingleQty,
			"cafeAuLaitSingle":    order.CafeAuLaitSingleQty,
			"cafeAuLaitDouble":    order.CafeAuLaitDoubleQty,
			"icedCappucinoSingle": order.IcedCappucinoSingleQty,
			"icedCappucinoDouble": order.IcedCappucinoDoubleQty,
		},
	})
}

// HandleEstimate turns raw menu form state into line items priced from the
// current table plus an advisory total. Checkout never trusts this figure;
// it exists so the menu page can show the running total the server would.
func (h *OrderHandler) HandleEstimate(c *fiber.Ctx) error {
	var form cart.FormState
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing estimate body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid JSON data",
		})
	}

	items := cart.Collect(form, h.priceService.GetAllPrices())
	if len(items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   services.ErrEmptyOrder.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"items":          items,
		"estimatedTotal": cart.EstimateTotal(items),
	})
}
