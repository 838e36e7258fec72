package handlers

import (
	"errors"
	"fmt"
	"log"

	"kedaikopi/internal/models"
	"kedaikopi/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PriceHandler handles HTTP requests for the menu price store.
type PriceHandler struct {
	service  *services.PriceService
	validate *validator.Validate
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(service *services.PriceService) *PriceHandler {
	return &PriceHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public price routes with the Fiber app.
func (h *PriceHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/prices", h.HandleGetPrices)
}

// RegisterAdminRoutes registers the price-update route; the caller is
// expected to mount these behind the auth middleware.
func (h *PriceHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/prices", h.HandleUpdatePrice)
}

// HandleGetPrices returns the current menu prices keyed the way the menu
// script expects them, falling back to defaults when the store is empty or
// unreachable.
func (h *PriceHandler) HandleGetPrices(c *fiber.Ctx) error {
	table := h.service.GetAllPrices()

	singlePrices := fiber.Map{}
	doublePrices := fiber.Map{}
	for _, product := range models.AllProducts() {
		singlePrices[string(product)] = table.Single[product]
		doublePrices[string(product)] = table.Double[product]
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"singlePrices": singlePrices,
		"doublePrices": doublePrices,
	})
}

// UpdatePriceRequest is the admin price-change payload. DoublePrice is
// omitted for the coffee without a shot choice.
type UpdatePriceRequest struct {
	CoffeeType  string   `json:"coffeeType" validate:"required"`
	SinglePrice float64  `json:"singlePrice" validate:"required"`
	DoublePrice *float64 `json:"doublePrice"`
}

// HandleUpdatePrice applies an admin price change.
func (h *PriceHandler) HandleUpdatePrice(c *fiber.Ctx) error {
	var req UpdatePriceRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing price update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid JSON data",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Missing required fields",
		})
	}

	updated, err := h.service.UpdatePrice(req.CoffeeType, req.SinglePrice, req.DoublePrice)
	if err != nil {
		log.Printf("Error updating price for %s: %v", req.CoffeeType, err)
		status := fiber.StatusInternalServerError
		if errors.Is(err, services.ErrInvalidPrice) || errors.Is(err, services.ErrUnknownProduct) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Prices updated successfully for %s", updated.CoffeeName),
		"updated": updated,
	})
}
